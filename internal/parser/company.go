package parser

import (
	"strings"

	"github.com/jonesrussell/people-moves/internal/domain"
)

// FindCompanyInText returns the first tracked company mentioned in the text,
// or nil. Companies are scanned in caller-supplied order, canonical name
// before aliases, plain substring match on lower-cased, diacritic-folded
// text so "Nestlé" matches a "nestle" alias. First match wins even when
// several tracked companies co-occur; there is no longest-match or
// frequency scoring.
func FindCompanyInText(text string, companies []domain.Company) *domain.Company {
	lower := strings.ToLower(foldDiacritics(text))

	for i := range companies {
		c := &companies[i]
		if c.Name != "" && strings.Contains(lower, strings.ToLower(foldDiacritics(c.Name))) {
			return c
		}
		for _, alias := range c.Aliases {
			if alias != "" && strings.Contains(lower, strings.ToLower(foldDiacritics(alias))) {
				return c
			}
		}
	}
	return nil
}
