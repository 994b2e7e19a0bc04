package parser

import (
	"regexp"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/jonesrussell/people-moves/internal/vocab"
)

// MoveClassifier decides whether text is about an executive personnel move.
// It is a two-stage AND gate: an Aho-Corasick substring scan over the
// executive-keyword vocabulary, then a word-boundary match against the title
// vocabulary. The keyword gate alone is too noisy (any leadership-adjacent
// text trips it) and the title gate alone misses action language ("joins",
// "hires"), so both must hold.
type MoveClassifier struct {
	keywords      *ahocorasick.Matcher
	titlePatterns []*regexp.Regexp
}

// NewMoveClassifier builds the classifier from the vocabulary tables.
func NewMoveClassifier(v *vocab.Vocabulary) *MoveClassifier {
	lowered := make([]string, len(v.ExecutiveKeywords))
	for i, kw := range v.ExecutiveKeywords {
		lowered[i] = strings.ToLower(kw)
	}

	return &MoveClassifier{
		keywords:      ahocorasick.NewStringMatcher(lowered),
		titlePatterns: compileTitlePatterns(v.ExecutiveTitles),
	}
}

// compileTitlePatterns builds case-insensitive whole-word patterns for each
// title, preserving the vocabulary's declared order.
func compileTitlePatterns(titles []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(titles))
	for i, title := range titles {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(title) + `\b`)
	}
	return patterns
}

// IsExecutiveMove reports whether the article looks like an executive move
// announcement. Returns false, never an error, when either stage misses.
func (c *MoveClassifier) IsExecutiveMove(title, body string) bool {
	combined := strings.ToLower(title + " " + body)

	if len(c.keywords.Match([]byte(combined))) == 0 {
		return false
	}

	for _, p := range c.titlePatterns {
		if p.MatchString(combined) {
			return true
		}
	}
	return false
}
