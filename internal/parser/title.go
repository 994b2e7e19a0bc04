package parser

import (
	"regexp"
	"strings"

	"github.com/jonesrussell/people-moves/internal/vocab"
)

// contextWindow is how many characters around a matched title are searched
// for connective phrasing that carries qualifiers ("as interim CEO of ...").
const contextWindow = 50

// TitleExtractor finds the new job title in announcement text.
type TitleExtractor struct {
	patterns []*regexp.Regexp
}

// NewTitleExtractor builds the extractor from the ordered title vocabulary.
// The declared order is load-bearing: compound titles are compiled before
// the generic titles they contain, otherwise "Senior Vice President"
// truncates to "President".
func NewTitleExtractor(v *vocab.Vocabulary) *TitleExtractor {
	return &TitleExtractor{patterns: compileTitlePatterns(v.ExecutiveTitles)}
}

// ExtractTitle returns the first vocabulary title present in the text,
// widened with surrounding modifiers when connective phrasing is found
// nearby. Returns "" when no title occurs.
func (e *TitleExtractor) ExtractTitle(text string) string {
	for _, pattern := range e.patterns {
		loc := pattern.FindStringIndex(text)
		if loc == nil {
			continue
		}
		matched := text[loc[0]:loc[1]]

		start := loc[0] - contextWindow
		if start < 0 {
			start = 0
		}
		end := loc[1] + contextWindow
		if end > len(text) {
			end = len(text)
		}
		context := text[start:end]

		// Widen to "as/to/new <modifiers> <title> [of <entity>]" when the
		// context carries it; otherwise return the bare title. The leading
		// \b keeps the "as" inside words like "has" from counting as a
		// connective.
		full := regexp.MustCompile(
			`(?i)\b(?:as|to|new)\s+((?:\w+\s+)*` + regexp.QuoteMeta(matched) + `(?:\s+of\s+\w+)?)`,
		)
		if m := full.FindStringSubmatch(context); m != nil {
			return strings.TrimSpace(m[1])
		}
		return matched
	}
	return ""
}
