package parser

import (
	"regexp"
	"strings"

	"github.com/jonesrussell/people-moves/internal/vocab"
)

// namePattern matches a capitalized 2-3 word name with an optional middle
// initial: "John Smith", "John Q. Smith", "Mary Jane Watson".
const namePattern = `[A-Z][a-z]+\s+(?:[A-Z]\.?\s+)?[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?`

// namePatterns is the ordered narrative pattern list. Order is a correctness
// invariant, not an optimization: different outlets phrase the same fact
// differently and earlier patterns are more specific, so the list is walked
// top to bottom and the first capture that survives validation wins.
var namePatterns = []*regexp.Regexp{
	// "Appoints/Names John Smith as..." (PR Newswire headline style)
	regexp.MustCompile(`(?:Appoints|Names|Taps|Hires|Promotes|Selects|Elevates)\s+(` + namePattern + `)\s+(?:as|to|for|Group)`),
	// "Appointment of John Smith..."
	regexp.MustCompile(`Appointment\s+of\s+(` + namePattern + `)`),
	// "John Smith has been appointed..."
	regexp.MustCompile(`^(` + namePattern + `)\s+(?:has been|was|is|will)`),
	// "...appointed John Smith as..." (lowercase verb)
	regexp.MustCompile(`(?:appointed|named|hired|promotes?|taps|selects|elevates)\s+(` + namePattern + `)\s+(?:as|to|for)`),
	// "...welcomes John Smith..."
	regexp.MustCompile(`(?:welcomes?|announces?)\s+(` + namePattern + `)`),
	// "John Smith joins..."
	regexp.MustCompile(`(` + namePattern + `)\s+(?:joins|named|appointed|to lead|to head|becomes)`),
	// "John Smith, the new..."
	regexp.MustCompile(`(` + namePattern + `),?\s+(?:the new|new|as|named)`),
	// "CEO John Smith..."
	regexp.MustCompile(`(?:CEO|President|CFO|COO|VP|Director)\s+(` + namePattern + `)`),
	// "...names John Smith CEO..."
	regexp.MustCompile(`names\s+(` + namePattern + `)\s+(?:CEO|President|CFO|COO|VP|Director|Chief)`),
	// "...John Smith to CEO..."
	regexp.MustCompile(`(` + namePattern + `)\s+to\s+(?:CEO|President|CFO|COO|VP|Director|Chief)`),
	// "...hires John Smith..."
	regexp.MustCompile(`hires\s+(` + namePattern + `)`),
	// "John Smith promoted..."
	regexp.MustCompile(`(` + namePattern + `)\s+(?:promoted|elevated|tapped)`),
}

// NameExtractor pulls a validated person name out of announcement text.
type NameExtractor struct {
	validator *nameValidator
}

// NewNameExtractor builds the extractor and its validation gate from the
// vocabulary tables.
func NewNameExtractor(v *vocab.Vocabulary) *NameExtractor {
	return &NameExtractor{validator: newNameValidator(v)}
}

// ExtractPersonName returns the first pattern capture that survives the
// validation gate, or "" when every pattern misses or every capture is
// rejected. A rejected capture moves on to the next pattern silently.
func (e *NameExtractor) ExtractPersonName(text string) string {
	for _, pattern := range namePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if e.validator.isValid(name) {
			return name
		}
	}
	return ""
}
