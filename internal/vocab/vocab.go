// Package vocab holds the heuristic vocabulary tables the extraction engine
// matches against. The tables are data, not behavior: they are built once at
// startup and can be replaced from a YAML file without touching engine logic.
package vocab

import "strings"

// Vocabulary bundles every table the engine needs. Slice-typed fields whose
// order is load-bearing (ExecutiveTitles) are documented as such; the rest
// are membership sets.
type Vocabulary struct {
	// ExecutiveKeywords are substrings whose presence marks leadership-
	// adjacent text. One of them must occur for an article to classify.
	ExecutiveKeywords []string `yaml:"executive_keywords"`

	// ExecutiveTitles is the ordered job-title list, most specific first.
	// Compound titles ("Senior Vice President") must precede the generic
	// terms they contain ("President") or matches truncate to the generic
	// term. Used for both classification and title extraction.
	ExecutiveTitles []string `yaml:"executive_titles"`

	// FalsePositiveNames are exact (case-insensitive) strings that pattern
	// captures must never be accepted as: publication names, company
	// fragments, generic phrases.
	FalsePositiveNames []string `yaml:"false_positive_names"`

	// InvalidFirstWords can never start a person's name.
	InvalidFirstWords []string `yaml:"invalid_first_words"`

	// InvalidLastWords can never end a person's name.
	InvalidLastWords []string `yaml:"invalid_last_words"`

	// PublicationSecondWords reject two-word captures shaped like outlet or
	// company names ("Supermarket News", "Perdue Farms").
	PublicationSecondWords []string `yaml:"publication_second_words"`

	// VerbSurnames are verbs commonly mis-captured as surnames
	// ("Liate Stehlik Promoted").
	VerbSurnames []string `yaml:"verb_surnames"`

	// PoliticalSurnames reject "President X" captures where X is a head of
	// state rather than an executive.
	PoliticalSurnames []string `yaml:"political_surnames"`

	// ShortStopwords reject names with short function words in the middle.
	ShortStopwords []string `yaml:"short_stopwords"`
}

// Set is a case-insensitive string membership set.
type Set map[string]struct{}

// NewSet builds a Set from the given words, lower-casing each.
func NewSet(words []string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// Has reports whether word is in the set, ignoring case.
func (s Set) Has(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

// Default returns the built-in vocabulary tables.
func Default() *Vocabulary {
	return &Vocabulary{
		ExecutiveKeywords:      executiveKeywords,
		ExecutiveTitles:        executiveTitles,
		FalsePositiveNames:     falsePositiveNames,
		InvalidFirstWords:      invalidFirstWords,
		InvalidLastWords:       invalidLastWords,
		PublicationSecondWords: publicationSecondWords,
		VerbSurnames:           verbSurnames,
		PoliticalSurnames:      politicalSurnames,
		ShortStopwords:         shortStopwords,
	}
}
