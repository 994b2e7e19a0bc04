package parser

import (
	"strings"

	"github.com/jonesrussell/people-moves/internal/vocab"
)

// Person names must have between minNameWords and maxNameWords words.
const (
	minNameWords = 2
	maxNameWords = 4
)

// maxStopwordLen is the longest interior word still checked against the
// short-stopword set.
const maxStopwordLen = 3

// nameCheck is one predicate of the validation gate. It returns true when
// the candidate passes this check. words is the pre-split name.
type nameCheck func(v *nameValidator, name string, words []string) bool

// nameValidator is the conjunction of independent predicates a pattern
// capture must satisfy to be accepted as a person's name. Any single failing
// check rejects the capture; the caller never learns which rule fired.
type nameValidator struct {
	blacklist         vocab.Set
	invalidFirst      vocab.Set
	invalidLast       vocab.Set
	publicationSecond vocab.Set
	verbSurnames      vocab.Set
	politicalSurnames vocab.Set
	shortStopwords    vocab.Set
	checks            []nameCheck
}

func newNameValidator(v *vocab.Vocabulary) *nameValidator {
	return &nameValidator{
		blacklist:         vocab.NewSet(v.FalsePositiveNames),
		invalidFirst:      vocab.NewSet(v.InvalidFirstWords),
		invalidLast:       vocab.NewSet(v.InvalidLastWords),
		publicationSecond: vocab.NewSet(v.PublicationSecondWords),
		verbSurnames:      vocab.NewSet(v.VerbSurnames),
		politicalSurnames: vocab.NewSet(v.PoliticalSurnames),
		shortStopwords:    vocab.NewSet(v.ShortStopwords),
		checks: []nameCheck{
			notBlacklisted,
			hasNameWordCount,
			validFirstWord,
			validLastWord,
			firstWordNotAcronym,
			secondWordNotPublication,
			lastWordNotVerb,
			notPoliticalPresident,
			noShortInteriorStopword,
		},
	}
}

func (v *nameValidator) isValid(name string) bool {
	if name == "" {
		return false
	}
	words := strings.Fields(name)
	for _, check := range v.checks {
		if !check(v, name, words) {
			return false
		}
	}
	return true
}

// notBlacklisted rejects exact matches against the false-positive list:
// publication names, company fragments, generic phrases.
func notBlacklisted(v *nameValidator, name string, _ []string) bool {
	return !v.blacklist.Has(name)
}

func hasNameWordCount(_ *nameValidator, _ string, words []string) bool {
	return len(words) >= minNameWords && len(words) <= maxNameWords
}

func validFirstWord(v *nameValidator, _ string, words []string) bool {
	return !v.invalidFirst.Has(words[0])
}

func validLastWord(v *nameValidator, _ string, words []string) bool {
	return !v.invalidLast.Has(words[len(words)-1])
}

// firstWordNotAcronym rejects all-uppercase first tokens longer than one
// character, which are titles ("CEO", "CFO") standing in for a first name.
func firstWordNotAcronym(_ *nameValidator, _ string, words []string) bool {
	first := words[0]
	return !(len(first) > 1 && first == strings.ToUpper(first))
}

// secondWordNotPublication rejects captures shaped like outlet or company
// names: "Supermarket News", "Grocery Dive", "Perdue Farms".
func secondWordNotPublication(v *nameValidator, _ string, words []string) bool {
	if len(words) < 2 {
		return true
	}
	return !v.publicationSecond.Has(words[1])
}

// lastWordNotVerb rejects trailing verbs mis-captured as surnames, e.g.
// "Liate Stehlik Promoted".
func lastWordNotVerb(v *nameValidator, _ string, words []string) bool {
	return !v.verbSurnames.Has(words[len(words)-1])
}

// notPoliticalPresident allows "President" as a leading title only when not
// followed by a head-of-state surname.
func notPoliticalPresident(v *nameValidator, _ string, words []string) bool {
	if len(words) < 2 || !strings.EqualFold(words[0], "president") {
		return true
	}
	return !v.politicalSurnames.Has(words[1])
}

// noShortInteriorStopword rejects names whose middle words are short
// function words ("John and Smith").
func noShortInteriorStopword(v *nameValidator, _ string, words []string) bool {
	if len(words) <= minNameWords {
		return true
	}
	for _, w := range words[1 : len(words)-1] {
		if len(w) <= maxStopwordLen && v.shortStopwords.Has(w) {
			return false
		}
	}
	return true
}
