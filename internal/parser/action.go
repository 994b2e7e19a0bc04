package parser

import "strings"

// DefaultAction is produced when no action keyword occurs.
const DefaultAction = "named"

// actionRule maps trigger substrings to a canonical action label.
type actionRule struct {
	triggers []string
	label    string
}

// actionRules is evaluated in order, first match wins. "promoted" outranks a
// later "named" in the same sentence, so the order here is semantics, not
// style.
var actionRules = []actionRule{
	{triggers: []string{"promoted"}, label: "promoted to"},
	{triggers: []string{"appoints", "appointed"}, label: "appointed"},
	{triggers: []string{"taps", "tapped"}, label: "tapped as"},
	{triggers: []string{"names", "named"}, label: "named"},
	{triggers: []string{"joins", "hired", "hires"}, label: "joins as"},
	{triggers: []string{"announces", "appointment"}, label: "announced as"},
}

// ExtractAction classifies the type of move described by the text. Exactly
// one canonical label is always produced.
func ExtractAction(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range actionRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				return rule.label
			}
		}
	}
	return DefaultAction
}
