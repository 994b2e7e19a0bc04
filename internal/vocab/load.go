package vocab

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML vocabulary file and overlays it on the defaults. Only
// tables present in the file replace their built-in counterparts, so a file
// can retune one list without restating the rest.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary file: %w", err)
	}

	var overlay Vocabulary
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parse vocabulary file %s: %w", path, err)
	}

	v := Default()
	merge(&v.ExecutiveKeywords, overlay.ExecutiveKeywords)
	merge(&v.ExecutiveTitles, overlay.ExecutiveTitles)
	merge(&v.FalsePositiveNames, overlay.FalsePositiveNames)
	merge(&v.InvalidFirstWords, overlay.InvalidFirstWords)
	merge(&v.InvalidLastWords, overlay.InvalidLastWords)
	merge(&v.PublicationSecondWords, overlay.PublicationSecondWords)
	merge(&v.VerbSurnames, overlay.VerbSurnames)
	merge(&v.PoliticalSurnames, overlay.PoliticalSurnames)
	merge(&v.ShortStopwords, overlay.ShortStopwords)

	return v, nil
}

func merge(dst *[]string, src []string) {
	if len(src) > 0 {
		*dst = src
	}
}
