package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// CleanHTML strips markup from feed content and collapses whitespace. It
// never fails: when the markup is too broken for goquery it degrades to a
// plain tag-stripping pass.
func CleanHTML(html string) string {
	if html == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return collapseWhitespace(tagPattern.ReplaceAllString(html, " "))
	}

	doc.Find("script, style").Remove()
	return collapseWhitespace(doc.Text())
}

// collapseWhitespace reduces all whitespace runs (including NBSP) to single
// spaces and trims.
func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}

// foldDiacritics strips combining marks so accented and plain spellings
// compare equal ("Nestlé" folds to "Nestle"). Extracted text keeps its
// accents; folding happens only at match time.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
