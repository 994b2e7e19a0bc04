// Package drafting turns approved announcements into LinkedIn post drafts
// using fill-in templates.
package drafting

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/jonesrussell/people-moves/internal/domain"
)

// MaxPostLength is LinkedIn's post character limit. Drafts are truncated
// to fit.
const MaxPostLength = 3000

// defaultHashtagCount is how many hashtags a draft carries.
const defaultHashtagCount = 5

// minimalHashtagCount is used for the stripped-down draft variant.
const minimalHashtagCount = 3

// defaultHashtags are appended to every draft, company tag first when one
// can be built.
var defaultHashtags = []string{
	"#MeatIndustry",
	"#PoultryIndustry",
	"#PeopleOnTheMove",
	"#Leadership",
	"#FoodIndustry",
	"#CareerMoves",
	"#Congratulations",
}

// Template placeholders: %[1]s person, %[2]s title, %[3]s company,
// %[4]s hashtags.
var templates = map[string][]string{
	"appointed": {
		"%[1]s has been appointed %[2]s at %[3]s.\n\n%[4]s",
		"%[3]s has named %[1]s as %[2]s.\n\n%[4]s",
	},
	"promoted": {
		"%[1]s has been promoted to %[2]s at %[3]s.\n\n%[4]s",
		"%[3]s has promoted %[1]s to %[2]s.\n\n%[4]s",
	},
	"joins": {
		"%[1]s has joined %[3]s as %[2]s.\n\n%[4]s",
		"%[1]s joins %[3]s as %[2]s.\n\n%[4]s",
	},
	"default": {
		"%[1]s is now %[2]s at %[3]s.\n\n%[4]s",
		"%[3]s announces %[1]s as %[2]s.\n\n%[4]s",
	},
}

// Drafter generates post drafts. The rand source is injectable so tests
// are deterministic.
type Drafter struct {
	rng *rand.Rand
}

// New creates a Drafter seeded from the source. A nil source uses the
// shared global source.
func New(rng *rand.Rand) *Drafter {
	return &Drafter{rng: rng}
}

// normalizeAction buckets the stored action label into a template family.
func normalizeAction(action string) string {
	action = strings.ToLower(action)
	switch {
	case strings.Contains(action, "promot"):
		return "promoted"
	case strings.Contains(action, "appoint"), strings.Contains(action, "named"):
		return "appointed"
	case strings.Contains(action, "join"), strings.Contains(action, "hire"):
		return "joins"
	default:
		return "default"
	}
}

// Hashtags builds the hashtag line, opening with a tag derived from the
// company name when it survives sanitization.
func Hashtags(companyName string, count int) string {
	if count <= 0 || count > len(defaultHashtags) {
		count = defaultHashtagCount
	}
	tags := append([]string(nil), defaultHashtags[:count]...)

	if tag := companyTag(companyName); tag != "" {
		tags = append([]string{tag}, tags...)
		tags = tags[:count]
	}
	return strings.Join(tags, " ")
}

// companyTag derives "#TysonFoods" from "Tyson Foods". Words with
// punctuation are dropped rather than mangled.
func companyTag(companyName string) string {
	var b strings.Builder
	b.WriteByte('#')
	for _, word := range strings.Fields(companyName) {
		if !isAlnum(word) {
			continue
		}
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(strings.ToLower(word[1:]))
	}
	if b.Len() <= 2 {
		return ""
	}
	return b.String()
}

func isAlnum(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return s != ""
}

func (d *Drafter) pick(options []string) string {
	if d.rng != nil {
		return options[d.rng.Intn(len(options))]
	}
	return options[rand.Intn(len(options))]
}

// Draft renders a post for an announcement. Missing fields fall back to
// neutral phrasing so a sparse record still yields a postable draft.
func (d *Drafter) Draft(a *domain.Announcement) string {
	person := a.PersonName
	if person == "" {
		person = "this executive"
	}
	title := a.NewTitle
	if title == "" {
		title = "their new role"
	}
	company := a.CompanyName
	if company == "" {
		company = "the company"
	}

	tmpl := d.pick(templates[normalizeAction(a.Action)])
	post := fmt.Sprintf(tmpl, person, title, company, Hashtags(company, defaultHashtagCount))
	post = strings.TrimSpace(post)

	if len(post) > MaxPostLength {
		post = post[:MaxPostLength]
	}
	return post
}

// Minimal renders the bare-bones variant used when a reviewer wants a
// shorter draft.
func (d *Drafter) Minimal(a *domain.Announcement) string {
	return strings.TrimSpace(fmt.Sprintf("%s is now %s at %s.\n\n%s",
		a.PersonName, a.NewTitle, a.CompanyName, Hashtags(a.CompanyName, minimalHashtagCount)))
}
