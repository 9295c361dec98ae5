// Package catalog holds the problem registry and the lane and mode tables
// the landing pages are built from.
package catalog

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"

	"github.com/rcliao/aiplayland-journey/internal/model"
)

// Catalog is a read-only problem table keyed by slug.
type Catalog struct {
	sorted []model.Problem
	bySlug map[string]model.Problem
}

// New builds a catalog from problems. Slugs are lowercased and must be unique.
func New(problems []model.Problem) (*Catalog, error) {
	c := &Catalog{bySlug: make(map[string]model.Problem, len(problems))}
	for i, pr := range problems {
		pr.Slug = normalize(pr.Slug)
		if err := validate().Struct(pr); err != nil {
			return nil, goerr.Wrap(err, "invalid problem", goerr.V("index", i), goerr.V("slug", pr.Slug))
		}
		if _, dup := c.bySlug[pr.Slug]; dup {
			return nil, goerr.New("duplicate slug", goerr.V("slug", pr.Slug))
		}
		c.bySlug[pr.Slug] = pr
		c.sorted = append(c.sorted, pr)
	}
	slices.SortFunc(c.sorted, func(a, b model.Problem) int {
		return strings.Compare(a.Slug, b.Slug)
	})
	return c, nil
}

// MustNew is New for tables known to be valid.
func MustNew(problems []model.Problem) *Catalog {
	c, err := New(problems)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultCatalog = MustNew(registry)

// Default returns the built-in registry.
func Default() *Catalog {
	return defaultCatalog
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.sorted)
}

// Sorted returns all entries ordered by slug.
func (c *Catalog) Sorted() []model.Problem {
	return slices.Clone(c.sorted)
}

// Lookup returns the entry for slug without synthesizing a placeholder.
func (c *Catalog) Lookup(slug string) (model.Problem, bool) {
	pr, ok := c.bySlug[normalize(slug)]
	return pr, ok
}

// BySlug returns the entry for slug, or a placeholder for unknown slugs.
// It never fails.
func (c *Catalog) BySlug(slug string) model.Problem {
	s := normalize(slug)
	if pr, ok := c.bySlug[s]; ok {
		return pr
	}
	return Placeholder(s)
}

// Placeholder synthesizes the entry used for slugs missing from the catalog.
func Placeholder(slug string) model.Problem {
	s := normalize(slug)
	pr := model.Problem{
		Slug:         s,
		Label:        humanize(s),
		Lane:         model.LaneCuriosity,
		Archetype:    model.ArchetypeReframe,
		DomainSignal: 0.1,
	}
	if s == "" {
		pr.Slug = "unknown"
		pr.Label = "Unknown"
	}
	return pr
}

// ByLane returns the entries of one lane ordered by slug.
func (c *Catalog) ByLane(lane model.Lane) []model.Problem {
	var out []model.Problem
	for _, pr := range c.sorted {
		if pr.Lane == lane {
			out = append(out, pr)
		}
	}
	return out
}

// Search returns entries whose slug or label contains query, ignoring case.
func (c *Catalog) Search(query string) []model.Problem {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []model.Problem
	for _, pr := range c.sorted {
		if strings.Contains(pr.Slug, q) || strings.Contains(strings.ToLower(pr.Label), q) {
			out = append(out, pr)
		}
	}
	return out
}

// VerticalUpsellPath returns the medical landing path for slug, if it has one.
func (c *Catalog) VerticalUpsellPath(slug string) (string, bool) {
	path, ok := upsellPaths[normalize(slug)]
	return path, ok
}

// VerticalUpsellURL returns the absolute medical landing URL for slug.
func (c *Catalog) VerticalUpsellURL(slug string) (string, bool) {
	path, ok := c.VerticalUpsellPath(slug)
	if !ok {
		return "", false
	}
	return upsellBaseURL + path, true
}

func normalize(slug string) string {
	return strings.ToLower(slug)
}

// humanize title-cases the hyphen-separated words of a slug.
func humanize(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if r, size := utf8.DecodeRuneInString(w); size > 0 {
			words[i] = string(unicode.ToUpper(r)) + w[size:]
		}
	}
	return strings.Join(words, " ")
}
