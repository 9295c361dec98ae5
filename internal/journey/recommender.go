// Package journey picks the next problem page to show a visitor under the
// guided, choose and surprise navigation modes.
package journey

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"unicode/utf16"

	"github.com/rcliao/aiplayland-journey/internal/catalog"
	"github.com/rcliao/aiplayland-journey/internal/model"
)

// DefaultEntry is the entry point used when the catalog is empty.
const DefaultEntry = "missed-calls"

// Guided scoring weights.
const (
	sameArchetypeBonus = 100
	unvisitedBonus     = 35
	visitedPenalty     = -120
	verticalLaneBonus  = 25
	domainSignalWeight = 40
	sameLaneBonus      = 6
	verticalThreshold  = 1.0
)

const (
	relatedLimit = 5
	surpriseSalt = "::surprise"
	fnvOffset32  = 2166136261
	fnvPrime32   = 16777619
)

// Recommender picks problems from a catalog. It holds no visitor state.
type Recommender struct {
	catalog *catalog.Catalog
}

// New returns a recommender over c.
func New(c *catalog.Catalog) *Recommender {
	return &Recommender{catalog: c}
}

// Catalog returns the catalog picks are made from.
func (r *Recommender) Catalog() *catalog.Catalog {
	return r.catalog
}

// ScoredProblem is a guided candidate with its score.
type ScoredProblem struct {
	Slug  string `json:"slug"`
	Score int    `json:"score"`
}

// Score rates candidate as the guided successor of current.
func Score(current, candidate model.Problem, mem model.VisitorMemory) int {
	return score(current, candidate, mem.Visited(), mem.CumulativeDomainSignal)
}

func score(current, p model.Problem, visited map[string]bool, cumulative float64) int {
	s := 0
	if p.Archetype == current.Archetype {
		s += sameArchetypeBonus
	}
	if visited[p.Slug] {
		s += visitedPenalty
	} else {
		s += unvisitedBonus
	}
	if cumulative >= verticalThreshold {
		if p.Lane == model.LaneBusiness {
			s += verticalLaneBonus
		}
		s += int(roundHalfUp(p.DomainSignal * domainSignalWeight))
	}
	if p.Lane == current.Lane {
		s += sameLaneBonus
	}
	return s
}

// Ranked returns every guided candidate for from, best first. It is empty
// when from does not resolve to a catalog entry.
func (r *Recommender) Ranked(from string, mem model.VisitorMemory) []ScoredProblem {
	current, ok := r.catalog.Lookup(from)
	if !ok {
		return nil
	}

	visited := mem.Visited()
	var out []ScoredProblem
	for _, p := range r.catalog.Sorted() {
		if p.Slug == current.Slug {
			continue
		}
		out = append(out, ScoredProblem{
			Slug:  p.Slug,
			Score: score(current, p, visited, mem.CumulativeDomainSignal),
		})
	}

	slices.SortStableFunc(out, func(a, b ScoredProblem) int {
		if a.Score != b.Score {
			return cmp.Compare(b.Score, a.Score)
		}
		return strings.Compare(a.Slug, b.Slug)
	})
	return out
}

// Guided returns the best next problem after from. An unresolved from yields
// the first problem by slug.
func (r *Recommender) Guided(from string, mem model.VisitorMemory) string {
	current, ok := r.catalog.Lookup(from)
	if !ok {
		return r.first()
	}
	ranked := r.Ranked(from, mem)
	if len(ranked) == 0 {
		return current.Slug
	}
	return ranked[0].Slug
}

// Related returns up to five problems sharing an archetype or lane with from,
// in slug order. An unresolved from yields the first five problems.
func (r *Recommender) Related(from string) []model.Problem {
	list := r.catalog.Sorted()
	current, ok := r.catalog.Lookup(from)
	if !ok {
		return list[:min(relatedLimit, len(list))]
	}

	out := make([]model.Problem, 0, relatedLimit)
	for _, p := range list {
		if len(out) == relatedLimit {
			break
		}
		if p.Slug == current.Slug {
			continue
		}
		if p.Archetype == current.Archetype || p.Lane == current.Lane {
			out = append(out, p)
		}
	}
	return out
}

// Surprise returns a problem of a different archetype than from, chosen by
// hashing from. The same from always yields the same problem.
func (r *Recommender) Surprise(from string) string {
	list := r.catalog.Sorted()
	current, ok := r.catalog.Lookup(from)

	candidates := list
	if ok {
		candidates = nil
		for _, p := range list {
			if p.Archetype != current.Archetype {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) == 0 {
		return r.first()
	}

	idx := hashString(from+surpriseSalt) % uint32(len(candidates))
	return candidates[idx].Slug
}

func (r *Recommender) first() string {
	list := r.catalog.Sorted()
	if len(list) == 0 {
		return DefaultEntry
	}
	return list[0].Slug
}

// hashString is 32-bit FNV-1a over the UTF-16 code units of s, so that ids
// match the ones minted by the browser.
func hashString(s string) uint32 {
	h := uint32(fnvOffset32)
	for _, u := range utf16.Encode([]rune(s)) {
		h ^= uint32(u)
		h *= fnvPrime32
	}
	return h
}

// roundHalfUp rounds x.5 towards positive infinity.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
