package store

import (
	"context"
	"os"
	"sort"
)

// Stats holds database statistics.
type Stats struct {
	DBPath           string          `json:"db_path"`
	DBSizeBytes      int64           `json:"db_size_bytes"`
	Visitors         int             `json:"visitors"`
	TotalVisits      int             `json:"total_visits"`
	ArchetypeVisits  map[string]int  `json:"archetype_visits"`
	ModeUses         ModeUses        `json:"mode_uses"`
	VerticalVisitors int             `json:"vertical_visitors"`
	TopProblems      []ProblemVisits `json:"top_problems"`
}

// ModeUses sums navigation-mode counters across visitors.
type ModeUses struct {
	Guided   int `json:"guided"`
	Choose   int `json:"choose"`
	Surprise int `json:"surprise"`
}

// ProblemVisits counts distinct visitors who saw a problem.
type ProblemVisits struct {
	Slug     string `json:"slug"`
	Visitors int    `json:"visitors"`
}

// topProblemsLimit caps Stats.TopProblems.
const topProblemsLimit = 10

// Stats aggregates all visitor records. A visitor counts towards
// VerticalVisitors once their cumulative domain signal reaches 1.
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{DBPath: s.path, ArchetypeVisits: map[string]int{}}

	if info, err := os.Stat(s.path); err == nil {
		st.DBSizeBytes = info.Size()
	}

	records, err := s.ExportAll(ctx)
	if err != nil {
		return st, err
	}

	perProblem := map[string]int{}
	for _, rec := range records {
		m := rec.Memory
		st.Visitors++
		st.TotalVisits += len(m.VisitedSlugs)
		for a, n := range m.ArchetypeCounts {
			st.ArchetypeVisits[a] += n
		}
		st.ModeUses.Guided += m.GuidedUses
		st.ModeUses.Choose += m.ManualChooseUses
		st.ModeUses.Surprise += m.SurpriseUses
		if m.CumulativeDomainSignal >= 1.0 {
			st.VerticalVisitors++
		}
		for _, slug := range m.VisitedSlugs {
			perProblem[slug]++
		}
	}

	for slug, n := range perProblem {
		st.TopProblems = append(st.TopProblems, ProblemVisits{Slug: slug, Visitors: n})
	}
	sort.Slice(st.TopProblems, func(i, j int) bool {
		if st.TopProblems[i].Visitors != st.TopProblems[j].Visitors {
			return st.TopProblems[i].Visitors > st.TopProblems[j].Visitors
		}
		return st.TopProblems[i].Slug < st.TopProblems[j].Slug
	})
	if len(st.TopProblems) > topProblemsLimit {
		st.TopProblems = st.TopProblems[:topProblemsLimit]
	}

	return st, nil
}
