package model

import "slices"

// StorageKey is the fixed key a visitor's memory record is persisted under.
const StorageKey = "aiplayland_memory_v1"

// VisitorMemory is what a single visitor has seen and done. The zero value
// is the record of a visitor with no history.
type VisitorMemory struct {
	VisitedSlugs           []string       `json:"visitedSlugs"`
	ArchetypeCounts        map[string]int `json:"archetypeCounts"`
	CumulativeDomainSignal float64        `json:"cumulativeDomainSignal"`
	GuidedUses             int            `json:"guidedUses"`
	ManualChooseUses       int            `json:"manualChooseUses"`
	SurpriseUses           int            `json:"surpriseUses"`
}

// HasVisited reports whether slug was already recorded.
func (m VisitorMemory) HasVisited(slug string) bool {
	return slices.Contains(m.VisitedSlugs, slug)
}

// Visited returns the visited slugs as a set.
func (m VisitorMemory) Visited() map[string]bool {
	set := make(map[string]bool, len(m.VisitedSlugs))
	for _, s := range m.VisitedSlugs {
		set[s] = true
	}
	return set
}

// Clone returns a deep copy so callers can mutate without aliasing.
func (m VisitorMemory) Clone() VisitorMemory {
	out := m
	out.VisitedSlugs = slices.Clone(m.VisitedSlugs)
	if m.ArchetypeCounts != nil {
		out.ArchetypeCounts = make(map[string]int, len(m.ArchetypeCounts))
		for k, v := range m.ArchetypeCounts {
			out.ArchetypeCounts[k] = v
		}
	}
	return out
}

// VisitorRecord is a persisted memory with its owner, as exported.
type VisitorRecord struct {
	VisitorID string        `json:"visitor_id"`
	Memory    VisitorMemory `json:"memory"`
	UpdatedAt string        `json:"updated_at,omitempty"`
}
