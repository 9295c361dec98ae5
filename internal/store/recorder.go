package store

import (
	"context"

	"github.com/rcliao/aiplayland-journey/internal/metrics"
	"github.com/rcliao/aiplayland-journey/internal/model"
)

// Recorder applies visits and navigation-mode choices to visitor memory.
// Each call is a load, modify, save sequence with no locking across the
// three steps: concurrent writers for one visitor overwrite each other.
type Recorder struct {
	store Store
}

// NewRecorder returns a Recorder writing to s.
func NewRecorder(s Store) *Recorder {
	return &Recorder{store: s}
}

// Memory returns the visitor's current memory.
func (r *Recorder) Memory(ctx context.Context, visitorID string) model.VisitorMemory {
	return r.store.Load(ctx, visitorID)
}

// RecordVisit marks slug as seen. Archetype count and domain signal only
// accrue the first time a slug is seen.
func (r *Recorder) RecordVisit(ctx context.Context, visitorID, slug string, archetype model.Archetype, domainSignal float64) error {
	m := r.store.Load(ctx, visitorID)
	first := !m.HasVisited(slug)
	if first {
		m.VisitedSlugs = append(m.VisitedSlugs, slug)
		if m.ArchetypeCounts == nil {
			m.ArchetypeCounts = map[string]int{}
		}
		m.ArchetypeCounts[string(archetype)]++
		m.CumulativeDomainSignal += domainSignal
	}
	m.VisitedSlugs = dedupe(m.VisitedSlugs)
	if err := r.store.Save(ctx, visitorID, m); err != nil {
		return err
	}
	metrics.RecordVisit(first)
	return nil
}

// RecordGuidedUse counts a use of the guided mode.
func (r *Recorder) RecordGuidedUse(ctx context.Context, visitorID string) error {
	return r.bump(ctx, visitorID, func(m *model.VisitorMemory) { m.GuidedUses++ })
}

// RecordManualChooseUse counts a use of the choose mode.
func (r *Recorder) RecordManualChooseUse(ctx context.Context, visitorID string) error {
	return r.bump(ctx, visitorID, func(m *model.VisitorMemory) { m.ManualChooseUses++ })
}

// RecordSurpriseUse counts a use of the surprise mode.
func (r *Recorder) RecordSurpriseUse(ctx context.Context, visitorID string) error {
	return r.bump(ctx, visitorID, func(m *model.VisitorMemory) { m.SurpriseUses++ })
}

func (r *Recorder) bump(ctx context.Context, visitorID string, fn func(*model.VisitorMemory)) error {
	m := r.store.Load(ctx, visitorID)
	fn(&m)
	return r.store.Save(ctx, visitorID, m)
}

// dedupe drops repeated slugs, keeping first occurrences in order.
func dedupe(slugs []string) []string {
	seen := make(map[string]bool, len(slugs))
	out := slugs[:0]
	for _, s := range slugs {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
