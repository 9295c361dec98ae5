package store

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/rcliao/aiplayland-journey/internal/model"
)

func runRecorderTest(t *testing.T, newStore func(t *testing.T) Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("first access is empty", func(t *testing.T) {
		r := NewRecorder(newStore(t))
		m := r.Memory(ctx, "v")
		gt.Array(t, m.VisitedSlugs).Length(0)
		gt.Value(t, m.CumulativeDomainSignal).Equal(0.0)
	})

	t.Run("repeat visit is idempotent", func(t *testing.T) {
		r := NewRecorder(newStore(t))
		gt.NoError(t, r.RecordVisit(ctx, "v", "x", model.ArchetypeReframe, 0.2)).Required()
		after1 := r.Memory(ctx, "v")
		gt.NoError(t, r.RecordVisit(ctx, "v", "x", model.ArchetypeReframe, 0.2)).Required()
		after2 := r.Memory(ctx, "v")

		gt.Value(t, after2.VisitedSlugs).Equal([]string{"x"})
		gt.Value(t, after2.ArchetypeCounts).Equal(after1.ArchetypeCounts)
		gt.Value(t, after2.CumulativeDomainSignal).Equal(after1.CumulativeDomainSignal)
		gt.Value(t, after2.ArchetypeCounts["reframe"]).Equal(1)
		gt.Value(t, after2.CumulativeDomainSignal).Equal(0.2)
	})

	t.Run("signal accrues across first visits", func(t *testing.T) {
		r := NewRecorder(newStore(t))
		r.RecordVisit(ctx, "v", "missed-calls", model.ArchetypeDissolution, 1.0)
		r.RecordVisit(ctx, "v", "after-hours-panic", model.ArchetypeContainment, 1.0)
		r.RecordVisit(ctx, "v", "voicemail", model.ArchetypeDissolution, 0.5)

		m := r.Memory(ctx, "v")
		gt.Value(t, m.CumulativeDomainSignal).Equal(2.5)
		gt.Value(t, m.ArchetypeCounts).Equal(map[string]int{"dissolution": 2, "containment": 1})
		gt.Array(t, m.VisitedSlugs).Length(3)
	})

	t.Run("mode counters", func(t *testing.T) {
		r := NewRecorder(newStore(t))
		gt.NoError(t, r.RecordGuidedUse(ctx, "v")).Required()
		gt.NoError(t, r.RecordGuidedUse(ctx, "v")).Required()
		gt.NoError(t, r.RecordManualChooseUse(ctx, "v")).Required()
		gt.NoError(t, r.RecordSurpriseUse(ctx, "v")).Required()
		gt.NoError(t, r.RecordSurpriseUse(ctx, "v")).Required()
		gt.NoError(t, r.RecordSurpriseUse(ctx, "v")).Required()

		m := r.Memory(ctx, "v")
		gt.Value(t, m.GuidedUses).Equal(2)
		gt.Value(t, m.ManualChooseUses).Equal(1)
		gt.Value(t, m.SurpriseUses).Equal(3)
	})

	t.Run("visitors are isolated", func(t *testing.T) {
		r := NewRecorder(newStore(t))
		r.RecordVisit(ctx, "v1", "x", model.ArchetypeReframe, 0.5)
		r.RecordGuidedUse(ctx, "v2")

		gt.Bool(t, r.Memory(ctx, "v2").HasVisited("x")).False()
		gt.Value(t, r.Memory(ctx, "v1").GuidedUses).Equal(0)
	})
}

func TestRecorder_SQLite(t *testing.T) {
	runRecorderTest(t, func(t *testing.T) Store { return newTestStore(t) })
}

func TestRecorder_Mem(t *testing.T) {
	runRecorderTest(t, func(t *testing.T) Store { return NewMemStore() })
}

func TestRecorder_DedupesLegacyRecords(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	s.SetRaw("v", []byte(`{"visitedSlugs":["a","a","b"]}`))

	r := NewRecorder(s)
	gt.NoError(t, r.RecordVisit(ctx, "v", "a", model.ArchetypeReframe, 0.3)).Required()

	m := r.Memory(ctx, "v")
	gt.Value(t, m.VisitedSlugs).Equal([]string{"a", "b"})
	gt.Value(t, m.CumulativeDomainSignal).Equal(0.0)
}

func TestRecorder_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	r := NewRecorder(s)

	stale := r.Memory(ctx, "v")
	gt.NoError(t, r.RecordGuidedUse(ctx, "v")).Required()

	// A writer holding an older snapshot overwrites without merging.
	stale.SurpriseUses = 1
	gt.NoError(t, s.Save(ctx, "v", stale)).Required()

	m := r.Memory(ctx, "v")
	gt.Value(t, m.GuidedUses).Equal(0)
	gt.Value(t, m.SurpriseUses).Equal(1)
}
