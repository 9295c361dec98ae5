package journey

import (
	"context"

	"github.com/rcliao/aiplayland-journey/internal/logging"
	"github.com/rcliao/aiplayland-journey/internal/metrics"
	"github.com/rcliao/aiplayland-journey/internal/model"
	"github.com/rcliao/aiplayland-journey/internal/store"
)

// Pick modes, as used in navigation URLs.
const (
	ModeGuide    = "guide"
	ModeChoose   = "choose"
	ModeSurprise = "surprise"
)

// Navigator plays the page-level flows: recording a view when a problem page
// opens, and recording a mode choice before picking where to go next.
// Recording failures are logged and never block navigation.
type Navigator struct {
	rec      *Recommender
	recorder *store.Recorder
}

// NewNavigator returns a Navigator.
func NewNavigator(rec *Recommender, recorder *store.Recorder) *Navigator {
	return &Navigator{rec: rec, recorder: recorder}
}

// Recommender returns the underlying recommender.
func (n *Navigator) Recommender() *Recommender {
	return n.rec
}

// ProblemView is what a problem page needs after its visit is recorded.
type ProblemView struct {
	Problem   model.Problem `json:"problem"`
	UpsellURL string        `json:"upsell_url,omitempty"`
	Reveal    bool          `json:"reveal"`
}

// Visit records a view of slug and returns the resolved problem.
func (n *Navigator) Visit(ctx context.Context, visitorID, slug string) ProblemView {
	p := n.rec.catalog.BySlug(slug)
	if err := n.recorder.RecordVisit(ctx, visitorID, p.Slug, p.Archetype, p.DomainSignal); err != nil {
		logging.Warn().Err(err).Str("visitor", visitorID).Str("slug", p.Slug).Msg("record visit")
	}

	view := ProblemView{Problem: p}
	if url, ok := n.rec.UpsellURL(p); ok {
		view.UpsellURL = url
		view.Reveal = n.rec.ShouldReveal(p, n.recorder.Memory(ctx, visitorID))
	}
	return view
}

// Guide records a guided-mode use and returns the next problem after from.
func (n *Navigator) Guide(ctx context.Context, visitorID, from string) string {
	if err := n.recorder.RecordGuidedUse(ctx, visitorID); err != nil {
		logging.Warn().Err(err).Str("visitor", visitorID).Msg("record guided use")
	}
	metrics.RecordPick(ModeGuide)
	return n.rec.Guided(from, n.recorder.Memory(ctx, visitorID))
}

// Choose records a choose-mode use and returns the related problems of from.
func (n *Navigator) Choose(ctx context.Context, visitorID, from string) []model.Problem {
	if err := n.recorder.RecordManualChooseUse(ctx, visitorID); err != nil {
		logging.Warn().Err(err).Str("visitor", visitorID).Msg("record choose use")
	}
	metrics.RecordPick(ModeChoose)
	return n.rec.Related(from)
}

// Surprise records a surprise-mode use and returns the surprise problem for from.
func (n *Navigator) Surprise(ctx context.Context, visitorID, from string) string {
	if err := n.recorder.RecordSurpriseUse(ctx, visitorID); err != nil {
		logging.Warn().Err(err).Str("visitor", visitorID).Msg("record surprise use")
	}
	metrics.RecordPick(ModeSurprise)
	return n.rec.Surprise(from)
}

// Memory returns the visitor's memory.
func (n *Navigator) Memory(ctx context.Context, visitorID string) model.VisitorMemory {
	return n.recorder.Memory(ctx, visitorID)
}
