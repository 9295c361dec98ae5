package journey

import (
	"github.com/rcliao/aiplayland-journey/internal/model"
)

// revealThreshold is the cumulative domain signal at which the vertical
// upsell may be revealed on a problem page.
const revealThreshold = 1.25

// UpsellURL returns the vertical landing URL to link from p's page. Only
// eligible business-lane problems on the allow-list have one.
func (r *Recommender) UpsellURL(p model.Problem) (string, bool) {
	if p.Lane != model.LaneBusiness || !p.VerticalEligible {
		return "", false
	}
	return r.catalog.VerticalUpsellURL(p.Slug)
}

// ShouldReveal reports whether the upsell for p should be revealed to a
// visitor with memory mem. The visitor must have used guided mode and built
// up enough domain signal. Callers show it at most once per session.
func (r *Recommender) ShouldReveal(p model.Problem, mem model.VisitorMemory) bool {
	if _, ok := r.UpsellURL(p); !ok {
		return false
	}
	return mem.GuidedUses > 0 && mem.CumulativeDomainSignal >= revealThreshold
}
