package catalog

import "github.com/rcliao/aiplayland-journey/internal/model"

func p(slug, label string, lane model.Lane, arch model.Archetype, signal float64, eligible bool) model.Problem {
	return model.Problem{
		Slug:             slug,
		Label:            label,
		Lane:             lane,
		Archetype:        arch,
		DomainSignal:     signal,
		VerticalEligible: eligible,
	}
}

// registry is the built-in problem table. Some topics are listed under two
// slugs because both URLs are live.
var registry = []model.Problem{
	p("missed-calls", "Missed Calls", model.LaneBusiness, model.ArchetypeDissolution, 1.0, true),
	p("voicemail", "Voicemail Backlog", model.LaneBusiness, model.ArchetypeDissolution, 0.95, true),
	p("voicemail-backlog", "Voicemail Backlog", model.LaneBusiness, model.ArchetypeDissolution, 0.95, true),
	p("overbooking", "Overbooking", model.LaneBusiness, model.ArchetypeDissolution, 0.7, true),
	p("scheduling-chaos", "Scheduling Chaos", model.LaneBusiness, model.ArchetypeDissolution, 0.85, true),
	p("manual-followups", "Manual Follow-Ups", model.LaneBusiness, model.ArchetypeDissolution, 0.65, true),
	p("lost-leads", "Lost Leads", model.LaneBusiness, model.ArchetypeDissolution, 0.6, true),
	p("inbox-chaos", "Inbox Chaos", model.LaneWork, model.ArchetypeDissolution, 0.4, false),
	p("context-switching", "Context Switching", model.LaneWork, model.ArchetypeDissolution, 0.35, false),
	p("decision-fatigue", "Decision Fatigue", model.LaneWork, model.ArchetypeReframe, 0.25, false),
	p("focus-drift", "Focus Drift", model.LaneWork, model.ArchetypeReframe, 0.25, false),
	p("mental-load", "Mental Load", model.LaneWork, model.ArchetypeReframe, 0.25, false),
	p("too-many-tabs", "Too Many Tabs", model.LaneWork, model.ArchetypeReframe, 0.2, false),
	p("ai-confusion", "Overwhelmed by AI", model.LaneWork, model.ArchetypeReframe, 0.2, false),
	p("overwhelmed-by-ai", "Overwhelmed by AI", model.LaneWork, model.ArchetypeReframe, 0.2, false),
	p("learning-overload", "Too Much to Learn", model.LaneSchool, model.ArchetypeReframe, 0.2, false),
	p("too-much-to-learn", "Too Much to Learn", model.LaneSchool, model.ArchetypeReframe, 0.2, false),
	p("falling-behind", "Falling Behind", model.LaneSchool, model.ArchetypeReframe, 0.2, false),
	p("homework-stress", "Homework Stress", model.LaneSchool, model.ArchetypeReframe, 0.18, false),
	p("test-anxiety", "Test Anxiety", model.LaneSchool, model.ArchetypeReframe, 0.18, false),
	p("no-study-partner", "No Study Partner", model.LaneSchool, model.ArchetypeReframe, 0.18, false),
	p("after-hours-panic", "After-Hours Panic", model.LaneBusiness, model.ArchetypeContainment, 1.0, true),
	p("staff-burnout", "Burnout Risk", model.LaneBusiness, model.ArchetypeContainment, 0.9, true),
	p("burnout-risk", "Burnout Risk", model.LaneBusiness, model.ArchetypeContainment, 0.9, true),
	p("emergency-calls", "Emergency Calls", model.LaneBusiness, model.ArchetypeContainment, 1.0, true),
	p("staffing-gaps", "Staffing Gaps", model.LaneBusiness, model.ArchetypeContainment, 0.8, true),
	p("no-coverage", "No Coverage", model.LaneBusiness, model.ArchetypeContainment, 0.85, true),
}

// upsellBaseURL hosts the medical vertical's landing pages.
const upsellBaseURL = "https://medreception.ai"

var upsellPaths = map[string]string{
	"missed-calls":      "/missed-calls-medical",
	"after-hours-panic": "/after-hours-answering",
	"voicemail-backlog": "/voicemail-management",
	"voicemail":         "/voicemail-management",
	"scheduling-chaos":  "/medical-scheduling",
	"staffing-gaps":     "/ai-medical-receptionist",
}
