package catalog

import "github.com/rcliao/aiplayland-journey/internal/model"

var lanes = map[model.Lane]model.LaneContent{
	model.LaneWork: {
		Slug:         model.LaneWork,
		ChoiceLabel:  "Work",
		ChoiceMicro:  "emails · meetings · distractions",
		HeroHeadline: "AI that keeps the day moving",
		HeroSubhead:  "From inbox triage to decision briefs in seconds.",
		Summary:      "See how teams remove the sludge between ideas and action.",
		CTALabel:     "Enter the work lane",
		CTAHref:      "/work",
	},
	model.LaneBusiness: {
		Slug:         model.LaneBusiness,
		ChoiceLabel:  "Business",
		ChoiceMicro:  "calls · staffing · chaos",
		HeroHeadline: "Operational calm, on demand",
		HeroSubhead:  "AI that keeps leads warm, teams synced, and revenue visible.",
		Summary:      "Explore real automations that make companies feel lighter.",
		CTALabel:     "Visit the business lane",
		CTAHref:      "/business",
	},
	model.LaneSchool: {
		Slug:         model.LaneSchool,
		ChoiceLabel:  "School",
		ChoiceMicro:  "studying · focus · confidence",
		HeroHeadline: "Learning that keeps up",
		HeroSubhead:  "Personal study allies, research copilots, and exam calmers.",
		Summary:      "Meet the AI workflows students actually lean on.",
		CTALabel:     "Walk the school lane",
		CTAHref:      "/school",
	},
	model.LaneHome: {
		Slug:         model.LaneHome,
		ChoiceLabel:  "Home",
		ChoiceMicro:  "time · energy · balance",
		HeroHeadline: "Domestic autopilot mode",
		HeroSubhead:  "Delegating chores, schedules, and life admin to AI.",
		Summary:      "See the routines that give hours back every week.",
		CTALabel:     "Enter the home lane",
		CTAHref:      "/home",
	},
	model.LaneCuriosity: {
		Slug:         model.LaneCuriosity,
		ChoiceLabel:  "Curiosity",
		ChoiceMicro:  "because you felt something",
		HeroHeadline: "Follow the signal",
		HeroSubhead:  "Explore the experiments and side quests that started here.",
		Summary:      "Proof that fun projects become serious influence.",
		CTALabel:     "Unlock the curiosity lane",
		CTAHref:      "/curiosity",
	},
}

var modes = map[model.ModeKey]model.Mode{
	model.ModeImprove: {
		Key:   model.ModeImprove,
		Label: "Improve",
		MicroLines: []string{
			"Small frictions compound.",
			"We’ll remove the drag first.",
			"Then you get time back.",
		},
		Suggested: []model.Suggestion{
			{Slug: "inbox-chaos", Label: "Inbox Chaos", Hint: "triage → clarity"},
			{Slug: "context-switching", Label: "Context Switching", Hint: "focus returns"},
			{Slug: "decision-fatigue", Label: "Decision Fatigue", Hint: "reduce choices"},
		},
	},
	model.ModeExplore: {
		Key:   model.ModeExplore,
		Label: "Explore",
		MicroLines: []string{
			"No destination. Just discovery.",
			"Follow what catches your attention.",
			"The system will adapt.",
		},
		Suggested: []model.Suggestion{
			{Slug: "overwhelmed-by-ai", Label: "Overwhelmed by AI", Hint: "what’s real"},
			{Slug: "too-much-to-learn", Label: "Too Much to Learn", Hint: "steady progress"},
			{Slug: "focus-drift", Label: "Focus Drift", Hint: "gentle guidance"},
		},
	},
	model.ModeResolve: {
		Key:   model.ModeResolve,
		Label: "Resolve",
		MicroLines: []string{
			"Something is leaking.",
			"We’ll stop the bleeding.",
			"Then we harden the system.",
		},
		Suggested: []model.Suggestion{
			{Slug: "missed-calls", Label: "Missed Calls", Hint: "catch everything"},
			{Slug: "after-hours-panic", Label: "After-Hours Panic", Hint: "24/7 coverage"},
			{Slug: "voicemail-backlog", Label: "Voicemail Backlog", Hint: "no pileups"},
		},
	},
}

// Lanes returns lane content in presentation order.
func Lanes() []model.LaneContent {
	out := make([]model.LaneContent, 0, len(model.LaneOrder))
	for _, l := range model.LaneOrder {
		out = append(out, lanes[l])
	}
	return out
}

// Lane returns the content for one lane.
func Lane(slug string) (model.LaneContent, bool) {
	lc, ok := lanes[model.Lane(normalize(slug))]
	return lc, ok
}

// Modes returns the entry modes in presentation order.
func Modes() []model.Mode {
	out := make([]model.Mode, 0, len(model.ModeOrder))
	for _, k := range model.ModeOrder {
		out = append(out, modes[k])
	}
	return out
}

// Mode returns one entry mode.
func Mode(key string) (model.Mode, bool) {
	m, ok := modes[model.ModeKey(normalize(key))]
	return m, ok
}
