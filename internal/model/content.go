package model

// LaneContent is the copy shown for a lane choice and its landing page.
type LaneContent struct {
	Slug         Lane   `json:"slug"`
	ChoiceLabel  string `json:"choice_label"`
	ChoiceMicro  string `json:"choice_micro"`
	HeroHeadline string `json:"hero_headline"`
	HeroSubhead  string `json:"hero_subhead"`
	Summary      string `json:"summary"`
	CTALabel     string `json:"cta_label"`
	CTAHref      string `json:"cta_href"`
}

// ModeKey identifies an entry mode on the landing page.
type ModeKey string

const (
	ModeImprove ModeKey = "improve"
	ModeExplore ModeKey = "explore"
	ModeResolve ModeKey = "resolve"
)

// ModeOrder is the order modes are presented in.
var ModeOrder = []ModeKey{ModeImprove, ModeExplore, ModeResolve}

// Suggestion is a problem offered as a starting point for a mode.
type Suggestion struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
	Hint  string `json:"hint"`
}

// Mode is an entry mode with its micro copy and suggested problems.
type Mode struct {
	Key        ModeKey      `json:"key"`
	Label      string       `json:"label"`
	MicroLines []string     `json:"micro_lines"`
	Suggested  []Suggestion `json:"suggested"`
}
