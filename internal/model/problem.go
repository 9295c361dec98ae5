// Package model defines the catalog and visitor memory data types.
package model

// Lane is the audience segment a problem belongs to.
type Lane string

const (
	LaneWork      Lane = "work"
	LaneBusiness  Lane = "business"
	LaneSchool    Lane = "school"
	LaneHome      Lane = "home"
	LaneCuriosity Lane = "curiosity"
)

// LaneOrder is the order lanes are presented in.
var LaneOrder = []Lane{LaneWork, LaneBusiness, LaneSchool, LaneHome, LaneCuriosity}

// ValidLanes are the allowed lanes.
var ValidLanes = map[Lane]bool{
	LaneWork:      true,
	LaneBusiness:  true,
	LaneSchool:    true,
	LaneHome:      true,
	LaneCuriosity: true,
}

// Archetype is the narrative treatment a problem page uses.
type Archetype string

const (
	ArchetypeDissolution Archetype = "dissolution"
	ArchetypeReframe     Archetype = "reframe"
	ArchetypeContainment Archetype = "containment"
)

// ValidArchetypes are the allowed archetypes.
var ValidArchetypes = map[Archetype]bool{
	ArchetypeDissolution: true,
	ArchetypeReframe:     true,
	ArchetypeContainment: true,
}

// Problem is an immutable catalog entry.
type Problem struct {
	Slug      string    `json:"slug" validate:"required"`
	Label     string    `json:"label" validate:"required"`
	Lane      Lane      `json:"lane" validate:"oneof=work business school home curiosity"`
	Archetype Archetype `json:"archetype" validate:"oneof=dissolution reframe containment"`
	// DomainSignal is how strongly the topic belongs to the medical vertical.
	DomainSignal     float64 `json:"domain_signal" validate:"gte=0,lte=1"`
	VerticalEligible bool    `json:"vertical_eligible"`
}

// PoolCategory groups problems for the selector field.
type PoolCategory string

const (
	PoolBusiness  PoolCategory = "business"
	PoolCognitive PoolCategory = "cognitive"
	PoolLearning  PoolCategory = "learning"
)

// PoolCategory maps the problem's lane onto the selector grouping.
func (p Problem) PoolCategory() PoolCategory {
	switch p.Lane {
	case LaneBusiness:
		return PoolBusiness
	case LaneSchool:
		return PoolLearning
	default:
		return PoolCognitive
	}
}
