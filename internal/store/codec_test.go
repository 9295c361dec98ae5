package store

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/rcliao/aiplayland-journey/internal/model"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want model.VisitorMemory
	}{
		{"empty", ``, model.VisitorMemory{}},
		{"not json", `{"visitedSlugs":`, model.VisitorMemory{}},
		{"not an object", `[1,2,3]`, model.VisitorMemory{}},
		{"empty object", `{}`, model.VisitorMemory{}},
		{
			"full record",
			`{"visitedSlugs":["a","b"],"archetypeCounts":{"reframe":2},"cumulativeDomainSignal":1.25,"guidedUses":1,"manualChooseUses":2,"surpriseUses":3}`,
			model.VisitorMemory{
				VisitedSlugs:           []string{"a", "b"},
				ArchetypeCounts:        map[string]int{"reframe": 2},
				CumulativeDomainSignal: 1.25,
				GuidedUses:             1,
				ManualChooseUses:       2,
				SurpriseUses:           3,
			},
		},
		{
			"wrong field types fall back per field",
			`{"visitedSlugs":"a","archetypeCounts":[1],"cumulativeDomainSignal":"high","guidedUses":4,"surpriseUses":true}`,
			model.VisitorMemory{GuidedUses: 4},
		},
		{
			"non string slugs skipped",
			`{"visitedSlugs":["a",7,null,"b"],"archetypeCounts":{"reframe":"x","containment":1}}`,
			model.VisitorMemory{
				VisitedSlugs:    []string{"a", "b"},
				ArchetypeCounts: map[string]int{"containment": 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, Decode([]byte(tt.raw))).Equal(tt.want)
		})
	}
}

func TestEncodeZeroRecord(t *testing.T) {
	b, err := Encode(model.VisitorMemory{})
	gt.NoError(t, err).Required()
	gt.Value(t, string(b)).Equal(`{"visitedSlugs":[],"archetypeCounts":{},"cumulativeDomainSignal":0,"guidedUses":0,"manualChooseUses":0,"surpriseUses":0}`)
}
