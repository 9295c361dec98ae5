package store

import (
	"github.com/goccy/go-json"

	"github.com/rcliao/aiplayland-journey/internal/metrics"
	"github.com/rcliao/aiplayland-journey/internal/model"
)

// Encode serializes a memory record.
func Encode(m model.VisitorMemory) ([]byte, error) {
	if m.VisitedSlugs == nil {
		m.VisitedSlugs = []string{}
	}
	if m.ArchetypeCounts == nil {
		m.ArchetypeCounts = map[string]int{}
	}
	return json.Marshal(m)
}

// Decode parses a memory record. Fields of the wrong type fall back to
// their zero value; an unparsable record yields the zero memory.
func Decode(raw []byte) model.VisitorMemory {
	var m model.VisitorMemory
	if len(raw) == 0 {
		return m
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		metrics.MemoryDecodeFailures.Inc()
		return m
	}

	var items []json.RawMessage
	if json.Unmarshal(fields["visitedSlugs"], &items) == nil {
		for _, it := range items {
			var s *string
			if json.Unmarshal(it, &s) == nil && s != nil {
				m.VisitedSlugs = append(m.VisitedSlugs, *s)
			}
		}
	}

	var counts map[string]json.RawMessage
	if json.Unmarshal(fields["archetypeCounts"], &counts) == nil && counts != nil {
		m.ArchetypeCounts = make(map[string]int, len(counts))
		for k, v := range counts {
			if n, ok := number(v); ok {
				m.ArchetypeCounts[k] = int(n)
			}
		}
	}

	m.CumulativeDomainSignal, _ = number(fields["cumulativeDomainSignal"])
	m.GuidedUses = integer(fields["guidedUses"])
	m.ManualChooseUses = integer(fields["manualChooseUses"])
	m.SurpriseUses = integer(fields["surpriseUses"])
	return m
}

func number(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	return f, true
}

func integer(raw json.RawMessage) int {
	f, _ := number(raw)
	return int(f)
}
