package catalog

import (
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/m-mizutani/goerr/v2"

	"github.com/rcliao/aiplayland-journey/internal/model"
)

// fileEntry is one problem as written in a catalog file. The eligibility
// flag accepts yes/no as well as booleans.
type fileEntry struct {
	Slug             string  `koanf:"slug"`
	Label            string  `koanf:"label"`
	Lane             string  `koanf:"lane"`
	Archetype        string  `koanf:"archetype"`
	DomainSignal     float64 `koanf:"domain_signal"`
	VerticalEligible string  `koanf:"vertical_eligible"`
}

// LoadFile reads a YAML catalog with a top-level problems list.
func LoadFile(path string) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, goerr.Wrap(err, "failed to read catalog file", goerr.V("path", path))
	}

	var entries []fileEntry
	if err := k.Unmarshal("problems", &entries); err != nil {
		return nil, goerr.Wrap(err, "failed to decode catalog file", goerr.V("path", path))
	}
	if len(entries) == 0 {
		return nil, goerr.New("catalog file has no problems", goerr.V("path", path))
	}

	problems := make([]model.Problem, 0, len(entries))
	for _, e := range entries {
		problems = append(problems, model.Problem{
			Slug:             e.Slug,
			Label:            e.Label,
			Lane:             model.Lane(strings.ToLower(e.Lane)),
			Archetype:        model.Archetype(strings.ToLower(e.Archetype)),
			DomainSignal:     e.DomainSignal,
			VerticalEligible: parseYesNo(e.VerticalEligible),
		})
	}

	c, err := New(problems)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid catalog file", goerr.V("path", path))
	}
	return c, nil
}

func parseYesNo(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1":
		return true
	}
	return false
}
