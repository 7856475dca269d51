// Package policy loads the district policy table: the banding rules and
// per-district numeric constants the generators consume. The table is
// data, not code; hosts may override any of it from YAML.
package policy

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a policy table from a YAML file. Districts missing from
// the file fall back to the compiled-in defaults, so an override file
// only needs the entries it changes.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policy file: %w", err)
	}

	table := Default()
	if err := yaml.Unmarshal(data, table); err != nil {
		return nil, fmt.Errorf("parsing policy YAML: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid policy table: %w", err)
	}
	return table, nil
}

// LoadProject loads a policy table from a project directory. It looks
// for districts.yaml in the given directory.
func LoadProject(projectDir string) (*Table, error) {
	return Load(filepath.Join(projectDir, "districts.yaml"))
}

// District returns the policy for a district kind name. Unknown kinds
// get the wilds policy so classification stays total.
func (t *Table) District(kind string) DistrictPolicy {
	if d, ok := t.Districts[kind]; ok {
		return d
	}
	return t.Districts["wilds"]
}

// Validate checks structural sanity of the table. Numeric tuning is
// deliberately unchecked; qualitative constraints live in the tests of
// the packages that consume them.
func (t *Table) Validate() error {
	if len(t.Districts) == 0 {
		return fmt.Errorf("no districts defined")
	}
	if _, ok := t.Districts["wilds"]; !ok {
		return fmt.Errorf("missing fallback district %q", "wilds")
	}
	for name, d := range t.Districts {
		switch d.Layout {
		case LayoutGrid, LayoutFrontage, LayoutAlleys, LayoutLandmark:
		default:
			return fmt.Errorf("district %q: unknown layout style %q", name, d.Layout)
		}
		if d.SkipProbability < 0 || d.SkipProbability > 1 {
			return fmt.Errorf("district %q: skip_probability %v outside [0,1]", name, d.SkipProbability)
		}
		for _, tw := range d.TypeWeights {
			if tw.Weight < 0 {
				return fmt.Errorf("district %q: negative weight for type %q", name, tw.Type)
			}
		}
	}
	return nil
}
