package scene

import (
	"citygen/pkg/report"
)

// ValidateGraph performs structural validation on an assembled scene:
// entity integrity, group index consistency, and bounds enclosure.
func ValidateGraph(g *Graph) *report.Report {
	r := report.New()

	if g == nil {
		r.AddWarning(report.StageScene, "scene graph is nil")
		return r
	}

	validateEntityIDs(g, r)
	validateGroupIndices(g, r)
	validateBoundsEnclosure(g, r)
	validateEntityDimensions(g, r)

	return r
}

func validateEntityIDs(g *Graph, r *report.Report) {
	seen := make(map[string]int, len(g.Entities))

	for i, e := range g.Entities {
		if e.ID == "" {
			r.AddWarning(report.StageScene, "entity at index %d has empty ID", i)
			continue
		}
		if prev, exists := seen[e.ID]; exists {
			r.AddWarning(report.StageScene, "duplicate entity ID %q at indices %d and %d", e.ID, prev, i)
		}
		seen[e.ID] = i
	}
}

func validateGroupIndices(g *Graph, r *report.Report) {
	entityIDs := make(map[string]bool, len(g.Entities))
	for _, e := range g.Entities {
		entityIDs[e.ID] = true
	}

	check := func(axis, name string, ids []string) {
		for _, id := range ids {
			if !entityIDs[id] {
				r.AddWarning(report.StageScene, "group %s.%s references unknown entity %q", axis, name, id)
			}
		}
	}

	for kind, ids := range g.Groups.Districts {
		check("districts", string(kind), ids)
	}
	for t, ids := range g.Groups.Types {
		check("types", string(t), ids)
	}
	for tile, ids := range g.Groups.Tiles {
		check("tiles", tile, ids)
	}
	for flag, ids := range g.Groups.Flags {
		check("flags", flag, ids)
	}
}

func validateBoundsEnclosure(g *Graph, r *report.Report) {
	bounds := g.Metadata.Bounds
	const tolerance = 1.0

	for _, e := range g.Entities {
		halfX := e.Dimensions.X / 2
		halfZ := e.Dimensions.Z / 2

		if e.Position.X-halfX < bounds.Min.X-tolerance || e.Position.X+halfX > bounds.Max.X+tolerance {
			r.AddWarning(report.StageScene, "entity %q X extent [%.1f, %.1f] outside scene bounds [%.1f, %.1f]",
				e.ID, e.Position.X-halfX, e.Position.X+halfX, bounds.Min.X, bounds.Max.X)
			break
		}
		if e.Position.Z-halfZ < bounds.Min.Z-tolerance || e.Position.Z+halfZ > bounds.Max.Z+tolerance {
			r.AddWarning(report.StageScene, "entity %q Z extent [%.1f, %.1f] outside scene bounds [%.1f, %.1f]",
				e.ID, e.Position.Z-halfZ, e.Position.Z+halfZ, bounds.Min.Z, bounds.Max.Z)
			break
		}
	}
}

func validateEntityDimensions(g *Graph, r *report.Report) {
	for _, e := range g.Entities {
		if e.Dimensions.X <= 0 || e.Dimensions.Y <= 0 || e.Dimensions.Z <= 0 {
			r.AddWarning(report.StageScene, "entity %q has zero or negative dimension (%.2f, %.2f, %.2f)",
				e.ID, e.Dimensions.X, e.Dimensions.Y, e.Dimensions.Z)
		}
	}
}
