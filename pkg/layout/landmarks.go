package layout

import (
	"citygen/pkg/district"
	"citygen/pkg/prng"
)

// Landmark districts skip the procedural grid entirely and return a
// small hand-authored set of placements. Offsets are local meters from
// the tile center; the courtyard between slots is deliberately empty.

type landmarkSlot struct {
	dx, dz   float64
	typeHint string
	door     string
	scale    float64
	poi      bool
}

var landmarkSlots = map[district.Kind][]landmarkSlot{
	district.Temple: {
		{0, 0, "religious", "south", 1.9, true}, // main sanctuary
		{-24, 16, "religious", "east", 1.0, false},
		{24, 16, "religious", "west", 1.0, false},
		{0, -28, "school", "north", 1.2, false},
		{28, -20, "civic", "west", 1.1, false},
	},
	district.Caravanserai: {
		{0, 0, "hospitality", "south", 2.2, true}, // the han itself
		{32, 4, "commercial", "west", 1.0, false},
		{-32, 10, "commercial", "east", 1.0, false},
		{14, -30, "medical", "north", 1.1, false}, // quarantine house by the gate
	},
	district.Shrine: {
		{0, 0, "religious", "south", 1.3, true},
		{16, 12, "residential", "west", 0.8, false}, // keeper's hut
	},
}

// generateLandmarks returns the authored slots for the district kind,
// each with a position-stable seed so metadata still varies by session.
func generateLandmarks(d district.District, sessionSeed uint64) []Candidate {
	slots, ok := landmarkSlots[d.Kind]
	if !ok {
		return nil
	}

	cands := make([]Candidate, 0, len(slots))
	for i, s := range slots {
		seed := prng.CellSeed(sessionSeed, d.TileX, d.TileY, i+1, -(i + 1))
		cands = append(cands, Candidate{
			TileX:     d.TileX,
			TileY:     d.TileY,
			CellX:     i,
			CellZ:     0,
			Pos:       worldPos(d.TileX, d.TileY, s.dx, s.dz),
			Seed:      seed,
			TypeHint:  s.typeHint,
			DoorHint:  s.door,
			ScaleHint: s.scale,
			POI:       s.poi,
		})
	}
	return cands
}
