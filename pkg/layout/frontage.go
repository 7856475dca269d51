package layout

import (
	"citygen/pkg/district"
	"citygen/pkg/prng"
)

// generateFrontage places two rows of buildings flanking a road axis at
// fixed spacing. Corridors on the Y axis of the world run north-south;
// everything else runs east-west. Doors always face the road, which is
// guaranteed clear, so the door hint is fixed per row.
func generateFrontage(d district.District, sessionSeed uint64) []Candidate {
	p := d.Policy
	step := p.Step()
	n := int(p.PlotHalfExtent / step)
	if n < 0 {
		n = 0
	}
	// Rows sit half a street off the road edge so facades line up.
	rowOffset := p.StreetWidth + p.Footprint*p.SizeScale*0.5

	northSouth := d.TileX == 0 && d.TileY != 0

	var cands []Candidate
	for _, row := range []int{-1, 1} {
		for ci := -n; ci <= n; ci++ {
			seed := prng.CellSeed(sessionSeed, d.TileX, d.TileY, ci, row)
			if prng.Chance(seed+saltOccupancy, p.SkipProbability) {
				continue
			}

			along := float64(ci) * step
			along += prng.RangeF(seed+saltJitterX, -p.StreetWidth*0.2, p.StreetWidth*0.2)
			across := float64(row) * rowOffset

			var lx, lz float64
			var door string
			if northSouth {
				lx, lz = across, along
				if row > 0 {
					door = "west" // road is at −X
				} else {
					door = "east"
				}
			} else {
				lx, lz = along, across
				if row > 0 {
					door = "south" // road is at −Z
				} else {
					door = "north"
				}
			}

			cands = append(cands, Candidate{
				TileX:    d.TileX,
				TileY:    d.TileY,
				CellX:    ci,
				CellZ:    row,
				Pos:      worldPos(d.TileX, d.TileY, lx, lz),
				Seed:     seed,
				DoorHint: door,
			})
		}
	}
	return cands
}
