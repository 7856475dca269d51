package layout

import (
	"citygen/pkg/district"
	"citygen/pkg/prng"
)

// generateGrid iterates a square lattice from −extent to +extent in
// steps of (footprint + street width), both scaled by the district.
// Each cell draws once against the skip probability, which produces
// organic gaps rather than a solid grid. A central plaza radius, when
// set, is excluded by squared distance so markets keep their open
// square.
func generateGrid(d district.District, sessionSeed uint64) []Candidate {
	p := d.Policy
	step := p.Step()
	n := int(p.PlotHalfExtent / step)
	if n < 0 {
		n = 0
	}
	plazaSq := p.PlazaRadius * p.PlazaRadius
	// Jitter stays well under half a step so cell positions never
	// collide and doors keep a clear street face.
	jitter := p.StreetWidth * 0.25

	var cands []Candidate
	for cz := -n; cz <= n; cz++ {
		for cx := -n; cx <= n; cx++ {
			seed := prng.CellSeed(sessionSeed, d.TileX, d.TileY, cx, cz)
			if prng.Chance(seed+saltOccupancy, p.SkipProbability) {
				continue
			}

			lx := float64(cx) * step
			lz := float64(cz) * step
			if plazaSq > 0 && lx*lx+lz*lz < plazaSq {
				continue
			}

			lx += prng.RangeF(seed+saltJitterX, -jitter, jitter)
			lz += prng.RangeF(seed+saltJitterZ, -jitter, jitter)

			cands = append(cands, Candidate{
				TileX: d.TileX,
				TileY: d.TileY,
				CellX: cx,
				CellZ: cz,
				Pos:   worldPos(d.TileX, d.TileY, lx, lz),
				Seed:  seed,
			})
		}
	}
	return cands
}
