package layout

import (
	"citygen/pkg/district"
	"citygen/pkg/prng"
)

// Alley carving. The maze is built constructively: a full-width spine
// row and perpendicular branch columns are reserved as walkable before
// any cell may hold a building, so an edge-to-edge path always exists
// no matter what the fill draws do.

const (
	alleyBranchEvery = 3 // lattice columns between walkable branches
	saltSpineRow     = 11
	saltBranchPhase  = 12
)

// alleyGrid describes the carved lattice for one tile: which cells are
// reserved walkable and the lattice radius n (cells run −n..+n).
type alleyGrid struct {
	n        int
	spineRow int
	phase    int
}

func carveAlleys(d district.District, sessionSeed uint64) alleyGrid {
	p := d.Policy
	step := p.Step()
	n := int(p.PlotHalfExtent / step)
	if n < 1 {
		n = 1
	}
	tileSeed := prng.TileSeed(sessionSeed, d.TileX, d.TileY)
	return alleyGrid{
		n:        n,
		spineRow: prng.Range(tileSeed+saltSpineRow, -1, 1),
		phase:    prng.IntN(tileSeed+saltBranchPhase, alleyBranchEvery),
	}
}

// walkable reports whether lattice cell (cx, cz) is part of the
// reserved alley network.
func (g alleyGrid) walkable(cx, cz int) bool {
	if cz == g.spineRow {
		return true
	}
	return (cx+g.n+g.phase)%alleyBranchEvery == 0
}

// WalkableMask exposes the carved alley network for a tile as a
// [row][col] grid, rows south to north. Pathing collaborators and the
// connectivity tests read this instead of re-deriving the carving.
func WalkableMask(d district.District, sessionSeed uint64) [][]bool {
	g := carveAlleys(d, sessionSeed)
	side := 2*g.n + 1
	mask := make([][]bool, side)
	for rz := 0; rz < side; rz++ {
		mask[rz] = make([]bool, side)
		for rx := 0; rx < side; rx++ {
			mask[rz][rx] = g.walkable(rx-g.n, rz-g.n)
		}
	}
	return mask
}

// generateAlleys fills the non-reserved cells of the carved lattice,
// giving the dense, organic hovel quarters their maze texture. Doors
// face an adjacent walkable cell so every building stays reachable.
func generateAlleys(d district.District, sessionSeed uint64) []Candidate {
	p := d.Policy
	g := carveAlleys(d, sessionSeed)
	step := p.Step()
	jitter := p.StreetWidth * 0.3

	var cands []Candidate
	for cz := -g.n; cz <= g.n; cz++ {
		for cx := -g.n; cx <= g.n; cx++ {
			if g.walkable(cx, cz) {
				continue
			}
			seed := prng.CellSeed(sessionSeed, d.TileX, d.TileY, cx, cz)
			if prng.Chance(seed+saltOccupancy, p.SkipProbability) {
				continue
			}

			door, ok := alleyDoor(g, cx, cz, seed)
			if !ok {
				// Cell sealed on all four sides; leave it empty rather
				// than place an unreachable building.
				continue
			}

			lx := float64(cx)*step + prng.RangeF(seed+saltJitterX, -jitter, jitter)
			lz := float64(cz)*step + prng.RangeF(seed+saltJitterZ, -jitter, jitter)

			cands = append(cands, Candidate{
				TileX:    d.TileX,
				TileY:    d.TileY,
				CellX:    cx,
				CellZ:    cz,
				Pos:      worldPos(d.TileX, d.TileY, lx, lz),
				Seed:     seed,
				DoorHint: door,
			})
		}
	}
	return cands
}

// alleyDoor picks a cardinal side whose neighboring cell is walkable,
// choosing deterministically among the open sides.
func alleyDoor(g alleyGrid, cx, cz int, seed int64) (string, bool) {
	type side struct {
		name   string
		dx, dz int
	}
	sides := [4]side{
		{"north", 0, 1},
		{"south", 0, -1},
		{"east", 1, 0},
		{"west", -1, 0},
	}

	var open []string
	for _, s := range sides {
		nx, nz := cx+s.dx, cz+s.dz
		if nx < -g.n || nx > g.n || nz < -g.n || nz > g.n {
			// Tile edge counts as open: the neighboring tile's border
			// cells are street by construction.
			open = append(open, s.name)
			continue
		}
		if g.walkable(nx, nz) {
			open = append(open, s.name)
		}
	}
	if len(open) == 0 {
		return "", false
	}
	return open[prng.IntN(seed+saltDoorPick, len(open))], true
}
