// Package layout turns a classified tile into candidate building
// placements. Every engine is a pure function of (district, session
// seed): no clocks, no platform randomness, no iteration-order
// dependence. Candidates are raw positions plus a placement seed; the
// building package derives everything else from that seed.
package layout

import (
	"citygen/pkg/district"
	"citygen/pkg/geo"
	"citygen/pkg/policy"
	"citygen/pkg/report"
)

// TileSize is the world-space edge length of one tile in meters. Tile
// (tx, ty) occupies the square centered on (tx*TileSize, ty*TileSize).
const TileSize = 200.0

// Candidate is one proposed building placement, before metadata
// enrichment and spacing filters. Pos is in world XZ coordinates, and
// Seed is the basis for every per-building draw. Landmark slots carry a
// fixed TypeHint; frontage and alley placements carry a DoorHint naming
// the side guaranteed unobstructed.
type Candidate struct {
	TileX     int         `json:"tile_x"`
	TileY     int         `json:"tile_y"`
	CellX     int         `json:"cell_x"`
	CellZ     int         `json:"cell_z"`
	Pos       geo.Point2D `json:"pos"`
	Seed      int64       `json:"seed"`
	TypeHint  string      `json:"type_hint,omitempty"`
	DoorHint  string      `json:"door_hint,omitempty"`
	ScaleHint float64     `json:"scale_hint,omitempty"`
	POI       bool        `json:"poi,omitempty"`
}

// TileOrigin returns the world-space center of a tile.
func TileOrigin(tileX, tileY int) geo.Point2D {
	return geo.Pt(float64(tileX)*TileSize, float64(tileY)*TileSize)
}

// Generate produces the candidate placements for a tile under the
// district's layout style.
func Generate(d district.District, sessionSeed uint64) ([]Candidate, *report.Report) {
	rep := report.New()

	var cands []Candidate
	switch d.Policy.Layout {
	case policy.LayoutFrontage:
		cands = generateFrontage(d, sessionSeed)
	case policy.LayoutAlleys:
		cands = generateAlleys(d, sessionSeed)
	case policy.LayoutLandmark:
		cands = generateLandmarks(d, sessionSeed)
	default:
		cands = generateGrid(d, sessionSeed)
	}

	rep.AddInfo(report.StageLayout, "tile (%d,%d) %s: %d candidate placements",
		d.TileX, d.TileY, d.Kind, len(cands))
	return cands, rep
}

// Placement seed salts. Layout-level draws use low salts; the building
// package starts at 100 so the two ranges never collide.
const (
	saltOccupancy = 0 // the skip-probability draw is the cell seed itself
	saltJitterX   = 1
	saltJitterZ   = 2
	saltDoorPick  = 3
)

func worldPos(tileX, tileY int, localX, localZ float64) geo.Point2D {
	o := TileOrigin(tileX, tileY)
	return geo.Pt(o.X+localX, o.Z+localZ)
}
