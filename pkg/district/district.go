// Package district assigns a zoning district to every tile of the open
// world. Classification is a pure banding function of tile coordinates:
// no seed, no state, total over all int32 inputs. Far-out coordinates
// classify to wilds rather than failing.
package district

import "citygen/pkg/policy"

// Kind is a named zoning category.
type Kind string

const (
	Market       Kind = "market"
	Wealthy      Kind = "wealthy"
	Civic        Kind = "civic"
	Temple       Kind = "temple"
	Hovels       Kind = "hovels"
	RoadCorridor Kind = "road_corridor"
	Caravanserai Kind = "caravanserai"
	Shrine       Kind = "shrine"
	Fields       Kind = "fields"
	Wilds        Kind = "wilds"
)

// District is a classified tile: the kind plus its layout parameters
// resolved from the policy table.
type District struct {
	Kind   Kind                  `json:"kind"`
	TileX  int                   `json:"tile_x"`
	TileY  int                   `json:"tile_y"`
	Policy policy.DistrictPolicy `json:"policy"`
}

// Classify maps a tile coordinate to its district. Banding, from most
// specific to least: the shrine tile, the market center, caravanserai
// stops, the temple diagonals, the civic cross, road corridors along
// the axes, then square rings of wealthy, hovels and fields, with wilds
// beyond everything.
func Classify(table *policy.Table, tileX, tileY int) District {
	kind := classifyKind(table.World, tileX, tileY)
	return District{
		Kind:   kind,
		TileX:  tileX,
		TileY:  tileY,
		Policy: table.District(string(kind)),
	}
}

func classifyKind(w policy.WorldLayout, tileX, tileY int) Kind {
	x := int64(tileX)
	y := int64(tileY)
	ax := absI64(x)
	ay := absI64(y)
	ring := maxI64(ax, ay) // Chebyshev distance: square rings

	switch {
	case x == int64(w.ShrineTileX) && y == int64(w.ShrineTileY):
		return Shrine
	case x == 0 && y == 0:
		return Market
	case isCaravanserai(w, x, y):
		return Caravanserai
	case ax == 1 && ay == 1:
		return Temple
	case ax+ay == 1:
		return Civic
	case (x == 0 || y == 0) && ring <= int64(w.CorridorLength):
		return RoadCorridor
	case ring <= int64(w.WealthyRadius):
		return Wealthy
	case ring <= int64(w.HovelsRadius):
		return Hovels
	case ring <= int64(w.FieldsRadius):
		return Fields
	default:
		return Wilds
	}
}

func isCaravanserai(w policy.WorldLayout, x, y int64) bool {
	d := int64(w.CaravanseraiDistance)
	if d <= 0 {
		return false
	}
	return (absI64(x) == d && y == 0) || (x == 0 && absI64(y) == d)
}

func absI64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
