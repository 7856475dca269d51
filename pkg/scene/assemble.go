package scene

import (
	"fmt"
	"math"
	"time"

	"citygen/pkg/building"
	"citygen/pkg/district"
	"citygen/pkg/layout"
	"citygen/pkg/policy"
)

// Base visual dimensions per building type, in meters, before the
// per-building size scale is applied.
var baseDims = map[building.Type]Vec3{
	building.Residential: {X: 8, Y: 4.5, Z: 8},
	building.Commercial:  {X: 9, Y: 5.5, Z: 9},
	building.Religious:   {X: 14, Y: 11, Z: 14},
	building.Civic:       {X: 12, Y: 8, Z: 12},
	building.School:      {X: 10, Y: 6, Z: 10},
	building.Medical:     {X: 10, Y: 6, Z: 10},
	building.Hospitality: {X: 11, Y: 7, Z: 11},
}

var materials = map[building.Type]string{
	building.Residential: "mudbrick",
	building.Commercial:  "timber",
	building.Religious:   "stone",
	building.Civic:       "stone",
	building.School:      "plaster",
	building.Medical:     "limewash",
	building.Hospitality: "timber",
}

// Assemble converts enriched descriptors into a scene graph. Buildings
// become entities directly; tiles whose district reserves a plaza also
// gain a plaza entity at the tile center.
func Assemble(descs []building.Descriptor, table *policy.Table, sessionSeed uint64) *Graph {
	if table == nil {
		table = policy.Default()
	}
	g := NewGraph()

	seen := map[string]bool{}
	var plazaTiles []building.Descriptor
	for _, b := range descs {
		assembleBuilding(g, b)
		if table.District(string(b.District)).PlazaRadius > 0 && !seen[tileKey(b.TileX, b.TileY)] {
			seen[tileKey(b.TileX, b.TileY)] = true
			plazaTiles = append(plazaTiles, b)
		}
	}
	for _, b := range plazaTiles {
		assemblePlaza(g, b.TileX, b.TileY, table.District(string(b.District)).PlazaRadius, b.District)
	}

	g.Metadata = Metadata{
		Seed:        sessionSeed,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Bounds:      computeBounds(g.Entities),
	}
	return g
}

func assembleBuilding(g *Graph, b building.Descriptor) {
	dims, ok := baseDims[b.Type]
	if !ok {
		dims = baseDims[building.Residential]
	}
	s := b.SizeScale
	if s <= 0 {
		s = 1
	}

	meta := map[string]any{
		"owner":      b.Owner.Name,
		"profession": b.Owner.Profession,
		"age":        b.Owner.Age,
	}
	if b.POI {
		meta["poi"] = true
	}
	if b.Quarantined {
		meta["quarantined"] = true
	}

	e := Entity{
		ID:         b.ID,
		Type:       EntityBuilding,
		Position:   Vec3{X: b.Pos.X, Y: 0, Z: b.Pos.Z},
		Dimensions: Vec3{X: dims.X * s, Y: dims.Y * s, Z: dims.Z * s},
		Rotation:   doorQuat(b.Door),
		Material:   materialFor(b.Type),
		District:   b.District,
		Tile:       tileKey(b.TileX, b.TileY),
		Metadata:   meta,
	}
	addEntity(g, e, b)
}

func assemblePlaza(g *Graph, tileX, tileY int, radius float64, kind district.Kind) {
	center := layout.TileOrigin(tileX, tileY)
	g.Entities = append(g.Entities, Entity{
		ID:         fmt.Sprintf("plaza_%d_%d", tileX, tileY),
		Type:       EntityPlaza,
		Position:   Vec3{X: center.X, Y: 0, Z: center.Z},
		Dimensions: Vec3{X: radius * 2, Y: 0.2, Z: radius * 2},
		Rotation:   identityQuat(),
		Material:   "flagstone",
		District:   kind,
		Tile:       tileKey(tileX, tileY),
	})
	id := fmt.Sprintf("plaza_%d_%d", tileX, tileY)
	g.Groups.Districts[kind] = append(g.Groups.Districts[kind], id)
	g.Groups.Tiles[tileKey(tileX, tileY)] = append(g.Groups.Tiles[tileKey(tileX, tileY)], id)
}

// addEntity appends a building entity and updates all group indices.
func addEntity(g *Graph, e Entity, b building.Descriptor) {
	g.Entities = append(g.Entities, e)
	id := e.ID

	g.Groups.Districts[b.District] = append(g.Groups.Districts[b.District], id)
	g.Groups.Types[b.Type] = append(g.Groups.Types[b.Type], id)
	g.Groups.Tiles[e.Tile] = append(g.Groups.Tiles[e.Tile], id)
	if b.POI {
		g.Groups.Flags[FlagPOI] = append(g.Groups.Flags[FlagPOI], id)
	}
	if b.Quarantined {
		g.Groups.Flags[FlagQuarantined] = append(g.Groups.Flags[FlagQuarantined], id)
	}
}

func tileKey(tileX, tileY int) string {
	return fmt.Sprintf("%d,%d", tileX, tileY)
}

func materialFor(t building.Type) string {
	if m, ok := materials[t]; ok {
		return m
	}
	return "mudbrick"
}

// computeBounds calculates the AABB of all entities.
func computeBounds(entities []Entity) BoundingBox {
	if len(entities) == 0 {
		return BoundingBox{}
	}
	minV := Vec3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64}
	maxV := Vec3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64}

	for _, e := range entities {
		halfX := e.Dimensions.X / 2
		halfZ := e.Dimensions.Z / 2

		loX := e.Position.X - halfX
		hiX := e.Position.X + halfX
		loY := e.Position.Y
		hiY := e.Position.Y + e.Dimensions.Y
		loZ := e.Position.Z - halfZ
		hiZ := e.Position.Z + halfZ

		if loX < minV.X {
			minV.X = loX
		}
		if hiX > maxV.X {
			maxV.X = hiX
		}
		if loY < minV.Y {
			minV.Y = loY
		}
		if hiY > maxV.Y {
			maxV.Y = hiY
		}
		if loZ < minV.Z {
			minV.Z = loZ
		}
		if hiZ > maxV.Z {
			maxV.Z = hiZ
		}
	}
	return BoundingBox{Min: minV, Max: maxV}
}

func identityQuat() [4]float64 {
	return [4]float64{0, 0, 0, 1}
}

// doorQuat yaws the building so its door face points at the door side.
// Models face north (+Z) unrotated.
func doorQuat(side building.DoorSide) [4]float64 {
	var yaw float64
	switch side {
	case building.DoorEast:
		yaw = math.Pi / 2
	case building.DoorSouth:
		yaw = math.Pi
	case building.DoorWest:
		yaw = -math.Pi / 2
	}
	half := yaw / 2
	return [4]float64{0, math.Sin(half), 0, math.Cos(half)}
}
