// Package building derives the semantic attributes of each placed
// building from its placement seed. Descriptors are immutable after
// creation: nothing downstream mutates one, and two placements with the
// same seed always enrich to the same descriptor regardless of
// iteration order.
package building

import (
	"fmt"
	"math"

	"citygen/pkg/district"
	"citygen/pkg/geo"
)

// Type classifies a building's function.
type Type string

const (
	Residential Type = "residential"
	Commercial  Type = "commercial"
	Religious   Type = "religious"
	Civic       Type = "civic"
	School      Type = "school"
	Medical     Type = "medical"
	Hospitality Type = "hospitality"
)

// Privileged reports whether the type is subject to population caps and
// minimum-separation clearance.
func (t Type) Privileged() bool {
	return t == Religious || t == Civic
}

// DoorSide is the cardinal direction a building's door faces.
// North is +Z, east is +X.
type DoorSide string

const (
	DoorNorth DoorSide = "north"
	DoorSouth DoorSide = "south"
	DoorEast  DoorSide = "east"
	DoorWest  DoorSide = "west"
)

// Owner is the flavor identity attached to a building.
type Owner struct {
	Name       string `json:"name"`
	Profession string `json:"profession"`
	Age        int    `json:"age"`
}

// Descriptor is the immutable record for one generated building.
// Y position is resolved separately from terrain height by the host.
type Descriptor struct {
	ID          string        `json:"id"`
	TileX       int           `json:"tile_x"`
	TileY       int           `json:"tile_y"`
	Pos         geo.Point2D   `json:"pos"`
	Type        Type          `json:"type"`
	Door        DoorSide      `json:"door"`
	SizeScale   float64       `json:"size_scale"`
	District    district.Kind `json:"district"`
	Owner       Owner         `json:"owner"`
	POI         bool          `json:"poi"`
	Quarantined bool          `json:"quarantined"`
	Seed        int64         `json:"seed"`
}

// descriptorID derives the stable identity from position. Coordinates
// are fixed to decimeters so jittered placements still round-trip.
func descriptorID(tileX, tileY int, pos geo.Point2D) string {
	return fmt.Sprintf("bldg_%d_%d_%d_%d",
		tileX, tileY, int(math.Round(pos.X*10)), int(math.Round(pos.Z*10)))
}

// ParseID recovers the tile coordinates embedded in a descriptor ID.
// It reports false for anything that is not a well-formed ID.
func ParseID(id string, tileX, tileY *int) bool {
	var dx, dz int
	n, err := fmt.Sscanf(id, "bldg_%d_%d_%d_%d", tileX, tileY, &dx, &dz)
	return err == nil && n == 4
}
