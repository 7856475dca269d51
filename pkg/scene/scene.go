// Package scene assembles generated buildings into a render-ready scene
// graph: flat entity list plus group indices so a host can pull "all
// quarantined buildings" or "everything on tile (0,0)" without
// rescanning.
package scene

import (
	"citygen/pkg/building"
	"citygen/pkg/district"
)

// EntityType identifies the kind of entity.
type EntityType string

const (
	EntityBuilding EntityType = "building"
	EntityPlaza    EntityType = "plaza"
)

// Flags entities can be grouped under.
const (
	FlagPOI         = "poi"
	FlagQuarantined = "quarantined"
)

// Vec3 is a 3D vector.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// BoundingBox defines an axis-aligned bounding box.
type BoundingBox struct {
	Min Vec3 `json:"min"`
	Max Vec3 `json:"max"`
}

// Entity is a single element in the scene graph.
type Entity struct {
	ID         string         `json:"id"`
	Type       EntityType     `json:"type"`
	Position   Vec3           `json:"position"`
	Dimensions Vec3           `json:"dimensions"`
	Rotation   [4]float64     `json:"rotation"` // quaternion [x, y, z, w]
	Material   string         `json:"material"`
	District   district.Kind  `json:"district,omitempty"`
	Tile       string         `json:"tile,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// Graph is the complete assembled scene.
type Graph struct {
	Metadata Metadata `json:"metadata"`
	Entities []Entity `json:"entities"`
	Groups   Groups   `json:"groups"`
}

// Metadata holds scene-level information.
type Metadata struct {
	Seed        uint64      `json:"seed"`
	GeneratedAt string      `json:"generated_at"`
	Bounds      BoundingBox `json:"bounds"`
}

// Groups organizes entity IDs by various axes for fast filtering.
type Groups struct {
	Districts map[district.Kind][]string `json:"districts"`
	Types     map[building.Type][]string `json:"types"`
	Tiles     map[string][]string        `json:"tiles"`
	Flags     map[string][]string        `json:"flags"`
}

// NewGraph creates an empty scene graph.
func NewGraph() *Graph {
	return &Graph{
		Entities: []Entity{},
		Groups: Groups{
			Districts: make(map[district.Kind][]string),
			Types:     make(map[building.Type][]string),
			Tiles:     make(map[string][]string),
			Flags:     make(map[string][]string),
		},
	}
}
