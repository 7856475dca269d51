package policy

// Table is the complete generation policy: the world banding rules plus
// per-district layout parameters. All numeric thresholds here are tuned
// data, not invariants: edit the YAML, not the generators.
type Table struct {
	Version   string                    `yaml:"version" json:"version"`
	World     WorldLayout               `yaml:"world" json:"world"`
	Districts map[string]DistrictPolicy `yaml:"districts" json:"districts"`
}

// WorldLayout holds the radial banding rules that map tile coordinates
// to districts. Distances are in tiles from the market center at (0,0).
type WorldLayout struct {
	WealthyRadius        int `yaml:"wealthy_radius" json:"wealthy_radius"`
	HovelsRadius         int `yaml:"hovels_radius" json:"hovels_radius"`
	FieldsRadius         int `yaml:"fields_radius" json:"fields_radius"`
	CorridorLength       int `yaml:"corridor_length" json:"corridor_length"`
	CaravanseraiDistance int `yaml:"caravanserai_distance" json:"caravanserai_distance"`
	ShrineTileX          int `yaml:"shrine_tile_x" json:"shrine_tile_x"`
	ShrineTileY          int `yaml:"shrine_tile_y" json:"shrine_tile_y"`
}

// LayoutStyle selects which placement engine a district uses.
type LayoutStyle string

const (
	LayoutGrid     LayoutStyle = "grid"     // square lattice with skip gaps
	LayoutFrontage LayoutStyle = "frontage" // two rows flanking a road axis
	LayoutAlleys   LayoutStyle = "alleys"   // organic maze with walkable spine
	LayoutLandmark LayoutStyle = "landmark" // hand-authored fixed slots
)

// TypeWeight is one entry in a district's building-type distribution.
// Weights are relative; order matters for deterministic selection.
type TypeWeight struct {
	Type   string  `yaml:"type" json:"type"`
	Weight float64 `yaml:"weight" json:"weight"`
}

// DistrictPolicy holds the layout parameters for one district kind.
type DistrictPolicy struct {
	Layout          LayoutStyle  `yaml:"layout" json:"layout"`
	PlotHalfExtent  float64      `yaml:"plot_half_extent" json:"plot_half_extent"`   // lattice reach from tile center (m)
	Footprint       float64      `yaml:"footprint" json:"footprint"`                 // base building footprint (m)
	StreetWidth     float64      `yaml:"street_width" json:"street_width"`           // gap between plots (m)
	SkipProbability float64      `yaml:"skip_probability" json:"skip_probability"`   // chance a lattice cell stays empty
	SizeScale       float64      `yaml:"size_scale" json:"size_scale"`               // district footprint multiplier
	HeightScale     float64      `yaml:"height_scale" json:"height_scale"`           // district height multiplier
	PlazaRadius     float64      `yaml:"plaza_radius" json:"plaza_radius"`           // central clear zone radius (m), 0 = none
	MaxReligious    int          `yaml:"max_religious" json:"max_religious"`         // -1 = uncapped
	MaxCivic        int          `yaml:"max_civic" json:"max_civic"`                 // -1 = uncapped
	MinSeparation   float64      `yaml:"min_separation" json:"min_separation"`       // clearance around privileged buildings (m)
	QuarantineRate  float64      `yaml:"quarantine_rate" json:"quarantine_rate"`     // chance a building is flagged quarantined
	TypeWeights     []TypeWeight `yaml:"type_weights" json:"type_weights"`
}

// SeparationSq returns the squared minimum-separation threshold.
func (d DistrictPolicy) SeparationSq() float64 {
	return d.MinSeparation * d.MinSeparation
}

// Step returns the lattice step (footprint + street width) scaled by
// the district size multiplier.
func (d DistrictPolicy) Step() float64 {
	s := (d.Footprint + d.StreetWidth) * d.SizeScale
	if s < 1 {
		s = 1
	}
	return s
}
