package building

import (
	"citygen/pkg/district"
	"citygen/pkg/layout"
	"citygen/pkg/policy"
	"citygen/pkg/prng"
)

// Metadata seed salts. Layout-level draws use salts below 100; keep
// these at 100+ so the two ranges never correlate a layout decision
// with a metadata one.
const (
	saltType       = 100
	saltDoor       = 101
	saltScale      = 102
	saltGivenName  = 103
	saltFamilyName = 104
	saltProfession = 105
	saltAge        = 106
	saltQuarantine = 107
	saltPOI        = 108
)

// Background chance a non-landmark building is narratively significant.
const strayPOIRate = 0.008

// Enrich derives a full descriptor from one candidate placement. Pure:
// everything is a function of the candidate's seed and the district
// policy, independent of every other candidate.
func Enrich(c layout.Candidate, d district.District) Descriptor {
	p := d.Policy

	scale := p.SizeScale * prng.RangeF(c.Seed+saltScale, 0.85, 1.15)
	if c.ScaleHint > 0 {
		scale *= c.ScaleHint
	}

	return Descriptor{
		ID:          descriptorID(c.TileX, c.TileY, c.Pos),
		TileX:       c.TileX,
		TileY:       c.TileY,
		Pos:         c.Pos,
		Type:        pickType(c, p),
		Door:        pickDoor(c),
		SizeScale:   scale,
		District:    d.Kind,
		Owner:       pickOwner(c.Seed),
		POI:         c.POI || prng.Chance(c.Seed+saltPOI, strayPOIRate),
		Quarantined: prng.Chance(c.Seed+saltQuarantine, p.QuarantineRate),
		Seed:        c.Seed,
	}
}

// EnrichAll maps a candidate list through Enrich, preserving layout
// order (the spacing filter relies on first-appearance order being the
// generation pass order).
func EnrichAll(cands []layout.Candidate, d district.District) []Descriptor {
	out := make([]Descriptor, len(cands))
	for i, c := range cands {
		out[i] = Enrich(c, d)
	}
	return out
}

// pickType selects a building type from the district's weight table
// with a single draw. Landmark slots carry a fixed type hint instead.
func pickType(c layout.Candidate, p policy.DistrictPolicy) Type {
	if c.TypeHint != "" {
		return Type(c.TypeHint)
	}
	weights := p.TypeWeights
	if len(weights) == 0 {
		return Residential
	}

	total := 0.0
	for _, w := range weights {
		total += w.Weight
	}
	if total <= 0 {
		return Residential
	}

	draw := prng.Random(c.Seed+saltType) * total
	acc := 0.0
	for _, w := range weights {
		acc += w.Weight
		if draw < acc {
			return Type(w.Type)
		}
	}
	return Type(weights[len(weights)-1].Type)
}

// pickDoor honors the layout's door hint (frontage faces the road,
// alleys face a walkable cell); grid placements have streets on all
// four sides, so any cardinal works.
func pickDoor(c layout.Candidate) DoorSide {
	if c.DoorHint != "" {
		return DoorSide(c.DoorHint)
	}
	switch prng.IntN(c.Seed+saltDoor, 4) {
	case 0:
		return DoorNorth
	case 1:
		return DoorSouth
	case 2:
		return DoorEast
	default:
		return DoorWest
	}
}

func pickOwner(seed int64) Owner {
	given := givenNames[prng.IntN(seed+saltGivenName, len(givenNames))]
	family := familyNames[prng.IntN(seed+saltFamilyName, len(familyNames))]
	return Owner{
		Name:       given + " " + family,
		Profession: professions[prng.IntN(seed+saltProfession, len(professions))],
		Age:        prng.Range(seed+saltAge, ownerMinAge, ownerMaxAge),
	}
}
