// Package engine runs the full generation pipeline for a tile:
// classify, lay out, enrich, filter. Results are memoized per tile so
// repeated queries (camera revisits, server requests) pay once.
package engine

import (
	"citygen/pkg/building"
	"citygen/pkg/district"
	"citygen/pkg/gencache"
	"citygen/pkg/geo"
	"citygen/pkg/layout"
	"citygen/pkg/policy"
	"citygen/pkg/report"
	"citygen/pkg/spacing"
)

// Generator is the pipeline facade. It is safe for concurrent use: the
// pipeline stages are pure and the cache is internally synchronized.
type Generator struct {
	table *policy.Table
	seed  uint64
	cache *gencache.Cache
}

// New creates a generator over the given policy table and session seed.
// A nil table selects the built-in defaults. cacheCapacity <= 0 selects
// the cache's default capacity.
func New(table *policy.Table, sessionSeed uint64, cacheCapacity int) *Generator {
	if table == nil {
		table = policy.Default()
	}
	return &Generator{
		table: table,
		seed:  sessionSeed,
		cache: gencache.New(cacheCapacity),
	}
}

// Seed returns the session seed the generator was created with.
func (g *Generator) Seed() uint64 { return g.seed }

// Classify resolves the district for a tile without generating it.
func (g *Generator) Classify(tileX, tileY int) district.District {
	return district.Classify(g.table, tileX, tileY)
}

// Tile generates (or recalls) the buildings of one tile. The returned
// slice is shared with the cache and must not be modified.
func (g *Generator) Tile(tileX, tileY int) ([]building.Descriptor, *report.Report) {
	rep := report.New()
	key := gencache.Key{TileX: tileX, TileY: tileY, Seed: g.seed}
	if descs, ok := g.cache.Get(key); ok {
		rep.AddInfo(report.StageLayout, "tile (%d,%d): %d buildings (cached)", tileX, tileY, len(descs))
		return descs, rep
	}

	d := g.Classify(tileX, tileY)
	rep.AddInfo(report.StageClassify, "tile (%d,%d): district %s", tileX, tileY, d.Kind)

	cands, layoutRep := layout.Generate(d, g.seed)
	rep.Merge(layoutRep)

	descs := building.EnrichAll(cands, d)
	rep.AddInfo(report.StageMetadata, "tile (%d,%d): enriched %d placements", tileX, tileY, len(descs))

	descs, spacingRep := spacing.Filter(descs, d)
	rep.Merge(spacingRep)

	g.cache.Add(key, descs)
	return descs, rep
}

// Descriptor looks up a building by ID among the tiles generated so
// far. It never triggers generation; a false return only means the
// building's tile has not been queried this session.
func (g *Generator) Descriptor(id string) (building.Descriptor, bool) {
	key := gencache.Key{Seed: g.seed}
	var tileX, tileY int
	if !building.ParseID(id, &tileX, &tileY) {
		return building.Descriptor{}, false
	}
	key.TileX, key.TileY = tileX, tileY
	descs, ok := g.cache.Get(key)
	if !ok {
		return building.Descriptor{}, false
	}
	for _, d := range descs {
		if d.ID == id {
			return d, true
		}
	}
	return building.Descriptor{}, false
}

// Positions returns the footprint centers of a tile's buildings, for
// collaborators that only care about occupancy.
func (g *Generator) Positions(tileX, tileY int) []geo.Point2D {
	descs, _ := g.Tile(tileX, tileY)
	pts := make([]geo.Point2D, len(descs))
	for i, d := range descs {
		pts[i] = d.Pos
	}
	return pts
}
