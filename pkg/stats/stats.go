// Package stats summarizes a generated population: counts by type and
// district, densities, flag tallies, and owner demographics. The
// summary doubles as a validation surface: it re-checks the population
// caps on the finished output and reports any tile that exceeds them.
package stats

import (
	"fmt"

	"citygen/pkg/building"
	"citygen/pkg/district"
	"citygen/pkg/layout"
	"citygen/pkg/policy"
	"citygen/pkg/report"
)

const haPerTile = layout.TileSize * layout.TileSize / 10000.0

// Summary holds aggregate figures over a set of generated buildings.
type Summary struct {
	TotalBuildings int                   `json:"total_buildings"`
	Tiles          int                   `json:"tiles"`
	ByType         map[building.Type]int `json:"by_type"`
	ByDistrict     map[district.Kind]int `json:"by_district"`
	POICount       int                   `json:"poi_count"`
	Quarantined    int                   `json:"quarantined"`
	DensityPerHa   float64               `json:"density_per_ha"`
	AvgSizeScale   float64               `json:"avg_size_scale"`
	AvgOwnerAge    float64               `json:"avg_owner_age"`
	Professions    map[string]int        `json:"professions"`
}

type tileTally struct {
	kind      district.Kind
	religious int
	civic     int
}

// Summarize aggregates the buildings and validates cap compliance per
// tile. A nil table selects the built-in defaults.
func Summarize(descs []building.Descriptor, table *policy.Table) (*Summary, *report.Report) {
	if table == nil {
		table = policy.Default()
	}
	rep := report.New()

	s := &Summary{
		ByType:      make(map[building.Type]int),
		ByDistrict:  make(map[district.Kind]int),
		Professions: make(map[string]int),
	}

	tiles := make(map[string]*tileTally)
	var sizeSum, ageSum float64

	for _, b := range descs {
		s.TotalBuildings++
		s.ByType[b.Type]++
		s.ByDistrict[b.District]++
		if b.POI {
			s.POICount++
		}
		if b.Quarantined {
			s.Quarantined++
		}
		sizeSum += b.SizeScale
		ageSum += float64(b.Owner.Age)
		s.Professions[b.Owner.Profession]++

		key := fmt.Sprintf("%d,%d", b.TileX, b.TileY)
		tt, ok := tiles[key]
		if !ok {
			tt = &tileTally{kind: b.District}
			tiles[key] = tt
		}
		switch b.Type {
		case building.Religious:
			tt.religious++
		case building.Civic:
			tt.civic++
		}
	}

	s.Tiles = len(tiles)
	if s.Tiles > 0 {
		s.DensityPerHa = float64(s.TotalBuildings) / (float64(s.Tiles) * haPerTile)
	}
	if s.TotalBuildings > 0 {
		s.AvgSizeScale = sizeSum / float64(s.TotalBuildings)
		s.AvgOwnerAge = ageSum / float64(s.TotalBuildings)
	}

	validateCaps(tiles, table, rep)
	rep.AddInfo(report.StageStats, "%d buildings over %d tiles, %.2f per hectare",
		s.TotalBuildings, s.Tiles, s.DensityPerHa)

	return s, rep
}

// validateCaps re-checks the per-tile population caps on finished
// output. The spacing filter guarantees these hold, so any warning here
// points at a pipeline bug, not bad input.
func validateCaps(tiles map[string]*tileTally, table *policy.Table, rep *report.Report) {
	for key, tt := range tiles {
		p := table.District(string(tt.kind))
		if capExceeded(tt.religious, p.MaxReligious) {
			rep.AddWarning(report.StageStats, "tile %s (%s): %d religious buildings exceed cap %d",
				key, tt.kind, tt.religious, p.MaxReligious)
		}
		if capExceeded(tt.civic, p.MaxCivic) {
			rep.AddWarning(report.StageStats, "tile %s (%s): %d civic buildings exceed cap %d",
				key, tt.kind, tt.civic, p.MaxCivic)
		}
	}
}

func capExceeded(count, limit int) bool {
	return limit >= 0 && count > limit
}
