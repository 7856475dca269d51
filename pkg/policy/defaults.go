package policy

// Default returns the compiled-in policy table. The same values ship as
// districts.yaml for hosts that want to re-tune without recompiling.
func Default() *Table {
	return &Table{
		Version: "1.0.0",
		World: WorldLayout{
			WealthyRadius:        2,
			HovelsRadius:         4,
			FieldsRadius:         7,
			CorridorLength:       6,
			CaravanseraiDistance: 5,
			ShrineTileX:          7,
			ShrineTileY:          9,
		},
		Districts: map[string]DistrictPolicy{
			"market": {
				Layout:          LayoutGrid,
				PlotHalfExtent:  90,
				Footprint:       9,
				StreetWidth:     5,
				SkipProbability: 0.22,
				SizeScale:       1.0,
				HeightScale:     1.0,
				PlazaRadius:     28,
				MaxReligious:    1,
				MaxCivic:        3,
				MinSeparation:   24,
				QuarantineRate:  0.03,
				TypeWeights: []TypeWeight{
					{Type: "commercial", Weight: 0.52},
					{Type: "residential", Weight: 0.28},
					{Type: "hospitality", Weight: 0.10},
					{Type: "civic", Weight: 0.05},
					{Type: "medical", Weight: 0.03},
					{Type: "religious", Weight: 0.02},
				},
			},
			"wealthy": {
				Layout:          LayoutGrid,
				PlotHalfExtent:  90,
				Footprint:       12,
				StreetWidth:     9,
				SkipProbability: 0.30,
				SizeScale:       1.25,
				HeightScale:     1.15,
				PlazaRadius:     0,
				MaxReligious:    1,
				MaxCivic:        1,
				MinSeparation:   30,
				QuarantineRate:  0.01,
				TypeWeights: []TypeWeight{
					{Type: "residential", Weight: 0.72},
					{Type: "commercial", Weight: 0.10},
					{Type: "school", Weight: 0.08},
					{Type: "civic", Weight: 0.06},
					{Type: "religious", Weight: 0.04},
				},
			},
			"civic": {
				Layout:          LayoutGrid,
				PlotHalfExtent:  84,
				Footprint:       14,
				StreetWidth:     10,
				SkipProbability: 0.35,
				SizeScale:       1.35,
				HeightScale:     1.25,
				PlazaRadius:     20,
				MaxReligious:    1,
				MaxCivic:        4,
				MinSeparation:   26,
				QuarantineRate:  0.0,
				TypeWeights: []TypeWeight{
					{Type: "civic", Weight: 0.40},
					{Type: "residential", Weight: 0.25},
					{Type: "school", Weight: 0.15},
					{Type: "medical", Weight: 0.12},
					{Type: "commercial", Weight: 0.08},
				},
			},
			"temple": {
				Layout:         LayoutLandmark,
				Footprint:      16,
				SizeScale:      1.5,
				HeightScale:    1.6,
				MaxReligious:   -1,
				MaxCivic:       1,
				MinSeparation:  18,
				QuarantineRate: 0.0,
			},
			"hovels": {
				Layout:          LayoutAlleys,
				PlotHalfExtent:  84,
				Footprint:       6,
				StreetWidth:     2,
				SkipProbability: 0.12,
				SizeScale:       0.8,
				HeightScale:     0.75,
				PlazaRadius:     0,
				MaxReligious:    1,
				MaxCivic:        0,
				MinSeparation:   14,
				QuarantineRate:  0.10,
				TypeWeights: []TypeWeight{
					{Type: "residential", Weight: 0.88},
					{Type: "commercial", Weight: 0.08},
					{Type: "religious", Weight: 0.04},
				},
			},
			"road_corridor": {
				Layout:          LayoutFrontage,
				PlotHalfExtent:  90,
				Footprint:       8,
				StreetWidth:     12,
				SkipProbability: 0.45,
				SizeScale:       0.95,
				HeightScale:     0.9,
				MaxReligious:    1,
				MaxCivic:        1,
				MinSeparation:   20,
				QuarantineRate:  0.04,
				TypeWeights: []TypeWeight{
					{Type: "commercial", Weight: 0.38},
					{Type: "residential", Weight: 0.34},
					{Type: "hospitality", Weight: 0.22},
					{Type: "religious", Weight: 0.03},
					{Type: "civic", Weight: 0.03},
				},
			},
			"caravanserai": {
				Layout:         LayoutLandmark,
				Footprint:      22,
				SizeScale:      1.8,
				HeightScale:    1.1,
				MaxReligious:   1,
				MaxCivic:       1,
				MinSeparation:  22,
				QuarantineRate: 0.06,
			},
			"shrine": {
				Layout:         LayoutLandmark,
				Footprint:      10,
				SizeScale:      1.2,
				HeightScale:    1.3,
				MaxReligious:   -1,
				MaxCivic:       0,
				MinSeparation:  16,
				QuarantineRate: 0.0,
			},
			"fields": {
				Layout:          LayoutGrid,
				PlotHalfExtent:  96,
				Footprint:       10,
				StreetWidth:     26,
				SkipProbability: 0.70,
				SizeScale:       1.0,
				HeightScale:     0.85,
				MaxReligious:    1,
				MaxCivic:        0,
				MinSeparation:   20,
				QuarantineRate:  0.05,
				TypeWeights: []TypeWeight{
					{Type: "residential", Weight: 0.86},
					{Type: "commercial", Weight: 0.08},
					{Type: "hospitality", Weight: 0.04},
					{Type: "religious", Weight: 0.02},
				},
			},
			"wilds": {
				Layout:          LayoutGrid,
				PlotHalfExtent:  96,
				Footprint:       8,
				StreetWidth:     44,
				SkipProbability: 0.93,
				SizeScale:       0.9,
				HeightScale:     0.8,
				MaxReligious:    1,
				MaxCivic:        0,
				MinSeparation:   20,
				QuarantineRate:  0.02,
				TypeWeights: []TypeWeight{
					{Type: "residential", Weight: 0.92},
					{Type: "religious", Weight: 0.05},
					{Type: "hospitality", Weight: 0.03},
				},
			},
		},
	}
}
