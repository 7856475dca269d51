package stats

import (
	"testing"

	"citygen/pkg/building"
	"citygen/pkg/district"
	"citygen/pkg/engine"
)

func TestSummarizeMarketTile(t *testing.T) {
	g := engine.New(nil, 42, 0)
	descs, _ := g.Tile(0, 0)

	s, rep := Summarize(descs, nil)

	if s.TotalBuildings != len(descs) {
		t.Fatalf("TotalBuildings = %d, want %d", s.TotalBuildings, len(descs))
	}
	if s.Tiles != 1 {
		t.Fatalf("Tiles = %d, want 1", s.Tiles)
	}
	if s.ByDistrict[district.Market] != len(descs) {
		t.Fatalf("market count = %d, want %d", s.ByDistrict[district.Market], len(descs))
	}
	if len(rep.Warnings) != 0 {
		t.Fatalf("clean generation produced warnings: %+v", rep.Warnings)
	}
	if s.DensityPerHa <= 0 {
		t.Fatal("density not computed")
	}
}

func TestSummarizeTypeCountsAddUp(t *testing.T) {
	g := engine.New(nil, 7, 0)
	var all []building.Descriptor
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			descs, _ := g.Tile(x, y)
			all = append(all, descs...)
		}
	}

	s, _ := Summarize(all, nil)
	sum := 0
	for _, n := range s.ByType {
		sum += n
	}
	if sum != s.TotalBuildings {
		t.Fatalf("type counts sum to %d, total is %d", sum, s.TotalBuildings)
	}
	if s.Tiles != 9 {
		t.Fatalf("Tiles = %d, want 9", s.Tiles)
	}
}

func TestSummarizeOwnerDemographics(t *testing.T) {
	g := engine.New(nil, 42, 0)
	descs, _ := g.Tile(0, 0)

	s, _ := Summarize(descs, nil)
	if s.AvgOwnerAge < 17 || s.AvgOwnerAge > 74 {
		t.Fatalf("AvgOwnerAge = %.1f, outside the owner age band", s.AvgOwnerAge)
	}
	if len(s.Professions) == 0 {
		t.Fatal("no professions tallied")
	}
}

func TestSummarizeFlagsCapViolation(t *testing.T) {
	// Hand-built input: three religious buildings on one market tile,
	// over the default cap of one.
	var descs []building.Descriptor
	for i := 0; i < 3; i++ {
		descs = append(descs, building.Descriptor{
			ID:       string(rune('a' + i)),
			Type:     building.Religious,
			District: district.Market,
		})
	}

	_, rep := Summarize(descs, nil)
	if len(rep.Warnings) == 0 {
		t.Fatal("cap violation went unreported")
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s, rep := Summarize(nil, nil)
	if s.TotalBuildings != 0 || s.Tiles != 0 {
		t.Fatalf("empty input summarized as %+v", s)
	}
	if len(rep.Warnings) != 0 {
		t.Fatalf("empty input produced warnings: %+v", rep.Warnings)
	}
}
