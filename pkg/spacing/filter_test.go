package spacing

import (
	"testing"

	"citygen/pkg/building"
	"citygen/pkg/district"
	"citygen/pkg/geo"
	"citygen/pkg/layout"
	"citygen/pkg/policy"
)

func generated(t *testing.T, tileX, tileY int, seed uint64) ([]building.Descriptor, district.District) {
	t.Helper()
	d := district.Classify(policy.Default(), tileX, tileY)
	cands, _ := layout.Generate(d, seed)
	return building.EnrichAll(cands, d), d
}

func TestMarketCaps(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		descs, d := generated(t, 0, 0, seed)
		filtered, _ := Filter(descs, d)

		religious, civic := 0, 0
		for _, b := range filtered {
			switch b.Type {
			case building.Religious:
				religious++
			case building.Civic:
				civic++
			}
		}
		if religious > 1 {
			t.Errorf("seed %d: market has %d religious buildings, cap is 1", seed, religious)
		}
		if civic > 3 {
			t.Errorf("seed %d: market has %d civic buildings, cap is 3", seed, civic)
		}
	}
}

// A wealthy district never yields more than one civic and one religious
// building, regardless of seed.
func TestWealthyCapsAnySeed(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		descs, d := generated(t, 2, 2, seed)
		filtered, _ := Filter(descs, d)

		counts := make(map[building.Type]int)
		for _, b := range filtered {
			counts[b.Type]++
		}
		if counts[building.Religious] > 1 {
			t.Errorf("seed %d: wealthy religious = %d", seed, counts[building.Religious])
		}
		if counts[building.Civic] > 1 {
			t.Errorf("seed %d: wealthy civic = %d", seed, counts[building.Civic])
		}
	}
}

func TestPrivilegedPairSeparation(t *testing.T) {
	tiles := [][2]int{{0, 0}, {2, 2}, {3, 3}, {1, 0}}
	for _, tile := range tiles {
		descs, d := generated(t, tile[0], tile[1], 42)
		filtered, _ := Filter(descs, d)
		sepSq := d.Policy.SeparationSq()

		var priv []building.Descriptor
		for _, b := range filtered {
			if b.Type.Privileged() {
				priv = append(priv, b)
			}
		}
		for i := 0; i < len(priv); i++ {
			for j := i + 1; j < len(priv); j++ {
				if got := priv[i].Pos.DistanceSq(priv[j].Pos); got < sepSq {
					t.Errorf("tile %v: privileged pair %s/%s at squared distance %.1f < %.1f",
						tile, priv[i].ID, priv[j].ID, got, sepSq)
				}
			}
		}
	}
}

func TestOrdinaryBuildingsClearedAroundPrivileged(t *testing.T) {
	descs, d := generated(t, 0, 0, 42)
	filtered, _ := Filter(descs, d)
	sepSq := d.Policy.SeparationSq()

	for _, b := range filtered {
		if b.Type.Privileged() {
			continue
		}
		for _, pb := range filtered {
			if !pb.Type.Privileged() {
				continue
			}
			if b.Pos.DistanceSq(pb.Pos) < sepSq {
				t.Errorf("ordinary %s within clearance of privileged %s", b.ID, pb.ID)
			}
		}
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	descs, d := generated(t, 0, 0, 42)
	once, _ := Filter(descs, d)
	twice, _ := Filter(once, d)

	if len(once) != len(twice) {
		t.Fatalf("second pass changed count: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("second pass changed descriptor %d", i)
		}
	}
}

func TestFilterKeepsFirstAppearance(t *testing.T) {
	d := district.Classify(policy.Default(), 2, 2)
	mk := func(id string, typ building.Type, x float64) building.Descriptor {
		return building.Descriptor{ID: id, Type: typ, Pos: geo.Pt(x, 0)}
	}
	descs := []building.Descriptor{
		mk("civ_a", building.Civic, 0),
		mk("civ_b", building.Civic, 500), // over cap, despite being far away
		mk("res_far", building.Residential, 1000),
	}
	filtered, _ := Filter(descs, d)

	ids := make(map[string]bool)
	for _, b := range filtered {
		ids[b.ID] = true
	}
	if !ids["civ_a"] || ids["civ_b"] {
		t.Errorf("cap selection not first-appearance: kept %v", ids)
	}
	if !ids["res_far"] {
		t.Error("distant residential should survive")
	}
}

func TestEmptyDistrictIsValid(t *testing.T) {
	d := district.Classify(policy.Default(), 2, 2)
	filtered, rep := Filter(nil, d)
	if len(filtered) != 0 {
		t.Errorf("expected empty result, got %d", len(filtered))
	}
	if rep == nil {
		t.Error("report should never be nil")
	}
}
