package district

import (
	"math"
	"testing"

	"citygen/pkg/policy"
)

func TestClassifyKnownTiles(t *testing.T) {
	table := policy.Default()
	cases := []struct {
		x, y int
		want Kind
	}{
		{0, 0, Market},
		{1, 0, Civic},
		{-1, 0, Civic},
		{0, -1, Civic},
		{1, 1, Temple},
		{-1, 1, Temple},
		{2, 2, Wealthy},
		{0, 3, RoadCorridor},
		{-4, 0, RoadCorridor},
		{0, 5, Caravanserai},
		{-5, 0, Caravanserai},
		{3, 2, Hovels},
		{4, -4, Hovels},
		{6, 1, Fields},
		{7, 9, Shrine},
		{9, 9, Wilds},
		{100, -250, Wilds},
	}
	for _, c := range cases {
		got := Classify(table, c.x, c.y)
		if got.Kind != c.want {
			t.Errorf("Classify(%d,%d) = %s, want %s", c.x, c.y, got.Kind, c.want)
		}
	}
}

func TestClassifyIsTotal(t *testing.T) {
	table := policy.Default()
	extremes := []int{math.MinInt32, math.MinInt32 + 1, -1 << 20, 0, 1 << 20, math.MaxInt32}
	for _, x := range extremes {
		for _, y := range extremes {
			d := Classify(table, x, y)
			if d.Kind == "" {
				t.Fatalf("Classify(%d,%d) returned empty kind", x, y)
			}
			if d.Policy.Layout == "" {
				t.Fatalf("Classify(%d,%d) returned district with no policy", x, y)
			}
		}
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	table := policy.Default()
	for x := -8; x <= 8; x++ {
		for y := -8; y <= 8; y++ {
			a := Classify(table, x, y)
			b := Classify(table, x, y)
			if a.Kind != b.Kind {
				t.Fatalf("Classify(%d,%d) unstable: %s vs %s", x, y, a.Kind, b.Kind)
			}
		}
	}
}

func TestFarTilesAreWilds(t *testing.T) {
	table := policy.Default()
	d := Classify(table, 5000, -12000)
	if d.Kind != Wilds {
		t.Errorf("far tile = %s, want wilds", d.Kind)
	}
}

func TestPolicyResolvedFromTable(t *testing.T) {
	table := policy.Default()
	d := Classify(table, 3, 3)
	if d.Kind != Hovels {
		t.Fatalf("tile (3,3) = %s, want hovels", d.Kind)
	}
	if d.Policy.Layout != policy.LayoutAlleys {
		t.Errorf("hovels policy layout = %q, want alleys", d.Policy.Layout)
	}
}
