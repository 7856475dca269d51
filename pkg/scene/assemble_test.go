package scene

import (
	"testing"

	"citygen/pkg/building"
	"citygen/pkg/engine"
)

func marketScene(t *testing.T) (*Graph, []building.Descriptor) {
	t.Helper()
	g := engine.New(nil, 42, 0)
	descs, _ := g.Tile(0, 0)
	if len(descs) == 0 {
		t.Fatal("market tile generated no buildings")
	}
	return Assemble(descs, nil, 42), descs
}

func TestAssembleEntityPerBuilding(t *testing.T) {
	graph, descs := marketScene(t)

	buildings := 0
	for _, e := range graph.Entities {
		if e.Type == EntityBuilding {
			buildings++
		}
	}
	if buildings != len(descs) {
		t.Fatalf("assembled %d building entities from %d descriptors", buildings, len(descs))
	}
}

func TestAssembleMarketGetsPlaza(t *testing.T) {
	graph, _ := marketScene(t)

	found := false
	for _, e := range graph.Entities {
		if e.Type == EntityPlaza {
			if e.ID != "plaza_0_0" {
				t.Fatalf("plaza ID = %q", e.ID)
			}
			if e.Position.X != 0 || e.Position.Z != 0 {
				t.Fatalf("plaza off tile center: (%.1f, %.1f)", e.Position.X, e.Position.Z)
			}
			found = true
		}
	}
	if !found {
		t.Fatal("market tile assembled without a plaza")
	}
}

func TestAssembleGroupIndices(t *testing.T) {
	graph, descs := marketScene(t)

	byID := make(map[string]Entity, len(graph.Entities))
	for _, e := range graph.Entities {
		byID[e.ID] = e
	}

	for _, b := range descs {
		if _, ok := byID[b.ID]; !ok {
			t.Fatalf("descriptor %s missing from entities", b.ID)
		}
	}

	typed := 0
	for _, ids := range graph.Groups.Types {
		typed += len(ids)
	}
	if typed != len(descs) {
		t.Fatalf("types index covers %d entities, want %d buildings", typed, len(descs))
	}

	for _, id := range graph.Groups.Flags[FlagPOI] {
		e := byID[id]
		if e.Metadata["poi"] != true {
			t.Fatalf("entity %s in poi group without poi metadata", id)
		}
	}
}

func TestAssembleDimensionsScale(t *testing.T) {
	graph, descs := marketScene(t)

	byID := make(map[string]Entity, len(graph.Entities))
	for _, e := range graph.Entities {
		byID[e.ID] = e
	}
	for _, b := range descs {
		e := byID[b.ID]
		base := baseDims[b.Type]
		want := base.Y * b.SizeScale
		if e.Dimensions.Y != want {
			t.Fatalf("building %s height %.2f, want %.2f", b.ID, e.Dimensions.Y, want)
		}
	}
}

func TestAssembleBoundsEncloseEntities(t *testing.T) {
	graph, _ := marketScene(t)

	b := graph.Metadata.Bounds
	for _, e := range graph.Entities {
		if e.Position.X < b.Min.X || e.Position.X > b.Max.X ||
			e.Position.Z < b.Min.Z || e.Position.Z > b.Max.Z {
			t.Fatalf("entity %s center outside bounds", e.ID)
		}
	}
}

func TestAssembleEmpty(t *testing.T) {
	graph := Assemble(nil, nil, 1)
	if len(graph.Entities) != 0 {
		t.Fatalf("empty input assembled %d entities", len(graph.Entities))
	}
}

func BenchmarkAssemble(b *testing.B) {
	g := engine.New(nil, 42, 0)
	descs, _ := g.Tile(0, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Assemble(descs, nil, 42)
	}
}
