package gencache

import (
	"testing"

	"citygen/pkg/building"
)

func TestGetMiss(t *testing.T) {
	c := New(4)
	if _, ok := c.Get(Key{TileX: 1, TileY: 2, Seed: 42}); ok {
		t.Fatal("empty cache reported a hit")
	}
}

func TestAddThenGet(t *testing.T) {
	c := New(4)
	k := Key{TileX: 0, TileY: 0, Seed: 42}
	descs := []building.Descriptor{{ID: "bldg_0_0_10_10"}}
	c.Add(k, descs)

	got, ok := c.Get(k)
	if !ok {
		t.Fatal("miss after Add")
	}
	if len(got) != 1 || got[0].ID != "bldg_0_0_10_10" {
		t.Fatalf("got %v, want the stored descriptors", got)
	}
}

func TestSeedIsPartOfKey(t *testing.T) {
	c := New(4)
	c.Add(Key{TileX: 3, TileY: -1, Seed: 7}, nil)
	if _, ok := c.Get(Key{TileX: 3, TileY: -1, Seed: 8}); ok {
		t.Fatal("different session seed hit the same entry")
	}
}

func TestEviction(t *testing.T) {
	c := New(2)
	c.Add(Key{TileX: 0, TileY: 0, Seed: 1}, nil)
	c.Add(Key{TileX: 1, TileY: 0, Seed: 1}, nil)
	c.Add(Key{TileX: 2, TileY: 0, Seed: 1}, nil)

	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if _, ok := c.Get(Key{TileX: 0, TileY: 0, Seed: 1}); ok {
		t.Fatal("oldest entry survived past capacity")
	}
	if _, ok := c.Get(Key{TileX: 2, TileY: 0, Seed: 1}); !ok {
		t.Fatal("newest entry was evicted")
	}
}

func TestNonPositiveCapacityUsesDefault(t *testing.T) {
	c := New(0)
	for i := 0; i < DefaultCapacity; i++ {
		c.Add(Key{TileX: i, Seed: 1}, nil)
	}
	if c.Len() != DefaultCapacity {
		t.Fatalf("Len = %d, want %d", c.Len(), DefaultCapacity)
	}
}

func TestPurge(t *testing.T) {
	c := New(4)
	c.Add(Key{Seed: 1}, nil)
	c.Purge()
	if c.Len() != 0 {
		t.Fatalf("Len = %d after Purge, want 0", c.Len())
	}
}
