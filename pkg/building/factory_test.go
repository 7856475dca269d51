package building

import (
	"testing"

	"citygen/pkg/district"
	"citygen/pkg/layout"
	"citygen/pkg/policy"
)

func marketDistrict(t *testing.T) district.District {
	t.Helper()
	return district.Classify(policy.Default(), 0, 0)
}

func TestEnrichIsOrderIndependent(t *testing.T) {
	d := marketDistrict(t)
	cands, _ := layout.Generate(d, 42)
	if len(cands) < 2 {
		t.Fatal("need at least two candidates")
	}

	forward := EnrichAll(cands, d)

	// Enrich the same candidates in reverse and compare per seed.
	reversed := make([]layout.Candidate, len(cands))
	for i, c := range cands {
		reversed[len(cands)-1-i] = c
	}
	backward := EnrichAll(reversed, d)

	for i := range forward {
		j := len(backward) - 1 - i
		if forward[i] != backward[j] {
			t.Fatalf("descriptor for seed %d depends on iteration order", forward[i].Seed)
		}
	}
}

func TestSameSeedSameDescriptor(t *testing.T) {
	d := marketDistrict(t)
	cands, _ := layout.Generate(d, 42)
	a := Enrich(cands[0], d)
	b := Enrich(cands[0], d)
	if a != b {
		t.Errorf("same candidate enriched differently:\n%+v\n%+v", a, b)
	}
}

func TestTypeHintOverridesWeights(t *testing.T) {
	d := district.Classify(policy.Default(), 7, 9) // shrine landmark
	cands, _ := layout.Generate(d, 42)
	desc := Enrich(cands[0], d)
	if desc.Type != Religious {
		t.Errorf("landmark type = %s, want religious", desc.Type)
	}
	if !desc.POI {
		t.Error("main shrine slot should keep its POI flag")
	}
}

func TestDoorHintHonored(t *testing.T) {
	d := district.Classify(policy.Default(), 3, 0) // road corridor
	cands, _ := layout.Generate(d, 42)
	for _, c := range cands {
		desc := Enrich(c, d)
		if string(desc.Door) != c.DoorHint {
			t.Fatalf("door = %s, hint was %s", desc.Door, c.DoorHint)
		}
	}
}

func TestResidentialDominates(t *testing.T) {
	d := district.Classify(policy.Default(), 2, 2) // wealthy
	cands, _ := layout.Generate(d, 42)
	descs := EnrichAll(cands, d)

	counts := make(map[Type]int)
	for _, b := range descs {
		counts[b.Type]++
	}
	for typ, n := range counts {
		if typ == Residential {
			continue
		}
		if n > counts[Residential] {
			t.Errorf("%s count %d exceeds residential %d", typ, n, counts[Residential])
		}
	}
	t.Logf("wealthy tile types: %v", counts)
}

func TestOwnerFieldsPopulated(t *testing.T) {
	d := marketDistrict(t)
	cands, _ := layout.Generate(d, 42)
	for _, b := range EnrichAll(cands, d) {
		if b.Owner.Name == "" || b.Owner.Profession == "" {
			t.Fatalf("building %s has empty owner fields", b.ID)
		}
		if b.Owner.Age < ownerMinAge || b.Owner.Age > ownerMaxAge {
			t.Fatalf("owner age %d outside [%d,%d]", b.Owner.Age, ownerMinAge, ownerMaxAge)
		}
	}
}

func TestDescriptorIDsUnique(t *testing.T) {
	d := marketDistrict(t)
	cands, _ := layout.Generate(d, 42)
	seen := make(map[string]bool)
	for _, b := range EnrichAll(cands, d) {
		if seen[b.ID] {
			t.Fatalf("duplicate descriptor id %s", b.ID)
		}
		seen[b.ID] = true
	}
}

func TestSizeScaleWithinJitterBand(t *testing.T) {
	d := marketDistrict(t)
	cands, _ := layout.Generate(d, 42)
	base := d.Policy.SizeScale
	for _, b := range EnrichAll(cands, d) {
		if b.SizeScale < base*0.85 || b.SizeScale >= base*1.15 {
			t.Fatalf("size scale %v outside jitter band around %v", b.SizeScale, base)
		}
	}
}
