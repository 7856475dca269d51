// Package spacing post-processes enriched descriptors to enforce the
// district's structural rules: population caps on privileged building
// types, and breathing room around the survivors. The filter is
// idempotent: running it on its own output changes nothing.
package spacing

import (
	"citygen/pkg/building"
	"citygen/pkg/district"
	"citygen/pkg/report"
)

// Filter applies, in order: (1) per-district caps on religious and
// civic buildings, kept in stable first-appearance order and spaced at
// least the district minimum from each other; (2) the separation rule,
// dropping ordinary buildings inside the clearance radius of any
// surviving privileged building. Privileged survivors are never dropped
// by rule (2).
func Filter(descs []building.Descriptor, d district.District) ([]building.Descriptor, *report.Report) {
	rep := report.New()
	p := d.Policy
	sepSq := p.SeparationSq()

	// Pass 1: select privileged survivors.
	religious := 0
	civic := 0
	privileged := make([]building.Descriptor, 0, 4)
	keepPrivileged := make(map[string]bool)

	for _, b := range descs {
		if !b.Type.Privileged() {
			continue
		}
		switch b.Type {
		case building.Religious:
			if capReached(religious, p.MaxReligious) {
				continue
			}
		case building.Civic:
			if capReached(civic, p.MaxCivic) {
				continue
			}
		}
		if tooClose(b, privileged, sepSq) {
			continue
		}
		switch b.Type {
		case building.Religious:
			religious++
		case building.Civic:
			civic++
		}
		privileged = append(privileged, b)
		keepPrivileged[b.ID] = true
	}

	// Pass 2: drop ordinary buildings crowding the survivors.
	out := make([]building.Descriptor, 0, len(descs))
	droppedCap := 0
	droppedNear := 0
	for _, b := range descs {
		if b.Type.Privileged() {
			if keepPrivileged[b.ID] {
				out = append(out, b)
			} else {
				droppedCap++
			}
			continue
		}
		if tooClose(b, privileged, sepSq) {
			droppedNear++
			continue
		}
		out = append(out, b)
	}

	if droppedCap > 0 || droppedNear > 0 {
		rep.AddInfo(report.StageSpacing,
			"tile (%d,%d) %s: dropped %d over-cap privileged, %d crowding buildings (%d kept)",
			d.TileX, d.TileY, d.Kind, droppedCap, droppedNear, len(out))
	}
	return out, rep
}

// capReached reports whether count has hit the cap; negative caps mean
// uncapped.
func capReached(count, limit int) bool {
	return limit >= 0 && count >= limit
}

func tooClose(b building.Descriptor, privileged []building.Descriptor, sepSq float64) bool {
	if sepSq <= 0 {
		return false
	}
	for _, pb := range privileged {
		if pb.ID == b.ID {
			continue
		}
		if b.Pos.DistanceSq(pb.Pos) < sepSq {
			return true
		}
	}
	return false
}
