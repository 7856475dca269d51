// Package cull maintains the subset of generated buildings the renderer
// needs to consider. The test is approximate and conservative: bounding
// spheres against an outward-expanded frustum, so off-screen shadow
// casters stay in. False positives are fine; false negatives are not.
//
// Evaluation is throttled to a wall-clock interval rather than every
// frame, and the interval widens while the camera moves fast, when
// visual churn is least noticeable. A Culler serializes its calls
// internally, so hosts may share one across goroutines.
package cull

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"citygen/pkg/building"
	"citygen/pkg/geo"
	"citygen/pkg/report"
)

// CameraState is the host-reported camera for one evaluation.
type CameraState struct {
	Projection   geo.Mat4 `json:"projection"`
	WorldInverse geo.Mat4 `json:"world_inverse"`
	FastMoving   bool     `json:"fast_moving"`
}

// VisibleSet is an index subset of one tile's descriptor slice, sorted
// ascending. It is a frame-lifetime view, never persisted.
type VisibleSet []int

// Config tunes the culler. Zero values select the defaults; a negative
// interval disables the throttle so every call evaluates.
type Config struct {
	BoundingRadius float64       // conservative per-building sphere (m)
	FrustumMargin  float64       // outward plane push for casters (m)
	BaseInterval   time.Duration // evaluation throttle when still
	FastInterval   time.Duration // throttle while moving fast
}

const (
	defaultBoundingRadius = 22.0
	defaultFrustumMargin  = 45.0
	defaultBaseInterval   = 200 * time.Millisecond
	defaultFastInterval   = 350 * time.Millisecond
)

func (c Config) withDefaults() Config {
	if c.BoundingRadius <= 0 {
		c.BoundingRadius = defaultBoundingRadius
	}
	if c.FrustumMargin <= 0 {
		c.FrustumMargin = defaultFrustumMargin
	}
	if c.BaseInterval == 0 {
		c.BaseInterval = defaultBaseInterval
	}
	if c.FastInterval == 0 {
		c.FastInterval = defaultFastInterval
	}
	return c
}

// Culler holds the previous visible set and the evaluation throttle.
// Safe for concurrent use.
type Culler struct {
	cfg Config

	mu      sync.Mutex
	limiter *rate.Limiter
	prev    VisibleSet
}

// New creates a culler.
func New(cfg Config) *Culler {
	cfg = cfg.withDefaults()
	return &Culler{
		cfg:     cfg,
		limiter: rate.NewLimiter(intervalLimit(cfg.BaseInterval), 1),
		prev:    VisibleSet{},
	}
}

func intervalLimit(d time.Duration) rate.Limit {
	if d <= 0 {
		return rate.Inf
	}
	return rate.Every(d)
}

// UpdateVisible re-evaluates visibility if the throttle interval has
// elapsed, otherwise returns the previous set unchanged. The returned
// slice is swapped only when the new result actually differs, so an
// unchanged camera never causes flicker. A degenerate camera yields an
// empty set and a warning, never an error.
func (c *Culler) UpdateVisible(cam CameraState, descs []building.Descriptor) (VisibleSet, *report.Report) {
	rep := report.New()

	c.mu.Lock()
	defer c.mu.Unlock()

	interval := c.cfg.BaseInterval
	if cam.FastMoving {
		interval = c.cfg.FastInterval
	}
	c.limiter.SetLimit(intervalLimit(interval))

	if !c.limiter.Allow() {
		return c.prev, rep
	}

	next := Evaluate(cam, descs, c.cfg, rep)
	if !sameSet(c.prev, next) {
		c.prev = next
	}
	return c.prev, rep
}

// Previous returns the last swapped-in visible set.
func (c *Culler) Previous() VisibleSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prev
}

// Evaluate runs one unthrottled visibility test. Exposed for hosts that
// manage their own scheduling.
func Evaluate(cam CameraState, descs []building.Descriptor, cfg Config, rep *report.Report) VisibleSet {
	cfg = cfg.withDefaults()

	clip := cam.Projection.Mul(cam.WorldInverse)
	frustum, ok := geo.FrustumFromClip(clip)
	if !ok {
		rep.AddWarning(report.StageCull, "degenerate camera frustum; reporting nothing visible")
		return VisibleSet{}
	}
	expanded := frustum.Expanded(cfg.FrustumMargin)

	visible := make(VisibleSet, 0, len(descs)/4)
	for i, b := range descs {
		center := geo.Vec3{X: b.Pos.X, Y: 0, Z: b.Pos.Z}
		if expanded.IntersectsSphere(center, cfg.BoundingRadius) {
			visible = append(visible, i)
		}
	}
	return visible
}

func sameSet(a, b VisibleSet) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
