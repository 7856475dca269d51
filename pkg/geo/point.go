package geo

// Point2D represents a point in the XZ ground plane (Y is up in the
// scene graph; terrain height is resolved by the renderer).
type Point2D struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Pt is a shorthand constructor for Point2D.
func Pt(x, z float64) Point2D {
	return Point2D{X: x, Z: z}
}

// DistanceSq returns the squared distance from p to q. Spacing rules
// compare against squared thresholds to avoid the square root.
func (p Point2D) DistanceSq(q Point2D) float64 {
	dx := p.X - q.X
	dz := p.Z - q.Z
	return dx*dx + dz*dz
}
