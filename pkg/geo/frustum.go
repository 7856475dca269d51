package geo

import "math"

// Vec3 is a 3D vector (Y up).
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Mat4 is a 4x4 matrix in row-major order.
type Mat4 [16]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s := 0.0
			for k := 0; k < 4; k++ {
				s += m[r*4+k] * n[k*4+c]
			}
			out[r*4+c] = s
		}
	}
	return out
}

// Perspective builds a right-handed perspective projection matrix.
// fovY is in radians.
func Perspective(fovY, aspect, near, far float64) Mat4 {
	f := 1 / math.Tan(fovY/2)
	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = 2 * far * near / (near - far)
	m[14] = -1
	return m
}

// LookAt builds a view matrix (world-inverse) for a camera at eye
// looking toward target with the given up vector.
func LookAt(eye, target, up Vec3) Mat4 {
	fwd := normalize(Vec3{target.X - eye.X, target.Y - eye.Y, target.Z - eye.Z})
	side := normalize(cross(fwd, up))
	u := cross(side, fwd)

	return Mat4{
		side.X, side.Y, side.Z, -dot(side, eye),
		u.X, u.Y, u.Z, -dot(u, eye),
		-fwd.X, -fwd.Y, -fwd.Z, dot(fwd, eye),
		0, 0, 0, 1,
	}
}

// Plane is a half-space boundary: points p with Nx*px+Ny*py+Nz*pz+D >= 0
// are inside.
type Plane struct {
	Nx, Ny, Nz, D float64
}

// DistanceTo returns the signed distance from the plane to a point.
func (pl Plane) DistanceTo(p Vec3) float64 {
	return pl.Nx*p.X + pl.Ny*p.Y + pl.Nz*p.Z + pl.D
}

// Frustum is the six-plane camera volume used for visibility tests.
type Frustum struct {
	Planes [6]Plane
}

const degenerateEps = 1e-9

// FrustumFromClip extracts the six frustum planes from a combined
// clip matrix (projection * world-inverse). Returns ok=false when the
// matrix is degenerate (a plane normal with near-zero length), in which
// case the caller should treat the camera as seeing nothing.
func FrustumFromClip(m Mat4) (Frustum, bool) {
	row := func(i int) (float64, float64, float64, float64) {
		return m[i*4+0], m[i*4+1], m[i*4+2], m[i*4+3]
	}
	x0, y0, z0, w0 := row(0)
	x1, y1, z1, w1 := row(1)
	x2, y2, z2, w2 := row(2)
	x3, y3, z3, w3 := row(3)

	raw := [6]Plane{
		{x3 + x0, y3 + y0, z3 + z0, w3 + w0}, // left
		{x3 - x0, y3 - y0, z3 - z0, w3 - w0}, // right
		{x3 + x1, y3 + y1, z3 + z1, w3 + w1}, // bottom
		{x3 - x1, y3 - y1, z3 - z1, w3 - w1}, // top
		{x3 + x2, y3 + y2, z3 + z2, w3 + w2}, // near
		{x3 - x2, y3 - y2, z3 - z2, w3 - w2}, // far
	}

	var f Frustum
	for i, pl := range raw {
		l := math.Sqrt(pl.Nx*pl.Nx + pl.Ny*pl.Ny + pl.Nz*pl.Nz)
		if l < degenerateEps || math.IsNaN(l) {
			return Frustum{}, false
		}
		f.Planes[i] = Plane{pl.Nx / l, pl.Ny / l, pl.Nz / l, pl.D / l}
	}
	return f, true
}

// Expanded returns a copy of the frustum with every plane pushed
// outward by margin, so off-screen casters whose shadows still reach
// the view are retained.
func (f Frustum) Expanded(margin float64) Frustum {
	out := f
	for i := range out.Planes {
		out.Planes[i].D += margin
	}
	return out
}

// IntersectsSphere reports whether a sphere at center with the given
// radius is at least partially inside the frustum. Conservative: may
// report true for spheres just outside a corner.
func (f Frustum) IntersectsSphere(center Vec3, radius float64) bool {
	for _, pl := range f.Planes {
		if pl.DistanceTo(center) < -radius {
			return false
		}
	}
	return true
}

func dot(a, b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func normalize(v Vec3) Vec3 {
	l := math.Sqrt(dot(v, v))
	if l < degenerateEps {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}
