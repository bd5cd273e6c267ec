package ellipsoid

import (
	"math"

	"ray-ellipsoid/internal/geometry/vector"
)

// Ray is a half-line starting at Origin. Dir must be a unit vector; this is
// not checked.
type Ray struct {
	Origin vector.Vec3 `json:"origin"`
	Dir    vector.Vec3 `json:"dir"`
}

// At returns the point at parametric distance d along the ray.
func (r Ray) At(d float64) vector.Vec3 {
	return r.Origin.Add(r.Dir.Mul(d))
}

// Roots returns the parametric distances d1 <= d2 at which the line through
// r crosses the surface. ok is false when the discriminant is negative.
//
// A zero direction makes the leading coefficient zero and the roots NaN or
// infinite; callers comparing them against zero then see no usable root.
func (e Ellipsoid) Roots(r Ray) (d1, d2 float64, ok bool) {
	k := e.zScale()
	c := r.Origin.Sub(e.Center)
	d := r.Dir

	qa := d.X*d.X + d.Y*d.Y + d.Z*d.Z*k
	qb := 2 * (d.X*c.X + d.Y*c.Y + d.Z*c.Z*k)
	qc := c.X*c.X + c.Y*c.Y + c.Z*c.Z*k - e.EquatorialRadius*e.EquatorialRadius

	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	d1 = (-qb - sq) / (2 * qa)
	d2 = (-qb + sq) / (2 * qa)
	return d1, d2, true
}

// Intersect returns the first point where r meets the ellipsoid surface at a
// non-negative distance from its origin. A tangent ray counts as a hit.
// ok is false when the ray misses or the surface lies entirely behind it.
func (e Ellipsoid) Intersect(r Ray) (vector.Vec3, bool) {
	d1, d2, ok := e.Roots(r)
	if !ok {
		return vector.Vec3{}, false
	}
	switch {
	case d1 >= 0:
		return r.At(d1), true
	case d2 >= 0:
		return r.At(d2), true
	}
	return vector.Vec3{}, false
}
