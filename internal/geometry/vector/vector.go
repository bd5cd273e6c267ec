// Package vector provides 3D vector operations
package vector

import (
	"math"

	"github.com/twpayne/go-geom"
)

// NewVec3 creates a new 3D vector with the given components
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Vec3 represents a 3D vector in Earth-centered coordinates
// with Z along the polar axis (kilometers)
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns the sum of two vectors
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference between two vectors
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul scales a vector by a scalar
func (v Vec3) Mul(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Norm returns the vector's magnitude (Euclidean norm)
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Dot returns the dot product of two vectors
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Normalize returns a unit vector in the same direction
func (v Vec3) Normalize() Vec3 {
	norm := v.Norm()
	if norm == 0 {
		return Vec3{}
	}
	return v.Mul(1 / norm)
}

// Coord returns the vector as an XYZ coordinate.
func (v Vec3) Coord() geom.Coord { return geom.Coord{v.X, v.Y, v.Z} }

// FromCoord converts an XYZ coordinate into a Vec3.
func FromCoord(c geom.Coord) (Vec3, error) {
	if len(c) != 3 {
		return Vec3{}, ErrDimensionMismatch
	}
	return Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}
