package vector

import (
	"errors"
	"math"

	"github.com/twpayne/go-geom"
)

// ErrDimensionMismatch is returned when two coordinates of different length
// are combined.
var ErrDimensionMismatch = errors.New("vector: dimension mismatch")

// Magnitude returns the Euclidean norm of c. An empty coordinate has
// magnitude 0.
func Magnitude(c geom.Coord) float64 {
	sum := 0.0
	for _, x := range c {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Scale returns a new coordinate with every component of c multiplied by s.
func Scale(s float64, c geom.Coord) geom.Coord {
	out := make(geom.Coord, len(c))
	for i, x := range c {
		out[i] = s * x
	}
	return out
}

// Add returns the component-wise sum of a and b.
func Add(a, b geom.Coord) (geom.Coord, error) {
	if len(a) != len(b) {
		return nil, ErrDimensionMismatch
	}
	out := make(geom.Coord, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out, nil
}

// Subtract returns the component-wise difference a - b.
func Subtract(a, b geom.Coord) (geom.Coord, error) {
	if len(a) != len(b) {
		return nil, ErrDimensionMismatch
	}
	out := make(geom.Coord, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out, nil
}

// Dot returns the dot product of a and b, or NaN when their lengths differ.
// The NaN poisons any arithmetic built on top of it instead of failing.
func Dot(a, b geom.Coord) float64 {
	if len(a) != len(b) {
		return math.NaN()
	}
	dp := 0.0
	for i := range a {
		dp += a[i] * b[i]
	}
	return dp
}
