// Package ellipsoid models a reference ellipsoid of revolution flattened
// along the z-axis and finds where a ray first meets its surface.
package ellipsoid

import (
	"errors"
	"fmt"
	"math"

	"ray-ellipsoid/internal/geometry/vector"
)

// WGS84 parameters in kilometers.
const (
	REarthKm = 6378.137
	EEarth   = 0.081819221456
)

// ErrInvalidEllipsoid is returned by Validate for a non-positive radius or an
// eccentricity outside [0, 1).
var ErrInvalidEllipsoid = errors.New("invalid ellipsoid")

// Ellipsoid is an ellipsoid of revolution centered at Center, with
// equatorial radius EquatorialRadius and the polar axis along Z.
type Ellipsoid struct {
	Name             string      `json:"name,omitempty"`
	EquatorialRadius float64     `json:"equatorialRadius"`
	Eccentricity     float64     `json:"eccentricity"`
	Center           vector.Vec3 `json:"center"`
}

// WGS84 returns the Earth reference ellipsoid centered at the origin.
func WGS84() Ellipsoid {
	return Ellipsoid{
		Name:             "WGS84",
		EquatorialRadius: REarthKm,
		Eccentricity:     EEarth,
	}
}

// Validate checks the ellipsoid parameters.
func (e Ellipsoid) Validate() error {
	if !(e.EquatorialRadius > 0) || math.IsInf(e.EquatorialRadius, 0) {
		return fmt.Errorf("%w: equatorial radius %v must be positive", ErrInvalidEllipsoid, e.EquatorialRadius)
	}
	if !(e.Eccentricity >= 0 && e.Eccentricity < 1) {
		return fmt.Errorf("%w: eccentricity %v must be in [0, 1)", ErrInvalidEllipsoid, e.Eccentricity)
	}
	return nil
}

// zScale is 1/(1-e²), the factor applied to z² in the ellipsoid equation.
func (e Ellipsoid) zScale() float64 {
	return 1 / (1 - e.Eccentricity*e.Eccentricity)
}

// PolarRadius returns the semi-minor axis R·sqrt(1-e²).
func (e Ellipsoid) PolarRadius() float64 {
	return e.EquatorialRadius * math.Sqrt(1-e.Eccentricity*e.Eccentricity)
}

// SurfaceResidual evaluates x²+y²+z²/(1-e²)-R² for p relative to the
// center. It is zero on the surface, negative inside and positive outside.
func (e Ellipsoid) SurfaceResidual(p vector.Vec3) float64 {
	q := p.Sub(e.Center)
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z*e.zScale() - e.EquatorialRadius*e.EquatorialRadius
}
