package ellipsoid

import (
	"math"

	"github.com/paulmach/orb"

	"ray-ellipsoid/internal/geometry/vector"
)

const degPerRad = 180.0 / math.Pi

// Geodetic returns the geodetic longitude and latitude, in degrees, of a
// point on the surface. The latitude is that of the surface normal, which
// for a surface point is atan(z / ((1-e²)·sqrt(x²+y²))).
func (e Ellipsoid) Geodetic(p vector.Vec3) orb.Point {
	q := p.Sub(e.Center)
	horiz := math.Hypot(q.X, q.Y)
	oneMinusE2 := 1 - e.Eccentricity*e.Eccentricity

	lat := math.Atan2(q.Z, oneMinusE2*horiz) * degPerRad
	// Longitude is undefined at the poles; report 0 there.
	lon := 0.0
	if horiz > 1e-9 {
		lon = math.Atan2(q.Y, q.X) * degPerRad
	}
	return orb.Point{lon, lat}
}

// SurfacePoint returns the point on the surface at the given geodetic
// longitude and latitude in degrees.
func (e Ellipsoid) SurfacePoint(pt orb.Point) vector.Vec3 {
	lon := pt.Lon() / degPerRad
	lat := pt.Lat() / degPerRad
	e2 := e.Eccentricity * e.Eccentricity

	// Prime vertical radius of curvature.
	n := e.EquatorialRadius / math.Sqrt(1-e2*math.Sin(lat)*math.Sin(lat))
	return vector.Vec3{
		X: n * math.Cos(lat) * math.Cos(lon),
		Y: n * math.Cos(lat) * math.Sin(lon),
		Z: n * (1 - e2) * math.Sin(lat),
	}.Add(e.Center)
}

// Normal returns the outward unit normal of the surface at p.
func (e Ellipsoid) Normal(p vector.Vec3) vector.Vec3 {
	q := p.Sub(e.Center)
	return vector.Vec3{X: q.X, Y: q.Y, Z: q.Z * e.zScale()}.Normalize()
}
