// Command intersect prints the first point where a ray meets a reference
// ellipsoid.
//
//	intersect [flags] d_x d_y d_z c_x c_y c_z [s_x s_y s_z r_s]
//
// d is the ray's unit direction, c its origin, s the ellipsoid center offset
// and r_s its equatorial radius, all in kilometers. The ellipsoid defaults to
// WGS84 centered at the origin. On a hit the x, y and z of the point are
// printed one per line; on a miss nothing is printed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"ray-ellipsoid/internal/ellipsoid"
	"ray-ellipsoid/internal/geometry/vector"
)

const usageText = `Usage: intersect [flags] d_x d_y d_z c_x c_y c_z [s_x s_y s_z r_s]
Parameters:
  d_x d_y d_z: ray unit direction vector
  c_x c_y c_z: ray origin vector (km)
  s_x s_y s_z: ellipsoid center offset (km)
  r_s:         ellipsoid equatorial radius (km)
Output:
  x, y and z of the first intersection, one per line; nothing if the ray misses
Flags:
`

// unitTolerance bounds how far the direction magnitude may stray from 1
// before a warning is logged.
const unitTolerance = 1e-6

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "intersect: ", 0)

	fs := flag.NewFlagSet("intersect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	def := ellipsoid.WGS84()
	ecc := fs.Float64("ecc", def.Eccentricity, "ellipsoid eccentricity, in [0, 1)")
	radius := fs.Float64("radius", def.EquatorialRadius, "ellipsoid equatorial radius in km (overridden by r_s)")
	config := fs.String("ellipsoid", "", "path to an ellipsoid JSON file (overrides -ecc and -radius)")
	geodetic := fs.Bool("geodetic", false, "also print geodetic latitude and longitude in degrees")
	fs.Usage = func() {
		fmt.Fprint(stdout, usageText)
		fs.SetOutput(stdout)
		fs.PrintDefaults()
		fs.SetOutput(stderr)
	}

	flagArgs, positional := splitArgs(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	base := def
	base.Eccentricity = *ecc
	base.EquatorialRadius = *radius
	if *config != "" {
		e, err := ellipsoid.Load(*config)
		if err != nil {
			logger.Println(err)
			return 1
		}
		base = e
	}

	r, e, err := parseArgs(append(fs.Args(), positional...), base)
	if err != nil {
		var usage *UsageError
		if errors.As(err, &usage) {
			fs.Usage()
			return 2
		}
		logger.Println(err)
		return 1
	}
	if err := e.Validate(); err != nil {
		logger.Println(err)
		return 1
	}

	if m := vector.Magnitude(r.Dir.Coord()); math.Abs(m-1) > unitTolerance {
		logger.Printf("warning: direction magnitude %v is not 1", m)
	}

	p, ok := e.Intersect(r)
	if !ok {
		return 0
	}
	fmt.Fprintln(stdout, p.X)
	fmt.Fprintln(stdout, p.Y)
	fmt.Fprintln(stdout, p.Z)
	if *geodetic {
		g := e.Geodetic(p)
		fmt.Fprintln(stdout, g.Lat())
		fmt.Fprintln(stdout, g.Lon())
	}
	return 0
}
