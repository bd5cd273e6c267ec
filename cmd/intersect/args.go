package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"ray-ellipsoid/internal/ellipsoid"
	"ray-ellipsoid/internal/geometry/vector"
)

// Positional parameter names, in command-line order.
var paramNames = []string{
	"d_x", "d_y", "d_z",
	"c_x", "c_y", "c_z",
	"s_x", "s_y", "s_z",
	"r_s",
}

const (
	shortArgs = 6
	fullArgs  = 10
)

// UsageError reports a wrong number of positional arguments.
type UsageError struct {
	Got int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("expected %d or %d arguments, got %d", shortArgs, fullArgs, e.Got)
}

// InvalidArgument reports a positional argument that is not a number.
type InvalidArgument struct {
	Pos   int // 1-based
	Name  string
	Value string
	Err   error
}

func (e *InvalidArgument) Error() string {
	return fmt.Sprintf("argument %d (%s): invalid number %q", e.Pos, e.Name, e.Value)
}

func (e *InvalidArgument) Unwrap() error { return e.Err }

// parseArgs builds the ray and the ellipsoid from the positional arguments.
// With six arguments the ellipsoid is base unchanged; with ten the last four
// set its center offset and equatorial radius.
func parseArgs(args []string, base ellipsoid.Ellipsoid) (ellipsoid.Ray, ellipsoid.Ellipsoid, error) {
	if len(args) != shortArgs && len(args) != fullArgs {
		return ellipsoid.Ray{}, base, &UsageError{Got: len(args)}
	}

	vals := make([]float64, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return ellipsoid.Ray{}, base, &InvalidArgument{Pos: i + 1, Name: paramNames[i], Value: a, Err: err}
		}
		vals[i] = f
	}

	r := ellipsoid.Ray{
		Dir:    vector.NewVec3(vals[0], vals[1], vals[2]),
		Origin: vector.NewVec3(vals[3], vals[4], vals[5]),
	}
	e := base
	if len(vals) == fullArgs {
		e.Center = vector.NewVec3(vals[6], vals[7], vals[8])
		e.EquatorialRadius = vals[9]
	}
	return r, e, nil
}

// splitArgs separates leading flags from the positional numbers, so that a
// negative coordinate such as -1 is not mistaken for a flag. A "--" ends the
// flags explicitly.
func splitArgs(fs *flag.FlagSet, args []string) (flags, positional []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return args[:i], args[i+1:]
		}
		if _, err := strconv.ParseFloat(a, 64); err == nil || !strings.HasPrefix(a, "-") {
			return args[:i], args[i:]
		}
		name := strings.TrimLeft(a, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if f := fs.Lookup(name); f != nil {
			if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
				continue
			}
			i++ // value follows the flag
		}
	}
	return args, nil
}
