package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"ray-ellipsoid/internal/ellipsoid"
)

func runArgs(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func parseLines(t *testing.T, s string) []float64 {
	t.Helper()
	var vals []float64
	for _, line := range strings.Fields(s) {
		f, err := strconv.ParseFloat(line, 64)
		if err != nil {
			t.Fatalf("output line %q: %v", line, err)
		}
		vals = append(vals, f)
	}
	return vals
}

func TestRunPolarHit(t *testing.T) {
	code, out, _ := runArgs(t, "0", "0", "-1", "0", "0", "10000")
	if code != 0 {
		t.Fatalf("code=%d", code)
	}
	vals := parseLines(t, out)
	if len(vals) != 3 {
		t.Fatalf("output=%q", out)
	}
	if vals[0] != 0 || vals[1] != 0 || !near(vals[2], 6356.752, 1e-3) {
		t.Fatalf("point=%v", vals)
	}
}

func TestRunNegativeFirstArgument(t *testing.T) {
	code, out, stderr := runArgs(t, "-1", "0", "0", "10000", "0", "0")
	if code != 0 {
		t.Fatalf("code=%d stderr=%q", code, stderr)
	}
	vals := parseLines(t, out)
	if len(vals) != 3 || !near(vals[0], ellipsoid.REarthKm, 1e-9) {
		t.Fatalf("point=%v", vals)
	}
}

func TestRunMissPrintsNothing(t *testing.T) {
	code, out, _ := runArgs(t, "0", "0", "1", "0", "0", "10000")
	if code != 0 || out != "" {
		t.Fatalf("code=%d out=%q", code, out)
	}
}

func TestRunTenArguments(t *testing.T) {
	// Unit sphere centered at (100, 0, 0), hit from the -x side.
	code, out, _ := runArgs(t, "-ecc", "0", "--", "1", "0", "0", "0", "0", "0", "100", "0", "0", "1")
	if code != 0 {
		t.Fatalf("code=%d", code)
	}
	vals := parseLines(t, out)
	if len(vals) != 3 || vals[0] != 99 || vals[1] != 0 || vals[2] != 0 {
		t.Fatalf("point=%v", vals)
	}
}

func TestRunGeodetic(t *testing.T) {
	code, out, _ := runArgs(t, "-geodetic", "0", "0", "-1", "0", "0", "10000")
	if code != 0 {
		t.Fatalf("code=%d", code)
	}
	vals := parseLines(t, out)
	if len(vals) != 5 || vals[3] != 90 || vals[4] != 0 {
		t.Fatalf("output=%v", vals)
	}
}

func TestRunEllipsoidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sphere.json")
	if err := os.WriteFile(path, []byte(`{"equatorialRadius": 2, "eccentricity": 0}`), 0o644); err != nil {
		t.Fatal(err)
	}
	code, out, _ := runArgs(t, "-ellipsoid", path, "0", "0", "-1", "0", "0", "10")
	if code != 0 {
		t.Fatalf("code=%d", code)
	}
	vals := parseLines(t, out)
	if len(vals) != 3 || vals[2] != 2 {
		t.Fatalf("point=%v", vals)
	}
}

func TestRunUsage(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"0", "0", "-1"},
		{"0", "0", "-1", "0", "0", "10000", "0"},
	} {
		code, out, _ := runArgs(t, args...)
		if code != 2 {
			t.Fatalf("args=%v code=%d", args, code)
		}
		if !strings.HasPrefix(out, "Usage: intersect") {
			t.Fatalf("args=%v out=%q", args, out)
		}
	}
}

func TestRunInvalidArgument(t *testing.T) {
	code, out, stderr := runArgs(t, "0", "0", "down", "0", "0", "10000")
	if code != 1 || out != "" {
		t.Fatalf("code=%d out=%q", code, out)
	}
	if !strings.Contains(stderr, "argument 3 (d_z)") {
		t.Fatalf("stderr=%q", stderr)
	}
}

func TestRunInvalidEllipsoid(t *testing.T) {
	code, _, stderr := runArgs(t, "-ecc", "1", "0", "0", "-1", "0", "0", "10000")
	if code != 1 || !strings.Contains(stderr, "invalid ellipsoid") {
		t.Fatalf("code=%d stderr=%q", code, stderr)
	}
}

func TestRunWarnsOnNonUnitDirection(t *testing.T) {
	code, out, stderr := runArgs(t, "0", "0", "-2", "0", "0", "10000")
	if code != 0 || out == "" {
		t.Fatalf("code=%d out=%q", code, out)
	}
	if !strings.Contains(stderr, "warning") {
		t.Fatalf("stderr=%q", stderr)
	}
}

func TestParseArgsInvalidArgument(t *testing.T) {
	_, _, err := parseArgs([]string{"0", "0", "1", "x", "0", "0"}, ellipsoid.WGS84())
	var inv *InvalidArgument
	if !errors.As(err, &inv) {
		t.Fatalf("err=%v", err)
	}
	if inv.Pos != 4 || inv.Name != "c_x" || inv.Value != "x" {
		t.Fatalf("inv=%+v", inv)
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Fatalf("err does not unwrap to ErrSyntax: %v", err)
	}
}

func TestSplitArgs(t *testing.T) {
	fs := newTestFlagSet()
	tests := []struct {
		in         []string
		flags, pos int
	}{
		{[]string{"-1", "2"}, 0, 2},
		{[]string{"-ecc", "0.1", "-1", "2"}, 2, 2},
		{[]string{"-ecc=0.1", "-geodetic", "-1"}, 2, 1},
		{[]string{"-geodetic", "--", "-1"}, 1, 1},
	}
	for _, tt := range tests {
		flags, pos := splitArgs(fs, tt.in)
		if len(flags) != tt.flags || len(pos) != tt.pos {
			t.Fatalf("splitArgs(%v)=%v,%v", tt.in, flags, pos)
		}
	}
}

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Float64("ecc", 0, "")
	fs.Bool("geodetic", false, "")
	return fs
}

func near(a, b, tol float64) bool {
	d := a - b
	return d <= tol && d >= -tol
}
