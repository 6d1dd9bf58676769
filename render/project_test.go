package render

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/efficio-cad/efficio/internal/testutil"
	"github.com/efficio-cad/efficio/solid"
)

func TestBasisOrthonormal(t *testing.T) {
	for _, view := range AllViews {
		right, up := view.basis()
		dir := r3.Unit(view.Dir)

		testutil.AssertInDelta(t, r3.Dot(right, up), 0, 1e-12)
		testutil.AssertInDelta(t, r3.Dot(right, dir), 0, 1e-12)
		testutil.AssertInDelta(t, r3.Dot(up, dir), 0, 1e-12)
		testutil.AssertInDelta(t, r3.Norm(right), 1, 1e-12)
		testutil.AssertInDelta(t, r3.Norm(up), 1, 1e-12)
	}
}

func TestProjectKnownPoints(t *testing.T) {
	w := solid.Wire{{X: 1, Y: 2, Z: 3}}

	tests := []struct {
		view View
		want [2]float64
	}{
		// Looking down: x right, y up.
		{Top, [2]float64{1, 2}},
		// Looking along +Y: x right, z up.
		{Front, [2]float64{1, 3}},
		// Looking along +X: -y right, z up.
		{Left, [2]float64{-2, 3}},
	}
	for _, tt := range tests {
		got := tt.view.project(w)
		if len(got) != 1 {
			t.Fatalf("%s: projected %d points, want 1", tt.view.Name, len(got))
		}
		testutil.AssertInDelta(t, got[0][0], tt.want[0], 1e-12)
		testutil.AssertInDelta(t, got[0][1], tt.want[1], 1e-12)
	}
}

func TestProjectIsoKeepsZUp(t *testing.T) {
	// A point straight up the Z axis must project upward in iso view.
	w := solid.Wire{{Z: 10}}
	got := Iso.project(w)
	if got[0][1] <= 0 {
		t.Errorf("iso projection of +Z point has v = %v, want positive", got[0][1])
	}
	testutil.AssertInDelta(t, got[0][0], 0, 1e-9)
}

func TestParseView(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "top", want: "top"},
		{in: "FRONT", want: "front"},
		{in: " left ", want: "left"},
		{in: "iso", want: "iso"},
		{in: "bottom", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		v, err := ParseView(tt.in)
		if tt.wantErr {
			testutil.AssertError(t, err)
			continue
		}
		testutil.AssertNoError(t, err)
		if v.Name != tt.want {
			t.Errorf("ParseView(%q).Name = %q, want %q", tt.in, v.Name, tt.want)
		}
	}
}

func TestProjectPreservesLength(t *testing.T) {
	// Projection along the view axis collapses; across it preserves.
	w := solid.Wire{{X: 0}, {X: 5}}
	got := Front.project(w)
	dx := got[1][0] - got[0][0]
	dy := got[1][1] - got[0][1]
	testutil.AssertInDelta(t, math.Hypot(dx, dy), 5, 1e-9)

	w = solid.Wire{{Y: 0}, {Y: 5}}
	got = Front.project(w)
	dx = got[1][0] - got[0][0]
	dy = got[1][1] - got[0][1]
	testutil.AssertInDelta(t, math.Hypot(dx, dy), 0, 1e-9)
}
