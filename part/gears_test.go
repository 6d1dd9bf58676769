package part

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/efficio-cad/efficio/internal/monitoring"
	"github.com/efficio-cad/efficio/internal/testutil"
	"github.com/efficio-cad/efficio/measure"
)

func TestRectangularToothDimensions(t *testing.T) {
	// Reference dimensions for a 50mm, 10-tooth gear.
	spec := toothSpec{maxRadius: 50.0, teeth: 10, topRatio: 1.0}

	testutil.AssertInDelta(t, spec.pitchAngle(), 0.6283185307179586, 1e-7)
	testutil.AssertInDelta(t, spec.pitchRadius(), 42.5, 1e-7)
	testutil.AssertInDelta(t, spec.circularPitch(), 26.703537555513243, 1e-7)
	testutil.AssertInDelta(t, spec.height(), 18.692476288859268, 1e-7)
	testutil.AssertInDelta(t, spec.width(), 13.133222260935265, 1e-7)
	testutil.AssertInDelta(t, spec.chordWidth(), 26.26644452187053, 1e-7)
	testutil.AssertInDelta(t, spec.baseRadius(), 30.27287557263539, 1e-7)
}

func TestTrapezoidalToothNarrowsAtTip(t *testing.T) {
	spec := toothSpec{maxRadius: 50.0, teeth: 10, topRatio: 0.5}
	testutil.AssertInDelta(t, spec.topWidth(), spec.width()/2, 1e-9)

	rect := toothSpec{maxRadius: 50.0, teeth: 10, topRatio: 1.0}
	testutil.AssertInDelta(t, rect.topWidth(), rect.width(), 1e-9)
}

func TestProfileTopRatio(t *testing.T) {
	r, err := ProfileRectangular.topRatio()
	testutil.AssertNoError(t, err)
	testutil.AssertInDelta(t, r, 1.0, 0)

	r, err = ProfileTrapezoidal.topRatio()
	testutil.AssertNoError(t, err)
	testutil.AssertInDelta(t, r, 0.5, 0)
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		in      string
		want    Profile
		wantErr bool
	}{
		{in: "rectangular", want: ProfileRectangular},
		{in: "TRAPEZOIDAL", want: ProfileTrapezoidal},
		{in: " involute ", want: ProfileInvolute},
		{in: "herringbone", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseProfile(tt.in)
		if tt.wantErr {
			testutil.AssertError(t, err)
			continue
		}
		testutil.AssertNoError(t, err)
		if got != tt.want {
			t.Errorf("ParseProfile(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGearShape(t *testing.T) {
	g := Gear{
		MaxRadius: measure.Millimeter(50),
		Teeth:     12,
		Thickness: measure.Millimeter(10),
		Profile:   ProfileRectangular,
	}
	s, err := g.Shape()
	testutil.AssertNoError(t, err)

	b, ok := s.Bounds()
	if !ok {
		t.Fatal("gear has no bounds")
	}
	// The gear is thickness tall with its base on z=0.
	testutil.AssertInDelta(t, b.Min.Z, 0, 1e-6)
	testutil.AssertInDelta(t, b.Max.Z, 10, 1e-6)
	// Tooth tips approach but never pass the declared outer radius.
	testutil.AssertBetween(t, b.Size().X, 90, 100)
	testutil.AssertBetween(t, b.Size().Y, 90, 100)
}

func TestGearRejectsFewTeeth(t *testing.T) {
	g := Gear{
		MaxRadius: measure.Millimeter(50),
		Teeth:     2,
		Thickness: measure.Millimeter(10),
	}
	_, err := g.Shape()
	testutil.AssertError(t, err)
}

func TestGearInvoluteUnavailable(t *testing.T) {
	g := Gear{
		MaxRadius: measure.Millimeter(50),
		Teeth:     10,
		Thickness: measure.Millimeter(10),
		Profile:   ProfileInvolute,
	}
	_, err := g.Shape()
	if !errors.Is(err, ErrInvoluteNotImplemented) {
		t.Errorf("error = %v, want ErrInvoluteNotImplemented", err)
	}
}

func TestSphericalGearShape(t *testing.T) {
	g := SphericalGear{Radius: measure.Millimeter(25), Teeth: 8}
	s, err := g.Shape()
	testutil.AssertNoError(t, err)

	b, ok := s.Bounds()
	if !ok {
		t.Fatal("spherical gear has no bounds")
	}
	// Teeth straddle the surface, so the envelope slightly exceeds the
	// sphere in the equatorial plane and matches it along the poles.
	testutil.AssertBetween(t, b.Size().X, 50, 52)
	testutil.AssertBetween(t, b.Size().Y, 50, 52)
	testutil.AssertInDelta(t, b.Size().Z, 50, 1e-6)
}

func TestSphericalGearRejectsBadParams(t *testing.T) {
	_, err := SphericalGear{Radius: measure.Millimeter(25), Teeth: 1}.Shape()
	testutil.AssertError(t, err)
}

func TestSphericalGearFallbackWarns(t *testing.T) {
	orig := monitoring.Logf
	defer func() { monitoring.Logf = orig }()

	var logged string
	monitoring.SetLogger(func(format string, v ...interface{}) {
		logged = fmt.Sprintf(format, v...)
	})

	// A zero radius fails tooth generation and the fallback sphere too,
	// but the warning about the degraded path must still fire.
	_, err := SphericalGear{Teeth: 8}.Shape()
	testutil.AssertError(t, err)
	if !strings.Contains(logged, "falling back") {
		t.Errorf("fallback warning missing, logged %q", logged)
	}
}
