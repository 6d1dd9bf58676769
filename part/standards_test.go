package part

import (
	"testing"

	"github.com/efficio-cad/efficio/internal/testutil"
	"github.com/efficio-cad/efficio/measure"
)

func TestMetricModuleRadii(t *testing.T) {
	// Module 1.5 with 24 teeth: pitch diameter is m*N = 36mm.
	testutil.AssertInDelta(t, Module1_5.PitchRadius(24).Value(), 18, 1e-9)
	testutil.AssertInDelta(t, Module1_5.AddendumRadius(24).Value(), 19.5, 1e-9)

	if Module1_5.PitchRadius(24).Unit() != measure.UnitMillimeter {
		t.Error("metric module radii should be millimeters")
	}
}

func TestMetricModuleAliases(t *testing.T) {
	if ModuleFine != Module1 || ModuleNormal != Module1_5 || ModuleLarge != Module2 {
		t.Error("module coarseness aliases drifted from their standards")
	}
}

func TestDiametralPitchRadii(t *testing.T) {
	// DP 16 with 32 teeth: pitch diameter is N/DP = 2 inches.
	pr := Pitch16.PitchRadius(32)
	testutil.AssertInDelta(t, pr.Value(), 25.4, 1e-9)
	if pr.Unit() != measure.UnitInch {
		t.Error("diametral pitch radii should be inches")
	}

	// Addendum adds 1/DP inches.
	testutil.AssertInDelta(t, Pitch16.AddendumRadius(32).Value(), 1.0625*25.4, 1e-9)
}

func TestDiametralPitchAliases(t *testing.T) {
	if PitchFine != Pitch20 || PitchNormal != Pitch16 || PitchLarge != Pitch12 {
		t.Error("pitch coarseness aliases drifted from their standards")
	}
}

func TestStandardsFeedGears(t *testing.T) {
	// A standard's addendum radius plugs straight into a Gear.
	g := Gear{
		MaxRadius: ModuleNormal.AddendumRadius(24),
		Teeth:     24,
		Thickness: measure.Millimeter(8),
		Profile:   ProfileTrapezoidal,
	}
	s, err := g.Shape()
	testutil.AssertNoError(t, err)

	b, ok := s.Bounds()
	if !ok {
		t.Fatal("gear has no bounds")
	}
	// Outer radius 19.5mm caps the envelope.
	testutil.AssertBetween(t, b.Size().X, 35, 39)
}

func TestPressureAngles(t *testing.T) {
	testutil.AssertInDelta(t, float64(PressureAngleModern), 20, 0)
	testutil.AssertInDelta(t, float64(PressureAngleOld), 14.5, 0)
	testutil.AssertInDelta(t, float64(PressureAngleHighTorque), 25, 0)
}
