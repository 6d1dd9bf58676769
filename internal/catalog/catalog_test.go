package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/efficio-cad/efficio/internal/testutil"
	"github.com/efficio-cad/efficio/part"
)

func TestLookup(t *testing.T) {
	e, ok := Lookup("gear")
	if !ok {
		t.Fatal("gear missing from catalog")
	}
	if e.Name != "gear" {
		t.Errorf("Lookup returned %q, want %q", e.Name, "gear")
	}

	if _, ok := Lookup("flying-saucer"); ok {
		t.Error("Lookup found an object that should not exist")
	}
}

func TestNamesMatchEntries(t *testing.T) {
	names := Names()
	all := All()
	if len(names) != len(all) {
		t.Fatalf("Names() has %d entries, All() has %d", len(names), len(all))
	}
	for i, e := range all {
		if names[i] != e.Name {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], e.Name)
		}
	}
}

func TestEveryEntryBuildsWithDefaults(t *testing.T) {
	for _, e := range All() {
		t.Run(e.Name, func(t *testing.T) {
			p, err := e.Build(nil)
			testutil.AssertNoError(t, err)

			shape, err := p.Shape()
			testutil.AssertNoError(t, err)

			bounds, ok := shape.Bounds()
			if !ok {
				t.Fatal("built shape has no bounds")
			}
			size := bounds.Size()
			if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
				t.Errorf("built shape has degenerate size %+v", size)
			}
		})
	}
}

func TestBuildOverride(t *testing.T) {
	e, _ := Lookup("box")
	p, err := e.Build(map[string]string{"width": "2in"})
	testutil.AssertNoError(t, err)

	shape, err := p.Shape()
	testutil.AssertNoError(t, err)

	bounds, _ := shape.Bounds()
	testutil.AssertInDelta(t, bounds.Size().X, 50.8, 1e-9)
	testutil.AssertInDelta(t, bounds.Size().Y, 40, 1e-9)
}

func TestBuildUnknownParam(t *testing.T) {
	e, _ := Lookup("sphere")
	_, err := e.Build(map[string]string{"girth": "10mm"})
	testutil.AssertError(t, err)
	if !strings.Contains(err.Error(), "radius") {
		t.Errorf("error %q does not list the valid parameter names", err)
	}
}

func TestBuildBadMeasure(t *testing.T) {
	e, _ := Lookup("box")
	_, err := e.Build(map[string]string{"width": "12kg"})
	testutil.AssertError(t, err)
	if !strings.Contains(err.Error(), "width") {
		t.Errorf("error %q does not name the offending parameter", err)
	}
}

func TestBuildBadInt(t *testing.T) {
	e, _ := Lookup("gear")
	_, err := e.Build(map[string]string{"teeth": "lots"})
	testutil.AssertError(t, err)
	if !strings.Contains(err.Error(), "teeth") {
		t.Errorf("error %q does not name the offending parameter", err)
	}
}

func TestBuildBadBool(t *testing.T) {
	e, _ := Lookup("m3-bolt")
	_, err := e.Build(map[string]string{"clearance": "maybe"})
	testutil.AssertError(t, err)
}

func TestGearProfileParam(t *testing.T) {
	e, _ := Lookup("gear")

	p, err := e.Build(map[string]string{"profile": "trapezoidal"})
	testutil.AssertNoError(t, err)
	_, err = p.Shape()
	testutil.AssertNoError(t, err)

	p, err = e.Build(map[string]string{"profile": "involute"})
	testutil.AssertNoError(t, err)
	_, err = p.Shape()
	if !errors.Is(err, part.ErrInvoluteNotImplemented) {
		t.Errorf("involute profile error = %v, want ErrInvoluteNotImplemented", err)
	}

	_, err = e.Build(map[string]string{"profile": "sawtooth"})
	testutil.AssertError(t, err)
}

func TestBoltClearanceParam(t *testing.T) {
	e, _ := Lookup("m3-bolt")

	p, err := e.Build(map[string]string{"clearance": "true"})
	testutil.AssertNoError(t, err)

	shape, err := p.Shape()
	testutil.AssertNoError(t, err)

	bounds, _ := shape.Bounds()
	testutil.AssertInDelta(t, bounds.Max.X, part.M3HeadRadius+part.M3Clearance, 1e-9)
}

func TestFractionMeasureParam(t *testing.T) {
	e, _ := Lookup("cylinder")
	p, err := e.Build(map[string]string{"radius": "3/8in"})
	testutil.AssertNoError(t, err)

	shape, err := p.Shape()
	testutil.AssertNoError(t, err)

	bounds, _ := shape.Bounds()
	testutil.AssertInDelta(t, bounds.Max.X, 0.375*25.4, 1e-9)
}
