package solid

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestBoxWireCount(t *testing.T) {
	wires := boxWires(v3.Vec{X: 2, Y: 2, Z: 2})
	// Two loops plus four verticals.
	if len(wires) != 6 {
		t.Fatalf("boxWires returned %d wires, want 6", len(wires))
	}
	if len(wires[0]) != 5 {
		t.Errorf("bottom loop has %d points, want 5 (closed)", len(wires[0]))
	}
}

func TestClipWireSplitsAtPlane(t *testing.T) {
	// A vertical segment crossing z=0 twice: down through, back up.
	w := Wire{
		{X: 0, Y: 0, Z: 2},
		{X: 0, Y: 0, Z: -2},
		{X: 1, Y: 0, Z: -2},
		{X: 1, Y: 0, Z: 2},
	}
	kept := clipWire(w, v3.Vec{}, v3.Vec{Z: 1})
	if len(kept) != 2 {
		t.Fatalf("clipWire returned %d segments, want 2", len(kept))
	}
	for _, seg := range kept {
		for _, p := range seg {
			if p.Z < -1e-9 {
				t.Errorf("kept point %v below clip plane", p)
			}
		}
	}
	// Crossing points land exactly on the plane.
	if z := kept[0][len(kept[0])-1].Z; z > 1e-9 || z < -1e-9 {
		t.Errorf("crossing point z = %v, want 0", z)
	}
}

func TestClipWireFullyKept(t *testing.T) {
	w := Wire{{Z: 1}, {X: 1, Z: 2}}
	kept := clipWire(w, v3.Vec{}, v3.Vec{Z: 1})
	if len(kept) != 1 || len(kept[0]) != 2 {
		t.Fatalf("fully-kept wire mangled: %v", kept)
	}
}

func TestClipWireFullyDropped(t *testing.T) {
	w := Wire{{Z: -1}, {X: 1, Z: -2}}
	if kept := clipWire(w, v3.Vec{}, v3.Vec{Z: 1}); len(kept) != 0 {
		t.Fatalf("fully-dropped wire survived: %v", kept)
	}
}
