// Package part provides parametric mechanical parts built on the solid
// package: primitives, gears, M3 fasteners, buttons, and containers.
// Dimensions are measures, so callers can mix metric and imperial input
// freely; all geometry comes out in millimeters.
package part

import (
	"github.com/efficio-cad/efficio/measure"
	"github.com/efficio-cad/efficio/solid"
)

// Measure aliases measure.Measure so part definitions stay terse.
type Measure = measure.Measure

// Part produces solid geometry on demand.
type Part interface {
	Shape() (*solid.Shape, error)
}

// Cutter is a Part that also provides the envelope to carve out of a
// host shape before the part itself is placed.
type Cutter interface {
	Part
	CutShape() (*solid.Shape, error)
}

// value unwraps a measure, treating nil as zero. Dimension validation
// happens in the solid package, which rejects non-positive sizes with
// the offending values in the error.
func value(m measure.Measure) float64 {
	if m == nil {
		return 0
	}
	return m.Value()
}

// finish converts a completed chain into the Part return convention.
func finish(s *solid.Shape) (*solid.Shape, error) {
	if err := s.Err(); err != nil {
		return nil, err
	}
	return s, nil
}
