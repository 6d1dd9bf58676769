package part

import "github.com/efficio-cad/efficio/solid"

// ButtonClearance is the radial slip-fit allowance in millimeters.
const ButtonClearance = 0.20

// Button is a mushroom-style push button: a wide head with a narrower
// shaft rising from it.
type Button struct {
	HeadHeight    Measure
	HeadDiameter  Measure
	ShaftLength   Measure
	ShaftDiameter Measure
	Clearance     bool
}

// Shape builds the button. The shaft starts where the head ends.
func (b Button) Shape() (*solid.Shape, error) {
	c := 0.0
	if b.Clearance {
		c = ButtonClearance
	}
	headHeight := value(b.HeadHeight)
	head := solid.New().
		Circle(value(b.HeadDiameter)/2 + c).
		Extrude(headHeight)
	shaft := solid.New().
		Circle(value(b.ShaftDiameter)/2 + c).
		Extrude(value(b.ShaftLength)).
		Translate(0, 0, headHeight)
	return finish(head.Union(shaft))
}
