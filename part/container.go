package part

import "github.com/efficio-cad/efficio/solid"

// Container dimensions in millimeters.
const (
	BoxFilletRadius  = 3.0
	BoxLidHeight     = 3.0
	BoxWallThickness = 2.0
	PartSpacing      = 1.0
)

// RoundedBox is a hollow filleted box with a bolt channel through its
// center and a removable lid. The lid prints beside the body, flipped
// open side up and spaced one part gap away.
type RoundedBox struct {
	Width  Measure
	Length Measure
	Depth  Measure
}

// Shape builds the box body and lid laid out for printing.
func (rb RoundedBox) Shape() (*solid.Shape, error) {
	w := value(rb.Width)
	l := value(rb.Length)
	d := value(rb.Depth)

	outer := solid.New().Box(w, l, d).FilletEdges(BoxFilletRadius)

	wallOffset := BoxWallThickness * 2
	inner := solid.New().
		Box(w-wallOffset, l-wallOffset, d-wallOffset).
		FilletEdges(BoxFilletRadius)

	hollow := outer.Cut(inner)
	if err := hollow.Err(); err != nil {
		return nil, err
	}

	// Carve the channel envelope out of the walls, then put the channel
	// body back so the bolt cavity survives the union.
	channel := BoltChannel{Length: rb.Depth}
	envelope, err := channel.CutShape()
	if err != nil {
		return nil, err
	}
	hollow.Cut(envelope.Translate(0, 0, -d/2))

	body, err := channel.Shape()
	if err != nil {
		return nil, err
	}
	hollow.Union(body.Translate(0, 0, -d/2))

	lid := hollow.Clone().
		CutFromTop(BoxLidHeight).
		Translate(0, 0, -(d-BoxLidHeight)/2).
		Rotate(180, 0, 0).
		Translate(w+PartSpacing, 0, -(d-BoxLidHeight)/2)

	base := hollow.CutFromBottom(d - BoxLidHeight)
	return finish(base.Union(lid))
}
