package part

import "github.com/efficio-cad/efficio/solid"

// Box is a rectangular solid centered on the origin.
type Box struct {
	Width  Measure
	Length Measure
	Depth  Measure
}

// Shape builds the box.
func (b Box) Shape() (*solid.Shape, error) {
	return finish(solid.New().Box(value(b.Width), value(b.Length), value(b.Depth)))
}

// Cylinder is a circular column with its base on the z=0 plane.
type Cylinder struct {
	Length Measure
	Radius Measure
}

// Shape builds the cylinder.
func (c Cylinder) Shape() (*solid.Shape, error) {
	return finish(solid.New().Cylinder(value(c.Radius), value(c.Length)))
}

// Sphere is a ball centered on the origin.
type Sphere struct {
	Radius Measure
}

// Shape builds the sphere.
func (s Sphere) Shape() (*solid.Shape, error) {
	return finish(solid.New().Sphere(value(s.Radius)))
}
