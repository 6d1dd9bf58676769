// Package solid wraps the sdfx kernel in a fluent Shape API. A Shape
// accumulates 2D sketches and 3D solids through chained operations;
// errors stick to the shape and surface once at the end of the chain.
//
// Geometry is delegated to the kernel's signed distance fields. The
// package additionally tracks primitive outlines as wires so renders
// can draw edges without interrogating the distance field.
package solid

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Orientation selects the sketch plane for 2D operations.
type Orientation int

const (
	// Front sketches on the XY plane and extrudes along +Z.
	Front Orientation = iota
	// Left sketches on the YZ plane and extrudes along +X.
	Left
	// Top sketches on the XZ plane and extrudes along -Y.
	Top
)

func (o Orientation) String() string {
	switch o {
	case Front:
		return "front"
	case Left:
		return "left"
	case Top:
		return "top"
	}
	return fmt.Sprintf("orientation(%d)", int(o))
}

// circleSegments is the sampling resolution for circular wires. It only
// affects rendered edges, never the distance field.
const circleSegments = 64

// Wire is an ordered run of 3D points drawn as a connected line.
type Wire []v3.Vec

// Bounds is an axis-aligned bounding box in millimeters.
type Bounds struct {
	Min, Max v3.Vec
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() v3.Vec {
	return v3.Vec{X: b.Max.X - b.Min.X, Y: b.Max.Y - b.Min.Y, Z: b.Max.Z - b.Min.Z}
}

// Center returns the midpoint of the box.
func (b Bounds) Center() v3.Vec {
	return v3.Vec{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2, Z: (b.Min.Z + b.Max.Z) / 2}
}

type shapeKind int

const (
	kindEmpty shapeKind = iota
	kindBox
	kindGeneric
)

// Shape is a mutable geometry under construction. Operations mutate the
// receiver and return it so calls chain; the zero disposition is an
// empty shape sketching on the Front plane.
type Shape struct {
	solid  sdf.SDF3
	sketch sdf.SDF2
	plane  Orientation

	// outline mirrors the current sketch for wire generation.
	outline    []v2.Vec
	outlineArc bool

	edges  []Wire
	hidden []Wire

	// kind and boxSize allow fillets on unmodified box primitives.
	kind    shapeKind
	boxSize v3.Vec

	err error
}

// New returns an empty shape sketching on the Front plane.
func New() *Shape {
	return &Shape{plane: Front}
}

// On sets the sketch plane for subsequent 2D operations.
func (s *Shape) On(o Orientation) *Shape {
	if s.err != nil {
		return s
	}
	if o != Front && o != Left && o != Top {
		return s.failf("on: unknown orientation %d", int(o))
	}
	s.plane = o
	return s
}

// Err returns the first error recorded by the chain, if any.
func (s *Shape) Err() error { return s.err }

// Solid returns the kernel distance field for the shape.
func (s *Shape) Solid() (sdf.SDF3, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.solid == nil {
		return nil, fmt.Errorf("shape has no solid geometry")
	}
	return s.solid, nil
}

// Edges returns the visible wireframe.
func (s *Shape) Edges() []Wire { return s.edges }

// HiddenEdges returns wires of removed material, drawn dashed in renders.
func (s *Shape) HiddenEdges() []Wire { return s.hidden }

// Clone returns an independent copy of the shape. Distance fields are
// immutable and shared; wires are copied.
func (s *Shape) Clone() *Shape {
	c := *s
	c.edges = append([]Wire(nil), s.edges...)
	c.hidden = append([]Wire(nil), s.hidden...)
	c.outline = append([]v2.Vec(nil), s.outline...)
	return &c
}

func (s *Shape) failf(format string, args ...interface{}) *Shape {
	s.err = fmt.Errorf(format, args...)
	return s
}

// Box adds an axis-aligned box centered on the origin.
func (s *Shape) Box(w, h, d float64) *Shape {
	if s.err != nil {
		return s
	}
	if w <= 0 || h <= 0 || d <= 0 {
		return s.failf("box: dimensions must be positive, got %v x %v x %v", w, h, d)
	}
	size := v3.Vec{X: w, Y: h, Z: d}
	b, err := sdf.Box3D(size, 0)
	if err != nil {
		return s.failf("box: %w", err)
	}
	wasEmpty := s.solid == nil
	s.merge(b, boxWires(size))
	if wasEmpty {
		s.kind = kindBox
		s.boxSize = size
	}
	return s
}

// Cylinder adds a cylinder of the given radius and height, its base on
// the z=0 plane.
func (s *Shape) Cylinder(r, h float64) *Shape {
	if s.err != nil {
		return s
	}
	if r <= 0 || h <= 0 {
		return s.failf("cylinder: radius and height must be positive, got r=%v h=%v", r, h)
	}
	c, err := sdf.Cylinder3D(h, r, 0)
	if err != nil {
		return s.failf("cylinder: %w", err)
	}
	c = sdf.Transform3D(c, sdf.Translate3d(v3.Vec{X: 0, Y: 0, Z: h / 2}))
	wires := []Wire{
		circleWire(r, 0),
		circleWire(r, h),
	}
	s.merge(c, wires)
	return s
}

// Sphere adds a sphere of the given radius centered on the origin.
func (s *Shape) Sphere(r float64) *Shape {
	if s.err != nil {
		return s
	}
	if r <= 0 {
		return s.failf("sphere: radius must be positive, got %v", r)
	}
	sp, err := sdf.Sphere3D(r)
	if err != nil {
		return s.failf("sphere: %w", err)
	}
	s.merge(sp, sphereWires(r))
	return s
}

// Circle starts a circular sketch of the given radius on the current
// sketch plane.
func (s *Shape) Circle(r float64) *Shape {
	if s.err != nil {
		return s
	}
	if r <= 0 {
		return s.failf("circle: radius must be positive, got %v", r)
	}
	c, err := sdf.Circle2D(r)
	if err != nil {
		return s.failf("circle: %w", err)
	}
	s.sketch = c
	s.outline = circleOutline(r)
	s.outlineArc = true
	return s
}

// Polygon starts a regular polygon sketch with the given number of
// sides, its vertices on a circle of the given diameter.
func (s *Shape) Polygon(sides int, diameter float64) *Shape {
	if s.err != nil {
		return s
	}
	if sides < 3 {
		return s.failf("polygon: need at least 3 sides, got %d", sides)
	}
	if diameter <= 0 {
		return s.failf("polygon: diameter must be positive, got %v", diameter)
	}
	r := diameter / 2
	pts := make([]v2.Vec, sides)
	for i := 0; i < sides; i++ {
		a := 2 * math.Pi * float64(i) / float64(sides)
		pts[i] = v2.Vec{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return s.sketchPolygon(pts)
}

// Polyline starts a closed polygon sketch from the given points on the
// current sketch plane. The outline is closed implicitly.
func (s *Shape) Polyline(points [][2]float64) *Shape {
	if s.err != nil {
		return s
	}
	if len(points) < 3 {
		return s.failf("polyline: need at least 3 points, got %d", len(points))
	}
	pts := make([]v2.Vec, len(points))
	for i, p := range points {
		pts[i] = v2.Vec{X: p[0], Y: p[1]}
	}
	return s.sketchPolygon(pts)
}

func (s *Shape) sketchPolygon(pts []v2.Vec) *Shape {
	p, err := sdf.Polygon2D(pts)
	if err != nil {
		return s.failf("polygon: %w", err)
	}
	s.sketch = p
	s.outline = pts
	s.outlineArc = false
	return s
}

// Extrude turns the current sketch into a solid of the given height,
// its base on the sketch plane. The result merges into any solid the
// shape already carries.
func (s *Shape) Extrude(h float64) *Shape {
	if s.err != nil {
		return s
	}
	if s.sketch == nil {
		return s.failf("extrude: no sketch to extrude")
	}
	if h <= 0 {
		return s.failf("extrude: height must be positive, got %v", h)
	}

	sol := sdf.Extrude3D(s.sketch, h)
	sol = sdf.Transform3D(sol, sdf.Translate3d(v3.Vec{X: 0, Y: 0, Z: h / 2}))

	wires := outlineWires(s.outline, h, s.outlineArc)
	if m, ok := planeTransform(s.plane); ok {
		sol = sdf.Transform3D(sol, m)
		wires = transformWires(wires, m)
	}

	s.merge(sol, wires)
	s.sketch = nil
	s.outline = nil
	return s
}

// Union merges another shape's solid into this one.
func (s *Shape) Union(other *Shape) *Shape {
	if s.err != nil {
		return s
	}
	if other == nil {
		return s.failf("union: nil shape")
	}
	if other.err != nil {
		s.err = fmt.Errorf("union: %w", other.err)
		return s
	}
	if s.solid == nil || other.solid == nil {
		return s.failf("union: both shapes need solid geometry")
	}
	s.solid = sdf.Union3D(s.solid, other.solid)
	s.edges = append(s.edges, other.edges...)
	s.hidden = append(s.hidden, other.hidden...)
	s.kind = kindGeneric
	return s
}

// Cut removes another shape's solid from this one. The removed
// geometry's wires move to the hidden set so renders can show them.
func (s *Shape) Cut(other *Shape) *Shape {
	if s.err != nil {
		return s
	}
	if other == nil {
		return s.failf("cut: nil shape")
	}
	if other.err != nil {
		s.err = fmt.Errorf("cut: %w", other.err)
		return s
	}
	if s.solid == nil || other.solid == nil {
		return s.failf("cut: both shapes need solid geometry")
	}
	s.solid = sdf.Difference3D(s.solid, other.solid)
	s.hidden = append(s.hidden, other.edges...)
	s.hidden = append(s.hidden, other.hidden...)
	s.kind = kindGeneric
	return s
}

// Translate moves the solid by the given offsets.
func (s *Shape) Translate(x, y, z float64) *Shape {
	if s.err != nil {
		return s
	}
	if s.solid == nil {
		return s.failf("translate: no solid to transform")
	}
	m := sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z})
	s.applyTransform(m)
	return s
}

// Rotate rotates the solid about the origin by the given angles in
// degrees, applied in X, Y, Z order.
func (s *Shape) Rotate(xDeg, yDeg, zDeg float64) *Shape {
	if s.err != nil {
		return s
	}
	if s.solid == nil {
		return s.failf("rotate: no solid to transform")
	}
	m := sdf.RotateZ(radians(zDeg)).Mul(sdf.RotateY(radians(yDeg))).Mul(sdf.RotateX(radians(xDeg)))
	s.applyTransform(m)
	s.kind = kindGeneric
	return s
}

// Mirror reflects the solid across the given plane through the origin.
func (s *Shape) Mirror(o Orientation) *Shape {
	if s.err != nil {
		return s
	}
	if s.solid == nil {
		return s.failf("mirror: no solid to transform")
	}
	var m sdf.M44
	switch o {
	case Front:
		m = sdf.MirrorXY()
	case Left:
		m = sdf.MirrorYZ()
	case Top:
		m = sdf.MirrorXZ()
	default:
		return s.failf("mirror: unknown orientation %d", int(o))
	}
	s.applyTransform(m)
	s.kind = kindGeneric
	return s
}

// CutFromTop keeps only the top slab of the given height.
func (s *Shape) CutFromTop(h float64) *Shape {
	return s.cutSlab(h, true)
}

// CutFromBottom keeps only the bottom slab of the given height.
func (s *Shape) CutFromBottom(h float64) *Shape {
	return s.cutSlab(h, false)
}

func (s *Shape) cutSlab(h float64, fromTop bool) *Shape {
	op := "cutfrombottom"
	if fromTop {
		op = "cutfromtop"
	}
	if s.err != nil {
		return s
	}
	if s.solid == nil {
		return s.failf("%s: no solid to cut", op)
	}
	if h <= 0 {
		return s.failf("%s: height must be positive, got %v", op, h)
	}
	bb := s.solid.BoundingBox()
	if h >= bb.Max.Z-bb.Min.Z {
		return s // nothing to remove
	}

	var a, n v3.Vec
	if fromTop {
		a = v3.Vec{X: 0, Y: 0, Z: bb.Max.Z - h}
		n = v3.Vec{X: 0, Y: 0, Z: 1}
	} else {
		a = v3.Vec{X: 0, Y: 0, Z: bb.Min.Z + h}
		n = v3.Vec{X: 0, Y: 0, Z: -1}
	}
	s.solid = sdf.Cut3D(s.solid, a, n)
	s.edges = clipWires(s.edges, a, n)
	s.hidden = clipWires(s.hidden, a, n)
	s.kind = kindGeneric
	return s
}

// FilletEdges rounds the edges of a box primitive. Only unmodified box
// shapes can be filleted; everything else reports an error.
func (s *Shape) FilletEdges(r float64) *Shape {
	if s.err != nil {
		return s
	}
	if s.kind != kindBox {
		return s.failf("fillet: only box shapes support edge fillets")
	}
	if r < 0 {
		return s.failf("fillet: radius must not be negative, got %v", r)
	}
	minDim := math.Min(s.boxSize.X, math.Min(s.boxSize.Y, s.boxSize.Z))
	if 2*r >= minDim {
		return s.failf("fillet: radius %v too large for box %v x %v x %v", r, s.boxSize.X, s.boxSize.Y, s.boxSize.Z)
	}
	b, err := sdf.Box3D(s.boxSize, r)
	if err != nil {
		return s.failf("fillet: %w", err)
	}
	s.solid = b
	return s
}

// Bounds returns the axis-aligned bounding box. A sketch-only shape
// reports its 2D extent at zero thickness; the second return is false
// for an empty shape.
func (s *Shape) Bounds() (Bounds, bool) {
	if s.err != nil {
		return Bounds{}, false
	}
	if s.solid != nil {
		bb := s.solid.BoundingBox()
		return Bounds{Min: bb.Min, Max: bb.Max}, true
	}
	if s.sketch != nil {
		bb := s.sketch.BoundingBox()
		corners := []v2.Vec{
			bb.Min,
			{X: bb.Max.X, Y: bb.Min.Y},
			bb.Max,
			{X: bb.Min.X, Y: bb.Max.Y},
		}
		m, hasM := planeTransform(s.plane)
		var out Bounds
		for i, c := range corners {
			p := v3.Vec{X: c.X, Y: c.Y, Z: 0}
			if hasM {
				p = m.MulPosition(p)
			}
			if i == 0 {
				out = Bounds{Min: p, Max: p}
				continue
			}
			out.Min = vMin(out.Min, p)
			out.Max = vMax(out.Max, p)
		}
		return out, true
	}
	return Bounds{}, false
}

func (s *Shape) merge(sol sdf.SDF3, wires []Wire) {
	if s.solid == nil {
		s.solid = sol
	} else {
		s.solid = sdf.Union3D(s.solid, sol)
	}
	s.edges = append(s.edges, wires...)
	s.kind = kindGeneric
}

func (s *Shape) applyTransform(m sdf.M44) {
	s.solid = sdf.Transform3D(s.solid, m)
	s.edges = transformWires(s.edges, m)
	s.hidden = transformWires(s.hidden, m)
}

// planeTransform maps sketch space onto the given plane. Front is the
// identity and reports false.
func planeTransform(o Orientation) (sdf.M44, bool) {
	switch o {
	case Left:
		return sdf.RotateZ(radians(90)).Mul(sdf.RotateX(radians(90))), true
	case Top:
		return sdf.RotateX(radians(90)), true
	}
	return sdf.M44{}, false
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func vMin(a, b v3.Vec) v3.Vec {
	return v3.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

func vMax(a, b v3.Vec) v3.Vec {
	return v3.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}
