// Package render turns shapes into STL meshes and 2D line drawings.
// Meshing is delegated to the kernel; drawings project the shape's
// wires onto a view plane and plot them.
package render

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/efficio-cad/efficio/solid"
)

// View is a named projection direction. The drawing plane is normal to
// Dir and keeps world +Z pointing up where possible.
type View struct {
	Name string
	Dir  r3.Vec
}

// The four standard views.
var (
	Top   = View{Name: "top", Dir: r3.Vec{Z: 1}}
	Front = View{Name: "front", Dir: r3.Vec{Y: 1}}
	Left  = View{Name: "left", Dir: r3.Vec{X: 1}}
	Iso   = View{Name: "iso", Dir: r3.Vec{X: 1, Y: 1, Z: 1}}
)

// AllViews lists the standard views in composite layout order.
var AllViews = []View{Top, Front, Left, Iso}

// ParseView resolves a view name.
func ParseView(s string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return Top, nil
	case "front":
		return Front, nil
	case "left":
		return Left, nil
	case "iso":
		return Iso, nil
	}
	return View{}, fmt.Errorf("unknown view %q (valid: top, front, left, iso)", s)
}

// basis returns the screen axes for the view: right maps to drawing x,
// up to drawing y. Views straight down an axis parallel to world up
// fall back to the XY axes.
func (v View) basis() (right, up r3.Vec) {
	dir := r3.Unit(v.Dir)
	worldUp := r3.Vec{Z: 1}
	if math.Abs(r3.Dot(dir, worldUp)) > 1-1e-9 {
		return r3.Vec{X: 1}, r3.Vec{Y: 1}
	}
	right = r3.Unit(r3.Cross(dir, worldUp))
	up = r3.Unit(r3.Cross(right, dir))
	return right, up
}

// project flattens a wire onto the view plane.
func (v View) project(w solid.Wire) [][2]float64 {
	right, up := v.basis()
	out := make([][2]float64, len(w))
	for i, p := range w {
		q := r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
		out[i] = [2]float64{r3.Dot(q, right), r3.Dot(q, up)}
	}
	return out
}
