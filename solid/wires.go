package solid

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// boxWires returns the 12 edges of a centered box as 6 wires: two
// rectangular loops and four verticals.
func boxWires(size v3.Vec) []Wire {
	hx, hy, hz := size.X/2, size.Y/2, size.Z/2
	bottom := Wire{
		{X: -hx, Y: -hy, Z: -hz},
		{X: hx, Y: -hy, Z: -hz},
		{X: hx, Y: hy, Z: -hz},
		{X: -hx, Y: hy, Z: -hz},
		{X: -hx, Y: -hy, Z: -hz},
	}
	top := make(Wire, len(bottom))
	for i, p := range bottom {
		top[i] = v3.Vec{X: p.X, Y: p.Y, Z: hz}
	}
	wires := []Wire{bottom, top}
	for i := 0; i < 4; i++ {
		p := bottom[i]
		wires = append(wires, Wire{p, {X: p.X, Y: p.Y, Z: hz}})
	}
	return wires
}

// circleWire returns a closed circle of radius r at height z.
func circleWire(r, z float64) Wire {
	w := make(Wire, circleSegments+1)
	for i := 0; i <= circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		w[i] = v3.Vec{X: r * math.Cos(a), Y: r * math.Sin(a), Z: z}
	}
	return w
}

// sphereWires returns three great circles of a sphere centered on the
// origin, one per principal plane.
func sphereWires(r float64) []Wire {
	xy := circleWire(r, 0)
	xz := make(Wire, len(xy))
	yz := make(Wire, len(xy))
	for i, p := range xy {
		xz[i] = v3.Vec{X: p.X, Y: 0, Z: p.Y}
		yz[i] = v3.Vec{X: 0, Y: p.X, Z: p.Y}
	}
	return []Wire{xy, xz, yz}
}

// circleOutline samples a circle into sketch outline points.
func circleOutline(r float64) []v2.Vec {
	pts := make([]v2.Vec, circleSegments)
	for i := 0; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = v2.Vec{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return pts
}

// outlineWires builds the wireframe of an extrusion in sketch space:
// closed loops at the base and top, plus vertical edges at outline
// vertices. Sampled arcs skip the verticals.
func outlineWires(outline []v2.Vec, h float64, arc bool) []Wire {
	if len(outline) == 0 {
		return nil
	}
	base := make(Wire, 0, len(outline)+1)
	top := make(Wire, 0, len(outline)+1)
	for _, p := range outline {
		base = append(base, v3.Vec{X: p.X, Y: p.Y, Z: 0})
		top = append(top, v3.Vec{X: p.X, Y: p.Y, Z: h})
	}
	base = append(base, base[0])
	top = append(top, top[0])
	wires := []Wire{base, top}
	if !arc {
		for _, p := range outline {
			wires = append(wires, Wire{
				{X: p.X, Y: p.Y, Z: 0},
				{X: p.X, Y: p.Y, Z: h},
			})
		}
	}
	return wires
}

func transformWires(wires []Wire, m sdf.M44) []Wire {
	out := make([]Wire, len(wires))
	for i, w := range wires {
		nw := make(Wire, len(w))
		for j, p := range w {
			nw[j] = m.MulPosition(p)
		}
		out[i] = nw
	}
	return out
}

// clipWires keeps the portions of each wire on the side of the plane
// the normal points to, splitting wires that cross it.
func clipWires(wires []Wire, a, n v3.Vec) []Wire {
	var out []Wire
	for _, w := range wires {
		out = append(out, clipWire(w, a, n)...)
	}
	return out
}

func clipWire(w Wire, a, n v3.Vec) []Wire {
	side := func(p v3.Vec) float64 {
		return p.Sub(a).Dot(n)
	}
	var segs []Wire
	var cur Wire
	flush := func() {
		if len(cur) >= 2 {
			segs = append(segs, cur)
		}
		cur = nil
	}
	for i, p := range w {
		in := side(p) >= 0
		if i > 0 {
			prev := w[i-1]
			prevIn := side(prev) >= 0
			if in != prevIn {
				dPrev := side(prev)
				t := dPrev / (dPrev - side(p))
				cross := prev.Add(p.Sub(prev).MulScalar(t))
				cur = append(cur, cross)
				if !in {
					flush()
				}
			}
		}
		if in {
			cur = append(cur, p)
		}
	}
	flush()
	return segs
}
