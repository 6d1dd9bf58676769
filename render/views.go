package render

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/efficio-cad/efficio/internal/fsutil"
	"github.com/efficio-cad/efficio/solid"
)

// Options controls drawing size and style.
type Options struct {
	Width       int     // canvas width in pixels
	Height      int     // canvas height in pixels
	Margin      float64 // clear border in pixels
	StrokeWidth float64 // visible edge weight in points
	ShowAxes    bool    // draw the coordinate grid
	Title       string  // drawing title; the view name is appended
}

// DefaultOptions mirrors the classic four-view drawing sheet.
func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      800,
		Margin:      50,
		StrokeWidth: 2,
		ShowAxes:    true,
	}
}

// pixels converts a pixel count to a canvas length at screen resolution.
func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / 96
}

// viewPlot projects the shape's wires into the view and lays them out
// on a square plot. Hidden wires draw first, in blue, so visible black
// edges paint over them.
func viewPlot(shape *solid.Shape, view View, opts Options) (*plot.Plot, error) {
	if err := shape.Err(); err != nil {
		return nil, err
	}
	visible := shape.Edges()
	hidden := shape.HiddenEdges()
	if len(visible) == 0 && len(hidden) == 0 {
		return nil, fmt.Errorf("shape has no edges to draw")
	}

	p := plot.New()
	if opts.Title != "" {
		p.Title.Text = fmt.Sprintf("%s (%s)", opts.Title, view.Name)
	} else {
		p.Title.Text = view.Name
	}
	if opts.ShowAxes {
		p.Add(plotter.NewGrid())
	} else {
		p.HideAxes()
	}

	minU, minV := math.Inf(1), math.Inf(1)
	maxU, maxV := math.Inf(-1), math.Inf(-1)

	addWires := func(wires []solid.Wire, style draw.LineStyle) error {
		for _, w := range wires {
			pts := view.project(w)
			xys := make(plotter.XYs, len(pts))
			for i, pt := range pts {
				xys[i] = plotter.XY{X: pt[0], Y: pt[1]}
				minU = math.Min(minU, pt[0])
				maxU = math.Max(maxU, pt[0])
				minV = math.Min(minV, pt[1])
				maxV = math.Max(maxV, pt[1])
			}
			line, err := plotter.NewLine(xys)
			if err != nil {
				return err
			}
			line.LineStyle = style
			p.Add(line)
		}
		return nil
	}

	hiddenStyle := draw.LineStyle{
		Color:  color.RGBA{B: 255, A: 255},
		Width:  vg.Points(opts.StrokeWidth),
		Dashes: []vg.Length{vg.Points(4), vg.Points(3)},
	}
	visibleStyle := draw.LineStyle{
		Color: color.RGBA{A: 255},
		Width: vg.Points(opts.StrokeWidth),
	}
	if err := addWires(hidden, hiddenStyle); err != nil {
		return nil, err
	}
	if err := addWires(visible, visibleStyle); err != nil {
		return nil, err
	}

	// Equal spans keep the drawing square; the margin maps the pixel
	// border into data units.
	span := math.Max(maxU-minU, maxV-minV)
	if span <= 0 {
		span = 1
	}
	drawable := float64(opts.Width) - 2*opts.Margin
	if drawable <= 0 {
		drawable = float64(opts.Width)
	}
	pad := span * opts.Margin / drawable
	cu := (minU + maxU) / 2
	cv := (minV + maxV) / 2
	p.X.Min = cu - span/2 - pad
	p.X.Max = cu + span/2 + pad
	p.Y.Min = cv - span/2 - pad
	p.Y.Max = cv + span/2 + pad

	return p, nil
}

// WriteView renders one projection to the format implied by the path
// extension: .png, .svg or .pdf.
func WriteView(fs fsutil.FileSystem, shape *solid.Shape, view View, path string, opts Options) error {
	p, err := viewPlot(shape, view, opts)
	if err != nil {
		return err
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch format {
	case "png", "svg", "pdf":
	default:
		return fmt.Errorf("unsupported drawing format %q (use .png, .svg or .pdf)", filepath.Ext(path))
	}

	wt, err := p.WriterTo(pixels(opts.Width), pixels(opts.Height), format)
	if err != nil {
		return err
	}

	f, err := fs.Create(path)
	if err != nil {
		return err
	}
	if _, err := wt.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
