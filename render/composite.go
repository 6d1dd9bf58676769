package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/gogpu/gg"

	"github.com/efficio-cad/efficio/internal/fsutil"
	"github.com/efficio-cad/efficio/solid"
)

// CompositePNG renders the four standard views onto one 2x2 sheet: top
// and front across the first row, left and iso across the second. The
// sheet is twice the per-view size in each direction.
func CompositePNG(fs fsutil.FileSystem, shape *solid.Shape, path string, opts Options) error {
	tiles := make([]image.Image, len(AllViews))
	for i, view := range AllViews {
		p, err := viewPlot(shape, view, opts)
		if err != nil {
			return fmt.Errorf("render %s view: %w", view.Name, err)
		}
		wt, err := p.WriterTo(pixels(opts.Width), pixels(opts.Height), "png")
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if _, err := wt.WriteTo(&buf); err != nil {
			return err
		}
		img, err := png.Decode(&buf)
		if err != nil {
			return fmt.Errorf("decode %s view: %w", view.Name, err)
		}
		tiles[i] = img
	}

	dc := gg.NewContext(opts.Width*2, opts.Height*2)
	dc.ClearWithColor(gg.White)
	for i, img := range tiles {
		x := float64((i % 2) * opts.Width)
		y := float64((i / 2) * opts.Height)
		dc.DrawImage(gg.ImageBufFromImage(img), x, y)
	}

	f, err := fs.Create(path)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
