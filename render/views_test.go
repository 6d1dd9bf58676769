package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/efficio-cad/efficio/internal/fsutil"
	"github.com/efficio-cad/efficio/internal/testutil"
	"github.com/efficio-cad/efficio/solid"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func smallOptions() Options {
	return Options{
		Width:       100,
		Height:      100,
		Margin:      10,
		StrokeWidth: 1,
	}
}

func TestWriteViewPNG(t *testing.T) {
	fs := fsutil.NewMemoryFileSystem()
	shape := solid.New().Box(10, 20, 30)

	err := WriteView(fs, shape, Front, "out/front.png", smallOptions())
	testutil.AssertNoError(t, err)

	data, err := fs.ReadFile("out/front.png")
	testutil.AssertNoError(t, err)
	if !bytes.HasPrefix(data, pngMagic) {
		t.Errorf("front.png does not start with the PNG signature")
	}
}

func TestWriteViewSVG(t *testing.T) {
	fs := fsutil.NewMemoryFileSystem()
	shape := solid.New().Box(10, 20, 30)

	err := WriteView(fs, shape, Top, "out/top.svg", smallOptions())
	testutil.AssertNoError(t, err)

	data, err := fs.ReadFile("out/top.svg")
	testutil.AssertNoError(t, err)
	if !bytes.HasPrefix(data, []byte("<?xml")) {
		t.Errorf("top.svg does not start with an XML declaration: %q", data[:min(len(data), 20)])
	}
}

func TestWriteViewPDF(t *testing.T) {
	fs := fsutil.NewMemoryFileSystem()
	shape := solid.New().Box(10, 20, 30)

	err := WriteView(fs, shape, Iso, "out/iso.pdf", smallOptions())
	testutil.AssertNoError(t, err)

	data, err := fs.ReadFile("out/iso.pdf")
	testutil.AssertNoError(t, err)
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("iso.pdf does not start with the PDF signature")
	}
}

func TestWriteViewRejectsUnknownFormat(t *testing.T) {
	fs := fsutil.NewMemoryFileSystem()
	shape := solid.New().Box(10, 20, 30)

	err := WriteView(fs, shape, Front, "out/front.stl", smallOptions())
	testutil.AssertError(t, err)
	if fs.Exists("out/front.stl") {
		t.Errorf("file was created despite the format error")
	}
}

func TestWriteViewPropagatesShapeError(t *testing.T) {
	fs := fsutil.NewMemoryFileSystem()
	shape := solid.New().Extrude(5) // no sketch to extrude

	err := WriteView(fs, shape, Front, "out/bad.png", smallOptions())
	testutil.AssertError(t, err)
}

func TestViewPlotEmptyShape(t *testing.T) {
	_, err := viewPlot(solid.New(), Front, smallOptions())
	testutil.AssertError(t, err)
}

func TestViewPlotSquareRange(t *testing.T) {
	// A flat wide box still gets a square viewport.
	shape := solid.New().Box(100, 10, 10)
	p, err := viewPlot(shape, Top, smallOptions())
	testutil.AssertNoError(t, err)

	spanX := p.X.Max - p.X.Min
	spanY := p.Y.Max - p.Y.Min
	testutil.AssertInDelta(t, spanX, spanY, 1e-9)
	if spanX < 100 {
		t.Errorf("viewport span %v does not cover the 100mm edge", spanX)
	}
}

func TestViewPlotTitles(t *testing.T) {
	shape := solid.New().Box(10, 10, 10)

	opts := smallOptions()
	p, err := viewPlot(shape, Left, opts)
	testutil.AssertNoError(t, err)
	if p.Title.Text != "left" {
		t.Errorf("untitled plot heading = %q, want %q", p.Title.Text, "left")
	}

	opts.Title = "bracket"
	p, err = viewPlot(shape, Left, opts)
	testutil.AssertNoError(t, err)
	if p.Title.Text != "bracket (left)" {
		t.Errorf("titled plot heading = %q, want %q", p.Title.Text, "bracket (left)")
	}
}

func TestCompositePNGSize(t *testing.T) {
	fs := fsutil.NewMemoryFileSystem()
	shape := solid.New().Box(10, 20, 30)

	err := CompositePNG(fs, shape, "out/sheet.png", smallOptions())
	testutil.AssertNoError(t, err)

	data, err := fs.ReadFile("out/sheet.png")
	testutil.AssertNoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	testutil.AssertNoError(t, err)

	b := img.Bounds()
	if b.Dx() != 200 || b.Dy() != 200 {
		t.Errorf("composite sheet is %dx%d, want 200x200", b.Dx(), b.Dy())
	}
}

func TestCompositePNGEmptyShape(t *testing.T) {
	fs := fsutil.NewMemoryFileSystem()
	err := CompositePNG(fs, solid.New(), "out/sheet.png", smallOptions())
	testutil.AssertError(t, err)
}
