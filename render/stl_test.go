package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/efficio-cad/efficio/internal/testutil"
	"github.com/efficio-cad/efficio/solid"
)

func TestWriteSTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.stl")
	shape := solid.New().Box(5, 5, 5)

	err := WriteSTL(shape, path, 20)
	testutil.AssertNoError(t, err)

	info, err := os.Stat(path)
	testutil.AssertNoError(t, err)

	// Binary STL: 80 byte header, 4 byte count, 50 bytes per triangle.
	size := info.Size()
	if size < 84+50 {
		t.Fatalf("STL file is %d bytes, too small to hold any triangles", size)
	}
	if (size-84)%50 != 0 {
		t.Errorf("STL payload %d bytes is not a whole number of triangles", size-84)
	}
}

func TestWriteSTLPropagatesShapeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.stl")
	shape := solid.New().Extrude(5) // no sketch to extrude

	err := WriteSTL(shape, path, 20)
	testutil.AssertError(t, err)
	if _, statErr := os.Stat(path); statErr == nil {
		t.Errorf("file was created despite the shape error")
	}
}
