package render

import (
	"fmt"

	sdfrender "github.com/deadsy/sdfx/render"

	"github.com/efficio-cad/efficio/solid"
)

// DefaultMeshCells is the marching cubes resolution along the longest
// axis of the model. 300 gives watertight prints for parts in the tens
// of millimeters.
const DefaultMeshCells = 300

// WriteSTL meshes the shape and writes a binary STL file. The kernel
// streams triangles straight to disk, so this takes a filesystem path
// rather than a writer. Cells <= 0 selects DefaultMeshCells.
func WriteSTL(shape *solid.Shape, path string, cells int) error {
	s3, err := shape.Solid()
	if err != nil {
		return fmt.Errorf("mesh: %w", err)
	}
	if cells <= 0 {
		cells = DefaultMeshCells
	}
	sdfrender.ToSTL(s3, path, sdfrender.NewMarchingCubesOctree(cells))
	return nil
}
