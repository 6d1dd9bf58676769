package part

import (
	"fmt"

	"github.com/efficio-cad/efficio/measure"
	"github.com/efficio-cad/efficio/solid"
)

// M3 fastener dimensions in millimeters. Clearance is added to radial
// dimensions when a part is meant to slide over or around the fastener.
const (
	M3Clearance      = 0.20
	M3ShaftRadius    = 3.0 / 2.0
	M3HeadHeight     = 3.0
	M3HeadRadius     = 5.5 / 2
	M3NutWidthFlats  = 5.5
	M3NutWidthPoints = 6.35
	M3NutHeight      = 2.4
	M3ChannelPadding = 0.5
)

// Bolt is an M3 socket-head bolt, head on the z=0 plane and shaft
// pointing up. Clearance grows the radial dimensions for slip fits.
type Bolt struct {
	Length    Measure
	Clearance bool
}

func (b Bolt) clearance() float64 {
	if b.Clearance {
		return M3Clearance
	}
	return 0
}

// Shape builds the bolt: head cylinder with the shaft stacked on top.
func (b Bolt) Shape() (*solid.Shape, error) {
	c := b.clearance()
	head := solid.New().Circle(M3HeadRadius + c).Extrude(M3HeadHeight)
	shaft := solid.New().
		Circle(M3ShaftRadius + c).
		Extrude(value(b.Length)).
		Translate(0, 0, M3HeadHeight)
	return finish(head.Union(shaft))
}

// HexNut is an M3 hex nut with its base on the z=0 plane.
type HexNut struct {
	Clearance bool
}

// Shape builds the nut as a hexagonal prism. The polygon diameter is
// the width across points.
func (n HexNut) Shape() (*solid.Shape, error) {
	c := 0.0
	if n.Clearance {
		c = M3Clearance
	}
	return finish(solid.New().Polygon(6, M3NutWidthPoints+c).Extrude(M3NutHeight))
}

// BoltAssembly is a bolt with its nut threaded flush to the shaft tip.
type BoltAssembly struct {
	Length    Measure
	Clearance bool
}

// Shape builds the assembly. The nut's top face ends flush with the
// shaft so the assembly height is head plus shaft.
func (a BoltAssembly) Shape() (*solid.Shape, error) {
	bolt, err := Bolt{Length: a.Length, Clearance: a.Clearance}.Shape()
	if err != nil {
		return nil, err
	}
	nut, err := HexNut{Clearance: a.Clearance}.Shape()
	if err != nil {
		return nil, err
	}
	nut.Translate(0, 0, M3HeadHeight+value(a.Length)-M3NutHeight)
	return finish(bolt.Union(nut))
}

// BoltChannel is a cylindrical column with a bolt assembly cavity cut
// through it. Length is the total column height; the embedded bolt is
// shortened by the head height so the column ends flush with the
// assembly.
type BoltChannel struct {
	Length Measure
}

// CutShape returns the solid column to carve out of a host before the
// channel is placed.
func (ch BoltChannel) CutShape() (*solid.Shape, error) {
	_, column, err := ch.build()
	if err != nil {
		return nil, err
	}
	return column, nil
}

// Shape returns the column with the assembly cavity removed.
func (ch BoltChannel) Shape() (*solid.Shape, error) {
	assembly, column, err := ch.build()
	if err != nil {
		return nil, err
	}
	return finish(column.Cut(assembly))
}

func (ch BoltChannel) build() (assembly, column *solid.Shape, err error) {
	total := value(ch.Length)
	if total <= M3HeadHeight {
		return nil, nil, fmt.Errorf("channel length %vmm must exceed the %vmm bolt head", total, M3HeadHeight)
	}

	boltLength := measure.Millimeter(total - M3HeadHeight)
	assembly, err = BoltAssembly{Length: boltLength, Clearance: true}.Shape()
	if err != nil {
		return nil, nil, err
	}

	bounds, ok := assembly.Bounds()
	if !ok {
		return nil, nil, fmt.Errorf("bolt assembly has no bounds")
	}
	size := bounds.Size()
	diameter := size.X
	if size.Y > diameter {
		diameter = size.Y
	}

	column = solid.New().Cylinder(diameter/2+M3ChannelPadding, size.Z)
	if err := column.Err(); err != nil {
		return nil, nil, err
	}
	return assembly, column, nil
}
