package vox

import (
	"fmt"
	"io"
)

// Size is a model's extent in voxels along each axis.
type Size struct {
	X, Y, Z uint32
}

func (s Size) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s.X, s.Y, s.Z)
}

func readSize(r io.Reader) (Size, error) {
	var s Size
	var err error
	if s.X, err = readU32(r); err != nil {
		return Size{}, err
	}
	if s.Y, err = readU32(r); err != nil {
		return Size{}, err
	}
	if s.Z, err = readU32(r); err != nil {
		return Size{}, err
	}
	return s, nil
}

func (s Size) write(w io.Writer) error {
	if err := writeU32(w, s.X); err != nil {
		return err
	}
	if err := writeU32(w, s.Y); err != nil {
		return err
	}
	return writeU32(w, s.Z)
}

// Point is a voxel coordinate local to one model.
type Point struct {
	X, Y, Z int8
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}

// ColorIndex is a palette slot reference stored with each voxel. Slot 0 is
// transparent by convention and never stored in the palette chunk on disk.
type ColorIndex uint8

// DefaultColorIndex is the index MagicaVoxel selects by default; with the
// default palette it is a light blue.
const DefaultColorIndex ColorIndex = 79

// Voxel is one occupied cell: a point and its palette color index.
type Voxel struct {
	Point      Point
	ColorIndex ColorIndex
}

func readVoxel(r io.Reader) (Voxel, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return Voxel{}, err
	}
	return Voxel{
		Point:      Point{X: int8(b[0]), Y: int8(b[1]), Z: int8(b[2])},
		ColorIndex: ColorIndex(b[3]),
	}, nil
}

func (v Voxel) write(w io.Writer) error {
	_, err := w.Write([]byte{byte(v.Point.X), byte(v.Point.Y), byte(v.Point.Z), byte(v.ColorIndex)})
	return err
}

// Color is an 8-bit RGBA color. The on-disk channel order is read literally
// as R, G, B, A.
type Color struct {
	R, G, B, A uint8
}

func readColor(r io.Reader) (Color, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return Color{}, err
	}
	return Color{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
}

func (c Color) write(w io.Writer) error {
	_, err := w.Write([]byte{c.R, c.G, c.B, c.A})
	return err
}

// Model is one voxel grid: its size and voxels in file order. Voxels are not
// spatially sorted; VoxelAt performs a linear search and is meant for tests
// and small models.
type Model struct {
	Size   Size
	Voxels []Voxel
}

// VoxelAt returns the first voxel at the given point, or false if the cell
// is empty.
func (m *Model) VoxelAt(p Point) (Voxel, bool) {
	for _, v := range m.Voxels {
		if v.Point == p {
			return v, true
		}
	}
	return Voxel{}, false
}
