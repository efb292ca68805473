package vox

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Scene-graph chunk decoding (nTRN, nGRP, nSHP, LAYR). The binary layout of
// these chunks is documented by third-party writers rather than the format
// owner, so decoding is best-effort: the core reader skips them and voxel
// data never depends on them. Callers that want scene metadata decode the
// chunks they collected themselves.

// Attributes is the string key/value dictionary scene-graph nodes carry.
type Attributes map[string]string

// ReadAttributes decodes an attribute dictionary: a u32 pair count followed
// by length-prefixed UTF-8 key and value strings.
func ReadAttributes(r io.Reader) (Attributes, error) {
	n, err := readU32(r)
	if err != nil {
		return nil, err
	}
	attrs := make(Attributes, n)
	for i := uint32(0); i < n; i++ {
		key, err := readString(r)
		if err != nil {
			return nil, err
		}
		value, err := readString(r)
		if err != nil {
			return nil, err
		}
		attrs[key] = value
	}
	return attrs, nil
}

func readString(r io.Reader) (string, error) {
	n, err := readU32(r)
	if err != nil {
		return "", err
	}
	buf, err := readBytes(r, int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", fmt.Errorf("%w: %q", ErrInvalidString, buf)
	}
	return string(buf), nil
}

// Transform is a scene-graph transform node (nTRN).
type Transform struct {
	NodeID      uint32
	Attributes  Attributes
	ChildNodeID uint32
	ReservedID  *uint32
	LayerID     *uint32
	Frames      []Attributes
}

// ReadTransform decodes an nTRN chunk payload.
func ReadTransform(r io.Reader) (Transform, error) {
	var t Transform
	var err error
	if t.NodeID, err = readU32(r); err != nil {
		return Transform{}, err
	}
	if t.Attributes, err = ReadAttributes(r); err != nil {
		return Transform{}, err
	}
	if t.ChildNodeID, err = readU32(r); err != nil {
		return Transform{}, err
	}
	if t.ReservedID, err = readOptID(r); err != nil {
		return Transform{}, err
	}
	if t.LayerID, err = readOptID(r); err != nil {
		return Transform{}, err
	}
	numFrames, err := readU32(r)
	if err != nil {
		return Transform{}, err
	}
	for i := uint32(0); i < numFrames; i++ {
		frame, err := ReadAttributes(r)
		if err != nil {
			return Transform{}, err
		}
		t.Frames = append(t.Frames, frame)
	}
	return t, nil
}

// Translation returns the "_t" translation vector of the given frame, if
// present and well-formed.
func (t Transform) Translation(frame int) (x, y, z int32, ok bool) {
	if frame < 0 || frame >= len(t.Frames) {
		return 0, 0, 0, false
	}
	parts := strings.Fields(t.Frames[frame]["_t"])
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	var out [3]int32
	for i, p := range parts {
		v, err := strconv.ParseInt(p, 10, 32)
		if err != nil {
			return 0, 0, 0, false
		}
		out[i] = int32(v)
	}
	return out[0], out[1], out[2], true
}

// Group is a scene-graph group node (nGRP).
type Group struct {
	NodeID     uint32
	Attributes Attributes
	Children   []uint32
}

// ReadGroup decodes an nGRP chunk payload.
func ReadGroup(r io.Reader) (Group, error) {
	var g Group
	var err error
	if g.NodeID, err = readU32(r); err != nil {
		return Group{}, err
	}
	if g.Attributes, err = ReadAttributes(r); err != nil {
		return Group{}, err
	}
	n, err := readU32(r)
	if err != nil {
		return Group{}, err
	}
	g.Children = make([]uint32, 0, n)
	for i := uint32(0); i < n; i++ {
		id, err := readU32(r)
		if err != nil {
			return Group{}, err
		}
		g.Children = append(g.Children, id)
	}
	return g, nil
}

// Shape is a scene-graph shape node (nSHP) referencing one or more models.
type Shape struct {
	NodeID     uint32
	Attributes Attributes
	Models     []ShapeModel
}

// ShapeModel is one model reference inside a shape node.
type ShapeModel struct {
	ModelID    uint32
	Attributes Attributes
}

// ReadShape decodes an nSHP chunk payload.
func ReadShape(r io.Reader) (Shape, error) {
	var s Shape
	var err error
	if s.NodeID, err = readU32(r); err != nil {
		return Shape{}, err
	}
	if s.Attributes, err = ReadAttributes(r); err != nil {
		return Shape{}, err
	}
	n, err := readU32(r)
	if err != nil {
		return Shape{}, err
	}
	for i := uint32(0); i < n; i++ {
		var m ShapeModel
		if m.ModelID, err = readU32(r); err != nil {
			return Shape{}, err
		}
		if m.Attributes, err = ReadAttributes(r); err != nil {
			return Shape{}, err
		}
		s.Models = append(s.Models, m)
	}
	return s, nil
}

// Layer is a scene-graph layer node (LAYR).
type Layer struct {
	NodeID     uint32
	Attributes Attributes
	ReservedID *uint32
}

// ReadLayer decodes a LAYR chunk payload.
func ReadLayer(r io.Reader) (Layer, error) {
	var l Layer
	var err error
	if l.NodeID, err = readU32(r); err != nil {
		return Layer{}, err
	}
	if l.Attributes, err = ReadAttributes(r); err != nil {
		return Layer{}, err
	}
	if l.ReservedID, err = readOptID(r); err != nil {
		return Layer{}, err
	}
	return l, nil
}

// readOptID reads a signed 32-bit node reference where negative values mean
// "none".
func readOptID(r io.Reader) (*uint32, error) {
	raw, err := readU32(r)
	if err != nil {
		return nil, err
	}
	if int32(raw) < 0 {
		return nil, nil
	}
	id := raw
	return &id, nil
}
