package vox

import (
	"bytes"
	"encoding/binary"
)

func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

// Test fixtures are assembled by hand so the reader tests do not depend on
// the writer being correct.

func u32le(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}

func rawChunk(tag string, content []byte, children ...[]byte) []byte {
	var childBytes []byte
	for _, c := range children {
		childBytes = append(childBytes, c...)
	}
	out := append([]byte(tag), u32le(uint32(len(content)))...)
	out = append(out, u32le(uint32(len(childBytes)))...)
	out = append(out, content...)
	return append(out, childBytes...)
}

func rawFile(version uint32, children ...[]byte) []byte {
	out := append([]byte(Magic), u32le(version)...)
	return append(out, rawChunk("MAIN", nil, children...)...)
}

func rawSizeChunk(x, y, z uint32) []byte {
	content := append(u32le(x), u32le(y)...)
	return rawChunk("SIZE", append(content, u32le(z)...))
}

func rawXYZIChunk(voxels ...Voxel) []byte {
	content := u32le(uint32(len(voxels)))
	for _, v := range voxels {
		content = append(content, byte(v.Point.X), byte(v.Point.Y), byte(v.Point.Z), byte(v.ColorIndex))
	}
	return rawChunk("XYZI", content)
}

func rawRGBAChunk(p Palette) []byte {
	content := make([]byte, 0, 255*4)
	for _, c := range p[1:] {
		content = append(content, c.R, c.G, c.B, c.A)
	}
	return rawChunk("RGBA", content)
}
