// Package vox reads and writes MagicaVoxel VOX files.
//
// VOX is a RIFF-like container: a tree of length-prefixed chunks, each
// carrying a 4-byte tag, a flat content region and a children region of
// nested chunks. The package keeps copying to a minimum: chunk payloads are
// read lazily through bounded views over the underlying stream, and decoded
// voxel data is pushed into a caller-supplied ModelBuilder instead of a
// fixed intermediate structure. VoxData is the reference builder for callers
// that just want the file in memory.
package vox

// Magic is the 4-byte signature every VOX file starts with.
const Magic = "VOX "

// chunkHeaderSize is the fixed size of a chunk header: 4-byte tag plus two
// little-endian u32 length fields (content, children).
const chunkHeaderSize = 12

// Version is the file format version stored after the magic signature.
type Version uint32

// DefaultVersion is the format version written by MagicaVoxel releases this
// package understands.
const DefaultVersion Version = 150

// Supported reports whether the version is one this package fully
// understands. Readers may still accept other versions with
// ReadOptions.AcceptAnyVersion.
func (v Version) Supported() bool {
	return v == DefaultVersion
}
