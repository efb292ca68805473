package vox

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMagic means the file does not start with the "VOX " signature.
	ErrInvalidMagic = errors.New("vox: invalid file magic")

	// ErrUnsupportedVersion means the file version is not DefaultVersion and
	// the reader was not configured to accept it.
	ErrUnsupportedVersion = errors.New("vox: unsupported file version")

	// ErrExpectedMainChunk means the root chunk's tag was not MAIN.
	ErrExpectedMainChunk = errors.New("vox: expected MAIN chunk")

	// ErrDuplicateChunk means a chunk that may appear at most once appeared
	// again.
	ErrDuplicateChunk = errors.New("vox: duplicate chunk")

	// ErrChunkMismatch means the number of SIZE chunks does not equal the
	// number of XYZI chunks.
	ErrChunkMismatch = errors.New("vox: SIZE/XYZI chunk count mismatch")

	// ErrChunkBounds means a chunk's declared lengths run past the region
	// that contains it.
	ErrChunkBounds = errors.New("vox: chunk exceeds enclosing region")

	// ErrInvalidSeek means a seek on a bounded view resolved outside its
	// window or overflowed.
	ErrInvalidSeek = errors.New("vox: invalid seek")

	// ErrOffsetOverflow means a stream position or declared length does not
	// fit the 32-bit offsets the format uses.
	ErrOffsetOverflow = errors.New("vox: offset overflow")

	// ErrInvalidMaterial means a material record could not be decoded.
	ErrInvalidMaterial = errors.New("vox: invalid material record")

	// ErrInvalidString means an attribute string was not valid UTF-8.
	ErrInvalidString = errors.New("vox: invalid UTF-8 string")
)

// ChunkMismatchError reports SIZE/XYZI pairing failure. It carries both
// chunk lists so the caller can diagnose the file without re-reading it.
type ChunkMismatchError struct {
	SizeChunks []Chunk
	XYZIChunks []Chunk
}

func (e *ChunkMismatchError) Error() string {
	return fmt.Sprintf("%v: found %d SIZE chunks, %d XYZI chunks",
		ErrChunkMismatch, len(e.SizeChunks), len(e.XYZIChunks))
}

func (e *ChunkMismatchError) Unwrap() error { return ErrChunkMismatch }

// DuplicateChunkError reports a second occurrence of a chunk that may appear
// at most once, carrying both offending chunks.
type DuplicateChunkError struct {
	First  Chunk
	Second Chunk
}

func (e *DuplicateChunkError) Error() string {
	return fmt.Sprintf("%v: %s at offsets %d and %d",
		ErrDuplicateChunk, e.First.ID, e.First.Offset, e.Second.Offset)
}

func (e *DuplicateChunkError) Unwrap() error { return ErrDuplicateChunk }
