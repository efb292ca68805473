package vox

import (
	"fmt"
	"io"
	"math"
)

// Chunk is the metadata needed to locate one chunk in a stream: where its
// header starts, its tag and its two declared lengths. It never holds
// payload bytes; content is read on demand through Content or ContentBytes.
type Chunk struct {
	// Offset is the absolute position of the chunk header in the stream.
	Offset uint32

	// ID is the chunk's 4-byte tag.
	ID ChunkID

	// ContentLen is the declared length of the flat content region.
	ContentLen uint32

	// ChildrenLen is the declared length of the nested children region.
	ChildrenLen uint32
}

// ReadChunk reads a chunk header at the stream's current position.
func ReadChunk(r io.ReadSeeker) (Chunk, error) {
	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return Chunk{}, err
	}
	if pos < 0 || pos > math.MaxUint32 {
		return Chunk{}, fmt.Errorf("%w: chunk header at %d", ErrOffsetOverflow, pos)
	}

	id, err := readChunkID(r)
	if err != nil {
		return Chunk{}, err
	}
	contentLen, err := readU32(r)
	if err != nil {
		return Chunk{}, fmt.Errorf("vox: read content length of %s at %d: %w", id, pos, err)
	}
	childrenLen, err := readU32(r)
	if err != nil {
		return Chunk{}, fmt.Errorf("vox: read children length of %s at %d: %w", id, pos, err)
	}

	c := Chunk{Offset: uint32(pos), ID: id, ContentLen: contentLen, ChildrenLen: childrenLen}
	end := uint64(c.Offset) + uint64(c.total())
	if end > math.MaxUint32 {
		return Chunk{}, fmt.Errorf("%w: chunk %s at %d ends at %d", ErrOffsetOverflow, id, pos, end)
	}
	return c, nil
}

// readChunkAt seeks to offset, reads a chunk header there, and advances
// offset past the whole chunk.
func readChunkAt(r io.ReadSeeker, offset *uint32) (Chunk, error) {
	if _, err := r.Seek(int64(*offset), io.SeekStart); err != nil {
		return Chunk{}, err
	}
	c, err := ReadChunk(r)
	if err != nil {
		return Chunk{}, err
	}
	*offset += c.TotalLen()
	return c, nil
}

// ContentOffset returns the absolute position of the content region.
func (c Chunk) ContentOffset() uint32 {
	return c.Offset + chunkHeaderSize
}

// ChildrenOffset returns the absolute position of the children region.
func (c Chunk) ChildrenOffset() uint32 {
	return c.Offset + chunkHeaderSize + c.ContentLen
}

// total computes the chunk's full length in 64-bit space; ReadChunk rejects
// chunks for which this does not fit uint32, so TotalLen is safe afterwards.
func (c Chunk) total() uint64 {
	return uint64(c.ContentLen) + uint64(c.ChildrenLen) + chunkHeaderSize
}

// TotalLen returns the chunk's full length: header, content and children.
func (c Chunk) TotalLen() uint32 {
	return c.ContentLen + c.ChildrenLen + chunkHeaderSize
}

// IsEmpty reports whether the chunk has neither content nor children.
func (c Chunk) IsEmpty() bool {
	return c.ContentLen == 0 && c.ChildrenLen == 0
}

// Content opens a bounded read view over the chunk's content region.
func (c Chunk) Content(r io.ReadSeeker) (*ContentReader, error) {
	return newContentReader(r, c.ContentOffset(), c.ContentLen)
}

// ContentBytes reads the whole content region into memory.
func (c Chunk) ContentBytes(r io.ReadSeeker) ([]byte, error) {
	cr, err := c.Content(r)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, c.ContentLen)
	if _, err := io.ReadFull(cr, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Children returns a lazy scanner over the chunk's child chunks. Each call
// returns a fresh scanner starting at the first child.
func (c Chunk) Children(r io.ReadSeeker) *ChildScanner {
	return &ChildScanner{
		r:   r,
		off: c.ChildrenOffset(),
		end: c.ChildrenOffset() + c.ChildrenLen,
	}
}

// ChildScanner iterates over sibling chunks inside a children region,
// reading one header per step:
//
//	for cs := chunk.Children(r); cs.Next(); {
//		child := cs.Chunk()
//		...
//	}
//	if err := cs.Err(); err != nil { ... }
//
// A child whose declared lengths run past the region is an error, not a
// silent truncation.
type ChildScanner struct {
	r   io.ReadSeeker
	off uint32
	end uint32
	cur Chunk
	err error
}

// Next advances to the next child chunk. It returns false at the end of the
// region or on error; use Err to tell the two apart.
func (s *ChildScanner) Next() bool {
	if s.err != nil || s.off >= s.end {
		return false
	}
	start := s.off
	c, err := readChunkAt(s.r, &s.off)
	if err != nil {
		s.err = err
		return false
	}
	if s.off > s.end {
		s.err = fmt.Errorf("%w: chunk %s at %d ends at %d, region ends at %d",
			ErrChunkBounds, c.ID, start, s.off, s.end)
		return false
	}
	s.cur = c
	return true
}

// Chunk returns the child read by the last successful Next.
func (s *ChildScanner) Chunk() Chunk {
	return s.cur
}

// Err returns the first error encountered while scanning.
func (s *ChildScanner) Err() error {
	return s.err
}
