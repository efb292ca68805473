package vox

import (
	"fmt"
	"io"
	"math"
)

// seekTarget resolves a seek in window coordinates against a [start,end)
// byte window and returns the new absolute offset. Targets that overflow or
// land before the window start fail with ErrInvalidSeek.
func seekTarget(current, start, end uint32, offset int64, whence int) (uint32, error) {
	var base uint32
	switch whence {
	case io.SeekStart:
		base = start
	case io.SeekCurrent:
		base = current
	case io.SeekEnd:
		base = end
	default:
		return 0, fmt.Errorf("%w: unknown whence %d", ErrInvalidSeek, whence)
	}

	target := int64(base) + offset
	if target < int64(start) || target > math.MaxUint32 {
		return 0, fmt.Errorf("%w: offset %d whence %d resolves to %d outside window [%d,%d)",
			ErrInvalidSeek, offset, whence, target, start, end)
	}
	return uint32(target), nil
}

// ContentReader is a read view restricted to the byte window [start,end) of
// an underlying stream, usually one chunk's content region. Reads are
// clamped to the window and return io.EOF at its end; seeks are resolved in
// window coordinates.
//
// A ContentReader borrows its underlying stream: the stream's position must
// not be moved by anyone else until the view is no longer used.
type ContentReader struct {
	r     io.ReadSeeker
	start uint32
	off   uint32
	end   uint32
}

func newContentReader(r io.ReadSeeker, start, length uint32) (*ContentReader, error) {
	end := uint64(start) + uint64(length)
	if end > math.MaxUint32 {
		return nil, fmt.Errorf("%w: content region [%d,%d)", ErrOffsetOverflow, start, end)
	}
	if _, err := r.Seek(int64(start), io.SeekStart); err != nil {
		return nil, err
	}
	return &ContentReader{r: r, start: start, off: start, end: uint32(end)}, nil
}

// Len returns the number of unread bytes left in the window.
func (cr *ContentReader) Len() uint32 {
	if cr.off >= cr.end {
		return 0
	}
	return cr.end - cr.off
}

func (cr *ContentReader) Read(p []byte) (int, error) {
	if cr.off >= cr.end {
		return 0, io.EOF
	}
	if max := uint64(cr.end - cr.off); uint64(len(p)) > max {
		p = p[:max]
	}
	n, err := cr.r.Read(p)
	cr.off += uint32(n)
	return n, err
}

// Seek implements io.Seeker in the window's own coordinate space: position 0
// is the window start and io.SeekEnd is relative to the window end.
func (cr *ContentReader) Seek(offset int64, whence int) (int64, error) {
	target, err := seekTarget(cr.off, cr.start, cr.end, offset, whence)
	if err != nil {
		return 0, err
	}
	if target != cr.off {
		if _, err := cr.r.Seek(int64(target), io.SeekStart); err != nil {
			return 0, err
		}
		cr.off = target
	}
	return int64(cr.off - cr.start), nil
}

// ContentWriter is the write counterpart of ContentReader. Its window end is
// not declared up front: every write advances a high-water mark and Len
// reports the furthest position ever written, which becomes the chunk's
// content length when the header is patched.
type ContentWriter struct {
	w     io.WriteSeeker
	start uint32
	off   uint32
	end   uint32
}

func newContentWriter(w io.WriteSeeker) (*ContentWriter, error) {
	pos, err := w.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	if pos < 0 || pos > math.MaxUint32 {
		return nil, fmt.Errorf("%w: stream position %d", ErrOffsetOverflow, pos)
	}
	off := uint32(pos)
	return &ContentWriter{w: w, start: off, off: off, end: off}, nil
}

// Len returns the discovered content length: the high-water mark of all
// writes relative to the window start.
func (cw *ContentWriter) Len() uint32 {
	return cw.end - cw.start
}

func (cw *ContentWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	if uint64(cw.off)+uint64(n) > math.MaxUint32 {
		return n, fmt.Errorf("%w: write past 32-bit range at %d", ErrOffsetOverflow, cw.off)
	}
	cw.off += uint32(n)
	if cw.off > cw.end {
		cw.end = cw.off
	}
	return n, err
}

// Seek implements io.Seeker in window coordinates. Seeking does not move the
// high-water mark; overwriting earlier bytes leaves Len unchanged.
func (cw *ContentWriter) Seek(offset int64, whence int) (int64, error) {
	target, err := seekTarget(cw.off, cw.start, cw.end, offset, whence)
	if err != nil {
		return 0, err
	}
	if target != cw.off {
		if _, err := cw.w.Seek(int64(target), io.SeekStart); err != nil {
			return 0, err
		}
		cw.off = target
	}
	return int64(cw.off - cw.start), nil
}
