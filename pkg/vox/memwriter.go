package vox

import (
	"fmt"
	"io"
)

// memWriter is a growable in-memory io.WriteSeeker. Seeking past the end
// and writing fills the gap with zeros.
type memWriter struct {
	buf []byte
	off int64
}

func (m *memWriter) Write(p []byte) (int, error) {
	if need := m.off + int64(len(p)); need > int64(len(m.buf)) {
		m.buf = append(m.buf, make([]byte, need-int64(len(m.buf)))...)
	}
	n := copy(m.buf[m.off:], p)
	m.off += int64(n)
	return n, nil
}

func (m *memWriter) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = m.off + offset
	case io.SeekEnd:
		target = int64(len(m.buf)) + offset
	default:
		return 0, fmt.Errorf("%w: whence %d", ErrInvalidSeek, whence)
	}
	if target < 0 {
		return 0, fmt.Errorf("%w: position %d", ErrInvalidSeek, target)
	}
	m.off = target
	return target, nil
}

// Bytes returns the written buffer.
func (m *memWriter) Bytes() []byte { return m.buf }
