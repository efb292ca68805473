package vox

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContentReaderWindow(t *testing.T) {
	t.Parallel()
	requireT := require.New(t)

	backing := bytes.NewReader([]byte("xxxxhello worldyyyy"))
	cr, err := newContentReader(backing, 4, 11)
	requireT.NoError(err)
	requireT.Equal(uint32(11), cr.Len())

	buf := make([]byte, 5)
	n, err := cr.Read(buf)
	requireT.NoError(err)
	requireT.Equal(5, n)
	requireT.Equal("hello", string(buf))
	requireT.Equal(uint32(6), cr.Len())

	// Reads are clamped to the window end, never spilling into the
	// trailing bytes.
	big := make([]byte, 64)
	n, err = cr.Read(big)
	requireT.NoError(err)
	requireT.Equal(6, n)
	requireT.Equal(" world", string(big[:n]))

	_, err = cr.Read(buf)
	requireT.ErrorIs(err, io.EOF)
}

func TestContentReaderSeekWindowCoordinates(t *testing.T) {
	t.Parallel()
	requireT := require.New(t)

	backing := bytes.NewReader([]byte("....abcdef...."))
	cr, err := newContentReader(backing, 4, 6)
	requireT.NoError(err)

	pos, err := cr.Seek(2, io.SeekStart)
	requireT.NoError(err)
	requireT.Equal(int64(2), pos)

	buf := make([]byte, 2)
	_, err = io.ReadFull(cr, buf)
	requireT.NoError(err)
	requireT.Equal("cd", string(buf))

	pos, err = cr.Seek(-1, io.SeekEnd)
	requireT.NoError(err)
	requireT.Equal(int64(5), pos)

	_, err = io.ReadFull(cr, buf[:1])
	requireT.NoError(err)
	requireT.Equal("f", string(buf[:1]))

	pos, err = cr.Seek(-1, io.SeekCurrent)
	requireT.NoError(err)
	requireT.Equal(int64(5), pos)
}

func TestContentReaderSeekBeforeStart(t *testing.T) {
	t.Parallel()
	requireT := require.New(t)

	backing := bytes.NewReader([]byte("....abcdef"))
	cr, err := newContentReader(backing, 4, 6)
	requireT.NoError(err)

	_, err = cr.Seek(-1, io.SeekStart)
	requireT.ErrorIs(err, ErrInvalidSeek)

	_, err = cr.Seek(0, 42)
	requireT.ErrorIs(err, ErrInvalidSeek)
}

func TestContentWriterHighWaterMark(t *testing.T) {
	t.Parallel()
	requireT := require.New(t)

	var buf memWriter
	_, err := buf.Seek(3, io.SeekStart)
	requireT.NoError(err)

	cw, err := newContentWriter(&buf)
	requireT.NoError(err)
	requireT.Equal(uint32(0), cw.Len())

	_, err = cw.Write([]byte("hello world"))
	requireT.NoError(err)
	requireT.Equal(uint32(11), cw.Len())

	// Seeking back and overwriting must not shrink the discovered length.
	_, err = cw.Seek(0, io.SeekStart)
	requireT.NoError(err)
	_, err = cw.Write([]byte("HELLO"))
	requireT.NoError(err)
	requireT.Equal(uint32(11), cw.Len())
	requireT.Equal([]byte("HELLO world"), buf.Bytes()[3:])

	_, err = cw.Seek(-1, io.SeekStart)
	requireT.ErrorIs(err, ErrInvalidSeek)
}

func TestMemWriterZeroFillsGaps(t *testing.T) {
	t.Parallel()
	requireT := require.New(t)

	var buf memWriter
	_, err := buf.Write([]byte("ab"))
	requireT.NoError(err)
	_, err = buf.Seek(5, io.SeekStart)
	requireT.NoError(err)
	_, err = buf.Write([]byte("cd"))
	requireT.NoError(err)
	requireT.Equal([]byte{'a', 'b', 0, 0, 0, 'c', 'd'}, buf.Bytes())
}
