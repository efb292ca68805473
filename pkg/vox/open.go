package vox

import (
	"os"

	"golang.org/x/sys/unix"
)

// Open decodes the VOX file at path. It maps the file read-only where mmap
// is available and falls back to reading it into memory otherwise. The
// mapping is released before Open returns; the decoded data does not alias
// the file.
func Open(path string) (*VoxData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size64 := stat.Size()
	if size64 <= 0 || size64 > int64(int(^uint(0)>>1)) {
		return FromReader(f)
	}

	data, err := unix.Mmap(
		int(f.Fd()),
		0,
		int(size64),
		unix.PROT_READ,
		unix.MAP_SHARED,
	)
	if err != nil {
		return FromReader(f)
	}
	defer func() { _ = unix.Munmap(data) }()

	return FromSlice(data)
}
