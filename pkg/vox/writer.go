package vox

import (
	"fmt"
	"io"
	"maps"
	"math"
	"os"
	"slices"
)

// ChunkWriter assembles one chunk with deferred length patching: the tag is
// written eagerly, 8 bytes are reserved for the two length fields, the
// caller streams content and/or children, and the reservation is patched
// once the real lengths are known.
//
// Content and children are mutually exclusive phases per chunk, matching
// the reader's content/children split: mixing them is a programming error
// and panics.
type ChunkWriter struct {
	w  io.WriteSeeker
	id ChunkID

	// offset is the absolute position of the chunk header (the tag byte).
	offset int64

	contentLen  uint32
	childrenLen uint32
	hasContent  bool
	hasChildren bool
}

func newChunkWriter(w io.WriteSeeker, id ChunkID) (*ChunkWriter, error) {
	if err := id.write(w); err != nil {
		return nil, err
	}
	// Reserve the two length fields; they are patched in patchHeader.
	pos, err := w.Seek(8, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	return &ChunkWriter{w: w, id: id, offset: pos - chunkHeaderSize}, nil
}

// ID returns the chunk's tag.
func (cw *ChunkWriter) ID() ChunkID { return cw.id }

// ContentLen returns the number of content bytes written so far.
func (cw *ChunkWriter) ContentLen() uint32 { return cw.contentLen }

// ChildrenLen returns the total bytes written for child chunks so far.
func (cw *ChunkWriter) ChildrenLen() uint32 { return cw.childrenLen }

// Content invokes f with a bounded writer for the chunk's content region.
// The bytes f writes (by high-water mark) become the chunk's content
// length. Content panics if a child has already been written.
func (cw *ChunkWriter) Content(f func(w *ContentWriter) error) error {
	if cw.hasChildren {
		panic("vox: chunk content written after children")
	}
	cw.hasContent = true

	contentWriter, err := newContentWriter(cw.w)
	if err != nil {
		return err
	}
	if err := f(contentWriter); err != nil {
		return err
	}
	if _, err := contentWriter.Seek(0, io.SeekEnd); err != nil {
		return err
	}
	cw.contentLen = contentWriter.Len()
	return nil
}

// WriteContent writes the whole content region from a byte slice.
func (cw *ChunkWriter) WriteContent(data []byte) error {
	return cw.Content(func(w *ContentWriter) error {
		_, err := w.Write(data)
		return err
	})
}

// Child writes one nested chunk: it runs f with a ChunkWriter scoped to the
// child, patches the child's header, and adds the child's total length to
// this chunk's children length. Child panics if content has already been
// written.
func (cw *ChunkWriter) Child(id ChunkID, f func(child *ChunkWriter) error) error {
	if cw.hasContent {
		panic("vox: chunk children written after content")
	}
	cw.hasChildren = true

	child, err := newChunkWriter(cw.w, id)
	if err != nil {
		return err
	}
	if err := f(child); err != nil {
		return err
	}
	if err := child.patchHeader(); err != nil {
		return err
	}

	total := child.total()
	if sum := uint64(cw.childrenLen) + total; sum > math.MaxUint32 {
		return fmt.Errorf("%w: children length %d", ErrOffsetOverflow, sum)
	}
	cw.childrenLen += uint32(total)
	return nil
}

// ChildContent writes one nested chunk that has only content, the common
// case for leaf chunks like SIZE and XYZI.
func (cw *ChunkWriter) ChildContent(id ChunkID, f func(w *ContentWriter) error) error {
	return cw.Child(id, func(child *ChunkWriter) error {
		return child.Content(f)
	})
}

func (cw *ChunkWriter) total() uint64 {
	return uint64(cw.contentLen) + uint64(cw.childrenLen) + chunkHeaderSize
}

// patchHeader seeks back to the reserved length fields, writes the now-known
// content and children lengths, and restores the write position.
func (cw *ChunkWriter) patchHeader() error {
	if cw.total() > math.MaxUint32 {
		return fmt.Errorf("%w: chunk %s total length %d", ErrOffsetOverflow, cw.id, cw.total())
	}

	pos, err := cw.w.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	if _, err := cw.w.Seek(cw.offset+4, io.SeekStart); err != nil {
		return err
	}
	if err := writeU32(cw.w, cw.contentLen); err != nil {
		return err
	}
	if err := writeU32(cw.w, cw.childrenLen); err != nil {
		return err
	}
	_, err = cw.w.Seek(pos, io.SeekStart)
	return err
}

// WriteChunk writes one chunk: it creates a ChunkWriter for id, runs f to
// fill in content or children, and patches the header afterwards.
func WriteChunk(w io.WriteSeeker, id ChunkID, f func(cw *ChunkWriter) error) error {
	cw, err := newChunkWriter(w, id)
	if err != nil {
		return err
	}
	if err := f(cw); err != nil {
		return err
	}
	return cw.patchHeader()
}

// WriteMainChunk writes the file signature, the version, and the root MAIN
// chunk, running f to fill in MAIN's children.
func WriteMainChunk(w io.WriteSeeker, version Version, f func(cw *ChunkWriter) error) error {
	if _, err := io.WriteString(w, Magic); err != nil {
		return err
	}
	if err := writeU32(w, uint32(version)); err != nil {
		return err
	}
	return WriteChunk(w, ChunkMain, f)
}

// ToWriter encodes vox as a VOX file on w. The palette chunk is omitted
// when the palette equals the built-in default, and a PACK chunk is written
// only for multi-model files.
func ToWriter(w io.WriteSeeker, vox *VoxData) error {
	version := vox.Version
	if version == 0 {
		version = DefaultVersion
	}

	return WriteMainChunk(w, version, func(main *ChunkWriter) error {
		if len(vox.Models) > 1 {
			err := main.ChildContent(ChunkPack, func(w *ContentWriter) error {
				return writeU32(w, uint32(len(vox.Models)))
			})
			if err != nil {
				return err
			}
		}

		for i := range vox.Models {
			model := &vox.Models[i]
			err := main.ChildContent(ChunkSize, func(w *ContentWriter) error {
				return model.Size.write(w)
			})
			if err != nil {
				return err
			}

			err = main.ChildContent(ChunkXYZI, func(w *ContentWriter) error {
				if err := writeU32(w, uint32(len(model.Voxels))); err != nil {
					return err
				}
				for _, v := range model.Voxels {
					if err := v.write(w); err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				return err
			}
		}

		if !vox.Palette.IsDefault() {
			err := main.ChildContent(ChunkRGBA, func(w *ContentWriter) error {
				return vox.Palette.write(w)
			})
			if err != nil {
				return err
			}
		}

		for _, id := range slices.Sorted(maps.Keys(vox.Materials)) {
			material := vox.Materials[id]
			err := main.ChildContent(ChunkMATT, func(w *ContentWriter) error {
				return WriteMaterial(w, id, material)
			})
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// ToVec encodes vox into a byte slice.
func ToVec(vox *VoxData) ([]byte, error) {
	var buf memWriter
	if err := ToWriter(&buf, vox); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToFile writes vox to the file at path, creating or truncating it.
func ToFile(path string, vox *VoxData) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ToWriter(f, vox); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
