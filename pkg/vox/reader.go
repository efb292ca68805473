package vox

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ReadOptions controls protocol policy for a decode call.
type ReadOptions struct {
	// AcceptAnyVersion downgrades an unsupported file version from a hard
	// error to a warning on Logger.
	AcceptAnyVersion bool

	// Logger, when set, receives debug records for skipped chunks and
	// warnings for tolerated oddities. Nil disables logging.
	Logger *slog.Logger
}

func (o ReadOptions) log() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// ReadMainChunk verifies the file signature and version at the start of the
// stream and reads the root MAIN chunk header. Unsupported versions are a
// hard error; use ReadMainChunkOptions to relax that.
func ReadMainChunk(r io.ReadSeeker) (Chunk, Version, error) {
	return ReadMainChunkOptions(r, ReadOptions{})
}

// ReadMainChunkOptions is ReadMainChunk with explicit policy.
func ReadMainChunkOptions(r io.ReadSeeker, opts ReadOptions) (Chunk, Version, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return Chunk{}, 0, err
	}
	if string(magic[:]) != Magic {
		return Chunk{}, 0, fmt.Errorf("%w: got %q", ErrInvalidMagic, magic)
	}

	raw, err := readU32(r)
	if err != nil {
		return Chunk{}, 0, err
	}
	version := Version(raw)
	if !version.Supported() {
		if !opts.AcceptAnyVersion {
			return Chunk{}, 0, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
		}
		opts.log().Warn("unsupported file version", "version", uint32(version))
	}

	main, err := ReadChunk(r)
	if err != nil {
		return Chunk{}, 0, err
	}
	if main.ID != ChunkMain {
		return Chunk{}, 0, fmt.Errorf("%w: got %s at offset %d", ErrExpectedMainChunk, main.ID, main.Offset)
	}
	return main, version, nil
}

// ReadInto decodes the VOX file on r and pushes its contents into builder.
// The stream position is assumed to be at the start of the file.
func ReadInto(r io.ReadSeeker, builder ModelBuilder) error {
	return ReadIntoOptions(r, builder, ReadOptions{})
}

// ReadIntoOptions is ReadInto with explicit policy.
//
// The walk buckets MAIN's children by tag in a single pass, then delivers
// the palette (decoded or default), material records, and finally each
// (SIZE, XYZI) pair in encounter order. A SIZE/XYZI count mismatch fails
// before any model callback fires.
func ReadIntoOptions(r io.ReadSeeker, builder ModelBuilder, opts ReadOptions) error {
	log := opts.log()

	main, version, err := ReadMainChunkOptions(r, opts)
	if err != nil {
		return err
	}
	builder.SetVersion(version)

	var (
		sizeChunks []Chunk
		xyziChunks []Chunk
		mattChunks []Chunk
		rgbaChunk  *Chunk
	)
	cs := main.Children(r)
	for cs.Next() {
		chunk := cs.Chunk()
		if chunk.ChildrenLen > 0 && chunk.ID != ChunkMain {
			log.Warn("unexpected nested chunk", "id", chunk.ID.String(), "offset", chunk.Offset)
		}

		switch chunk.ID {
		case ChunkSize:
			sizeChunks = append(sizeChunks, chunk)
		case ChunkXYZI:
			xyziChunks = append(xyziChunks, chunk)
		case ChunkRGBA:
			if rgbaChunk != nil {
				return &DuplicateChunkError{First: *rgbaChunk, Second: chunk}
			}
			c := chunk
			rgbaChunk = &c
		case ChunkMATT:
			mattChunks = append(mattChunks, chunk)
		default:
			log.Debug("skipping chunk", "id", chunk.ID.String(),
				"offset", chunk.Offset, "supported", chunk.ID.Supported())
		}
	}
	if err := cs.Err(); err != nil {
		return err
	}

	// The palette is delivered before any voxel data so builders can resolve
	// colors as voxels arrive. Files without an RGBA chunk get the built-in
	// default.
	palette := DefaultPalette()
	if rgbaChunk != nil {
		cr, err := rgbaChunk.Content(r)
		if err != nil {
			return err
		}
		if palette, err = readPalette(bufio.NewReader(cr)); err != nil {
			return fmt.Errorf("vox: decode RGBA chunk at %d: %w", rgbaChunk.Offset, err)
		}
	}
	builder.SetPalette(palette)

	if mb, ok := builder.(MaterialBuilder); ok {
		for _, chunk := range mattChunks {
			cr, err := chunk.Content(r)
			if err != nil {
				return err
			}
			id, material, err := ReadMaterial(bufio.NewReader(cr))
			if err != nil {
				return fmt.Errorf("vox: decode MATT chunk at %d: %w", chunk.Offset, err)
			}
			mb.SetMaterial(id, material)
		}
	}

	if len(sizeChunks) != len(xyziChunks) {
		return &ChunkMismatchError{SizeChunks: sizeChunks, XYZIChunks: xyziChunks}
	}
	builder.SetNumModels(len(sizeChunks))

	for i, sizeChunk := range sizeChunks {
		cr, err := sizeChunk.Content(r)
		if err != nil {
			return err
		}
		size, err := readSize(cr)
		if err != nil {
			return fmt.Errorf("vox: decode SIZE chunk at %d: %w", sizeChunk.Offset, err)
		}
		builder.SetModelSize(size)

		cr, err = xyziChunks[i].Content(r)
		if err != nil {
			return err
		}
		br := bufio.NewReader(cr)
		numVoxels, err := readU32(br)
		if err != nil {
			return fmt.Errorf("vox: decode XYZI chunk at %d: %w", xyziChunks[i].Offset, err)
		}
		for range numVoxels {
			voxel, err := readVoxel(br)
			if err != nil {
				return fmt.Errorf("vox: decode XYZI chunk at %d: %w", xyziChunks[i].Offset, err)
			}
			builder.SetVoxel(voxel)
		}
	}

	return nil
}

// FromReader decodes a VOX file into the reference VoxData collector.
func FromReader(r io.ReadSeeker) (*VoxData, error) {
	data := NewVoxData()
	if err := ReadInto(r, data); err != nil {
		return nil, err
	}
	return data, nil
}

// FromSlice decodes a VOX file held in memory.
func FromSlice(b []byte) (*VoxData, error) {
	return FromReader(bytes.NewReader(b))
}

// FromFile decodes the VOX file at path.
func FromFile(path string) (*VoxData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return FromReader(f)
}
