package vox

import (
	"fmt"
	"io"
)

// ChunkID is the 4-byte tag identifying a chunk. Tags this package does not
// recognize are carried verbatim so they round-trip byte-exact.
type ChunkID [4]byte

// Tags MagicaVoxel writes. The scene-graph tags (nTRN and friends) come from
// the MagicaVoxel file writer source; their payloads are decoded best-effort
// only.
var (
	ChunkMain = ChunkID{'M', 'A', 'I', 'N'}
	ChunkPack = ChunkID{'P', 'A', 'C', 'K'}
	ChunkSize = ChunkID{'S', 'I', 'Z', 'E'}
	ChunkXYZI = ChunkID{'X', 'Y', 'Z', 'I'}
	ChunkRGBA = ChunkID{'R', 'G', 'B', 'A'}
	ChunkMATT = ChunkID{'M', 'A', 'T', 'T'}
	ChunkNote = ChunkID{'N', 'O', 'T', 'E'}
	ChunkVox  = ChunkID{'V', 'O', 'X', ' '}
	ChunkNTrn = ChunkID{'n', 'T', 'R', 'N'}
	ChunkNGrp = ChunkID{'n', 'G', 'R', 'P'}
	ChunkNShp = ChunkID{'n', 'S', 'H', 'P'}
	ChunkLayr = ChunkID{'L', 'A', 'Y', 'R'}
	ChunkMATL = ChunkID{'M', 'A', 'T', 'L'}
	ChunkRObj = ChunkID{'r', 'O', 'B', 'J'}
	ChunkRCam = ChunkID{'r', 'C', 'A', 'M'}
)

var knownChunkIDs = map[ChunkID]struct{}{
	ChunkMain: {}, ChunkPack: {}, ChunkSize: {}, ChunkXYZI: {},
	ChunkRGBA: {}, ChunkMATT: {}, ChunkNote: {}, ChunkVox: {},
	ChunkNTrn: {}, ChunkNGrp: {}, ChunkNShp: {}, ChunkLayr: {},
	ChunkMATL: {}, ChunkRObj: {}, ChunkRCam: {},
}

// ParseChunkID converts a 4-character string such as "XYZI" into a ChunkID.
func ParseChunkID(s string) (ChunkID, error) {
	if len(s) != 4 {
		return ChunkID{}, fmt.Errorf("vox: chunk ID must be 4 bytes, got %q", s)
	}
	var id ChunkID
	copy(id[:], s)
	return id, nil
}

// Supported reports whether the tag is one this package recognizes.
func (id ChunkID) Supported() bool {
	_, ok := knownChunkIDs[id]
	return ok
}

func (id ChunkID) String() string {
	return string(id[:])
}

func readChunkID(r io.Reader) (ChunkID, error) {
	var id ChunkID
	if _, err := io.ReadFull(r, id[:]); err != nil {
		return ChunkID{}, err
	}
	return id, nil
}

func (id ChunkID) write(w io.Writer) error {
	_, err := w.Write(id[:])
	return err
}
