package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jgraef/vox-format/pkg/vox"
)

func TestTagSet(t *testing.T) {
	t.Parallel()
	requireT := require.New(t)

	set, err := tagSet([]string{"SIZE", "XYZI"})
	requireT.NoError(err)
	requireT.Contains(set, vox.ChunkSize)
	requireT.Contains(set, vox.ChunkXYZI)
	requireT.NotContains(set, vox.ChunkRGBA)

	_, err = tagSet([]string{"BAD"})
	requireT.Error(err)
}

func TestCopyChunkRoundTrip(t *testing.T) {
	t.Parallel()
	requireT := require.New(t)

	data := vox.NewVoxData()
	data.Models = []vox.Model{
		{Size: vox.Size{X: 2, Y: 2, Z: 2}, Voxels: []vox.Voxel{
			{Point: vox.Point{X: 1, Y: 1, Z: 1}, ColorIndex: 5},
		}},
		{Size: vox.Size{X: 1, Y: 1, Z: 1}},
	}
	data.Palette[10] = vox.Color{R: 1, G: 2, B: 3, A: 255}

	original, err := vox.ToVec(data)
	requireT.NoError(err)

	in := bytes.NewReader(original)
	root, version, err := vox.ReadMainChunk(in)
	requireT.NoError(err)

	outPath := filepath.Join(t.TempDir(), "copy.vox")
	out, err := os.Create(outPath)
	requireT.NoError(err)

	err = vox.WriteMainChunk(out, version, func(cw *vox.ChunkWriter) error {
		cs := root.Children(in)
		for cs.Next() {
			if err := copyChunk(in, cs.Chunk(), cw); err != nil {
				return err
			}
		}
		return cs.Err()
	})
	requireT.NoError(err)
	requireT.NoError(out.Close())

	copied, err := os.ReadFile(outPath)
	requireT.NoError(err)
	requireT.Equal(original, copied)
}
