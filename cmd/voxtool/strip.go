package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/jgraef/vox-format/pkg/vox"
)

// defaultKeep is the tag set that preserves voxel fidelity: everything else
// (scene graph, render settings, thumbnails) is metadata.
var defaultKeep = []string{"PACK", "SIZE", "XYZI", "RGBA", "MATT"}

func stripCmd() *cli.Command {
	var (
		keep   []string
		strip  []string
		output string
	)

	return &cli.Command{
		Name:      "strip",
		Usage:     "Copy a VOX file, dropping unwanted chunks",
		ArgsUsage: "<file>",
		Flags: append(commonFlags(),
			&cli.StringSliceFlag{
				Name:        "keep",
				Usage:       "chunk tags to keep (default: PACK SIZE XYZI RGBA MATT)",
				Destination: &keep,
			},
			&cli.StringSliceFlag{
				Name:        "strip",
				Usage:       "chunk tags to drop (applied after --keep)",
				Destination: &strip,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output file",
				Required:    true,
				Destination: &output,
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one file argument")
			}
			log := newLogger(c, LoadConfig())

			if len(keep) == 0 {
				keep = defaultKeep
			}
			keepSet, err := tagSet(keep)
			if err != nil {
				return err
			}
			stripSet, err := tagSet(strip)
			if err != nil {
				return err
			}

			in, err := os.Open(c.Args().First())
			if err != nil {
				return err
			}
			defer func() { _ = in.Close() }()

			root, version, err := vox.ReadMainChunkOptions(in, readOptions(log))
			if err != nil {
				return err
			}

			out, err := os.Create(output)
			if err != nil {
				return err
			}
			defer func() { _ = out.Close() }()

			var kept, dropped int
			err = vox.WriteMainChunk(out, version, func(cw *vox.ChunkWriter) error {
				cs := root.Children(in)
				for cs.Next() {
					chunk := cs.Chunk()
					_, keepIt := keepSet[chunk.ID]
					if _, stripIt := stripSet[chunk.ID]; stripIt {
						keepIt = false
					}
					if !keepIt {
						dropped++
						log.Debug("dropping chunk", "id", chunk.ID.String(), "offset", chunk.Offset)
						continue
					}
					kept++
					if err := copyChunk(in, chunk, cw); err != nil {
						return err
					}
				}
				return cs.Err()
			})
			if err != nil {
				return err
			}

			log.Info("stripped file written", "output", output, "kept", kept, "dropped", dropped)
			return out.Close()
		},
	}
}

func tagSet(tags []string) (map[vox.ChunkID]struct{}, error) {
	set := make(map[vox.ChunkID]struct{}, len(tags))
	for _, t := range tags {
		id, err := vox.ParseChunkID(t)
		if err != nil {
			return nil, err
		}
		set[id] = struct{}{}
	}
	return set, nil
}

// copyChunk re-emits one chunk, content byte-exact and children recursive.
func copyChunk(r io.ReadSeeker, chunk vox.Chunk, parent *vox.ChunkWriter) error {
	if chunk.ChildrenLen == 0 {
		content, err := chunk.ContentBytes(r)
		if err != nil {
			return err
		}
		return parent.ChildContent(chunk.ID, func(w *vox.ContentWriter) error {
			_, err := w.Write(content)
			return err
		})
	}
	if chunk.ContentLen > 0 {
		// The format does not mix content and children in one chunk.
		return fmt.Errorf("chunk %s at %d has both content and children", chunk.ID, chunk.Offset)
	}
	return parent.Child(chunk.ID, func(cw *vox.ChunkWriter) error {
		cs := chunk.Children(r)
		for cs.Next() {
			if err := copyChunk(r, cs.Chunk(), cw); err != nil {
				return err
			}
		}
		return cs.Err()
	})
}
