package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/jgraef/vox-format/pkg/vox"
)

func inspectCmd() *cli.Command {
	var (
		asJSON    bool
		showScene bool
	)

	return &cli.Command{
		Name:      "inspect",
		Usage:     "Print the chunk tree and decoded summary of a VOX file",
		ArgsUsage: "<file>",
		Flags: append(commonFlags(),
			&cli.BoolFlag{Name: "json", Usage: "emit the decoded file as JSON", Destination: &asJSON},
			&cli.BoolFlag{Name: "scene", Usage: "dump scene-graph nodes (best effort)", Destination: &showScene},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one file argument")
			}
			path := c.Args().First()
			log := newLogger(c, LoadConfig())
			opts := readOptions(log)

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			if asJSON {
				data := vox.NewVoxData()
				if err := vox.ReadIntoOptions(f, data, opts); err != nil {
					return err
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(data)
			}

			root, version, err := vox.ReadMainChunkOptions(f, opts)
			if err != nil {
				return err
			}
			fmt.Printf("%s: version %d\n", path, uint32(version))
			if err := printChunkTree(f, root, 0); err != nil {
				return err
			}

			if showScene {
				if err := printScene(f, root); err != nil {
					return err
				}
			}

			if _, err := f.Seek(0, io.SeekStart); err != nil {
				return err
			}
			data := vox.NewVoxData()
			if err := vox.ReadIntoOptions(f, data, opts); err != nil {
				return err
			}
			fmt.Printf("\nmodels: %d\n", len(data.Models))
			for i, m := range data.Models {
				fmt.Printf("  model %d: size %s, %d voxels\n", i, m.Size, len(m.Voxels))
			}
			fmt.Printf("palette: default=%t\n", data.Palette.IsDefault())
			fmt.Printf("materials: %d\n", len(data.Materials))
			return nil
		},
	}
}

func printChunkTree(r io.ReadSeeker, c vox.Chunk, depth int) error {
	fmt.Printf("%s%s offset=%d content=%d children=%d\n",
		strings.Repeat("  ", depth), c.ID, c.Offset, c.ContentLen, c.ChildrenLen)
	cs := c.Children(r)
	for cs.Next() {
		if err := printChunkTree(r, cs.Chunk(), depth+1); err != nil {
			return err
		}
	}
	return cs.Err()
}

func printScene(r io.ReadSeeker, root vox.Chunk) error {
	fmt.Println("\nscene graph:")
	cs := root.Children(r)
	for cs.Next() {
		chunk := cs.Chunk()
		cr, err := chunk.Content(r)
		if err != nil {
			return err
		}

		switch chunk.ID {
		case vox.ChunkNTrn:
			node, err := vox.ReadTransform(cr)
			if err != nil {
				return fmt.Errorf("decode nTRN at %d: %w", chunk.Offset, err)
			}
			fmt.Printf("  nTRN %d -> %d frames=%d attrs=%v\n",
				node.NodeID, node.ChildNodeID, len(node.Frames), node.Attributes)
		case vox.ChunkNGrp:
			node, err := vox.ReadGroup(cr)
			if err != nil {
				return fmt.Errorf("decode nGRP at %d: %w", chunk.Offset, err)
			}
			fmt.Printf("  nGRP %d children=%v\n", node.NodeID, node.Children)
		case vox.ChunkNShp:
			node, err := vox.ReadShape(cr)
			if err != nil {
				return fmt.Errorf("decode nSHP at %d: %w", chunk.Offset, err)
			}
			ids := make([]uint32, 0, len(node.Models))
			for _, m := range node.Models {
				ids = append(ids, m.ModelID)
			}
			fmt.Printf("  nSHP %d models=%v\n", node.NodeID, ids)
		case vox.ChunkLayr:
			node, err := vox.ReadLayer(cr)
			if err != nil {
				return fmt.Errorf("decode LAYR at %d: %w", chunk.Offset, err)
			}
			fmt.Printf("  LAYR %d attrs=%v\n", node.NodeID, node.Attributes)
		}
	}
	return cs.Err()
}
