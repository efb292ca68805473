package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/jgraef/vox-format/pkg/vox"
)

func paletteCmd() *cli.Command {
	return &cli.Command{
		Name:  "palette",
		Usage: "Work with VOX palettes",
		Commands: []*cli.Command{
			palettePrintCmd(),
			paletteSwapCmd(),
		},
	}
}

func palettePrintCmd() *cli.Command {
	return &cli.Command{
		Name:      "print",
		Usage:     "List a file's palette entries",
		ArgsUsage: "<file>",
		Flags:     commonFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one file argument")
			}
			log := newLogger(c, LoadConfig())

			data, err := readFile(c.Args().First(), log)
			if err != nil {
				return err
			}
			for i, color := range data.Palette.All() {
				fmt.Printf("%3d: #%02x%02x%02x%02x\n", i, color.R, color.G, color.B, color.A)
			}
			return nil
		},
	}
}

func paletteSwapCmd() *cli.Command {
	var (
		from   string
		output string
	)

	return &cli.Command{
		Name:      "swap",
		Usage:     "Replace a file's palette with another file's",
		ArgsUsage: "<file>",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:        "from",
				Usage:       "file to take the palette from",
				Required:    true,
				Destination: &from,
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

			data, err := readFile(c.Args().First(), log)
			if err != nil {
				return err
			}
			source, err := readFile(from, log)
			if err != nil {
				return err
			}

			data.Palette = source.Palette
			if err := vox.ToFile(output, data); err != nil {
				return err
			}
			log.Info("palette swapped", "from", from, "output", output,
				"default", data.Palette.IsDefault())
			return nil
		},
	}
}
