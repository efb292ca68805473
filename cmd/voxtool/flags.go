package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/jgraef/vox-format/internal/logger"
	"github.com/jgraef/vox-format/pkg/vox"
)

var (
	logLevel  string
	logFormat string
	lenient   bool
)

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &logFormat,
		},
		&cli.BoolFlag{
			Name:        "lenient",
			Usage:       "accept files with unsupported format versions",
			Destination: &lenient,
		},
	}
}

// newLogger builds the command logger, layering config file defaults under
// any explicitly set flags.
func newLogger(c *cli.Command, cfg Config) *slog.Logger {
	applyConfig(c, cfg)
	return logger.New(os.Stderr, logger.Options{
		Level:  logLevel,
		Format: logFormat,
	})
}

func readOptions(log *slog.Logger) vox.ReadOptions {
	return vox.ReadOptions{
		AcceptAnyVersion: lenient,
		Logger:           log,
	}
}

// readFile decodes a whole VOX file under the current policy flags.
func readFile(path string, log *slog.Logger) (*vox.VoxData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	data := vox.NewVoxData()
	if err := vox.ReadIntoOptions(f, data, readOptions(log)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}
