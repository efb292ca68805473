package vox

import (
	"io"
	"iter"
)

// Palette is the 256-entry color table voxels index into. Slot 0 is fully
// transparent by convention: files store only slots 1..255, and anything
// placed in slot 0 is lost when the palette is written.
type Palette [256]Color

// DefaultPalette returns MagicaVoxel's built-in palette, used whenever a
// file has no RGBA chunk.
func DefaultPalette() Palette {
	return defaultPalette
}

// IsDefault reports whether the palette equals the built-in default.
func (p *Palette) IsDefault() bool {
	return *p == defaultPalette
}

// Color returns the color for an index. Every index is valid.
func (p *Palette) Color(i ColorIndex) Color {
	return p[i]
}

// All iterates over the palette's (index, color) pairs.
func (p *Palette) All() iter.Seq2[ColorIndex, Color] {
	return func(yield func(ColorIndex, Color) bool) {
		for i, c := range p {
			if !yield(ColorIndex(i), c) {
				return
			}
		}
	}
}

// readPalette decodes an RGBA chunk payload: 255 color records mapped onto
// slots 1..255. Slot 0 keeps its default (transparent) value.
func readPalette(r io.Reader) (Palette, error) {
	p := defaultPalette
	for i := 1; i < 256; i++ {
		c, err := readColor(r)
		if err != nil {
			return Palette{}, err
		}
		p[i] = c
	}
	return p, nil
}

// write encodes the palette as an RGBA chunk payload, skipping slot 0.
func (p *Palette) write(w io.Writer) error {
	for _, c := range p[1:] {
		if err := c.write(w); err != nil {
			return err
		}
	}
	return nil
}
