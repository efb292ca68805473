package vox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func f32ptr(v float32) *float32 { return &v }

func TestMaterialRoundTrip(t *testing.T) {
	t.Parallel()
	requireT := require.New(t)

	original := Material{
		Kind:         MaterialGlass,
		Weight:       0.8,
		Roughness:    f32ptr(0.1),
		IOR:          f32ptr(1.45),
		Attenuation:  f32ptr(0.02),
		IsTotalPower: true,
	}

	var buf bytes.Buffer
	requireT.NoError(WriteMaterial(&buf, 33, original))

	id, decoded, err := ReadMaterial(&buf)
	requireT.NoError(err)
	requireT.Equal(ColorIndex(33), id)
	requireT.Equal(original, decoded)

	// Unset parameters stay nil, not zero.
	requireT.Nil(decoded.Plastic)
	requireT.Nil(decoded.Specular)
	requireT.Nil(decoded.Power)
	requireT.Nil(decoded.Glow)
}

func TestMaterialFlagEncoding(t *testing.T) {
	t.Parallel()
	requireT := require.New(t)

	var buf bytes.Buffer
	requireT.NoError(WriteMaterial(&buf, 1, Material{
		Kind:   MaterialEmissive,
		Weight: 1,
		Power:  f32ptr(2),
		Glow:   f32ptr(0.5),
	}))

	raw := buf.Bytes()
	// id(4) + kind(1) + weight(4) + flags(4) + two property floats.
	requireT.Len(raw, 4+1+4+4+8)
	requireT.Equal(uint8(MaterialEmissive), raw[4])
	flags := uint32(raw[9]) | uint32(raw[10])<<8 | uint32(raw[11])<<16 | uint32(raw[12])<<24
	requireT.Equal(uint32(matFlagPower|matFlagGlow), flags)
}

func TestMaterialPropertyOrderFollowsFlagBits(t *testing.T) {
	t.Parallel()
	requireT := require.New(t)

	var buf bytes.Buffer
	requireT.NoError(WriteMaterial(&buf, 1, Material{
		Kind:      MaterialDiffuse,
		Plastic:   f32ptr(1),
		Roughness: f32ptr(2),
		Glow:      f32ptr(3),
	}))

	_, decoded, err := ReadMaterial(&buf)
	requireT.NoError(err)
	requireT.Equal(float32(1), *decoded.Plastic)
	requireT.Equal(float32(2), *decoded.Roughness)
	requireT.Equal(float32(3), *decoded.Glow)
}

func TestReadMaterialInvalidKind(t *testing.T) {
	t.Parallel()
	requireT := require.New(t)

	raw := append(u32le(1), 4) // kind 4 does not exist
	raw = append(raw, u32le(0)...)
	raw = append(raw, u32le(0)...)
	_, _, err := ReadMaterial(bytes.NewReader(raw))
	requireT.ErrorIs(err, ErrInvalidMaterial)
}

func TestReadMaterialIDOutOfRange(t *testing.T) {
	t.Parallel()
	requireT := require.New(t)

	raw := u32le(300)
	_, _, err := ReadMaterial(bytes.NewReader(raw))
	requireT.ErrorIs(err, ErrInvalidMaterial)
}

func TestMaterialKindString(t *testing.T) {
	t.Parallel()
	requireT := require.New(t)

	requireT.Equal("diffuse", MaterialDiffuse.String())
	requireT.Equal("emissive", MaterialEmissive.String())
	requireT.Equal("kind(9)", MaterialKind(9).String())
}
