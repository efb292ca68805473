package vox

import (
	"fmt"
	"io"
)

// MaterialKind is the shading model a material uses.
type MaterialKind uint8

const (
	MaterialDiffuse MaterialKind = iota
	MaterialMetal
	MaterialGlass
	MaterialEmissive
)

func (k MaterialKind) String() string {
	switch k {
	case MaterialDiffuse:
		return "diffuse"
	case MaterialMetal:
		return "metal"
	case MaterialGlass:
		return "glass"
	case MaterialEmissive:
		return "emissive"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Material property flag bits. Bits 0..6 select which optional float values
// are present in the record; bit 7 is a standalone boolean.
const (
	matFlagPlastic = 1 << iota
	matFlagRoughness
	matFlagSpecular
	matFlagIOR
	matFlagAttenuation
	matFlagPower
	matFlagGlow
	matFlagIsTotalPower
)

// Material holds the optional shading parameters attached to one palette
// slot. Parameters absent from the record are nil, never zero. The raw
// decoded values are exposed without interpretation.
type Material struct {
	Kind   MaterialKind
	Weight float32

	Plastic     *float32
	Roughness   *float32
	Specular    *float32
	IOR         *float32
	Attenuation *float32
	Power       *float32
	Glow        *float32

	IsTotalPower bool
}

// MaterialPalette maps palette slots to their materials.
type MaterialPalette map[ColorIndex]Material

// ReadMaterial decodes a MATT chunk payload: the palette slot the material
// applies to, followed by the material record.
func ReadMaterial(r io.Reader) (ColorIndex, Material, error) {
	id, err := readU32(r)
	if err != nil {
		return 0, Material{}, err
	}
	if id > 255 {
		return 0, Material{}, fmt.Errorf("%w: material id %d out of palette range", ErrInvalidMaterial, id)
	}
	m, err := readMaterialRecord(r)
	if err != nil {
		return 0, Material{}, err
	}
	return ColorIndex(id), m, nil
}

func readMaterialRecord(r io.Reader) (Material, error) {
	kind, err := readU8(r)
	if err != nil {
		return Material{}, err
	}
	if kind > uint8(MaterialEmissive) {
		return Material{}, fmt.Errorf("%w: material kind %d", ErrInvalidMaterial, kind)
	}
	weight, err := readF32(r)
	if err != nil {
		return Material{}, err
	}
	flags, err := readU32(r)
	if err != nil {
		return Material{}, err
	}

	m := Material{
		Kind:         MaterialKind(kind),
		Weight:       weight,
		IsTotalPower: flags&matFlagIsTotalPower != 0,
	}
	for _, f := range []struct {
		bit uint32
		dst **float32
	}{
		{matFlagPlastic, &m.Plastic},
		{matFlagRoughness, &m.Roughness},
		{matFlagSpecular, &m.Specular},
		{matFlagIOR, &m.IOR},
		{matFlagAttenuation, &m.Attenuation},
		{matFlagPower, &m.Power},
		{matFlagGlow, &m.Glow},
	} {
		if flags&f.bit == 0 {
			continue
		}
		v, err := readF32(r)
		if err != nil {
			return Material{}, err
		}
		*f.dst = &v
	}
	return m, nil
}

// WriteMaterial encodes a MATT chunk payload for the given palette slot.
func WriteMaterial(w io.Writer, id ColorIndex, m Material) error {
	if err := writeU32(w, uint32(id)); err != nil {
		return err
	}
	if err := writeU8(w, uint8(m.Kind)); err != nil {
		return err
	}
	if err := writeF32(w, m.Weight); err != nil {
		return err
	}

	var flags uint32
	opts := []struct {
		bit uint32
		val *float32
	}{
		{matFlagPlastic, m.Plastic},
		{matFlagRoughness, m.Roughness},
		{matFlagSpecular, m.Specular},
		{matFlagIOR, m.IOR},
		{matFlagAttenuation, m.Attenuation},
		{matFlagPower, m.Power},
		{matFlagGlow, m.Glow},
	}
	for _, o := range opts {
		if o.val != nil {
			flags |= o.bit
		}
	}
	if m.IsTotalPower {
		flags |= matFlagIsTotalPower
	}
	if err := writeU32(w, flags); err != nil {
		return err
	}
	for _, o := range opts {
		if o.val == nil {
			continue
		}
		if err := writeF32(w, *o.val); err != nil {
			return err
		}
	}
	return nil
}
