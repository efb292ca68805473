package vox

// ModelBuilder receives decoded file contents as they stream off the chunk
// tree, letting callers build any in-memory representation without an
// intermediate structure. For one file the calls always arrive in this
// order:
//
//	SetVersion
//	SetPalette     (once, before any voxel data; the built-in default
//	                palette if the file has no RGBA chunk)
//	SetNumModels   (once, a size hint)
//	SetModelSize   (per model)
//	SetVoxel       (per voxel of the most recent model)
//
// Builders that do not care about a value may ignore the call.
type ModelBuilder interface {
	SetVersion(v Version)
	SetPalette(p Palette)
	SetNumModels(n int)
	SetModelSize(s Size)
	SetVoxel(v Voxel)
}

// MaterialBuilder is implemented by builders that also want material
// records. SetMaterial calls arrive after SetPalette and before any model
// data.
type MaterialBuilder interface {
	SetMaterial(i ColorIndex, m Material)
}

// VoxData is the reference ModelBuilder: it collects the whole file into
// memory. The zero value is not ready for use; construct it with NewVoxData
// so the palette defaults correctly.
type VoxData struct {
	Version   Version
	Models    []Model
	Palette   Palette
	Materials MaterialPalette
}

// NewVoxData returns an empty VoxData with the default version and palette.
func NewVoxData() *VoxData {
	return &VoxData{
		Version: DefaultVersion,
		Palette: DefaultPalette(),
	}
}

func (d *VoxData) SetVersion(v Version) {
	d.Version = v
}

func (d *VoxData) SetPalette(p Palette) {
	d.Palette = p
}

func (d *VoxData) SetNumModels(n int) {
	if n > len(d.Models) {
		grown := make([]Model, len(d.Models), n)
		copy(grown, d.Models)
		d.Models = grown
	}
}

func (d *VoxData) SetModelSize(s Size) {
	d.Models = append(d.Models, Model{Size: s})
}

// SetVoxel appends the voxel to the most recently started model. Calling it
// before any SetModelSize is a contract violation and panics.
func (d *VoxData) SetVoxel(v Voxel) {
	if len(d.Models) == 0 {
		panic("vox: SetVoxel called before SetModelSize")
	}
	m := &d.Models[len(d.Models)-1]
	m.Voxels = append(m.Voxels, v)
}

func (d *VoxData) SetMaterial(i ColorIndex, m Material) {
	if d.Materials == nil {
		d.Materials = make(MaterialPalette)
	}
	d.Materials[i] = m
}
