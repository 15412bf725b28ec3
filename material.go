package ptmat

import (
	"maps"
	"slices"
)

// Parameter names understood by the path tracing programs.
const (
	ParamMaterialFlags     = "material_flags"     // Int, MaterialFlags bitmask
	ParamReflectivityIndex = "reflectivity_index" // Float, <0; 1>
	ParamReflectivityRange = "reflectivity_range" // Float, <0; 1>
	ParamRefractionIndex   = "refraction_index"   // Float, <0; inf>
	ParamRadiationLength   = "radiation_length"   // Float, <0; inf>
	ParamVolScattering     = "vol_scattering"     // Float, <0; 1>
	ParamLightEmission     = "light_emission"     // Float, <0; 1>
	ParamSurfaceAlbedo     = "surface_albedo"     // Float3, <0; 1> per channel
)

// MaterialFlags selects the material behavior category in the renderer.
type MaterialFlags int32

const (
	// FlagDiffuse enables diffuse scattering.
	FlagDiffuse MaterialFlags = 1 << 1
	// FlagReflection enables specular reflection.
	FlagReflection MaterialFlags = 1 << 2
	// FlagRefraction enables refraction through the volume.
	FlagRefraction MaterialFlags = 1 << 3
)

// Has reports whether all bits of f2 are set.
func (f MaterialFlags) Has(f2 MaterialFlags) bool { return f&f2 == f2 }

// Descriptor describes one material: shader bindings and parameters.
//
// Field names match the keys the native engine expects in its material JSON.
type Descriptor struct {
	ClosestHitPrograms []ProgramRef       `json:"ClosestHitPrograms" yaml:"ClosestHitPrograms" toml:"ClosestHitPrograms"`                      // Programs run at the closest hit
	AnyHitPrograms     []ProgramRef       `json:"AnyHitPrograms,omitempty" yaml:"AnyHitPrograms,omitempty" toml:"AnyHitPrograms,omitempty"` // Programs run at any hit
	VarInt             map[string]int32   `json:"VarInt,omitempty" yaml:"VarInt,omitempty" toml:"VarInt,omitempty"`                         // Integer parameters
	VarFloat           map[string]float64 `json:"VarFloat,omitempty" yaml:"VarFloat,omitempty" toml:"VarFloat,omitempty"`                   // Scalar parameters
	VarFloat3          map[string]Float3  `json:"VarFloat3,omitempty" yaml:"VarFloat3,omitempty" toml:"VarFloat3,omitempty"`                // Vector parameters
}

// Clone returns a deep copy of d.
func (d Descriptor) Clone() Descriptor {
	return Descriptor{
		ClosestHitPrograms: slices.Clone(d.ClosestHitPrograms),
		AnyHitPrograms:     slices.Clone(d.AnyHitPrograms),
		VarInt:             maps.Clone(d.VarInt),
		VarFloat:           maps.Clone(d.VarFloat),
		VarFloat3:          maps.Clone(d.VarFloat3),
	}
}

// Equal reports field-for-field equality. Nil and empty collections are equal.
func (d Descriptor) Equal(o Descriptor) bool {
	return slices.Equal(d.ClosestHitPrograms, o.ClosestHitPrograms) &&
		slices.Equal(d.AnyHitPrograms, o.AnyHitPrograms) &&
		maps.Equal(d.VarInt, o.VarInt) &&
		maps.Equal(d.VarFloat, o.VarFloat) &&
		maps.Equal(d.VarFloat3, o.VarFloat3)
}

// Flags returns the material_flags parameter, zero when unset.
func (d Descriptor) Flags() MaterialFlags {
	return MaterialFlags(d.VarInt[ParamMaterialFlags])
}

// Int returns an integer parameter.
func (d Descriptor) Int(name string) (int32, bool) {
	v, ok := d.VarInt[name]
	return v, ok
}

// Float returns a scalar parameter.
func (d Descriptor) Float(name string) (float64, bool) {
	v, ok := d.VarFloat[name]
	return v, ok
}

// Float3Param returns a vector parameter.
func (d Descriptor) Float3Param(name string) (Float3, bool) {
	v, ok := d.VarFloat3[name]
	return v, ok
}

// ClosestHit returns the closest hit program bound to rt.
func (d Descriptor) ClosestHit(rt RayType) (ProgramRef, bool) {
	return findProgram(d.ClosestHitPrograms, rt)
}

// AnyHit returns the any hit program bound to rt.
func (d Descriptor) AnyHit(rt RayType) (ProgramRef, bool) {
	return findProgram(d.AnyHitPrograms, rt)
}

// findProgram returns the first program bound to rt.
func findProgram(list []ProgramRef, rt RayType) (ProgramRef, bool) {
	for _, p := range list {
		if p.RayType == rt {
			return p, true
		}
	}
	return ProgramRef{}, false
}
