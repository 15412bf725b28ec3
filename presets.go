package ptmat

// Built-in preset names.
const (
	PresetFlat         = "flat"
	PresetEyeNormalCos = "eye_normal_cos"
	PresetDiffuse      = "diffuse"
	PresetMirror       = "mirror"
	PresetMetalic      = "metalic"
	PresetPlastic      = "plastic"
	PresetClearGlass   = "clear_glass"
)

// Preset is a named material descriptor with its documentation.
type Preset struct {
	Name       string     `json:"name" yaml:"name" toml:"name"`                            // Unique preset name
	Doc        string     `json:"doc,omitempty" yaml:"doc,omitempty" toml:"doc,omitempty"` // Usage notes
	Descriptor Descriptor `json:"descriptor" yaml:"descriptor" toml:"descriptor"`          // Material bindings and parameters
}

// shadowAnyHit is the any hit binding shared by all built-ins.
func shadowAnyHit() []ProgramRef {
	return []ProgramRef{NewProgram(RayShadow, EntryAnyHit)}
}

// closestHit binds entry to the primary ray.
func closestHit(entry string) []ProgramRef {
	return []ProgramRef{NewProgram(RayPrimary, entry)}
}

// whiteAlbedo is the default surface_albedo of reflective and glass presets.
func whiteAlbedo() map[string]Float3 {
	return map[string]Float3{ParamSurfaceAlbedo: Gray(1)}
}

// builtinPresets returns fresh copies of the built-in presets in declaration order.
func builtinPresets() []Preset {
	return []Preset{
		{
			Name: PresetFlat,
			Doc:  "Super-fast material, color is not shaded anyhow. Use color components range <0; 1>.",
			Descriptor: Descriptor{
				ClosestHitPrograms: closestHit(EntryFlatClosestHit),
				AnyHitPrograms:     shadowAnyHit(),
			},
		},
		{
			Name: PresetEyeNormalCos,
			Doc: "Fast material, color is shaded by the cos(eye-hit-normal). " +
				"Use color components range <0; 1>.",
			Descriptor: Descriptor{
				ClosestHitPrograms: closestHit(EntryCosClosestHit),
				AnyHitPrograms:     shadowAnyHit(),
			},
		},
		{
			Name: PresetDiffuse,
			Doc: "Standard diffuse material. Note it is available by default under the name \"diffuse\". " +
				"Use color components range <0; 1>.",
			Descriptor: Descriptor{
				ClosestHitPrograms: closestHit(EntryDiffuseClosestHit),
				AnyHitPrograms:     shadowAnyHit(),
				VarInt:             map[string]int32{ParamMaterialFlags: 2},
			},
		},
		{
			Name: PresetMirror,
			Doc: "100% reflective mirror, quite simple to calculate and therefore a fast material. " +
				"Use surface_albedo (range <0; 1>) to colorize reflection.",
			Descriptor: Descriptor{
				ClosestHitPrograms: closestHit(EntryReflectiveClosestHit),
				AnyHitPrograms:     shadowAnyHit(),
				VarInt:             map[string]int32{ParamMaterialFlags: 6},
				VarFloat3:          whiteAlbedo(),
			},
		},
		{
			Name: PresetMetalic,
			Doc: "Strongly reflective, metalic material. Use surface_albedo (range <0; 1>) to colorize " +
				"reflection. Standard color assigned to each primitive is affecting the diffuse contribution " +
				"color (range <0; 1>). Reflection to diffuse proportion is set with reflectivity_index " +
				"and reflectivity_range (both in range <0; 1>): (1, 1) gives a mirror-like appearance, " +
				"(0, 0) a diffuse-like appearance, intermediate values a plastic-like appearance with " +
				"various gloss profiles.",
			Descriptor: Descriptor{
				ClosestHitPrograms: closestHit(EntryReflectiveClosestHit),
				AnyHitPrograms:     shadowAnyHit(),
				VarInt:             map[string]int32{ParamMaterialFlags: 6},
				VarFloat: map[string]float64{
					ParamReflectivityIndex: 0.95,
					ParamReflectivityRange: 1.0,
					ParamRefractionIndex:   2.5,
				},
				VarFloat3: whiteAlbedo(),
			},
		},
		{
			Name: PresetPlastic,
			Doc: "Combined reflective and diffuse surface. Reflection fraction may be boosted with " +
				"reflectivity_index set above 0 (up to 1, resulting with mirror-like appearance) or " +
				"minimized with a lower than default reflectivity_range value (down to 0). Higher " +
				"refraction_index gives a more glossy look.",
			Descriptor: Descriptor{
				ClosestHitPrograms: closestHit(EntryReflectiveClosestHit),
				AnyHitPrograms:     shadowAnyHit(),
				VarInt:             map[string]int32{ParamMaterialFlags: 6},
				VarFloat: map[string]float64{
					ParamReflectivityIndex: 0.0,
					ParamReflectivityRange: 0.8,
					ParamRefractionIndex:   2.0,
				},
				VarFloat3: whiteAlbedo(),
			},
		},
		{
			Name: PresetClearGlass,
			Doc: "Glass, with reflection and refraction. Color components meaning is \"attenuation length\" " +
				"and the range is <0; inf>.",
			Descriptor: Descriptor{
				ClosestHitPrograms: closestHit(EntryGlassClosestHit),
				AnyHitPrograms:     shadowAnyHit(),
				VarInt:             map[string]int32{ParamMaterialFlags: 12},
				VarFloat: map[string]float64{
					ParamRefractionIndex: 1.4,
					ParamRadiationLength: 0.0,
					ParamVolScattering:   1.0,
					ParamLightEmission:   0.0,
				},
				VarFloat3: whiteAlbedo(),
			},
		},
	}
}
