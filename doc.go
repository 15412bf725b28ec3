/*
Package ptmat provides the built-in material presets of a GPU path tracer:
shader program bindings plus integer, scalar and vector parameters for
flat, eye_normal_cos, diffuse, mirror, metalic, plastic and clear_glass.

Presets live in an immutable Table. The built-in table is created once on
first use and may be read from any goroutine.

Lookup example:

	d, err := ptmat.Get("plastic")
	if errors.Is(err, ptmat.ErrUnknownPreset) {
		// handle unknown name
	}
	_ = d.VarFloat[ptmat.ParamReflectivityRange]

Extension example:

	custom := ptmat.MustGet(ptmat.PresetMetalic)
	custom.VarFloat3[ptmat.ParamSurfaceAlbedo] = ptmat.SetFloat3(0.9, 0.7, 0.3)
	t, err := ptmat.Default().With(ptmat.Preset{Name: "gold", Descriptor: custom})
	if err != nil {
		// handle duplicate name or invalid descriptor
	}
	_ = t.Names()

Writer example:

	out, err := ptmat.Marshal(d, &ptmat.EncodeOptions{Format: ptmat.FormatJSON})
	if err != nil {
		// handle error
	}
	_ = out // {"ClosestHitPrograms":["0::path_tracing_materials.ptx::reflective_closest_hit"],...}

Validator example:

	issues := ptmat.Validate(&d, nil)
	if ptmat.HasErrors(issues) {
		// handle validation issues
	}

Upload example:

	if err := d.Apply(renderer); err != nil {
		// handle setter error
	}
*/
package ptmat
