package ptmat

import (
	"fmt"
	"maps"
	"slices"
)

// ParamSetter receives material parameters, typically a renderer uploading
// them into GPU material buffers.
type ParamSetter interface {
	SetInt(name string, v int32) error
	SetFloat(name string, v float64) error
	SetFloat3(name string, v Float3) error
}

// ProgramBinder receives program bindings.
type ProgramBinder interface {
	BindClosestHit(p ProgramRef) error
	BindAnyHit(p ProgramRef) error
}

// Apply pushes every parameter to s: integers, then scalars, then vectors,
// each group in name order.
func (d Descriptor) Apply(s ParamSetter) error {
	for _, name := range slices.Sorted(maps.Keys(d.VarInt)) {
		if err := s.SetInt(name, d.VarInt[name]); err != nil {
			return fmt.Errorf("set %s: %w", name, err)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(d.VarFloat)) {
		if err := s.SetFloat(name, d.VarFloat[name]); err != nil {
			return fmt.Errorf("set %s: %w", name, err)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(d.VarFloat3)) {
		if err := s.SetFloat3(name, d.VarFloat3[name]); err != nil {
			return fmt.Errorf("set %s: %w", name, err)
		}
	}
	return nil
}

// Bind pushes closest hit programs, then any hit programs, in list order.
func (d Descriptor) Bind(b ProgramBinder) error {
	for _, p := range d.ClosestHitPrograms {
		if err := b.BindClosestHit(p); err != nil {
			return fmt.Errorf("bind closest hit %s: %w", p, err)
		}
	}
	for _, p := range d.AnyHitPrograms {
		if err := b.BindAnyHit(p); err != nil {
			return fmt.Errorf("bind any hit %s: %w", p, err)
		}
	}
	return nil
}
