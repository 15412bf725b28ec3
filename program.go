package ptmat

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// RayType selects the ray slot a program binds to.
type RayType int

const (
	// RayPrimary is the ray type of camera and path segment rays.
	RayPrimary RayType = 0
	// RayShadow is the ray type of shadow and occlusion rays.
	RayShadow RayType = 1
)

// MaxRayType is the highest ray type index a program may bind to.
const MaxRayType RayType = 15

// ProgramModule is the compiled program module holding all built-in entry points.
const ProgramModule = "path_tracing_materials.ptx"

// Entry points exported by ProgramModule.
const (
	EntryFlatClosestHit       = "flat_closest_hit"
	EntryCosClosestHit        = "cos_closest_hit"
	EntryDiffuseClosestHit    = "diffuse_closest_hit"
	EntryReflectiveClosestHit = "reflective_closest_hit"
	EntryGlassClosestHit      = "glass_closest_hit"
	EntryAnyHit               = "any_hit"
)

// programSep separates the parts of a program reference.
const programSep = "::"

// ProgramRef references a shader program entry point bound to a ray type.
//
// Text form: "<ray-type>::<module>::<entry-point>", e.g.
// "0::path_tracing_materials.ptx::diffuse_closest_hit".
type ProgramRef struct {
	Module  string  // Program module
	Entry   string  // Entry point name
	RayType RayType // Ray slot the program binds to
}

// NewProgram creates a reference to an entry point of ProgramModule.
func NewProgram(rt RayType, entry string) ProgramRef {
	return ProgramRef{RayType: rt, Module: ProgramModule, Entry: entry}
}

// ParseProgramRef parses a program reference string.
func ParseProgramRef(raw string) (ProgramRef, error) {
	raw = strings.TrimSpace(raw)

	parts := strings.Split(raw, programSep)
	if len(parts) != 3 {
		return ProgramRef{}, fmt.Errorf("%w: program reference %q: want <ray-type>::<module>::<entry>", ErrInvalidDescriptor, raw)
	}

	n, err := strconv.Atoi(parts[0])
	if err == nil && strings.HasPrefix(parts[0], "+") {
		err = fmt.Errorf("unexpected sign in %q", parts[0])
	}
	if err != nil {
		return ProgramRef{}, fmt.Errorf("%w: program reference %q: ray type: %v", ErrInvalidDescriptor, raw, err)
	}

	p := ProgramRef{RayType: RayType(n), Module: parts[1], Entry: parts[2]}
	if err := p.check(); err != nil {
		return ProgramRef{}, fmt.Errorf("%w: program reference %q: %v", ErrInvalidDescriptor, raw, err)
	}

	return p, nil
}

// MustParseProgramRef is like ParseProgramRef but panics on error.
func MustParseProgramRef(raw string) ProgramRef {
	p, err := ParseProgramRef(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the canonical text form.
func (p ProgramRef) String() string {
	var b strings.Builder
	b.Grow(len(p.Module) + len(p.Entry) + 2*len(programSep) + 2)
	b.WriteString(strconv.Itoa(int(p.RayType)))
	b.WriteString(programSep)
	b.WriteString(p.Module)
	b.WriteString(programSep)
	b.WriteString(p.Entry)
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (p ProgramRef) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *ProgramRef) UnmarshalText(text []byte) error {
	v, err := ParseProgramRef(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// IsBuiltin reports whether the reference targets ProgramModule.
func (p ProgramRef) IsBuiltin() bool { return p.Module == ProgramModule }

// check validates the structural parts of a reference.
func (p ProgramRef) check() error {
	if p.RayType < 0 || p.RayType > MaxRayType {
		return fmt.Errorf("ray type %d out of range [0,%d]", p.RayType, MaxRayType)
	}
	if !isProgramToken(p.Module) {
		return fmt.Errorf("bad module name %q", p.Module)
	}
	if !isProgramToken(p.Entry) {
		return fmt.Errorf("bad entry point %q", p.Entry)
	}
	return nil
}

// isProgramToken reports whether s is a non-empty name without spaces or separators.
func isProgramToken(s string) bool {
	if s == "" || strings.Contains(s, ":") {
		return false
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
