package ptmat

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// IssueLevel represents severity of validation issue.
type IssueLevel string

const (
	// IssueError indicates a validation error.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a validation warning.
	IssueWarning IssueLevel = "warning"
)

// Issue codes.
const (
	CodeNoClosestHit      = "no_closest_hit"
	CodeInvalidProgram    = "invalid_program"
	CodeDuplicateRayType  = "duplicate_ray_type"
	CodeUnknownModule     = "unknown_module"
	CodeUnknownEntryPoint = "unknown_entry_point"
	CodeOutOfRange        = "out_of_range"
	CodeNaNValue          = "nan_value"
	CodeEmptyParamName    = "empty_param_name"
)

// Issue represents a validation issue.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" yaml:"message"`               // Issue message
	Path    string     `json:"path,omitempty" yaml:"path,omitempty"` // Path to the affected field
}

// String formats the issue for logs and error messages.
func (i Issue) String() string {
	if i.Path == "" {
		return string(i.Level) + ": " + i.Message
	}
	return string(i.Level) + ": " + i.Path + ": " + i.Message
}

// HasErrors reports whether any issue has IssueError level.
func HasErrors(issues []Issue) bool {
	for _, is := range issues {
		if is.Level == IssueError {
			return true
		}
	}
	return false
}

// knownEntryPoints lists the entry points exported by ProgramModule.
var knownEntryPoints = map[string]struct{}{
	EntryFlatClosestHit:       {},
	EntryCosClosestHit:        {},
	EntryDiffuseClosestHit:    {},
	EntryReflectiveClosestHit: {},
	EntryGlassClosestHit:      {},
	EntryAnyHit:               {},
}

// unboundedFloats are scalar parameters documented as <0; inf>.
var unboundedFloats = map[string]struct{}{
	ParamRefractionIndex: {},
	ParamRadiationLength: {},
}

// Validate validates a descriptor and returns issues.
func Validate(d *Descriptor, opt *ValidateOptions) []Issue {
	vopt := opt.normalize()
	if d == nil {
		return []Issue{{Level: IssueError, Code: CodeNoClosestHit, Message: "descriptor is nil"}}
	}

	var out []Issue
	if len(d.ClosestHitPrograms) == 0 {
		out = append(out, Issue{Level: IssueError, Code: CodeNoClosestHit, Message: "at least one closest hit program required", Path: "ClosestHitPrograms"})
	}
	out = append(out, validatePrograms("ClosestHitPrograms", d.ClosestHitPrograms, vopt)...)
	out = append(out, validatePrograms("AnyHitPrograms", d.AnyHitPrograms, vopt)...)

	if _, ok := d.VarInt[""]; ok {
		out = append(out, Issue{Level: IssueWarning, Code: CodeEmptyParamName, Message: "empty parameter name", Path: "VarInt"})
	}

	for _, name := range slices.Sorted(maps.Keys(d.VarFloat)) {
		path := "VarFloat." + name
		if name == "" {
			out = append(out, Issue{Level: IssueWarning, Code: CodeEmptyParamName, Message: "empty parameter name", Path: "VarFloat"})
		}
		v := d.VarFloat[name]
		if math.IsNaN(v) {
			out = append(out, Issue{Level: IssueError, Code: CodeNaNValue, Message: "value is NaN", Path: path})
			continue
		}
		if vopt.DisableRangeCheck {
			continue
		}
		if _, ok := unboundedFloats[name]; ok {
			if v < 0 {
				out = append(out, rangeIssue(path, v, "<0; inf>"))
			}
			continue
		}
		if v != Clamp01(v) {
			out = append(out, rangeIssue(path, v, "<0; 1>"))
		}
	}

	// Refractive materials use the color as attenuation length.
	attenuation := d.Flags().Has(FlagRefraction)
	for _, name := range slices.Sorted(maps.Keys(d.VarFloat3)) {
		path := "VarFloat3." + name
		if name == "" {
			out = append(out, Issue{Level: IssueWarning, Code: CodeEmptyParamName, Message: "empty parameter name", Path: "VarFloat3"})
		}
		v := d.VarFloat3[name]
		if v.HasNaN() {
			out = append(out, Issue{Level: IssueError, Code: CodeNaNValue, Message: "component is NaN", Path: path})
			continue
		}
		if vopt.DisableRangeCheck {
			continue
		}
		if attenuation && name == ParamSurfaceAlbedo {
			if !v.NonNegative() {
				out = append(out, rangeIssue(path, v, "<0; inf>"))
			}
			continue
		}
		if !v.InUnitRange() {
			out = append(out, rangeIssue(path, v, "<0; 1>"))
		}
	}

	return out
}

// validatePrograms validates one program list.
func validatePrograms(field string, list []ProgramRef, vopt ValidateOptions) []Issue {
	var out []Issue
	seen := make(map[RayType]struct{}, len(list))
	for i, p := range list {
		path := fmt.Sprintf("%s[%d]", field, i)
		if err := p.check(); err != nil {
			out = append(out, Issue{Level: IssueError, Code: CodeInvalidProgram, Message: err.Error(), Path: path})
			continue
		}
		if _, ok := seen[p.RayType]; ok {
			out = append(out, Issue{Level: IssueError, Code: CodeDuplicateRayType, Message: fmt.Sprintf("ray type %d bound twice", p.RayType), Path: path})
		}
		seen[p.RayType] = struct{}{}

		if !vopt.DisableModuleCheck && p.Module != ProgramModule && !slices.Contains(vopt.KnownModules, p.Module) {
			out = append(out, Issue{Level: IssueWarning, Code: CodeUnknownModule, Message: "unknown program module", Path: path + ": " + p.Module})
		}
		if !vopt.DisableEntryPointCheck && !isKnownEntryPoint(p.Entry, vopt.KnownEntryPoints) {
			out = append(out, Issue{Level: IssueWarning, Code: CodeUnknownEntryPoint, Message: "unknown entry point", Path: path + ": " + p.Entry})
		}
	}
	return out
}

// isKnownEntryPoint checks the built-in list, then the extra names.
func isKnownEntryPoint(entry string, extra []string) bool {
	if _, ok := knownEntryPoints[entry]; ok {
		return true
	}
	return slices.Contains(extra, entry)
}

// rangeIssue builds an out of range warning.
func rangeIssue(path string, v any, want string) Issue {
	return Issue{Level: IssueWarning, Code: CodeOutOfRange, Message: fmt.Sprintf("value %v outside %s", v, want), Path: path}
}

// invalidError converts error issues into an ErrInvalidDescriptor error.
func invalidError(name string, issues []Issue) error {
	for _, is := range issues {
		if is.Level == IssueError {
			return &PresetError{Name: name, Err: fmt.Errorf("%w: %s", ErrInvalidDescriptor, is)}
		}
	}
	return nil
}
