package ptmat

import "strings"

// ValidateOptions controls validation rules.
type ValidateOptions struct {
	// KnownModules extends the modules accepted without a warning.
	// ProgramModule is always accepted.
	KnownModules []string
	// KnownEntryPoints extends the entry points accepted without a warning.
	// The built-in entry points of ProgramModule are always accepted.
	KnownEntryPoints []string
	// DisableModuleCheck disables validation of program module names.
	DisableModuleCheck bool
	// DisableEntryPointCheck disables validation of entry point names
	// against the built-in list and KnownEntryPoints.
	DisableEntryPointCheck bool
	// DisableRangeCheck disables the documented value range checks.
	// NaN values are reported regardless.
	DisableRangeCheck bool
}

// Format is an encoding format for descriptors.
type Format string

const (
	// FormatJSON is the layout accepted by the native material setup call.
	FormatJSON Format = "json"
	// FormatYAML encodes descriptors as YAML documents.
	FormatYAML Format = "yaml"
	// FormatTOML encodes descriptors as TOML documents.
	FormatTOML Format = "toml"
)

// EncodeOptions controls Marshal and Unmarshal.
type EncodeOptions struct {
	// Format selects the encoding (default is FormatJSON).
	Format Format
	// Indent is the JSON indentation string (default is compact output).
	Indent string
	// Validate holds rules applied by Unmarshal.
	Validate *ValidateOptions
	// DisableValidation skips validation in Unmarshal.
	DisableValidation bool
	// Strict rejects unknown keys in Unmarshal.
	Strict bool
}

// normalize normalizes the ValidateOptions.
func (o *ValidateOptions) normalize() ValidateOptions {
	if o == nil {
		return ValidateOptions{}
	}

	return *o
}

// normalize normalizes the EncodeOptions.
func (o *EncodeOptions) normalize() EncodeOptions {
	if o == nil {
		return EncodeOptions{Format: FormatJSON}
	}

	out := *o
	out.Format = Format(strings.ToLower(strings.TrimSpace(string(out.Format))))
	if out.Format == "" {
		out.Format = FormatJSON
	}

	return out
}
