package ptmat

import "errors"

var (
	// ErrUnknownPreset indicates a lookup of a preset name that is not registered.
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrInvalidDescriptor indicates a malformed descriptor or program reference.
	ErrInvalidDescriptor = errors.New("invalid descriptor")

	// ErrDuplicatePreset indicates a preset name registered twice in one table.
	ErrDuplicatePreset = errors.New("duplicate preset")

	// ErrDecode indicates a descriptor could not be decoded.
	ErrDecode = errors.New("decode error")

	// ErrUnsupportedFormat indicates an unknown encoding format.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// PresetError reports a failure tied to a preset name.
type PresetError struct {
	Name string // Preset name
	Err  error  // Underlying error, one of the sentinels above
}

// Error implements the error interface.
func (e *PresetError) Error() string {
	if e.Name == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Name
}

// Unwrap returns the underlying error.
func (e *PresetError) Unwrap() error { return e.Err }
