package ptmat

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Marshal encodes a descriptor.
//
// FormatJSON output uses the key layout the native material setup call
// accepts: ClosestHitPrograms, AnyHitPrograms, VarInt, VarFloat, VarFloat3.
func Marshal(d Descriptor, opt *EncodeOptions) ([]byte, error) {
	eopt := opt.normalize()

	switch eopt.Format {
	case FormatJSON:
		if eopt.Indent != "" {
			return json.MarshalIndent(d, "", eopt.Indent)
		}
		return json.Marshal(d)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatTOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(d); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, eopt.Format)
	}
}

// Unmarshal decodes and validates a descriptor.
func Unmarshal(data []byte, opt *EncodeOptions) (Descriptor, error) {
	eopt := opt.normalize()

	var d Descriptor
	var err error
	switch eopt.Format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if eopt.Strict {
			dec.DisallowUnknownFields()
		}
		err = dec.Decode(&d)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(eopt.Strict)
		err = dec.Decode(&d)
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		if eopt.Strict {
			dec.DisallowUnknownFields()
		}
		err = dec.Decode(&d)
	default:
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, eopt.Format)
	}
	if err != nil {
		return Descriptor{}, fmt.Errorf("%w: %s: %w", ErrDecode, eopt.Format, err)
	}

	if !eopt.DisableValidation {
		issues := Validate(&d, eopt.Validate)
		if err := invalidError("", issues); err != nil {
			return Descriptor{}, err
		}
	}

	return d, nil
}

// ToMap converts a descriptor to a generic key-value structure using the
// JSON key layout. Program references become strings, numbers json.Number.
func ToMap(d Descriptor) (map[string]any, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// FromMap reconstructs a descriptor from a structure produced by ToMap or
// any equivalent map, e.g. one decoded from JSON. The result is not validated.
func FromMap(m map[string]any) (Descriptor, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return Descriptor{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	var d Descriptor
	if err := json.Unmarshal(b, &d); err != nil {
		return Descriptor{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return d, nil
}
