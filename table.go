package ptmat

import (
	"fmt"
	"slices"
	"sync"
)

// Table is an immutable set of presets keyed by name.
//
// A Table is never modified after construction, so it is safe for
// concurrent use without locking. Lookups return deep copies.
type Table struct {
	byName map[string]int // Preset index by name
	items  []Preset       // Presets in declaration order
}

// NewTable builds a table from presets. Names must be unique and every
// descriptor must pass Validate without error-level issues. Warnings are logged.
func NewTable(presets ...Preset) (*Table, error) {
	return (&Table{}).With(presets...)
}

// With returns a new table holding the receiver's presets followed by presets.
// The receiver is left untouched.
func (t *Table) With(presets ...Preset) (*Table, error) {
	n := t.Len() + len(presets)
	out := &Table{
		byName: make(map[string]int, n),
		items:  make([]Preset, 0, n),
	}
	if t != nil {
		for _, p := range t.items {
			out.add(p)
		}
	}

	l := getLogger()
	for _, p := range presets {
		if p.Name == "" {
			return nil, &PresetError{Name: p.Name, Err: fmt.Errorf("%w: empty preset name", ErrInvalidDescriptor)}
		}
		if _, ok := out.byName[p.Name]; ok {
			return nil, &PresetError{Name: p.Name, Err: ErrDuplicatePreset}
		}

		issues := Validate(&p.Descriptor, nil)
		if err := invalidError(p.Name, issues); err != nil {
			return nil, err
		}
		for _, is := range issues {
			l.Warn("preset validation", "preset", p.Name, "issue", is.String())
		}

		out.add(Preset{Name: p.Name, Doc: p.Doc, Descriptor: p.Descriptor.Clone()})
	}

	l.Debug("preset table built", "presets", len(out.items))
	return out, nil
}

// add appends a preset already known to be valid and unique.
func (t *Table) add(p Preset) {
	t.byName[p.Name] = len(t.items)
	t.items = append(t.items, p)
}

// Len returns the number of presets.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.items)
}

// Get returns a copy of the named descriptor.
func (t *Table) Get(name string) (Descriptor, error) {
	p, err := t.Lookup(name)
	if err != nil {
		return Descriptor{}, err
	}
	return p.Descriptor, nil
}

// Lookup returns a copy of the named preset, documentation included.
func (t *Table) Lookup(name string) (Preset, error) {
	if t != nil {
		if i, ok := t.byName[name]; ok {
			p := t.items[i]
			p.Descriptor = p.Descriptor.Clone()
			return p, nil
		}
	}
	return Preset{}, &PresetError{Name: name, Err: ErrUnknownPreset}
}

// Has reports whether name is registered.
func (t *Table) Has(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.byName[name]
	return ok
}

// Doc returns the documentation of the named preset.
func (t *Table) Doc(name string) (string, error) {
	if t != nil {
		if i, ok := t.byName[name]; ok {
			return t.items[i].Doc, nil
		}
	}
	return "", &PresetError{Name: name, Err: ErrUnknownPreset}
}

// Names returns all preset names in declaration order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.items))
	for i, p := range t.items {
		out[i] = p.Name
	}
	return out
}

// SortedNames returns all preset names in alphabetical order.
func (t *Table) SortedNames() []string {
	out := t.Names()
	slices.Sort(out)
	return out
}

// Presets returns copies of all presets in declaration order.
func (t *Table) Presets() []Preset {
	if t == nil {
		return nil
	}
	out := make([]Preset, len(t.items))
	for i, p := range t.items {
		p.Descriptor = p.Descriptor.Clone()
		out[i] = p
	}
	return out
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the table of built-in presets.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := NewTable(builtinPresets()...)
		if err != nil {
			panic("ptmat: built-in presets: " + err.Error())
		}
		defaultTable = t
	})
	return defaultTable
}

// Get returns a copy of the named built-in descriptor.
func Get(name string) (Descriptor, error) { return Default().Get(name) }

// MustGet is like Get but panics on error.
func MustGet(name string) Descriptor {
	d, err := Get(name)
	if err != nil {
		panic(err)
	}
	return d
}

// Lookup returns a copy of the named built-in preset.
func Lookup(name string) (Preset, error) { return Default().Lookup(name) }

// Doc returns the documentation of the named built-in preset.
func Doc(name string) (string, error) { return Default().Doc(name) }

// Names returns the built-in preset names in declaration order.
func Names() []string { return Default().Names() }
