package ptmat

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUnknown(t *testing.T) {
	_, err := Get("nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownPreset)

	var pe *PresetError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "nonexistent", pe.Name)
	assert.Equal(t, "unknown preset: nonexistent", err.Error())

	_, err = Doc("nonexistent")
	assert.ErrorIs(t, err, ErrUnknownPreset)
	_, err = Lookup("nonexistent")
	assert.ErrorIs(t, err, ErrUnknownPreset)
	assert.Panics(t, func() { MustGet("nonexistent") })
}

func TestGetReturnsCopy(t *testing.T) {
	d := MustGet(PresetMetalic)
	d.VarFloat[ParamReflectivityIndex] = 0.1
	d.VarFloat3[ParamSurfaceAlbedo] = Gray(0.5)
	d.ClosestHitPrograms[0].Entry = "changed"

	again := MustGet(PresetMetalic)
	assert.Equal(t, 0.95, again.VarFloat[ParamReflectivityIndex])
	assert.Equal(t, Gray(1), again.VarFloat3[ParamSurfaceAlbedo])
	assert.Equal(t, EntryReflectiveClosestHit, again.ClosestHitPrograms[0].Entry)

	p := Default().Presets()
	p[0].Descriptor.ClosestHitPrograms[0].Entry = "changed"
	assert.Equal(t, EntryFlatClosestHit, MustGet(PresetFlat).ClosestHitPrograms[0].Entry)
}

func TestTableWith(t *testing.T) {
	base := Default()

	gold := MustGet(PresetMetalic)
	gold.VarFloat3[ParamSurfaceAlbedo] = SetFloat3(0.9, 0.7, 0.3)

	ext, err := base.With(Preset{Name: "gold", Doc: "Gold metal.", Descriptor: gold})
	require.NoError(t, err)

	assert.Equal(t, 7, base.Len())
	assert.False(t, base.Has("gold"))
	assert.Equal(t, 8, ext.Len())
	assert.Equal(t, append(base.Names(), "gold"), ext.Names())

	// The table owns its copy.
	gold.VarFloat3[ParamSurfaceAlbedo] = Gray(0)
	got, err := ext.Get("gold")
	require.NoError(t, err)
	assert.Equal(t, SetFloat3(0.9, 0.7, 0.3), got.VarFloat3[ParamSurfaceAlbedo])

	doc, err := ext.Doc("gold")
	require.NoError(t, err)
	assert.Equal(t, "Gold metal.", doc)

	p, err := ext.Lookup(PresetPlastic)
	require.NoError(t, err)
	assert.Equal(t, PresetPlastic, p.Name)
	assert.True(t, p.Descriptor.Equal(MustGet(PresetPlastic)))
}

func TestTableWithRejects(t *testing.T) {
	_, err := Default().With(Preset{Name: PresetMirror, Descriptor: MustGet(PresetMirror)})
	assert.ErrorIs(t, err, ErrDuplicatePreset)

	d := MustGet(PresetDiffuse)
	_, err = NewTable(Preset{Name: "a", Descriptor: d}, Preset{Name: "a", Descriptor: d})
	assert.ErrorIs(t, err, ErrDuplicatePreset)

	_, err = NewTable(Preset{Name: "", Descriptor: d})
	assert.ErrorIs(t, err, ErrInvalidDescriptor)

	_, err = NewTable(Preset{Name: "empty"})
	assert.ErrorIs(t, err, ErrInvalidDescriptor)

	neg := MustGet(PresetDiffuse)
	neg.ClosestHitPrograms[0].RayType = -1
	_, err = NewTable(Preset{Name: "neg", Descriptor: neg})
	require.ErrorIs(t, err, ErrInvalidDescriptor)
	var pe *PresetError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "neg", pe.Name)
}

func TestNilTable(t *testing.T) {
	var tbl *Table
	assert.Equal(t, 0, tbl.Len())
	assert.Nil(t, tbl.Names())
	assert.False(t, tbl.Has(PresetFlat))
	_, err := tbl.Get(PresetFlat)
	assert.ErrorIs(t, err, ErrUnknownPreset)

	ext, err := tbl.With(Preset{Name: "x", Descriptor: MustGet(PresetFlat)})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, ext.Names())
}

func TestTableLogsWarnings(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf)
	l.SetLevel(log.DebugLevel)
	SetLogger(l)
	t.Cleanup(func() { SetLogger(nil) })

	d := MustGet(PresetPlastic)
	d.VarFloat[ParamReflectivityRange] = 3
	_, err := NewTable(Preset{Name: "shiny", Descriptor: d})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "preset validation")
	assert.Contains(t, out, "shiny")
	assert.Contains(t, out, ParamReflectivityRange)
	assert.Contains(t, out, "preset table built")
}

func TestConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, name := range Names() {
				if _, err := Get(name); err != nil {
					t.Error(err)
				}
			}
		}()
	}
	wg.Wait()
}
