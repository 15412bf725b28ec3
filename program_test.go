package ptmat

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProgramRef(t *testing.T) {
	p, err := ParseProgramRef(" 0::path_tracing_materials.ptx::diffuse_closest_hit ")
	require.NoError(t, err)
	assert.Equal(t, RayPrimary, p.RayType)
	assert.Equal(t, ProgramModule, p.Module)
	assert.Equal(t, EntryDiffuseClosestHit, p.Entry)
	assert.True(t, p.IsBuiltin())
	assert.Equal(t, "0::path_tracing_materials.ptx::diffuse_closest_hit", p.String())
	assert.Equal(t, NewProgram(RayPrimary, EntryDiffuseClosestHit), p)
}

func TestParseProgramRefInvalid(t *testing.T) {
	tests := []string{
		"",
		"0::mod",
		"0::mod::entry::extra",
		"x::mod::entry",
		"+1::mod::entry",
		"-1::mod::entry",
		"16::mod::entry",
		"0::::entry",
		"0::mod::",
		"0::my mod::entry",
		"0::mod:x::entry",
	}
	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseProgramRef(raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDescriptor))
		})
	}
}

func TestMustParseProgramRefPanics(t *testing.T) {
	assert.Panics(t, func() { MustParseProgramRef("bogus") })
	assert.NotPanics(t, func() { MustParseProgramRef("15::m::e") })
}

func TestProgramRefText(t *testing.T) {
	in := []ProgramRef{NewProgram(RayPrimary, EntryGlassClosestHit), NewProgram(RayShadow, EntryAnyHit)}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `["0::path_tracing_materials.ptx::glass_closest_hit","1::path_tracing_materials.ptx::any_hit"]`, string(b))

	var out []ProgramRef
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)

	var bad ProgramRef
	err = json.Unmarshal([]byte(`"1::any_hit"`), &bad)
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
}
