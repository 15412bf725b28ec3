package ptmat

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Float3 is a 3-component parameter vector, e.g. a surface albedo color.
type Float3 struct {
	X float64 `json:"X" yaml:"X" toml:"X"` // First component (red)
	Y float64 `json:"Y" yaml:"Y" toml:"Y"` // Second component (green)
	Z float64 `json:"Z" yaml:"Z" toml:"Z"` // Third component (blue)
}

// Clamp01 clamps v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SetFloat3 creates a Float3 from components.
func SetFloat3(x, y, z float64) Float3 {
	return Float3{X: x, Y: y, Z: z}
}

// Gray creates a Float3 with all components set to v.
func Gray(v float64) Float3 {
	return Float3{X: v, Y: v, Z: v}
}

// Float3FromVec converts a mathgl vector.
func Float3FromVec(v mgl64.Vec3) Float3 {
	return Float3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// Vec returns the vector as mgl64.Vec3.
func (f Float3) Vec() mgl64.Vec3 {
	return mgl64.Vec3{f.X, f.Y, f.Z}
}

// Clamp01 clamps every component to [0,1].
func (f Float3) Clamp01() Float3 {
	return Float3{X: Clamp01(f.X), Y: Clamp01(f.Y), Z: Clamp01(f.Z)}
}

// InUnitRange reports whether every component is within [0,1].
func (f Float3) InUnitRange() bool {
	return f.Clamp01() == f
}

// NonNegative reports whether every component is >= 0.
func (f Float3) NonNegative() bool {
	return f.X >= 0 && f.Y >= 0 && f.Z >= 0
}

// HasNaN reports whether any component is NaN.
func (f Float3) HasNaN() bool {
	return math.IsNaN(f.X) || math.IsNaN(f.Y) || math.IsNaN(f.Z)
}

// ApproxEqual compares components with the mathgl default epsilon.
func (f Float3) ApproxEqual(o Float3) bool {
	return f.Vec().ApproxEqual(o.Vec())
}

// ToArray converts the vector to a float array.
func (f Float3) ToArray() []float64 {
	return []float64{f.X, f.Y, f.Z}
}
