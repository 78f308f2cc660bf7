// Package shader implements the pipeline's programmable stages: the
// tagged Value type carried through vertex and fragment functions, the
// keyed attribute Map passed between stages, and the Program that
// binds a pair of user functions to named per-vertex attribute buffers
// and uniforms.
package shader

import (
	"fmt"

	"github.com/isikkema/rangle/linear"
)

// Kind identifies the variant a Value holds.
type Kind int

const (
	Float Kind = iota
	Vec2
	Vec3
	Vec4
	Mat2
	Mat3
	Mat4
)

// String names the kind, used in panic messages for mismatches.
func (k Kind) String() string {
	switch k {
	case Float:
		return "Float"
	case Vec2:
		return "Vec2"
	case Vec3:
		return "Vec3"
	case Vec4:
		return "Vec4"
	case Mat2:
		return "Mat2"
	case Mat3:
		return "Mat3"
	case Mat4:
		return "Mat4"
	default:
		return "Kind(?)"
	}
}

// Value is a tagged numeric variant: a scalar, a 2/3/4-vector, or a
// 2x2/3x3/4x4 matrix. It is copyable by value and carries enough
// arithmetic (Add, Scale) to support attribute interpolation.
type Value struct {
	kind Kind
	f    float32
	v2   linear.V2
	v3   linear.V3
	v4   linear.V4
	m2   linear.M2
	m3   linear.M3
	m4   linear.M4
}

// NewFloat builds a Float value.
func NewFloat(f float32) Value { return Value{kind: Float, f: f} }

// NewVec2 builds a Vec2 value.
func NewVec2(v linear.V2) Value { return Value{kind: Vec2, v2: v} }

// NewVec3 builds a Vec3 value.
func NewVec3(v linear.V3) Value { return Value{kind: Vec3, v3: v} }

// NewVec4 builds a Vec4 value.
func NewVec4(v linear.V4) Value { return Value{kind: Vec4, v4: v} }

// NewMat2 builds a Mat2 value.
func NewMat2(m linear.M2) Value { return Value{kind: Mat2, m2: m} }

// NewMat3 builds a Mat3 value.
func NewMat3(m linear.M3) Value { return Value{kind: Mat3, m3: m} }

// NewMat4 builds a Mat4 value.
func NewMat4(m linear.M4) Value { return Value{kind: Mat4, m4: m} }

// Kind reports the variant v holds.
func (v Value) Kind() Kind { return v.kind }

// Float returns the held scalar. It panics if v does not hold a Float;
// a type mismatch here is a programmer error, not a recoverable one.
func (v Value) Float() float32 {
	v.mustBe(Float)
	return v.f
}

// Vec2 returns the held 2-vector. Panics on a kind mismatch.
func (v Value) Vec2() linear.V2 {
	v.mustBe(Vec2)
	return v.v2
}

// Vec3 returns the held 3-vector. Panics on a kind mismatch.
func (v Value) Vec3() linear.V3 {
	v.mustBe(Vec3)
	return v.v3
}

// Vec4 returns the held 4-vector. Panics on a kind mismatch.
func (v Value) Vec4() linear.V4 {
	v.mustBe(Vec4)
	return v.v4
}

// Mat2 returns the held 2x2 matrix. Panics on a kind mismatch.
func (v Value) Mat2() linear.M2 {
	v.mustBe(Mat2)
	return v.m2
}

// Mat3 returns the held 3x3 matrix. Panics on a kind mismatch.
func (v Value) Mat3() linear.M3 {
	v.mustBe(Mat3)
	return v.m3
}

// Mat4 returns the held 4x4 matrix. Panics on a kind mismatch.
func (v Value) Mat4() linear.M4 {
	v.mustBe(Mat4)
	return v.m4
}

func (v Value) mustBe(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("shader: value holds %s, not %s", v.kind, k))
	}
}

// Add returns v + w. Both values must hold the same kind; a mismatch
// is a fatal programmer error, per the interpolation invariant.
func (v Value) Add(w Value) Value {
	if v.kind != w.kind {
		panic(fmt.Sprintf("shader: Add kind mismatch: %s vs %s", v.kind, w.kind))
	}
	switch v.kind {
	case Float:
		return NewFloat(v.f + w.f)
	case Vec2:
		return NewVec2(v.v2.Add(w.v2))
	case Vec3:
		return NewVec3(v.v3.Add(w.v3))
	case Vec4:
		return NewVec4(v.v4.Add(w.v4))
	default:
		panic(fmt.Sprintf("shader: Add not supported for %s", v.kind))
	}
}

// Scale returns v scaled by s.
func (v Value) Scale(s float32) Value {
	switch v.kind {
	case Float:
		return NewFloat(v.f * s)
	case Vec2:
		return NewVec2(v.v2.Scale(s))
	case Vec3:
		return NewVec3(v.v3.Scale(s))
	case Vec4:
		return NewVec4(v.v4.Scale(s))
	default:
		panic(fmt.Sprintf("shader: Scale not supported for %s", v.kind))
	}
}
