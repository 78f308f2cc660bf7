// Package linear implements the vector and matrix math the rasterizer
// needs: column-major matrices, value-returning vector ops, and the
// transform constructors (perspective, look-at, TRS) used to build a
// model-view-projection matrix.
package linear

import "math"

// V2 is a 2-component vector of float32.
type V2 [2]float32

// Add returns v + w.
func (v V2) Add(w V2) V2 { return V2{v[0] + w[0], v[1] + w[1]} }

// Sub returns v - w.
func (v V2) Sub(w V2) V2 { return V2{v[0] - w[0], v[1] - w[1]} }

// Scale returns v scaled by s.
func (v V2) Scale(s float32) V2 { return V2{v[0] * s, v[1] * s} }

// V3 is a 3-component vector of float32.
type V3 [3]float32

// Add returns v + w.
func (v V3) Add(w V3) V3 { return V3{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }

// Sub returns v - w.
func (v V3) Sub(w V3) V3 { return V3{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }

// Scale returns v scaled by s.
func (v V3) Scale(s float32) V3 { return V3{v[0] * s, v[1] * s, v[2] * s} }

// Dot returns v . w.
func (v V3) Dot(w V3) float32 { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] }

// Len returns the length of v.
func (v V3) Len() float32 { return float32(math.Sqrt(float64(v.Dot(v)))) }

// Norm returns v normalized. The zero vector is returned unchanged.
func (v V3) Norm() V3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Cross returns v x w.
func (v V3) Cross(w V3) V3 {
	return V3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Abs returns the component-wise absolute value of v.
func (v V3) Abs() V3 {
	return V3{
		float32(math.Abs(float64(v[0]))),
		float32(math.Abs(float64(v[1]))),
		float32(math.Abs(float64(v[2]))),
	}
}

// MulM3 returns m . v.
func (v V3) MulM3(m M3) V3 {
	var r V3
	for i := range r {
		for j := range r {
			r[i] += m[j][i] * v[j]
		}
	}
	return r
}

// V4 is a 4-component vector of float32.
type V4 [4]float32

// NewV4 builds a V4 from a V3 and a w component, mirroring the
// "(position, 1.0).into()" pattern shaders use to lift a position to
// homogeneous coordinates.
func NewV4(v V3, w float32) V4 { return V4{v[0], v[1], v[2], w} }

// XYZ drops the w component.
func (v V4) XYZ() V3 { return V3{v[0], v[1], v[2]} }

// XY drops the z and w components.
func (v V4) XY() V2 { return V2{v[0], v[1]} }

// Add returns v + w.
func (v V4) Add(w V4) V4 {
	return V4{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// Sub returns v - w.
func (v V4) Sub(w V4) V4 {
	return V4{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

// Scale returns v scaled by s.
func (v V4) Scale(s float32) V4 {
	return V4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// DivScalar returns v with every component divided by s.
func (v V4) DivScalar(s float32) V4 {
	return V4{v[0] / s, v[1] / s, v[2] / s, v[3] / s}
}

// Clamp returns v with every component clamped to [lo, hi].
func (v V4) Clamp(lo, hi float32) V4 {
	c := v
	for i := range c {
		if c[i] < lo {
			c[i] = lo
		} else if c[i] > hi {
			c[i] = hi
		}
	}
	return c
}

// MulM4 returns m . v.
func (v V4) MulM4(m M4) V4 {
	var r V4
	for i := range r {
		for j := range r {
			r[i] += m[j][i] * v[j]
		}
	}
	return r
}
