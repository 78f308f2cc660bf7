package shader

import (
	"github.com/isikkema/rangle/linear"
	"github.com/isikkema/rangle/mesh"
)

// mvpVertex is the vertex function every preset shares: lift the
// "position" Vec3 attribute into clip space via the "mvpMatrix"
// uniform, leaving every other attribute untouched.
func mvpVertex(attrs, uniforms Map) Map {
	pos := attrs["position"].Vec3()
	mvp := uniforms["mvpMatrix"].Mat4()
	out := attrs.Clone()
	out[PositionKey] = NewVec4(linear.NewV4(pos, 1).MulM4(mvp))
	return out
}

// colorFragment is the fragment function every preset shares: forward
// the interpolated "color" attribute as-is.
func colorFragment(attrs, _ Map) Value {
	return attrs["color"]
}

func positionBuffer(m *mesh.Mesh) []Value {
	vb := m.VertexBuffer()
	buf := make([]Value, len(vb))
	for i, v := range vb {
		buf[i] = NewVec3(v)
	}
	return buf
}

// SolidPreset builds a Program that paints every vertex of m the same
// flat color.
func SolidPreset(m *mesh.Mesh, color linear.V4, mvp linear.M4) (*Program, error) {
	p := NewProgram(mvpVertex, colorFragment)
	if err := p.AddAttribute("position", positionBuffer(m)); err != nil {
		return nil, err
	}
	colors := make([]Value, m.VertexCount())
	for i := range colors {
		colors[i] = NewVec4(color)
	}
	if err := p.AddAttribute("color", colors); err != nil {
		return nil, err
	}
	p.SetUniform("mvpMatrix", NewMat4(mvp))
	return p, nil
}

// NormalPreset builds a Program that colors each triangle by its
// face normal: (v1-v0) x (v2-v1), taken component-wise absolute and
// normalized, then lifted to an opaque RGBA color. All three vertices
// of a triangle share its face normal, so the result is flat-shaded
// per face rather than smoothly interpolated.
func NormalPreset(m *mesh.Mesh, mvp linear.M4) (*Program, error) {
	p := NewProgram(mvpVertex, colorFragment)
	if err := p.AddAttribute("position", positionBuffer(m)); err != nil {
		return nil, err
	}

	vb := m.VertexBuffer()
	colors := make([]Value, len(vb))
	for i := 0; i+2 < len(vb); i += 3 {
		v0, v1, v2 := vb[i], vb[i+1], vb[i+2]
		normal := v1.Sub(v0).Cross(v2.Sub(v1)).Abs().Norm()
		c := NewVec4(linear.NewV4(normal, 1))
		colors[i], colors[i+1], colors[i+2] = c, c, c
	}
	if err := p.AddAttribute("color", colors); err != nil {
		return nil, err
	}
	p.SetUniform("mvpMatrix", NewMat4(mvp))
	return p, nil
}
