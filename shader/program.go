package shader

import "errors"

const progPrefix = "shader: "

// ErrDuplicateAttribute is returned by Program.AddAttribute when the
// given name has already been registered.
var ErrDuplicateAttribute = errors.New(progPrefix + "duplicate attribute name")

// VertexFunc runs once per vertex index. It receives that vertex's
// attributes (one element read from each registered buffer) plus the
// draw's uniforms, and must return attrs with PositionKey set to a
// Vec4 clip-space position.
type VertexFunc func(attrs, uniforms Map) Map

// FragmentFunc runs once per surviving fragment. It receives the
// interpolated attribute map plus the draw's uniforms and returns an
// RGBA color; components outside [0,1] are clamped by the rasterizer,
// not by the fragment function.
type FragmentFunc func(attrs, uniforms Map) Value

// Program pairs a vertex and a fragment function with the named
// per-vertex attribute buffers and uniforms a single draw call needs.
// It holds no per-frame state: everything a fragment sees was put
// there by the vertex function for that same vertex.
type Program struct {
	vertex   VertexFunc
	fragment FragmentFunc
	buffers  map[string][]Value
	uniforms Map
}

// NewProgram builds a Program from a vertex and a fragment function.
func NewProgram(vertex VertexFunc, fragment FragmentFunc) *Program {
	return &Program{
		vertex:   vertex,
		fragment: fragment,
		buffers:  make(map[string][]Value),
		uniforms: make(Map),
	}
}

// AddAttribute registers a named per-vertex buffer. It fails with
// ErrDuplicateAttribute if name is already registered.
func (p *Program) AddAttribute(name string, values []Value) error {
	if _, ok := p.buffers[name]; ok {
		return ErrDuplicateAttribute
	}
	p.buffers[name] = values
	return nil
}

// SetUniform inserts or overwrites the uniform under name. It never
// fails: overwriting an existing uniform is the contract.
func (p *Program) SetUniform(name string, v Value) {
	p.uniforms[name] = v
}

// RunVertex builds the attribute map for vertex-index i by reading
// element i of every registered buffer, then runs the vertex function.
// Every buffer must have length > i and all buffers must agree in
// length; violating that is a fatal programmer error, as is the
// vertex function failing to leave a Vec4 under PositionKey.
func (p *Program) RunVertex(i int) Map {
	attrs := make(Map, len(p.buffers))
	n := -1
	for name, buf := range p.buffers {
		if n < 0 {
			n = len(buf)
		} else if len(buf) != n {
			panic(progPrefix + "attribute buffer " + name + " differs in length from the other attribute buffers")
		}
		if i >= len(buf) {
			panic(progPrefix + "attribute buffer " + name + " is shorter than the vertex index being run")
		}
		attrs[name] = buf[i]
	}
	out := p.vertex(attrs, p.uniforms)
	out.Position() // enforce the post-condition; panics if violated
	return out
}

// RunFragment invokes the fragment function on the interpolated
// attribute map.
func (p *Program) RunFragment(attrs Map) Value {
	return p.fragment(attrs, p.uniforms)
}
