// Package mesh implements the indexed triangle mesh the pipeline
// draws: a flat vertex-scalar array, a vertex-index array, the
// geometric center computed at load time, and the scale/rotate/
// translate state the caller mutates between frames to build the
// model matrix.
package mesh

import "github.com/isikkema/rangle/linear"

// Mesh is an indexed triangle mesh plus the affine transform state
// (scale, Euler rotation, translation) a caller mutates between
// frames.
type Mesh struct {
	vertices []float32 // 3 per unique vertex
	indices  []int     // multiple of 3, each < len(vertices)/3
	center   linear.V3

	scale     linear.V3
	rotate    linear.V3 // (yaw, pitch, roll), radians
	translate linear.V3
}

// FromVectors builds a Mesh directly from a flat position array (3
// floats per unique vertex) and a vertex-index array (a multiple of
// 3, each index into the unique-vertex array).
func FromVectors(vertices []float32, indices []int) *Mesh {
	m := &Mesh{
		vertices: vertices,
		indices:  indices,
		scale:    linear.V3{1, 1, 1},
	}
	m.center = computeCenter(vertices)
	return m
}

func computeCenter(vertices []float32) linear.V3 {
	var sum linear.V3
	n := len(vertices) / 3
	if n == 0 {
		return sum
	}
	for i := 0; i < len(vertices); i += 3 {
		sum[0] += vertices[i]
		sum[1] += vertices[i+1]
		sum[2] += vertices[i+2]
	}
	return sum.Scale(1 / float32(n))
}

// Center returns the geometric center computed when the mesh was
// loaded (the mean of its unique vertex positions).
func (m *Mesh) Center() linear.V3 { return m.center }

// Vertices returns the flat unique-vertex position array (3 floats per
// vertex). The caller must not modify the returned slice.
func (m *Mesh) Vertices() []float32 { return m.vertices }

// Indices returns the vertex-index array. The caller must not modify
// the returned slice.
func (m *Mesh) Indices() []int { return m.indices }

// VertexCount returns the number of vertex-indices, i.e. the length
// the vertex stage must be run for (3 per triangle).
func (m *Mesh) VertexCount() int { return len(m.indices) }

// VertexBuffer expands the indexed vertex array into one V3 per
// vertex-index (not per unique vertex), ready to be fed to a shader
// program as a "position" attribute buffer.
func (m *Mesh) VertexBuffer() []linear.V3 {
	buf := make([]linear.V3, len(m.indices))
	for i, idx := range m.indices {
		j := 3 * idx
		buf[i] = linear.V3{m.vertices[j], m.vertices[j+1], m.vertices[j+2]}
	}
	return buf
}

// Scale sets the mesh's per-axis scale factors.
func (m *Mesh) Scale(x, y, z float32) { m.scale = linear.V3{x, y, z} }

// Rotate sets the mesh's Euler rotation (yaw, pitch, roll), in
// radians.
func (m *Mesh) Rotate(yaw, pitch, roll float32) { m.rotate = linear.V3{yaw, pitch, roll} }

// Translate sets the mesh's translation.
func (m *Mesh) Translate(x, y, z float32) { m.translate = linear.V3{x, y, z} }

// ComputeModelMatrix returns translate_rotate_scale . center_translate:
// the mesh is first shifted so its computed center sits at the
// origin, then scaled, rotated and translated by the caller's current
// settings.
func (m *Mesh) ComputeModelMatrix() linear.M4 {
	centerTranslate := linear.Translation(m.center.Scale(-1))
	rotate := linear.RotationZYX(m.rotate[0], m.rotate[1], m.rotate[2])
	translateRotateScale := linear.FromScaleRotationTranslation(m.scale, rotate, m.translate)
	return translateRotateScale.Mul(centerTranslate)
}
