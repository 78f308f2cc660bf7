// Package rangle implements a CPU software rasterizer: vertex
// invocation, primitive assembly, rasterization, fragment invocation
// and the depth test, wired together by Pipeline.RenderScene. It is
// modeled on a fixed-function OpenGL-style graphics stack but exposes
// its own programmable vertex and fragment stages via package shader.
package rangle

import "errors"

const pipelinePrefix = "rangle: "

// ErrDisplayBackend wraps a failure reported by a Display
// implementation's DrawBuffer.
var ErrDisplayBackend = errors.New(pipelinePrefix + "display backend error")

// Mode selects which primitive kind primitive assembly emits for each
// consecutive triple of vertex-indices.
type Mode int

const (
	// Triangles emits one filled triangle per index-triple.
	Triangles Mode = iota
	// Lines emits the triangle's three edges as line primitives.
	Lines
	// Points emits the triangle's three vertices as point primitives.
	Points
)
