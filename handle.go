package rangle

import (
	"github.com/isikkema/rangle/mesh"
	"github.com/isikkema/rangle/shader"
)

// Handle is what AddModel hands back to the caller: the same mesh and
// shader the pipeline registered, shared by pointer. The caller may
// mutate Mesh (scale/rotate/translate) or Shader (uniforms) between
// frames; RenderScene only ever reads them, so no synchronization is
// needed as long as mutation never happens while RenderScene is
// running (the single-threaded cooperative discipline the pipeline
// assumes throughout).
type Handle struct {
	Mesh   *mesh.Mesh
	Shader *shader.Program
}

// drawCall is the pipeline's own record of a registered Handle.
type drawCall struct {
	mesh   *mesh.Mesh
	shader *shader.Program
}
