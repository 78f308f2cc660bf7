package rangle

import (
	"testing"

	"github.com/isikkema/rangle/display"
	"github.com/isikkema/rangle/linear"
	"github.com/isikkema/rangle/mesh"
	"github.com/isikkema/rangle/raster"
	"github.com/isikkema/rangle/shader"
)

// constantColorShader builds a shader whose vertex stage lifts m's
// expanded per-index vertex buffer straight into clip space (no
// transform) and whose fragment stage always returns c.
func constantColorShader(m *mesh.Mesh, c linear.V4) *shader.Program {
	vertex := func(attrs, _ shader.Map) shader.Map {
		p := attrs["position"].Vec3()
		out := attrs.Clone()
		out[shader.PositionKey] = shader.NewVec4(linear.NewV4(p, 1))
		return out
	}
	fragment := func(_, _ shader.Map) shader.Value { return shader.NewVec4(c) }
	prog := shader.NewProgram(vertex, fragment)
	buf := make([]shader.Value, 0, m.VertexCount())
	for _, v := range m.VertexBuffer() {
		buf = append(buf, shader.NewVec3(v))
	}
	_ = prog.AddAttribute("position", buf)
	return prog
}

// depthColorShader ignores m's z entirely and forces every emitted
// fragment's depth to -(-depth)/1 = depth, isolating the depth test from
// perspective concerns.
func depthColorShader(m *mesh.Mesh, depth float32, c linear.V4) *shader.Program {
	vertex := func(attrs, _ shader.Map) shader.Map {
		p := attrs["position"].Vec3()
		out := attrs.Clone()
		out[shader.PositionKey] = shader.NewVec4(linear.V4{p[0], p[1], -depth, 1})
		return out
	}
	fragment := func(_, _ shader.Map) shader.Value { return shader.NewVec4(c) }
	prog := shader.NewProgram(vertex, fragment)
	buf := make([]shader.Value, 0, m.VertexCount())
	for _, v := range m.VertexBuffer() {
		buf = append(buf, shader.NewVec3(v))
	}
	_ = prog.AddAttribute("position", buf)
	return prog
}

func newTestPipeline(t *testing.T, w, h int) (*Pipeline, *display.Memory) {
	t.Helper()
	d := display.NewMemory(w, h)
	p, err := NewPipeline(d)
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	return p, d
}

func meshFromPositions(v []linear.V3, indices []int) *mesh.Mesh {
	flat := make([]float32, 0, 3*len(v))
	for _, p := range v {
		flat = append(flat, p[0], p[1], p[2])
	}
	return mesh.FromVectors(flat, indices)
}

// Seed scenario 1: single red triangle, full viewport, W=H=3.
func TestRenderSceneFullViewportTriangle(t *testing.T) {
	p, d := newTestPipeline(t, 3, 3)
	m := meshFromPositions([]linear.V3{{-1, -1, 0}, {1, -1, 0}, {0, 1, 0}}, []int{0, 1, 2})
	p.AddModel(m, constantColorShader(m, linear.V4{1, 0, 0, 1}))

	if err := p.RenderScene(); err != nil {
		t.Fatalf("RenderScene: %v", err)
	}
	fb := d.Last()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if c := fb.At(x, y); c != (raster.Color{255, 0, 0, 255}) {
				t.Fatalf("At(%d,%d):\nhave %v\nwant red", x, y, c)
			}
		}
	}
}

// Seed scenario 2: z-order. Registration order must not affect the
// depth-test outcome.
func TestRenderSceneZOrderIndependentOfRegistrationOrder(t *testing.T) {
	run := func(firstGreen bool) raster.Color {
		p, d := newTestPipeline(t, 3, 3)
		full := meshFromPositions([]linear.V3{{-1, -1, 0}, {1, -1, 0}, {-1, 1, 0}, {1, 1, 0}}, []int{0, 1, 2, 1, 3, 2})
		green := depthColorShader(full, 0.2, linear.V4{0, 1, 0, 1})
		blue := depthColorShader(full, 0.5, linear.V4{0, 0, 1, 1})
		if firstGreen {
			p.AddModel(full, green)
			p.AddModel(full, blue)
		} else {
			p.AddModel(full, blue)
			p.AddModel(full, green)
		}
		if err := p.RenderScene(); err != nil {
			t.Fatalf("RenderScene: %v", err)
		}
		return d.Last().At(1, 1)
	}

	want := raster.Color{0, 0, 255, 255}
	if c := run(true); c != want {
		t.Fatalf("green-then-blue At(1,1):\nhave %v\nwant %v", c, want)
	}
	if c := run(false); c != want {
		t.Fatalf("blue-then-green At(1,1):\nhave %v\nwant %v", c, want)
	}
}

// Seed scenario 3: out-of-range depth discards every fragment.
func TestRenderSceneOutOfRangeDepthLeavesBackground(t *testing.T) {
	p, d := newTestPipeline(t, 3, 3)
	d.SetBackgroundColor(raster.Color{10, 20, 30, 255})
	m := meshFromPositions([]linear.V3{{-1, -1, 0}, {1, -1, 0}, {-1, 1, 0}, {1, 1, 0}}, []int{0, 1, 2, 1, 3, 2})
	p.AddModel(m, depthColorShader(m, 5, linear.V4{1, 1, 1, 1}))

	if err := p.RenderScene(); err != nil {
		t.Fatalf("RenderScene: %v", err)
	}
	fb := d.Last()
	want := raster.Color{10, 20, 30, 255}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if c := fb.At(x, y); c != want {
				t.Fatalf("At(%d,%d):\nhave %v\nwant background %v", x, y, c, want)
			}
		}
	}
}

// Seed scenario 4: Lines mode paints the middle row white.
func TestRenderSceneLinesModeMiddleRow(t *testing.T) {
	p, d := newTestPipeline(t, 3, 3)
	p.SetMode(Lines)
	m := meshFromPositions([]linear.V3{{-1, 0, 0}, {1, 0, 0}, {0, 0, 0}}, []int{0, 1, 0})
	p.AddModel(m, constantColorShader(m, linear.V4{1, 1, 1, 1}))

	if err := p.RenderScene(); err != nil {
		t.Fatalf("RenderScene: %v", err)
	}
	fb := d.Last()
	white := raster.Color{255, 255, 255, 255}
	bg := d.BackgroundColor()
	for x := 0; x < 3; x++ {
		if c := fb.At(x, 1); c != white {
			t.Fatalf("At(%d,1):\nhave %v\nwant white", x, c)
		}
	}
	for x := 0; x < 3; x++ {
		if c := fb.At(x, 0); c != bg {
			t.Fatalf("At(%d,0):\nhave %v\nwant background", x, c)
		}
		if c := fb.At(x, 2); c != bg {
			t.Fatalf("At(%d,2):\nhave %v\nwant background", x, c)
		}
	}
}

// Seed scenario 5: Points mode lights exactly the two distinct vertex pixels.
func TestRenderScenePointsModeVertexPixelsOnly(t *testing.T) {
	p, d := newTestPipeline(t, 3, 3)
	p.SetMode(Points)
	m := meshFromPositions([]linear.V3{{-1, 0, 0}, {1, 0, 0}, {0, 0, 0}}, []int{0, 1, 0})
	p.AddModel(m, constantColorShader(m, linear.V4{1, 1, 1, 1}))

	if err := p.RenderScene(); err != nil {
		t.Fatalf("RenderScene: %v", err)
	}
	fb := d.Last()
	white := raster.Color{255, 255, 255, 255}
	bg := d.BackgroundColor()
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			want := bg
			if y == 1 && (x == 0 || x == 2) {
				want = white
			}
			if c := fb.At(x, y); c != want {
				t.Fatalf("At(%d,%d):\nhave %v\nwant %v", x, y, c, want)
			}
		}
	}
}

// Orientation convention: NDC (0,0) maps to the center pixel, NDC (+1,0)
// maps to fx=0.
func TestNDCToFramebufferOrientationConvention(t *testing.T) {
	p, _ := newTestPipeline(t, 5, 5)
	if fx, fy := p.ndcToFramebuffer(0, 0); fx != 2 || fy != 2 {
		t.Fatalf("ndcToFramebuffer(0,0):\nhave (%d,%d)\nwant (2,2)", fx, fy)
	}
	if fx, _ := p.ndcToFramebuffer(1, 0); fx != 0 {
		t.Fatalf("ndcToFramebuffer(1,0).fx:\nhave %d\nwant 0", fx)
	}
}

// Clear invariant: before any draw call runs, the depth buffer is -2 and
// the framebuffer is the background color everywhere.
func TestRenderSceneClearInvariantWithNoModels(t *testing.T) {
	p, d := newTestPipeline(t, 4, 4)
	d.SetBackgroundColor(raster.Color{5, 6, 7, 255})
	if err := p.RenderScene(); err != nil {
		t.Fatalf("RenderScene: %v", err)
	}
	fb := d.Last()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := fb.At(x, y); c != (raster.Color{5, 6, 7, 255}) {
				t.Fatalf("At(%d,%d):\nhave %v\nwant background", x, y, c)
			}
		}
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if z := p.depth.At(x, y); z != -2 {
				t.Fatalf("depth.At(%d,%d):\nhave %v\nwant -2", x, y, z)
			}
		}
	}
}

func TestBarycentricDegenerateAllThreeCoincide(t *testing.T) {
	a, b, c, ok := barycentric(1, 1, 1, 1, 1, 1, 1, 1)
	if !ok || a != 1.0/3 || b != 1.0/3 || c != 1.0/3 {
		t.Fatalf("barycentric all-coincide:\nhave (%v,%v,%v,%v)\nwant (1/3,1/3,1/3,true)", a, b, c, ok)
	}
}

func TestBarycentricDegenerateTwoCoincide(t *testing.T) {
	a, b, c, ok := barycentric(1, 1, 1, 1, 1, 1, 9, 9)
	if !ok || a != 0.5 || b != 0.5 || c != 0 {
		t.Fatalf("barycentric two-coincide:\nhave (%v,%v,%v,%v)\nwant (0.5,0.5,0,true)", a, b, c, ok)
	}
}
