package rangle

import (
	"fmt"
	"math"

	"github.com/isikkema/rangle/display"
	"github.com/isikkema/rangle/linear"
	"github.com/isikkema/rangle/mesh"
	"github.com/isikkema/rangle/raster"
	"github.com/isikkema/rangle/shader"
)

// Pipeline orchestrates one rendering pass per RenderScene call: clear
// the buffers, run every registered draw call's vertices through
// primitive assembly and rasterization, then hand the finished
// framebuffer to the display. It owns the framebuffer and depth
// buffer exclusively; the display only ever sees the framebuffer
// read-only, for the duration of DrawBuffer.
type Pipeline struct {
	disp  display.Display
	mode  Mode
	calls []drawCall

	fb    *raster.Framebuffer
	depth *raster.DepthBuffer
}

// NewPipeline allocates a Pipeline sized to d's dimensions.
func NewPipeline(d display.Display) (*Pipeline, error) {
	w, h := d.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%sdisplay size must be positive, got %dx%d", pipelinePrefix, w, h)
	}
	return &Pipeline{
		disp:  d,
		mode:  Triangles,
		fb:    raster.NewFramebuffer(w, h),
		depth: raster.NewDepthBuffer(w, h),
	}, nil
}

// Size returns the pipeline's framebuffer dimensions.
func (p *Pipeline) Size() (int, int) { return p.fb.Size() }

// SetMode selects which primitive kind primitive assembly emits.
func (p *Pipeline) SetMode(m Mode) { p.mode = m }

// ComputeProjectionMatrix returns a right-handed perspective
// projection matrix.
func (p *Pipeline) ComputeProjectionMatrix(fovRadians, aspect, zNear, zFar float32) linear.M4 {
	return linear.Perspective(fovRadians, aspect, zNear, zFar)
}

// AddModel registers a (mesh, shader) draw call and returns a Handle
// the caller may use to mutate the mesh or shader between frames.
func (p *Pipeline) AddModel(m *mesh.Mesh, s *shader.Program) *Handle {
	p.calls = append(p.calls, drawCall{mesh: m, shader: s})
	return &Handle{Mesh: m, Shader: s}
}

// RenderScene runs one full frame: clear the depth buffer and fill the
// framebuffer with the display's background color, draw every
// registered model in registration order, then present the
// framebuffer to the display.
func (p *Pipeline) RenderScene() error {
	bg := p.disp.BackgroundColor()
	p.depth.Clear()
	p.fb.Fill(bg)

	for _, c := range p.calls {
		p.renderModel(c.mesh, c.shader)
	}

	if err := p.disp.DrawBuffer(p.fb); err != nil {
		return fmt.Errorf("%w: %v", ErrDisplayBackend, err)
	}
	return nil
}

// renderModel runs primitive assembly for every consecutive triple of
// vertex-indices in m: invoke the vertex stage for each of the three
// indices, perspective-divide the resulting clip-space position, and
// forward to the mode-specific emitter.
func (p *Pipeline) renderModel(m *mesh.Mesh, s *shader.Program) {
	n := m.VertexCount()
	for i := 0; i+2 < n; i += 3 {
		a1 := s.RunVertex(i)
		a2 := s.RunVertex(i + 1)
		a3 := s.RunVertex(i + 2)

		n1 := perspectiveDivideXY(a1)
		n2 := perspectiveDivideXY(a2)
		n3 := perspectiveDivideXY(a3)

		switch p.mode {
		case Triangles:
			p.renderTriangle(n1, a1, n2, a2, n3, a3, s)
		case Lines:
			p.renderLine(n1, a1.Clone(), n2, a2.Clone(), s)
			p.renderLine(n2, a2.Clone(), n3, a3.Clone(), s)
			p.renderLine(n3, a3.Clone(), n1, a1.Clone(), s)
		case Points:
			p.renderPoint(n1, a1, s)
			p.renderPoint(n2, a2, s)
			p.renderPoint(n3, a3, s)
		}
	}
}

// perspectiveDivideXY divides the clip-space position attrs carries
// under shader.PositionKey by its w component, stores the divided Vec4
// back under that key (so interpolation works on NDC positions and
// depth derived later is the interpolated -z/w), and returns the NDC
// x,y.
func perspectiveDivideXY(attrs shader.Map) linear.V2 {
	v := attrs.Position().Vec4()
	d := v.DivScalar(v[3])
	attrs[shader.PositionKey] = shader.NewVec4(d)
	return d.XY()
}

// ndcToFramebuffer maps normalized device x,y (range approximately
// [-1,1]) to pixel coordinates, flipping both axes so that canonical
// NDC up/right map to screen-space up/left.
func (p *Pipeline) ndcToFramebuffer(x, y float32) (int, int) {
	w, h := p.fb.Size()
	fx := int(math.Round(float64((-x + 1) / 2 * float32(w-1))))
	fy := int(math.Round(float64((-y + 1) / 2 * float32(h-1))))
	return clampInt(fx, 0, w-1), clampInt(fy, 0, h-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// depthOf derives -z/w from the Vec4 stored under shader.PositionKey.
func depthOf(attrs shader.Map) float32 {
	v := attrs.Position().Vec4()
	return -v[2] / v[3]
}

// testAndEmit runs phases B and C of the rasterizer at pixel (fx, fy):
// derive depth from attrs, test it against the depth buffer, and on a
// pass, write the depth, run the fragment shader, clamp and quantize
// the result, and store it to the framebuffer.
func (p *Pipeline) testAndEmit(fx, fy int, attrs shader.Map, s *shader.Program) {
	z := depthOf(attrs)
	if !p.depth.Test(fx, fy, z) {
		return
	}
	p.depth.Set(fx, fy, z)
	color := s.RunFragment(attrs).Vec4().Clamp(0, 1)
	p.fb.Set(fx, fy, quantize(color))
}

func quantize(c linear.V4) raster.Color {
	return raster.Color{
		uint8(math.Round(float64(c[0] * 255))),
		uint8(math.Round(float64(c[1] * 255))),
		uint8(math.Round(float64(c[2] * 255))),
		uint8(math.Round(float64(c[3] * 255))),
	}
}

// renderPoint rasterizes a single point primitive.
func (p *Pipeline) renderPoint(pos linear.V2, attrs shader.Map, s *shader.Program) {
	fx, fy := p.ndcToFramebuffer(pos[0], pos[1])
	p.testAndEmit(fx, fy, attrs, s)
}

// renderLine rasterizes a line primitive with a DDA walk and linear
// attribute interpolation. The endpoint with the larger major-axis NDC
// coordinate is walked from first, matching the original
// implementation's tie-break (swap iff x2 > x1, or y2 > y1 on the
// y-major branch) — the axis flip in ndcToFramebuffer means this
// still produces increasing pixel order along the major axis.
func (p *Pipeline) renderLine(p1 linear.V2, m1 shader.Map, p2 linear.V2, m2 shader.Map, s *shader.Program) {
	x1, y1 := p1[0], p1[1]
	x2, y2 := p2[0], p2[1]
	xd, yd := abs32(x1-x2), abs32(y1-y2)

	if xd >= yd {
		if x2 > x1 {
			x1, x2 = x2, x1
			y1, y2 = y2, y1
			m1, m2 = m2, m1
		}
		fx1, fy1 := p.ndcToFramebuffer(x1, y1)
		fx2, fy2 := p.ndcToFramebuffer(x2, y2)
		major := fx2 - fx1
		var slope, kStep float32
		if major != 0 {
			slope = float32(fy2-fy1) / float32(major)
			kStep = 1 / float32(major)
		}
		_, h := p.fb.Size()
		k, minor := float32(0), float32(fy1)
		for fx := fx1; fx <= fx2; fx++ {
			fy := clampInt(roundToInt(minor), 0, h-1)
			p.testAndEmit(fx, fy, shader.Lerp(m1, m2, k), s)
			minor += slope
			k += kStep
		}
	} else {
		if y2 > y1 {
			x1, x2 = x2, x1
			y1, y2 = y2, y1
			m1, m2 = m2, m1
		}
		fx1, fy1 := p.ndcToFramebuffer(x1, y1)
		fx2, fy2 := p.ndcToFramebuffer(x2, y2)
		major := fy2 - fy1
		var slope, kStep float32
		if major != 0 {
			slope = float32(fx2-fx1) / float32(major)
			kStep = 1 / float32(major)
		}
		w, _ := p.fb.Size()
		k, minor := float32(0), float32(fx1)
		for fy := fy1; fy <= fy2; fy++ {
			fx := clampInt(roundToInt(minor), 0, w-1)
			p.testAndEmit(fx, fy, shader.Lerp(m1, m2, k), s)
			minor += slope
			k += kStep
		}
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func roundToInt(x float32) int { return int(math.Round(float64(x))) }

// renderTriangle rasterizes a triangle primitive over its framebuffer
// bounding box using barycentric coordinates, with the degenerate-case
// tie-breaks §4.2.3 specifies.
func (p *Pipeline) renderTriangle(p1 linear.V2, m1 shader.Map, p2 linear.V2, m2 shader.Map, p3 linear.V2, m3 shader.Map, s *shader.Program) {
	fx1, fy1 := p.ndcToFramebuffer(p1[0], p1[1])
	fx2, fy2 := p.ndcToFramebuffer(p2[0], p2[1])
	fx3, fy3 := p.ndcToFramebuffer(p3[0], p3[1])

	minX, maxX := minInt3(fx1, fx2, fx3), maxInt3(fx1, fx2, fx3)
	minY, maxY := minInt3(fy1, fy2, fy3), maxInt3(fy1, fy2, fy3)

	for fy := minY; fy <= maxY; fy++ {
		for fx := minX; fx <= maxX; fx++ {
			a, b, c, ok := barycentric(fx, fy, fx1, fy1, fx2, fy2, fx3, fy3)
			if !ok {
				continue
			}
			if a < 0 || a > 1 || b < 0 || b > 1 || c < 0 || c > 1 {
				continue
			}
			p.testAndEmit(fx, fy, shader.Barycentric(a, b, c, m1, m2, m3), s)
		}
	}
}

// barycentric computes the barycentric coordinates of pixel (px,py)
// relative to triangle (x1,y1),(x2,y2),(x3,y3), applying the
// degenerate-case tie-breaks in order: all three vertices coincident
// with the pixel, exactly two coincident with the pixel, then the
// standard formula (with a numerator-zero shortcut that avoids
// dividing by a zero denominator for degenerate triangles).
func barycentric(px, py, x1, y1, x2, y2, x3, y3 int) (a, b, c float32, ok bool) {
	at1, at2, at3 := px == x1 && py == y1, px == x2 && py == y2, px == x3 && py == y3
	switch {
	case at1 && at2 && at3:
		return 1.0 / 3, 1.0 / 3, 1.0 / 3, true
	case at1 && at2:
		return 0.5, 0.5, 0, true
	case at1 && at3:
		return 0.5, 0, 0.5, true
	case at2 && at3:
		return 0, 0.5, 0.5, true
	}

	fx1, fy1 := float32(x1), float32(y1)
	fx2, fy2 := float32(x2), float32(y2)
	fx3, fy3 := float32(x3), float32(y3)
	fpx, fpy := float32(px), float32(py)

	denom := (fy2-fy3)*(fx1-fx3) + (fx3-fx2)*(fy1-fy3)

	numA := (fy2-fy3)*(fpx-fx3) + (fx3-fx2)*(fpy-fy3)
	if numA != 0 {
		a = numA / denom
	}
	numB := (fy3-fy1)*(fpx-fx3) + (fx1-fx3)*(fpy-fy3)
	if numB != 0 {
		b = numB / denom
	}
	c = 1 - a - b
	return a, b, c, true
}

func minInt3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxInt3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
