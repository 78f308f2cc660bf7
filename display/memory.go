package display

import "github.com/isikkema/rangle/raster"

// Memory is a Display with no I/O: DrawBuffer just retains the most
// recently presented framebuffer. It is the pipeline's own test
// harness and a sensible choice for driving the pipeline headlessly.
type Memory struct {
	width, height int
	background    raster.Color
	last          *raster.Framebuffer
}

// NewMemory builds a Memory display of the given size with an opaque
// black background.
func NewMemory(width, height int) *Memory {
	return &Memory{width: width, height: height, background: raster.Color{0, 0, 0, 255}}
}

func (m *Memory) Size() (int, int) { return m.width, m.height }

func (m *Memory) BackgroundColor() raster.Color { return m.background }

func (m *Memory) SetBackgroundColor(c raster.Color) { m.background = c }

// DrawBuffer records fb as the most recently presented frame.
func (m *Memory) DrawBuffer(fb *raster.Framebuffer) error {
	m.last = fb
	return nil
}

// Last returns the framebuffer from the most recent DrawBuffer call,
// or nil if none has happened yet.
func (m *Memory) Last() *raster.Framebuffer { return m.last }
