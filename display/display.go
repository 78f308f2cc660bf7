// Package display defines the contract a presentation back-end must
// satisfy to receive a finished framebuffer from the pipeline, plus a
// handful of concrete back-ends: an in-memory display for tests and
// headless drivers, a terminal block renderer, and a jgraph-style
// vector text emitter.
package display

import "github.com/isikkema/rangle/raster"

// Display is the pipeline's presentation contract. The framebuffer
// passed to DrawBuffer is owned by the pipeline and must not be
// retained past the call.
type Display interface {
	// Size returns the display's pixel dimensions.
	Size() (width, height int)

	// BackgroundColor returns the color RenderScene fills the
	// framebuffer with before drawing.
	BackgroundColor() raster.Color

	// SetBackgroundColor changes the background color used by future
	// frames.
	SetBackgroundColor(raster.Color)

	// DrawBuffer presents a finished framebuffer.
	DrawBuffer(fb *raster.Framebuffer) error
}
