package display

import (
	"fmt"
	"io"

	"github.com/isikkema/rangle/raster"
)

// Vector emits a framebuffer as a jgraph point-plot script to an
// io.Writer: one "newcurve ... pts x y" per pixel, y flipped so the
// plot reads top-to-bottom the way the framebuffer does. It mirrors
// the original JgraphDisplay.
type Vector struct {
	out           io.Writer
	width, height int
	background    raster.Color
}

// NewVector builds a Vector display of the given size and background
// color, writing to w.
func NewVector(w io.Writer, width, height int, background raster.Color) *Vector {
	return &Vector{out: w, width: width, height: height, background: background}
}

func (v *Vector) Size() (int, int) { return v.width, v.height }

func (v *Vector) BackgroundColor() raster.Color { return v.background }

func (v *Vector) SetBackgroundColor(c raster.Color) { v.background = c }

// DrawBuffer writes the jgraph script for fb.
func (v *Vector) DrawBuffer(fb *raster.Framebuffer) error {
	w := v.out
	fmt.Fprintln(w, "newgraph")
	fmt.Fprintf(w, "xaxis nodraw min 0 max %d\n", v.width)
	fmt.Fprintf(w, "yaxis nodraw min 0 max %d\n", v.height)
	for y := 0; y < v.height; y++ {
		for x := 0; x < v.width; x++ {
			c := fb.At(x, y)
			if c[3] == 0 {
				c = v.background
			}
			r, g, b := float32(c[0])/255, float32(c[1])/255, float32(c[2])/255
			fmt.Fprintf(w, "newcurve marktype box marksize 1 1 color %g %g %g pts %d %d\n",
				r, g, b, x, v.height-y)
		}
	}
	return nil
}
