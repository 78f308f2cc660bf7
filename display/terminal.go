package display

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/isikkema/rangle/raster"
)

// block is printed once per pixel, two columns wide so that a
// monospace terminal cell renders roughly square.
const block = "██"

// Terminal renders a framebuffer as colored blocks written to an
// io.Writer, one "██" per pixel, truecolor via termenv. It mirrors
// the original AsciiDisplay's print-per-pixel convention without the
// raw-mode/alternate-screen terminal control, which nothing in the
// core can exercise without a real terminal attached.
type Terminal struct {
	out           io.Writer
	profile       termenv.Profile
	width, height int
	background    raster.Color
}

// NewTerminal builds a Terminal display writing to w with an opaque
// black background. Pass os.Stdout for a real terminal.
func NewTerminal(w io.Writer, width, height int) *Terminal {
	return &Terminal{
		out:        w,
		profile:    termenv.EnvColorProfile(),
		width:      width,
		height:     height,
		background: raster.Color{0, 0, 0, 255},
	}
}

func (t *Terminal) Size() (int, int) { return t.width, t.height }

func (t *Terminal) BackgroundColor() raster.Color { return t.background }

func (t *Terminal) SetBackgroundColor(c raster.Color) { t.background = c }

// DrawBuffer writes the whole framebuffer, one row per terminal line.
// A fully transparent pixel (alpha 0) is rendered as the background
// color, matching the original display's behavior.
func (t *Terminal) DrawBuffer(fb *raster.Framebuffer) error {
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			c := fb.At(x, y)
			if c[3] == 0 {
				c = t.background
			}
			hex := fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
			styled := termenv.String(block).Foreground(t.profile.Color(hex))
			if _, err := fmt.Fprint(t.out, styled); err != nil {
				return fmt.Errorf("display: terminal write: %w", err)
			}
		}
		if _, err := fmt.Fprintln(t.out); err != nil {
			return fmt.Errorf("display: terminal write: %w", err)
		}
	}
	return nil
}
