package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/isikkema/rangle/raster"
)

func TestMemoryRecordsLastBuffer(t *testing.T) {
	m := NewMemory(4, 3)
	if w, h := m.Size(); w != 4 || h != 3 {
		t.Fatalf("Size:\nhave (%d,%d)\nwant (4,3)", w, h)
	}
	m.SetBackgroundColor(raster.Color{1, 2, 3, 4})
	if c := m.BackgroundColor(); c != (raster.Color{1, 2, 3, 4}) {
		t.Fatalf("BackgroundColor:\nhave %v\nwant [1 2 3 4]", c)
	}
	fb := raster.NewFramebuffer(4, 3)
	fb.Fill(raster.Color{9, 9, 9, 9})
	if err := m.DrawBuffer(fb); err != nil {
		t.Fatalf("DrawBuffer: %v", err)
	}
	if m.Last() != fb {
		t.Fatal("Last: does not return the buffer passed to DrawBuffer")
	}
}

func TestVectorEmitsOnePointPerPixel(t *testing.T) {
	var buf bytes.Buffer
	v := NewVector(&buf, 2, 2, raster.Color{0, 0, 0, 255})
	fb := raster.NewFramebuffer(2, 2)
	fb.Fill(raster.Color{255, 0, 0, 255})
	if err := v.DrawBuffer(fb); err != nil {
		t.Fatalf("DrawBuffer: %v", err)
	}
	got := buf.String()
	if n := strings.Count(got, "newcurve"); n != 4 {
		t.Fatalf("newcurve count:\nhave %d\nwant 4\noutput:\n%s", n, got)
	}
	if !strings.Contains(got, "pts 0 2") {
		t.Fatalf("expected a point at (0,2) (y flipped), got:\n%s", got)
	}
}
