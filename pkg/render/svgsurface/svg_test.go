package svgsurface

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"go-flat-icons/pkg/render"
)

func TestSurfaceWritesShapes(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, 10, 10, "test")
	p := render.NewPaint(color.NRGBA{R: 255, G: 184, B: 62, A: 255})

	s.DrawCircle(5, 5, 2.5, p)
	save := s.Save()
	s.Rotate(45, 5, 5)
	s.DrawRoundRect(render.Rect{Left: 4.5, Top: 0, Width: 1, Height: 2}, 0.5, 0.5, p)
	s.RestoreToCount(save)
	s.Close()

	out := buf.String()
	if !strings.Contains(out, `viewBox="0 0 1000 1000"`) {
		t.Errorf("missing scaled viewBox in %q", out)
	}
	if !strings.Contains(out, `r="250"`) {
		t.Errorf("circle radius not scaled: %q", out)
	}
	if n := strings.Count(out, "<rect"); n != 1 {
		t.Errorf("rect count = %d, want 1", n)
	}
	if n := strings.Count(out, `<g transform="matrix(`); n != 1 {
		t.Errorf("transform group count = %d, want 1", n)
	}
	if !strings.Contains(out, "fill:#ffb83e") {
		t.Errorf("fill color missing: %q", out)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Errorf("document not closed: %q", out)
	}
}
