// Package svgsurface writes shapes as SVG elements with github.com/ajstarks/svgo.
package svgsurface

import (
	"fmt"
	"io"
	"math"

	"go-flat-icons/pkg/render"

	svg "github.com/ajstarks/svgo"
)

// DefaultScale is the number of SVG user units per surface unit. svgo takes
// integer coordinates, so the document is drawn scaled up inside a viewBox.
const DefaultScale = 100

// Surface emits one SVG element per shape. Call Close to finish the document.
type Surface struct {
	render.TransformStack
	canvas *svg.SVG
	scale  float64
}

// New starts an SVG document of width x height surface units on w.
func New(w io.Writer, width, height int, title string) *Surface {
	return NewScaled(w, width, height, title, DefaultScale)
}

// NewScaled is New with an explicit user-unit scale.
func NewScaled(w io.Writer, width, height int, title string, scale int) *Surface {
	if scale <= 0 {
		scale = DefaultScale
	}
	canvas := svg.New(w)
	canvas.Startview(width, height, 0, 0, width*scale, height*scale)
	if title != "" {
		canvas.Title(title)
	}
	return &Surface{canvas: canvas, scale: float64(scale)}
}

// Close writes the closing tag.
func (s *Surface) Close() {
	s.canvas.End()
}

func (s *Surface) DrawRoundRect(r render.Rect, rx, ry float64, p render.Paint) {
	r = r.Canon()
	s.begin()
	s.canvas.Roundrect(s.u(r.Left), s.u(r.Top), s.u(r.Width), s.u(r.Height), s.u(rx), s.u(ry), style(p))
	s.end()
}

func (s *Surface) DrawCircle(cx, cy, radius float64, p render.Paint) {
	s.begin()
	s.canvas.Circle(s.u(cx), s.u(cy), s.u(math.Max(0, radius)), style(p))
	s.end()
}

// begin открывает группу с текущей матрицей, если она не единичная.
func (s *Surface) begin() {
	m := s.Matrix()
	if m == render.Identity {
		return
	}
	s.canvas.Gtransform(fmt.Sprintf("matrix(%.6g %.6g %.6g %.6g %.6g %.6g)",
		m[0], m[3], m[1], m[4], m[2]*s.scale, m[5]*s.scale))
}

func (s *Surface) end() {
	if s.Matrix() != render.Identity {
		s.canvas.Gend()
	}
}

func (s *Surface) u(v float64) int {
	return int(math.Round(v * s.scale))
}

func style(p render.Paint) string {
	c := p.Resolve()
	return fmt.Sprintf("fill:#%02x%02x%02x;fill-opacity:%.3f", c.R, c.G, c.B, float64(c.A)/255)
}
