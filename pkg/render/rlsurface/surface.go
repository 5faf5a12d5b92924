// Package rlsurface draws render shapes with raylib, using the rlgl matrix
// stack for Save/Restore/Rotate.
package rlsurface

import (
	"math"

	"go-flat-icons/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Surface must be used between rl.BeginDrawing and rl.EndDrawing.
// Rotate is only valid after Save, since it changes the rlgl modelview matrix.
type Surface struct {
	depth    int
	Segments int32
}

func New() *Surface {
	return &Surface{Segments: 8}
}

func (s *Surface) Save() int {
	rl.PushMatrix()
	n := s.depth
	s.depth++
	return n
}

func (s *Surface) Restore() {
	if s.depth == 0 {
		return
	}
	rl.PopMatrix()
	s.depth--
}

func (s *Surface) RestoreToCount(n int) {
	for s.depth > n && s.depth > 0 {
		s.Restore()
	}
}

func (s *Surface) Rotate(deg, px, py float64) {
	rl.Translatef(float32(px), float32(py), 0)
	rl.Rotatef(float32(deg), 0, 0, 1)
	rl.Translatef(float32(-px), float32(-py), 0)
}

func (s *Surface) DrawRoundRect(r render.Rect, rx, ry float64, p render.Paint) {
	r = r.Canon()
	// raylib задаёт скругление долей от половины короткой стороны
	roundness := float32(0)
	if half := math.Min(r.Width, r.Height) / 2; half > 0 {
		roundness = float32(math.Min(1, math.Min(rx, ry)/half))
	}
	rec := rl.NewRectangle(float32(r.Left), float32(r.Top), float32(r.Width), float32(r.Height))
	rl.DrawRectangleRounded(rec, roundness, s.Segments, toRL(p))
}

func (s *Surface) DrawCircle(cx, cy, radius float64, p render.Paint) {
	rl.DrawCircleV(rl.NewVector2(float32(cx), float32(cy)), float32(math.Max(0, radius)), toRL(p))
}

func toRL(p render.Paint) rl.Color {
	c := p.Resolve()
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
