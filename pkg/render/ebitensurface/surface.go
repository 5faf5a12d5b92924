// Package ebitensurface draws render shapes onto an *ebiten.Image.
package ebitensurface

import (
	"image/color"

	"go-flat-icons/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface заливает контуры через vector.Path и DrawTriangles, как HexRenderer.
type Surface struct {
	render.TransformStack
	dst       *ebiten.Image
	fillImg   *ebiten.Image
	fillVs    []ebiten.Vertex
	fillIs    []uint16
	AntiAlias bool
}

func New(dst *ebiten.Image) *Surface {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &Surface{
		dst:       dst,
		fillImg:   fillImg,
		fillVs:    make([]ebiten.Vertex, 0, 64),
		fillIs:    make([]uint16, 0, 96),
		AntiAlias: true,
	}
}

// SetTarget switches the destination image and resets the transform stack.
func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
	s.Reset()
}

func (s *Surface) DrawRoundRect(r render.Rect, rx, ry float64, p render.Paint) {
	s.fill(render.RoundRectPath(r, rx, ry), p.Resolve())
}

func (s *Surface) DrawCircle(cx, cy, radius float64, p render.Paint) {
	s.fill(render.CirclePath(cx, cy, radius), p.Resolve())
}

func (s *Surface) fill(p render.Path, c color.NRGBA) {
	if s.dst == nil || c.A == 0 {
		return
	}
	path := vector.Path{}
	for _, seg := range p.Transform(s.Matrix()) {
		pt := seg.Pts
		switch seg.Op {
		case render.OpMoveTo:
			path.MoveTo(float32(pt[0].X), float32(pt[0].Y))
		case render.OpLineTo:
			path.LineTo(float32(pt[0].X), float32(pt[0].Y))
		case render.OpCubeTo:
			path.CubicTo(
				float32(pt[0].X), float32(pt[0].Y),
				float32(pt[1].X), float32(pt[1].Y),
				float32(pt[2].X), float32(pt[2].Y),
			)
		case render.OpClose:
			path.Close()
		}
	}

	s.fillVs, s.fillIs = path.AppendVerticesAndIndicesForFilling(s.fillVs[:0], s.fillIs[:0])
	for i := range s.fillVs {
		s.fillVs[i].SrcX = 0
		s.fillVs[i].SrcY = 0
		s.fillVs[i].ColorR = float32(c.R) / 255
		s.fillVs[i].ColorG = float32(c.G) / 255
		s.fillVs[i].ColorB = float32(c.B) / 255
		s.fillVs[i].ColorA = float32(c.A) / 255
	}
	s.dst.DrawTriangles(s.fillVs, s.fillIs, s.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: s.AntiAlias,
	})
}
