// Package raster draws onto an in-memory image with golang.org/x/image/vector.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"go-flat-icons/pkg/render"

	"golang.org/x/image/vector"
)

// Surface rasterizes filled shapes onto dst with anti-aliasing.
type Surface struct {
	render.TransformStack
	dst draw.Image
	z   *vector.Rasterizer
}

// New returns a surface drawing onto dst.
func New(dst draw.Image) *Surface {
	b := dst.Bounds()
	return &Surface{dst: dst, z: vector.NewRasterizer(b.Dx(), b.Dy())}
}

// NewImage allocates a transparent width x height image and a surface for it.
func NewImage(width, height int) (*Surface, *image.NRGBA) {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	return New(img), img
}

// Image returns the target image.
func (s *Surface) Image() draw.Image {
	return s.dst
}

func (s *Surface) DrawRoundRect(r render.Rect, rx, ry float64, p render.Paint) {
	s.fill(render.RoundRectPath(r, rx, ry), p.Resolve())
}

func (s *Surface) DrawCircle(cx, cy, radius float64, p render.Paint) {
	s.fill(render.CirclePath(cx, cy, radius), p.Resolve())
}

func (s *Surface) fill(path render.Path, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	b := s.dst.Bounds()
	if b.Empty() {
		return
	}
	s.z.Reset(b.Dx(), b.Dy())
	s.z.DrawOp = draw.Over

	// координаты растеризатора отсчитываются от b.Min
	ox, oy := float32(b.Min.X), float32(b.Min.Y)
	for _, seg := range path.Transform(s.Matrix()) {
		p := seg.Pts
		switch seg.Op {
		case render.OpMoveTo:
			s.z.MoveTo(float32(p[0].X)-ox, float32(p[0].Y)-oy)
		case render.OpLineTo:
			s.z.LineTo(float32(p[0].X)-ox, float32(p[0].Y)-oy)
		case render.OpCubeTo:
			s.z.CubeTo(
				float32(p[0].X)-ox, float32(p[0].Y)-oy,
				float32(p[1].X)-ox, float32(p[1].Y)-oy,
				float32(p[2].X)-ox, float32(p[2].Y)-oy,
			)
		case render.OpClose:
			s.z.ClosePath()
		}
	}
	s.z.Draw(s.dst, b, image.NewUniform(c), image.Point{})
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
