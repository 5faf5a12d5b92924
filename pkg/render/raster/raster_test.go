package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"go-flat-icons/pkg/render"
)

var sunColor = color.NRGBA{R: 255, G: 184, B: 62, A: 255}

func TestCircleFillsCenter(t *testing.T) {
	s, img := NewImage(32, 32)
	s.DrawCircle(16, 16, 10, render.NewPaint(sunColor))

	if got := img.NRGBAAt(16, 16); got != sunColor {
		t.Errorf("center pixel = %v, want %v", got, sunColor)
	}
	if got := img.NRGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner pixel = %v, want transparent", got)
	}
}

func TestRotatedRoundRect(t *testing.T) {
	s, img := NewImage(40, 40)
	save := s.Save()
	s.Rotate(90, 20, 20)
	// вертикальная полоса над центром после поворота оказывается справа
	s.DrawRoundRect(render.Rect{Left: 18, Top: 2, Width: 4, Height: 10}, 1, 1, render.NewPaint(sunColor))
	s.RestoreToCount(save)

	if got := img.NRGBAAt(32, 20); got.A != 255 {
		t.Errorf("pixel right of center alpha = %d, want 255", got.A)
	}
	if got := img.NRGBAAt(20, 6); got.A != 0 {
		t.Errorf("pixel above center alpha = %d, want 0", got.A)
	}
	if s.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", s.Depth())
	}
}

func TestTransparentPaintDrawsNothing(t *testing.T) {
	s, img := NewImage(16, 16)
	s.DrawCircle(8, 8, 8, render.Paint{Color: sunColor, Alpha: 0})
	for _, v := range img.Pix {
		if v != 0 {
			t.Fatal("image is not empty")
		}
	}
}

func TestEncodePNG(t *testing.T) {
	s, img := NewImage(8, 8)
	s.DrawCircle(4, 4, 3, render.NewPaint(sunColor))
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}
