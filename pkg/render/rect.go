// pkg/render/rect.go
package render

import "math"

// Point is a position on a drawing surface.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned box given by its top-left corner and size.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RectLTRB builds a Rect from its four edges.
func RectLTRB(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Width: right - left, Height: bottom - top}
}

func (r Rect) Right() float64  { return r.Left + r.Width }
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Center returns the geometric center of r.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// ShortSide returns min(Width, Height).
func (r Rect) ShortSide() float64 {
	return math.Min(r.Width, r.Height)
}

// Canon returns r with non-negative width and height.
func (r Rect) Canon() Rect {
	if r.Width < 0 {
		r.Left += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Top += r.Height
		r.Height = -r.Height
	}
	return r
}

// Square returns the box {0, 0, side, side}.
func Square(side float64) Rect {
	return Rect{Width: side, Height: side}
}
