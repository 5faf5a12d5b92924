// pkg/render/path.go
package render

import (
	"math"

	"golang.org/x/image/math/f64"
)

// kappa — длина контрольного отрезка кубической кривой для четверти окружности.
const kappa = 0.5522847498307936

// Op is a path segment operation.
type Op uint8

const (
	OpMoveTo Op = iota
	OpLineTo
	OpCubeTo
	OpClose
)

// Segment is one path operation. MoveTo/LineTo use Pts[0]; CubeTo uses
// Pts[0] and Pts[1] as control points and Pts[2] as the end point.
type Segment struct {
	Op  Op
	Pts [3]Point
}

// Path is a list of segments in surface coordinates.
type Path []Segment

func (p *Path) MoveTo(x, y float64) {
	*p = append(*p, Segment{Op: OpMoveTo, Pts: [3]Point{{x, y}}})
}

func (p *Path) LineTo(x, y float64) {
	*p = append(*p, Segment{Op: OpLineTo, Pts: [3]Point{{x, y}}})
}

func (p *Path) CubeTo(x1, y1, x2, y2, x, y float64) {
	*p = append(*p, Segment{Op: OpCubeTo, Pts: [3]Point{{x1, y1}, {x2, y2}, {x, y}}})
}

func (p *Path) Close() {
	*p = append(*p, Segment{Op: OpClose})
}

// Transform returns a copy of p with every point mapped through m.
func (p Path) Transform(m f64.Aff3) Path {
	out := make(Path, len(p))
	for i, seg := range p {
		out[i].Op = seg.Op
		for j, pt := range seg.Pts {
			out[i].Pts[j].X, out[i].Pts[j].Y = Apply(m, pt.X, pt.Y)
		}
	}
	return out
}

// RoundRectPath builds a closed clockwise outline of r with elliptical
// corners. Radii are clamped to half of the corresponding side.
func RoundRectPath(r Rect, rx, ry float64) Path {
	r = r.Canon()
	rx = math.Max(0, math.Min(rx, r.Width/2))
	ry = math.Max(0, math.Min(ry, r.Height/2))
	l, t, rr, b := r.Left, r.Top, r.Right(), r.Bottom()
	kx, ky := kappa*rx, kappa*ry

	p := make(Path, 0, 10)
	p.MoveTo(l+rx, t)
	p.LineTo(rr-rx, t)
	p.CubeTo(rr-rx+kx, t, rr, t+ry-ky, rr, t+ry)
	p.LineTo(rr, b-ry)
	p.CubeTo(rr, b-ry+ky, rr-rx+kx, b, rr-rx, b)
	p.LineTo(l+rx, b)
	p.CubeTo(l+rx-kx, b, l, b-ry+ky, l, b-ry)
	p.LineTo(l, t+ry)
	p.CubeTo(l, t+ry-ky, l+rx-kx, t, l+rx, t)
	p.Close()
	return p
}

// CirclePath builds a closed circle from four cubic arcs.
func CirclePath(cx, cy, radius float64) Path {
	radius = math.Max(0, radius)
	k := kappa * radius

	p := make(Path, 0, 6)
	p.MoveTo(cx, cy-radius)
	p.CubeTo(cx+k, cy-radius, cx+radius, cy-k, cx+radius, cy)
	p.CubeTo(cx+radius, cy+k, cx+k, cy+radius, cx, cy+radius)
	p.CubeTo(cx-k, cy+radius, cx-radius, cy+k, cx-radius, cy)
	p.CubeTo(cx-radius, cy-k, cx-k, cy-radius, cx, cy-radius)
	p.Close()
	return p
}

// Bounds returns the box around every point of p, control points included.
func (p Path) Bounds() Rect {
	first := true
	var minX, minY, maxX, maxY float64
	for _, seg := range p {
		n := 0
		switch seg.Op {
		case OpMoveTo, OpLineTo:
			n = 1
		case OpCubeTo:
			n = 3
		}
		for _, pt := range seg.Pts[:n] {
			if first {
				minX, minY, maxX, maxY = pt.X, pt.Y, pt.X, pt.Y
				first = false
				continue
			}
			minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
			minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
		}
	}
	return RectLTRB(minX, minY, maxX, maxY)
}
