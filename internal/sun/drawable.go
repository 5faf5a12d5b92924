// internal/sun/drawable.go
package sun

import (
	"image/color"

	"go-flat-icons/internal/config"
	"go-flat-icons/pkg/render"
	"go-flat-icons/pkg/utils"
)

// Icon — набор хуков, через которые платформа управляет иконкой.
type Icon interface {
	SetBounds(b render.Rect)
	Draw(s render.Surface)
	SetAlpha(alpha int)
	SetOpacity(opacity float64)
	SetColorFilter(f render.ColorFilter)
	IntrinsicWidth() float64
	IntrinsicHeight() float64
}

// Drawable renders a flat sun: a filled core with eight rounded rays.
// It is not safe for concurrent use.
type Drawable struct {
	color   color.NRGBA
	opacity float64
	filter  render.ColorFilter
	bounds  render.Rect
	geom    Geometry
}

var _ Icon = (*Drawable)(nil)

// New returns an opaque sun with empty bounds.
func New() *Drawable {
	return &Drawable{
		color:   config.SunColor,
		opacity: 1,
	}
}

// SetBounds stores b and recomputes the geometry.
func (d *Drawable) SetBounds(b render.Rect) {
	d.bounds = b
	d.geom = ComputeGeometry(b)
}

// Draw issues four rotated pairs of rays and then the core, nine shapes in all.
func (d *Drawable) Draw(s render.Surface) {
	p := d.paint()
	g := d.geom
	upper, lower := g.UpperHalo(), g.LowerHalo()

	for i := 0; i < config.HaloPairs; i++ {
		save := s.Save()
		s.Rotate(float64(i)*config.HaloStepDegrees, g.Center.X, g.Center.Y)
		s.DrawRoundRect(upper, g.HaloCornerRadius, g.HaloCornerRadius, p)
		s.DrawRoundRect(lower, g.HaloCornerRadius, g.HaloCornerRadius, p)
		s.RestoreToCount(save)
	}
	s.DrawCircle(g.Center.X, g.Center.Y, g.CoreRadius, p)
}

func (d *Drawable) paint() render.Paint {
	return render.Paint{Color: d.color, Alpha: d.opacity, Filter: d.filter}
}

// SetAlpha takes a 0..255 alpha; values outside the range are clamped.
func (d *Drawable) SetAlpha(alpha int) {
	d.opacity = utils.Clamp(float64(alpha), 0, 255) / 255
}

// SetOpacity takes a 0..1 multiplier; values outside the range are clamped.
func (d *Drawable) SetOpacity(opacity float64) {
	d.opacity = utils.Clamp(opacity, 0, 1)
}

// SetColorFilter sets the filter for later draws. nil clears it.
func (d *Drawable) SetColorFilter(f render.ColorFilter) {
	d.filter = f
}

func (d *Drawable) IntrinsicWidth() float64  { return d.bounds.Width }
func (d *Drawable) IntrinsicHeight() float64 { return d.bounds.Height }

func (d *Drawable) Bounds() render.Rect             { return d.bounds }
func (d *Drawable) Geometry() Geometry              { return d.geom }
func (d *Drawable) Opacity() float64                { return d.opacity }
func (d *Drawable) ColorFilter() render.ColorFilter { return d.filter }
