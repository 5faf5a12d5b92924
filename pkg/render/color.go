// pkg/render/color.go
package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"go-flat-icons/pkg/utils"
)

// ErrBadFilter is returned by ParseFilter for an unknown filter spec.
var ErrBadFilter = errors.New("unknown color filter")

// ColorFilter transforms the fill color of a Paint before it reaches the surface.
type ColorFilter interface {
	Filter(c color.NRGBA) color.NRGBA
}

// Paint describes how a shape is filled.
type Paint struct {
	Color  color.NRGBA
	Alpha  float64 // множитель прозрачности 0..1
	Filter ColorFilter
}

// NewPaint returns an opaque paint without a filter.
func NewPaint(c color.NRGBA) Paint {
	return Paint{Color: c, Alpha: 1}
}

// Resolve applies the filter and then scales the alpha channel by p.Alpha.
func (p Paint) Resolve() color.NRGBA {
	c := p.Color
	if p.Filter != nil {
		c = p.Filter.Filter(c)
	}
	c.A = uint8(math.Round(float64(c.A) * utils.Clamp(p.Alpha, 0, 1)))
	return c
}

// DarkenColor reduces the brightness of a color by factor (0..1).
func DarkenColor(c color.NRGBA, factor float64) color.NRGBA {
	factor = utils.Clamp(factor, 0, 1)
	return color.NRGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Darken scales RGB by Factor. A zero Factor means 0.5.
type Darken struct {
	Factor float64
}

func (d Darken) Filter(c color.NRGBA) color.NRGBA {
	f := d.Factor
	if f == 0 {
		f = 0.5
	}
	return DarkenColor(c, f)
}

// Tint replaces RGB with the tint color and multiplies the alpha channels,
// the way a SRC_IN blend filter does.
type Tint struct {
	Color color.NRGBA
}

func (t Tint) Filter(c color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: t.Color.R,
		G: t.Color.G,
		B: t.Color.B,
		A: uint8(uint16(c.A) * uint16(t.Color.A) / 255),
	}
}

// Grayscale maps a color to its Rec. 601 luma.
type Grayscale struct{}

func (Grayscale) Filter(c color.NRGBA) color.NRGBA {
	y := uint8(math.Round(0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)))
	return color.NRGBA{R: y, G: y, B: y, A: c.A}
}

// ParseFilter parses "none", "darken", "grayscale" or "tint:#rrggbb[aa]".
// An empty string or "none" yields a nil filter.
func ParseFilter(spec string) (ColorFilter, error) {
	spec = strings.TrimSpace(strings.ToLower(spec))
	switch {
	case spec == "" || spec == "none":
		return nil, nil
	case spec == "darken":
		return Darken{}, nil
	case spec == "grayscale":
		return Grayscale{}, nil
	case strings.HasPrefix(spec, "tint:"):
		c, err := ParseHexColor(strings.TrimPrefix(spec, "tint:"))
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrBadFilter, spec, err)
		}
		return Tint{Color: c}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrBadFilter, spec)
}

// ParseHexColor parses #rrggbb or #rrggbbaa.
func ParseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
