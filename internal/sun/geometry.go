// internal/sun/geometry.go
package sun

import (
	"math"

	"go-flat-icons/internal/config"
	"go-flat-icons/pkg/render"
)

// Geometry is everything Draw needs, derived from the bounding box.
type Geometry struct {
	Center           render.Point `json:"center"`
	CoreRadius       float64      `json:"core_radius"`
	HaloWidth        float64      `json:"halo_width"`
	HaloHeight       float64      `json:"halo_height"`
	HaloCornerRadius float64      `json:"halo_corner_radius"`
	HaloMargin       float64      `json:"halo_margin"`
}

// ComputeGeometry derives the sun layout from b. All sizes are proportions of
// min(b.Width, b.Height); a negative short side is treated as zero.
func ComputeGeometry(b render.Rect) Geometry {
	m := math.Max(0, b.ShortSide())
	g := Geometry{
		Center:     b.Center(),
		CoreRadius: config.CoreDiameterRatio * m / 2,
		HaloWidth:  config.HaloWidthRatio * m,
		HaloHeight: config.HaloHeightRatio * m,
		HaloMargin: config.HaloMarginRatio * m,
	}
	g.HaloCornerRadius = g.HaloWidth / 2
	return g
}

// UpperHalo is the ray above the core before rotation.
//
// Both halos are placed vertically from Center.X, not Center.Y, so the sun is
// only symmetric when Center.X == Center.Y. Hosts draw into a square box at
// the origin for that reason.
func (g Geometry) UpperHalo() render.Rect {
	bottom := g.Center.X - g.CoreRadius - g.HaloMargin
	return render.Rect{
		Left:   g.Center.X - g.HaloWidth/2,
		Top:    bottom - g.HaloHeight,
		Width:  g.HaloWidth,
		Height: g.HaloHeight,
	}
}

// LowerHalo is the ray below the core before rotation.
func (g Geometry) LowerHalo() render.Rect {
	return render.Rect{
		Left:   g.Center.X - g.HaloWidth/2,
		Top:    g.Center.X + g.CoreRadius + g.HaloMargin,
		Width:  g.HaloWidth,
		Height: g.HaloHeight,
	}
}
