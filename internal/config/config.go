// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth   = 480
	ScreenHeight  = 480
	PreviewMargin = 24
	MaxDeltaTime  = 0.06

	// Пропорции солнца относительно короткой стороны рамки
	CoreDiameterRatio = 0.4843
	HaloWidthRatio    = 0.0703
	HaloHeightRatio   = 0.1367
	HaloMarginRatio   = 0.0898

	HaloPairs       = 4    // пар лучей, каждая пара повернута на HaloStepDegrees
	HaloStepDegrees = 45.0 // шаг поворота

	CaptionFontSize = 14
	RoundSegments   = 8 // сегментов на скругление в raylib
)

var (
	SunColor        = color.NRGBA{255, 184, 62, 255}
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
)
