package assets

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontManager разбирает встроенный шрифт Go один раз и кэширует начертания по размеру.
type FontManager struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFontManager parses the embedded Go Regular font.
func NewFontManager() (*FontManager, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}
	return &FontManager{
		font:  tt,
		faces: make(map[float64]font.Face),
	}, nil
}

// Face returns a cached face of the given size at 72 DPI.
func (m *FontManager) Face(size float64) (font.Face, error) {
	if face, ok := m.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face size %v: %w", size, err)
	}
	m.faces[size] = face
	return face, nil
}

// Cleanup closes every cached face.
func (m *FontManager) Cleanup() {
	for size, face := range m.faces {
		face.Close()
		delete(m.faces, size)
	}
}
