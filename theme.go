package vellum

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Theme controls the appearance of the GUI. It is immutable during a draw
// call; the caller owns it and may swap it between frames.
type Theme struct {
	Font *Font

	LabelColor              color.NRGBA
	ButtonTextColor         color.NRGBA
	ButtonFillColor         color.NRGBA
	ButtonBorderColor       color.NRGBA
	ButtonSelectedFillColor color.NRGBA
	ButtonActiveFillColor   color.NRGBA

	// Padding is the inset applied by Inset wrappers and Padding spacers,
	// in pixels.
	Padding int
}

// DefaultFontSize is used when no size is configured.
const DefaultFontSize = 14

// DefaultTheme returns a gray-on-white theme using the bundled Go Regular
// face at the default size.
func DefaultTheme() (*Theme, error) {
	f, err := loadFont(goregular.TTF, DefaultFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load default font: %w", err)
	}
	return &Theme{
		Font:                    f,
		LabelColor:              color.NRGBA{A: 0xFF},
		ButtonTextColor:         color.NRGBA{A: 0xFF},
		ButtonFillColor:         color.NRGBA{R: 0xE5, G: 0xE7, B: 0xEB, A: 0xFF},
		ButtonBorderColor:       color.NRGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xFF},
		ButtonSelectedFillColor: color.NRGBA{R: 0xD1, G: 0xD5, B: 0xDB, A: 0xFF},
		ButtonActiveFillColor:   color.NRGBA{R: 0x93, G: 0xC5, B: 0xFD, A: 0xFF},
		Padding:                 4,
	}, nil
}

// loadFont parses TTF/OTF data and builds a face at the given size.
func loadFont(ttf []byte, size float64) (*Font, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font data: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build font face: %w", err)
	}
	return NewFont(face), nil
}
