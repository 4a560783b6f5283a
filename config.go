package vellum

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	"github.com/pelletier/go-toml/v2"

	"golang.org/x/image/font/gofont/goregular"
)

// ThemeConfig is the theme.toml file layout. Colors are hex strings
// ("#RRGGBB" or "#RRGGBBAA"); omitted fields keep the default theme value.
type ThemeConfig struct {
	Font struct {
		// Path to a TTF/OTF file. Empty means the bundled Go Regular face.
		Path string  `toml:"path"`
		Size float64 `toml:"size"`
	} `toml:"font"`

	Colors struct {
		Label              string `toml:"label"`
		ButtonText         string `toml:"button_text"`
		ButtonFill         string `toml:"button_fill"`
		ButtonBorder       string `toml:"button_border"`
		ButtonSelectedFill string `toml:"button_selected_fill"`
		ButtonActiveFill   string `toml:"button_active_fill"`
	} `toml:"colors"`

	Padding *int `toml:"padding"`
}

// LoadThemeFile reads a TOML theme file and resolves it to a Theme.
func LoadThemeFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	return LoadTheme(data)
}

// LoadTheme resolves TOML theme data to a Theme. Unknown fields are
// rejected so typos in a theme file fail loudly.
func LoadTheme(data []byte) (*Theme, error) {
	var cfg ThemeConfig
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	return cfg.Theme()
}

// Theme resolves the config against the default theme.
func (cfg *ThemeConfig) Theme() (*Theme, error) {
	theme, err := DefaultTheme()
	if err != nil {
		return nil, err
	}

	size := cfg.Font.Size
	if size == 0 {
		size = DefaultFontSize
	}
	ttf := goregular.TTF
	if cfg.Font.Path != "" {
		ttf, err = os.ReadFile(cfg.Font.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file: %w", err)
		}
	}
	theme.Font, err = loadFont(ttf, size)
	if err != nil {
		return nil, err
	}

	for _, c := range []struct {
		value string
		dst   *color.NRGBA
	}{
		{cfg.Colors.Label, &theme.LabelColor},
		{cfg.Colors.ButtonText, &theme.ButtonTextColor},
		{cfg.Colors.ButtonFill, &theme.ButtonFillColor},
		{cfg.Colors.ButtonBorder, &theme.ButtonBorderColor},
		{cfg.Colors.ButtonSelectedFill, &theme.ButtonSelectedFillColor},
		{cfg.Colors.ButtonActiveFill, &theme.ButtonActiveFillColor},
	} {
		if c.value == "" {
			continue
		}
		parsed, err := ParseHexColor(c.value)
		if err != nil {
			return nil, err
		}
		*c.dst = parsed
	}

	if cfg.Padding != nil {
		if *cfg.Padding < 0 {
			return nil, fmt.Errorf("invalid padding %d: must be non-negative", *cfg.Padding)
		}
		theme.Padding = *cfg.Padding
	}
	return theme, nil
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" (leading '#' optional).
func ParseHexColor(s string) (color.NRGBA, error) {
	orig := s
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", orig)
	}

	var v uint32
	for _, c := range s {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= uint32(c - '0')
		case c >= 'a' && c <= 'f':
			v |= uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= uint32(c-'A') + 10
		default:
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q", orig)
		}
	}
	if len(s) == 6 {
		v = v<<8 | 0xFF
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
