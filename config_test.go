package vellum

import (
	"image/color"
	"testing"
)

func TestLoadTheme(t *testing.T) {
	theme, err := LoadTheme([]byte(`
padding = 7

[font]
size = 18.0

[colors]
label = "#112233"
button_fill = "445566"
button_active_fill = "#77889980"
`))
	if err != nil {
		t.Fatalf("LoadTheme() error = %v", err)
	}

	if got, want := theme.LabelColor, (color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF}); got != want {
		t.Errorf("LabelColor = %v, want %v", got, want)
	}
	if got, want := theme.ButtonFillColor, (color.NRGBA{R: 0x44, G: 0x55, B: 0x66, A: 0xFF}); got != want {
		t.Errorf("ButtonFillColor = %v, want %v", got, want)
	}
	if got, want := theme.ButtonActiveFillColor, (color.NRGBA{R: 0x77, G: 0x88, B: 0x99, A: 0x80}); got != want {
		t.Errorf("ButtonActiveFillColor = %v, want %v", got, want)
	}
	if theme.Padding != 7 {
		t.Errorf("Padding = %d, want 7", theme.Padding)
	}

	// Unset colors keep the defaults.
	def, err := DefaultTheme()
	if err != nil {
		t.Fatal(err)
	}
	if theme.ButtonBorderColor != def.ButtonBorderColor {
		t.Errorf("ButtonBorderColor = %v, want default %v", theme.ButtonBorderColor, def.ButtonBorderColor)
	}
}

func TestLoadThemeRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"unknown field", "[colors]\nlabell = \"#112233\"\n"},
		{"padding nested under colors", "[colors]\npadding = 7\n"},
		{"bad color", "[colors]\nlabel = \"#bogus\"\n"},
		{"negative padding", "padding = -1\n"},
		{"syntax error", "[colors\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTheme([]byte(tt.toml)); err == nil {
				t.Error("LoadTheme() error = nil, want error")
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#000000", want: color.NRGBA{A: 0xFF}},
		{in: "#FFffFF", want: color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
		{in: "12ab34", want: color.NRGBA{R: 0x12, G: 0xAB, B: 0x34, A: 0xFF}},
		{in: "#11223344", want: color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}},
		{in: "", wantErr: true},
		{in: "#12345", wantErr: true},
		{in: "#1234567", wantErr: true},
		{in: "#gggggg", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %t", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
