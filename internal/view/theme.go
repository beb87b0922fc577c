package view

import "image/color"

// Theme is the palette used by the painter.
type Theme struct {
	Name string

	Background  color.NRGBA
	Circle      color.NRGBA
	Radial      color.NRGBA
	RadialAxis  color.NRGBA
	Point       color.NRGBA
	Text        color.NRGBA
	TextDim     color.NRGBA
	Selected    color.NRGBA
	Cos         color.NRGBA
	Sin         color.NRGBA
	Tan         color.NRGBA
	PanelBg     color.NRGBA
	PanelBorder color.NRGBA
	FieldBg     color.NRGBA
	FieldActive color.NRGBA
}

func hex(v uint32) color.NRGBA {
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// DarkTheme is light ink on a near black background.
func DarkTheme() Theme {
	return Theme{
		Name:        "dark",
		Background:  hex(0x0f0f0f),
		Circle:      hex(0xffffff),
		Radial:      withAlpha(hex(0xffffff), 150),
		RadialAxis:  hex(0xffffff),
		Point:       hex(0xffffff),
		Text:        hex(0xffffff),
		TextDim:     hex(0xa0a0a0),
		Selected:    hex(0xff6b6b),
		Cos:         hex(0x4dabf7),
		Sin:         hex(0x69db7c),
		Tan:         hex(0xffd43b),
		PanelBg:     hex(0x181818),
		PanelBorder: hex(0x2a2a2a),
		FieldBg:     hex(0x0f0f0f),
		FieldActive: hex(0x4dabf7),
	}
}

// LightTheme is dark ink on white.
func LightTheme() Theme {
	return Theme{
		Name:        "light",
		Background:  hex(0xffffff),
		Circle:      hex(0x000000),
		Radial:      withAlpha(hex(0x000000), 150),
		RadialAxis:  hex(0x000000),
		Point:       hex(0x000000),
		Text:        hex(0x1f2937),
		TextDim:     hex(0x6b7280),
		Selected:    hex(0xe03131),
		Cos:         hex(0x1971c2),
		Sin:         hex(0x2f9e44),
		Tan:         hex(0xe8590c),
		PanelBg:     hex(0xf3f4f6),
		PanelBorder: hex(0xd1d5db),
		FieldBg:     hex(0xffffff),
		FieldActive: hex(0x2563eb),
	}
}

// ThemeByName returns the named theme; "" selects dark.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "dark":
		return DarkTheme(), true
	case "light":
		return LightTheme(), true
	}
	return DarkTheme(), false
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t.Name == "light" {
		return DarkTheme()
	}
	return LightTheme()
}
