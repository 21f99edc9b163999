package gamedata

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	c, err := parseHex(hex)
	if err != nil {
		return tcell.ColorDefault, err
	}
	return toTCell(c), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}

// Gradient returns n colors blended evenly from one hex color to another in
// CIE-Lab space, so the steps look perceptually even.
func Gradient(from, to string, n int) ([]tcell.Color, error) {
	if n <= 0 {
		return nil, nil
	}

	start, err := parseHex(from)
	if err != nil {
		return nil, err
	}
	end, err := parseHex(to)
	if err != nil {
		return nil, err
	}

	colors := make([]tcell.Color, n)
	for i := range colors {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		colors[i] = toTCell(start.BlendLab(end, t).Clamped())
	}
	return colors, nil
}

func parseHex(hex string) (colorful.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return colorful.Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}
	return c, nil
}

func toTCell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
