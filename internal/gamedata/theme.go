package gamedata

// =============================================================================
// THEME
// =============================================================================
//
// theme.json maps every cell kind to a glyph and a hex color:
//
// {
//   "glyphs": { "empty": " ", "wall": "#", "head": "@", "body": "o", "food": "*" },
//   "colors": { "wall": "#7F7F7F", "head": "#FFD700", "body": "#3CB371",
//               "tail": "#0F4D2A", "food": "#FF4500", "text": "#FFFFFF" }
// }
//
// The body is drawn as a gradient from "body" (the neck) to "tail" (the last
// segment). Empty cells use the terminal's default background.

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/asciisnake/internal/world"
)

// ThemeGlyphs holds one display character per cell kind.
type ThemeGlyphs struct {
	Empty string `json:"empty"`
	Wall  string `json:"wall"`
	Head  string `json:"head"`
	Body  string `json:"body"`
	Food  string `json:"food"`
}

// ThemeColors holds hex colors per cell kind plus the tail end of the body
// gradient and the text color.
type ThemeColors struct {
	Wall string `json:"wall"`
	Head string `json:"head"`
	Body string `json:"body"`
	Tail string `json:"tail"`
	Food string `json:"food"`
	Text string `json:"text"`
}

// Theme is the look of the board loaded from theme.json.
type Theme struct {
	Glyphs ThemeGlyphs `json:"glyphs"`
	Colors ThemeColors `json:"colors"`
}

// LoadTheme loads the theme from the embedded theme.json file and checks
// that every color parses.
func LoadTheme() (*Theme, error) {
	theme, err := Load[Theme]("theme.json")
	if err != nil {
		return nil, err
	}

	c := theme.Colors
	for _, hex := range []string{c.Wall, c.Head, c.Body, c.Tail, c.Food, c.Text} {
		if _, err := parseHex(hex); err != nil {
			return nil, errors.Join(errors.New("theme.json"), err)
		}
	}
	return &theme, nil
}

// MustLoadTheme loads the theme, panicking on error.
func MustLoadTheme() *Theme {
	theme, err := LoadTheme()
	if err != nil {
		panic(err)
	}
	return theme
}

// Glyph returns the display character for a cell.
func (t *Theme) Glyph(c world.Cell) rune {
	var s string
	switch c {
	case world.CellEmpty:
		s = t.Glyphs.Empty
	case world.CellWall:
		s = t.Glyphs.Wall
	case world.CellSnakeHead:
		s = t.Glyphs.Head
	case world.CellSnakeBody:
		s = t.Glyphs.Body
	case world.CellFood:
		s = t.Glyphs.Food
	}
	for _, r := range s {
		return r
	}
	return '?'
}

// Style returns the base style for a cell.
func (t *Theme) Style(c world.Cell) tcell.Style {
	style := tcell.StyleDefault
	switch c {
	case world.CellWall:
		return style.Foreground(t.color(t.Colors.Wall))
	case world.CellSnakeHead:
		return style.Foreground(t.color(t.Colors.Head)).Bold(true)
	case world.CellSnakeBody:
		return style.Foreground(t.color(t.Colors.Body))
	case world.CellFood:
		return style.Foreground(t.color(t.Colors.Food)).Bold(true)
	default:
		return style
	}
}

// TextStyle returns the style for score lines and screen art.
func (t *Theme) TextStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.color(t.Colors.Text))
}

// BodyGradient returns one color per body segment, neck first.
func (t *Theme) BodyGradient(n int) []tcell.Color {
	colors, err := Gradient(t.Colors.Body, t.Colors.Tail, n)
	if err != nil {
		return nil
	}
	return colors
}

// color parses a theme color. LoadTheme has already rejected bad colors.
func (t *Theme) color(hex string) tcell.Color {
	return MustParseHexColor(hex)
}
