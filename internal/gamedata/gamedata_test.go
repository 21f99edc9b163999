package gamedata

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/asciisnake/internal/world"
)

func TestLoadTheme(t *testing.T) {
	theme, err := LoadTheme()
	if err != nil {
		t.Fatalf("Failed to load theme: %v", err)
	}

	tests := []struct {
		cell world.Cell
		want rune
	}{
		{world.CellEmpty, ' '},
		{world.CellWall, '#'},
		{world.CellSnakeHead, '@'},
		{world.CellSnakeBody, 'o'},
		{world.CellFood, '*'},
		{world.Cell(99), '?'},
	}

	for _, tt := range tests {
		if got := theme.Glyph(tt.cell); got != tt.want {
			t.Errorf("Glyph(%v) = %q, want %q", tt.cell, got, tt.want)
		}
	}
}

func TestThemeStyles(t *testing.T) {
	theme := MustLoadTheme()

	head, _, _ := theme.Style(world.CellSnakeHead).Decompose()
	if head != MustParseHexColor(theme.Colors.Head) {
		t.Errorf("head foreground = %v, want theme head color", head)
	}

	if theme.Style(world.CellEmpty) != tcell.StyleDefault {
		t.Error("empty cells should use the default style")
	}
}

func TestLoadArt(t *testing.T) {
	for _, name := range []string{"menu.txt", "gameover.txt"} {
		lines, err := LoadArt(name)
		if err != nil {
			t.Fatalf("LoadArt(%q) error: %v", name, err)
		}
		if len(lines) < 10 {
			t.Errorf("LoadArt(%q) returned %d lines, want at least 10", name, len(lines))
		}
		for i, line := range lines {
			if strings.HasSuffix(line, " ") {
				t.Errorf("LoadArt(%q) line %d has trailing spaces", name, i)
			}
		}
	}

	if _, err := LoadArt("missing.txt"); err == nil {
		t.Error("LoadArt(missing.txt) should fail")
	}
}

func TestMenuArtFitsDefaultGrid(t *testing.T) {
	for _, line := range MustLoadArt("menu.txt") {
		if len(line) > world.DefaultWidth {
			t.Errorf("menu line too wide (%d): %q", len(line), line)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00ff00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#GG0000", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestParseHexColorValue(t *testing.T) {
	got := MustParseHexColor("#102030")
	want := tcell.NewRGBColor(0x10, 0x20, 0x30)
	if got != want {
		t.Errorf("MustParseHexColor(#102030) = %v, want %v", got, want)
	}
}

func TestGradient(t *testing.T) {
	colors, err := Gradient("#000000", "#FFFFFF", 5)
	if err != nil {
		t.Fatalf("Gradient error: %v", err)
	}
	if len(colors) != 5 {
		t.Fatalf("Gradient length = %d, want 5", len(colors))
	}
	if colors[0] != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("first color = %v, want black", colors[0])
	}
	if colors[4] != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("last color = %v, want white", colors[4])
	}

	// Brightness increases monotonically along the gradient.
	prev := int32(-1)
	for i, c := range colors {
		r, _, _ := c.RGB()
		if r < prev {
			t.Errorf("color %d is darker than color %d", i, i-1)
		}
		prev = r
	}

	if single, _ := Gradient("#123456", "#654321", 1); len(single) != 1 || single[0] != MustParseHexColor("#123456") {
		t.Errorf("Gradient(n=1) = %v, want the start color", single)
	}
	if _, err := Gradient("nope", "#FFFFFF", 3); err == nil {
		t.Error("Gradient with invalid color should fail")
	}
}
