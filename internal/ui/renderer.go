package ui

import (
	"fmt"

	"github.com/samdwyer/asciisnake/internal/game"
	"github.com/samdwyer/asciisnake/internal/gamedata"
	"github.com/samdwyer/asciisnake/internal/world"
)

const (
	// Inner width of the game-over score box, between "# " and " #".
	boxInner = 54

	// Rows drawn below the board: score, highscore, pause status.
	statusLines = 3
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen   *Screen
	theme    *gamedata.Theme
	menu     []string
	gameOver []string
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, theme *gamedata.Theme) *Renderer {
	return &Renderer{
		screen:   screen,
		theme:    theme,
		menu:     gamedata.MustLoadArt("menu.txt"),
		gameOver: gamedata.MustLoadArt("gameover.txt"),
	}
}

// Render clears the screen and draws the frame for its state.
func (r *Renderer) Render(f game.Frame) {
	r.screen.Clear()

	switch f.State {
	case game.StateMenu:
		r.drawLines(0, r.menu)
	case game.StateGameOver:
		r.drawGameOver(f)
	case game.StateExit:
	default:
		if w, h := r.screen.Size(); w < f.Width || h < f.Height+statusLines {
			r.drawTooSmall(f)
			break
		}
		r.drawBoard(f)
	}

	r.screen.Show()
}

// drawBoard draws the grid, the body gradient, and the score lines.
func (r *Renderer) drawBoard(f game.Frame) {
	for y, row := range f.Cells {
		for x, cell := range row {
			r.screen.SetContent(x, y, r.theme.Glyph(cell), r.theme.Style(cell))
		}
	}

	if len(f.Snake) > 1 {
		body := f.Snake[1:]
		colors := r.theme.BodyGradient(len(body))
		for i, p := range body {
			if i >= len(colors) || cellAt(f, p) != world.CellSnakeBody {
				continue
			}
			style := r.theme.Style(world.CellSnakeBody).Foreground(colors[i])
			r.screen.SetContent(p.X, p.Y, r.theme.Glyph(world.CellSnakeBody), style)
		}
	}

	text := r.theme.TextStyle()
	r.screen.DrawText(0, f.Height, fmt.Sprintf("Score:      %5d Point(s)", f.Score.Score), text)
	r.screen.DrawText(0, f.Height+1, fmt.Sprintf("High-Score: %5d Point(s)", f.Score.Highscore), text)
	if f.State == game.StatePaused {
		r.screen.DrawText(0, f.Height+2, "[PAUSED]", text.Bold(true))
	}
}

// drawTooSmall replaces the board when the terminal cannot hold it.
func (r *Renderer) drawTooSmall(f game.Frame) {
	r.drawLines(0, []string{
		"Terminal too small!",
		fmt.Sprintf("Need %dx%d", f.Width, f.Height+statusLines),
	})
}

// drawGameOver draws the game-over art and the final score box.
func (r *Renderer) drawGameOver(f game.Frame) {
	y := r.drawLines(0, r.gameOver)
	y++

	border := ""
	for i := 0; i < boxInner+4; i++ {
		border += "#"
	}
	lines := []string{
		border,
		boxLine(fmt.Sprintf("%-11s %33d Point(s)", "Score:", f.Score.Score)),
		boxLine(fmt.Sprintf("%-11s %33d Point(s)", "Highscore:", f.Score.Highscore)),
		boxLine("Press (q) to quit or (Esc) to return to the Main-Menu!"),
		border,
	}
	r.drawLines(y, lines)
}

// drawLines draws lines starting at row y and returns the row after the last.
func (r *Renderer) drawLines(y int, lines []string) int {
	style := r.theme.TextStyle()
	for _, line := range lines {
		r.screen.DrawText(0, y, line, style)
		y++
	}
	return y
}

func boxLine(content string) string {
	return fmt.Sprintf("# %-*s #", boxInner, content)
}

func cellAt(f game.Frame, p world.Position) world.Cell {
	if p.Y < 0 || p.Y >= len(f.Cells) || p.X < 0 || p.X >= len(f.Cells[p.Y]) {
		return world.CellEmpty
	}
	return f.Cells[p.Y][p.X]
}
