package game

import (
	"github.com/samdwyer/asciisnake/internal/round"
	"github.com/samdwyer/asciisnake/internal/world"
)

// Frame is a self-contained description of one tick's output.
// It shares no memory with the live round.
type Frame struct {
	Width, Height int
	Cells         [][]world.Cell   // Indexed [y][x]
	Snake         []world.Position // Head to tail
	Score         round.ScoreBoard
	State         State
}
