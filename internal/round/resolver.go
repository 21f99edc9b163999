// Package round provides the per-round simulation: scoring, collision
// resolution, food spawning and the tick step.
package round

import "github.com/samdwyer/asciisnake/internal/world"

// Outcome is what a single step of the round produced.
type Outcome int

const (
	// OutcomeContinue - the snake moved onto a free cell
	OutcomeContinue Outcome = iota
	// OutcomeGrow - the snake ate food; it grows on the next step
	OutcomeGrow
	// OutcomeCollision - the snake hit a wall or its own body
	OutcomeCollision
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeGrow:
		return "grow"
	case OutcomeCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// ScoreBoard tracks the current round's score and the best score seen by the process.
type ScoreBoard struct {
	Score     int
	Highscore int
}

// NewScoreBoard creates a zeroed score that carries over an earlier highscore.
func NewScoreBoard(highscore int) ScoreBoard {
	return ScoreBoard{Highscore: highscore}
}

// Award adds a point and raises the highscore if it was exceeded.
func (s *ScoreBoard) Award() {
	s.Score++
	if s.Score > s.Highscore {
		s.Highscore = s.Score
	}
}

// Resolve classifies the cell the head moved onto and applies its effect
// on the score. The cell must be read before the grid is refreshed for the tick.
func Resolve(cell world.Cell, score *ScoreBoard) Outcome {
	switch {
	case cell == world.CellFood:
		score.Award()
		return OutcomeGrow
	case cell.IsFatal():
		return OutcomeCollision
	default:
		return OutcomeContinue
	}
}
