// Package world provides the playing field: cells, positions, directions and the grid.
package world

// Cell classifies a single grid cell.
// It is derived each tick from the snake and the static walls and is never
// authoritative for where the snake is.
type Cell int

const (
	// CellEmpty is free space the snake can move into.
	CellEmpty Cell = iota
	// CellWall is part of the fixed border.
	CellWall
	// CellSnakeHead is the cell occupied by the snake's head.
	CellSnakeHead
	// CellSnakeBody is any cell occupied by a non-head segment.
	CellSnakeBody
	// CellFood marks food waiting to be eaten.
	CellFood
)

// String returns a human-readable cell name.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	case CellSnakeHead:
		return "snake_head"
	case CellSnakeBody:
		return "snake_body"
	case CellFood:
		return "food"
	default:
		return "unknown"
	}
}

// IsFatal returns true if moving the head onto this cell ends the round.
func (c Cell) IsFatal() bool {
	return c == CellWall || c == CellSnakeBody
}
