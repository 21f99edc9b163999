// Package entity provides the snake the player steers.
package entity

import "github.com/samdwyer/asciisnake/internal/world"

// Bounds clamps positions onto the playing field.
type Bounds interface {
	Clamp(p world.Position) world.Position
}

// Snake is an ordered chain of segments from head to tail.
// segments[i] follows segments[i-1]; the last segment is the tail.
type Snake struct {
	segments []world.Position
}

// NewSnake creates a snake from head-to-tail positions.
// At least one position is required.
func NewSnake(head world.Position, body ...world.Position) *Snake {
	segments := make([]world.Position, 0, len(body)+1)
	segments = append(segments, head)
	segments = append(segments, body...)
	return &Snake{segments: segments}
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Head returns the head position.
func (s *Snake) Head() world.Position {
	return s.segments[0]
}

// Tail returns the tail position.
func (s *Snake) Tail() world.Position {
	return s.segments[len(s.segments)-1]
}

// Segments returns a copy of the head-to-tail positions.
func (s *Snake) Segments() []world.Position {
	out := make([]world.Position, len(s.segments))
	copy(out, s.segments)
	return out
}

// Occupies returns true if any segment is at p.
func (s *Snake) Occupies(p world.Position) bool {
	for _, seg := range s.segments {
		if seg == p {
			return true
		}
	}
	return false
}

// Advance moves every segment onto the old position of the segment it follows
// and moves the head one unit in d, clamped to bounds. Returns the new head.
func (s *Snake) Advance(d world.Direction, bounds Bounds) world.Position {
	// Walk tail-first so each segment still reads its leader's old position.
	for i := len(s.segments) - 1; i > 0; i-- {
		s.segments[i] = s.segments[i-1]
	}
	s.segments[0] = bounds.Clamp(s.segments[0].Step(d))
	return s.segments[0]
}

// TailDirection returns the heading from the tail toward the segment it follows.
// The snake must have at least two segments.
func (s *Snake) TailDirection() world.Direction {
	n := len(s.segments)
	return world.DirectionBetween(s.segments[n-1], s.segments[n-2])
}

// GrowthPosition returns where a new tail segment goes: one unit beyond the
// current tail, away from the segment the tail follows.
func (s *Snake) GrowthPosition(bounds Bounds) world.Position {
	return bounds.Clamp(s.Tail().Step(s.TailDirection().Reverse()))
}

// Grow appends a new tail segment at p.
func (s *Snake) Grow(p world.Position) {
	s.segments = append(s.segments, p)
}
