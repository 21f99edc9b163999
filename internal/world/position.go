package world

// Position is an integer grid coordinate.
type Position struct {
	X, Y int
}

// Step returns the position one unit away in the given direction.
// The result is not clamped.
func (p Position) Step(d Direction) Position {
	switch d {
	case North:
		p.Y--
	case East:
		p.X++
	case South:
		p.Y++
	case West:
		p.X--
	}
	return p
}

// Adjacent returns true if q is exactly one orthogonal step from p.
func (p Position) Adjacent(q Position) bool {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx+dy*dy == 1
}

// Direction is one of the four compass headings.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// DirectionBetween derives the heading of a relative to b, for a segment a
// and the segment b it follows.
// If the x coordinates differ the result is horizontal (West when a.x > b.x),
// otherwise vertical (North when a.y > b.y). Coincident positions yield South.
func DirectionBetween(a, b Position) Direction {
	if a.X != b.X {
		if a.X > b.X {
			return West
		}
		return East
	}
	if a.Y > b.Y {
		return North
	}
	return South
}
