package game

import "github.com/samdwyer/asciisnake/internal/world"

// EventKind identifies what a player event asks for.
type EventKind int

const (
	// EventDirection requests a new heading.
	EventDirection EventKind = iota
	// EventQuit ends the program from any state.
	EventQuit
	// EventStart starts a round from the menu.
	EventStart
	// EventBack pauses, resumes, or backs out depending on the state.
	EventBack
)

// String returns a human-readable event kind.
func (k EventKind) String() string {
	switch k {
	case EventDirection:
		return "direction"
	case EventQuit:
		return "quit"
	case EventStart:
		return "start"
	case EventBack:
		return "back"
	default:
		return "unknown"
	}
}

// Event is a single player command sampled from the input source.
type Event struct {
	Kind EventKind
	Dir  world.Direction // Only meaningful for EventDirection
}

// Steer returns a direction event.
func Steer(d world.Direction) Event {
	return Event{Kind: EventDirection, Dir: d}
}

// Input is the latched direction and requested state.
type Input struct {
	State State
	Dir   world.Direction
}

// Fold applies all events buffered during one tick. Every event is judged
// against the input the tick began with and the last write per category wins,
// so a burst of keys can never turn the snake back through its neck.
func (in Input) Fold(events []Event) Input {
	next := in
	for _, ev := range events {
		if next.State == StateExit {
			break
		}

		switch ev.Kind {
		case EventDirection:
			if in.State.Active() && ev.Dir != in.Dir.Reverse() {
				next.Dir = ev.Dir
			}
		case EventQuit:
			next.State = StateExit
		case EventStart:
			if in.State == StateMenu {
				next.State = StatePlaying
			}
		case EventBack:
			next.State = back(in.State)
		}
	}
	return next
}

// back returns the state the back/pause key leads to from s.
func back(s State) State {
	switch s {
	case StatePaused:
		return StatePlaying
	case StateGameOver:
		return StateMenu
	case StateMenu:
		return StateExit
	case StatePlaying, StateGrowthPending:
		return StatePaused
	default:
		return s
	}
}
