// Package game provides the state machine and the fixed-rate tick loop.
package game

// State represents the current game state.
type State int

const (
	// StateExit ends the tick loop.
	StateExit State = iota
	// StateMenu is the title screen; nothing is simulated.
	StateMenu
	// StatePlaying advances the round every tick.
	StatePlaying
	// StateGrowthPending is Playing with the snake due to grow on the next step.
	StateGrowthPending
	// StatePaused freezes the round until resumed.
	StatePaused
	// StateGameOver shows the final score until the player returns to the menu.
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExit:
		return "exit"
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGrowthPending:
		return "growth_pending"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Active returns true for the states in which the round is simulated.
func (s State) Active() bool {
	return s == StatePlaying || s == StateGrowthPending
}
