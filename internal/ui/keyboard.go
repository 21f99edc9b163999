package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/asciisnake/internal/game"
	"github.com/samdwyer/asciisnake/internal/world"
)

// Keyboard is the game's input source backed by terminal key events.
type Keyboard struct {
	screen *Screen
}

// NewKeyboard creates an input source reading from the given screen.
func NewKeyboard(screen *Screen) *Keyboard {
	return &Keyboard{screen: screen}
}

// PollEvents drains pending terminal events and translates the keys the game
// understands. Resize events trigger a redraw and produce no game event.
func (k *Keyboard) PollEvents() []game.Event {
	var out []game.Event
	for _, ev := range k.screen.Drain() {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if e, ok := TranslateKey(ev); ok {
				out = append(out, e)
			}
		case *tcell.EventResize:
			k.screen.Sync()
		}
	}
	return out
}

// TranslateKey maps a key press to a game event.
func TranslateKey(ev *tcell.EventKey) (game.Event, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.Steer(world.North), true
	case tcell.KeyDown:
		return game.Steer(world.South), true
	case tcell.KeyLeft:
		return game.Steer(world.West), true
	case tcell.KeyRight:
		return game.Steer(world.East), true
	case tcell.KeyEscape:
		return game.Event{Kind: game.EventBack}, true
	case tcell.KeyEnter:
		return game.Event{Kind: game.EventStart}, true
	case tcell.KeyCtrlC:
		return game.Event{Kind: game.EventQuit}, true

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return game.Steer(world.North), true
		case 'a', 'A':
			return game.Steer(world.West), true
		case 's', 'S':
			return game.Steer(world.South), true
		case 'd', 'D':
			return game.Steer(world.East), true
		case 'p', 'P':
			return game.Event{Kind: game.EventStart}, true
		case 'q', 'Q':
			return game.Event{Kind: game.EventQuit}, true
		}
	}
	return game.Event{}, false
}
