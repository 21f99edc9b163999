// Package ui provides terminal rendering and keyboard input using tcell.
package ui

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// eventBuffer bounds how many terminal events may queue between ticks.
const eventBuffer = 64

// Screen wraps tcell.Screen with a simplified interface.
// Terminal events are pumped into a buffer so they can be drained without blocking.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	once   sync.Once
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreen(s)
}

// newScreen initializes s and starts the event pump.
func newScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()

	scr := &Screen{
		screen: s,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
	}
	go scr.pump()
	return scr, nil
}

// pump forwards terminal events until the screen is closed.
func (s *Screen) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.once.Do(func() {
		close(s.done)
		s.screen.Fini()
	})
}

// Drain returns every event buffered since the last call without blocking.
func (s *Screen) Drain() []tcell.Event {
	var out []tcell.Event
	for {
		select {
		case ev := <-s.events:
			out = append(out, ev)
		default:
			return out
		}
	}
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// DrawText writes a single line of text starting at (x, y).
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		s.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}
