package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/asciisnake/internal/telemetry"
)

// InputSource yields the player events buffered since the last call.
// It must not block.
type InputSource interface {
	PollEvents() []Event
}

// Renderer draws a frame. The core performs no screen I/O itself.
type Renderer interface {
	Render(f Frame)
}

// Clock measures tick duration and pads each tick to the target period.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the wall clock. time.Time carries a monotonic reading, so
// Sub between two Now values is immune to wall-clock jumps.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep pauses the calling goroutine.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Option customizes a Game.
type Option func(*Game)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithLogger sets the logger used by the game and its state machine.
func WithLogger(l logr.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithTracer replaces the global "game" tracer.
func WithTracer(t trace.Tracer) Option {
	return func(g *Game) { g.tracer = t }
}

// Game drives the state machine at a fixed tick rate.
type Game struct {
	machine  *Machine
	input    InputSource
	renderer Renderer
	clock    Clock
	period   time.Duration
	log      logr.Logger
	tracer   trace.Tracer
}

// New creates a new game instance.
func New(cfg Config, input InputSource, renderer Renderer, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		input:    input,
		renderer: renderer,
		clock:    SystemClock{},
		period:   cfg.TickPeriod(),
		log:      logr.Discard(),
		tracer:   telemetry.Tracer("game"),
	}
	for _, opt := range opts {
		opt(g)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g.machine = NewMachine(cfg.RoundConfig(), rng, g.log.WithName("machine"), g.tracer)
	g.log.V(1).Info("game created", "width", cfg.Width, "height", cfg.Height, "fps", cfg.FPS, "seed", seed)
	return g, nil
}

// Machine returns the state machine driven by the game.
func (g *Game) Machine() *Machine {
	return g.machine
}

// Highscore returns the best score of the session.
func (g *Game) Highscore() int {
	return g.machine.Highscore()
}

// Run executes the main game loop until the machine reaches StateExit.
// Cancelling ctx is treated as a quit command.
func (g *Game) Run(ctx context.Context) error {
	ctx, span := g.tracer.Start(ctx, "game.run")
	defer span.End()

	ticks := 0
	for g.machine.State() != StateExit {
		start := g.clock.Now()

		events := g.input.PollEvents()
		if ctx.Err() != nil {
			events = append(events, Event{Kind: EventQuit})
		}

		if g.machine.Tick(ctx, events) == StateExit {
			break
		}
		g.renderer.Render(g.machine.Frame())
		ticks++

		g.clock.Sleep(sleepFor(g.period, g.clock.Now().Sub(start)))
	}

	span.SetAttributes(
		attribute.Int("ticks", ticks),
		attribute.Int("score.highscore", g.Highscore()),
	)
	g.log.Info("game finished", "ticks", ticks, "highscore", g.Highscore())
	return nil
}

// sleepFor returns how long to pad a tick that took elapsed to reach period.
// An overlong tick gets no sleep and no catch-up.
func sleepFor(period, elapsed time.Duration) time.Duration {
	if elapsed >= period {
		return 0
	}
	return period - elapsed
}
