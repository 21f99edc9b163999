package game

import (
	"context"
	"math/rand"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/asciisnake/internal/round"
	"github.com/samdwyer/asciisnake/internal/world"
)

// Machine is the top-level state machine. It folds player events into the
// latched input, steps the active round, and replaces the round when the
// player backs out of the game-over screen.
type Machine struct {
	cfg    round.Config
	rng    *rand.Rand
	input  Input
	round  *round.Round
	log    logr.Logger
	tracer trace.Tracer
}

// NewMachine creates a machine waiting at the menu with a fresh round.
func NewMachine(cfg round.Config, rng *rand.Rand, logger logr.Logger, tracer trace.Tracer) *Machine {
	return &Machine{
		cfg:    cfg,
		rng:    rng,
		input:  Input{State: StateMenu, Dir: world.South},
		round:  round.New(cfg, rng, 0),
		log:    logger,
		tracer: tracer,
	}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.input.State
}

// Direction returns the latched heading.
func (m *Machine) Direction() world.Direction {
	return m.input.Dir
}

// Round returns the current round.
func (m *Machine) Round() *round.Round {
	return m.round
}

// Highscore returns the best score of the process so far.
func (m *Machine) Highscore() int {
	return m.round.Score.Highscore
}

// Tick runs one step: fold events, apply the transition, and simulate if the
// tick both began and ended in an active state. Returns the resulting state.
func (m *Machine) Tick(ctx context.Context, events []Event) State {
	prev := m.input
	next := prev.Fold(events)

	// Resuming a paused round keeps any growth that was owed.
	if next.State == StatePlaying && m.round.GrowthPending() {
		next.State = StateGrowthPending
	}

	m.setState(ctx, next.State)

	// The heading only changes on a tick that moves the snake, so reversal is
	// always judged against the direction of the last step.
	if !prev.State.Active() || !m.input.State.Active() {
		return m.input.State
	}
	m.input.Dir = next.Dir

	switch m.round.Step(m.input.Dir) {
	case round.OutcomeGrow:
		m.setState(ctx, StateGrowthPending)
	case round.OutcomeCollision:
		m.setState(ctx, StateGameOver)
	default:
		m.setState(ctx, StatePlaying)
	}
	return m.input.State
}

// Frame returns a snapshot of everything the renderer needs.
func (m *Machine) Frame() Frame {
	return Frame{
		Width:  m.round.Grid.Width,
		Height: m.round.Grid.Height,
		Cells:  m.round.Grid.Rows(),
		Snake:  m.round.Snake.Segments(),
		Score:  m.round.Score,
		State:  m.input.State,
	}
}

// setState records a transition and runs its side effects.
func (m *Machine) setState(ctx context.Context, to State) {
	from := m.input.State
	if from == to {
		return
	}
	m.input.State = to
	m.log.V(1).Info("state transition", "from", from.String(), "to", to.String())

	switch {
	case from == StateMenu && to == StatePlaying:
		m.startRound(ctx)
	case to == StateGameOver:
		m.endRound(ctx)
	case from == StateGameOver && to == StateMenu:
		m.resetRound(ctx)
	}
}

// startRound records the start of play.
func (m *Machine) startRound(ctx context.Context) {
	_, span := m.tracer.Start(ctx, "round.start")
	span.SetAttributes(
		attribute.String("round.id", m.round.ID),
		attribute.Int("grid.width", m.round.Grid.Width),
		attribute.Int("grid.height", m.round.Grid.Height),
		attribute.Int("score.highscore", m.round.Score.Highscore),
	)
	span.End()

	m.log.Info("round started", "round", m.round.ID)
}

// endRound records a finished round.
func (m *Machine) endRound(ctx context.Context) {
	r := m.round
	_, span := m.tracer.Start(ctx, "round.end")
	span.SetAttributes(
		attribute.String("round.id", r.ID),
		attribute.String("cause", "collision"),
		attribute.Int("score", r.Score.Score),
		attribute.Int("score.highscore", r.Score.Highscore),
		attribute.Int("snake.length", r.Snake.Len()),
		attribute.Int("ticks", r.Ticks),
	)
	span.End()

	m.log.Info("round over", "round", r.ID, "score", r.Score.Score, "highscore", r.Score.Highscore, "ticks", r.Ticks)
}

// resetRound discards the finished round and prepares a new one, keeping the highscore.
func (m *Machine) resetRound(ctx context.Context) {
	highscore := m.round.Score.Highscore
	m.round = round.New(m.cfg, m.rng, highscore)
	m.input.Dir = world.South

	_, span := m.tracer.Start(ctx, "round.reset")
	span.SetAttributes(
		attribute.String("round.id", m.round.ID),
		attribute.Int("score.highscore", highscore),
	)
	span.End()
}
