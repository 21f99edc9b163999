package round

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/samdwyer/asciisnake/internal/entity"
	"github.com/samdwyer/asciisnake/internal/world"
)

// ErrCellOccupied is returned when food is placed on a wall or the snake.
var ErrCellOccupied = errors.New("cell is occupied")

// Config holds the parameters a round is created with.
type Config struct {
	Width     int
	Height    int
	Start     world.Position // Tail of the initial snake; the head sits one cell south
	SpawnOdds int            // 1-in-N food spawn roll per step, 0 disables
}

// DefaultConfig returns the classic 60x25 field with a 1-in-30 spawn roll.
func DefaultConfig() Config {
	return Config{
		Width:     world.DefaultWidth,
		Height:    world.DefaultHeight,
		Start:     world.Position{X: 10, Y: 10},
		SpawnOdds: DefaultSpawnOdds,
	}
}

// Round owns all state of a single game from start to game over.
// It is discarded as a unit when the player returns to the menu.
type Round struct {
	ID    string
	Grid  *world.Grid
	Snake *entity.Snake
	Score ScoreBoard
	Ticks int

	spawner       *Spawner
	growthPending bool
}

// New creates a fresh round: new grid, a length-2 snake heading south,
// score zero and the given highscore carried over.
func New(cfg Config, rng *rand.Rand, highscore int) *Round {
	grid := world.NewGrid(cfg.Width, cfg.Height)

	// Keep both initial segments inside the wall ring on small grids.
	tail := world.Position{
		X: max(1, min(cfg.Start.X, cfg.Width-2)),
		Y: max(1, min(cfg.Start.Y, cfg.Height-3)),
	}
	head := tail.Step(world.South)

	r := &Round{
		ID:      uuid.NewString(),
		Grid:    grid,
		Snake:   entity.NewSnake(head, tail),
		Score:   NewScoreBoard(highscore),
		spawner: NewSpawner(cfg.SpawnOdds, rng),
	}
	r.refresh(head)
	return r
}

// GrowthPending returns true if the snake grows at the start of the next step.
func (r *Round) GrowthPending() bool {
	return r.growthPending
}

// Step advances the round by one tick in the given direction.
func (r *Round) Step(dir world.Direction) Outcome {
	// Growth is deferred by one tick: the tail extends before the next advance.
	if r.growthPending {
		r.Snake.Grow(r.Snake.GrowthPosition(r.Grid))
		r.growthPending = false
	}

	oldTail := r.Snake.Tail()
	head := r.Snake.Advance(dir, r.Grid)

	// Classify against last tick's occupancy.
	cell, err := r.Grid.CellAt(head)
	if err != nil {
		panic(fmt.Sprintf("round: clamped head escaped the grid: %v", err))
	}
	outcome := Resolve(cell, &r.Score)
	if outcome == OutcomeGrow {
		r.growthPending = true
	}

	r.refresh(oldTail)
	r.spawner.TrySpawn(r.Grid, r.Snake)
	r.Ticks++

	return outcome
}

// PlaceFood marks p as food. It fails if p is off the grid, a wall, or under the snake.
func (r *Round) PlaceFood(p world.Position) error {
	cell, err := r.Grid.CellAt(p)
	if err != nil {
		return err
	}
	if cell == world.CellWall || r.Snake.Occupies(p) {
		return fmt.Errorf("place food at (%d,%d): %w", p.X, p.Y, ErrCellOccupied)
	}
	r.Grid.Mark(p, world.CellFood)
	return nil
}

// refresh re-marks snake occupancy after a move.
func (r *Round) refresh(oldTail world.Position) {
	r.Grid.Mark(oldTail, world.CellEmpty)

	segments := r.Snake.Segments()
	for _, p := range segments[1:] {
		r.Grid.Mark(p, world.CellSnakeBody)
	}
	r.Grid.Mark(segments[0], world.CellSnakeHead)
}
