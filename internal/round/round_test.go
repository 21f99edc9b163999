package round

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/asciisnake/internal/entity"
	"github.com/samdwyer/asciisnake/internal/world"
)

// quietConfig returns the default field with food spawning disabled.
func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.SpawnOdds = 0
	return cfg
}

func newTestRound(t *testing.T, cfg Config) *Round {
	t.Helper()
	return New(cfg, rand.New(rand.NewSource(12345)), 0)
}

func cellAt(t *testing.T, g *world.Grid, p world.Position) world.Cell {
	t.Helper()
	c, err := g.CellAt(p)
	require.NoError(t, err)
	return c
}

// setSnake replaces the round's snake and re-marks a clean grid.
func setSnake(r *Round, head world.Position, body ...world.Position) {
	r.Grid = world.NewGrid(r.Grid.Width, r.Grid.Height)
	r.Snake = entity.NewSnake(head, body...)
	r.refresh(head)
}

func TestNewRound(t *testing.T) {
	r := New(quietConfig(), rand.New(rand.NewSource(1)), 7)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, 2, r.Snake.Len())
	assert.Equal(t, world.Position{X: 10, Y: 11}, r.Snake.Head())
	assert.Equal(t, world.Position{X: 10, Y: 10}, r.Snake.Tail())
	assert.Equal(t, 0, r.Score.Score)
	assert.Equal(t, 7, r.Score.Highscore)
	assert.False(t, r.GrowthPending())

	assert.Equal(t, world.CellSnakeHead, cellAt(t, r.Grid, r.Snake.Head()))
	assert.Equal(t, world.CellSnakeBody, cellAt(t, r.Grid, r.Snake.Tail()))
	assert.Equal(t, 0, r.Grid.Count(world.CellFood))
}

func TestNewRoundSmallGrid(t *testing.T) {
	cfg := quietConfig()
	cfg.Width, cfg.Height = world.MinSize, world.MinSize
	r := newTestRound(t, cfg)

	for _, p := range r.Snake.Segments() {
		assert.NotEqual(t, world.CellWall, cellAt(t, world.NewGrid(cfg.Width, cfg.Height), p),
			"initial segment %v placed on a wall", p)
	}
}

func TestRoundIDsAreUnique(t *testing.T) {
	a := newTestRound(t, quietConfig())
	b := newTestRound(t, quietConfig())
	assert.NotEqual(t, a.ID, b.ID)
}

func TestStepMovesSouth(t *testing.T) {
	r := newTestRound(t, quietConfig())
	start := r.Snake.Head()

	for i := 0; i < 3; i++ {
		require.Equal(t, OutcomeContinue, r.Step(world.South), "step %d", i)
	}

	assert.Equal(t, world.Position{X: start.X, Y: start.Y + 3}, r.Snake.Head())
	assert.Equal(t, 2, r.Snake.Len())
	assert.Equal(t, 3, r.Ticks)

	// Only the current two cells are marked.
	assert.Equal(t, 1, r.Grid.Count(world.CellSnakeHead))
	assert.Equal(t, 1, r.Grid.Count(world.CellSnakeBody))
	assert.Equal(t, world.CellEmpty, cellAt(t, r.Grid, start))
}

func TestStepEatsFoodAndGrowsNextTick(t *testing.T) {
	r := newTestRound(t, quietConfig())
	ahead := r.Snake.Head().Step(world.South)
	require.NoError(t, r.PlaceFood(ahead))

	outcome := r.Step(world.South)
	assert.Equal(t, OutcomeGrow, outcome)
	assert.Equal(t, 1, r.Score.Score)
	assert.Equal(t, 1, r.Score.Highscore)
	assert.True(t, r.GrowthPending())
	assert.Equal(t, 2, r.Snake.Len(), "growth must wait for the next tick")
	assert.Equal(t, world.CellSnakeHead, cellAt(t, r.Grid, ahead), "food should be consumed")

	tailBefore := r.Snake.Tail()
	outcome = r.Step(world.East)
	assert.Equal(t, OutcomeContinue, outcome)
	assert.Equal(t, 3, r.Snake.Len())
	assert.False(t, r.GrowthPending())

	segments := r.Snake.Segments()
	assert.Equal(t, tailBefore, r.Snake.Tail())
	assert.True(t, segments[2].Adjacent(segments[1]), "new tail %v not adjacent to %v", segments[2], segments[1])

	seen := make(map[world.Position]bool)
	for _, p := range segments {
		assert.False(t, seen[p], "segment %v overlaps another segment", p)
		seen[p] = true
	}
	assert.Equal(t, 2, r.Grid.Count(world.CellSnakeBody))
}

func TestStepScoresEveryFood(t *testing.T) {
	r := newTestRound(t, quietConfig())

	for i := 1; i <= 4; i++ {
		require.NoError(t, r.PlaceFood(r.Snake.Head().Step(world.South)))
		require.Equal(t, OutcomeGrow, r.Step(world.South))
		assert.Equal(t, i, r.Score.Score)
		assert.Equal(t, i, r.Score.Highscore)
	}

	r.Step(world.South)
	assert.Equal(t, 6, r.Snake.Len())
}

func TestStepWallCollision(t *testing.T) {
	cfg := quietConfig()
	cfg.Start = world.Position{X: 10, Y: cfg.Height - 3}
	r := newTestRound(t, cfg)
	r.Score = ScoreBoard{Score: 4, Highscore: 9}

	require.Equal(t, world.CellWall, cellAt(t, r.Grid, r.Snake.Head().Step(world.South)))

	assert.Equal(t, OutcomeCollision, r.Step(world.South))
	assert.Equal(t, ScoreBoard{Score: 4, Highscore: 9}, r.Score)
	assert.Equal(t, world.CellWall, cellAt(t, r.Grid, r.Snake.Head()), "walls are never overwritten")
}

func TestStepWallCollisionAllSides(t *testing.T) {
	tests := []struct {
		name string
		head world.Position
		tail world.Position
		dir  world.Direction
	}{
		{"north", world.Position{X: 5, Y: 1}, world.Position{X: 5, Y: 2}, world.North},
		{"east", world.Position{X: 58, Y: 5}, world.Position{X: 57, Y: 5}, world.East},
		{"south", world.Position{X: 5, Y: 23}, world.Position{X: 5, Y: 22}, world.South},
		{"west", world.Position{X: 1, Y: 5}, world.Position{X: 2, Y: 5}, world.West},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRound(t, quietConfig())
			setSnake(r, tt.head, tt.tail)

			assert.Equal(t, OutcomeCollision, r.Step(tt.dir))
			assert.True(t, r.Grid.InBounds(r.Snake.Head()))
		})
	}
}

func TestStepSelfCollision(t *testing.T) {
	r := newTestRound(t, quietConfig())
	// A hook whose head turns back into its own body.
	setSnake(r,
		world.Position{X: 5, Y: 5},
		world.Position{X: 6, Y: 5},
		world.Position{X: 6, Y: 6},
		world.Position{X: 5, Y: 6},
		world.Position{X: 4, Y: 6},
	)

	assert.Equal(t, OutcomeCollision, r.Step(world.South))
}

func TestStepIntoVacatedTailCollides(t *testing.T) {
	r := newTestRound(t, quietConfig())
	// 2x2 loop: the head moves onto the cell the tail leaves this tick,
	// which still reads as body from the previous tick.
	setSnake(r,
		world.Position{X: 5, Y: 5},
		world.Position{X: 6, Y: 5},
		world.Position{X: 6, Y: 6},
		world.Position{X: 5, Y: 6},
	)

	assert.Equal(t, OutcomeCollision, r.Step(world.South))
}

func TestStepNeverLeavesGrid(t *testing.T) {
	cfg := quietConfig()
	cfg.Width, cfg.Height = 8, 8
	r := newTestRound(t, cfg)

	for _, d := range []world.Direction{world.North, world.East, world.South, world.West} {
		for i := 0; i < 20; i++ {
			r.Step(d)
			require.True(t, r.Grid.InBounds(r.Snake.Head()), "head %v left the grid", r.Snake.Head())
		}
	}
}

func TestPlaceFood(t *testing.T) {
	r := newTestRound(t, quietConfig())

	assert.NoError(t, r.PlaceFood(world.Position{X: 20, Y: 20}))
	assert.Equal(t, 1, r.Grid.Count(world.CellFood))

	assert.ErrorIs(t, r.PlaceFood(world.Position{X: 0, Y: 0}), ErrCellOccupied)
	assert.ErrorIs(t, r.PlaceFood(r.Snake.Head()), ErrCellOccupied)
	assert.ErrorIs(t, r.PlaceFood(world.Position{X: -1, Y: 3}), world.ErrOutOfBounds)
}

func TestStepSpawnsFood(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpawnOdds = 1
	r := newTestRound(t, cfg)

	r.Step(world.East)
	assert.Equal(t, 1, r.Grid.Count(world.CellFood))
}
