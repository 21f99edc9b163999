package round

import (
	"math/rand"

	"github.com/samdwyer/asciisnake/internal/entity"
	"github.com/samdwyer/asciisnake/internal/world"
)

// DefaultSpawnOdds gives a 1-in-30 spawn attempt per playing tick.
const DefaultSpawnOdds = 30

// Spawner places food on free cells.
type Spawner struct {
	odds int
	rng  *rand.Rand
}

// NewSpawner creates a spawner that attempts a spawn with probability 1/odds
// per roll. Odds of zero or less disable spawning.
func NewSpawner(odds int, rng *rand.Rand) *Spawner {
	return &Spawner{odds: odds, rng: rng}
}

// Roll decides whether this tick attempts a spawn.
// The probability is fixed, independent of how full the board is.
func (s *Spawner) Roll() bool {
	if s.odds <= 0 {
		return false
	}
	return s.rng.Intn(s.odds) == 0
}

// Spawn marks a uniformly random empty cell not occupied by the snake as food.
// Returns false without touching the grid when no such cell exists.
func (s *Spawner) Spawn(grid *world.Grid, snake *entity.Snake) (world.Position, bool) {
	free := grid.FreeCells()
	candidates := free[:0]
	for _, p := range free {
		if !snake.Occupies(p) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return world.Position{}, false
	}

	p := candidates[s.rng.Intn(len(candidates))]
	grid.Mark(p, world.CellFood)
	return p, true
}

// TrySpawn rolls and, on success, spawns food.
func (s *Spawner) TrySpawn(grid *world.Grid, snake *entity.Snake) (world.Position, bool) {
	if !s.Roll() {
		return world.Position{}, false
	}
	return s.Spawn(grid, snake)
}
