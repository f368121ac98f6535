package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/golden-snake/internal/core"
)

// ErrNoSpace is returned when every cell of the board is taken.
var ErrNoSpace = errors.New("snake: no free cell")

// placeApple picks a uniformly random cell that is not taken.
// It samples at most maxSamples random cells, then falls back to choosing
// among the remaining free cells directly, so it always terminates.
func placeApple(rng *rand.Rand, grid core.Grid, taken occupancy, maxSamples int) (core.Point, error) {
	for range maxSamples {
		p := grid.RandomCell(rng)
		if !taken.has(p) {
			return p, nil
		}
	}

	free := make([]core.Point, 0, max(0, grid.Cells()-len(taken)))
	for row := range grid.Rows() {
		for col := range grid.Cols() {
			p := grid.CellAt(col, row)
			if !taken.has(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return grid.OffBoard(), ErrNoSpace
	}
	return free[rng.Intn(len(free))], nil
}

// Apple is the regular apple. It is always on the board and is re-placed
// when eaten.
type Apple struct {
	Pos core.Point
}

// Relocate moves the apple to a random free cell.
// On ErrNoSpace the apple is parked off the board.
func (a *Apple) Relocate(rng *rand.Rand, grid core.Grid, taken occupancy, maxSamples int) error {
	p, err := placeApple(rng, grid, taken, maxSamples)
	a.Pos = p
	return err
}

// Sprite returns the drawable view of the apple.
func (a Apple) Sprite() Sprite {
	return newSprite(SpriteApple, ColorApple, a.Pos)
}
