package snake

import (
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/golden-snake/internal/core"
)

// Snake is the player-controlled snake. Growth is modelled by a target
// length: the tail stops being removed until the body catches up.
type Snake struct {
	body    []core.Point // Head at index 0
	length  int
	dir     core.Direction
	nextDir core.Direction // Buffered direction for the next tick
	hasNext bool

	score     int
	startTime time.Time
	endTime   time.Time
	gameOver  bool
	victory   bool
}

// NewSnake creates a snake already reset at start.
func NewSnake(start core.Point, rng *rand.Rand, now time.Time) *Snake {
	s := &Snake{}
	s.Reset(start, rng, now)
	return s
}

// Reset puts the snake back to a single cell with a random heading and
// clears score, timers and terminal flags.
func (s *Snake) Reset(start core.Point, rng *rand.Rand, now time.Time) {
	s.body = append(s.body[:0], start)
	s.length = 1
	s.dir = core.Directions[rng.Intn(len(core.Directions))]
	s.hasNext = false
	s.score = 0
	s.startTime = now
	s.endTime = time.Time{}
	s.gameOver = false
	s.victory = false
}

// RequestDirection buffers d for the next tick. A request opposite to the
// current direction is dropped. Later requests replace earlier ones.
func (s *Snake) RequestDirection(d core.Direction) bool {
	if d.IsOpposite(s.dir) {
		return false
	}
	s.nextDir = d
	s.hasNext = true
	return true
}

// Tick applies the buffered direction and moves the head one cell.
func (s *Snake) Tick(grid core.Grid) {
	if s.hasNext {
		s.dir = s.nextDir
		s.hasNext = false
	}

	head := grid.Move(s.body[0], s.dir, 1)
	s.body = slices.Insert(s.body, 0, head)
	if len(s.body) > s.length {
		s.body = s.body[:len(s.body)-1]
	}
}

// Feed adds growth to the target length and points to the score.
func (s *Snake) Feed(growth, points int) {
	s.length += growth
	s.score += points
}

// HitsItself reports whether the head shares a cell with the rest of the body.
func (s *Snake) HitsItself() bool {
	return slices.Contains(s.body[1:], s.body[0])
}

// Finish ends the game at now. Only the first call records the end time.
func (s *Snake) Finish(now time.Time, victory bool) {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.victory = victory
	s.endTime = now
}

// Elapsed returns whole seconds played: up to the end of the game if it
// has ended, otherwise up to now.
func (s *Snake) Elapsed(now time.Time) int {
	end := now
	if s.gameOver {
		end = s.endTime
	}
	return int(end.Sub(s.startTime) / time.Second)
}

// Head returns the head cell.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Point {
	return slices.Clone(s.body)
}

// Len returns the current number of body cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Length returns the target length.
func (s *Snake) Length() int {
	return s.length
}

// Direction returns the current heading.
func (s *Snake) Direction() core.Direction {
	return s.dir
}

// Pending returns the buffered direction, if any.
func (s *Snake) Pending() (core.Direction, bool) {
	return s.nextDir, s.hasNext
}

// Score returns the apples collected.
func (s *Snake) Score() int {
	return s.score
}

// GameOver reports whether the game has ended, by loss or victory.
func (s *Snake) GameOver() bool {
	return s.gameOver
}

// Victory reports whether the game ended by filling the board.
func (s *Snake) Victory() bool {
	return s.victory
}

// Sprites returns the drawable views of the body and the head.
func (s *Snake) Sprites() []Sprite {
	return []Sprite{
		newSprite(SpriteSnake, ColorSnake, slices.Clone(s.body[1:])...),
		newSprite(SpriteHead, ColorSnake, s.body[0]),
	}
}
