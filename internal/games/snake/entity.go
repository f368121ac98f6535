package snake

import "github.com/vovakirdan/golden-snake/internal/core"

// Palette colors, matching the classic board.
const (
	ColorSnake  = core.ColorGreen
	ColorApple  = core.ColorRed
	ColorGolden = core.ColorGold
	ColorBorder = core.ColorCyan
	ColorText   = core.ColorWhite
)

// SpriteKind enumerates everything that can be drawn on the board.
type SpriteKind int

const (
	SpriteSnake SpriteKind = iota
	SpriteHead
	SpriteApple
	SpriteGolden
)

func (k SpriteKind) String() string {
	switch k {
	case SpriteSnake:
		return "snake"
	case SpriteHead:
		return "head"
	case SpriteApple:
		return "apple"
	case SpriteGolden:
		return "golden"
	default:
		return "unknown"
	}
}

// Sprite is the drawable view of an entity: where it is and how it looks.
// Shape is exactly two runes, one terminal column pair per board cell.
type Sprite struct {
	Kind  SpriteKind
	Cells []core.Point
	Color core.Color
	Shape string
}

var shapes = map[SpriteKind]string{
	SpriteSnake:  "██",
	SpriteHead:   "▓▓",
	SpriteApple:  "()",
	SpriteGolden: "<>",
}

func newSprite(kind SpriteKind, color core.Color, cells ...core.Point) Sprite {
	return Sprite{Kind: kind, Cells: cells, Color: color, Shape: shapes[kind]}
}

// occupancy is a set of taken cells.
type occupancy map[core.Point]struct{}

func occupied(groups ...[]core.Point) occupancy {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	set := make(occupancy, n)
	for _, g := range groups {
		for _, p := range g {
			set[p] = struct{}{}
		}
	}
	return set
}

func (o occupancy) has(p core.Point) bool {
	_, ok := o[p]
	return ok
}
