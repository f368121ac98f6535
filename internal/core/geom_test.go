package core

import (
	"math/rand"
	"testing"
)

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		d, opposite Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
	}

	for _, tc := range tests {
		t.Run(tc.d.String(), func(t *testing.T) {
			if tc.d.Opposite() != tc.opposite {
				t.Errorf("Opposite() = %v, expected %v", tc.d.Opposite(), tc.opposite)
			}
			if !tc.d.IsOpposite(tc.opposite) {
				t.Errorf("IsOpposite(%v) should be true", tc.opposite)
			}
			if tc.d.IsOpposite(tc.d) {
				t.Error("a direction is never opposite to itself")
			}
			v, o := tc.d.Vector(), tc.opposite.Vector()
			if v.Add(o) != (Point{}) {
				t.Errorf("vectors %v and %v should cancel out", v, o)
			}
		})
	}
}

func TestGridCounts(t *testing.T) {
	g := NewGrid(640, 480, 20)

	if g.Cols() != 32 {
		t.Errorf("Cols() = %d, expected 32", g.Cols())
	}
	if g.Rows() != 24 {
		t.Errorf("Rows() = %d, expected 24", g.Rows())
	}
	if g.Cells() != 768 {
		t.Errorf("Cells() = %d, expected 768", g.Cells())
	}
	if g.Center() != (Point{X: 320, Y: 240}) {
		t.Errorf("Center() = %v, expected (320, 240)", g.Center())
	}
	if g.Contains(g.OffBoard()) {
		t.Error("OffBoard() must not be on the board")
	}
}

func TestGridMove(t *testing.T) {
	g := NewGrid(640, 480, 20)

	tests := []struct {
		name     string
		from     Point
		dir      Direction
		expected Point
	}{
		{"step right", Point{100, 100}, DirRight, Point{120, 100}},
		{"step down", Point{100, 100}, DirDown, Point{100, 120}},
		{"right edge wraps to column 0", Point{620, 100}, DirRight, Point{0, 100}},
		{"left edge wraps to last column", Point{0, 100}, DirLeft, Point{620, 100}},
		{"top edge wraps to last row", Point{100, 0}, DirUp, Point{100, 460}},
		{"bottom edge wraps to row 0", Point{100, 460}, DirDown, Point{100, 0}},
		{"corner wraps on one axis only", Point{620, 460}, DirRight, Point{0, 460}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := g.Move(tc.from, tc.dir, 1)
			if got != tc.expected {
				t.Errorf("Move(%v, %v) = %v, expected %v", tc.from, tc.dir, got, tc.expected)
			}
		})
	}
}

func TestGridMoveFullLap(t *testing.T) {
	g := NewGrid(640, 480, 20)
	start := Point{X: 40, Y: 60}

	if got := g.Move(start, DirRight, g.Cols()); got != start {
		t.Errorf("moving a full row should return to start, got %v", got)
	}
	if got := g.Move(start, DirUp, g.Rows()); got != start {
		t.Errorf("moving a full column should return to start, got %v", got)
	}
}

func TestGridRandomCell(t *testing.T) {
	g := NewGrid(640, 480, 20)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		p := g.RandomCell(rng)
		if !g.Contains(p) {
			t.Fatalf("RandomCell() = %v is not a cell-aligned board position", p)
		}
	}
}

func TestGridColRow(t *testing.T) {
	g := NewGrid(640, 480, 20)
	p := g.CellAt(5, 7)
	if p != (Point{X: 100, Y: 140}) {
		t.Errorf("CellAt(5, 7) = %v, expected (100, 140)", p)
	}
	col, row := g.ColRow(p)
	if col != 5 || row != 7 {
		t.Errorf("ColRow(%v) = (%d, %d), expected (5, 7)", p, col, row)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}
