package snake

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/vovakirdan/golden-snake/internal/core"
)

// Each board cell is drawn two columns wide so cells look square.
const cellColumns = 2

// hudHeight is the number of lines above the board.
const hudHeight = 1

// BoardSize returns the screen size needed to draw the board with its
// border and HUD.
func BoardSize(grid core.Grid) (w, h int) {
	return grid.Cols()*cellColumns + 2, grid.Rows() + 2 + hudHeight
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderFrame(dst, g.Frame())
}

// RenderFrame draws a frame to the screen.
func RenderFrame(dst *core.Screen, f Frame) {
	dst.Clear()

	needW, needH := BoardSize(f.Grid)
	if dst.Width() < needW || dst.Height() < needH {
		renderOverlay(dst, core.ColorWhite,
			"Window too small",
			fmt.Sprintf("Resize to at least %dx%d", needW, needH))
		return
	}

	originX := (dst.Width() - needW) / 2
	originY := hudHeight

	dst.DrawText(originX, 0, f.HUD(), ColorText)
	dst.DrawBox(core.NewRect(originX, originY, needW, f.Grid.Rows()+2), ColorBorder)

	for _, sp := range f.Sprites {
		for _, p := range sp.Cells {
			if !f.Grid.Contains(p) {
				continue
			}
			col, row := f.Grid.ColRow(p)
			dst.DrawText(originX+1+col*cellColumns, originY+1+row, sp.Shape, sp.Color)
		}
	}

	if f.GameOver {
		renderOverlay(dst, f.MessageColor, slices.Concat(f.Message, []string{"", RestartHint})...)
	}
}

// renderOverlay draws a bordered box with centered lines in the middle of
// the screen. The last line is always drawn as plain text.
func renderOverlay(dst *core.Screen, color core.Color, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(l))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, ColorBorder)

	for i, l := range lines {
		c := color
		if i == len(lines)-1 {
			c = ColorText
		}
		dst.DrawTextCentered(boxY+1+i, l, c)
	}
}
