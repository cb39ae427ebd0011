package game

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// Visual characters for rendering
const (
	PlayerChar    = '▶'
	PlayerBody    = '●'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GateChar      = '┆'
	GroundChar    = '═'
)

// Render draws the current world snapshot to the screen. The world is
// projected onto the full cell grid; entities keep their relative
// proportions regardless of terminal size.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.s == nil {
		return
	}

	// Obstacles first, player on top.
	for _, e := range g.s.Entities() {
		switch e.Kind {
		case sim.KindGround:
			g.drawGround(dst, e)
		case sim.KindHazard:
			g.drawHazard(dst, e)
		case sim.KindScoreGate:
			g.drawGate(dst, e)
		}
	}
	if p, ok := g.s.PlayerSnapshot(); ok {
		g.drawPlayer(dst, p)
	}

	// HUD
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", g.last.Score), core.ColorOrange)

	switch g.last.Mode {
	case sim.ModeIdle:
		dst.DrawTextCentered(dst.Height()/3, "Press Space to start")
	case sim.ModeGameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.last.Score))
	}
}

// cellRect projects a world box onto the cell grid. Boxes are clipped by
// the screen itself; a visible box always covers at least one cell.
func (g *Game) cellRect(dst *core.Screen, b core.Box) (x, y, w, h int) {
	p := g.params
	sx := float64(dst.Width()) / p.FieldW
	sy := float64(dst.Height()) / p.FieldH

	x = int((b.Left() - p.LeftEdge()) * sx)
	y = int((p.FieldH/2 - b.Top()) * sy)
	w = core.Max(1, int(2*b.Half.X*sx))
	h = core.Max(1, int(2*b.Half.Y*sy))
	return x, y, w, h
}

func (g *Game) drawGround(dst *core.Screen, e sim.Entity) {
	_, y, _, h := g.cellRect(dst, e.Box())
	dst.DrawHLine(0, y, dst.Width(), GroundChar, core.ColorRed)
	for row := y + 1; row < y+h; row++ {
		dst.DrawHLine(0, row, dst.Width(), '░', core.ColorRed)
	}
}

func (g *Game) drawHazard(dst *core.Screen, e sim.Entity) {
	x, y, w, h := g.cellRect(dst, e.Box())
	dst.FillRect(x, y, w, h, PipeChar, core.ColorGreen)

	// Cap the edge facing the gap. The upper hazard hangs down from the
	// top of the field, the lower one stands on the ground.
	if e.Box().Top() >= g.params.FieldH/2 {
		dst.DrawHLine(x, y+h-1, w, PipeCapTop, core.ColorGreen)
	} else {
		dst.DrawHLine(x, y, w, PipeCapBottom, core.ColorGreen)
	}
}

func (g *Game) drawGate(dst *core.Screen, e sim.Entity) {
	x, y, w, h := g.cellRect(dst, e.Box())
	for col := x; col < x+w; col++ {
		dst.DrawVLine(col, y, h, GateChar, core.ColorGray)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, p sim.Entity) {
	x, y, w, h := g.cellRect(dst, p.Box())
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if dx == w-1 && dy == 0 {
				dst.SetCell(x+dx, y+dy, PlayerChar, core.ColorBrightYellow)
			} else {
				dst.SetCell(x+dx, y+dy, PlayerBody, core.ColorBrightYellow)
			}
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
