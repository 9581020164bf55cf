package slider

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/samber/lo"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/tiles"
)

const (
	cellWidth  = 6 // Width of each tile box
	cellHeight = 3 // Height of each tile box
	hudHeight  = 3
	footerH    = 1
)

// fitBoard picks the board orientation and position for the current screen.
// Portrait is preferred; the board turns landscape only when portrait does
// not fit and landscape does.
func (g *Game) fitBoard() {
	if g.session == nil {
		g.tooSmall = false
		return
	}
	b := g.session.Board()
	portrait := tiles.Layout{Rows: b.Rows(), Columns: b.Columns()}
	landscape := tiles.Layout{Rows: b.Rows(), Columns: b.Columns(), Landscape: true}

	switch {
	case g.fits(portrait):
		g.layout = portrait
	case g.fits(landscape):
		g.layout = landscape
	default:
		g.layout = portrait
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.session.SetLandscape(g.layout.Landscape)

	w, h := g.boardSize()
	g.boardX = (g.screenW - w) / 2
	g.boardY = hudHeight + (g.screenH-hudHeight-footerH-h)/2
}

func (g *Game) fits(l tiles.Layout) bool {
	rows, cols := l.DisplaySize()
	return cols*cellWidth <= g.screenW && rows*cellHeight+hudHeight+footerH <= g.screenH
}

func (g *Game) boardSize() (w, h int) {
	rows, cols := g.layout.DisplaySize()
	return cols * cellWidth, rows * cellHeight
}

// cellAt returns the display cell under a screen coordinate.
func (g *Game) cellAt(x, y int) (tiles.Cell, bool) {
	w, h := g.boardSize()
	if !core.NewRect(g.boardX, g.boardY, w, h).Contains(x, y) {
		return tiles.Cell{}, false
	}
	return tiles.Cell{
		Row:    (y - g.boardY) / cellHeight,
		Column: (x - g.boardX) / cellWidth,
	}, true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		msg := "Cannot start game"
		if g.err != nil {
			msg = g.err.Error()
		}
		dst.DrawTextCentered(g.screenH/2, msg)
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, move counter, clock and jump warnings.
func (g *Game) renderHUD(dst *core.Screen) {
	w, _ := g.boardSize()
	b := g.session.Board()

	title := fmt.Sprintf("%s - %s", g.Title(), g.difficulty.Title())
	dst.DrawTextCentered(0, title)

	dst.DrawText(g.boardX, 1, fmt.Sprintf("Moves: %d", b.Moves()))
	clock := "Time: " + formatClock(b.Elapsed())
	dst.DrawText(max(g.boardX, g.boardX+w-len(clock)), 1, clock)

	switch {
	case g.warning > 0:
		msg := fmt.Sprintf("Tiles jump in %d!", g.warning)
		dst.DrawTextColor(g.boardX+(w-len(msg))/2, 2, msg, core.ColorRed)
	case g.jumpTicks > 0:
		msg := "Surprise!"
		dst.DrawTextColor(g.boardX+(w-len(msg))/2, 2, msg, core.ColorOrange)
	default:
		msg := fmt.Sprintf("In place: %d/%d", b.MatchedCount(), b.Size())
		dst.DrawTextColor(g.boardX+(w-len(msg))/2, 2, msg, core.ColorGray)
	}
}

// renderBoard draws every tile; the tracked group is drawn last, shifted by
// its live offset.
func (g *Game) renderBoard(dst *core.Screen) {
	b := g.session.Board()
	group, sample, state := g.session.Interaction()
	moving := state == tiles.StateTracking || state == tiles.StateHeld

	for pos := range b.Size() {
		id, _ := b.TileAt(pos)
		if moving && group.Contains(id) {
			continue
		}
		g.drawTile(dst, pos, id, 0, 0, g.tileColor(pos, id, state))
	}

	if !moving {
		return
	}
	dx := int(math.Round(sample.Offset.DX / g.unitX()))
	dy := int(math.Round(sample.Offset.DY / g.unitY()))
	color := core.ColorCyan
	if state == tiles.StateHeld || group.Direction == tiles.DirDrag {
		color = core.ColorMagenta
	}
	for _, id := range group.IDs {
		pos, ok := b.PositionOf(id)
		if !ok {
			continue
		}
		g.drawTile(dst, pos, id, dx, dy, color)
	}
}

func (g *Game) tileColor(pos, id int, state tiles.TrackerState) core.Color {
	switch {
	case g.session.Finished():
		return core.ColorGreen
	case g.jumpTicks > 0 && lo.Contains(g.jumped, id):
		return core.ColorOrange
	case state == tiles.StateIdle && g.layout.ToDisplay(pos) == g.cursor:
		return core.ColorYellow
	case tiles.IsMatched(id, pos):
		return core.ColorGreen
	default:
		return core.ColorBrightWhite
	}
}

// drawTile draws one tile box at a logical position plus a display offset.
// The open tile of a classic board is drawn as an empty slot.
func (g *Game) drawTile(dst *core.Screen, pos, id, dx, dy int, color core.Color) {
	cell := g.layout.ToDisplay(pos)
	r := core.NewRect(
		g.boardX+cell.Column*cellWidth+dx,
		g.boardY+cell.Row*cellHeight+dy,
		cellWidth, cellHeight,
	)

	if open, ok := g.session.Board().OpenID(); ok && id == open {
		if cell == g.cursor && !g.session.Finished() {
			dst.DrawBox(r, core.ColorGray)
		}
		return
	}

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, color)
	label := strconv.Itoa(g.layout.Label(id))
	dst.DrawTextColor(r.X+(cellWidth-len(label))/2, r.Y+1, label, color)
}

func (g *Game) renderFooter(dst *core.Screen) {
	_, h := g.boardSize()
	dst.DrawTextColor(0, min(g.screenH-1, g.boardY+h), centerPad(g.Controls(), g.screenW), core.ColorGray)
}

// renderOverlays draws the pause and solved boxes.
func (g *Game) renderOverlays(dst *core.Screen) {
	w, h := g.boardSize()
	centerX := g.boardX + w/2
	centerY := g.boardY + h/2

	if g.session.Paused() {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.session.Finished() {
		b := g.session.Board()
		g.drawOverlay(dst, centerX, centerY,
			"SOLVED!",
			fmt.Sprintf("%d moves in %s", b.Moves(), formatClock(b.Elapsed())),
			"Press R for a new board")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := lo.Max(lo.Map(lines, func(l string, _ int) int { return len(l) }))

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Cursor | Enter: Tap | Mouse: Drag | P: Pause | R: New | Q: Quit"
}

func formatClock(d time.Duration) string {
	s := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

func centerPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return fmt.Sprintf("%*s", (width+len(s))/2, s)
}
