package tui

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game2048"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)

	boardW = game2048.Size*cellWidth + 1  // +1 for right border
	boardH = game2048.Size*cellHeight + 1 // +1 for bottom border

	hudHeight = 3 // Title, score line, blank

	buttonW   = 5
	buttonH   = 3
	buttonGap = 2

	// Minimum screen: board, buttons, status and share lines.
	minScreenW = boardW + 2
	minScreenH = hudHeight + boardH + 1 + buttonH + 2
)

// buttonOrder is the on-screen order of the direction buttons.
var buttonOrder = []core.Action{core.ActionUp, core.ActionLeft, core.ActionRight, core.ActionDown}

var buttonLabels = map[core.Action]rune{
	core.ActionUp:    '↑',
	core.ActionLeft:  '←',
	core.ActionRight: '→',
	core.ActionDown:  '↓',
}

// layout holds the positions of everything drawn on the game screen.
type layout struct {
	board    core.Rect
	buttons  map[core.Action]core.Rect
	statusY  int
	shareY   int
	tooSmall bool
}

// newLayout centers the board and buttons horizontally on a screen of the
// given size.
func newLayout(width, height int) layout {
	l := layout{
		tooSmall: width < minScreenW || height < minScreenH,
		buttons:  make(map[core.Action]core.Rect, len(buttonOrder)),
	}

	boardX := core.Max((width-boardW)/2, 0)
	l.board = core.NewRect(boardX, hudHeight, boardW, boardH)

	rowW := len(buttonOrder)*buttonW + (len(buttonOrder)-1)*buttonGap
	x := core.Max((width-rowW)/2, 0)
	y := l.board.Bottom() + 1
	for _, a := range buttonOrder {
		l.buttons[a] = core.NewRect(x, y, buttonW, buttonH)
		x += buttonW + buttonGap
	}

	l.statusY = y + buttonH
	l.shareY = l.statusY + 1
	return l
}

// buttonAt returns the direction button under (x, y), if any.
func (l layout) buttonAt(x, y int) (core.Action, bool) {
	if l.tooSmall {
		return core.ActionNone, false
	}
	for _, a := range buttonOrder {
		if l.buttons[a].Contains(x, y) {
			return a, true
		}
	}
	return core.ActionNone, false
}

// drawGame renders the session, the buttons and the status lines.
func drawGame(dst *core.Screen, l layout, s *game2048.Session, status, share string) {
	dst.Clear()

	if l.tooSmall {
		drawTooSmall(dst)
		return
	}

	drawHUD(dst, l.board, s)
	drawBoard(dst, l.board, s.Grid())
	drawButtons(dst, l)

	if s.GameOver() {
		drawOverlay(dst, l.board, "GAME OVER", fmt.Sprintf("Score: %d", s.Score()), "R: new game")
	}

	if status != "" {
		dst.DrawTextCentered(l.statusY, status)
	}
	if share != "" {
		dst.DrawTextCentered(l.shareY, share)
	}
}

// drawTooSmall shows a "window too small" message.
func drawTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// drawHUD draws the title, score and max tile.
func drawHUD(dst *core.Screen, board core.Rect, s *game2048.Session) {
	title := "2048"
	dst.DrawTextColor(board.X+(board.W-len(title))/2, 0, title, core.ColorOrange)

	dst.DrawText(board.X, 1, fmt.Sprintf("Score: %d", s.Score()))

	maxStr := fmt.Sprintf("Max: %d", s.Grid().MaxTile())
	dst.DrawText(core.Max(board.Right()-len(maxStr), board.X), 1, maxStr)
}

// drawBoard draws the grid lines and the tiles.
func drawBoard(dst *core.Screen, board core.Rect, g game2048.Grid) {
	const n = game2048.Size
	for y := range n + 1 {
		for x := range n + 1 {
			px := board.X + x*cellWidth
			py := board.Y + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColor(px, py, corner, core.ColorGray)

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', core.ColorGray)
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for r := range n {
		for c := range n {
			val := g[r][c]
			if val == 0 {
				continue
			}

			cellX := board.X + c*cellWidth + 1
			cellY := board.Y + r*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := core.Clamp((cellWidth-1-len(valStr))/2, 0, cellWidth-1)
			dst.DrawTextColor(cellX+padLeft, cellY, valStr, core.TileColor(val))
		}
	}
}

// drawButtons draws the four clickable direction buttons.
func drawButtons(dst *core.Screen, l layout) {
	for _, a := range buttonOrder {
		r := l.buttons[a]
		dst.DrawBox(r, core.ColorCyan)
		cx, cy := r.Center()
		dst.SetColor(cx, cy, buttonLabels[a], core.ColorBrightCyan)
	}
}

// drawOverlay draws a boxed message centered on the board.
func drawOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	centerX, centerY := board.Center()
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightRed)

	for i, line := range lines {
		dst.DrawTextColor(centerX-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}
