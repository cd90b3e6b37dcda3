// Package ui specifies custom controls for tview to play five-in-a-row in the terminal.
package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"renju-local/config"
	"renju-local/engine"
	"renju-local/engine/renju"
	"renju-local/types"
)

// MoveEntry is one placed stone as listed in the info panel.
type MoveEntry struct {
	Pos   types.BoardPos
	Color types.Cell
}

type BoardUI struct {
	Box         *tview.Box
	BoardState  *types.BoardState
	hint        *tview.TextView
	cfg         *config.Config
	selRow      int
	selCol      int
	eng         engine.GameEngine
	gameConfig  engine.GameConfig
	moveHistory []MoveEntry
	message     string
	styles      []tcell.Color
	infoPanel   *GameInfoPanel
	focusMode   bool
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *BoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *BoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *BoardUI) IsFocusMode() bool {
	return g.focusMode
}

func (g *BoardUI) SelectedTile() *types.BoardPos {
	if g.selRow == -1 && g.selCol == -1 {
		return nil
	}
	return &types.BoardPos{Row: g.selRow, Col: g.selCol}
}

func (g *BoardUI) MoveSelection(dCol, dRow int) {
	if g.BoardState.Finished() {
		g.ResetSelection()
		return
	}
	if g.SelectedTile() == nil {
		g.selRow = g.BoardState.LastMove.Row
		g.selCol = g.BoardState.LastMove.Col
		if g.SelectedTile() == nil {
			// No previous move made, use board center
			g.selRow = g.BoardState.Height() / 2
			g.selCol = g.BoardState.Width() / 2
		}
		return
	}
	if g.selCol+dCol < 0 || g.selCol+dCol >= g.BoardState.Width() {
		return
	}
	if g.selRow+dRow < 0 || g.selRow+dRow >= g.BoardState.Height() {
		return
	}
	g.selCol += dCol
	g.selRow += dRow
}

func (g *BoardUI) ResetSelection() {
	g.selRow = -1
	g.selCol = -1
}

func NewBoard(c *config.Config, hint *tview.TextView) *BoardUI {
	board := &BoardUI{
		Box:        tview.NewBox(),
		BoardState: types.NewBoardState(),
		hint:       hint,
		selRow:     -1,
		selCol:     -1,
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(board.draw)
	return board
}

func (g *BoardUI) draw(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
	state := g.BoardState
	if state == nil || state.Width() == 0 {
		return x, y, 1, 1
	}
	theme := g.cfg.Theme
	// 2 characters per cell for square appearance
	boardW, boardH := state.Width()*2, state.Height()

	for row := 0; row < state.Height(); row++ {
		for col := 0; col < state.Width(); col++ {
			cell := state.Board[row][col]
			stone := 0
			switch cell {
			case types.Black:
				stone = 1
			case types.White:
				stone = 2
			}
			i := stone
			if !theme.DrawStoneBackground {
				i = 0
			}
			// Get color and inverted color
			iInv := 0
			if i == 1 {
				iInv = 2
			} else if i == 2 {
				iInv = 1
			}
			if (col%2 + row%2) == 1 {
				i += 3
				iInv += 3
			}

			var drawRune rune
			var fgColor tcell.Color
			switch {
			case stone == 1:
				drawRune = theme.Symbols.BlackStone
			case stone == 2:
				drawRune = theme.Symbols.WhiteStone
			case theme.UseGridLines:
				drawRune = getGridRune(col, row, state.Width(), state.Height(), types.IsStarPoint(row, col), theme.Symbols.StarPoint)
			case types.IsStarPoint(row, col):
				drawRune = theme.Symbols.StarPoint
			default:
				drawRune = theme.Symbols.BoardSquare
			}

			if stone > 0 {
				if theme.DrawStoneBackground {
					// Cursor color is inverted stone color, or cursor color when not on a stone.
					fgColor = g.styles[iInv]
				} else {
					// There's a stone but no background drawing, adjust the fg color instead to selected stone
					fgColor = g.styles[stone]
				}
			} else {
				// No stone, use line color for grid
				fgColor = g.styles[9]
			}

			if row == g.selRow && col == g.selCol {
				if theme.DrawCursorBackground {
					i = 8
				} else if !theme.UseGridLines {
					drawRune = theme.Symbols.Cursor
				}
			} else if state.InWinningLine(row, col) {
				i = 10
			} else if row == state.LastMove.Row && col == state.LastMove.Col {
				if theme.DrawLastPlayedBackground {
					i = 7
				} else if !theme.UseGridLines {
					drawRune = theme.Symbols.LastPlayed
				}
			}

			style := tcell.StyleDefault.Background(g.styles[i]).Foreground(fgColor)
			if theme.UseGridLines && stone == 0 {
				// Check if there's a stone to the right (no line should connect to it)
				hasStoneRight := col < state.Width()-1 && state.Board[row][col+1].IsStone()
				drawGridCell(screen, style, drawRune, col, row, x+4, y, state.Width(), hasStoneRight)
			} else {
				drawStoneCell(screen, style, drawRune, col, row, x+4, y)
			}
		}
	}
	g.drawCoordinates(screen, x, y)
	// Add offset for coordinate display
	return x, y, boardW + 4, boardH + 2
}

// ConnectEngine connects the board to a game session.
func (g *BoardUI) ConnectEngine(e engine.GameEngine, gameCfg engine.GameConfig) {
	g.eng = e
	g.gameConfig = gameCfg
	g.moveHistory = nil
	g.message = ""
	g.ResetSelection()

	// Engine calls come from input handlers on the tview event loop,
	// which redraws once the handler returns.
	e.OnMove(func(pos types.BoardPos, color types.Cell, state *types.BoardState) {
		g.moveHistory = append(g.moveHistory, MoveEntry{Pos: pos, Color: color})
		g.BoardState = state
		g.refreshHint()
	})
	e.OnUndo(func(_ types.BoardPos, _ types.Cell, state *types.BoardState) {
		if len(g.moveHistory) > 0 {
			g.moveHistory = g.moveHistory[:len(g.moveHistory)-1]
		}
		g.BoardState = state
		g.refreshHint()
	})
	e.OnGameEnd(func(string, types.Cell) {
		g.BoardState = e.GetBoardState()
		g.ResetSelection()
		g.refreshHint()
	})

	g.BoardState = e.GetBoardState()
	if g.infoPanel != nil {
		g.infoPanel.SetPlayers(gameCfg.PlayerBlack, gameCfg.PlayerWhite)
	}
	g.refreshHint()
}

// PlayMove places a stone for the side to move.
func (g *BoardUI) PlayMove(row, col int) {
	if g.eng == nil {
		return
	}
	g.report(g.eng.PlayMove(row, col))
}

// Undo takes back the last stone.
func (g *BoardUI) Undo() {
	if g.eng == nil {
		return
	}
	g.report(g.eng.Undo())
}

// Redo replays the last stone taken back.
func (g *BoardUI) Redo() {
	if g.eng == nil {
		return
	}
	g.report(g.eng.Redo())
}

func (g *BoardUI) report(err error) {
	switch {
	case err == nil:
		g.message = ""
	case errors.Is(err, renju.ErrInvalidMove):
		g.message = "Invalid move"
	case errors.Is(err, renju.ErrEmptyHistory):
		g.message = "Nothing to undo"
	case errors.Is(err, renju.ErrNothingToRedo):
		g.message = "Nothing to redo"
	default:
		g.message = err.Error()
	}
	g.refreshHint()
}

// Close disconnects the engine.
func (g *BoardUI) Close() {
	if g.eng == nil {
		return
	}
	g.eng.Close()
	g.eng = nil
}

func (g *BoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // 0
		tcell.PaletteColor(c.Theme.Colors.BlackColor),        // 1
		tcell.PaletteColor(c.Theme.Colors.WhiteColor),        // 2
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),     // 3
		tcell.PaletteColor(c.Theme.Colors.BlackColorAlt),     // 4
		tcell.PaletteColor(c.Theme.Colors.WhiteColorAlt),     // 5
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),     // 6
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // 7
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // 8
		tcell.PaletteColor(c.Theme.Colors.LineColor),         // 9
		tcell.PaletteColor(c.Theme.Colors.WinLineColorBG),    // 10
	}
	g.cfg = c
}

// playerName returns the configured name for a color.
func (g *BoardUI) playerName(color types.Cell) string {
	if color == types.White {
		return g.gameConfig.PlayerWhite
	}
	return g.gameConfig.PlayerBlack
}

func (g *BoardUI) refreshHint() {
	// Update info panel if available
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
	}

	// Focus mode shows minimal hint
	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	var statusLine, turnLine, controlsLine string

	if g.BoardState.Finished() {
		statusLine = "───────── Game Complete ─────────\n\n"
		if g.BoardState.Winner.IsStone() {
			turnLine = fmt.Sprintf("  Result: %s (%s)\n", g.BoardState.Outcome, g.playerName(g.BoardState.Winner))
		} else {
			turnLine = fmt.Sprintf("  Result: %s\n", g.BoardState.Outcome)
		}
		controlsLine = "\n  u · take back   q · return to menu"
	} else {
		if g.message != "" {
			statusLine = fmt.Sprintf("  ✗ %s\n\n", g.message)
		}

		stone := "●"
		if g.BoardState.PlayerToMove == types.White {
			stone = "○"
		}
		turnLine = fmt.Sprintf("  %s %s to move (%s)\n", stone, g.BoardState.PlayerToMove, g.playerName(g.BoardState.PlayerToMove))

		controlsLine = `
  hjkl/↑↓←→ move   ⏎ play
  u undo   r redo   f focus   q quit`
	}

	g.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}

// drawStoneCell draws a stone cell (2 characters wide)
func drawStoneCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	// Position 1: space (stone covers the area, no line)
	s.SetContent(l+x*2+1, t+y, ' ', nil, c)
}

// drawGridCell draws a cell using box-drawing characters for grid lines
func drawGridCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t, boardWidth int, hasStoneRight bool) {
	// 2-char cell: [intersection][right-line]
	s.SetContent(l+x*2, t+y, r, nil, c)

	// Right connector: space if at right edge or if there's a stone to the right
	rightConn := '─'
	if x == boardWidth-1 || hasStoneRight {
		rightConn = ' '
	}
	s.SetContent(l+x*2+1, t+y, rightConn, nil, c)
}

// getGridRune returns the appropriate box-drawing character for a grid position
func getGridRune(x, y, width, height int, isStar bool, star rune) rune {
	if isStar {
		return star
	}

	isTop := y == 0
	isBottom := y == height-1
	isLeft := x == 0
	isRight := x == width-1

	switch {
	case isTop && isLeft:
		return '┌'
	case isTop && isRight:
		return '┐'
	case isBottom && isLeft:
		return '└'
	case isBottom && isRight:
		return '┘'
	case isTop:
		return '┬'
	case isBottom:
		return '┴'
	case isLeft:
		return '├'
	case isRight:
		return '┤'
	default:
		return '┼'
	}
}

func (g *BoardUI) drawCoordinates(s tcell.Screen, x, y int) {
	hCoord := int('A')
	w, h := g.BoardState.Width(), g.BoardState.Height()
	if g.cfg.Theme.FullWidthLetters {
		hCoord = int('Ａ')
	}

	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(g.styles[8])
	lpHighlight := tcell.StyleDefault.Background(g.styles[7])

	for col := 0; col < w; col++ {
		_style := style
		if col == g.selCol {
			_style = highlight
		} else if col == g.BoardState.LastMove.Col {
			_style = lpHighlight
		}
		// 2-char cells
		s.SetContent(x+4+(col*2), y+h+1, rune(hCoord+col), nil, _style)
		s.SetContent(x+4+(col*2)+1, y+h+1, ' ', nil, _style)
	}

	for row := 0; row < h; row++ {
		_style := style
		if row == g.selRow {
			_style = highlight
		} else if row == g.BoardState.LastMove.Row {
			_style = lpHighlight
		}
		// Labels count up from the bottom line.
		label := h - row
		tensRune := ' '
		if label >= 10 {
			tensRune = rune('0' + label/10)
		}
		s.SetContent(x+1, y+row, tensRune, nil, _style)
		s.SetContent(x+2, y+row, rune('0'+label%10), nil, _style)
	}
}
