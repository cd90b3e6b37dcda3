package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"renju-local/engine/renju"
	"renju-local/types"
)

// GameInfoPanel displays game information and move history alongside the board.
type GameInfoPanel struct {
	box         *tview.TextView
	boardState  *types.BoardState
	playerBlack string
	playerWhite string
	moveHistory *[]MoveEntry
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box:         tview.NewTextView(),
		playerBlack: "Black",
		playerWhite: "White",
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoardState updates the panel with current board state.
func (p *GameInfoPanel) SetBoardState(state *types.BoardState) {
	p.boardState = state
	p.refresh()
}

// SetPlayers sets the names shown for each color.
func (p *GameInfoPanel) SetPlayers(black, white string) {
	p.playerBlack = black
	p.playerWhite = white
	p.refresh()
}

// SetMoveHistory sets a pointer to the move history slice.
func (p *GameInfoPanel) SetMoveHistory(history *[]MoveEntry) {
	p.moveHistory = history
}

// Text returns the panel contents as last rendered.
func (p *GameInfoPanel) Text() string {
	return p.box.GetText(false)
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	if p.boardState == nil {
		p.box.SetText("")
		return
	}

	var text string

	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Black:[-:-:-] %s\n", tview.Escape(p.playerBlack))
	text += fmt.Sprintf("[white]White:[-:-:-] %s\n", tview.Escape(p.playerWhite))
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", p.boardState.MoveNumber)

	if p.boardState.Finished() {
		text += fmt.Sprintf("[yellow]%s[-]\n", p.boardState.Outcome)
	} else {
		text += fmt.Sprintf("[white]To move:[-:-:-] %s\n", p.boardState.PlayerToMove)
	}

	if p.moveHistory != nil && len(*p.moveHistory) > 0 {
		text += "\n[white::b]Moves[-:-:-]\n"
		text += "[dimgray]──────────────────────[-:-:-]\n"

		moves := *p.moveHistory
		// Show last N moves that fit, with scroll
		maxVisible := 12
		start := 0
		if len(moves) > maxVisible {
			start = len(moves) - maxVisible
		}

		for i := start; i < len(moves); i++ {
			m := moves[i]

			colorStr := "[white]B[-]"
			if m.Color == types.White {
				colorStr = "[dimgray]W[-]"
			}

			marker := " "
			if i == len(moves)-1 {
				marker = "[white]>[-]"
			}

			text += fmt.Sprintf("%s[dimgray]%3d.[-] %s %s\n", marker, i+1, colorStr, renju.FormatMove(m.Pos))
		}

		if start > 0 {
			text += fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start)
		}
	}

	p.box.SetText(text)
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	gameFrame := tview.NewFlex()
	RebuildNormalLayout(gameFrame, board, hint)
	return gameFrame
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form tview.Primitive, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)        // Left spacer
	centered.AddItem(form, maxWidth, 0, true) // Form with max width
	centered.AddItem(nil, 0, 1, false)        // Right spacer

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()

	// Store panel reference in board for updates
	board.infoPanel = infoPanel
	infoPanel.SetMoveHistory(&board.moveHistory)
	if board.gameConfig.PlayerBlack != "" {
		infoPanel.SetPlayers(board.gameConfig.PlayerBlack, board.gameConfig.PlayerWhite)
	}
	if board.BoardState != nil {
		infoPanel.SetBoardState(board.BoardState)
	}

	// Create horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)         // Board (flexible, takes remaining space)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false) // Info panel (fixed width)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 6, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *BoardUI) {
	gameFrame.Clear()

	boardWidth := types.LineNum*2 + 4 // 2 chars per cell + coordinates
	boardHeight := types.LineNum + 2  // + coordinates
	if board.BoardState != nil && board.BoardState.Width() > 0 {
		boardWidth = board.BoardState.Width()*2 + 4
		boardHeight = board.BoardState.Height() + 2
	}

	// Center board with flex spacers
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)               // left spacer
	centerRow.AddItem(board.Box, boardWidth, 0, true) // board (fixed width)
	centerRow.AddItem(nil, 0, 1, false)               // right spacer

	gameFrame.AddItem(centerRow, boardHeight, 0, true) // center row (fixed height)
	gameFrame.AddItem(nil, 0, 1, false)                // bottom spacer
}
