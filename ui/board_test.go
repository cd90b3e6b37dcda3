package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renju-local/config"
	"renju-local/engine"
	"renju-local/engine/renju"
	"renju-local/types"
)

func newTestBoard(t *testing.T) (*BoardUI, *tview.TextView) {
	t.Helper()
	cfg := config.DefaultConfig
	hint := tview.NewTextView()
	board := NewBoard(&cfg, hint)
	CreateGameLayout(board, hint)

	gameCfg := engine.GameConfig{PlayerBlack: "Alice", PlayerWhite: "Bob"}
	board.ConnectEngine(renju.NewEngine(gameCfg, nil), gameCfg)
	t.Cleanup(board.Close)
	return board, hint
}

func play(b *BoardUI, moves ...string) {
	for _, m := range moves {
		pos := renju.ParseMove(m)
		b.PlayMove(pos.Row, pos.Col)
	}
}

func TestMoveSelection(t *testing.T) {
	board, _ := newTestBoard(t)
	assert.Nil(t, board.SelectedTile())

	// First movement selects the center when nothing has been played.
	board.MoveSelection(1, 0)
	require.NotNil(t, board.SelectedTile())
	assert.Equal(t, types.BoardPos{Row: 7, Col: 7}, *board.SelectedTile())

	board.MoveSelection(1, 0)
	board.MoveSelection(0, -1)
	assert.Equal(t, types.BoardPos{Row: 6, Col: 8}, *board.SelectedTile())

	// Selection stops at the edge.
	for i := 0; i < 20; i++ {
		board.MoveSelection(-1, 0)
	}
	assert.Equal(t, 0, board.SelectedTile().Col)

	board.ResetSelection()
	play(board, "C3")
	board.MoveSelection(0, 1)
	assert.Equal(t, renju.ParseMove("C3"), *board.SelectedTile())
}

func TestBoardFollowsEngine(t *testing.T) {
	board, hint := newTestBoard(t)

	play(board, "H8", "I8")
	assert.Equal(t, types.Black, board.BoardState.Board[7][7])
	assert.Equal(t, types.White, board.BoardState.Board[7][8])
	assert.Equal(t, types.Black, board.BoardState.PlayerToMove)
	require.Len(t, board.moveHistory, 2)
	assert.Equal(t, MoveEntry{Pos: types.BoardPos{Row: 7, Col: 8}, Color: types.White}, board.moveHistory[1])
	assert.Contains(t, hint.GetText(true), "Black to move (Alice)")

	panel := board.infoPanel.Text()
	assert.Contains(t, panel, "Alice")
	assert.Contains(t, panel, "Bob")
	assert.Contains(t, panel, "H8")
	assert.Contains(t, panel, "I8")

	board.Undo()
	require.Len(t, board.moveHistory, 1)
	assert.Equal(t, types.Empty, board.BoardState.Board[7][8])
	assert.Contains(t, hint.GetText(true), "White to move (Bob)")

	board.Redo()
	require.Len(t, board.moveHistory, 2)
	assert.Equal(t, types.White, board.BoardState.Board[7][8])
}

func TestBoardReportsErrors(t *testing.T) {
	board, hint := newTestBoard(t)

	board.Undo()
	assert.Contains(t, hint.GetText(true), "Nothing to undo")

	play(board, "H8", "H8")
	assert.Contains(t, hint.GetText(true), "Invalid move")
	assert.Equal(t, types.White, board.BoardState.PlayerToMove)

	play(board, "I8")
	assert.NotContains(t, hint.GetText(true), "Invalid move")

	board.Redo()
	assert.Contains(t, hint.GetText(true), "Nothing to redo")
}

func TestBoardGameOver(t *testing.T) {
	board, hint := newTestBoard(t)
	board.MoveSelection(0, 0)

	play(board, "A1", "A2", "B1", "B2", "C1", "C2", "D1", "D2", "E1")
	assert.True(t, board.BoardState.Finished())
	assert.Equal(t, types.Black, board.BoardState.Winner)
	assert.Nil(t, board.SelectedTile())
	assert.Contains(t, hint.GetText(true), "Black Win! (Alice)")
	assert.Contains(t, board.infoPanel.Text(), "Black Win!")

	for col := 0; col < 5; col++ {
		assert.True(t, board.BoardState.InWinningLine(14, col))
	}

	board.MoveSelection(1, 0)
	assert.Nil(t, board.SelectedTile())
}

func TestFocusMode(t *testing.T) {
	board, hint := newTestBoard(t)
	assert.False(t, board.IsFocusMode())

	assert.True(t, board.ToggleFocusMode())
	assert.Contains(t, hint.GetText(true), "f to toggle")
	assert.NotContains(t, hint.GetText(true), "to move")

	board.SetFocusMode(false)
	assert.False(t, board.IsFocusMode())
	assert.Contains(t, hint.GetText(true), "to move")
}

func TestDraw(t *testing.T) {
	board, _ := newTestBoard(t)
	play(board, "A15", "O1")

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(60, 20)

	board.Box.SetRect(0, 0, 60, 20)
	board.Box.Draw(screen)

	runeAt := func(x, y int) rune {
		r, _, _, _ := screen.GetContent(x, y)
		return r
	}
	theme := config.DefaultTheme

	// Cells are two columns wide, starting after the row labels.
	assert.Equal(t, theme.Symbols.BlackStone, runeAt(4, 0))
	assert.Equal(t, theme.Symbols.WhiteStone, runeAt(4+14*2, 14))
	assert.Equal(t, theme.Symbols.StarPoint, runeAt(4+7*2, 7))
	assert.Equal(t, '┼', runeAt(4+5*2, 5))
	assert.Equal(t, '┐', runeAt(4+14*2, 0))

	// Row labels count up from the bottom; columns are lettered.
	assert.Equal(t, '1', runeAt(1, 0))
	assert.Equal(t, '5', runeAt(2, 0))
	assert.Equal(t, '1', runeAt(2, 14))
	assert.Equal(t, 'A', runeAt(4, 16))
	assert.Equal(t, 'O', runeAt(4+14*2, 16))
}
