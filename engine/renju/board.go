// Package renju implements a local five-in-a-row engine: the board,
// win detection, coordinate notation and the game session.
package renju

import (
	"fmt"

	"renju-local/types"
)

// Board holds cell occupancy and the ordered list of placed stones.
// History is the only source of truth for Undo.
type Board struct {
	cells   [types.LineNum][types.LineNum]types.Cell
	history []types.BoardPos
}

// NewBoard creates an empty board with star markers on the star points.
func NewBoard() *Board {
	b := &Board{}
	for row := 0; row < types.LineNum; row++ {
		for col := 0; col < types.LineNum; col++ {
			b.cells[row][col] = emptyCell(row, col)
		}
	}
	return b
}

// emptyCell returns what an unoccupied intersection holds.
func emptyCell(row, col int) types.Cell {
	if types.IsStarPoint(row, col) {
		return types.StarMarker
	}
	return types.Empty
}

// Place puts a stone of the given color at row, col.
// The board is left untouched on error.
func (b *Board) Place(row, col int, color types.Cell) error {
	if !color.IsStone() {
		return fmt.Errorf("%w: %s is not a stone color", ErrInvalidMove, color)
	}
	pos := types.BoardPos{Row: row, Col: col}
	if !pos.InRange() {
		return fmt.Errorf("%w: (%d, %d) is out of range", ErrInvalidMove, row, col)
	}
	if b.cells[row][col].IsStone() {
		return fmt.Errorf("%w: %s is occupied", ErrInvalidMove, FormatMove(pos))
	}
	b.cells[row][col] = color
	b.history = append(b.history, pos)
	return nil
}

// Undo removes the most recent stone and returns its position and color.
func (b *Board) Undo() (types.BoardPos, types.Cell, error) {
	if len(b.history) == 0 {
		return types.NoPos, types.Empty, ErrEmptyHistory
	}
	last := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	color := b.cells[last.Row][last.Col]
	b.cells[last.Row][last.Col] = emptyCell(last.Row, last.Col)
	return last, color, nil
}

// CellAt returns the content of row, col. Positions off the board read as Empty.
func (b *Board) CellAt(row, col int) types.Cell {
	if !(types.BoardPos{Row: row, Col: col}).InRange() {
		return types.Empty
	}
	return b.cells[row][col]
}

// Len returns the number of stones on the board.
func (b *Board) Len() int {
	return len(b.history)
}

// LastMove returns the most recent placement, or types.NoPos.
func (b *Board) LastMove() types.BoardPos {
	if len(b.history) == 0 {
		return types.NoPos
	}
	return b.history[len(b.history)-1]
}

// History returns a copy of the placements in play order.
func (b *Board) History() []types.BoardPos {
	h := make([]types.BoardPos, len(b.history))
	copy(h, b.history)
	return h
}

// ColorOf returns the color of the n-th move (0-based). Black moves first.
func ColorOf(n int) types.Cell {
	if n%2 == 0 {
		return types.Black
	}
	return types.White
}

// cellRows copies the grid into the slice form used by types.BoardState.
func (b *Board) cellRows() [][]types.Cell {
	rows := make([][]types.Cell, types.LineNum)
	for row := range rows {
		rows[row] = make([]types.Cell, types.LineNum)
		copy(rows[row], b.cells[row][:])
	}
	return rows
}
