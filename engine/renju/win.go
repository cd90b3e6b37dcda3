package renju

import "renju-local/types"

// axis is a line direction; the opposite direction is its negation.
type axis struct {
	dRow, dCol int
}

// Checked in order: vertical, horizontal, diagonal ↘, diagonal ↙.
var axes = [4]axis{
	{1, 0},
	{0, 1},
	{1, 1},
	{1, -1},
}

// CheckWin reports whether the stone at pos completes a line of at least
// types.WinStoneNum stones of its color. Off-board or empty positions never win.
func CheckWin(b *Board, pos types.BoardPos) bool {
	return len(WinningLine(b, pos)) > 0
}

// WinningLine returns the stones of the first axis through pos that holds
// a line of at least types.WinStoneNum, or nil.
func WinningLine(b *Board, pos types.BoardPos) []types.BoardPos {
	if !pos.InRange() {
		return nil
	}
	color := b.CellAt(pos.Row, pos.Col)
	if !color.IsStone() {
		return nil
	}

	for _, a := range axes {
		back := walk(b, pos, -a.dRow, -a.dCol, color)
		forward := walk(b, pos, a.dRow, a.dCol, color)
		if 1+back+forward < types.WinStoneNum {
			continue
		}
		line := make([]types.BoardPos, 0, 1+back+forward)
		for i := -back; i <= forward; i++ {
			line = append(line, types.BoardPos{Row: pos.Row + i*a.dRow, Col: pos.Col + i*a.dCol})
		}
		return line
	}
	return nil
}

// walk counts consecutive stones of color starting next to pos in one direction.
func walk(b *Board, pos types.BoardPos, dRow, dCol int, color types.Cell) int {
	n := 0
	row, col := pos.Row+dRow, pos.Col+dCol
	for (types.BoardPos{Row: row, Col: col}).InRange() && b.cells[row][col] == color {
		n++
		row += dRow
		col += dCol
	}
	return n
}
