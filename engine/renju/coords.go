package renju

import (
	"fmt"
	"strings"

	"renju-local/types"
)

// Move notation:
// - Columns: A-O, left to right (lower case accepted)
// - Rows: 1-15, from the bottom of the board
// - Example: H8 is the center, A15 the top-left corner
//
// Board coordinates:
// - Row: 0-14 (top to bottom)
// - Col: 0-14 (left to right)
// - Example: (7, 7) for H8, (0, 0) for A15

// ParseMove converts a move like "H8" to board coordinates.
// An unparseable part is reported as -1 in the corresponding field,
// so the caller only has to check the result with InRange.
func ParseMove(token string) types.BoardPos {
	token = strings.TrimSpace(token)
	pos := types.NoPos
	if token == "" {
		return pos
	}

	switch c := token[0]; {
	case c >= 'A' && c < 'A'+types.LineNum:
		pos.Col = int(c - 'A')
	case c >= 'a' && c < 'a'+types.LineNum:
		pos.Col = int(c - 'a')
	}

	digits := token[1:]
	if len(digits) < 1 || len(digits) > 2 {
		return pos
	}
	label := 0
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return pos
		}
		label = label*10 + int(digits[i]-'0')
	}
	if label < 1 || label > types.LineNum {
		return pos
	}

	// Row labels run from the bottom, board rows from the top.
	pos.Row = types.LineNum - label
	return pos
}

// FormatMove converts board coordinates to move notation.
// (7, 7) -> H8, (0, 0) -> A15, (14, 14) -> O1.
func FormatMove(pos types.BoardPos) string {
	if !pos.InRange() {
		return "--"
	}
	return fmt.Sprintf("%c%d", 'A'+rune(pos.Col), types.LineNum-pos.Row)
}
