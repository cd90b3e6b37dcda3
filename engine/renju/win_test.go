package renju

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renju-local/types"
)

// setup places stones directly, bypassing turn order.
func setup(t *testing.T, black, white []types.BoardPos) *Board {
	t.Helper()
	b := NewBoard()
	for _, p := range black {
		require.NoError(t, b.Place(p.Row, p.Col, types.Black))
	}
	for _, p := range white {
		require.NoError(t, b.Place(p.Row, p.Col, types.White))
	}
	return b
}

func TestCheckWinHorizontal(t *testing.T) {
	b := NewBoard()
	for col := 3; col <= 7; col++ {
		require.NoError(t, b.Place(7, col, types.Black))
		pos := types.BoardPos{Row: 7, Col: col}
		if col < 7 {
			assert.False(t, CheckWin(b, pos), "no win after stone at col %d", col)
		} else {
			assert.True(t, CheckWin(b, pos))
		}
	}
}

func TestCheckWinDiagonalOrderIndependent(t *testing.T) {
	diag := []types.BoardPos{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}, {Row: 3, Col: 3}, {Row: 4, Col: 4}}

	b := setup(t, diag, nil)
	assert.True(t, CheckWin(b, types.BoardPos{Row: 4, Col: 4}))

	shuffled := []types.BoardPos{{Row: 3, Col: 3}, {Row: 0, Col: 0}, {Row: 4, Col: 4}, {Row: 2, Col: 2}, {Row: 1, Col: 1}}
	b = setup(t, shuffled, nil)
	assert.True(t, CheckWin(b, types.BoardPos{Row: 2, Col: 2}))
	assert.True(t, CheckWin(b, types.BoardPos{Row: 0, Col: 0}))
}

func TestCheckWinAxes(t *testing.T) {
	tests := []struct {
		name  string
		black []types.BoardPos
		white []types.BoardPos
		at    types.BoardPos
		want  bool
	}{
		{
			name:  "vertical",
			black: []types.BoardPos{{Row: 2, Col: 9}, {Row: 3, Col: 9}, {Row: 4, Col: 9}, {Row: 5, Col: 9}, {Row: 6, Col: 9}},
			at:    types.BoardPos{Row: 4, Col: 9},
			want:  true,
		},
		{
			name:  "anti-diagonal",
			black: []types.BoardPos{{Row: 10, Col: 0}, {Row: 9, Col: 1}, {Row: 8, Col: 2}, {Row: 7, Col: 3}, {Row: 6, Col: 4}},
			at:    types.BoardPos{Row: 8, Col: 2},
			want:  true,
		},
		{
			name:  "anti-diagonal along the edge",
			black: []types.BoardPos{{Row: 0, Col: 14}, {Row: 1, Col: 13}, {Row: 2, Col: 12}, {Row: 3, Col: 11}, {Row: 4, Col: 10}},
			at:    types.BoardPos{Row: 0, Col: 14},
			want:  true,
		},
		{
			name:  "overline still wins",
			black: []types.BoardPos{{Row: 14, Col: 0}, {Row: 14, Col: 1}, {Row: 14, Col: 2}, {Row: 14, Col: 3}, {Row: 14, Col: 4}, {Row: 14, Col: 5}},
			at:    types.BoardPos{Row: 14, Col: 2},
			want:  true,
		},
		{
			name:  "white wins too",
			white: []types.BoardPos{{Row: 9, Col: 5}, {Row: 9, Col: 6}, {Row: 9, Col: 7}, {Row: 9, Col: 8}, {Row: 9, Col: 9}},
			at:    types.BoardPos{Row: 9, Col: 9},
			want:  true,
		},
		{
			name:  "four blocked by opponent on both ends",
			black: []types.BoardPos{{Row: 7, Col: 4}, {Row: 7, Col: 5}, {Row: 7, Col: 6}, {Row: 7, Col: 7}},
			white: []types.BoardPos{{Row: 7, Col: 3}, {Row: 7, Col: 8}},
			at:    types.BoardPos{Row: 7, Col: 5},
			want:  false,
		},
		{
			name:  "four blocked by edge and opponent",
			black: []types.BoardPos{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 3, Col: 0}},
			white: []types.BoardPos{{Row: 4, Col: 0}},
			at:    types.BoardPos{Row: 0, Col: 0},
			want:  false,
		},
		{
			name:  "gap breaks the line",
			black: []types.BoardPos{{Row: 5, Col: 1}, {Row: 5, Col: 2}, {Row: 5, Col: 4}, {Row: 5, Col: 5}, {Row: 5, Col: 6}},
			at:    types.BoardPos{Row: 5, Col: 4},
			want:  false,
		},
		{
			name: "axes do not add up",
			// Three horizontal plus three vertical through the same stone.
			black: []types.BoardPos{{Row: 7, Col: 7}, {Row: 7, Col: 6}, {Row: 7, Col: 8}, {Row: 6, Col: 7}, {Row: 8, Col: 7}},
			at:    types.BoardPos{Row: 7, Col: 7},
			want:  false,
		},
		{
			name:  "mixed colors",
			black: []types.BoardPos{{Row: 3, Col: 3}, {Row: 3, Col: 4}, {Row: 3, Col: 6}},
			white: []types.BoardPos{{Row: 3, Col: 5}, {Row: 3, Col: 7}},
			at:    types.BoardPos{Row: 3, Col: 4},
			want:  false,
		},
		{
			name: "empty cell",
			at:   types.BoardPos{Row: 7, Col: 7},
			want: false,
		},
		{
			name: "out of range",
			at:   types.BoardPos{Row: 15, Col: 0},
			want: false,
		},
		{
			name: "no position",
			at:   types.NoPos,
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := setup(t, tt.black, tt.white)
			assert.Equal(t, tt.want, CheckWin(b, tt.at))
		})
	}
}

func TestWinningLine(t *testing.T) {
	b := setup(t, []types.BoardPos{{Row: 2, Col: 10}, {Row: 3, Col: 11}, {Row: 4, Col: 12}, {Row: 5, Col: 13}, {Row: 6, Col: 14}}, nil)

	line := WinningLine(b, types.BoardPos{Row: 4, Col: 12})
	assert.Equal(t, []types.BoardPos{{Row: 2, Col: 10}, {Row: 3, Col: 11}, {Row: 4, Col: 12}, {Row: 5, Col: 13}, {Row: 6, Col: 14}}, line)

	assert.Nil(t, WinningLine(b, types.BoardPos{Row: 0, Col: 0}))
}
