// Package types contains shared data structures for renju-local.
package types

const (
	// LineNum is the number of rows and columns on the board.
	LineNum = 15
	// WinStoneNum is the number of stones in a line needed to win.
	WinStoneNum = 5
	// MaxSteps is the number of moves that fill the board.
	MaxSteps = LineNum * LineNum
)

// Cell is the content of a single intersection.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
	StarMarker
)

// IsStone reports whether the cell holds a black or white stone.
func (c Cell) IsStone() bool {
	return c == Black || c == White
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	case StarMarker:
		return "Star"
	}
	return "Empty"
}

// BoardPos represents a position on the board.
// Row 0 is the top line (label 15), Col 0 is column A.
type BoardPos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoPos marks the absence of a position, e.g. before the first move.
var NoPos = BoardPos{Row: -1, Col: -1}

// InRange returns true if the position lies on the board.
func (p BoardPos) InRange() bool {
	return p.Row >= 0 && p.Row < LineNum && p.Col >= 0 && p.Col < LineNum
}

var starPoints = [...]BoardPos{
	{3, 3}, {3, 11},
	{7, 7},
	{11, 3}, {11, 11},
}

// IsStarPoint checks if a position is one of the five marked star points.
func IsStarPoint(row, col int) bool {
	for _, p := range starPoints {
		if p.Row == row && p.Col == col {
			return true
		}
	}
	return false
}

const (
	PhasePlaying  = "playing"
	PhaseFinished = "finished"
)

// BoardState is a snapshot of a game handed to presentation layers.
// Board is indexed as Board[row][col].
type BoardState struct {
	MoveNumber   int        `json:"move_number"`
	PlayerToMove Cell       `json:"player_to_move"`
	Phase        string     `json:"phase"`
	Board        [][]Cell   `json:"board"`
	Winner       Cell       `json:"winner"`
	Outcome      string     `json:"outcome"`
	LastMove     BoardPos   `json:"last_move"`
	WinningLine  []BoardPos `json:"winning_line,omitempty"`
}

// Finished returns true if the game is over.
func (b *BoardState) Finished() bool {
	return b.Phase == PhaseFinished
}

// Height returns the board height.
func (b *BoardState) Height() int {
	return len(b.Board)
}

// Width returns the board width.
func (b *BoardState) Width() int {
	if b.Height() == 0 {
		return 0
	}
	return len(b.Board[0])
}

// InWinningLine reports whether the position is part of the completed five.
func (b *BoardState) InWinningLine(row, col int) bool {
	for _, p := range b.WinningLine {
		if p.Row == row && p.Col == col {
			return true
		}
	}
	return false
}

// NewBoardState creates a snapshot of an empty board with star markers set.
func NewBoardState() *BoardState {
	board := make([][]Cell, LineNum)
	for row := range board {
		board[row] = make([]Cell, LineNum)
		for col := range board[row] {
			if IsStarPoint(row, col) {
				board[row][col] = StarMarker
			}
		}
	}
	return &BoardState{
		MoveNumber:   0,
		PlayerToMove: Black, // Black plays first
		Phase:        PhasePlaying,
		Board:        board,
		LastMove:     NoPos,
	}
}
