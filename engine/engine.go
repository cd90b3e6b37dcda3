// Package engine defines the interface for game engines.
package engine

import "renju-local/types"

// MoveFunc observes a stone being placed or taken back.
// state is a snapshot taken after the change.
type MoveFunc func(pos types.BoardPos, color types.Cell, state *types.BoardState)

// GameEngine defines the interface for playing a five-in-a-row game.
type GameEngine interface {
	// GetBoardState returns a snapshot of the current board.
	GetBoardState() *types.BoardState

	// PlayMove places the stone of the side to move at row, col.
	// Returns an error if the move is illegal or the game is over.
	PlayMove(row, col int) error

	// Undo takes back the most recent placement (one stone).
	Undo() error

	// Redo replays the most recently undone placement.
	Redo() error

	// PlayerToMove returns the color whose turn it is.
	PlayerToMove() types.Cell

	// OnMove registers a callback for every placement, including redo.
	OnMove(MoveFunc)

	// OnUndo registers a callback for every undone placement.
	OnUndo(MoveFunc)

	// OnGameEnd registers a callback for when the game ends.
	OnGameEnd(func(outcome string, winner types.Cell))

	// Close releases the engine. Further calls are not allowed.
	Close()
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	PlayerBlack string // Display name for black
	PlayerWhite string // Display name for white
	Record      bool   // Write an SGF transcript while playing
	RecordDir   string // Directory for SGF transcripts
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		PlayerBlack: "Black",
		PlayerWhite: "White",
	}
}
