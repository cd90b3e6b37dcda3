package renju

import (
	"fmt"
	"io"
	"log/slog"

	"renju-local/engine"
	"renju-local/types"
)

// Engine implements the GameEngine interface for two players sharing one board.
type Engine struct {
	log *slog.Logger

	board       *Board
	redo        []types.BoardPos
	winner      types.Cell
	winningLine []types.BoardPos
	outcome     string
	gameOver    bool
	closed      bool

	moveCallbacks []engine.MoveFunc
	undoCallbacks []engine.MoveFunc
	endCallbacks  []func(outcome string, winner types.Cell)
}

var _ engine.GameEngine = (*Engine)(nil)

// NewEngine creates a new game session with an empty board.
func NewEngine(cfg engine.GameConfig, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	log := logger.With("component", "engine")
	log.Info("new game", "black", cfg.PlayerBlack, "white", cfg.PlayerWhite)
	return &Engine{
		log:   log,
		board: NewBoard(),
	}
}

// Board exposes the underlying board for read-only queries.
func (e *Engine) Board() *Board {
	return e.board
}

// PlayerToMove returns the color whose turn it is.
func (e *Engine) PlayerToMove() types.Cell {
	return ColorOf(e.board.Len())
}

// PlayMove places the stone of the side to move at row, col.
func (e *Engine) PlayMove(row, col int) error {
	if e.closed {
		return ErrEngineClosed
	}
	if e.gameOver {
		return ErrGameOver
	}

	color := e.PlayerToMove()
	if err := e.board.Place(row, col, color); err != nil {
		e.log.Debug("rejected move", "row", row, "col", col, "color", color, "error", err)
		return err
	}
	e.redo = e.redo[:0]
	e.afterPlace(types.BoardPos{Row: row, Col: col}, color)
	return nil
}

// Undo takes back the most recent placement. A finished game is reopened.
func (e *Engine) Undo() error {
	if e.closed {
		return ErrEngineClosed
	}
	pos, color, err := e.board.Undo()
	if err != nil {
		return err
	}
	e.redo = append(e.redo, pos)
	e.gameOver = false
	e.winner = types.Empty
	e.winningLine = nil
	e.outcome = ""

	e.log.Debug("undo", "move", FormatMove(pos), "color", color, "moves", e.board.Len())
	state := e.GetBoardState()
	for _, cb := range e.undoCallbacks {
		cb(pos, color, state)
	}
	return nil
}

// Redo replays the most recently undone placement.
func (e *Engine) Redo() error {
	if e.closed {
		return ErrEngineClosed
	}
	if e.gameOver {
		return ErrGameOver
	}
	if len(e.redo) == 0 {
		return ErrNothingToRedo
	}
	pos := e.redo[len(e.redo)-1]
	color := e.PlayerToMove()
	if err := e.board.Place(pos.Row, pos.Col, color); err != nil {
		// Unreachable while redo is cleared on every new move.
		return fmt.Errorf("redo %s: %w", FormatMove(pos), err)
	}
	e.redo = e.redo[:len(e.redo)-1]
	e.afterPlace(pos, color)
	return nil
}

// afterPlace notifies observers and evaluates the end of the game.
func (e *Engine) afterPlace(pos types.BoardPos, color types.Cell) {
	e.log.Debug("move", "move", FormatMove(pos), "color", color, "moves", e.board.Len())

	if line := WinningLine(e.board, pos); line != nil {
		e.gameOver = true
		e.winner = color
		e.winningLine = line
		e.outcome = fmt.Sprintf("%s Win!", color)
	} else if e.board.Len() >= types.MaxSteps {
		e.gameOver = true
		e.outcome = "Board full"
	}

	state := e.GetBoardState()
	for _, cb := range e.moveCallbacks {
		cb(pos, color, state)
	}
	if e.gameOver {
		e.handleGameEnd()
	}
}

func (e *Engine) handleGameEnd() {
	e.log.Info("game over", "outcome", e.outcome, "moves", e.board.Len())
	for _, cb := range e.endCallbacks {
		cb(e.outcome, e.winner)
	}
}

// GetBoardState returns a snapshot of the current board.
func (e *Engine) GetBoardState() *types.BoardState {
	phase := types.PhasePlaying
	if e.gameOver {
		phase = types.PhaseFinished
	}
	var line []types.BoardPos
	if e.winningLine != nil {
		line = make([]types.BoardPos, len(e.winningLine))
		copy(line, e.winningLine)
	}
	return &types.BoardState{
		MoveNumber:   e.board.Len(),
		PlayerToMove: e.PlayerToMove(),
		Phase:        phase,
		Board:        e.board.cellRows(),
		Winner:       e.winner,
		Outcome:      e.outcome,
		LastMove:     e.board.LastMove(),
		WinningLine:  line,
	}
}

// History returns the placements in play order.
func (e *Engine) History() []types.BoardPos {
	return e.board.History()
}

// CanRedo returns true if an undone move can be replayed.
func (e *Engine) CanRedo() bool {
	return len(e.redo) > 0
}

// OnMove registers a callback for every placement.
func (e *Engine) OnMove(callback engine.MoveFunc) {
	e.moveCallbacks = append(e.moveCallbacks, callback)
}

// OnUndo registers a callback for every undone placement.
func (e *Engine) OnUndo(callback engine.MoveFunc) {
	e.undoCallbacks = append(e.undoCallbacks, callback)
}

// OnGameEnd registers a callback for when the game ends.
func (e *Engine) OnGameEnd(callback func(outcome string, winner types.Cell)) {
	e.endCallbacks = append(e.endCallbacks, callback)
}

// Close drops all observers. The session rejects further moves.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.moveCallbacks = nil
	e.undoCallbacks = nil
	e.endCallbacks = nil
	e.log.Debug("closed", "moves", e.board.Len())
}
