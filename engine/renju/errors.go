package renju

import "errors"

var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrEmptyHistory  = errors.New("no move to undo")
	ErrNothingToRedo = errors.New("no move to redo")
	ErrGameOver      = errors.New("game is over")
	ErrEngineClosed  = errors.New("engine is closed")
)
