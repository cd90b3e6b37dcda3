package sgf

import (
	"log/slog"

	"renju-local/engine"
	"renju-local/types"
)

// Follow keeps rec in step with every move, undo and result of eng.
// Write failures are logged; they never interrupt the game.
func Follow(eng engine.GameEngine, rec *GameRecord, logger *slog.Logger) {
	log := logger.With("component", "record", "file", rec.FilePath)

	eng.OnMove(func(pos types.BoardPos, color types.Cell, _ *types.BoardState) {
		if err := rec.AddMove(pos, color); err != nil {
			log.Error("could not record move", "error", err)
		}
	})
	eng.OnUndo(func(types.BoardPos, types.Cell, *types.BoardState) {
		if err := rec.UndoMoves(1); err != nil {
			log.Error("could not record undo", "error", err)
		}
	})
	eng.OnGameEnd(func(outcome string, winner types.Cell) {
		if err := rec.SetResult(winner); err != nil {
			log.Error("could not record result", "error", err)
			return
		}
		log.Info("game recorded", "outcome", outcome, "moves", rec.NumMoves())
	})
}
