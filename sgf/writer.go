// Package sgf writes SGF FF[4] transcripts (GM[4], Gomoku) of games in progress.
package sgf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"renju-local/types"
)

// GameRecord tracks a game in progress and writes it as SGF.
type GameRecord struct {
	FilePath    string
	PlayerBlack string
	PlayerWhite string
	Date        string
	Result      string
	moves       []string // ";B[hh]", ";W[ih]", ...
	file        *os.File
}

// NewGameRecord creates a new SGF file in dir and writes the initial header.
func NewGameRecord(dir, playerBlack, playerWhite string) (*GameRecord, error) {
	return newGameRecord(dir, playerBlack, playerWhite, time.Now())
}

func newGameRecord(dir, playerBlack, playerWhite string, now time.Time) (*GameRecord, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create record dir: %w", err)
	}

	filename := fmt.Sprintf("%s_%dx%d.sgf", now.Format("2006-01-02_150405"), types.LineNum, types.LineNum)
	path := filepath.Join(dir, filename)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, fmt.Errorf("create sgf file: %w", err)
	}

	rec := &GameRecord{
		FilePath:    path,
		PlayerBlack: playerBlack,
		PlayerWhite: playerWhite,
		Date:        now.Format("2006-01-02"),
		Result:      "?",
		file:        f,
	}

	if err := rec.flush(); err != nil {
		f.Close()
		return nil, err
	}

	return rec, nil
}

// sgfCoord converts board coordinates to an SGF letter pair, column first.
// (row 0, col 0) -> "aa", (row 7, col 7) -> "hh", (row 14, col 3) -> "do".
func sgfCoord(pos types.BoardPos) string {
	return string(rune('a'+pos.Col)) + string(rune('a'+pos.Row))
}

// AddMove appends a move to the record.
func (r *GameRecord) AddMove(pos types.BoardPos, color types.Cell) error {
	colorChar := "B"
	if color == types.White {
		colorChar = "W"
	}
	r.moves = append(r.moves, fmt.Sprintf(";%s[%s]", colorChar, sgfCoord(pos)))
	return r.flush()
}

// UndoMoves removes the last n moves from the record and clears the result.
func (r *GameRecord) UndoMoves(n int) error {
	if n > len(r.moves) {
		n = len(r.moves)
	}
	r.moves = r.moves[:len(r.moves)-n]
	r.Result = "?"
	return r.flush()
}

// SetResult sets the SGF RE property from the winning color.
// Anything other than a stone color records a draw.
func (r *GameRecord) SetResult(winner types.Cell) error {
	r.Result = resultFor(winner)
	return r.flush()
}

// NumMoves returns the number of recorded moves.
func (r *GameRecord) NumMoves() int {
	return len(r.moves)
}

// Close performs a final flush and closes the file handle.
func (r *GameRecord) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.flush()
	if cerr := r.file.Close(); err == nil {
		err = cerr
	}
	r.file = nil
	return err
}

// flush rewrites the complete SGF file from scratch.
func (r *GameRecord) flush() error {
	if r.file == nil {
		return fmt.Errorf("file already closed")
	}

	var b strings.Builder

	// Root node
	b.WriteString("(;GM[4]FF[4]CA[UTF-8]")
	b.WriteString("AP[renju-local:1.0]")
	b.WriteString(fmt.Sprintf("SZ[%d]", types.LineNum))
	b.WriteString(fmt.Sprintf("PB[%s]", escapeText(r.PlayerBlack)))
	b.WriteString(fmt.Sprintf("PW[%s]", escapeText(r.PlayerWhite)))
	b.WriteString(fmt.Sprintf("DT[%s]", r.Date))
	b.WriteString(fmt.Sprintf("RE[%s]", r.Result))
	b.WriteString("\n")

	// Move nodes
	for _, m := range r.moves {
		b.WriteString(m)
	}

	b.WriteString(")\n")

	// Rewrite file from start
	if _, err := r.file.Seek(0, 0); err != nil {
		return err
	}
	if err := r.file.Truncate(0); err != nil {
		return err
	}
	if _, err := r.file.WriteString(b.String()); err != nil {
		return err
	}
	return r.file.Sync()
}

// resultFor converts the winner to an SGF RE[] value.
func resultFor(winner types.Cell) string {
	switch winner {
	case types.Black:
		return "B+"
	case types.White:
		return "W+"
	}
	return "0"
}

// escapeText escapes the characters SGF reserves inside property values.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "]", `\]`)
}
