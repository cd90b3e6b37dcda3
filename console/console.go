// Package console plays a game over a plain text stream: it prints the
// board with letter/number coordinates and reads one move per prompt.
package console

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"

	"renju-local/engine"
	"renju-local/engine/renju"
	"renju-local/types"
)

// Commands recognized before a token is handed to the move parser.
const (
	cmdExit = "exit"
	cmdUndo = "undo"
	cmdRedo = "redo"
)

const invalidMoveMsg = "Invalid Move, please input again\n"

// maxWordLen caps the length of a token handed to the move parser.
// Longer words are cut to this length and the rest of the word is dropped.
const maxWordLen = 64

// Glyph returns the character used to print a cell.
// Star points show the star glyph only while they are empty.
func Glyph(c types.Cell, row, col int) byte {
	switch c {
	case types.Black:
		return 'X'
	case types.White:
		return 'O'
	}
	if types.IsStarPoint(row, col) {
		return '+'
	}
	return '.'
}

// DrawBoard writes the board framed by column letters and row labels.
func DrawBoard(w io.Writer, state *types.BoardState) error {
	var header strings.Builder
	header.WriteString("   ")
	for i := 0; i < types.LineNum; i++ {
		header.WriteByte(byte('A' + i))
		header.WriteByte(' ')
	}
	header.WriteByte('\n')

	var b strings.Builder
	b.WriteString(header.String())
	for row := 0; row < types.LineNum; row++ {
		label := types.LineNum - row
		fmt.Fprintf(&b, "%2d ", label)
		for col := 0; col < types.LineNum; col++ {
			b.WriteByte(Glyph(state.Board[row][col], row, col))
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d\n", label)
	}
	b.WriteString(header.String())
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// Console drives a game engine from a line-oriented input stream.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
	eng engine.GameEngine
	log *slog.Logger
}

// New creates a console reading whitespace separated tokens from in.
func New(in io.Reader, out io.Writer, eng engine.GameEngine, logger *slog.Logger) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split((&wordSplitter{}).split)
	return &Console{
		in:  scanner,
		out: out,
		eng: eng,
		log: logger.With("component", "console"),
	}
}

// Run plays until a player wins, the board is full, "exit" is entered
// or the input ends. None of these is an error.
func (c *Console) Run() error {
	if err := c.draw(); err != nil {
		return err
	}

	for {
		state := c.eng.GetBoardState()
		if state.Finished() {
			return nil
		}

		if _, err := fmt.Fprintf(c.out, "Please input the move [%s]: ", state.PlayerToMove); err != nil {
			return err
		}
		token, ok := c.next()
		if !ok {
			c.log.Info("input closed", "moves", state.MoveNumber)
			fmt.Fprintln(c.out)
			return c.in.Err()
		}

		switch token {
		case cmdExit:
			c.log.Info("exit requested", "moves", state.MoveNumber)
			return nil
		case cmdUndo:
			if err := c.eng.Undo(); err != nil && !errors.Is(err, renju.ErrEmptyHistory) {
				return err
			}
			if err := c.draw(); err != nil {
				return err
			}
			continue
		case cmdRedo:
			if err := c.eng.Redo(); err != nil && !errors.Is(err, renju.ErrNothingToRedo) {
				return err
			}
			if err := c.draw(); err != nil {
				return err
			}
			continue
		}

		pos := renju.ParseMove(token)
		if !pos.InRange() {
			c.log.Debug("unparseable move", "token", token)
			if _, err := io.WriteString(c.out, invalidMoveMsg); err != nil {
				return err
			}
			continue
		}
		if err := c.eng.PlayMove(pos.Row, pos.Col); err != nil {
			if !errors.Is(err, renju.ErrInvalidMove) {
				return err
			}
			if _, err := io.WriteString(c.out, invalidMoveMsg); err != nil {
				return err
			}
			continue
		}

		if err := c.draw(); err != nil {
			return err
		}
		if state := c.eng.GetBoardState(); state.Finished() && state.Winner.IsStone() {
			_, err := fmt.Fprintln(c.out, state.Outcome)
			return err
		}
	}
}

// wordSplitter splits input into whitespace separated words like
// bufio.ScanWords, but never buffers more than maxWordLen bytes of a word.
type wordSplitter struct {
	skipping bool // inside the tail of an overlong word
}

func (s *wordSplitter) split(data []byte, atEOF bool) (int, []byte, error) {
	skipped := 0
	if s.skipping {
		i := bytes.IndexFunc(data, unicode.IsSpace)
		if i < 0 {
			return len(data), nil, nil
		}
		s.skipping = false
		data = data[i:]
		skipped = i
	}

	advance, token, err := bufio.ScanWords(data, atEOF)
	if err != nil || token != nil {
		if len(token) > maxWordLen {
			token = token[:maxWordLen]
		}
		return skipped + advance, token, err
	}

	start := bytes.IndexFunc(data, func(r rune) bool { return !unicode.IsSpace(r) })
	if start >= 0 && len(data)-start >= maxWordLen {
		s.skipping = true
		return skipped + len(data), data[start : start+maxWordLen], nil
	}
	return skipped + advance, nil, nil
}

func (c *Console) next() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) draw() error {
	return DrawBoard(c.out, c.eng.GetBoardState())
}
