package sgf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renju-local/types"
)

func readRecord(t *testing.T, rec *GameRecord) string {
	t.Helper()
	content, err := os.ReadFile(rec.FilePath)
	require.NoError(t, err)
	return string(content)
}

func newTestRecord(t *testing.T) *GameRecord {
	t.Helper()
	rec, err := NewGameRecord(t.TempDir(), "Alice", "Bob")
	require.NoError(t, err)
	t.Cleanup(func() { rec.Close() })
	return rec
}

func TestSgfCoord(t *testing.T) {
	tests := []struct {
		pos  types.BoardPos
		want string
	}{
		{types.BoardPos{Row: 0, Col: 0}, "aa"},
		{types.BoardPos{Row: 7, Col: 7}, "hh"},
		{types.BoardPos{Row: 14, Col: 14}, "oo"},
		{types.BoardPos{Row: 14, Col: 3}, "do"}, // D1
		{types.BoardPos{Row: 3, Col: 11}, "ld"}, // star point L12
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sgfCoord(tt.pos), "sgfCoord(%v)", tt.pos)
	}
}

func TestResultFor(t *testing.T) {
	assert.Equal(t, "B+", resultFor(types.Black))
	assert.Equal(t, "W+", resultFor(types.White))
	assert.Equal(t, "0", resultFor(types.Empty))
}

func TestNewGameRecord(t *testing.T) {
	rec := newTestRecord(t)
	s := readRecord(t, rec)

	for _, prop := range []string{"GM[4]", "FF[4]", "SZ[15]", "PB[Alice]", "PW[Bob]", "RE[?]"} {
		assert.Contains(t, s, prop)
	}
	assert.True(t, strings.HasPrefix(s, "(;"), "SGF should start with '(;'")
	assert.True(t, strings.HasSuffix(s, ")\n"), "SGF should end with ')'")
}

func TestFilenameFormat(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	rec, err := newGameRecord(t.TempDir(), "B", "W", now)
	require.NoError(t, err)
	defer rec.Close()

	assert.Equal(t, "2026-03-14_150926_15x15.sgf", filepath.Base(rec.FilePath))
	assert.Contains(t, readRecord(t, rec), "DT[2026-03-14]")

	// A second game started in the same second must not clobber the first.
	_, err = newGameRecord(filepath.Dir(rec.FilePath), "B", "W", now)
	require.Error(t, err)
}

func TestAddMove(t *testing.T) {
	rec := newTestRecord(t)

	require.NoError(t, rec.AddMove(types.BoardPos{Row: 7, Col: 7}, types.Black))
	require.NoError(t, rec.AddMove(types.BoardPos{Row: 7, Col: 8}, types.White))
	require.NoError(t, rec.AddMove(types.BoardPos{Row: 0, Col: 0}, types.Black))

	s := readRecord(t, rec)
	assert.Contains(t, s, "\n;B[hh];W[ih];B[aa])")
	assert.Equal(t, 3, rec.NumMoves())
}

func TestUndoMoves(t *testing.T) {
	rec := newTestRecord(t)
	require.NoError(t, rec.AddMove(types.BoardPos{Row: 7, Col: 7}, types.Black))
	require.NoError(t, rec.AddMove(types.BoardPos{Row: 7, Col: 8}, types.White))
	require.NoError(t, rec.SetResult(types.White))

	require.NoError(t, rec.UndoMoves(1))
	s := readRecord(t, rec)
	assert.Contains(t, s, ";B[hh]")
	assert.NotContains(t, s, ";W[ih]")
	assert.Contains(t, s, "RE[?]")

	require.NoError(t, rec.UndoMoves(5))
	assert.Equal(t, 0, rec.NumMoves())
	assert.NotContains(t, readRecord(t, rec), ";B[")
}

func TestSetResult(t *testing.T) {
	rec := newTestRecord(t)
	require.NoError(t, rec.SetResult(types.Black))
	assert.Contains(t, readRecord(t, rec), "RE[B+]")

	require.NoError(t, rec.SetResult(types.Empty))
	assert.Contains(t, readRecord(t, rec), "RE[0]")
}

func TestEscapedPlayerNames(t *testing.T) {
	rec, err := NewGameRecord(t.TempDir(), `a]b`, `c\d`)
	require.NoError(t, err)
	defer rec.Close()

	s := readRecord(t, rec)
	assert.Contains(t, s, `PB[a\]b]`)
	assert.Contains(t, s, `PW[c\\d]`)
}

func TestCloseIdempotent(t *testing.T) {
	rec, err := NewGameRecord(t.TempDir(), "B", "W")
	require.NoError(t, err)

	require.NoError(t, rec.Close())
	require.NoError(t, rec.Close())
	require.Error(t, rec.AddMove(types.BoardPos{Row: 1, Col: 1}, types.Black))
}

func TestCrashSafety(t *testing.T) {
	rec := newTestRecord(t)

	require.NoError(t, rec.AddMove(types.BoardPos{Row: 4, Col: 4}, types.Black))
	require.NoError(t, rec.AddMove(types.BoardPos{Row: 2, Col: 2}, types.White))

	// The file is complete SGF after every flush, without Close.
	s := readRecord(t, rec)
	assert.True(t, strings.HasPrefix(s, "(;"))
	assert.True(t, strings.HasSuffix(s, ")\n"))
	assert.Contains(t, s, ";B[ee];W[cc]")
}
