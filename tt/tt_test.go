package tt

import (
	"testing"

	"corvus/board"
)

func TestStoreProbeRoundTrip(t *testing.T) {
	table := NewWithSize(1)
	b := board.MustParseFEN(board.StartFEN)
	m := board.NewMove(12, 28, board.WhitePawn, board.NoPiece, board.NoPiece, board.FlagDoublePush)

	table.Store(b.Hash(), 4, 0, m, 57, Exact)

	e, ok := table.Probe(b.Hash(), 0)
	if !ok {
		t.Fatal("expected entry to be found")
	}
	if e.Move != m {
		t.Errorf("stored move mismatch: got %v want %v", e.Move, m)
	}
	if e.Score != 57 {
		t.Errorf("stored score mismatch: got %d want 57", e.Score)
	}
	if e.Flag != Exact {
		t.Errorf("stored flag mismatch: got %v want Exact", e.Flag)
	}
}

func TestProbeMissReturnsFalse(t *testing.T) {
	table := NewWithSize(1)
	if _, ok := table.Probe(0xdeadbeef, 0); ok {
		t.Error("expected probe miss on empty table")
	}
}

func TestClearRemovesEntries(t *testing.T) {
	table := NewWithSize(1)
	table.Store(12345, 2, 0, board.NoMove, 10, Alpha)
	table.Clear()
	if _, ok := table.Probe(12345, 0); ok {
		t.Error("expected entry to be gone after Clear")
	}
}
