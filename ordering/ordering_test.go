package ordering

import (
	"testing"

	"corvus/board"
)

func TestInitSortProducesAllMoves(t *testing.T) {
	b := board.MustParseFEN(board.StartFEN)
	var s Sort
	InitSort(b, &s, board.NoMove)

	seen := 0
	for {
		_, ok := NextMove(&s)
		if !ok {
			break
		}
		seen++
	}
	if seen != 20 {
		t.Errorf("InitSort produced %d moves from startpos, want 20", seen)
	}
}

func TestInitSortTTMoveIsFirst(t *testing.T) {
	const fen = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	b := board.MustParseFEN(fen)

	var s Sort
	InitSort(b, &s, board.NoMove)
	var all []board.Move
	for {
		m, ok := NextMove(&s)
		if !ok {
			break
		}
		all = append(all, m)
	}
	if len(all) == 0 {
		t.Fatal("no moves generated")
	}
	// Pick a move that is not naturally first (a quiet knight move) and
	// verify the TT hint promotes it to the front.
	var ttm board.Move
	for _, m := range all {
		if m.MovedPiece().Type() == board.Knight {
			ttm = m
			break
		}
	}
	if ttm == board.NoMove {
		t.Fatal("no knight move found to use as TT hint")
	}

	InitSort(b, &s, ttm)
	first, ok := NextMove(&s)
	if !ok {
		t.Fatal("expected at least one move")
	}
	if first.From() != ttm.From() || first.To() != ttm.To() || first.Kind() != ttm.Kind() {
		t.Errorf("TT move not sorted first: got %v, want %v", first, ttm)
	}
}

func TestInitSortQuiesOnlyCaptures(t *testing.T) {
	const fen = "rnbqkbnr/ppp2ppp/8/3pp3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1"
	b := board.MustParseFEN(fen)

	var s Sort
	InitSortQuies(b, &s)
	for {
		m, ok := NextMove(&s)
		if !ok {
			break
		}
		if !m.IsCapture() {
			t.Errorf("InitSortQuies produced a non-capture move %v", m)
		}
	}
}
