package search

import (
	"testing"

	"corvus/board"
)

func TestSearchScoresCheckmatedRoot(t *testing.T) {
	// Black king e3, black queen e2, white king e1 to move: every king
	// square is covered by the queen or the black king, so White is
	// already mated and Search must report it rather than return a move.
	b := board.MustParseFEN("8/8/8/8/8/4k3/4q3/4K3 w - - 0 1")
	var ctx Context
	var pv PV
	score := Search(&ctx, b, 1, -MATE, MATE, 0, &pv, board.NoMove)
	if score != -MATE {
		t.Errorf("expected immediate mate score -MATE, got %d", score)
	}
	if pv.count != 0 {
		t.Errorf("expected an empty PV on a mated position, got %v", pv.Moves())
	}
}

func TestSearchFindsFoolsMate(t *testing.T) {
	// 1. f3 e5 2. g4 Qh4#: the queen's h4-g3-f2-e1 diagonal is open and
	// every square around the white king is blocked or covered.
	b := board.MustParseFEN("rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2")
	var ctx Context
	var pv PV
	// depth must be 2: depth 0 falls into Quiescence, which only extends
	// through captures and never recognizes checkmate on its own.
	score := Search(&ctx, b, 2, -MATE, MATE, 0, &pv, board.NoMove)
	if score != MATE-1 {
		t.Errorf("expected mate-in-1 score %d, got %d", MATE-1, score)
	}
	if len(pv.Moves()) == 0 || pv.Moves()[0].String() != "d8h4" {
		t.Errorf("expected Qh4# as the mating move, got %v", pv.Moves())
	}
}

func TestSearchStalemateScoresZero(t *testing.T) {
	// Classic stalemate: black king a8 has no legal move and is not in
	// check (white king b6, white queen c7 cover every escape square).
	b := board.MustParseFEN("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	var ctx Context
	var pv PV
	score := Search(&ctx, b, 1, -MATE, MATE, 0, &pv, board.NoMove)
	if score != 0 {
		t.Errorf("expected stalemate score 0, got %d", score)
	}
}

func TestSearchRespectsFailHardBounds(t *testing.T) {
	b := board.MustParseFEN(board.StartFEN)
	var ctx Context
	var pv PV
	// An absurdly tight window forces either a low or high fail-hard
	// return; the score must never escape [alpha, beta].
	score := Search(&ctx, b, 3, -5, 5, 0, &pv, board.NoMove)
	if score < -5 || score > 5 {
		t.Errorf("fail-hard score %d escaped window [-5, 5]", score)
	}
}

func TestSearchPVMovesAreLegal(t *testing.T) {
	b := board.MustParseFEN(board.StartFEN)
	var ctx Context
	var pv PV
	Search(&ctx, b, 3, -MATE, MATE, 0, &pv, board.NoMove)

	// Each PV move must be legal in the position reached by playing every
	// move before it, not just in the root position, so play the line
	// forward without unmaking.
	for _, m := range pv.Moves() {
		b.Make(m)
		if b.IsIllegal() {
			t.Fatalf("principal variation contains illegal move %v", m)
		}
	}
}

func TestQuiescenceScoreStaysInRange(t *testing.T) {
	b := board.MustParseFEN(board.StartFEN)
	var ctx Context
	score := Quiescence(&ctx, b, -MATE, MATE)
	if score < -MATE || score > MATE {
		t.Errorf("quiescence score %d out of range", score)
	}
}
