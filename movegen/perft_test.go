package movegen

import (
	"testing"

	"corvus/board"
)

func TestPerftInitialPosition(t *testing.T) {
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, c := range cases {
		b := board.MustParseFEN(board.StartFEN)
		if got := Perft(b, c.depth); got != c.want {
			t.Errorf("perft(initial, %d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	b := board.MustParseFEN(kiwipete)
	if got, want := Perft(b, 3), uint64(97862); got != want {
		t.Errorf("perft(kiwipete, 3) = %d, want %d", got, want)
	}
}

func TestPerftLeavesBoardUnchanged(t *testing.T) {
	b := board.MustParseFEN(board.StartFEN)
	before := b.String()
	Perft(b, 3)
	if got := b.String(); got != before {
		t.Errorf("Perft mutated the board: got %q want %q", got, before)
	}
}

func TestPerftDivideSumsToTotal(t *testing.T) {
	b := board.MustParseFEN(board.StartFEN)
	var sum uint64
	total := PerftDivide(b, 3, func(m board.Move, nodes uint64) {
		sum += nodes
	})
	if sum != total {
		t.Errorf("divide sum %d != total %d", sum, total)
	}
	if total != 8902 {
		t.Errorf("perft divide total = %d, want 8902", total)
	}
}
