package board

import "testing"

func TestParseFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := b.String(); got != fen {
			t.Errorf("round trip mismatch: got %q want %q", got, fen)
		}
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"8/8/8/8/8/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
	}
	for _, fen := range cases {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q): expected error, got nil", fen)
		}
	}
}

func TestMakeUnmakeIsIdentity(t *testing.T) {
	b := MustParseFEN(StartFEN)
	before := b.String()
	m := NewMove(12, 28, WhitePawn, NoPiece, NoPiece, FlagDoublePush) // e2-e4
	u := b.Make(m)
	if b.String() == before {
		t.Fatal("Make did not change the position")
	}
	b.Unmake(u)
	if got := b.String(); got != before {
		t.Errorf("Unmake mismatch: got %q want %q", got, before)
	}
}

func TestZobristIncrementality(t *testing.T) {
	b := MustParseFEN(StartFEN)
	moves := []Move{
		NewMove(12, 28, WhitePawn, NoPiece, NoPiece, FlagDoublePush),  // e2e4
		NewMove(52, 36, BlackPawn, NoPiece, NoPiece, FlagDoublePush),  // e7e5
		NewMove(6, 21, WhiteKnight, NoPiece, NoPiece, FlagNone),       // g1f3
	}
	var undos []Undo
	for _, m := range moves {
		undos = append(undos, b.Make(m))
	}
	if got, want := b.Hash(), b.computeZobrist(); got != want {
		t.Errorf("incremental key %x != recomputed key %x", got, want)
	}
	for i := len(undos) - 1; i >= 0; i-- {
		b.Unmake(undos[i])
	}
	if got, want := b.String(), StartFEN; got != want {
		t.Errorf("unwound position mismatch: got %q want %q", got, want)
	}
}

func TestIsAttackedInitialPosition(t *testing.T) {
	b := MustParseFEN(StartFEN)
	if b.InCheck(White) || b.InCheck(Black) {
		t.Fatal("initial position should have neither side in check")
	}
	// White pawn on e2 (sq 12) is defended only by its own side; black has
	// nothing attacking e4 (sq 28) yet.
	if b.IsAttacked(28, Black) {
		t.Error("e4 should not be attacked by Black from the initial position")
	}
}

func TestCastlingRightsLostOnRookCapture(t *testing.T) {
	b := MustParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	// Ra1xa8 removes Black's queen-side right.
	m := NewMove(0, 56, WhiteRook, BlackRook, NoPiece, FlagNone)
	b.Make(m)
	if b.Castling()&BlackQueenSide != 0 {
		t.Error("capturing the rook on a8 should clear black queen-side castling rights")
	}
}
