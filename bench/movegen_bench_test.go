package bench

import (
	"testing"

	"corvus/board"
	"corvus/movegen"
)

func benchGenerate(b *testing.B, fen string) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	var buf [movegen.MaxMoves]board.Move
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := movegen.GenerateCaptures(pos, buf[:], 0)
		_ = movegen.GenerateQuiets(pos, buf[:], n)
	}
}

func BenchmarkGenerate_Initial(b *testing.B) {
	benchGenerate(b, board.StartFEN)
}

func BenchmarkGenerate_Kiwipete(b *testing.B) {
	benchGenerate(b, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
}

func benchCaptures(b *testing.B, fen string) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	var buf [movegen.MaxMoves]board.Move
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = movegen.GenerateCaptures(pos, buf[:], 0)
	}
}

func BenchmarkGenerateCaptures_EnPassant(b *testing.B) {
	benchCaptures(b, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
}

func BenchmarkMakeUnmake_AllMoves_Initial(b *testing.B) {
	pos, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	var buf [movegen.MaxMoves]board.Move
	n := movegen.GenerateCaptures(pos, buf[:], 0)
	n = movegen.GenerateQuiets(pos, buf[:], n)
	moves := append([]board.Move(nil), buf[:n]...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			u := pos.Make(m)
			if pos.IsIllegal() {
				pos.Unmake(u)
				continue
			}
			pos.Unmake(u)
		}
	}
}
