package movegen

import "corvus/board"

// Perft counts the leaf nodes of the legal-move tree rooted at b to the
// given depth, exercising GenerateCaptures/GenerateQuiets and the
// Make/IsIllegal/Unmake discipline together. depth 0 counts the root itself
// (1).
func Perft(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var buf [MaxMoves]board.Move
	n := GenerateCaptures(b, buf[:], 0)
	n = GenerateQuiets(b, buf[:], n)

	var nodes uint64
	for i := 0; i < n; i++ {
		u := b.Make(buf[i])
		if !b.IsIllegal() {
			nodes += Perft(b, depth-1)
		}
		b.Unmake(u)
	}
	return nodes
}

// PerftDivide is Perft but reports, via visit, the leaf count contributed
// by each legal move at the root — the standard per-move breakdown used to
// localize a movegen bug against a reference implementation.
func PerftDivide(b *board.Board, depth int, visit func(m board.Move, nodes uint64)) uint64 {
	var buf [MaxMoves]board.Move
	n := GenerateCaptures(b, buf[:], 0)
	n = GenerateQuiets(b, buf[:], n)

	var total uint64
	for i := 0; i < n; i++ {
		u := b.Make(buf[i])
		if !b.IsIllegal() {
			var sub uint64
			if depth <= 1 {
				sub = 1
			} else {
				sub = Perft(b, depth-1)
			}
			visit(buf[i], sub)
			total += sub
		}
		b.Unmake(u)
	}
	return total
}
