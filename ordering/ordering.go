// Package ordering sorts pseudo-legal moves so that search explores the
// most promising ones first: the transposition-table move, then captures
// and quiets ranked by a cheap static score.
package ordering

import (
	"sort"

	"corvus/board"
	"corvus/eval"
	"corvus/movegen"
)

// ttMoveScore is assigned to the move matching the transposition table's
// stored hint, placing it ahead of every statically-scored move.
const ttMoveScore = 4000

// scored pairs a move with its ordering score so the buffer can be sorted
// once and walked with NextMove.
type scored struct {
	move  board.Move
	score int
}

// Sort is a fixed-size move buffer with a cursor, embedded directly in the
// recursion frame so no per-node heap allocation occurs.
type Sort struct {
	moves [movegen.MaxMoves]scored
	count int
	i     int
}

// InitSort fills s with b's captures then quiets, scores each move, bumps
// the move matching ttm (if any) to the front via a maximal score, and
// stable-sorts the result by score descending.
func InitSort(b *board.Board, s *Sort, ttm board.Move) {
	var buf [movegen.MaxMoves]board.Move
	n := movegen.GenerateCaptures(b, buf[:], 0)
	n = movegen.GenerateQuiets(b, buf[:], n)

	s.count = n
	s.i = 0
	for idx := 0; idx < n; idx++ {
		m := buf[idx]
		s.moves[idx] = scored{move: m, score: scoreMove(m)}
	}

	if ttm.From() != ttm.To() {
		for idx := 0; idx < n; idx++ {
			m := s.moves[idx].move
			if m.From() == ttm.From() && m.To() == ttm.To() && m.Kind() == ttm.Kind() {
				s.moves[idx].score = ttMoveScore
				break
			}
		}
	}

	sort.SliceStable(s.moves[:n], func(i, j int) bool {
		return s.moves[i].score > s.moves[j].score
	})
}

// InitSortQuies is InitSort restricted to captures, with no TT injection —
// quiescence never probes the table.
func InitSortQuies(b *board.Board, s *Sort) {
	var buf [movegen.MaxMoves]board.Move
	n := movegen.GenerateCaptures(b, buf[:], 0)

	s.count = n
	s.i = 0
	for idx := 0; idx < n; idx++ {
		m := buf[idx]
		s.moves[idx] = scored{move: m, score: scoreMove(m)}
	}

	sort.SliceStable(s.moves[:n], func(i, j int) bool {
		return s.moves[i].score > s.moves[j].score
	})
}

// NextMove returns the next move in s and true, or a zero move and false
// once the buffer is exhausted.
func NextMove(s *Sort) (board.Move, bool) {
	if s.i >= s.count {
		return board.NoMove, false
	}
	m := s.moves[s.i].move
	s.i++
	return m, true
}

// scoreMove combines the positional delta of the move's own piece-square
// table entry with MVV/LVA-lite capture scoring: bigger captured pieces by
// smaller attackers sort first.
func scoreMove(m board.Move) int {
	piece := m.MovedPiece()
	from, to := m.From(), m.To()

	score := pstDelta(piece, from, to)

	if cap := m.CapturedPiece(); cap != board.NoPiece {
		score += eval.PieceValue[cap.Type()] - int(piece.Type())
	}
	return score
}

func pstDelta(p board.Piece, from, to board.Square) int {
	fromSq, toSq := from, to
	if p.Color() == board.Black {
		fromSq, toSq = from.Mirror(), to.Mirror()
	}
	return eval.PST[p.Type()][toSq] - eval.PST[p.Type()][fromSq]
}
