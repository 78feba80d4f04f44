// Package eval provides the static position evaluator: material, piece-
// square tables and a lightweight king-safety term. Scores are always from
// White's point of view flipped to the side to move's perspective where the
// search needs it.
package eval

import (
	"math/bits"

	"corvus/board"
)

// PST holds phase-0 piece-square values, indexed [PieceType][square],
// consulted by both the evaluator and the move-ordering scorer. Values are
// trimmed from a much larger tuned table down to the material + placement
// terms this core needs; the king-safety term below supplies the one
// extra signal the evaluator's contract requires beyond pure material.
var PST = [7][64]int{
	board.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		-46, -41, -42, -39, -40, -12, 1, -21,
		-51, -52, -45, -45, -37, -37, -20, -30,
		-46, -40, -33, -33, -23, -26, -15, -30,
		-36, -27, -27, -11, 1, 2, -4, -21,
		-33, -6, 7, 13, 27, 57, 19, -11,
		57, 54, 55, 54, 46, 32, 4, 9,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	board.Knight: {
		-24, -28, -46, -30, -25, -21, -27, -40,
		-35, -32, -18, -10, -14, -12, -20, -18,
		-25, -8, -4, 6, 7, -1, -1, -17,
		-14, -1, 8, 5, 13, 10, 26, -1,
		-5, 8, 30, 35, 24, 43, 19, 22,
		-21, 12, 40, 49, 67, 64, 37, 14,
		-17, -12, 20, 33, 33, 37, -8, 3,
		-61, -6, -12, -2, 1, -6, -1, -16,
	},
	board.Bishop: {
		4, -2, -15, -21, -18, -8, -8, 2,
		4, 8, 11, -2, 1, 5, 20, 11,
		-2, 11, 8, 13, 10, 8, 10, 13,
		-7, 10, 15, 21, 26, 11, 10, 7,
		-4, 22, 24, 49, 34, 37, 20, 6,
		4, 18, 36, 36, 47, 55, 37, 24,
		-22, 6, 3, -7, 4, 14, -3, 8,
		-27, -8, -13, -12, -8, -21, 1, -10,
	},
	board.Rook: {
		-46, -41, -37, -34, -36, -40, -19, -42,
		-71, -45, -44, -43, -47, -37, -25, -51,
		-60, -46, -50, -44, -47, -48, -21, -38,
		-49, -45, -43, -35, -37, -34, -13, -29,
		-33, -21, -11, 6, 0, 7, 8, 2,
		-22, 10, 4, 25, 41, 38, 44, 20,
		-3, -5, 16, 28, 31, 37, 9, 30,
		23, 22, 19, 24, 23, 20, 21, 34,
	},
	board.Queen: {
		-6, -17, -12, -3, -6, -28, -27, -12,
		-11, -4, 2, -2, -1, 7, 8, -7,
		-8, -1, -2, -4, -4, -1, 8, 7,
		-5, -3, -2, -6, -6, 10, 7, 16,
		-11, -6, -2, -1, 12, 22, 26, 26,
		-13, -6, -1, 14, 36, 58, 71, 42,
		-11, -40, 5, 5, 20, 44, -2, 27,
		0, 16, 21, 29, 36, 38, 25, 36,
	},
	board.King: {
		-4, 36, -1, -69, -23, -74, 19, 26,
		12, 0, -18, -53, -33, -39, 7, 25,
		-6, -4, -3, -11, -6, -8, 4, -15,
		-1, 8, 16, 10, 15, 12, 23, -9,
		0, 9, 16, 10, 13, 15, 15, -8,
		1, 11, 12, 9, 8, 14, 12, 0,
		-2, 6, 6, 2, 3, 4, 3, -2,
		-1, 0, 0, 2, 0, 0, 0, -2,
	},
}

// PieceValue gives each piece kind's static material value; PieceValue of
// board.NoPieceType is 0.
var PieceValue = [7]int{
	board.NoPieceType: 0,
	board.Pawn:        88,
	board.Knight:      316,
	board.Bishop:      331,
	board.Rook:        494,
	board.Queen:       993,
	board.King:        0,
}

// attackerInner and attackerOuter score how much each attacking piece kind
// contributes to king-safety pressure, graded by proximity to the king.
var attackerInner = [7]int{board.Pawn: 1, board.Knight: 2, board.Bishop: 2, board.Rook: 4, board.Queen: 6}
var attackerOuter = [7]int{board.Pawn: 0, board.Knight: 1, board.Bishop: 1, board.Rook: 2, board.Queen: 2}

// pstValue looks up the phase-0 piece-square value for p standing on sq,
// mirroring the square for Black so a single White-oriented table serves
// both colors.
func pstValue(p board.Piece, sq board.Square) int {
	s := sq
	if p.Color() == board.Black {
		s = sq.Mirror()
	}
	return PST[p.Type()][s]
}

// Eval returns the static score of b from White's perspective: positive
// favors White. It is sign-symmetric by construction, since every term is
// computed once per color and subtracted.
func Eval(b *board.Board) int {
	score := 0
	for pt := board.Pawn; pt <= board.King; pt++ {
		white := b.PiecesOf(pt, board.White)
		for white != 0 {
			sq := board.Square(bits.TrailingZeros64(white))
			white &= white - 1
			score += PieceValue[pt] + pstValue(board.FromTypeAndColor(pt, board.White), sq)
		}
		black := b.PiecesOf(pt, board.Black)
		for black != 0 {
			sq := board.Square(bits.TrailingZeros64(black))
			black &= black - 1
			score -= PieceValue[pt] + pstValue(board.FromTypeAndColor(pt, board.Black), sq)
		}
	}

	score += kingSafety(b, board.White) - kingSafety(b, board.Black)
	return score
}

// Relative returns Eval from the perspective of the side to move, which is
// the convention the negamax search consults.
func Relative(b *board.Board) int {
	s := Eval(b)
	if b.SideToMove() == board.Black {
		return -s
	}
	return s
}

// kingSafety scores attacking pressure on color c's king by weighting each
// enemy piece attacking a square in the king's inner ring (its own step
// squares) or outer ring (the knight's jump squares from the king),
// returning a penalty (negative) for c.
func kingSafety(b *board.Board, c board.Color) int {
	ks := b.KingSquare(c)
	if ks == board.NoSquare {
		return 0
	}
	them := c.Other()

	pressure := 0
	inner := kingRing(ks)
	for inner != 0 {
		sq := board.Square(bits.TrailingZeros64(inner))
		inner &= inner - 1
		attackers := b.SquareAttackers(sq, them)
		pressure += weightedAttackers(b, attackers, attackerInner)
	}
	outer := kingOuterRing(ks)
	for outer != 0 {
		sq := board.Square(bits.TrailingZeros64(outer))
		outer &= outer - 1
		attackers := b.SquareAttackers(sq, them)
		pressure += weightedAttackers(b, attackers, attackerOuter)
	}
	return -pressure
}

func weightedAttackers(b *board.Board, attackers uint64, weight [7]int) int {
	total := 0
	for attackers != 0 {
		sq := board.Square(bits.TrailingZeros64(attackers))
		attackers &= attackers - 1
		total += weight[b.PieceAt(sq).Type()]
	}
	return total
}

func kingRing(ks board.Square) uint64 {
	file, rank := ks.File(), ks.Rank()
	var ring uint64
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			f, r := file+df, rank+dr
			if f >= 0 && f < 8 && r >= 0 && r < 8 {
				ring |= uint64(1) << uint(r*8+f)
			}
		}
	}
	return ring
}

func kingOuterRing(ks board.Square) uint64 {
	file, rank := ks.File(), ks.Rank()
	offsets := [8][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	var ring uint64
	for _, off := range offsets {
		f, r := file+off[0], rank+off[1]
		if f >= 0 && f < 8 && r >= 0 && r < 8 {
			ring |= uint64(1) << uint(r*8+f)
		}
	}
	return ring
}
