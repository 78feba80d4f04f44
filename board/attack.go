package board

import "corvus/bitboard"

// IsAttacked reports whether sq is attacked by any piece of color by, given
// the board's current occupancy. It is the single attack oracle consulted
// by check detection and castling legality alike.
func (b *Board) IsAttacked(sq Square, by Color) bool {
	occ := b.Occupied()

	if bitboard.PawnAttacks(bitboard.Color(by.Other()), int(sq))&b.pieces[Pawn][by] != 0 {
		return true
	}
	if bitboard.KnightAttacks(int(sq))&b.pieces[Knight][by] != 0 {
		return true
	}
	if bitboard.KingAttacks(int(sq))&b.pieces[King][by] != 0 {
		return true
	}
	rq := b.pieces[Rook][by] | b.pieces[Queen][by]
	if rq != 0 && bitboard.RookAttacks(int(sq), occ)&rq != 0 {
		return true
	}
	bq := b.pieces[Bishop][by] | b.pieces[Queen][by]
	if bq != 0 && bitboard.BishopAttacks(int(sq), occ)&bq != 0 {
		return true
	}
	return false
}

// InCheck reports whether color c's king currently sits on an attacked
// square.
func (b *Board) InCheck(c Color) bool {
	ks := b.KingSquare(c)
	if ks == NoSquare {
		return false
	}
	return b.IsAttacked(ks, c.Other())
}

// IsIllegal reports whether the side that just played Make's move (i.e.
// the side opposite b.SideToMove, since Make toggles the side to move
// before returning) has been left in check. movegen calls this right
// after Make and Unmakes the move if it reports true.
func (b *Board) IsIllegal() bool {
	return b.InCheck(b.side.Other())
}

// SquareAttackers returns the bitboard of all of color by's pieces that
// attack sq, used by the eval package's king-safety term.
func (b *Board) SquareAttackers(sq Square, by Color) uint64 {
	occ := b.Occupied()
	var att uint64
	att |= bitboard.PawnAttacks(bitboard.Color(by.Other()), int(sq)) & b.pieces[Pawn][by]
	att |= bitboard.KnightAttacks(int(sq)) & b.pieces[Knight][by]
	att |= bitboard.KingAttacks(int(sq)) & b.pieces[King][by]
	att |= bitboard.RookAttacks(int(sq), occ) & (b.pieces[Rook][by] | b.pieces[Queen][by])
	att |= bitboard.BishopAttacks(int(sq), occ) & (b.pieces[Bishop][by] | b.pieces[Queen][by])
	return att
}
