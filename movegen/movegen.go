// Package movegen produces pseudo-legal moves for a board: captures and
// quiets (including castling, en passant and promotions) written into a
// caller-supplied buffer, plus a perft counter for validation.
package movegen

import (
	"math/bits"

	"corvus/bitboard"
	"corvus/board"
)

// MaxMoves bounds the number of pseudo-legal moves any single position can
// produce; 256 is the conventional generous ceiling used across the corpus.
const MaxMoves = 256

func popLSB(bb *uint64) int {
	sq := bits.TrailingZeros64(*bb)
	*bb &= *bb - 1
	return sq
}

// GenerateCaptures appends b's pseudo-legal captures (including en passant
// and capture-promotions) to buf starting at count, and returns the new
// count.
func GenerateCaptures(b *board.Board, buf []board.Move, count int) int {
	count = genPawnCaptures(b, buf, count)
	count = genPieceMoves(b, buf, count, true)
	return count
}

// GenerateQuiets appends b's pseudo-legal quiet moves (including castling
// and non-capture promotions) to buf starting at count, and returns the new
// count. Castling moves are fully legality-checked before emission; every
// other move is left pseudo-legal.
func GenerateQuiets(b *board.Board, buf []board.Move, count int) int {
	count = genPawnQuiets(b, buf, count)
	count = genPieceMoves(b, buf, count, false)
	count = genCastling(b, buf, count)
	return count
}

func genPawnQuiets(b *board.Board, buf []board.Move, count int) int {
	us := b.SideToMove()
	empty := ^b.Occupied()
	pawns := b.PiecesOf(board.Pawn, us)
	pawn := board.FromTypeAndColor(board.Pawn, us)

	if us == board.White {
		singles := (pawns << 8) & empty
		promos := singles & bitboardRank8
		quiets := singles &^ bitboardRank8
		for quiets != 0 {
			to := popLSB(&quiets)
			count = emit(buf, count, board.NewMove(board.Square(to-8), board.Square(to), pawn, board.NoPiece, board.NoPiece, board.FlagNone))
		}
		for promos != 0 {
			to := popLSB(&promos)
			count = emitPromotions(buf, count, board.Square(to-8), board.Square(to), pawn, board.NoPiece, us)
		}
		doubles := ((pawns & bitboardRank2 << 8) & empty) << 8 & empty
		for doubles != 0 {
			to := popLSB(&doubles)
			count = emit(buf, count, board.NewMove(board.Square(to-16), board.Square(to), pawn, board.NoPiece, board.NoPiece, board.FlagDoublePush))
		}
	} else {
		singles := (pawns >> 8) & empty
		promos := singles & bitboardRank1
		quiets := singles &^ bitboardRank1
		for quiets != 0 {
			to := popLSB(&quiets)
			count = emit(buf, count, board.NewMove(board.Square(to+8), board.Square(to), pawn, board.NoPiece, board.NoPiece, board.FlagNone))
		}
		for promos != 0 {
			to := popLSB(&promos)
			count = emitPromotions(buf, count, board.Square(to+8), board.Square(to), pawn, board.NoPiece, us)
		}
		doubles := ((pawns & bitboardRank7 >> 8) & empty) >> 8 & empty
		for doubles != 0 {
			to := popLSB(&doubles)
			count = emit(buf, count, board.NewMove(board.Square(to+16), board.Square(to), pawn, board.NoPiece, board.NoPiece, board.FlagDoublePush))
		}
	}
	return count
}

func genPawnCaptures(b *board.Board, buf []board.Move, count int) int {
	us := b.SideToMove()
	them := us.Other()
	pawns := b.PiecesOf(board.Pawn, us)
	theirs := b.Colors(them)
	pawn := board.FromTypeAndColor(board.Pawn, us)

	if us == board.White {
		left := ((pawns &^ fileAMask) << 7) & theirs
		right := ((pawns &^ fileHMask) << 9) & theirs
		count = emitPawnCaptureSet(buf, count, left, -7, pawn, b, us)
		count = emitPawnCaptureSet(buf, count, right, -9, pawn, b, us)
	} else {
		left := ((pawns &^ fileHMask) >> 7) & theirs
		right := ((pawns &^ fileAMask) >> 9) & theirs
		count = emitPawnCaptureSet(buf, count, left, 7, pawn, b, us)
		count = emitPawnCaptureSet(buf, count, right, 9, pawn, b, us)
	}

	if ep := b.EnPassant(); ep != board.NoSquare {
		attackers := bitboard.PawnAttacks(bitboard.Color(them), int(ep)) & pawns
		for attackers != 0 {
			from := popLSB(&attackers)
			count = emit(buf, count, board.NewMove(board.Square(from), ep, pawn, board.FromTypeAndColor(board.Pawn, them), board.NoPiece, board.FlagEnPassant))
		}
	}
	return count
}

// emitPawnCaptureSet walks the destination set of one diagonal capture
// direction, recovering `from` as `to+delta` and splitting promotion-rank
// destinations into the four CAPTURE_PROMOTION moves.
func emitPawnCaptureSet(buf []board.Move, count int, dests uint64, delta int, pawn board.Piece, b *board.Board, us board.Color) int {
	promoRank := bitboardRank8
	if us == board.Black {
		promoRank = bitboardRank1
	}
	for dests != 0 {
		to := popLSB(&dests)
		from := to + delta
		captured := b.PieceAt(board.Square(to))
		if (uint64(1)<<uint(to))&promoRank != 0 {
			count = emitPromotions(buf, count, board.Square(from), board.Square(to), pawn, captured, us)
		} else {
			count = emit(buf, count, board.NewMove(board.Square(from), board.Square(to), pawn, captured, board.NoPiece, board.FlagNone))
		}
	}
	return count
}

// emitPromotions emits the four promotion pieces in QUEEN, ROOK, BISHOP,
// KNIGHT order for one from/to pair.
func emitPromotions(buf []board.Move, count int, from, to board.Square, pawn, captured board.Piece, us board.Color) int {
	order := [4]board.PieceType{board.Queen, board.Rook, board.Bishop, board.Knight}
	for _, pt := range order {
		promo := board.FromTypeAndColor(pt, us)
		count = emit(buf, count, board.NewMove(from, to, pawn, captured, promo, board.FlagNone))
	}
	return count
}

// genPieceMoves generates knight/bishop/rook/queen/king moves, captures
// only when wantCaptures is true and quiets only when it is false.
func genPieceMoves(b *board.Board, buf []board.Move, count int, wantCaptures bool) int {
	us := b.SideToMove()
	them := us.Other()
	occ := b.Occupied()
	empty := ^occ
	theirs := b.Colors(them)

	for _, pt := range [4]board.PieceType{board.Knight, board.Bishop, board.Rook, board.Queen} {
		pieces := b.PiecesOf(pt, us)
		piece := board.FromTypeAndColor(pt, us)
		for pieces != 0 {
			from := popLSB(&pieces)
			attacks := board.AttacksFrom(pt, us, board.Square(from), occ)
			if wantCaptures {
				targets := attacks & theirs
				for targets != 0 {
					to := popLSB(&targets)
					count = emit(buf, count, board.NewMove(board.Square(from), board.Square(to), piece, b.PieceAt(board.Square(to)), board.NoPiece, board.FlagNone))
				}
			} else {
				targets := attacks & empty
				for targets != 0 {
					to := popLSB(&targets)
					count = emit(buf, count, board.NewMove(board.Square(from), board.Square(to), piece, board.NoPiece, board.NoPiece, board.FlagNone))
				}
			}
		}
	}

	kingSq := b.KingSquare(us)
	king := board.FromTypeAndColor(board.King, us)
	attacks := board.AttacksFrom(board.King, us, kingSq, occ)
	if wantCaptures {
		targets := attacks & theirs
		for targets != 0 {
			to := popLSB(&targets)
			count = emit(buf, count, board.NewMove(kingSq, board.Square(to), king, b.PieceAt(board.Square(to)), board.NoPiece, board.FlagNone))
		}
	} else {
		targets := attacks & empty
		for targets != 0 {
			to := popLSB(&targets)
			count = emit(buf, count, board.NewMove(kingSq, board.Square(to), king, board.NoPiece, board.NoPiece, board.FlagNone))
		}
	}
	return count
}

// genCastling emits the (fully legality-checked) castling moves available
// to the side to move, and only when that side is not currently in check.
func genCastling(b *board.Board, buf []board.Move, count int) int {
	us := b.SideToMove()
	them := us.Other()
	if b.InCheck(us) {
		return count
	}
	from := b.KingSquare(us)
	king := board.FromTypeAndColor(board.King, us)
	occ := b.Occupied()

	if b.Castling()&board.KingSideRight(us) != 0 {
		s1, s2 := from+1, from+2
		if occ&sqBit(s1) == 0 && occ&sqBit(s2) == 0 &&
			!b.IsAttacked(s1, them) && !b.IsAttacked(s2, them) {
			count = emit(buf, count, board.NewMove(from, from+2, king, board.NoPiece, board.NoPiece, board.FlagCastle))
		}
	}
	if b.Castling()&board.QueenSideRight(us) != 0 {
		s1, s2, s3 := from-1, from-2, from-3
		if occ&sqBit(s1) == 0 && occ&sqBit(s2) == 0 && occ&sqBit(s3) == 0 &&
			!b.IsAttacked(s1, them) && !b.IsAttacked(s2, them) {
			count = emit(buf, count, board.NewMove(from, from-2, king, board.NoPiece, board.NoPiece, board.FlagCastle))
		}
	}
	return count
}

func sqBit(s board.Square) uint64 { return uint64(1) << uint(s) }

func emit(buf []board.Move, count int, m board.Move) int {
	if count < len(buf) {
		buf[count] = m
	}
	return count + 1
}

const (
	bitboardRank1 uint64 = 0x00000000000000FF
	bitboardRank2 uint64 = 0x000000000000FF00
	bitboardRank7 uint64 = 0x00FF000000000000
	bitboardRank8 uint64 = 0xFF00000000000000
	fileAMask     uint64 = 0x0101010101010101
	fileHMask     uint64 = 0x8080808080808080
)
