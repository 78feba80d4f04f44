// Package board holds the mutable core chess position: piece and color
// bitboards, side to move, castling rights and en-passant target, plus the
// FEN codec, Zobrist hashing, the Make/Unmake pair and the attack oracle
// built on top of the bitboard package's attack tables.
package board

import (
	"math/bits"

	"corvus/bitboard"
)

// Piece encodes a colored chess piece. Black pieces are the white encoding
// with the color bit (8) set, so Type() and Color() are cheap bit ops.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is the colorless kind of a piece, in [1,6], matching the
// PAWN..KING ordering used throughout the core (scoring, PST lookups).
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

// Type returns the colorless kind of the piece.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece reports White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// FromTypeAndColor combines a colorless kind with a side into a concrete Piece.
func FromTypeAndColor(pt PieceType, c Color) Piece {
	if pt == NoPieceType {
		return NoPiece
	}
	if c == Black {
		return Piece(pt) | 8
	}
	return Piece(pt)
}

// Color is the side to move: White or Black.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return 1 - c }

// CastlingRights is a 4-bit mask over the rights named in the constants below.
type CastlingRights uint8

const (
	WhiteKingSide  CastlingRights = 1
	WhiteQueenSide CastlingRights = 2
	BlackKingSide  CastlingRights = 4
	BlackQueenSide CastlingRights = 8
)

// KingSideRight and QueenSideRight return the castling bit that belongs to
// color c, per the encoding invariant in the data model: bit 1<<(2*isBlack)
// is the king-side right, bit 2<<(2*isBlack) is the queen-side right.
func KingSideRight(c Color) CastlingRights {
	return CastlingRights(1 << (2 * uint(c)))
}
func QueenSideRight(c Color) CastlingRights {
	return CastlingRights(2 << (2 * uint(c)))
}

// Square is a board index in [0,63]; square 0 is a1, index = file + 8*rank.
type Square int8

const NoSquare Square = -1

// Mirror flips a square vertically (rank mirror), used to reuse White's
// piece-square tables for Black.
func (s Square) Mirror() Square { return s ^ 56 }

func (s Square) File() int { return int(s) % 8 }
func (s Square) Rank() int { return int(s) / 8 }

// Board is the mutable core entity threaded by reference through search
// recursion. It owns no history beyond the single Undo slot each recursion
// frame supplies to Make/Unmake.
type Board struct {
	pieces [7][2]uint64 // pieces[PieceType][Color], PieceType in [1,6]
	colors [2]uint64    // colors[Color]: all squares occupied by that color
	mailbox [64]Piece

	side    Color
	castle  CastlingRights
	ep      Square
	halfmove int
	fullmove int
	key      uint64
}

// New returns an empty board (no pieces, White to move, no rights). Callers
// typically populate it via ParseFEN rather than by hand.
func New() *Board {
	return &Board{ep: NoSquare}
}

func (b *Board) SideToMove() Color          { return b.side }
func (b *Board) Castling() CastlingRights   { return b.castle }
func (b *Board) EnPassant() Square          { return b.ep }
func (b *Board) HalfmoveClock() int         { return b.halfmove }
func (b *Board) FullmoveNumber() int        { return b.fullmove }
func (b *Board) Hash() uint64               { return b.key }
func (b *Board) PieceAt(s Square) Piece     { return b.mailbox[s] }

// Pieces returns the bitboard of all squares holding a piece of kind pt,
// regardless of color.
func (b *Board) Pieces(pt PieceType) uint64 { return b.pieces[pt][White] | b.pieces[pt][Black] }

// PiecesOf returns the bitboard of squares holding a piece of kind pt and color c.
func (b *Board) PiecesOf(pt PieceType, c Color) uint64 { return b.pieces[pt][c] }

// Colors returns the bitboard of all squares occupied by color c.
func (b *Board) Colors(c Color) uint64 { return b.colors[c] }

// Occupied returns the union of both colors' occupancy.
func (b *Board) Occupied() uint64 { return b.colors[White] | b.colors[Black] }

// Pawns/Knights/... return the side-to-move's pieces of that kind, matching
// the data model's "pawns() = pieces[PAWN] scoped to side" accessors.
func (b *Board) Pawns() uint64   { return b.pieces[Pawn][b.side] }
func (b *Board) Knights() uint64 { return b.pieces[Knight][b.side] }
func (b *Board) Bishops() uint64 { return b.pieces[Bishop][b.side] }
func (b *Board) Rooks() uint64   { return b.pieces[Rook][b.side] }
func (b *Board) Queens() uint64  { return b.pieces[Queen][b.side] }
func (b *Board) Kings() uint64   { return b.pieces[King][b.side] }

// KingSquare returns the (unique) square holding color c's king.
func (b *Board) KingSquare(c Color) Square {
	return Square(bits.TrailingZeros64(b.pieces[King][c]))
}

// place puts piece p on empty square sq, updating bitboards, mailbox and
// the incremental Zobrist key. It never checks that sq was actually empty;
// callers (FEN parsing, Make/Unmake) are responsible for that invariant.
func (b *Board) place(sq Square, p Piece) {
	bit := uint64(1) << uint(sq)
	c := p.Color()
	pt := p.Type()
	b.pieces[pt][c] |= bit
	b.colors[c] |= bit
	b.mailbox[sq] = p
	b.key ^= zobristPiece[p][sq]
}

// remove takes whatever piece sits on sq off the board and returns it (or
// NoPiece if the square was already empty).
func (b *Board) remove(sq Square) Piece {
	p := b.mailbox[sq]
	if p == NoPiece {
		return NoPiece
	}
	bit := uint64(1) << uint(sq)
	c := p.Color()
	pt := p.Type()
	b.pieces[pt][c] &^= bit
	b.colors[c] &^= bit
	b.mailbox[sq] = NoPiece
	b.key ^= zobristPiece[p][sq]
	return p
}

// AttacksFrom dispatches to the right bitboard table for a piece kind. occ
// is ignored for knight/king/pawn. movegen uses this to generate moves for
// any piece kind through one code path.
func AttacksFrom(pt PieceType, c Color, s Square, occ uint64) uint64 {
	switch pt {
	case Pawn:
		return bitboard.PawnAttacks(bitboard.Color(c), int(s))
	case Knight:
		return bitboard.KnightAttacks(int(s))
	case Bishop:
		return bitboard.BishopAttacks(int(s), occ)
	case Rook:
		return bitboard.RookAttacks(int(s), occ)
	case Queen:
		return bitboard.QueenAttacks(int(s), occ)
	case King:
		return bitboard.KingAttacks(int(s))
	}
	return 0
}
