package board

import "strings"

// Move packs a chess move into 32 bits: from(6) to(6) piece(4) captured(4)
// promotion(4) flag(2). The layout mirrors a classic mailbox engine's
// encoding so move ordering and the transposition table can treat moves as
// plain comparable values.
type Move uint32

const (
	moveFromShift    = 0
	moveToShift      = 6
	movePieceShift   = 12
	moveCaptureShift = 16
	movePromoteShift = 20
	moveFlagShift    = 24
)

// Flag occupies 2 bits and distinguishes the move kinds that Make/Unmake
// and the attack oracle need to special-case. Captures and promotions are
// instead recovered from CapturedPiece/PromotionPiece being non-empty.
const (
	FlagNone       uint8 = 0
	FlagCastle     uint8 = 1
	FlagEnPassant  uint8 = 2
	FlagDoublePush uint8 = 3
)

// NoMove is the zero Move value, used as a sentinel for "no move available"
// in move ordering and the transposition table.
const NoMove Move = 0

// NewMove constructs a packed Move from its components.
func NewMove(from, to Square, piece, captured, promotion Piece, flag uint8) Move {
	return Move(
		uint32(from&0x3F) |
			uint32(to&0x3F)<<moveToShift |
			uint32(piece&0xF)<<movePieceShift |
			uint32(captured&0xF)<<moveCaptureShift |
			uint32(promotion&0xF)<<movePromoteShift |
			uint32(flag&0x3)<<moveFlagShift,
	)
}

func (m Move) From() Square             { return Square((uint32(m) >> moveFromShift) & 0x3F) }
func (m Move) To() Square               { return Square((uint32(m) >> moveToShift) & 0x3F) }
func (m Move) MovedPiece() Piece        { return Piece((uint32(m) >> movePieceShift) & 0xF) }
func (m Move) CapturedPiece() Piece     { return Piece((uint32(m) >> moveCaptureShift) & 0xF) }
func (m Move) PromotionPiece() Piece    { return Piece((uint32(m) >> movePromoteShift) & 0xF) }
func (m Move) Flags() uint8             { return uint8((uint32(m) >> moveFlagShift) & 0x3) }
func (m Move) IsCapture() bool          { return m.CapturedPiece() != NoPiece }
func (m Move) IsPromotion() bool        { return m.PromotionPiece() != NoPiece }
func (m Move) IsCastle() bool           { return m.Flags() == FlagCastle }
func (m Move) IsEnPassant() bool        { return m.Flags() == FlagEnPassant }
func (m Move) IsDoublePush() bool       { return m.Flags() == FlagDoublePush }

// MoveKind enumerates the move-type taxonomy the generator and ordering
// layers distinguish, collapsing the packed fields into one value.
type MoveKind uint8

const (
	Quiet MoveKind = iota
	DoublePush
	Capture
	CapturePromotion
	Promotion
	EnPassant
	Castle
)

// Kind classifies the move per the MoveKind taxonomy.
func (m Move) Kind() MoveKind {
	switch m.Flags() {
	case FlagCastle:
		return Castle
	case FlagEnPassant:
		return EnPassant
	case FlagDoublePush:
		return DoublePush
	}
	switch {
	case m.IsPromotion() && m.IsCapture():
		return CapturePromotion
	case m.IsPromotion():
		return Promotion
	case m.IsCapture():
		return Capture
	default:
		return Quiet
	}
}

// String renders the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	from, to := m.From(), m.To()
	s := string([]byte{'a' + byte(from.File()), '1' + byte(from.Rank())}) +
		string([]byte{'a' + byte(to.File()), '1' + byte(to.Rank())})
	if promo := m.PromotionPiece(); promo != NoPiece {
		s += strings.ToLower(string(pieceLetter(promo)))
	}
	return s
}
