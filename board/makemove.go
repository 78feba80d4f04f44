package board

// Undo holds everything Unmake needs to restore the position after Make,
// sized to live on the caller's stack across one recursion frame.
type Undo struct {
	move         Move
	captured     Piece
	prevCastle   CastlingRights
	prevEP       Square
	prevHalfmove int
	prevFullmove int
	prevKey      uint64
	rookFrom     Square
	rookTo       Square
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Make applies m unconditionally and returns the Undo record needed to
// reverse it. Make never checks legality; callers follow it with IsIllegal
// (scoped to the side that just moved) and Unmake if the move turns out to
// leave that side's king in check.
func (b *Board) Make(m Move) Undo {
	var u Undo
	u.move = m
	u.prevCastle = b.castle
	u.prevEP = b.ep
	u.prevHalfmove = b.halfmove
	u.prevFullmove = b.fullmove
	u.prevKey = b.key
	u.rookFrom, u.rookTo = NoSquare, NoSquare

	from, to := m.From(), m.To()
	moved := m.MovedPiece()
	promo := m.PromotionPiece()
	flag := m.Flags()
	us := b.side
	them := us.Other()

	if b.ep != NoSquare {
		b.key ^= zobristEnPassant[b.ep.File()]
	}
	b.ep = NoSquare

	switch {
	case flag == FlagEnPassant:
		var capSq Square
		if us == White {
			capSq = to - 8
		} else {
			capSq = to + 8
		}
		u.captured = b.remove(capSq)
	case m.IsCapture():
		u.captured = b.remove(to)
	default:
		u.captured = NoPiece
	}

	b.remove(from)
	if promo != NoPiece {
		b.place(to, promo)
	} else {
		b.place(to, moved)
	}

	if flag == FlagCastle {
		switch to {
		case 6:
			b.remove(7)
			b.place(5, WhiteRook)
			u.rookFrom, u.rookTo = 7, 5
		case 2:
			b.remove(0)
			b.place(3, WhiteRook)
			u.rookFrom, u.rookTo = 0, 3
		case 62:
			b.remove(63)
			b.place(61, BlackRook)
			u.rookFrom, u.rookTo = 63, 61
		case 58:
			b.remove(56)
			b.place(59, BlackRook)
			u.rookFrom, u.rookTo = 56, 59
		}
	}

	newCastle := b.castle
	switch moved {
	case WhiteKing:
		newCastle &^= WhiteKingSide | WhiteQueenSide
	case BlackKing:
		newCastle &^= BlackKingSide | BlackQueenSide
	case WhiteRook:
		if from == 0 {
			newCastle &^= WhiteQueenSide
		} else if from == 7 {
			newCastle &^= WhiteKingSide
		}
	case BlackRook:
		if from == 56 {
			newCastle &^= BlackQueenSide
		} else if from == 63 {
			newCastle &^= BlackKingSide
		}
	}
	if u.captured.Type() == Rook {
		switch to {
		case 0:
			newCastle &^= WhiteQueenSide
		case 7:
			newCastle &^= WhiteKingSide
		case 56:
			newCastle &^= BlackQueenSide
		case 63:
			newCastle &^= BlackKingSide
		}
	}
	if newCastle != b.castle {
		b.key ^= zobristCastle[b.castle]
		b.key ^= zobristCastle[newCastle]
		b.castle = newCastle
	}

	if moved.Type() == Pawn && abs(to.Rank()-from.Rank()) == 2 {
		var ep Square
		if us == White {
			ep = from + 8
		} else {
			ep = from - 8
		}
		b.ep = ep
		b.key ^= zobristEnPassant[ep.File()]
	}

	if moved.Type() == Pawn || u.captured != NoPiece {
		b.halfmove = 0
	} else {
		b.halfmove++
	}
	if us == Black {
		b.fullmove++
	}

	b.side = them
	b.key ^= zobristSide

	return u
}

// Unmake reverses the effect of the Make call that produced u. It must be
// called with the board in exactly the state Make left it in.
func (b *Board) Unmake(u Undo) {
	b.side = b.side.Other()
	b.key ^= zobristSide

	if b.ep != NoSquare {
		b.key ^= zobristEnPassant[b.ep.File()]
	}

	m := u.move
	from, to := m.From(), m.To()
	moved := m.MovedPiece()

	if m.Flags() == FlagCastle && u.rookFrom != NoSquare {
		rook := b.remove(u.rookTo)
		b.place(u.rookFrom, rook)
	}

	b.remove(to)
	b.place(from, moved)

	if u.captured != NoPiece {
		if m.Flags() == FlagEnPassant {
			var capSq Square
			if moved.Color() == White {
				capSq = to - 8
			} else {
				capSq = to + 8
			}
			b.place(capSq, u.captured)
		} else {
			b.place(to, u.captured)
		}
	}

	if b.castle != u.prevCastle {
		b.key ^= zobristCastle[b.castle]
		b.key ^= zobristCastle[u.prevCastle]
	}
	b.castle = u.prevCastle
	b.ep = u.prevEP
	if b.ep != NoSquare {
		b.key ^= zobristEnPassant[b.ep.File()]
	}
	b.halfmove = u.prevHalfmove
	b.fullmove = u.prevFullmove

	b.key = u.prevKey
}
