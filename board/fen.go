package board

import (
	"errors"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard initial chess position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

func pieceLetter(p Piece) rune {
	letters := "?PNBRQK??pnbrqk?"
	return rune(letters[p])
}

// ParseFEN parses a FEN string into a fresh Board. It returns an error on
// any structurally invalid field rather than guessing at intent.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errors.New("board: invalid FEN, not enough fields")
	}

	b := New()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errors.New("board: invalid FEN, expected 8 ranks")
	}
	for i, rankStr := range ranks {
		rankIdx := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p := pieceFromChar(ch)
			if p == NoPiece {
				return nil, errors.New("board: invalid FEN, unrecognized piece character")
			}
			if file >= 8 {
				return nil, errors.New("board: invalid FEN, too many squares in rank")
			}
			b.place(Square(rankIdx*8+file), p)
			file++
		}
		if file != 8 {
			return nil, errors.New("board: invalid FEN, rank does not sum to 8 files")
		}
	}

	switch fields[1] {
	case "w":
		b.side = White
	case "b":
		b.side = Black
	default:
		return nil, errors.New("board: invalid FEN, side to move must be 'w' or 'b'")
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.castle |= WhiteKingSide
			case 'Q':
				b.castle |= WhiteQueenSide
			case 'k':
				b.castle |= BlackKingSide
			case 'q':
				b.castle |= BlackQueenSide
			default:
				return nil, errors.New("board: invalid FEN, bad castling rights character")
			}
		}
	}

	if fields[3] != "-" {
		if len(fields[3]) != 2 {
			return nil, errors.New("board: invalid FEN, bad en passant square")
		}
		file := fields[3][0]
		rank := fields[3][1]
		if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
			return nil, errors.New("board: invalid FEN, en passant square out of range")
		}
		b.ep = Square(int(rank-'1')*8 + int(file-'a'))
	}

	if len(fields) > 4 {
		hm, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, errors.New("board: invalid FEN, halfmove clock is not a number")
		}
		b.halfmove = hm
	}
	if len(fields) > 5 {
		fm, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, errors.New("board: invalid FEN, fullmove number is not a number")
		}
		b.fullmove = fm
	} else {
		b.fullmove = 1
	}

	b.key = b.computeZobrist()
	return b, nil
}

// MustParseFEN is ParseFEN for call sites (startup flags, tests) that treat
// a malformed literal as a programmer error rather than recoverable input.
func MustParseFEN(fen string) *Board {
	b, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// String renders the board as a FEN string.
func (b *Board) String() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.mailbox[Square(rank*8+file)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteRune(pieceLetter(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	if b.side == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	if b.castle == 0 {
		sb.WriteByte('-')
	} else {
		if b.castle&WhiteKingSide != 0 {
			sb.WriteByte('K')
		}
		if b.castle&WhiteQueenSide != 0 {
			sb.WriteByte('Q')
		}
		if b.castle&BlackKingSide != 0 {
			sb.WriteByte('k')
		}
		if b.castle&BlackQueenSide != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	if b.ep != NoSquare {
		sb.WriteByte('a' + byte(b.ep.File()))
		sb.WriteByte('1' + byte(b.ep.Rank()))
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')

	sb.WriteString(strconv.Itoa(b.halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmove))
	return sb.String()
}
