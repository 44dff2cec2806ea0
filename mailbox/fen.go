package mailbox

import (
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func pieceFromChar(c rune) Piece {
	switch c {
	case 'P':
		return WPawn
	case 'N':
		return WKnight
	case 'B':
		return WBishop
	case 'R':
		return WRook
	case 'Q':
		return WQueen
	case 'K':
		return WKing
	case 'p':
		return BPawn
	case 'n':
		return BKnight
	case 'b':
		return BBishop
	case 'r':
		return BRook
	case 'q':
		return BQueen
	case 'k':
		return BKing
	default:
		return NoPiece
	}
}

var pieceChars = map[Piece]byte{
	WPawn: 'P', WKnight: 'N', WBishop: 'B', WRook: 'R', WQueen: 'Q', WKing: 'K',
	BPawn: 'p', BKnight: 'n', BBishop: 'b', BRook: 'r', BQueen: 'q', BKing: 'k',
}

// ParseFEN sets up a board from a FEN string. The parser is lenient:
// unknown placement characters leave empty squares, missing trailing
// fields default (white to move, no rights, halfmove 0, fullmove 1).
// It never fails; garbage in gives a sparse board out.
func ParseFEN(fen string) *Board {
	b := &Board{
		epSquare: NoSquare,
		fullmove: 1,
		kingSq:   [2]Square{NoSquare, NoSquare},
	}

	fields := strings.Fields(fen)

	if len(fields) > 0 {
		sq := 56 // placement starts at a8
		for _, c := range fields[0] {
			switch {
			case c == '/':
				sq -= 16
			case c >= '1' && c <= '8':
				sq += int(c - '0')
			default:
				if sq >= 0 && sq < 64 {
					p := pieceFromChar(c)
					b.squares[sq] = p
					if p == WKing {
						b.kingSq[White] = Square(sq)
					}
					if p == BKing {
						b.kingSq[Black] = Square(sq)
					}
				}
				sq++
			}
		}
	}

	if len(fields) > 1 && fields[1] == "b" {
		b.side = Black
	}

	if len(fields) > 2 && fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				b.castling |= CastleWhiteK
			case 'Q':
				b.castling |= CastleWhiteQ
			case 'k':
				b.castling |= CastleBlackK
			case 'q':
				b.castling |= CastleBlackQ
			}
		}
	}

	if len(fields) > 3 && len(fields[3]) == 2 {
		f := int(fields[3][0] - 'a')
		r := int(fields[3][1] - '1')
		if f >= 0 && f < 8 && r >= 0 && r < 8 {
			b.epSquare = MakeSquare(f, r)
		}
	}

	if len(fields) > 4 {
		if v, err := strconv.Atoi(fields[4]); err == nil {
			b.halfmove = v
		}
	}
	if len(fields) > 5 {
		if v, err := strconv.Atoi(fields[5]); err == nil {
			b.fullmove = v
		}
	}

	b.hash = b.ComputeHash()
	b.history = append(b.history, b.hash)
	return b
}

// ToFEN renders the position as a FEN string.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			p := b.squares[MakeSquare(f, r)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(pieceChars[p])
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}

	if b.side == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	if b.castling == 0 {
		sb.WriteByte('-')
	} else {
		if b.castling&CastleWhiteK != 0 {
			sb.WriteByte('K')
		}
		if b.castling&CastleWhiteQ != 0 {
			sb.WriteByte('Q')
		}
		if b.castling&CastleBlackK != 0 {
			sb.WriteByte('k')
		}
		if b.castling&CastleBlackQ != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if b.epSquare >= 0 {
		sb.WriteByte('a' + byte(FileOf(b.epSquare)))
		sb.WriteByte('1' + byte(RankOf(b.epSquare)))
	} else {
		sb.WriteByte('-')
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmove))
	return sb.String()
}
