package mailbox

// Move flags. Castle, en passant and double push are mutually exclusive;
// a capture is indicated by a non-zero Captured piece instead.
const (
	FlagNone       uint8 = 0
	FlagCastle     uint8 = 1
	FlagEnPassant  uint8 = 2
	FlagDoublePush uint8 = 4
)

// Move records a single half-move. Captured holds the piece removed by
// the move; for en passant that is the pawn on the adjacent square, not
// the piece on To (which is empty).
type Move struct {
	From      Square
	To        Square
	Captured  Piece
	Promotion Piece
	Flags     uint8
}

// Equals reports move identity on (from, to, promotion). Captured and
// flags are derivable from the position and do not participate.
func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// IsNull reports whether this is the null/sentinel move.
func (m Move) IsNull() bool { return m.From == m.To }

var promoChars = [7]byte{' ', ' ', 'n', 'b', 'r', 'q', ' '}

// UCI renders the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	s := []byte{
		'a' + byte(FileOf(m.From)), '1' + byte(RankOf(m.From)),
		'a' + byte(FileOf(m.To)), '1' + byte(RankOf(m.To)),
	}
	if m.Promotion != NoPiece {
		s = append(s, promoChars[m.Promotion.Type()])
	}
	return string(s)
}

// String is the UCI rendering.
func (m Move) String() string { return m.UCI() }

// MoveFromUCI rebuilds a full Move from coordinate notation using the
// current board to recover the captured piece and the special-move flag.
// Returns the null move for strings shorter than four characters.
func (b *Board) MoveFromUCI(s string) Move {
	if len(s) < 4 {
		return Move{}
	}
	from := MakeSquare(int(s[0]-'a'), int(s[1]-'1'))
	to := MakeSquare(int(s[2]-'a'), int(s[3]-'1'))
	if from < 0 || from > 63 || to < 0 || to > 63 {
		return Move{}
	}

	m := Move{From: from, To: to, Captured: b.squares[to]}
	piece := b.squares[from]
	pt := piece.Type()
	sign := piece.Side().Sign()

	if len(s) >= 5 {
		switch s[4] {
		case 'q':
			m.Promotion = sign * Piece(Queen)
		case 'r':
			m.Promotion = sign * Piece(Rook)
		case 'b':
			m.Promotion = sign * Piece(Bishop)
		case 'n':
			m.Promotion = sign * Piece(Knight)
		}
	}

	// A pawn stepping diagonally onto an empty square is en passant.
	if pt == Pawn && FileOf(from) != FileOf(to) && m.Captured == NoPiece {
		m.Flags = FlagEnPassant
		m.Captured = -sign * Piece(Pawn)
	}
	if pt == Pawn && abs(RankOf(to)-RankOf(from)) == 2 {
		m.Flags = FlagDoublePush
	}
	if pt == King && abs(FileOf(to)-FileOf(from)) == 2 {
		m.Flags = FlagCastle
	}
	return m
}
