// Package mailbox implements a mailbox chess board: a plain 64-square
// piece array with incremental Zobrist hashing, reversible make/unmake,
// attack detection and move generation.
package mailbox

// Piece is a signed piece code: magnitude is the piece type, sign is the
// colour (positive = white), zero is an empty square.
type Piece int8

const (
	NoPiece Piece = 0

	WPawn   Piece = 1
	WKnight Piece = 2
	WBishop Piece = 3
	WRook   Piece = 4
	WQueen  Piece = 5
	WKing   Piece = 6

	BPawn   Piece = -1
	BKnight Piece = -2
	BBishop Piece = -3
	BRook   Piece = -4
	BQueen  Piece = -5
	BKing   Piece = -6
)

// PieceType is the colourless piece kind in [0, 6].
type PieceType int8

const (
	None   PieceType = 0
	Pawn   PieceType = 1
	Knight PieceType = 2
	Bishop PieceType = 3
	Rook   PieceType = 4
	Queen  PieceType = 5
	King   PieceType = 6
)

// Type returns the colourless type of the piece.
func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

// Side returns the colour that owns the piece. NoPiece reports White.
func (p Piece) Side() Color {
	if p < 0 {
		return Black
	}
	return White
}

// Color identifies a side: White moves first.
type Color int8

const (
	White Color = 0
	Black Color = 1
)

// Sign returns +1 for White, -1 for Black, as a Piece multiplier.
func (c Color) Sign() Piece {
	if c == White {
		return 1
	}
	return -1
}

// PieceOf combines a colour with a piece type.
func PieceOf(c Color, t PieceType) Piece {
	return c.Sign() * Piece(t)
}

// Square indexes the board: 0 = a1, 7 = h1, 56 = a8, 63 = h8.
type Square int

const NoSquare Square = -1

// FileOf returns the file of a square in [0, 7] (0 = a-file).
func FileOf(s Square) int { return int(s) & 7 }

// RankOf returns the rank of a square in [0, 7] (0 = rank 1).
func RankOf(s Square) int { return int(s) >> 3 }

// MakeSquare builds a square from file and rank.
func MakeSquare(f, r int) Square { return Square(r<<3 | f) }

// Mirror flips a square vertically (a1 <-> a8).
func Mirror(s Square) Square { return s ^ 56 }

// CastlingRights is a 4-bit mask of the remaining castling options.
type CastlingRights uint8

const (
	CastleWhiteK CastlingRights = 1 << iota
	CastleWhiteQ
	CastleBlackK
	CastleBlackQ
)

// Board-walk direction offsets. Every step across the board must be
// re-validated against file wrap before use.
var (
	knightDirs = [8]int{17, 15, 10, 6, -6, -10, -15, -17}
	bishopDirs = [4]int{9, 7, -7, -9}
	rookDirs   = [4]int{8, 1, -1, -8}
	kingDirs   = [8]int{1, -1, 8, -8, 9, 7, -7, -9}
)

const (
	// MaxMoves bounds the number of pseudo-legal moves in any position.
	MaxMoves = 256
	// MaxHistory caps the repetition history; MakeMove records no keys
	// once it is full.
	MaxHistory = 1024
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
