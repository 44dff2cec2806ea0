package mailbox

// Board represents a full position: mailbox piece placement plus the game
// state needed for legality, hashing and draw detection.
type Board struct {
	squares  [64]Piece
	side     Color
	castling CastlingRights
	epSquare Square // square a capturing pawn moves to, or NoSquare
	halfmove int
	fullmove int
	hash     uint64

	kingSq [2]Square

	// Zobrist keys of every position reached on the current game path,
	// including the present one. Drives threefold detection.
	history []uint64
}

// PieceAt returns the piece on a square.
func (b *Board) PieceAt(sq Square) Piece { return b.squares[sq] }

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.side }

// Castling returns the remaining castling rights mask.
func (b *Board) Castling() CastlingRights { return b.castling }

// EnPassantSquare returns the current en-passant target square or NoSquare.
func (b *Board) EnPassantSquare() Square { return b.epSquare }

// HalfmoveClock returns the half-moves since the last capture or pawn move.
func (b *Board) HalfmoveClock() int { return b.halfmove }

// FullmoveNumber returns the full-move counter (incremented after Black moves).
func (b *Board) FullmoveNumber() int { return b.fullmove }

// Hash returns the current Zobrist key.
func (b *Board) Hash() uint64 { return b.hash }

// KingSquare returns the cached king square for a side.
func (b *Board) KingSquare(c Color) Square { return b.kingSq[c] }

// HistoryLen returns the number of recorded position keys.
func (b *Board) HistoryLen() int { return len(b.history) }

// HasLegalMoves reports whether the side to move has any legal move.
func (b *Board) HasLegalMoves() bool {
	return len(b.GenerateLegalMoves()) > 0
}

// InCheckmate reports whether the side to move is checkmated.
func (b *Board) InCheckmate() bool {
	return b.InCheck() && !b.HasLegalMoves()
}

// InStalemate reports whether the side to move is stalemated.
func (b *Board) InStalemate() bool {
	return !b.InCheck() && !b.HasLegalMoves()
}

// countRepetitions counts how many earlier history entries match the
// current key. Only positions with the same side to move can repeat, so
// the scan walks backwards two plies at a time, starting three entries
// back (the last entry is the current position itself).
func (b *Board) countRepetitions() int {
	count := 0
	for i := len(b.history) - 3; i >= 0; i -= 2 {
		if b.history[i] == b.hash {
			count++
		}
	}
	return count
}

// IsDraw reports a fifty-move-rule or threefold-repetition draw.
func (b *Board) IsDraw() bool {
	if b.halfmove >= 100 {
		return true
	}
	return b.countRepetitions() >= 2
}
