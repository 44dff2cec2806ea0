package mailbox

// Undo holds the irreversible state saved by MakeMove. Board and
// king-square changes are reversed from the Move itself.
type Undo struct {
	castling CastlingRights
	epSquare Square
	halfmove int
	hash     uint64
}

// MakeMove applies a move and returns the state needed to reverse it.
// The move is not checked for legality; callers that apply pseudo-legal
// moves must test the mover's king afterwards and unmake if it is
// attacked.
func (b *Board) MakeMove(m Move) (u Undo) {
	u.castling = b.castling
	u.epSquare = b.epSquare
	u.halfmove = b.halfmove
	u.hash = b.hash

	piece := b.squares[m.From]
	pt := piece.Type()
	s := piece.Side()

	// Lift the mover off its source square.
	b.hash ^= zobristPiece[pieceIndex(piece)][m.From]
	b.squares[m.From] = NoPiece

	// Remove the captured piece. En passant captures off the target square.
	if m.Captured != NoPiece {
		if m.Flags&FlagEnPassant != 0 {
			capSq := MakeSquare(FileOf(m.To), RankOf(m.From))
			b.hash ^= zobristPiece[pieceIndex(m.Captured)][capSq]
			b.squares[capSq] = NoPiece
		} else {
			b.hash ^= zobristPiece[pieceIndex(m.Captured)][m.To]
		}
	}

	// Drop the mover (or its promotion) on the destination.
	placed := piece
	if m.Promotion != NoPiece {
		placed = m.Promotion
	}
	b.squares[m.To] = placed
	b.hash ^= zobristPiece[pieceIndex(placed)][m.To]

	if pt == King {
		b.kingSq[s] = m.To
	}

	// Castling moves the rook from its home file to the post-castle file.
	if m.Flags&FlagCastle != 0 {
		rook := PieceOf(s, Rook)
		var rookFrom, rookTo Square
		if FileOf(m.To) == 6 {
			rookFrom = MakeSquare(7, RankOf(m.From))
			rookTo = MakeSquare(5, RankOf(m.From))
		} else {
			rookFrom = MakeSquare(0, RankOf(m.From))
			rookTo = MakeSquare(3, RankOf(m.From))
		}
		b.hash ^= zobristPiece[pieceIndex(rook)][rookFrom]
		b.hash ^= zobristPiece[pieceIndex(rook)][rookTo]
		b.squares[rookFrom] = NoPiece
		b.squares[rookTo] = rook
	}

	// Castling rights fall when the king moves or a rook home square is
	// vacated or captured into.
	b.hash ^= zobristCastle[b.castling]
	if pt == King {
		if s == White {
			b.castling &^= CastleWhiteK | CastleWhiteQ
		} else {
			b.castling &^= CastleBlackK | CastleBlackQ
		}
	}
	if m.From == 0 || m.To == 0 {
		b.castling &^= CastleWhiteQ
	}
	if m.From == 7 || m.To == 7 {
		b.castling &^= CastleWhiteK
	}
	if m.From == 56 || m.To == 56 {
		b.castling &^= CastleBlackQ
	}
	if m.From == 63 || m.To == 63 {
		b.castling &^= CastleBlackK
	}
	b.hash ^= zobristCastle[b.castling]

	// New en-passant square only after a double pawn push.
	if b.epSquare >= 0 {
		b.hash ^= zobristEP[FileOf(b.epSquare)]
	}
	b.epSquare = NoSquare
	if m.Flags&FlagDoublePush != 0 && pt == Pawn {
		b.epSquare = (m.From + m.To) / 2
		b.hash ^= zobristEP[FileOf(b.epSquare)]
	}

	if pt == Pawn || m.Captured != NoPiece {
		b.halfmove = 0
	} else {
		b.halfmove++
	}

	b.side ^= 1
	b.hash ^= zobristSide
	if b.side == White {
		b.fullmove++
	}

	if len(b.history) < MaxHistory {
		b.history = append(b.history, b.hash)
	}
	return u
}

// UnmakeMove reverses a move previously applied with MakeMove.
func (b *Board) UnmakeMove(m Move, u Undo) {
	b.side ^= 1

	// A promotion started life as a pawn of the mover's colour.
	var piece Piece
	if m.Promotion != NoPiece {
		piece = PieceOf(b.side, Pawn)
	} else {
		piece = b.squares[m.To]
	}
	pt := piece.Type()

	b.squares[m.To] = NoPiece
	b.squares[m.From] = piece

	if m.Captured != NoPiece {
		if m.Flags&FlagEnPassant != 0 {
			b.squares[MakeSquare(FileOf(m.To), RankOf(m.From))] = m.Captured
		} else {
			b.squares[m.To] = m.Captured
		}
	}

	if m.Flags&FlagCastle != 0 {
		rook := PieceOf(b.side, Rook)
		if FileOf(m.To) == 6 {
			b.squares[MakeSquare(7, RankOf(m.From))] = rook
			b.squares[MakeSquare(5, RankOf(m.From))] = NoPiece
		} else {
			b.squares[MakeSquare(0, RankOf(m.From))] = rook
			b.squares[MakeSquare(3, RankOf(m.From))] = NoPiece
		}
	}

	if pt == King {
		b.kingSq[b.side] = m.From
	}

	b.castling = u.castling
	b.epSquare = u.epSquare
	b.halfmove = u.halfmove
	b.hash = u.hash
	if b.side == Black {
		b.fullmove--
	}

	if n := len(b.history); n > 0 {
		b.history = b.history[:n-1]
	}
}

// MakeNull passes the turn: side flips and any en-passant right lapses.
// Callers must not try a null move while in check.
func (b *Board) MakeNull() (u Undo) {
	u.epSquare = b.epSquare
	u.hash = b.hash
	if b.epSquare >= 0 {
		b.hash ^= zobristEP[FileOf(b.epSquare)]
	}
	b.epSquare = NoSquare
	b.side ^= 1
	b.hash ^= zobristSide
	return u
}

// UnmakeNull reverses MakeNull.
func (b *Board) UnmakeNull(u Undo) {
	b.side ^= 1
	b.epSquare = u.epSquare
	b.hash = u.hash
}
