package mailbox

// GeneratePseudoMoves produces every move for the side to play except
// for the king-safety constraint: a returned move may still leave the
// mover's own king in check.
func (b *Board) GeneratePseudoMoves() []Move {
	return b.GeneratePseudoInto(make([]Move, 0, MaxMoves))
}

// GeneratePseudoInto appends pseudo-legal moves to buf and returns it.
func (b *Board) GeneratePseudoInto(buf []Move) []Move {
	buf = b.genPawnMoves(buf)
	buf = b.genKnightMoves(buf)
	buf = b.genSliderMoves(buf, Bishop)
	buf = b.genSliderMoves(buf, Rook)
	buf = b.genSliderMoves(buf, Queen)
	buf = b.genKingMoves(buf)
	return buf
}

// GenerateLegalMoves filters the pseudo-legal set through make / own-king
// attack test / unmake.
func (b *Board) GenerateLegalMoves() []Move {
	return b.GenerateLegalInto(make([]Move, 0, MaxMoves))
}

// GenerateLegalInto appends fully legal moves to buf and returns it.
func (b *Board) GenerateLegalInto(buf []Move) []Move {
	pseudo := b.GeneratePseudoInto(make([]Move, 0, MaxMoves))
	for _, m := range pseudo {
		u := b.MakeMove(m)
		if !b.IsAttacked(b.kingSq[b.side^1], b.side) {
			buf = append(buf, m)
		}
		b.UnmakeMove(m, u)
	}
	return buf
}

// IsLegal reports whether the pseudo-legal move leaves the mover's king safe.
func (b *Board) IsLegal(m Move) bool {
	u := b.MakeMove(m)
	legal := !b.IsAttacked(b.kingSq[b.side^1], b.side)
	b.UnmakeMove(m, u)
	return legal
}

// GenerateCaptures produces pseudo-legal captures, en-passant captures and
// queen promotions (including the quiet push-to-promote). Quiescence
// verifies legality itself after making each move.
func (b *Board) GenerateCaptures() []Move {
	return b.GenerateCapturesInto(make([]Move, 0, MaxMoves))
}

// GenerateCapturesInto appends capture moves to buf and returns it.
func (b *Board) GenerateCapturesInto(buf []Move) []Move {
	buf = b.genPawnCaptures(buf)
	buf = b.genKnightCaptures(buf)
	buf = b.genSliderCaptures(buf, Bishop)
	buf = b.genSliderCaptures(buf, Rook)
	buf = b.genSliderCaptures(buf, Queen)
	buf = b.genKingCaptures(buf)
	return buf
}

func (b *Board) genPawnMoves(buf []Move) []Move {
	sign := b.side.Sign()
	pawn := sign * Piece(Pawn)
	dir, startRank, promoRank := 8, 1, 7
	if b.side == Black {
		dir, startRank, promoRank = -8, 6, 0
	}

	for sq := Square(0); sq < 64; sq++ {
		if b.squares[sq] != pawn {
			continue
		}
		f, r := FileOf(sq), RankOf(sq)

		// Pushes.
		to := sq + Square(dir)
		if to >= 0 && to < 64 && b.squares[to] == NoPiece {
			if RankOf(to) == promoRank {
				buf = appendPromotions(buf, sq, to, NoPiece, sign)
			} else {
				buf = append(buf, Move{From: sq, To: to})
				if r == startRank {
					to2 := sq + Square(2*dir)
					if b.squares[to2] == NoPiece {
						buf = append(buf, Move{From: sq, To: to2, Flags: FlagDoublePush})
					}
				}
			}
		}

		// Diagonal captures and en passant.
		for _, df := range [2]int{-1, 1} {
			if f+df < 0 || f+df > 7 {
				continue
			}
			to := sq + Square(dir+df)
			if to < 0 || to >= 64 {
				continue
			}
			if target := b.squares[to]; target != NoPiece && target.Side() != b.side {
				if RankOf(to) == promoRank {
					buf = appendPromotions(buf, sq, to, target, sign)
				} else {
					buf = append(buf, Move{From: sq, To: to, Captured: target})
				}
			}
			if to == b.epSquare {
				buf = append(buf, Move{From: sq, To: to, Captured: -sign * Piece(Pawn), Flags: FlagEnPassant})
			}
		}
	}
	return buf
}

// appendPromotions emits the four promotion choices for one pawn move.
func appendPromotions(buf []Move, from, to Square, captured Piece, sign Piece) []Move {
	for _, pt := range [4]PieceType{Queen, Rook, Bishop, Knight} {
		buf = append(buf, Move{From: from, To: to, Captured: captured, Promotion: sign * Piece(pt)})
	}
	return buf
}

func (b *Board) genPawnCaptures(buf []Move) []Move {
	sign := b.side.Sign()
	pawn := sign * Piece(Pawn)
	dir, promoRank := 8, 7
	if b.side == Black {
		dir, promoRank = -8, 0
	}

	for sq := Square(0); sq < 64; sq++ {
		if b.squares[sq] != pawn {
			continue
		}
		f := FileOf(sq)

		// Push-to-promote counts as tactical; only the queen is tried.
		fwd := sq + Square(dir)
		if fwd >= 0 && fwd < 64 && b.squares[fwd] == NoPiece && RankOf(fwd) == promoRank {
			buf = append(buf, Move{From: sq, To: fwd, Promotion: sign * Piece(Queen)})
		}

		for _, df := range [2]int{-1, 1} {
			if f+df < 0 || f+df > 7 {
				continue
			}
			to := sq + Square(dir+df)
			if to < 0 || to >= 64 {
				continue
			}
			if target := b.squares[to]; target != NoPiece && target.Side() != b.side {
				if RankOf(to) == promoRank {
					buf = append(buf, Move{From: sq, To: to, Captured: target, Promotion: sign * Piece(Queen)})
				} else {
					buf = append(buf, Move{From: sq, To: to, Captured: target})
				}
			}
			if to == b.epSquare {
				buf = append(buf, Move{From: sq, To: to, Captured: -sign * Piece(Pawn), Flags: FlagEnPassant})
			}
		}
	}
	return buf
}

func (b *Board) genKnightMoves(buf []Move) []Move {
	knight := b.side.Sign() * Piece(Knight)
	for sq := Square(0); sq < 64; sq++ {
		if b.squares[sq] != knight {
			continue
		}
		for _, d := range knightDirs {
			to := sq + Square(d)
			if to < 0 || to >= 64 || abs(FileOf(to)-FileOf(sq)) > 2 {
				continue
			}
			target := b.squares[to]
			if target == NoPiece {
				buf = append(buf, Move{From: sq, To: to})
			} else if target.Side() != b.side {
				buf = append(buf, Move{From: sq, To: to, Captured: target})
			}
		}
	}
	return buf
}

func (b *Board) genKnightCaptures(buf []Move) []Move {
	knight := b.side.Sign() * Piece(Knight)
	for sq := Square(0); sq < 64; sq++ {
		if b.squares[sq] != knight {
			continue
		}
		for _, d := range knightDirs {
			to := sq + Square(d)
			if to < 0 || to >= 64 || abs(FileOf(to)-FileOf(sq)) > 2 {
				continue
			}
			if target := b.squares[to]; target != NoPiece && target.Side() != b.side {
				buf = append(buf, Move{From: sq, To: to, Captured: target})
			}
		}
	}
	return buf
}

// sliderDirs picks the ray set for a slider type; queens use all eight.
func sliderDirs(t PieceType) []int {
	switch t {
	case Bishop:
		return bishopDirs[:]
	case Rook:
		return rookDirs[:]
	default:
		return kingDirs[:]
	}
}

func (b *Board) genSliderMoves(buf []Move, t PieceType) []Move {
	piece := b.side.Sign() * Piece(t)
	dirs := sliderDirs(t)
	for sq := Square(0); sq < 64; sq++ {
		if b.squares[sq] != piece {
			continue
		}
		for _, d := range dirs {
			for to := sq + Square(d); to >= 0 && to < 64; to += Square(d) {
				if abs(FileOf(to)-FileOf(to-Square(d))) > 1 {
					break // wrapped
				}
				target := b.squares[to]
				if target == NoPiece {
					buf = append(buf, Move{From: sq, To: to})
					continue
				}
				if target.Side() != b.side {
					buf = append(buf, Move{From: sq, To: to, Captured: target})
				}
				break
			}
		}
	}
	return buf
}

func (b *Board) genSliderCaptures(buf []Move, t PieceType) []Move {
	piece := b.side.Sign() * Piece(t)
	dirs := sliderDirs(t)
	for sq := Square(0); sq < 64; sq++ {
		if b.squares[sq] != piece {
			continue
		}
		for _, d := range dirs {
			for to := sq + Square(d); to >= 0 && to < 64; to += Square(d) {
				if abs(FileOf(to)-FileOf(to-Square(d))) > 1 {
					break
				}
				target := b.squares[to]
				if target == NoPiece {
					continue
				}
				if target.Side() != b.side {
					buf = append(buf, Move{From: sq, To: to, Captured: target})
				}
				break
			}
		}
	}
	return buf
}

func (b *Board) genKingMoves(buf []Move) []Move {
	sq := b.kingSq[b.side]
	if sq == NoSquare {
		return buf
	}

	for _, d := range kingDirs {
		to := sq + Square(d)
		if to < 0 || to >= 64 || abs(FileOf(to)-FileOf(sq)) > 1 {
			continue
		}
		target := b.squares[to]
		if target == NoPiece {
			buf = append(buf, Move{From: sq, To: to})
		} else if target.Side() != b.side {
			buf = append(buf, Move{From: sq, To: to, Captured: target})
		}
	}

	// Castling: never out of check, never through an attacked or occupied
	// square. The rook's own square is not tested for attack.
	if !b.IsAttacked(sq, b.side^1) {
		if b.side == White {
			if b.castling&CastleWhiteK != 0 && b.squares[5] == NoPiece && b.squares[6] == NoPiece &&
				!b.IsAttacked(5, Black) && !b.IsAttacked(6, Black) {
				buf = append(buf, Move{From: 4, To: 6, Flags: FlagCastle})
			}
			if b.castling&CastleWhiteQ != 0 && b.squares[3] == NoPiece && b.squares[2] == NoPiece && b.squares[1] == NoPiece &&
				!b.IsAttacked(3, Black) && !b.IsAttacked(2, Black) {
				buf = append(buf, Move{From: 4, To: 2, Flags: FlagCastle})
			}
		} else {
			if b.castling&CastleBlackK != 0 && b.squares[61] == NoPiece && b.squares[62] == NoPiece &&
				!b.IsAttacked(61, White) && !b.IsAttacked(62, White) {
				buf = append(buf, Move{From: 60, To: 62, Flags: FlagCastle})
			}
			if b.castling&CastleBlackQ != 0 && b.squares[59] == NoPiece && b.squares[58] == NoPiece && b.squares[57] == NoPiece &&
				!b.IsAttacked(59, White) && !b.IsAttacked(58, White) {
				buf = append(buf, Move{From: 60, To: 58, Flags: FlagCastle})
			}
		}
	}
	return buf
}

func (b *Board) genKingCaptures(buf []Move) []Move {
	sq := b.kingSq[b.side]
	if sq == NoSquare {
		return buf
	}
	for _, d := range kingDirs {
		to := sq + Square(d)
		if to < 0 || to >= 64 || abs(FileOf(to)-FileOf(sq)) > 1 {
			continue
		}
		if target := b.squares[to]; target != NoPiece && target.Side() != b.side {
			buf = append(buf, Move{From: sq, To: to, Captured: target})
		}
	}
	return buf
}
