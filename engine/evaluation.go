// Package engine holds the static evaluator, transposition table, move
// ordering heuristics and the iterative-deepening alpha-beta search.
package engine

import (
	mb "heron-engine/mailbox"
)

// pieceVal indexes by colourless piece type, in centipawns.
var pieceVal = [7]int{0, 100, 320, 330, 500, 900, 20000}

// =============================================================================
// PIECE-SQUARE TABLES
// Laid out from White's perspective with index 0 at a8: white pieces look
// up mirror(sq), black pieces the raw square.
// =============================================================================

var pstPawn = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var pstKnight = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var pstBishop = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var pstRook = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var pstQueen = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var pstKingMG = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var pstKingEG = [64]int{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

var pstTable = [7]*[64]int{
	nil, &pstPawn, &pstKnight, &pstBishop, &pstRook, &pstQueen, &pstKingMG,
}

// isEndgame: no queens left at all, or little minor-piece material behind
// the queens. Counts are summed over both sides.
func isEndgame(b *mb.Board) bool {
	queens, minors := 0, 0
	for sq := mb.Square(0); sq < 64; sq++ {
		switch b.PieceAt(sq).Type() {
		case mb.Queen:
			queens++
		case mb.Knight, mb.Bishop:
			minors++
		}
	}
	return queens == 0 || (queens <= 2 && minors <= 2)
}

// Evaluate scores the position in centipawns from White's perspective.
// Side-to-move callers negate for Black.
func Evaluate(b *mb.Board) int {
	score := 0
	whiteBishops, blackBishops := 0, 0
	endgame := isEndgame(b)

	var whitePawnFiles, blackPawnFiles [8]int

	for sq := mb.Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		if p == mb.NoPiece {
			continue
		}

		pt := p.Type()
		val := pieceVal[pt]
		pst := pstTable[pt]
		if pt == mb.King && endgame {
			pst = &pstKingEG
		}

		if p > 0 {
			score += val + pst[mb.Mirror(sq)]
			if pt == mb.Pawn {
				whitePawnFiles[mb.FileOf(sq)]++
			}
			if pt == mb.Bishop {
				whiteBishops++
			}
		} else {
			score -= val + pst[sq]
			if pt == mb.Pawn {
				blackPawnFiles[mb.FileOf(sq)]++
			}
			if pt == mb.Bishop {
				blackBishops++
			}
		}
	}

	// Bishop pair.
	if whiteBishops >= 2 {
		score += 30
	}
	if blackBishops >= 2 {
		score -= 30
	}

	// Doubled and isolated pawns.
	for f := 0; f < 8; f++ {
		if whitePawnFiles[f] > 1 {
			score -= 10 * (whitePawnFiles[f] - 1)
		}
		if blackPawnFiles[f] > 1 {
			score += 10 * (blackPawnFiles[f] - 1)
		}

		wAdj := (f > 0 && whitePawnFiles[f-1] > 0) || (f < 7 && whitePawnFiles[f+1] > 0)
		bAdj := (f > 0 && blackPawnFiles[f-1] > 0) || (f < 7 && blackPawnFiles[f+1] > 0)
		if whitePawnFiles[f] > 0 && !wAdj {
			score -= 15
		}
		if blackPawnFiles[f] > 0 && !bAdj {
			score += 15
		}
	}

	// Passed pawns, growing with advancement.
	for sq := mb.Square(0); sq < 64; sq++ {
		switch b.PieceAt(sq) {
		case mb.WPawn:
			f, r := mb.FileOf(sq), mb.RankOf(sq)
			passed := true
		whiteScan:
			for rr := r + 1; rr < 8; rr++ {
				for ff := Max(0, f-1); ff <= Min(7, f+1); ff++ {
					if b.PieceAt(mb.MakeSquare(ff, rr)) == mb.BPawn {
						passed = false
						break whiteScan
					}
				}
			}
			if passed {
				score += 20 + 10*r
			}
		case mb.BPawn:
			f, r := mb.FileOf(sq), mb.RankOf(sq)
			passed := true
		blackScan:
			for rr := r - 1; rr >= 0; rr-- {
				for ff := Max(0, f-1); ff <= Min(7, f+1); ff++ {
					if b.PieceAt(mb.MakeSquare(ff, rr)) == mb.WPawn {
						passed = false
						break blackScan
					}
				}
			}
			if passed {
				score -= 20 + 10*(7-r)
			}
		}
	}

	// Rooks on open and half-open files.
	for sq := mb.Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		if p.Type() != mb.Rook {
			continue
		}
		f := mb.FileOf(sq)
		if p > 0 {
			if whitePawnFiles[f] == 0 && blackPawnFiles[f] == 0 {
				score += 20
			} else if whitePawnFiles[f] == 0 {
				score += 10
			}
		} else {
			if whitePawnFiles[f] == 0 && blackPawnFiles[f] == 0 {
				score -= 20
			} else if blackPawnFiles[f] == 0 {
				score -= 10
			}
		}
	}

	// Pawn shield in front of the king, middlegame only.
	if !endgame {
		for s := mb.White; s <= mb.Black; s++ {
			ksq := b.KingSquare(s)
			if ksq == mb.NoSquare {
				continue
			}
			kf, kr := mb.FileOf(ksq), mb.RankOf(ksq)
			pawn := mb.PieceOf(s, mb.Pawn)
			dir := 1
			if s == mb.Black {
				dir = -1
			}

			shield := 0
			for df := -1; df <= 1; df++ {
				ff := kf + df
				if ff < 0 || ff > 7 {
					continue
				}
				if sr := kr + dir; sr >= 0 && sr < 8 && b.PieceAt(mb.MakeSquare(ff, sr)) == pawn {
					shield++
				}
				if sr := kr + 2*dir; sr >= 0 && sr < 8 && b.PieceAt(mb.MakeSquare(ff, sr)) == pawn {
					shield++
				}
			}
			if s == mb.White {
				score += shield * 10
			} else {
				score -= shield * 10
			}
		}
	}

	return score
}
