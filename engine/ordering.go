package engine

import (
	mb "heron-engine/mailbox"
)

// Move ordering scores. The TT move goes first, then captures by MVV-LVA,
// promotions, killers, and finally the history score of the quiet move.
const (
	ttMoveScore   = 10000000
	captureScore  = 5000000
	promoScore    = 4500000
	killer0Score  = 4000000
	killer1Score  = 3900000
	historyCeil   = 1000000
)

// scoreMoves assigns an ordering score to every move in the list.
func (s *Searcher) scoreMoves(b *mb.Board, moves []mb.Move, ply int, ttMove mb.Move, scores []int) {
	for i, m := range moves {
		switch {
		case m.Equals(ttMove):
			scores[i] = ttMoveScore
		case m.Captured != mb.NoPiece:
			victim := pieceVal[m.Captured.Type()]
			attacker := pieceVal[b.PieceAt(m.From).Type()]
			scores[i] = captureScore + victim*10 - attacker
		case m.Promotion != mb.NoPiece:
			scores[i] = promoScore + pieceVal[m.Promotion.Type()]
		case ply < MaxPly && m.Equals(s.killers[ply][0]):
			scores[i] = killer0Score
		case ply < MaxPly && m.Equals(s.killers[ply][1]):
			scores[i] = killer1Score
		default:
			side := b.PieceAt(m.From).Side()
			scores[i] = s.history[side][m.From][m.To]
		}
	}
}

// orderNextMove selection-sorts one element: the best remaining move is
// swapped to position i. Interleaving the sort with the search loop lets a
// beta cutoff skip sorting the tail entirely.
func orderNextMove(i int, moves []mb.Move, scores []int) {
	best := i
	for j := i + 1; j < len(moves); j++ {
		if scores[j] > scores[best] {
			best = j
		}
	}
	if best != i {
		moves[i], moves[best] = moves[best], moves[i]
		scores[i], scores[best] = scores[best], scores[i]
	}
}

// storeKiller shifts a fresh quiet cutoff move into slot 0.
func (s *Searcher) storeKiller(m mb.Move, ply int) {
	if !m.Equals(s.killers[ply][0]) {
		s.killers[ply][1] = s.killers[ply][0]
		s.killers[ply][0] = m
	}
}

// bumpHistory credits a quiet cutoff move with depth squared, ageing the
// whole table by a right shift once any entry grows past the ceiling.
func (s *Searcher) bumpHistory(side mb.Color, m mb.Move, depth int) {
	s.history[side][m.From][m.To] += depth * depth
	if s.history[side][m.From][m.To] > historyCeil {
		for c := 0; c < 2; c++ {
			for from := 0; from < 64; from++ {
				for to := 0; to < 64; to++ {
					s.history[c][from][to] >>= 1
				}
			}
		}
	}
}
