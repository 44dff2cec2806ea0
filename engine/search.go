package engine

import (
	"time"

	mb "heron-engine/mailbox"
)

// =============================================================================
// SCORE AND DEPTH CONSTANTS
// =============================================================================
const (
	MaxPly   = 128
	MaxDepth = 100

	InfScore  = 100000
	MateScore = 99000
)

// SearchResult is the outcome of one Search call: the best move of the
// deepest completed iteration plus counters for the statistics line.
type SearchResult struct {
	BestMove mb.Move
	Score    int
	Depth    int
	Nodes    int
	TimeMs   int
	TTHits   int
	TTStores int
}

// Searcher owns the transposition table and the per-search heuristic
// state. It is single-threaded; the TT persists across searches, killers
// and history reset on every Search call.
type Searcher struct {
	tt *TransTable

	killers [MaxPly][2]mb.Move
	history [2][64][64]int

	nodes  int
	ttHits int

	startTime time.Time
	maxTime   int
	timeUp    bool
}

// NewSearcher builds a searcher with a transposition table of the given
// megabyte budget.
func NewSearcher(ttSizeMB int) *Searcher {
	return &Searcher{tt: NewTransTable(ttSizeMB)}
}

// checkTime latches timeUp once the wall-clock budget is spent. A budget
// of zero or less means no time limit.
func (s *Searcher) checkTime() {
	if s.maxTime <= 0 {
		return
	}
	if int(time.Since(s.startTime).Milliseconds()) >= s.maxTime {
		s.timeUp = true
	}
}

// Search runs iterative deepening up to maxDepth plies within maxTimeMs
// milliseconds. maxDepth <= 0 means unlimited (the clock decides). With no
// legal moves the result carries the null move and score zero.
func (s *Searcher) Search(b *mb.Board, maxDepth, maxTimeMs int) SearchResult {
	s.startTime = time.Now()
	s.maxTime = maxTimeMs
	s.timeUp = false
	s.nodes = 0
	s.ttHits = 0
	s.tt.ResetStats()
	s.killers = [MaxPly][2]mb.Move{}
	s.history = [2][64][64]int{}

	var result SearchResult

	legal := b.GenerateLegalMoves()
	if len(legal) == 0 {
		return result
	}
	result.BestMove = legal[0]

	if maxDepth <= 0 {
		maxDepth = MaxDepth
	}

	for depth := 1; depth <= maxDepth; depth++ {
		var best mb.Move
		var score int

		// Aspiration window from depth 5: re-search once on failure. The
		// root search always runs the full window internally, so a failure
		// just repeats the same call.
		if depth >= 5 {
			alpha := result.Score - 50
			beta := result.Score + 50

			score = s.rootSearch(b, depth, &best)
			if s.timeUp {
				break
			}
			if score <= alpha || score >= beta {
				score = s.rootSearch(b, depth, &best)
			}
		} else {
			score = s.rootSearch(b, depth, &best)
		}

		if s.timeUp && depth > 1 {
			break // keep the previous iteration's result
		}

		if !best.IsNull() {
			result.BestMove = best
			result.Score = score
			result.Depth = depth
		}

		// A forced mate will not improve with more depth.
		if abs(score) > MateScore-100 {
			break
		}

		// Do not start an iteration unlikely to finish.
		if maxTimeMs > 0 && int(time.Since(s.startTime).Milliseconds()) > maxTimeMs/2 {
			break
		}
	}

	result.TimeMs = int(time.Since(s.startTime).Milliseconds())
	result.Nodes = s.nodes
	result.TTHits = s.ttHits
	result.TTStores = s.tt.Stores()
	return result
}

// rootSearch runs one full-window alpha-beta iteration over the root
// moves. The TT is probed for its best move only; root scores are always
// recomputed so they stay valid under the current game history.
func (s *Searcher) rootSearch(b *mb.Board, depth int, bestMove *mb.Move) int {
	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		*bestMove = mb.Move{}
		if b.InCheck() {
			return -MateScore
		}
		return 0
	}

	scores := make([]int, len(moves))
	_, _, ttBest := s.tt.Probe(b.Hash(), 0, -InfScore, InfScore)
	s.scoreMoves(b, moves, 0, ttBest, scores)

	alpha, beta := -InfScore, InfScore
	bestScore := -InfScore
	*bestMove = moves[0]

	for i := range moves {
		orderNextMove(i, moves, scores)

		u := b.MakeMove(moves[i])
		score := -s.alphabeta(b, depth-1, -beta, -alpha, 1, true)
		b.UnmakeMove(moves[i], u)

		if s.timeUp {
			break
		}

		if score > bestScore {
			bestScore = score
			*bestMove = moves[i]
		}
		if score > alpha {
			alpha = score
		}
	}

	s.tt.Store(b.Hash(), depth, bestScore, ExactFlag, *bestMove)
	return bestScore
}

// =============================================================================
// ALPHA-BETA
// =============================================================================

func (s *Searcher) alphabeta(b *mb.Board, depth, alpha, beta, ply int, nullOk bool) int {
	s.nodes++
	if s.nodes&4095 == 0 {
		s.checkTime()
	}
	if s.timeUp {
		return 0
	}

	if b.IsDraw() {
		return 0
	}

	// TT cutoff. Root (ply 0) never takes a cached score.
	usable, ttScore, ttBest := s.tt.Probe(b.Hash(), depth, alpha, beta)
	if usable && ply > 0 {
		s.ttHits++
		return ttScore
	}

	if depth <= 0 {
		return s.quiescence(b, alpha, beta, ply)
	}

	inCheck := b.InCheck()
	if inCheck {
		depth++ // check extension
	}

	// Null-move pruning: hand the opponent a free move; if the reduced
	// search still beats beta, the real position surely does. Skipped in
	// check and in the endgame (zugzwang).
	if nullOk && !inCheck && depth >= 3 && !isEndgame(b) {
		r := 2
		if depth >= 6 {
			r = 3
		}
		u := b.MakeNull()
		nullScore := -s.alphabeta(b, depth-1-r, -beta, -beta+1, ply+1, false)
		b.UnmakeNull(u)
		if s.timeUp {
			return 0
		}
		if nullScore >= beta {
			return beta
		}
	}

	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		if inCheck {
			return -(MateScore - ply) // checkmate
		}
		return 0 // stalemate
	}

	scores := make([]int, len(moves))
	s.scoreMoves(b, moves, ply, ttBest, scores)

	bestScore := -InfScore
	bestMove := moves[0]
	ttFlag := AlphaFlag

	for i := range moves {
		orderNextMove(i, moves, scores)
		m := moves[i]

		isCapture := m.Captured != mb.NoPiece
		isPromo := m.Promotion != mb.NoPiece

		u := b.MakeMove(m)
		givesCheck := b.InCheck()

		var score int

		// Late move reductions: quiet moves sorted far down the list get a
		// reduced null-window look first, with a full re-search only when
		// they surprise us.
		if i >= 3 && depth >= 3 && !inCheck && !givesCheck && !isCapture && !isPromo {
			r := 1
			if i >= 6 {
				r++
			}
			if depth >= 6 {
				r++
			}
			score = -s.alphabeta(b, depth-1-r, -alpha-1, -alpha, ply+1, true)
			if score > alpha {
				score = -s.alphabeta(b, depth-1, -beta, -alpha, ply+1, true)
			}
		} else {
			score = -s.alphabeta(b, depth-1, -beta, -alpha, ply+1, true)
		}

		b.UnmakeMove(m, u)
		if s.timeUp {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}

		if score > alpha {
			alpha = score
			ttFlag = ExactFlag

			if score >= beta {
				ttFlag = BetaFlag
				// Quiet cutoff moves feed the killer and history tables.
				if !isCapture && !isPromo && ply < MaxPly {
					s.storeKiller(m, ply)
					s.bumpHistory(b.PieceAt(m.From).Side(), m, depth)
				}
				break
			}
		}
	}

	s.tt.Store(b.Hash(), depth, bestScore, ttFlag, bestMove)
	return bestScore
}

// =============================================================================
// QUIESCENCE
// =============================================================================

// quiescence resolves captures (and queen promotions) until the position
// is quiet, using the static eval as the stand-pat floor.
func (s *Searcher) quiescence(b *mb.Board, alpha, beta, ply int) int {
	s.nodes++
	if s.nodes&4095 == 0 {
		s.checkTime()
	}
	if s.timeUp {
		return 0
	}

	standPat := Evaluate(b)
	if b.SideToMove() == mb.Black {
		standPat = -standPat
	}

	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	// Delta pruning: even winning a queen cannot lift us to alpha.
	const bigDelta = 900
	if standPat+bigDelta < alpha {
		return alpha
	}

	moves := b.GenerateCaptures()
	scores := make([]int, len(moves))
	for i, m := range moves {
		victim := pieceVal[m.Captured.Type()]
		attacker := pieceVal[b.PieceAt(m.From).Type()]
		scores[i] = victim*10 - attacker
	}

	inCheck := b.InCheck()

	for i := range moves {
		orderNextMove(i, moves, scores)

		// Skip clearly losing captures unless escaping check.
		if scores[i] < -200 && !inCheck {
			continue
		}

		// Captures come in pseudo-legal; verify the king survives.
		u := b.MakeMove(moves[i])
		if b.IsAttacked(b.KingSquare(b.SideToMove()^1), b.SideToMove()) {
			b.UnmakeMove(moves[i], u)
			continue
		}

		score := -s.quiescence(b, -beta, -alpha, ply+1)
		b.UnmakeMove(moves[i], u)

		if s.timeUp {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
