package mailbox_test

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"

	mb "heron-engine/mailbox"
)

// dtPerft walks the same tree with dragontooth's bitboard generator,
// giving an independent oracle for the mailbox generator.
func dtPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dtPerft(b, depth-1)
		unapply()
	}
	return nodes
}

// The two generators disagree on nothing: same leaf counts everywhere.
func TestMovegenMatchesReferenceGenerator(t *testing.T) {
	fens := []string{
		mb.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	}

	maxDepth := 4
	if testing.Short() {
		maxDepth = 3
	}

	for _, fen := range fens {
		ours := mb.ParseFEN(fen)
		ref := dragontoothmg.ParseFen(fen)
		for depth := 1; depth <= maxDepth; depth++ {
			got := mb.Perft(ours, depth)
			want := dtPerft(&ref, depth)
			if got != want {
				t.Errorf("%s depth %d: mailbox %d, reference %d", fen, depth, got, want)
			}
		}
	}
}
