package engine

import (
	"strings"
	"testing"

	mb "heron-engine/mailbox"
)

func TestEvaluateStartposZero(t *testing.T) {
	b := mb.ParseFEN(mb.FENStartPos)
	if got := Evaluate(b); got != 0 {
		t.Errorf("startpos eval: got %d want 0", got)
	}
}

// Lone passed pawn: material 100, PST 25, isolated -15, passed 20+10*4.
func TestEvaluatePassedPawn(t *testing.T) {
	b := mb.ParseFEN("4k3/8/8/4P3/8/8/8/4K3 w - - 0 1")
	if got := Evaluate(b); got != 170 {
		t.Errorf("passed pawn eval: got %d want 170", got)
	}
}

// Lone rook on an open file: material 500, PST 0, open file 20.
func TestEvaluateRookOpenFile(t *testing.T) {
	b := mb.ParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if got := Evaluate(b); got != 520 {
		t.Errorf("rook eval: got %d want 520", got)
	}
}

// Adding a second bishop is worth its material, its PST square and the
// pair bonus: 330 - 10 + 30.
func TestEvaluateBishopPair(t *testing.T) {
	pair := Evaluate(mb.ParseFEN("4k3/8/8/8/8/8/8/1BB1K3 w - - 0 1"))
	single := Evaluate(mb.ParseFEN("4k3/8/8/8/8/8/8/1B2K3 w - - 0 1"))
	if diff := pair - single; diff != 350 {
		t.Errorf("bishop pair delta: got %d want 350", diff)
	}
}

func TestIsEndgame(t *testing.T) {
	cases := []struct {
		fen  string
		want bool
	}{
		{mb.FENStartPos, false},
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		// Two queens but no minors behind them.
		{"3qk3/8/8/8/8/8/8/3QK3 w - - 0 1", true},
		// Two queens with full minor support.
		{"1n1qk1n1/8/8/8/8/8/8/1N1QKBN1 w - - 0 1", false},
	}
	for _, tc := range cases {
		if got := isEndgame(mb.ParseFEN(tc.fen)); got != tc.want {
			t.Errorf("isEndgame(%s): got %v want %v", tc.fen, got, tc.want)
		}
	}
}

// flipColor mirrors a FEN vertically and swaps the colours.
func flipColor(fen string) string {
	fields := strings.Fields(fen)

	swapCase := func(s string) string {
		var sb strings.Builder
		for _, c := range s {
			switch {
			case c >= 'a' && c <= 'z':
				sb.WriteRune(c - 'a' + 'A')
			case c >= 'A' && c <= 'Z':
				sb.WriteRune(c - 'A' + 'a')
			default:
				sb.WriteRune(c)
			}
		}
		return sb.String()
	}

	ranks := strings.Split(fields[0], "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	placement := swapCase(strings.Join(ranks, "/"))

	side := "w"
	if fields[1] == "w" {
		side = "b"
	}

	castle := fields[2]
	if castle != "-" {
		castle = swapCase(castle)
	}

	ep := fields[3]
	if ep != "-" {
		ep = string([]byte{ep[0], '1' + ('8' - ep[1])})
	}

	return strings.Join([]string{placement, side, castle, ep, fields[4], fields[5]}, " ")
}

// The PST mirroring convention makes the evaluator antisymmetric under a
// colour flip. This exercises every term at once, including the shield.
func TestEvaluateColorFlipAntisymmetry(t *testing.T) {
	fens := []string{
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		a := Evaluate(mb.ParseFEN(fen))
		b := Evaluate(mb.ParseFEN(flipColor(fen)))
		if a != -b {
			t.Errorf("antisymmetry broken for %s: %d vs %d", fen, a, b)
		}
	}
}
