package mailbox_test

import (
	"testing"

	mb "heron-engine/mailbox"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		mb.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 12 40",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1",
	}
	for _, fen := range fens {
		b := mb.ParseFEN(fen)
		if got := b.ToFEN(); got != fen {
			t.Errorf("round trip failed:\n in: %s\nout: %s", fen, got)
		}
	}
}

func TestParseFENStartpos(t *testing.T) {
	b := mb.ParseFEN(mb.FENStartPos)

	if b.SideToMove() != mb.White {
		t.Errorf("side: got %v want White", b.SideToMove())
	}
	if b.Castling() != mb.CastleWhiteK|mb.CastleWhiteQ|mb.CastleBlackK|mb.CastleBlackQ {
		t.Errorf("castling: got %04b", b.Castling())
	}
	if b.EnPassantSquare() != mb.NoSquare {
		t.Errorf("ep: got %d want NoSquare", b.EnPassantSquare())
	}
	if b.PieceAt(4) != mb.WKing || b.KingSquare(mb.White) != 4 {
		t.Errorf("white king: square 4 holds %d, cached %d", b.PieceAt(4), b.KingSquare(mb.White))
	}
	if b.PieceAt(60) != mb.BKing || b.KingSquare(mb.Black) != 60 {
		t.Errorf("black king: square 60 holds %d, cached %d", b.PieceAt(60), b.KingSquare(mb.Black))
	}
	if b.Hash() != b.ComputeHash() {
		t.Error("incremental hash differs from recomputation")
	}
	if b.HistoryLen() != 1 {
		t.Errorf("history: got %d entries want 1", b.HistoryLen())
	}
}

// The parser is lenient by contract: missing fields default, unknown
// placement characters consume a square as empty.
func TestParseFENLenient(t *testing.T) {
	b := mb.ParseFEN("4k3/8/8/8/8/8/8/4K3 w")
	if b.HalfmoveClock() != 0 || b.FullmoveNumber() != 1 {
		t.Errorf("defaults: halfmove %d fullmove %d", b.HalfmoveClock(), b.FullmoveNumber())
	}
	if b.Castling() != 0 {
		t.Errorf("castling should default to none, got %04b", b.Castling())
	}

	b = mb.ParseFEN("4kx2/8/8/8/8/8/8/4K3 w - - 0 1")
	if b.PieceAt(mb.MakeSquare(5, 7)) != mb.NoPiece {
		t.Error("unknown piece char should leave an empty square")
	}
	if b.PieceAt(mb.MakeSquare(4, 7)) != mb.BKing {
		t.Error("valid pieces around the unknown char should still parse")
	}
}

func TestParseFENEnPassantSquare(t *testing.T) {
	b := mb.ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if b.EnPassantSquare() != mb.MakeSquare(3, 5) {
		t.Errorf("ep square: got %d want d6 (%d)", b.EnPassantSquare(), mb.MakeSquare(3, 5))
	}
}
