package main

import (
	"bufio"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"heron-engine/engine"
	mb "heron-engine/mailbox"
)

func TestParseRequest(t *testing.T) {
	cases := []struct {
		name string
		line string
		ok   bool
		want request
	}{
		{
			"three fields",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 | 6 | 3000",
			true,
			request{fen: mb.FENStartPos, maxDepth: 6, movetime: 3000},
		},
		{
			"two fields",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 | 3000",
			true,
			request{fen: mb.FENStartPos, maxDepth: 0, movetime: 3000},
		},
		{
			"no separator",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			false,
			request{},
		},
		{
			"garbage numbers fall back to defaults",
			"8/8/8/8/8/8/8/4K2k w - - 0 1 | abc | xyz",
			true,
			request{fen: "8/8/8/8/8/8/8/4K2k w - - 0 1", maxDepth: 0, movetime: defaultMovetimeMs},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parseRequest(tc.line)
			if ok != tc.ok {
				t.Fatalf("ok: got %v want %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestFormatResponse(t *testing.T) {
	r := engine.SearchResult{
		BestMove: mb.Move{From: 0, To: 56},
		Score:    98999,
		Depth:    2,
		Nodes:    1234,
		TimeMs:   17,
		TTHits:   3,
		TTStores: 99,
	}
	want := "bestmove a1a8 depth 2 eval 98999 nodes 1234 time 17 tt_hits 3 tt_stores 99"
	if got := formatResponse(r); got != want {
		t.Fatalf("response line:\ngot  %q\nwant %q", got, want)
	}
}

func runDriver(t *testing.T, input string) []string {
	t.Helper()
	var out strings.Builder
	runLoop(strings.NewReader(input), &out, zerolog.Nop())

	var lines []string
	sc := bufio.NewScanner(strings.NewReader(out.String()))
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines
}

func TestDriverPing(t *testing.T) {
	lines := runDriver(t, "ping\nquit\n")
	if len(lines) != 1 || lines[0] != "pong" {
		t.Fatalf("ping: got %q", lines)
	}
}

func TestDriverMalformedLineSkipped(t *testing.T) {
	lines := runDriver(t, "this line has no separator\nping\nquit\n")
	if len(lines) != 1 || lines[0] != "pong" {
		t.Fatalf("malformed line must produce no output, got %q", lines)
	}
}

func TestDriverSearchResponse(t *testing.T) {
	lines := runDriver(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1 | 2 | 5000\nquit\n")
	if len(lines) != 1 {
		t.Fatalf("expected one response line, got %q", lines)
	}
	if !strings.HasPrefix(lines[0], "bestmove a1a8 depth 2 eval ") {
		t.Fatalf("unexpected response: %q", lines[0])
	}
	for _, field := range []string{" nodes ", " time ", " tt_hits ", " tt_stores "} {
		if !strings.Contains(lines[0], field) {
			t.Errorf("response missing %q: %q", field, lines[0])
		}
	}
}

func TestDriverNoLegalMoves(t *testing.T) {
	lines := runDriver(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1 | 2 | 1000\nquit\n")
	if len(lines) != 1 {
		t.Fatalf("expected one response line, got %q", lines)
	}
	if !strings.HasPrefix(lines[0], "bestmove a1a1 depth 0 eval 0 ") {
		t.Fatalf("stalemate response: %q", lines[0])
	}
}
