package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"heron-engine/engine"
	mb "heron-engine/mailbox"
)

// defaultMovetimeMs caps a request that carries no explicit budget.
const defaultMovetimeMs = 120000

type request struct {
	fen      string
	maxDepth int
	movetime int
}

// parseRequest splits "<FEN> | <max_depth> | <movetime_ms>" (or the
// two-field "<FEN> | <movetime_ms>" form). Lines without a separator are
// rejected; unparseable numbers fall back to the defaults.
func parseRequest(line string) (request, bool) {
	sep := strings.IndexByte(line, '|')
	if sep < 0 {
		return request{}, false
	}

	req := request{
		fen:      strings.TrimSpace(line[:sep]),
		movetime: defaultMovetimeMs,
	}

	rest := line[sep+1:]
	if sep2 := strings.IndexByte(rest, '|'); sep2 >= 0 {
		if v, err := strconv.Atoi(strings.TrimSpace(rest[:sep2])); err == nil {
			req.maxDepth = v
		}
		if v, err := strconv.Atoi(strings.TrimSpace(rest[sep2+1:])); err == nil {
			req.movetime = v
		}
	} else {
		if v, err := strconv.Atoi(strings.TrimSpace(rest)); err == nil {
			req.movetime = v
		}
	}
	return req, true
}

func formatResponse(r engine.SearchResult) string {
	return fmt.Sprintf("bestmove %s depth %d eval %d nodes %d time %d tt_hits %d tt_stores %d",
		r.BestMove.UCI(), r.Depth, r.Score, r.Nodes, r.TimeMs, r.TTHits, r.TTStores)
}

// runLoop reads requests line by line until EOF or "quit". The searcher
// (and its transposition table) is shared across requests.
func runLoop(in io.Reader, out io.Writer, logger zerolog.Logger) {
	searcher := engine.NewSearcher(engine.DefaultTTSizeMB)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "quit" {
			return
		}
		if line == "ping" {
			fmt.Fprintln(out, "pong")
			continue
		}

		req, ok := parseRequest(line)
		if !ok {
			logger.Debug().Str("line", line).Msg("skipping malformed request")
			continue
		}

		board := mb.ParseFEN(req.fen)
		result := searcher.Search(board, req.maxDepth, req.movetime)
		fmt.Fprintln(out, formatResponse(result))

		logger.Debug().
			Str("fen", req.fen).
			Str("bestmove", result.BestMove.UCI()).
			Int("depth", result.Depth).
			Int("eval", result.Score).
			Int("nodes", result.Nodes).
			Int("time_ms", result.TimeMs).
			Msg("search done")
	}
}
