// Command heron-engine answers one search request per input line:
//
//	<FEN> | <max_depth> | <movetime_ms>
//	<FEN> | <movetime_ms>
//
// and responds with a single statistics line:
//
//	bestmove <uci> depth <d> eval <cp> nodes <n> time <ms> tt_hits <h> tt_stores <s>
//
// Special commands: "quit" exits, "ping" answers "pong". Diagnostics go
// to stderr; stdout carries only protocol responses.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

func main() {
	logger := newLogger()
	runLoop(os.Stdin, os.Stdout, logger)
}

// newLogger returns a console-writer zerolog logger on stderr so that the
// protocol channel on stdout stays clean.
func newLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}
