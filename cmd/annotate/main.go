// Command annotate replays games from a PGN file and reports the engine
// evaluation of the position before each mainline move; the position
// after the last move is not evaluated.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/freeeve/pgn/v3"
	"github.com/rs/zerolog"

	"heron-engine/engine"
	mb "heron-engine/mailbox"
)

func main() {
	inputPath := flag.String("pgn", "", "PGN file to annotate (required)")
	depth := flag.Int("depth", 5, "Search depth per position")
	maxGames := flag.Int("games", 0, "Stop after N games (0 = all)")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	if *inputPath == "" {
		logger.Fatal().Msg("-pgn is required")
	}

	searcher := engine.NewSearcher(engine.DefaultTTSizeMB)

	parser := pgn.Games(*inputPath)
	games := 0
	for game := range parser.Games {
		games++
		if *maxGames > 0 && games > *maxGames {
			parser.Stop()
			break
		}

		fmt.Printf("game %d: %s - %s (%s)\n",
			games, game.Tags["White"], game.Tags["Black"], game.Tags["Result"])

		pos := pgn.NewStartingPosition()
		for moveNo, mv := range game.Moves {
			board := mb.ParseFEN(pos.ToFEN())
			result := searcher.Search(board, *depth, 0)
			fmt.Printf("  %3d. eval %d bestmove %s\n", moveNo+1, result.Score, result.BestMove.UCI())

			if err := pgn.ApplyMove(pos, mv); err != nil {
				logger.Warn().Err(err).Int("game", games).Int("move", moveNo+1).Msg("replay stopped")
				break
			}
		}
	}

	if err := parser.Err(); err != nil {
		logger.Fatal().Err(err).Msg("pgn parse failed")
	}
	logger.Info().Int("games", games).Msg("annotation complete")
}
