// Command perft counts legal-move-tree leaves for a position, with an
// optional per-root-move breakdown.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	mb "heron-engine/mailbox"
)

func main() {
	fen := flag.String("fen", mb.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board := mb.ParseFEN(*fen)

	if *divide {
		div := mb.PerftDivide(board, *depth)
		type kv struct {
			m mb.Move
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		sort.Slice(arr, func(i, j int) bool { return arr[i].m.UCI() < arr[j].m.UCI() })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.m.UCI(), x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	nodes := mb.Perft(board, *depth)
	elapsed := time.Since(start)
	nps := float64(nodes) / elapsed.Seconds()

	fmt.Printf("%d \t%d \t%s \t%.0f\n", *depth, nodes, elapsed, nps)
}
