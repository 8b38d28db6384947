// perft is a move-generator verification tool. It counts leaf positions at increasing depths
// from a FEN position and prints the totals, for comparison against published reference totals.
// See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/ochesscore/corechess/pkg/board/fen"
	"github.com/ochesscore/corechess/pkg/perft"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

var (
	depth    = flag.Int("depth", 4, "Max search depth")
	position = flag.String("fen", "", "Start position (defaults to the standard initial position)")
	divide   = flag.Bool("divide", false, "Print the per-root-move leaf count at the final depth")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	logw.Debugf(ctx, "perft %v", version)

	if *position == "" {
		*position = fen.Initial
	}

	b, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		results, nodes := perft.Perft(b, i)
		elapsed := time.Since(start)

		fmt.Println(fmt.Sprintf("perft,%v,%v,%v,%v", *position, i, nodes, elapsed.Microseconds()))

		if *divide && i == *depth {
			for _, r := range results {
				fmt.Println(fmt.Sprintf("  %v: %v", r.Move, r.Nodes))
			}
		}
	}
}
