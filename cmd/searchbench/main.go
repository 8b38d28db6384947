// searchbench runs iterative-deepening alpha-beta search to a fixed depth from a FEN position
// and prints the ordered (move, score) list. It exercises pkg/search the way cmd/perft
// exercises move generation, optionally root-splitting the search across workers via
// pkg/search/parallel.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/ochesscore/corechess/pkg/board/fen"
	"github.com/ochesscore/corechess/pkg/search"
	"github.com/ochesscore/corechess/pkg/search/parallel"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

var (
	position = flag.String("fen", "", "Start position (defaults to the standard initial position)")
	depth    = flag.Int("depth", 6, "Maximum iterative-deepening depth")
	nMoves   = flag.Int("moves", 5, "Number of top moves to report")
	workers  = flag.Int("workers", 1, "Root-split worker count; 1 disables parallel search")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	logw.Debugf(ctx, "searchbench %v", version)

	if *position == "" {
		*position = fen.Initial
	}

	b, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	start := time.Now()

	var scored []search.ScoredMove
	var nodes uint64
	if *workers > 1 {
		scored, nodes, err = parallel.Launch(ctx, b, *workers, *nMoves, *depth)
		if err != nil {
			logw.Exitf(ctx, "Search failed: %v", err)
		}
	} else {
		scored, nodes = search.Search(ctx, b, *nMoves, *depth)
	}

	elapsed := time.Since(start)

	fmt.Println(fmt.Sprintf("searched %v nodes in %v", nodes, elapsed))
	for _, sm := range scored {
		fmt.Println(fmt.Sprintf("%v %v", sm.Move, sm.Score))
	}
}
