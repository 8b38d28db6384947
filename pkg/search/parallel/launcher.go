// Package parallel provides an opt-in root-split work pool for pkg/search: the legal moves at
// the search root are partitioned across goroutines, each holding its own cloned Board, and
// their per-shard scored lists are merged, re-sorted and cut to the top N. This is the only place in the module
// concurrency crosses a goroutine boundary; pkg/board and pkg/search otherwise are strictly
// single-threaded over one Board (spec.md §5).
package parallel

import (
	"context"
	"sort"

	"github.com/ochesscore/corechess/pkg/board"
	"github.com/ochesscore/corechess/pkg/search"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

// Launch partitions b's legal root moves across workers cloned Boards and runs iterative
// deepening from depth 1 to maxDepth, one synchronized depth at a time: every worker finishes
// its shard at depth d before any worker starts depth d+1, so the merged top-nMoves list
// reported after each depth always reflects a fully-completed iteration. No board, undo
// record, or move list crosses a goroutine boundary -- each worker clones b once up front and
// mutates only its own copy -- so this is race-free by construction, at the cost of no
// transposition sharing between workers (an explicit non-goal; see spec.md §1). Workers do
// not cancel each other; ctx cancellation is the only way to stop early, and the result
// reflects the deepest iteration that completed before that happened.
func Launch(ctx context.Context, b *board.Board, workers, nMoves, maxDepth int) ([]search.ScoredMove, uint64, error) {
	if workers < 1 {
		workers = 1
	}

	shards := partition(board.GenerateLegal(b), workers)
	clones := make([]*board.Board, len(shards))
	for i := range shards {
		clones[i] = b.Clone()
	}

	var best []search.ScoredMove
	var totalNodes atomic.Uint64
	halted := atomic.NewBool(false)

	for depth := 1; depth <= maxDepth && !halted.Load(); depth++ {
		g, gctx := errgroup.WithContext(ctx)
		results := make([][]search.ScoredMove, len(shards))

		for i, shard := range shards {
			i, shard := i, shard
			if len(shard) == 0 {
				continue
			}
			g.Go(func() error {
				scored, nodes := search.SearchMoves(gctx, clones[i], shard, depth)
				totalNodes.Add(nodes)
				results[i] = scored
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return best, totalNodes.Load(), err
		}

		select {
		case <-ctx.Done():
			halted.Store(true)
			continue
		default:
		}

		var merged []search.ScoredMove
		for _, r := range results {
			merged = append(merged, r...)
		}
		sort.SliceStable(merged, func(i, j int) bool { return merged[i].Score > merged[j].Score })
		best = search.TopN(merged, nMoves)
	}
	return best, totalNodes.Load(), nil
}

// partition splits moves into at most n roughly-equal, contiguous shards. Order doesn't
// matter for correctness (every shard is independently re-sorted by score after scoring), so
// a simple round-robin-sized contiguous split is enough.
func partition(moves []board.Move, n int) [][]board.Move {
	if n > len(moves) {
		n = len(moves)
	}
	if n <= 1 {
		if len(moves) == 0 {
			return nil
		}
		return [][]board.Move{moves}
	}

	shards := make([][]board.Move, n)
	size := (len(moves) + n - 1) / n
	for i := 0; i < n; i++ {
		lo := i * size
		if lo >= len(moves) {
			break
		}
		hi := lo + size
		if hi > len(moves) {
			hi = len(moves)
		}
		shards[i] = moves[lo:hi]
	}
	return shards
}
