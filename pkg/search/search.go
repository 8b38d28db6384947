package search

import (
	"context"
	"sort"

	"github.com/ochesscore/corechess/pkg/board"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Search is a pure function of (board, nMoves, maxDepth): b is restored to its original state
// before Search returns (every Make negamax or Search itself performs is paired with an
// Unmake). It runs iterative deepening from depth 1 to maxDepth and returns the best nMoves
// root moves, ordered by descending score, from the deepest iteration that completed before
// ctx was cancelled (spec.md §4.8). Search never assumes any particular host for parallelism;
// see pkg/search/parallel for an optional root-split work pool built on top of SearchMoves.
func Search(ctx context.Context, b *board.Board, nMoves, maxDepth int) ([]ScoredMove, uint64) {
	var best []ScoredMove
	var totalNodes uint64

	for depth := 1; depth <= maxDepth; depth++ {
		if contextx.IsCancelled(ctx) {
			break
		}

		scored, nodes := searchRoot(ctx, b, depth)
		totalNodes += nodes
		if contextx.IsCancelled(ctx) {
			break
		}

		best = TopN(scored, nMoves)
	}
	return best, totalNodes
}

func searchRoot(ctx context.Context, b *board.Board, depth int) ([]ScoredMove, uint64) {
	return SearchMoves(ctx, b, board.GenerateLegal(b), depth)
}

// SearchMoves scores exactly the given candidate moves -- which must be legal moves of b's
// current position -- to a fixed depth, without iterative deepening. It is the primitive
// pkg/search/parallel partitions across workers: each worker calls it with a disjoint subset
// of the root's legal moves and its own cloned Board. Every move is searched with the full
// (-Inf, Inf) window, so each returned score is exact rather than a bound.
func SearchMoves(ctx context.Context, b *board.Board, moves []board.Move, depth int) ([]ScoredMove, uint64) {
	ordered := append([]board.Move(nil), moves...)
	orderMoves(b, ordered)

	alpha, beta := -Inf, Inf
	var nodes uint64 = 1
	scored := make([]ScoredMove, 0, len(ordered))

	for _, m := range ordered {
		u := b.Make(m)
		score, n := negamax(ctx, b, depth-1, -beta, -alpha)
		score = -score
		b.Unmake(m, u)
		nodes += n

		scored = append(scored, ScoredMove{Move: m, Score: score})
	}

	sortByScoreDesc(scored)
	return scored, nodes
}

func sortByScoreDesc(scored []ScoredMove) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
}

// TopN returns the n best-scored moves of scored (already sorted descending by SearchMoves),
// or all of them if n is non-positive or scored is shorter than n.
func TopN(scored []ScoredMove, n int) []ScoredMove {
	if n <= 0 || n >= len(scored) {
		return scored
	}
	return scored[:n]
}
