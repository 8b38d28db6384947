// Package perft counts leaf positions reachable from a Board at a fixed depth, partitioned by
// the top-level move played, purely to validate pkg/board's move generator and make/unmake
// against published reference node counts (spec.md §4.9, §8). It is never used by search.
package perft

import "github.com/ochesscore/corechess/pkg/board"

// Result is one top-level move's leaf count.
type Result struct {
	Move  board.Move
	Nodes uint64
}

// Perft returns, for every legal move of the side to move, the count of leaf positions
// reachable at exactly depth plies after playing it, plus the grand total across all of
// them. depth <= 0 reports a single leaf: the starting position itself.
func Perft(b *board.Board, depth int) ([]Result, uint64) {
	if depth <= 0 {
		return nil, 1
	}

	moves := board.GenerateLegal(b)
	results := make([]Result, 0, len(moves))
	var total uint64

	for _, m := range moves {
		u := b.Make(m)
		n := countLeaves(b, depth-1)
		b.Unmake(m, u)

		results = append(results, Result{Move: m, Nodes: n})
		total += n
	}
	return results, total
}

func countLeaves(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var total uint64
	for _, m := range board.GenerateLegal(b) {
		u := b.Make(m)
		total += countLeaves(b, depth-1)
		b.Unmake(m, u)
	}
	return total
}
