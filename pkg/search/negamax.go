package search

import (
	"context"

	"github.com/ochesscore/corechess/pkg/board"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// ScoredMove pairs a root move with negamax's evaluation of the position after playing it,
// from the perspective of the side that played it.
type ScoredMove struct {
	Move  board.Move
	Score Score
}

// negamax is the canonical alpha-beta negamax search (spec.md §4.8, §9): every call returns a
// value from the side-to-move's perspective, and the caller negates the child's return value.
// Terminal detection -- checkmate returns -MateScore, stalemate returns 0 -- happens inside
// the recursion itself, ahead of the depth-0 check, so a position with no legal replies is
// never handed to the leaf evaluator regardless of remaining depth. The window narrows via
// alpha <- max(alpha, value) and prunes once alpha >= beta.
func negamax(ctx context.Context, b *board.Board, depth int, alpha, beta Score) (Score, uint64) {
	if contextx.IsCancelled(ctx) {
		return 0, 0
	}

	moves := board.GenerateLegal(b)
	if len(moves) == 0 {
		if b.IsInCheck(b.Turn()) {
			return -MateScore, 1
		}
		return 0, 1
	}

	if depth == 0 {
		return evaluateForSideToMove(b), 1
	}

	orderMoves(b, moves)

	var nodes uint64 = 1
	for _, m := range moves {
		u := b.Make(m)
		score, n := negamax(ctx, b, depth-1, -beta, -alpha)
		score = -score
		b.Unmake(m, u)
		nodes += n

		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break // beta cutoff
		}
	}
	return alpha, nodes
}

// orderMoves sorts moves in place, captures first, to tighten the alpha-beta window earlier.
// It is move-ordering only: it never changes which moves are legal, only the order negamax
// tries them in. Built on board.SortByPriority, the teacher's move-ordering primitive, with a
// simple "is this square occupied" priority in place of the teacher's static-exchange-
// evaluation ordering (out of scope here: no quiescence, no SEE).
func orderMoves(b *board.Board, moves []board.Move) {
	board.SortByPriority(moves, func(m board.Move) board.MovePriority {
		if !b.IsEmpty(m.To) {
			return 1
		}
		return 0
	})
}
