// Package search implements negamax alpha-beta search over pkg/board positions: material-only
// leaf evaluation, terminal (checkmate/stalemate) detection, iterative deepening with top-N
// move retention, and an optional root-split parallel launcher in the parallel subpackage.
package search

import "github.com/ochesscore/corechess/pkg/board"

// Score is a position or move score, in whole pawns, from White's perspective unless a
// function doc says otherwise (negamax internally works in side-to-move perspective).
// Positive favors White.
type Score int32

// MateScore is the magnitude reported for a forced mate. It is kept far below
// math.MaxInt32/2 (as is Inf, twice its value) so that negating it (the canonical negamax shape, -search(..., -beta, -alpha))
// never overflows and never needs a special sentinel case -- the bug spec.md §9 calls out
// in the source this core is derived from.
const MateScore Score = 1 << 20

// Inf is a bound wider than any score Evaluate or a mate can produce, used to seed the
// alpha-beta window at the root of a search.
const Inf Score = MateScore * 2

// pieceWeight is the nominal material value of a piece kind, in pawns (spec.md §4.8: P=1,
// N=B=3, R=5, Q=9). King is never counted -- a position with the side to move's king
// missing cannot occur, and a position with no legal moves is resolved as checkmate/
// stalemate before Evaluate is ever called on it.
func pieceWeight(p board.Piece) Score {
	switch p {
	case board.Pawn:
		return 1
	case board.Knight, board.Bishop:
		return 3
	case board.Rook:
		return 5
	case board.Queen:
		return 9
	default:
		return 0
	}
}

// Evaluate returns the material balance of b: White material minus Black material.
func Evaluate(b *board.Board) Score {
	var score Score
	for _, p := range board.AllPieces {
		w := b.PieceBitboard(board.White, p).PopCount()
		x := b.PieceBitboard(board.Black, p).PopCount()
		score += Score(w-x) * pieceWeight(p)
	}
	return score
}

// evaluateForSideToMove returns Evaluate(b) from the perspective of the side to move: the
// raw White-minus-Black balance for White, negated for Black. This is the sign convention
// negamax requires at every leaf and terminal node.
func evaluateForSideToMove(b *board.Board) Score {
	s := Evaluate(b)
	if b.Turn() == board.Black {
		return -s
	}
	return s
}
