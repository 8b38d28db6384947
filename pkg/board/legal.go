package board

// GenerateLegal returns every legal move for the side to move: every pseudo-legal move that,
// after being made, does not leave the mover's own king in check. Each candidate is verified
// by actually making it, testing king safety, and unmaking it -- simple and unambiguously
// correct, at the cost of being slower than maintaining pin/check bookkeeping incrementally.
func GenerateLegal(b *Board) []Move {
	snapshot := snapshotBoard(b)

	mover := b.turn
	candidates := PseudoLegalMoves(b)

	legal := make([]Move, 0, len(candidates))
	for _, m := range candidates {
		u := b.Make(m)
		safe := !b.IsInCheck(mover)
		b.Unmake(m, u)
		if safe {
			legal = append(legal, m)
		}
	}

	assertUnchanged(b, snapshot)
	return legal
}

// FindMove looks up the legal move matching from/to/promotion, as parsed from a UCI move
// string by ParseUCIMove. It returns false if no legal move matches: either the move is
// illegal, or from/to/promotion do not identify any move in the current position.
func FindMove(b *Board, from, to Square, promotion Piece) (Move, bool) {
	for _, m := range GenerateLegal(b) {
		if m.From == from && m.To == to && m.Promotion == promotion {
			return m, true
		}
	}
	return Move{}, false
}

// IsCheckmate reports whether the side to move is in check and has no legal move.
func IsCheckmate(b *Board) bool {
	return b.IsInCheck(b.turn) && len(GenerateLegal(b)) == 0
}

// IsStalemate reports whether the side to move is not in check but has no legal move.
func IsStalemate(b *Board) bool {
	return !b.IsInCheck(b.turn) && len(GenerateLegal(b)) == 0
}
