package board

// castlingRookMove returns the rook's origin and destination for a castling king move whose
// destination is kingTo. ok is false if kingTo is not one of the four castling destinations.
func castlingRookMove(kingTo Square) (from, to Square, ok bool) {
	switch kingTo {
	case G1:
		return H1, F1, true
	case C1:
		return A1, D1, true
	case G8:
		return H8, F8, true
	case C8:
		return A8, D8, true
	default:
		return 0, 0, false
	}
}

// cornerSquareRight returns the castling right tied to one of the four rook home squares.
// Moving a piece away from, or capturing a piece on, a corner square permanently clears the
// associated right -- regardless of whether the piece involved is actually a rook, since a
// rook that has left its home square (or been captured there) can never return to it.
func cornerSquareRight(sq Square) (Castling, bool) {
	switch sq {
	case A1:
		return WhiteQueenSideCastle, true
	case H1:
		return WhiteKingSideCastle, true
	case A8:
		return BlackQueenSideCastle, true
	case H8:
		return BlackKingSideCastle, true
	default:
		return 0, false
	}
}

// enPassantCaptureSquare returns the square of the pawn captured en passant by a pawn moving
// from 'from' to the en-passant target 'to': same file as the destination, same rank as the
// origin.
func enPassantCaptureSquare(from, to Square) Square {
	return NewSquare(to.File(), from.Rank())
}

// isEnPassantCapture reports whether m, played against the board's current en-passant
// target, is an en-passant capture: a pawn moving diagonally onto the target square, which
// by definition is empty (the captured pawn sits beside it, not on it).
func (b *Board) isEnPassantCapture(m Move) bool {
	ep, ok := b.EnPassant()
	return ok && m.Piece == Pawn && m.To == ep && fileDistance(m.From, m.To) == 1
}

// Make applies m to the board, mutating it in place, and returns an UndoRecord that Unmake
// can later use to restore the board to its exact prior state. Make does not check legality:
// the caller (GenerateLegal, or a UCI move matched against it) is responsible for only ever
// making pseudo-legal-and-king-safe moves.
func (b *Board) Make(m Move) UndoRecord {
	ep, hasEP := b.EnPassant()
	u := UndoRecord{
		Captured:       NoPiece,
		EnPassant:      ep,
		HadEnPassant:   hasEP,
		CastlingRights: b.castling,
		HalfmoveClock:  b.halfmove,
		FullmoveNumber: b.fullmove,
	}

	mover := b.turn
	enemy := mover.Opponent()

	isCapture := false
	isPawnMove := m.Piece == Pawn

	if b.isEnPassantCapture(m) {
		capSq := enPassantCaptureSquare(m.From, m.To)
		u.Captured = Pawn
		b.xor(capSq, enemy, Pawn)
		isCapture = true
	} else if !b.IsEmpty(m.To) {
		u.Captured = b.PieceAt(m.To)
		b.xor(m.To, enemy, u.Captured)
		isCapture = true
	}

	b.xor(m.From, mover, m.Piece)
	if m.Promotion != NoPiece && !m.Promotion.IsPromotable() {
		panic("board: Make: illegal promotion target " + m.String())
	}
	if m.Promotion.IsPromotable() {
		b.xor(m.To, mover, m.Promotion)
	} else {
		b.xor(m.To, mover, m.Piece)
	}

	if m.IsCastle() {
		rFrom, rTo, ok := castlingRookMove(m.To)
		if !ok {
			panic("board: Make: malformed castling move " + m.String())
		}
		b.xor(rFrom, mover, Rook)
		b.xor(rTo, mover, Rook)
	}

	switch {
	case m.Piece == King:
		b.castling &^= bothRights(mover)
	default:
		if right, ok := cornerSquareRight(m.From); ok {
			b.castling &^= right
		}
	}
	if right, ok := cornerSquareRight(m.To); ok {
		b.castling &^= right
	}

	if isPawnMove && fileDistance(m.From, m.To) == 0 && rankDistance(m.From, m.To) == 2 {
		b.enpassant = NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
		b.hasEP = true
	} else {
		b.enpassant = 0
		b.hasEP = false
	}

	if isPawnMove || isCapture {
		b.halfmove = 0
	} else {
		b.halfmove++
	}

	if mover == Black {
		b.fullmove++
	}

	b.turn = enemy
	return u
}

// Unmake reverses the effect of the most recent Make(m), restoring u's snapshot of the fields
// Make destructively discarded. m and u must be the exact Move/UndoRecord pair returned by
// the matching Make call: Unmake does not independently validate this.
func (b *Board) Unmake(m Move, u UndoRecord) {
	enemy := b.turn
	mover := enemy.Opponent()

	if m.Promotion != NoPiece && !m.Promotion.IsPromotable() {
		panic("board: Unmake: illegal promotion target " + m.String())
	}
	if m.Promotion.IsPromotable() {
		b.xor(m.To, mover, m.Promotion)
	} else {
		b.xor(m.To, mover, m.Piece)
	}
	b.xor(m.From, mover, m.Piece)

	if m.IsCastle() {
		rFrom, rTo, ok := castlingRookMove(m.To)
		if !ok {
			panic("board: Unmake: malformed castling move " + m.String())
		}
		b.xor(rTo, mover, Rook)
		b.xor(rFrom, mover, Rook)
	}

	if u.Captured != NoPiece {
		if m.Piece == Pawn && m.To == u.EnPassant && u.HadEnPassant && fileDistance(m.From, m.To) == 1 {
			capSq := enPassantCaptureSquare(m.From, m.To)
			b.xor(capSq, enemy, u.Captured)
		} else {
			b.xor(m.To, enemy, u.Captured)
		}
	}

	b.castling = u.CastlingRights
	b.enpassant = u.EnPassant
	b.hasEP = u.HadEnPassant
	b.halfmove = u.HalfmoveClock
	b.fullmove = u.FullmoveNumber
	b.turn = mover
}
