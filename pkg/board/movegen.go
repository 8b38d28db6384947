package board

// PseudoLegalMoves returns every move for the side to move that obeys piece-movement rules
// and does not land on a friendly-occupied square, without regard to whether it leaves the
// mover's own king in check. GenerateLegal filters this list down to legal moves.
func PseudoLegalMoves(b *Board) []Move {
	var moves []Move
	c := b.turn

	generatePawnMoves(b, c, &moves)
	generateKnightMoves(b, c, &moves)
	generateSlidingMoves(b, c, Bishop, &moves)
	generateSlidingMoves(b, c, Rook, &moves)
	generateSlidingMoves(b, c, Queen, &moves)
	generateKingMoves(b, c, &moves)

	return moves
}

func generatePawnMoves(b *Board, c Color, moves *[]Move) {
	pawns := b.pieces[c][Pawn]
	occ := b.Occupied()
	promoRank := PawnPromotionRank(c)

	for _, from := range pawns.Squares() {
		single := PawnMoveboard(occ, c, BitMask(from))
		for _, to := range single.Squares() {
			addPawnMove(moves, from, to, promoRank)
		}
		if single != 0 && BitRank(homeRank(c)).IsSet(from) {
			jumpTo := single.Squares()[0]
			jumpRank := PawnJumpRank(c)
			double := PawnMoveboard(occ, c, BitMask(jumpTo)) & jumpRank
			for _, to := range double.Squares() {
				*moves = append(*moves, Move{From: from, To: to, Piece: Pawn})
			}
		}

		captures := PawnCaptureboard(c, BitMask(from)) & b.OccupiedBy(c.Opponent())
		for _, to := range captures.Squares() {
			addPawnMove(moves, from, to, promoRank)
		}

		if ep, ok := b.EnPassant(); ok {
			targets := PawnCaptureboard(c, BitMask(from)) & BitMask(ep)
			for _, to := range targets.Squares() {
				*moves = append(*moves, Move{From: from, To: to, Piece: Pawn})
			}
		}
	}
}

func homeRank(c Color) Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

func addPawnMove(moves *[]Move, from, to Square, promoRank Bitboard) {
	if promoRank.IsSet(to) {
		for _, p := range PromotionPieces {
			*moves = append(*moves, Move{From: from, To: to, Piece: Pawn, Promotion: p})
		}
		return
	}
	*moves = append(*moves, Move{From: from, To: to, Piece: Pawn})
}

func generateKnightMoves(b *Board, c Color, moves *[]Move) {
	knights := b.pieces[c][Knight]
	own := b.OccupiedBy(c)
	for _, from := range knights.Squares() {
		targets := KnightAttackboard(from) &^ own
		for _, to := range targets.Squares() {
			*moves = append(*moves, Move{From: from, To: to, Piece: Knight})
		}
	}
}

func generateSlidingMoves(b *Board, c Color, piece Piece, moves *[]Move) {
	occ := b.Occupied()
	own := b.OccupiedBy(c)
	for _, from := range b.pieces[c][piece].Squares() {
		targets := Attackboard(occ, from, piece) &^ own
		for _, to := range targets.Squares() {
			*moves = append(*moves, Move{From: from, To: to, Piece: piece})
		}
	}
}

func generateKingMoves(b *Board, c Color, moves *[]Move) {
	own := b.OccupiedBy(c)
	from := b.KingSquare(c)

	targets := KingAttackboard(from) &^ own
	for _, to := range targets.Squares() {
		*moves = append(*moves, Move{From: from, To: to, Piece: King})
	}

	generateCastlingMoves(b, c, from, moves)
}

type castlingSide struct {
	right      Castling
	kingTo     Square
	mustEmpty  []Square
	mustUnsafe []Square // squares the king passes through or lands on, none may be attacked
}

func castlingSides(c Color) (kingSide, queenSide castlingSide) {
	if c == White {
		return castlingSide{WhiteKingSideCastle, G1, []Square{F1, G1}, []Square{F1, G1}},
			castlingSide{WhiteQueenSideCastle, C1, []Square{D1, C1, B1}, []Square{D1, C1}}
	}
	return castlingSide{BlackKingSideCastle, G8, []Square{F8, G8}, []Square{F8, G8}},
		castlingSide{BlackQueenSideCastle, C8, []Square{D8, C8, B8}, []Square{D8, C8}}
}

func generateCastlingMoves(b *Board, c Color, from Square, moves *[]Move) {
	if b.IsInCheck(c) {
		return
	}

	kingSide, queenSide := castlingSides(c)
	for _, side := range [2]castlingSide{kingSide, queenSide} {
		if !b.castling.IsAllowed(side.right) {
			continue
		}
		if !allEmpty(b, side.mustEmpty) {
			continue
		}
		if anyAttacked(b, side.mustUnsafe, c.Opponent()) {
			continue
		}
		*moves = append(*moves, Move{From: from, To: side.kingTo, Piece: King})
	}
}

func allEmpty(b *Board, squares []Square) bool {
	for _, sq := range squares {
		if !b.IsEmpty(sq) {
			return false
		}
	}
	return true
}

func anyAttacked(b *Board, squares []Square, by Color) bool {
	for _, sq := range squares {
		if b.IsAttacked(sq, by) {
			return true
		}
	}
	return false
}
