package board

import "fmt"

// Move represents a move: the originating and destination squares, the kind of piece that
// is moving, and -- for a pawn reaching the last rank -- the desired promotion piece kind.
//
// Castling is encoded as a King move with |To-From|=2. An en-passant capture is encoded as
// a Pawn move whose To equals the board's en-passant target at the time the move is made.
// Both encodings avoid a separate move variant, at the cost of Make/Unmake having to
// re-derive the special-case behavior from From/To/Piece alone.
type Move struct {
	From, To  Square
	Piece     Piece
	Promotion Piece // set iff this is a promoting pawn move.
}

// IsCastle reports whether m is a castling king move (king moving two files).
func (m Move) IsCastle() bool {
	return m.Piece == King && fileDistance(m.From, m.To) == 2
}

// Equals compares moves by their externally observable identity: origin, destination and
// promotion choice. Two legal moves from the same position never share all three.
func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

func (m Move) String() string {
	if m.Promotion.IsValid() {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}

// ParseUCIMove parses a move in pure algebraic coordinate notation, e.g. "a2a4" or "a7a8q".
// It returns only the origin, destination and optional promotion: a UCI move string carries
// no piece-kind or capture information, so the result must be matched against a legal move
// list (see FindMove) to recover a fully-populated Move.
func ParseUCIMove(str string) (from, to Square, promotion Piece, err error) {
	runes := []rune(str)
	if len(runes) != 4 && len(runes) != 5 {
		return 0, 0, NoPiece, fmt.Errorf("invalid move %q: must be 4 or 5 characters", str)
	}

	from, err = ParseSquare(runes[0], runes[1])
	if err != nil {
		return 0, 0, NoPiece, fmt.Errorf("invalid move %q: bad origin: %w", str, err)
	}
	to, err = ParseSquare(runes[2], runes[3])
	if err != nil {
		return 0, 0, NoPiece, fmt.Errorf("invalid move %q: bad destination: %w", str, err)
	}

	if len(runes) == 5 {
		p, ok := ParsePiece(runes[4])
		if !ok || !p.IsPromotable() {
			return 0, 0, NoPiece, fmt.Errorf("invalid move %q: bad promotion piece", str)
		}
		promotion = p
	}

	return from, to, promotion, nil
}
