package board

// UndoRecord captures everything Make destructively discards, so that Unmake can restore
// the Board to its exact prior state. An UndoRecord is a plain stack-allocated value: it
// must be consumed by exactly one matching Unmake and must never be retained across, or
// shared across goroutines with, an intervening Make on the same Board.
type UndoRecord struct {
	Captured       Piece    // NoPiece if the move was not a capture.
	EnPassant      Square   // the board's en-passant target before the move (ZeroSquare if unset).
	HadEnPassant   bool
	CastlingRights Castling
	HalfmoveClock  uint8
	FullmoveNumber uint16
}
