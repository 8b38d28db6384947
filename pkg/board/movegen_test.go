package board_test

import (
	"testing"

	"github.com/ochesscore/corechess/pkg/board"
	"github.com/ochesscore/corechess/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, s string) *board.Board {
	t.Helper()
	b, err := fen.Decode(s)
	require.NoError(t, err)
	return b
}

func containsMove(moves []board.Move, from, to board.Square) bool {
	for _, m := range moves {
		if m.From == from && m.To == to {
			return true
		}
	}
	return false
}

// TestMakeUnmakeRoundTrip exercises the §8 round-trip law: Make followed by the matching
// Unmake restores the board bit-for-bit, for every legal move from a handful of positions.
func TestMakeUnmakeRoundTrip(t *testing.T) {
	positions := []string{
		fen.Initial,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"8/P7/8/8/8/8/8/k6K w - - 0 1",
		"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
	}

	for _, p := range positions {
		b := mustDecode(t, p)
		before := *b
		for _, m := range board.GenerateLegal(b) {
			u := b.Make(m)
			b.Unmake(m, u)
			assert.Equal(t, before, *b, "position %q move %v did not round-trip", p, m)
		}
	}
}

// TestGenerateLegalLeavesBoardUnchanged checks the other §8 round-trip law directly.
func TestGenerateLegalLeavesBoardUnchanged(t *testing.T) {
	b := mustDecode(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := *b
	board.GenerateLegal(b)
	assert.Equal(t, before, *b)
}

// TestScenarioEnPassantLifecycle covers spec.md §8 scenario 1.
func TestScenarioEnPassantLifecycle(t *testing.T) {
	b := mustDecode(t, fen.Initial)

	m, ok := board.FindMove(b, board.E2, board.E4, board.NoPiece)
	require.True(t, ok)
	b.Make(m)

	ep, hasEP := b.EnPassant()
	require.True(t, hasEP)
	assert.Equal(t, board.E3, ep)

	m2, ok := board.FindMove(b, board.E7, board.E5, board.NoPiece)
	require.True(t, ok)
	b.Make(m2)

	ep, hasEP = b.EnPassant()
	assert.True(t, hasEP)
	assert.Equal(t, board.E6, ep)
}

// TestScenarioCaptureResetsHalfmoveClock covers spec.md §8 scenario 2.
func TestScenarioCaptureResetsHalfmoveClock(t *testing.T) {
	b := mustDecode(t, "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1")
	b.SetMetadata(b.Turn(), b.Castling(), 0, false, 7, b.FullmoveNumber())

	legal := board.GenerateLegal(b)
	assert.True(t, containsMove(legal, board.E4, board.D5))

	m, ok := board.FindMove(b, board.E4, board.D5, board.NoPiece)
	require.True(t, ok)
	b.Make(m)
	assert.Equal(t, uint8(0), b.HalfmoveClock())
}

// TestScenarioCastlingBlockedByAttackedTransit covers spec.md §8 scenario 3: an empty,
// unchecked castling path is still illegal if the king would cross an attacked square.
func TestScenarioCastlingBlockedByAttackedTransit(t *testing.T) {
	b := mustDecode(t, "4k3/8/8/8/8/7b/8/4K2R w K - 0 1")
	legal := board.GenerateLegal(b)
	assert.False(t, containsMove(legal, board.E1, board.G1), "king-side castle should be pruned: f1 is attacked")
}

// TestScenarioPromotionEnumeration covers spec.md §8 scenario 4.
func TestScenarioPromotionEnumeration(t *testing.T) {
	b := mustDecode(t, "8/P7/8/8/8/8/8/k6K w - - 0 1")
	legal := board.GenerateLegal(b)

	var promos []board.Piece
	for _, m := range legal {
		if m.From == board.A7 {
			require.Equal(t, board.A8, m.To)
			promos = append(promos, m.Promotion)
		}
	}
	assert.ElementsMatch(t, []board.Piece{board.Queen, board.Rook, board.Bishop, board.Knight}, promos)
}

// TestScenarioEnPassantDiscoveredCheck covers spec.md §8 scenario 5: capturing en passant
// would expose the mover's own king along the rank the two pawns vacate, so the capture must
// not appear among the legal moves even though it is otherwise pseudo-legal.
func TestScenarioEnPassantDiscoveredCheck(t *testing.T) {
	b := mustDecode(t, "8/8/8/8/k2pP2R/8/8/4K3 b - e3 0 1")
	legal := board.GenerateLegal(b)
	assert.False(t, containsMove(legal, board.D4, board.E3), "en-passant capture exposes the black king to the rook")
}

// TestScenarioStalemate covers spec.md §8 scenario 6.
func TestScenarioStalemate(t *testing.T) {
	b := mustDecode(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.Empty(t, board.GenerateLegal(b))
	assert.True(t, board.IsStalemate(b))
	assert.False(t, board.IsCheckmate(b))
}

// TestCastlingExecuteAndUnmake checks rook co-movement and its exact reversal.
func TestCastlingExecuteAndUnmake(t *testing.T) {
	b := mustDecode(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	before := *b

	m, ok := board.FindMove(b, board.E1, board.G1, board.NoPiece)
	require.True(t, ok)
	u := b.Make(m)

	assert.Equal(t, board.King, b.PieceAt(board.G1))
	assert.Equal(t, board.Rook, b.PieceAt(board.F1))
	assert.True(t, b.IsEmpty(board.E1))
	assert.True(t, b.IsEmpty(board.H1))
	assert.False(t, b.Castling().IsAllowed(board.WhiteKingSideCastle))
	assert.False(t, b.Castling().IsAllowed(board.WhiteQueenSideCastle))

	b.Unmake(m, u)
	assert.Equal(t, before, *b)
}

// TestPromotionUnmakeRestoresPawn checks that Unmake restores the pawn, not the promoted
// piece, per spec.md §4.3.
func TestPromotionUnmakeRestoresPawn(t *testing.T) {
	b := mustDecode(t, "8/P7/8/8/8/8/8/k6K w - - 0 1")
	before := *b

	m := board.Move{From: board.A7, To: board.A8, Piece: board.Pawn, Promotion: board.Queen}
	u := b.Make(m)
	assert.Equal(t, board.Queen, b.PieceAt(board.A8))

	b.Unmake(m, u)
	assert.Equal(t, before, *b)
	assert.Equal(t, board.Pawn, b.PieceAt(board.A7))
}

func TestUniversalInvariants(t *testing.T) {
	b := mustDecode(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	var seen [64]int
	for c := board.ZeroColor; c < board.NumColors; c++ {
		for _, p := range board.AllPieces {
			for _, sq := range b.PieceBitboard(c, p).Squares() {
				seen[sq]++
			}
		}
	}
	for sq, n := range seen {
		assert.LessOrEqualf(t, n, 1, "square %v set in more than one bitboard", board.Square(sq))
	}

	assert.Equal(t, 1, b.PieceBitboard(board.White, board.King).PopCount())
	assert.Equal(t, 1, b.PieceBitboard(board.Black, board.King).PopCount())
}

func TestPieceAtEmptySquarePanics(t *testing.T) {
	b := board.NewBoard()
	assert.Panics(t, func() { b.PieceAt(board.E4) })
}
