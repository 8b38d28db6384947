// Package fen contains utilities for reading and writing positions in FEN notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/ochesscore/corechess/pkg/board"
)

const (
	// Initial is the FEN for the standard starting position.
	Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Decode parses a six-field FEN string into a new Board. Any deviation from the format --
// wrong field count, bad piece letter, bad square count on a rank, bad active color, bad
// castling letters, bad en-passant square, non-numeric clocks -- is a fatal input error
// reported to the caller, not a panic: FEN comes from outside the core (a position file, a
// UCI "position fen ..." command) and is never trusted blindly.
//
// Example:
//
//	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(s string) (*board.Board, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid number of fields in FEN: %q", s)
	}

	b := board.NewBoard()
	b.ClearBoard()

	if err := decodePlacement(b, parts[0]); err != nil {
		return nil, fmt.Errorf("invalid FEN %q: %w", s, err)
	}

	turn, ok := parseColor(parts[1])
	if !ok {
		return nil, fmt.Errorf("invalid active color in FEN: %q", s)
	}

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, fmt.Errorf("invalid castling rights in FEN: %q", s)
	}

	var ep board.Square
	hasEP := false
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en-passant square in FEN: %q: %w", s, err)
		}
		ep = sq
		hasEP = true
	}

	halfmove, err := strconv.Atoi(parts[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("invalid halfmove clock in FEN: %q", s)
	}

	fullmove, err := strconv.Atoi(parts[5])
	if err != nil || fullmove < 0 {
		return nil, fmt.Errorf("invalid fullmove number in FEN: %q", s)
	}

	b.SetMetadata(turn, castling, ep, hasEP, uint8(halfmove), uint16(fullmove))
	return b, nil
}

// decodePlacement applies FEN field 1 (piece placement, rank 8 down to rank 1, file a
// through h within each rank) to an already-cleared Board.
func decodePlacement(b *board.Board, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("piece placement %q must have 8 ranks", field)
	}

	for i, rank := range ranks {
		r := board.Rank8 - board.Rank(i)
		f := board.ZeroFile
		for _, c := range rank {
			switch {
			case unicode.IsDigit(c):
				f += board.File(c - '0')
			case unicode.IsLetter(c):
				if f >= board.NumFiles {
					return fmt.Errorf("rank %q overflows the board", rank)
				}
				color, piece, ok := parsePiece(c)
				if !ok {
					return fmt.Errorf("invalid piece letter %q", c)
				}
				b.Place(board.NewSquare(f, r), color, piece)
				f++
			default:
				return fmt.Errorf("invalid character %q in piece placement", c)
			}
		}
		if f != board.NumFiles {
			return fmt.Errorf("rank %q does not cover all 8 files", rank)
		}
	}
	return nil
}

// Encode renders b as a six-field FEN string.
func Encode(b *board.Board) string {
	var sb strings.Builder
	for r := int(board.Rank8); r >= int(board.Rank1); r-- {
		blanks := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			sq := board.NewSquare(f, board.Rank(r))
			c, ok := b.ColorAt(sq)
			if !ok {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(printPiece(c, b.PieceAt(sq)))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r > int(board.Rank1) {
			sb.WriteRune('/')
		}
	}

	ep := "-"
	if sq, ok := b.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%s %v %v %v %v %v", sb.String(), b.Turn(), b.Castling(), ep, b.HalfmoveClock(), b.FullmoveNumber())
}

func parseColor(s string) (board.Color, bool) {
	switch s {
	case "w", "W":
		return board.White, true
	case "b", "B":
		return board.Black, true
	default:
		return 0, false
	}
}

func parseCastling(s string) (board.Castling, bool) {
	if s == "-" {
		return board.NoCastlingRights, true
	}

	var ret board.Castling
	for _, r := range s {
		switch r {
		case 'K':
			ret |= board.WhiteKingSideCastle
		case 'Q':
			ret |= board.WhiteQueenSideCastle
		case 'k':
			ret |= board.BlackKingSideCastle
		case 'q':
			ret |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return ret, true
}

func parsePiece(r rune) (board.Color, board.Piece, bool) {
	p, ok := board.ParsePiece(r)
	if !ok {
		return 0, 0, false
	}
	if unicode.IsUpper(r) {
		return board.White, p, true
	}
	return board.Black, p, true
}

func printPiece(c board.Color, p board.Piece) rune {
	r := []rune(p.String())[0]
	if c == board.White {
		return unicode.ToUpper(r)
	}
	return r
}
