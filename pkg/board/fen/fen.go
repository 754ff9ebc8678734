// Package fen contains utilities for reading and writing chess positions in
// Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/corvidchess/corvid/pkg/board"
)

// Initial is the FEN of the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN record into a Position. Missing trailing fields
// default to "w", "KQkq", "-", "0" and "1" respectively; a missing piece
// placement field is an error.
//
// Example: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(s string) (board.Position, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) == 0 {
		return board.Position{}, fmt.Errorf("empty FEN")
	}

	// Defaults for missing trailing fields.
	for len(parts) < 6 {
		switch len(parts) {
		case 1:
			parts = append(parts, "w")
		case 2:
			parts = append(parts, "KQkq")
		case 3:
			parts = append(parts, "-")
		case 4:
			parts = append(parts, "0")
		case 5:
			parts = append(parts, "1")
		}
	}

	placements, err := decodePlacement(parts[0])
	if err != nil {
		return board.Position{}, fmt.Errorf("invalid piece placement in FEN %q: %w", s, err)
	}

	turn, ok := parseColor(parts[1])
	if !ok {
		return board.Position{}, fmt.Errorf("invalid active color %q in FEN %q", parts[1], s)
	}

	castling, ok := parseCastling(parts[2])
	if !ok {
		return board.Position{}, fmt.Errorf("invalid castling field %q in FEN %q", parts[2], s)
	}

	ep := board.NoSquare
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return board.Position{}, fmt.Errorf("invalid en passant field %q in FEN %q: %w", parts[3], s, err)
		}
		ep = sq
	}

	halfmove, err := strconv.Atoi(parts[4])
	if err != nil || halfmove < 0 {
		return board.Position{}, fmt.Errorf("invalid halfmove clock %q in FEN %q", parts[4], s)
	}

	fullmove, err := strconv.Atoi(parts[5])
	if err != nil || fullmove < 0 {
		return board.Position{}, fmt.Errorf("invalid fullmove number %q in FEN %q", parts[5], s)
	}

	pos, err := board.NewPosition(placements, turn, castling, ep, halfmove, fullmove)
	if err != nil {
		return board.Position{}, fmt.Errorf("invalid position in FEN %q: %w", s, err)
	}
	return pos, nil
}

func decodePlacement(field string) ([]board.Placement, error) {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("expected 8 ranks, got %d", len(ranks))
	}

	var placements []board.Placement
	for i, rankStr := range ranks {
		r := board.Rank(7 - i) // FEN lists rank 8 first.
		f := board.ZeroFile

		for _, r2 := range rankStr {
			switch {
			case unicode.IsDigit(r2):
				n := int(r2 - '0')
				if n < 1 || n > 8 {
					return nil, fmt.Errorf("invalid empty-square count %q", r2)
				}
				f += board.File(n)

			case unicode.IsLetter(r2):
				color, piece, ok := parsePiece(r2)
				if !ok {
					return nil, fmt.Errorf("invalid piece character %q", r2)
				}
				if f >= board.NumFiles {
					return nil, fmt.Errorf("too many squares in rank %q", rankStr)
				}
				placements = append(placements, board.Placement{
					Square: board.NewSquare(f, r),
					Color:  color,
					Piece:  piece,
				})
				f++

			default:
				return nil, fmt.Errorf("invalid character %q in piece placement", r2)
			}
		}
		if f != board.NumFiles {
			return nil, fmt.Errorf("rank %q does not sum to 8 files", rankStr)
		}
	}
	return placements, nil
}

// Encode writes a Position back out in FEN notation.
func Encode(pos board.Position) string {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		r := board.Rank(7 - i)
		blanks := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			color, piece, ok := pos.PieceAt(board.NewSquare(f, r))
			if !ok {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(printPiece(color, piece))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if i < 7 {
			sb.WriteRune('/')
		}
	}

	ep := "-"
	if sq, ok := pos.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), pos.Turn(), pos.Castling(), ep, pos.HalfmoveClock(), pos.FullmoveNumber())
}

func parseCastling(s string) (board.Castling, bool) {
	var ret board.Castling
	if s == "-" {
		return ret, true
	}
	for _, r := range s {
		switch r {
		case 'K':
			ret |= board.WhiteKingHome | board.WhiteRookHHome
		case 'Q':
			ret |= board.WhiteKingHome | board.WhiteRookAHome
		case 'k':
			ret |= board.BlackKingHome | board.BlackRookHHome
		case 'q':
			ret |= board.BlackKingHome | board.BlackRookAHome
		default:
			return 0, false
		}
	}
	return ret, true
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
