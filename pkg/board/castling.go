package board

import "strings"

// Castling represents the six independent castling-right flags: for each
// side, whether the king has not yet moved, and whether each rook has not
// yet moved from its home corner. Compound rights (kingside/queenside
// castle still available) are conjunctions of the relevant flags, computed
// by CanCastleKingSide/CanCastleQueenSide. 6 bits.
type Castling uint8

const (
	WhiteKingHome Castling = 1 << iota
	WhiteRookAHome
	WhiteRookHHome
	BlackKingHome
	BlackRookAHome
	BlackRookHHome
)

// FullCastlingRights is the set of flags present at the start of a game.
const FullCastlingRights = WhiteKingHome | WhiteRookAHome | WhiteRookHHome | BlackKingHome | BlackRookAHome | BlackRookHHome

// KingHome returns the "king not yet moved" flag for the given color.
func KingHome(c Color) Castling {
	if c == White {
		return WhiteKingHome
	}
	return BlackKingHome
}

// RookAHome returns the "a-file rook not yet moved" flag for the given color.
func RookAHome(c Color) Castling {
	if c == White {
		return WhiteRookAHome
	}
	return BlackRookAHome
}

// RookHHome returns the "h-file rook not yet moved" flag for the given color.
func RookHHome(c Color) Castling {
	if c == White {
		return WhiteRookHHome
	}
	return BlackRookHHome
}

// Has returns true iff all of the given flags are set.
func (c Castling) Has(flags Castling) bool {
	return c&flags == flags
}

// CanCastleKingSide reports the compound kingside-castle right for the color:
// the king and its h-file rook have not yet moved.
func (c Castling) CanCastleKingSide(side Color) bool {
	return c.Has(KingHome(side) | RookHHome(side))
}

// CanCastleQueenSide reports the compound queenside-castle right for the color:
// the king and its a-file rook have not yet moved.
func (c Castling) CanCastleQueenSide(side Color) bool {
	return c.Has(KingHome(side) | RookAHome(side))
}

// Clear returns the rights with the given flags removed.
func (c Castling) Clear(flags Castling) Castling {
	return c &^ flags
}

func (c Castling) String() string {
	if c == 0 {
		return "-"
	}
	var sb strings.Builder
	if c.CanCastleKingSide(White) {
		sb.WriteString("K")
	}
	if c.CanCastleQueenSide(White) {
		sb.WriteString("Q")
	}
	if c.CanCastleKingSide(Black) {
		sb.WriteString("k")
	}
	if c.CanCastleQueenSide(Black) {
		sb.WriteString("q")
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
