package board

import "fmt"

// MoveFlag is the 4-bit flag alphabet encoding what kind of move is being made.
type MoveFlag uint16

const (
	Quiet            MoveFlag = 0x0
	DoublePush       MoveFlag = 0x1
	CastleShort      MoveFlag = 0x2
	CastleLong       MoveFlag = 0x3
	Capture          MoveFlag = 0x4
	EnPassantCap     MoveFlag = 0x5
	PromoteKnight    MoveFlag = 0x8
	PromoteBishop    MoveFlag = 0x9
	PromoteRook      MoveFlag = 0xA
	PromoteQueen     MoveFlag = 0xB
	PromoteKnightCap MoveFlag = 0xC
	PromoteBishopCap MoveFlag = 0xD
	PromoteRookCap   MoveFlag = 0xE
	PromoteQueenCap  MoveFlag = 0xF
)

// IsCapture reports whether the flag removes an enemy piece, including en
// passant and capture-promotions. Excludes castling (a rook relocation, not
// a capture).
func (f MoveFlag) IsCapture() bool {
	return f == Capture || f == EnPassantCap || (f >= PromoteKnightCap && f <= PromoteQueenCap)
}

// IsPromotion reports whether the flag lands a promoted piece on the destination.
func (f MoveFlag) IsPromotion() bool {
	return f >= PromoteKnight
}

// IsCastle reports whether the flag is one of the two castling moves.
func (f MoveFlag) IsCastle() bool {
	return f == CastleShort || f == CastleLong
}

// PromotionPiece returns the piece kind a promotion flag produces.
func (f MoveFlag) PromotionPiece() Piece {
	switch f {
	case PromoteKnight, PromoteKnightCap:
		return Knight
	case PromoteBishop, PromoteBishopCap:
		return Bishop
	case PromoteRook, PromoteRookCap:
		return Rook
	case PromoteQueen, PromoteQueenCap:
		return Queen
	default:
		return NoPiece
	}
}

func promotionFlag(p Piece, capture bool) MoveFlag {
	var base MoveFlag
	switch p {
	case Knight:
		base = PromoteKnight
	case Bishop:
		base = PromoteBishop
	case Rook:
		base = PromoteRook
	case Queen:
		base = PromoteQueen
	default:
		panic("invalid promotion piece")
	}
	if capture {
		return base | 0x4
	}
	return base
}

// Move is a 16-bit encoded chess move: 6 bits destination, 6 bits origin, 4
// bits flag. Move equality compares all 16 bits, so distinct promotion
// choices for the same origin/destination are distinct moves.
type Move uint16

const toMask, fromShift, fromMask, flagShift = 0x003F, 6, 0x0FC0, 12

// NewMove builds a move from its origin, destination and flag.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(to&toMask) | Move(from)<<fromShift&fromMask | Move(flag)<<flagShift
}

// NewPromotion builds a (possibly capturing) promotion move.
func NewPromotion(from, to Square, promotion Piece, capture bool) Move {
	return NewMove(from, to, promotionFlag(promotion, capture))
}

func (m Move) From() Square {
	return Square(m >> fromShift & toMask)
}

func (m Move) To() Square {
	return Square(m & toMask)
}

func (m Move) Flag() MoveFlag {
	return MoveFlag(m >> flagShift)
}

func (m Move) IsCapture() bool    { return m.Flag().IsCapture() }
func (m Move) IsPromotion() bool  { return m.Flag().IsPromotion() }
func (m Move) IsCastle() bool     { return m.Flag().IsCastle() }
func (m Move) IsDoublePush() bool { return m.Flag() == DoublePush }
func (m Move) IsEnPassant() bool  { return m.Flag() == EnPassantCap }

// Promotion returns the promoted piece kind, or NoPiece if this is not a
// promotion move.
func (m Move) Promotion() Piece {
	return m.Flag().PromotionPiece()
}

// Equals compares the full 16-bit encoding.
func (m Move) Equals(o Move) bool {
	return m == o
}

// ParseMove parses a move in pure algebraic coordinate notation, such as
// "e2e4" or "a7a8q". The parsed move carries only origin, destination and
// promotion; the caller must look up the matching legal move to recover
// capture/en-passant/castle/double-push flags (see engine.MatchMove).
func ParseMove(str string) (Move, error) {
	runes := []rune(str)
	if len(runes) < 4 || len(runes) > 5 {
		return 0, fmt.Errorf("invalid move: %q", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return 0, fmt.Errorf("invalid origin in move %q: %w", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return 0, fmt.Errorf("invalid destination in move %q: %w", str, err)
	}

	if len(runes) == 5 {
		promo, ok := ParsePiece(runes[4])
		if !ok || promo == Pawn || promo == King {
			return 0, fmt.Errorf("invalid promotion in move %q", str)
		}
		return NewPromotion(from, to, promo, false), nil
	}
	return NewMove(from, to, Quiet), nil
}

func (m Move) String() string {
	if p := m.Promotion(); p != NoPiece {
		return fmt.Sprintf("%v%v%v", m.From(), m.To(), p)
	}
	return fmt.Sprintf("%v%v", m.From(), m.To())
}
