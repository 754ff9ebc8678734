package board

// Apply plays a move and returns the resulting position. The caller
// guarantees the move is legal in p (normally sourced from
// pkg/movegen); applying an illegal move is undefined behavior, per
// spec: MoveGen and Search never validate moves passed to Apply.
//
// This implements the apply_move semantics: remove any captured piece
// (including en passant and the castling-rights fallout of capturing a
// rook in its home corner), relocate the castling rook, clear the en
// passant target and re-set it for double pushes, drop castling rights
// when the king or a home-corner rook moves, place the (possibly
// promoted) piece, and update the turn/move counters.
func (p Position) Apply(m Move) Position {
	next := p

	turn := p.turn
	opp := turn.Opponent()
	from, to, flag := m.From(), m.To(), m.Flag()

	_, movingPiece, _ := p.PieceAt(from)

	captured := false
	switch {
	case flag == EnPassantCap:
		capturedSq := NewSquare(to.File(), from.Rank())
		next.remove(capturedSq, opp, Pawn)
		captured = true

	case flag.IsCapture():
		if _, capturedPiece, ok := p.PieceAt(to); ok {
			next.remove(to, opp, capturedPiece)
			captured = true
			if capturedPiece == Rook {
				next.castling = next.castling.Clear(rookCornerFlag(opp, to))
			}
		}
	}

	next.enpassant = NoSquare
	switch flag {
	case DoublePush:
		next.enpassant = NewSquare(from.File(), Rank((int(from.Rank())+int(to.Rank()))/2))

	case CastleShort:
		rank := homeRank(turn)
		next.remove(NewSquare(FileH, rank), turn, Rook)
		next.put(NewSquare(FileF, rank), turn, Rook)

	case CastleLong:
		rank := homeRank(turn)
		next.remove(NewSquare(FileA, rank), turn, Rook)
		next.put(NewSquare(FileD, rank), turn, Rook)
	}

	landing := movingPiece
	if flag.IsPromotion() {
		landing = flag.PromotionPiece()
	}

	next.remove(from, turn, movingPiece)
	next.put(to, turn, landing)

	if movingPiece == King {
		next.castling = next.castling.Clear(KingHome(turn) | RookAHome(turn) | RookHHome(turn))
	}
	if movingPiece == Rook {
		next.castling = next.castling.Clear(rookCornerFlag(turn, from))
	}

	if turn == Black {
		next.fullmove++
	}
	next.turn = opp

	if captured || movingPiece == Pawn {
		next.halfmove = 0
	} else {
		next.halfmove++
	}

	return next
}

// rookCornerFlag returns the castling flag guarding the rook home corner at
// sq for color c, or 0 if sq is not one of c's rook corners.
func rookCornerFlag(c Color, sq Square) Castling {
	rank := homeRank(c)
	switch {
	case sq == NewSquare(FileA, rank):
		return RookAHome(c)
	case sq == NewSquare(FileH, rank):
		return RookHHome(c)
	default:
		return 0
	}
}
