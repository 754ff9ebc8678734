// Package movegen enumerates the fully legal moves of a position: pins,
// checks, double checks, en passant (with discovered-check exclusion),
// castling legality and promotions.
//
// Generation is side-symmetric: every rule below is written from White's
// perspective. When it is Black to move, GenerateLegalMoves mirrors the
// position, generates as White, and mirrors the moves back (see
// board.Position.Mirror and board.MirrorSquare). This halves the amount of
// directional code at the cost of one extra copy per call.
package movegen

import "github.com/corvidchess/corvid/pkg/board"

var allDirs = [8]board.Direction{
	board.North, board.South, board.East, board.West,
	board.NorthEast, board.NorthWest, board.SouthEast, board.SouthWest,
}

func isOrthogonal(d board.Direction) bool {
	return d == board.North || d == board.South || d == board.East || d == board.West
}

// analysis holds the five king-centric bitboards of §4.2, all computed from
// White's perspective (the friendly side is always White once the position
// has been mirrored, if needed, by the caller).
type analysis struct {
	attacked  board.Bitboard
	checkRays board.Bitboard
	checkers  board.Bitboard
	pinned    board.Bitboard
	pinRay    [board.NumSquares]board.Bitboard
	epPinned  board.Bitboard

	targetMask     board.Bitboard
	kingTargetMask board.Bitboard
}

func analyze(pos board.Position) analysis {
	var a analysis

	us, opp := board.White, board.Black
	kingSq := pos.KingSquare(us)
	occupied := pos.Occupied()
	occupiedNoKing := occupied &^ board.BitMask(kingSq)

	// Attacked: every square attacked by the opponent, with the friendly king
	// removed from occupancy so sliding attacks extend through the king's own
	// square onto the square behind it (the king must not "hide" there).
	for bb := pos.Piece(opp, board.Knight); bb != 0; {
		var sq board.Square
		sq, bb = bb.PopLSB()
		a.attacked |= board.KnightAttacks[sq]
	}
	for bb := pos.Piece(opp, board.King); bb != 0; {
		var sq board.Square
		sq, bb = bb.PopLSB()
		a.attacked |= board.KingAttacks[sq]
	}
	a.attacked |= board.PawnCaptureboard(opp, pos.Piece(opp, board.Pawn))
	for bb := pos.Piece(opp, board.Bishop) | pos.Piece(opp, board.Queen); bb != 0; {
		var sq board.Square
		sq, bb = bb.PopLSB()
		a.attacked |= board.BishopAttacks(sq, occupiedNoKing)
	}
	for bb := pos.Piece(opp, board.Rook) | pos.Piece(opp, board.Queen); bb != 0; {
		var sq board.Square
		sq, bb = bb.PopLSB()
		a.attacked |= board.RookAttacks(sq, occupiedNoKing)
	}

	// Non-sliding checkers: knight and pawn attacks on the king square.
	a.checkers |= board.KnightAttacks[kingSq] & pos.Piece(opp, board.Knight)
	a.checkers |= board.PawnCaptureboard(us, board.BitMask(kingSq)) & pos.Piece(opp, board.Pawn)

	// Sliding checkers and pins: walk each of the 8 rays out from the king.
	for _, d := range allDirs {
		var sliders board.Bitboard
		if isOrthogonal(d) {
			sliders = pos.Piece(opp, board.Rook) | pos.Piece(opp, board.Queen)
		} else {
			sliders = pos.Piece(opp, board.Bishop) | pos.Piece(opp, board.Queen)
		}
		if sliders == 0 {
			continue
		}

		ray := board.SlidingAttacks(d, kingSq, occupied)
		blockerBB := ray & occupied
		if blockerBB == 0 {
			continue
		}
		blocker := blockerBB.LSB()

		if sliders.IsSet(blocker) {
			a.checkers |= board.BitMask(blocker)
			a.checkRays |= ray
			continue
		}
		if pos.PiecesOf(us)&board.BitMask(blocker) == 0 {
			continue // enemy piece of the wrong kind: blocks the ray, nothing more to find.
		}

		beyond := board.SlidingAttacks(d, kingSq, occupied&^board.BitMask(blocker))
		secondBB := beyond & occupied &^ board.BitMask(blocker)
		if secondBB == 0 {
			continue
		}
		second := secondBB.LSB()
		if sliders.IsSet(second) {
			a.pinned |= board.BitMask(blocker)
			a.pinRay[blocker] = beyond
		}
	}

	switch a.checkers.PopCount() {
	case 0:
		a.targetMask = pos.Empty() | pos.PiecesOf(opp)
	case 1:
		a.targetMask = (pos.Empty() | pos.PiecesOf(opp)) & (a.checkers | a.checkRays)
	default:
		a.targetMask = 0
	}
	a.kingTargetMask = ^pos.PiecesOf(us) & ^a.attacked

	a.epPinned = analyzeEPPins(pos, kingSq, occupied)
	return a
}

// analyzeEPPins computes the set of friendly pawn origin squares for which an
// en passant capture would expose the king: removing both the capturing pawn
// and its victim from occupancy opens a ray from the king to an enemy
// rook/queen/bishop.
func analyzeEPPins(pos board.Position, kingSq board.Square, occupied board.Bitboard) board.Bitboard {
	ep, ok := pos.EnPassant()
	if !ok {
		return 0
	}

	victimRank := ep.Rank() - 1 // White captures en passant; victim sits one rank below the target.
	victimSq := board.NewSquare(ep.File(), victimRank)

	var out board.Bitboard
	for _, df := range [2]int{-1, 1} {
		nf := int(ep.File()) + df
		if nf < 0 || nf > 7 {
			continue
		}
		capturerSq := board.NewSquare(board.File(nf), victimRank)
		if pos.Piece(board.White, board.Pawn)&board.BitMask(capturerSq) == 0 {
			continue
		}

		occ2 := occupied &^ board.BitMask(capturerSq) &^ board.BitMask(victimSq)
		for _, d := range allDirs {
			var sliders board.Bitboard
			if isOrthogonal(d) {
				sliders = pos.Piece(board.Black, board.Rook) | pos.Piece(board.Black, board.Queen)
			} else {
				sliders = pos.Piece(board.Black, board.Bishop) | pos.Piece(board.Black, board.Queen)
			}
			if sliders == 0 {
				continue
			}
			ray := board.SlidingAttacks(d, kingSq, occ2)
			blockerBB := ray & occ2
			if blockerBB == 0 {
				continue
			}
			if sliders.IsSet(blockerBB.LSB()) {
				out |= board.BitMask(capturerSq)
				break
			}
		}
	}
	return out
}

// GenerateLegalMoves returns the complete, deduplicated list of legal moves
// for the side to move. The order is a deterministic function of pos.
func GenerateLegalMoves(pos board.Position) []board.Move {
	if pos.Turn() == board.Black {
		mirrored := generateWhite(pos.Mirror())
		out := make([]board.Move, len(mirrored))
		for i, m := range mirrored {
			out[i] = mirrorMove(m)
		}
		return out
	}
	return generateWhite(pos)
}

// mirrorMove flips a move's origin and destination vertically; the flag
// alphabet itself is side-agnostic and carries over unchanged.
func mirrorMove(m board.Move) board.Move {
	return board.NewMove(board.MirrorSquare(m.From()), board.MirrorSquare(m.To()), m.Flag())
}

func generateWhite(pos board.Position) []board.Move {
	a := analyze(pos)
	us := board.White
	kingSq := pos.KingSquare(us)
	occupied := pos.Occupied()

	var moves []board.Move

	moves = append(moves, genKingMoves(pos, a, kingSq)...)
	moves = append(moves, genCastles(pos, a, kingSq)...)

	for bb := pos.Piece(us, board.Knight); bb != 0; {
		var sq board.Square
		sq, bb = bb.PopLSB()
		if a.pinned.IsSet(sq) {
			continue
		}
		targets := board.KnightAttacks[sq] & a.targetMask
		moves = append(moves, expandTargets(sq, targets, pos, occupied)...)
	}

	for bb := pos.Piece(us, board.Bishop); bb != 0; {
		var sq board.Square
		sq, bb = bb.PopLSB()
		moves = append(moves, genSlider(pos, a, sq, board.Bishop, occupied)...)
	}
	for bb := pos.Piece(us, board.Rook); bb != 0; {
		var sq board.Square
		sq, bb = bb.PopLSB()
		moves = append(moves, genSlider(pos, a, sq, board.Rook, occupied)...)
	}
	for bb := pos.Piece(us, board.Queen); bb != 0; {
		var sq board.Square
		sq, bb = bb.PopLSB()
		moves = append(moves, genSlider(pos, a, sq, board.Queen, occupied)...)
	}

	moves = append(moves, genPawnMoves(pos, a)...)

	return moves
}

func pinRestrict(a analysis, sq board.Square, targets board.Bitboard) board.Bitboard {
	if a.pinned.IsSet(sq) {
		return targets & a.pinRay[sq]
	}
	return targets
}

func genSlider(pos board.Position, a analysis, sq board.Square, piece board.Piece, occupied board.Bitboard) []board.Move {
	targets := pinRestrict(a, sq, board.Attackboard(piece, sq, occupied)&a.targetMask)
	return expandTargets(sq, targets, pos, occupied)
}

func expandTargets(from board.Square, targets board.Bitboard, pos board.Position, occupied board.Bitboard) []board.Move {
	var moves []board.Move
	for targets != 0 {
		var to board.Square
		to, targets = targets.PopLSB()
		flag := board.Quiet
		if occupied.IsSet(to) {
			flag = board.Capture
		}
		moves = append(moves, board.NewMove(from, to, flag))
	}
	return moves
}

func genKingMoves(pos board.Position, a analysis, kingSq board.Square) []board.Move {
	targets := board.KingAttacks[kingSq] & a.kingTargetMask
	return expandTargets(kingSq, targets, pos, pos.Occupied())
}

func genCastles(pos board.Position, a analysis, kingSq board.Square) []board.Move {
	var moves []board.Move
	if a.checkers != 0 {
		return moves
	}
	occupied := pos.Occupied()
	us := board.White
	rank := board.Rank1

	if pos.Castling().CanCastleKingSide(us) {
		f, g := board.NewSquare(board.FileF, rank), board.NewSquare(board.FileG, rank)
		if !occupied.IsSet(f) && !occupied.IsSet(g) &&
			!a.attacked.IsSet(kingSq) && !a.attacked.IsSet(f) && !a.attacked.IsSet(g) {
			moves = append(moves, board.NewMove(kingSq, g, board.CastleShort))
		}
	}
	if pos.Castling().CanCastleQueenSide(us) {
		b1, c, d := board.NewSquare(board.FileB, rank), board.NewSquare(board.FileC, rank), board.NewSquare(board.FileD, rank)
		if !occupied.IsSet(b1) && !occupied.IsSet(c) && !occupied.IsSet(d) &&
			!a.attacked.IsSet(kingSq) && !a.attacked.IsSet(d) && !a.attacked.IsSet(c) {
			moves = append(moves, board.NewMove(kingSq, c, board.CastleLong))
		}
	}
	return moves
}

func genPawnMoves(pos board.Position, a analysis) []board.Move {
	var moves []board.Move
	us, opp := board.White, board.Black
	occupied := pos.Occupied()
	promoRank := board.PawnPromotionRank(us)

	for bb := pos.Piece(us, board.Pawn); bb != 0; {
		var sq board.Square
		sq, bb = bb.PopLSB()

		// Single and double push.
		single := board.PawnPushboard(occupied, us, board.BitMask(sq))
		single = pinRestrict(a, sq, single&a.targetMask)
		if single != 0 {
			to := single.LSB()
			moves = append(moves, makePawnMove(sq, to, board.Quiet, false, promoRank)...)
		}
		if sq.Rank() == board.PawnHomeRank(us) {
			step1 := board.PawnPushboard(occupied, us, board.BitMask(sq))
			if step1 != 0 {
				double := board.PawnPushboard(occupied, us, step1)
				double = pinRestrict(a, sq, double&a.targetMask)
				if double != 0 {
					to := double.LSB()
					moves = append(moves, board.NewMove(sq, to, board.DoublePush))
				}
			}
		}

		// Diagonal captures.
		captures := board.PawnCaptureboard(us, board.BitMask(sq)) & pos.PiecesOf(opp)
		captures = pinRestrict(a, sq, captures&a.targetMask)
		for captures != 0 {
			var to board.Square
			to, captures = captures.PopLSB()
			moves = append(moves, makePawnMove(sq, to, board.Capture, true, promoRank)...)
		}

		// En passant: the destination square is empty, so it is never itself
		// "captured"; the piece that resolves a check here is the victim pawn,
		// one square away from both the origin and the destination.
		if ep, ok := pos.EnPassant(); ok && !a.epPinned.IsSet(sq) {
			if board.PawnCaptureboard(us, board.BitMask(sq))&board.BitMask(ep) == 0 {
				continue
			}
			if pinRestrict(a, sq, board.BitMask(ep)) == 0 {
				continue
			}
			victim := board.NewSquare(ep.File(), sq.Rank())
			switch a.checkers.PopCount() {
			case 0:
				moves = append(moves, board.NewMove(sq, ep, board.EnPassantCap))
			case 1:
				if (a.checkers|a.checkRays).IsSet(ep) || a.checkers.IsSet(victim) {
					moves = append(moves, board.NewMove(sq, ep, board.EnPassantCap))
				}
			}
		}
	}
	return moves
}

func makePawnMove(from, to board.Square, flag board.MoveFlag, capture bool, promoRank board.Rank) []board.Move {
	if to.Rank() != promoRank {
		return []board.Move{board.NewMove(from, to, flag)}
	}
	return []board.Move{
		board.NewPromotion(from, to, board.Queen, capture),
		board.NewPromotion(from, to, board.Rook, capture),
		board.NewPromotion(from, to, board.Bishop, capture),
		board.NewPromotion(from, to, board.Knight, capture),
	}
}
