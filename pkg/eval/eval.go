// Package eval contains the static position evaluator used at search leaves.
package eval

import (
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/movegen"
)

// MobilityWeight is the per-move bonus applied to the mobility term of Evaluate.
const MobilityWeight board.Score = 10

// NominalValue is the material value of a piece kind in centipawns. Kings are
// always present on the board and worth nothing materially.
func NominalValue(p board.Piece) board.Score {
	switch p {
	case board.Pawn:
		return 100
	case board.Knight, board.Bishop:
		return 300
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	default:
		return 0
	}
}

// Evaluate returns the static evaluation of pos from the perspective of the
// side to move: (material(turn) - material(opponent)) + MobilityWeight *
// (legal_moves(turn) - legal_moves(opponent)).
func Evaluate(pos board.Position) board.Score {
	turn, opp := pos.Turn(), pos.Turn().Opponent()

	var material board.Score
	for p := board.ZeroPiece; p < board.NumPieces; p++ {
		material += board.Score(pos.Piece(turn, p).PopCount()-pos.Piece(opp, p).PopCount()) * NominalValue(p)
	}

	ourMoves := len(movegen.GenerateLegalMoves(pos))
	theirMoves := len(movegen.GenerateLegalMoves(pos.SwitchTurn()))
	mobility := board.Score(ourMoves-theirMoves) * MobilityWeight

	return material + mobility
}
