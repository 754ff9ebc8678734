package search

import (
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/movegen"
)

// Mate is the score magnitude assigned to a checkmated position; large
// enough to dominate any material+mobility swing and one below
// board.MaxScore, so it stays inside the initial alpha-beta window.
const Mate board.Score = board.MateScore

// BestMove runs negamax with alpha-beta pruning to the given depth and
// returns the best move for the side to move, its score, and whether a move
// was found at all (false for checkmate or stalemate). There is no
// cancellation at this layer: the caller bounds the work done by choosing
// depth, not by cancelling mid-search (see search.IterativeDeepening for
// the one place a caller can stop early, between completed depths).
// Pseudo-code:
//
//	negamax(node, depth, α, β):
//	    if depth == 0: return evaluate(node)
//	    value := -∞
//	    for each child of node:
//	        value = max(value, -negamax(child, depth-1, -β, -α))
//	        α = max(α, value)
//	        if α >= β: break
//	    return value
func BestMove(pos board.Position, depth int) (board.Move, board.Score, bool) {
	moves := movegen.GenerateLegalMoves(pos)
	if len(moves) == 0 {
		return board.Move(0), mateOrStalemate(pos), false
	}
	board.SortMoves(moves, board.CapturesFirst)

	var best board.Move
	bestScore := board.MinScore
	alpha, beta := board.MinScore, board.MaxScore

	for _, m := range moves {
		score := -negamax(pos.Apply(m), depth-1, beta.Negate(), alpha.Negate())
		if score > bestScore {
			bestScore = score
			best = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}
	return best, bestScore, true
}

func negamax(pos board.Position, depth int, alpha, beta board.Score) board.Score {
	if depth <= 0 {
		return eval.Evaluate(pos)
	}

	moves := movegen.GenerateLegalMoves(pos)
	if len(moves) == 0 {
		return mateOrStalemate(pos)
	}

	value := board.MinScore
	for _, m := range moves {
		score := -negamax(pos.Apply(m), depth-1, beta.Negate(), alpha.Negate())
		if score > value {
			value = score
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			break
		}
	}
	return value
}

// mateOrStalemate returns the leaf value for a position with no legal moves:
// a large negative score if the side to move is in check (mated), else zero.
func mateOrStalemate(pos board.Position) board.Score {
	if pos.IsChecked(pos.Turn()) {
		return -Mate
	}
	return 0
}
