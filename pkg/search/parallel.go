package search

import (
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/movegen"
)

type rootResult struct {
	move  board.Move
	score board.Score
}

// BestMoveParallel is equivalent to BestMove but evaluates each root move on
// its own goroutine with its own cloned Position. Ties are still broken by
// generation order, matching the sequential result exactly whenever scores
// are unique. Like BestMove, it has no cancellation of its own: the caller
// bounds work by choosing depth.
func BestMoveParallel(pos board.Position, depth int) (board.Move, board.Score, bool) {
	moves := movegen.GenerateLegalMoves(pos)
	if len(moves) == 0 {
		return board.Move(0), mateOrStalemate(pos), false
	}
	board.SortMoves(moves, board.CapturesFirst)

	alpha, beta := board.MinScore, board.MaxScore
	results := make([]rootResult, len(moves))

	done := make(chan int, len(moves))
	for i, m := range moves {
		i, m := i, m
		next := pos.Apply(m)
		go func() {
			score := negamax(next, depth-1, beta.Negate(), alpha.Negate()).Negate()
			results[i] = rootResult{move: m, score: score}
			done <- i
		}()
	}
	for range moves {
		<-done
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.score > best.score {
			best = r
		}
	}
	return best.move, best.score, true
}
