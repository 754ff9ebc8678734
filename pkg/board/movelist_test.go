package board_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestCapturesFirstPriority(t *testing.T) {
	quiet := board.NewMove(board.E2, board.E4, board.Quiet)
	capture := board.NewMove(board.E4, board.D5, board.Capture)
	promo := board.NewPromotion(board.A7, board.A8, board.Queen, false)
	capturePromo := board.NewPromotion(board.B7, board.A8, board.Queen, true)

	assert.Greater(t, int(board.CapturesFirst(capturePromo)), int(board.CapturesFirst(capture)))
	assert.Greater(t, int(board.CapturesFirst(capture)), int(board.CapturesFirst(promo)))
	assert.Greater(t, int(board.CapturesFirst(promo)), int(board.CapturesFirst(quiet)))
}

func TestSortMovesIsStableAndDescending(t *testing.T) {
	quiet1 := board.NewMove(board.B1, board.C3, board.Quiet)
	quiet2 := board.NewMove(board.G1, board.F3, board.Quiet)
	capture := board.NewMove(board.E4, board.D5, board.Capture)

	moves := []board.Move{quiet1, quiet2, capture}
	board.SortMoves(moves, board.CapturesFirst)

	assert.Equal(t, capture, moves[0])
	// Equal-priority moves keep their relative (generation) order.
	assert.Equal(t, quiet1, moves[1])
	assert.Equal(t, quiet2, moves[2])
}
