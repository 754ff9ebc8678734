package board_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestBoardPushPopMove(t *testing.T) {
	b := board.NewBoard(startpos(t))
	before := b.Position()

	b.PushMove(board.NewMove(board.E2, board.E4, board.DoublePush))
	assert.Equal(t, 1, b.Ply())
	assert.Equal(t, board.Black, b.Turn())
	assert.NotEqual(t, before, b.Position())

	b.PopMove()
	assert.Equal(t, 0, b.Ply())
	assert.Equal(t, before, b.Position())
	assert.Equal(t, before.Hash(), b.Hash())
}

func TestBoardHistoryIncludesCurrent(t *testing.T) {
	b := board.NewBoard(startpos(t))
	b.PushMove(board.NewMove(board.E2, board.E4, board.DoublePush))
	b.PushMove(board.NewMove(board.E7, board.E5, board.DoublePush))

	assert.Len(t, b.History(), 3)
}

func TestBoardThreefoldRepetition(t *testing.T) {
	b := board.NewBoard(startpos(t))
	assert.False(t, b.IsThreefoldRepetition())

	knightShuffle := []board.Move{
		board.NewMove(board.G1, board.F3, board.Quiet),
		board.NewMove(board.G8, board.F6, board.Quiet),
		board.NewMove(board.F3, board.G1, board.Quiet),
		board.NewMove(board.F6, board.G8, board.Quiet),
	}
	for i := 0; i < 2; i++ {
		for _, m := range knightShuffle {
			b.PushMove(m)
		}
	}
	assert.True(t, b.IsThreefoldRepetition())
}

func TestBoardFiftyMoveDraw(t *testing.T) {
	b := board.NewBoard(startpos(t))
	assert.False(t, b.IsFiftyMoveDraw())
}
