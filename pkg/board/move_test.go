package board_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestNewMoveRoundTrip(t *testing.T) {
	m := board.NewMove(board.E2, board.E4, board.DoublePush)

	assert.Equal(t, board.E2, m.From())
	assert.Equal(t, board.E4, m.To())
	assert.Equal(t, board.DoublePush, m.Flag())
	assert.True(t, m.IsDoublePush())
	assert.False(t, m.IsCapture())
}

func TestMoveFlagClassification(t *testing.T) {
	assert.True(t, board.Capture.IsCapture())
	assert.True(t, board.EnPassantCap.IsCapture())
	assert.True(t, board.PromoteQueenCap.IsCapture())
	assert.False(t, board.Quiet.IsCapture())
	assert.False(t, board.CastleShort.IsCapture())

	assert.True(t, board.PromoteKnight.IsPromotion())
	assert.True(t, board.PromoteQueenCap.IsPromotion())
	assert.False(t, board.Quiet.IsPromotion())

	assert.True(t, board.CastleShort.IsCastle())
	assert.True(t, board.CastleLong.IsCastle())
	assert.False(t, board.Capture.IsCastle())
}

func TestNewPromotion(t *testing.T) {
	quiet := board.NewPromotion(board.A7, board.A8, board.Queen, false)
	assert.Equal(t, board.Queen, quiet.Promotion())
	assert.False(t, quiet.IsCapture())

	capture := board.NewPromotion(board.B7, board.A8, board.Knight, true)
	assert.Equal(t, board.Knight, capture.Promotion())
	assert.True(t, capture.IsCapture())
}

func TestMoveEquals(t *testing.T) {
	a := board.NewMove(board.E2, board.E4, board.DoublePush)
	b := board.NewMove(board.E2, board.E4, board.DoublePush)
	c := board.NewMove(board.E2, board.E4, board.Quiet)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestParseMove(t *testing.T) {
	m, err := board.ParseMove("e2e4")
	assert.NoError(t, err)
	assert.Equal(t, board.E2, m.From())
	assert.Equal(t, board.E4, m.To())
	assert.Equal(t, board.NoPiece, m.Promotion())

	m, err = board.ParseMove("a7a8q")
	assert.NoError(t, err)
	assert.Equal(t, board.Queen, m.Promotion())

	_, err = board.ParseMove("a7a8k")
	assert.Error(t, err)

	_, err = board.ParseMove("e2")
	assert.Error(t, err)
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "e2e4", board.NewMove(board.E2, board.E4, board.Quiet).String())
	assert.Equal(t, "a7a8q", board.NewPromotion(board.A7, board.A8, board.Queen, false).String())
}
