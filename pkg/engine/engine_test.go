package engine_test

import (
	"context"
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchMoveRecoversFlags(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	candidate, err := board.ParseMove("e2e4")
	require.NoError(t, err)

	m, ok := engine.MatchMove(pos, candidate)
	require.True(t, ok)
	assert.True(t, m.IsDoublePush())
}

func TestMatchMoveRejectsIllegalMove(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	candidate, err := board.ParseMove("e2e5")
	require.NoError(t, err)

	_, ok := engine.MatchMove(pos, candidate)
	assert.False(t, ok)
}

func TestEngineMoveAndTakeBack(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "corvid", "test")

	require.NoError(t, e.Move(ctx, "e2e4"))
	require.Error(t, e.Move(ctx, "e7e6e5"), "malformed move")

	require.NoError(t, e.TakeBack(ctx))
	assert.Equal(t, fen.Initial, e.Position())

	assert.Error(t, e.TakeBack(ctx), "nothing left to undo")
}

func TestEngineResetRejectsInvalidFEN(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "corvid", "test")

	assert.Error(t, e.Reset(ctx, "not a fen"))
}
