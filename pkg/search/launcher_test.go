package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterativeDeepeningReachesDepthLimit(t *testing.T) {
	pos := decode(t, fen.Initial)

	l := search.IterativeDeepening{}
	_, out := l.Launch(context.Background(), pos, search.Options{DepthLimit: 3})

	var last search.PV
	for pv := range out {
		assert.Greater(t, pv.Depth, 0)
		last = pv
	}
	assert.Equal(t, 3, last.Depth)
}

func TestIterativeDeepeningHaltStopsEarly(t *testing.T) {
	pos := decode(t, fen.Initial)

	l := search.IterativeDeepening{}
	h, out := l.Launch(context.Background(), pos, search.Options{})

	time.Sleep(10 * time.Millisecond)
	pv := h.Halt()
	require.NotZero(t, pv.Depth)

	// The channel must still close after Halt.
	for range out {
	}
}

func TestIterativeDeepeningNoLegalMovesClosesImmediately(t *testing.T) {
	pos := decode(t, "7k/8/6Q1/8/8/8/8/7K b - - 0 1")

	l := search.IterativeDeepening{}
	_, out := l.Launch(context.Background(), pos, search.Options{DepthLimit: 2})

	_, ok := <-out
	assert.False(t, ok, "stalemate position should yield no PV")
}
