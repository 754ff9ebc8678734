// Package search implements bounded-depth negamax with alpha-beta pruning
// over a material+mobility evaluation (see pkg/eval).
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
)

// PV represents the principal variation found at some search depth.
type PV struct {
	Depth int
	Moves []board.Move
	Score board.Score
	Nodes uint64
	Time  time.Duration
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v pv=%v", p.Depth, p.Score, p.Nodes, p.Time, p.Moves)
}

// Options hold dynamic search options. The zero value imposes no depth
// limit: the search runs until halted.
type Options struct {
	// DepthLimit, if set (non-zero), limits the search to the given depth.
	DepthLimit int
}

// Launcher is a search generator.
type Launcher interface {
	// Launch starts a new iterative-deepening search from the given position
	// and returns a PV channel that is fed one entry per completed depth, in
	// increasing depth order. The channel is closed when the search is
	// exhausted or halted.
	Launch(ctx context.Context, pos board.Position, opt Options) (Handle, <-chan PV)
}

// Handle lets the caller manage a running search.
type Handle interface {
	// Halt stops the search, if running, and returns the best PV found so
	// far. Idempotent.
	Halt() PV
}
