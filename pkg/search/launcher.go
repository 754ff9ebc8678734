package search

import (
	"context"
	"sync"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// IterativeDeepening is a Launcher that re-runs BestMove at increasing
// depths, publishing one PV per completed depth, until DepthLimit is
// reached or the search is halted.
type IterativeDeepening struct {
	// Parallel, if true, uses BestMoveParallel instead of BestMove at each depth.
	Parallel bool
}

func (l IterativeDeepening) Launch(ctx context.Context, pos board.Position, opt Options) (Handle, <-chan PV) {
	out := make(chan PV, 1)
	h := &handle{quit: make(chan struct{})}

	go h.run(ctx, l, pos, opt, out)
	return h, out
}

type handle struct {
	quit chan struct{}
	once sync.Once

	mu sync.Mutex
	pv PV
}

func (h *handle) run(ctx context.Context, l IterativeDeepening, pos board.Position, opt Options, out chan PV) {
	defer close(out)

	wctx, cancel := contextx.WithQuitCancel(ctx, h.quit)
	defer cancel()

	for depth := 1; ; depth++ {
		start := time.Now()

		search := BestMove
		if l.Parallel {
			search = BestMoveParallel
		}
		move, score, ok := search(pos, depth)
		if !ok {
			return // checkmate or stalemate at the root.
		}

		pv := PV{Depth: depth, Moves: []board.Move{move}, Score: score, Time: time.Since(start)}
		logw.Debugf(ctx, "searched depth=%v: %v", depth, pv)

		h.mu.Lock()
		h.pv = pv
		h.mu.Unlock()

		select {
		case out <- pv:
		case <-wctx.Done():
			return
		}

		if opt.DepthLimit > 0 && depth >= opt.DepthLimit {
			return
		}
		if contextx.IsCancelled(wctx) {
			return // Halt() (or ctx cancellation) only takes effect between depths.
		}
	}
}

func (h *handle) Halt() PV {
	h.once.Do(func() { close(h.quit) })

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pv
}
