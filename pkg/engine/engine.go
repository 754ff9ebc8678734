// Package engine wires Board, MoveGen and Search together into the
// stateful game-playing object the UCI and console front-ends drive. None
// of this package is part of the core: it is the "thin glue" the core
// relies on but does not own.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/movegen"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Options are engine-wide default search options.
type Options struct {
	// Depth is the default search depth limit. If zero, searches run until halted.
	Depth uint
	// Parallel selects BestMoveParallel's root-move fan-out over the sequential search.
	Parallel bool
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v, parallel=%v}", o.Depth, o.Parallel)
}

// Engine encapsulates game-playing state: the current board and any
// in-flight search.
type Engine struct {
	name, author string
	opts         Options

	b      *board.Board
	active search.Handle
	mu     sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets default runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{name: name, author: author}
	for _, fn := range opts {
		fn(e)
	}
	_ = e.Reset(ctx, fen.Initial)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opts
}

func (e *Engine) SetDepth(depth uint) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opts.Depth = depth
}

// Position returns the current position in FEN format.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fen.Encode(e.b.Position())
}

// Board returns the underlying board, for inspection by UI drivers.
func (e *Engine) Board() *board.Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.b
}

// Reset resets the engine to a new starting position given in FEN format.
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Reset %v, depth=%v", position, e.opts.Depth)

	e.haltSearchIfActive(ctx)

	pos, err := fen.Decode(position)
	if err != nil {
		return err
	}
	e.b = board.NewBoard(pos)

	logw.Infof(ctx, "New board: %v", e.b.Position())
	return nil
}

// Move plays the given move, usually an opponent move supplied in long
// algebraic notation.
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Move %v", move)

	e.haltSearchIfActive(ctx)

	candidate, err := board.ParseMove(move)
	if err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	m, ok := MatchMove(e.b.Position(), candidate)
	if !ok {
		return fmt.Errorf("illegal move: %v", move)
	}
	e.b.PushMove(m)

	logw.Infof(ctx, "Move %v: %v", m, e.b.Position())
	return nil
}

// TakeBack undoes the latest move.
func (e *Engine) TakeBack(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.haltSearchIfActive(ctx)

	if e.b.Ply() == 0 {
		return fmt.Errorf("no move to take back")
	}
	e.b.PopMove()

	logw.Infof(ctx, "Takeback")
	return nil
}

// Analyze starts a search on the current position.
func (e *Engine) Analyze(ctx context.Context, opt search.Options) (<-chan search.PV, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if opt.DepthLimit == 0 {
		opt.DepthLimit = int(e.opts.Depth)
	}

	logw.Infof(ctx, "Analyze %v, opt=%+v", e.b.Position(), opt)

	if e.active != nil {
		return nil, fmt.Errorf("search already active")
	}

	launcher := search.IterativeDeepening{Parallel: e.opts.Parallel}
	handle, out := launcher.Launch(ctx, e.b.Position(), opt)
	e.active = handle
	return out, nil
}

// Halt halts the active search and returns the principal variation, if any.
func (e *Engine) Halt(ctx context.Context) (search.PV, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Halt")

	pv, ok := e.haltSearchIfActive(ctx)
	if !ok {
		return search.PV{}, fmt.Errorf("no active search")
	}
	return pv, nil
}

func (e *Engine) haltSearchIfActive(ctx context.Context) (search.PV, bool) {
	if e.active != nil {
		pv := e.active.Halt()
		logw.Infof(ctx, "Search halted: %v", pv)

		e.active = nil
		return pv, true
	}
	return search.PV{}, false
}

// MatchMove finds the legal move in pos matching candidate's origin,
// destination and promotion kind, recovering the capture/en-passant/castle/
// double-push flag bits that long algebraic notation cannot encode (see
// board.ParseMove).
func MatchMove(pos board.Position, candidate board.Move) (board.Move, bool) {
	for _, m := range movegen.GenerateLegalMoves(pos) {
		if m.From() == candidate.From() && m.To() == candidate.To() && m.Promotion() == candidate.Promotion() {
			return m, true
		}
	}
	return 0, false
}
