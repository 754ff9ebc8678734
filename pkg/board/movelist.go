package board

import "golang.org/x/exp/slices"

// MovePriority orders moves for search/ordering purposes: higher sorts first.
type MovePriority int32

// PriorityFn assigns an ordering priority to a move.
type PriorityFn func(m Move) MovePriority

// CapturesFirst is a simple PriorityFn that orders captures (and
// capture-promotions) ahead of quiet moves, and promotions ahead of
// non-promoting quiet moves; a cheap, allocation-free default ordering.
func CapturesFirst(m Move) MovePriority {
	switch {
	case m.IsCapture() && m.IsPromotion():
		return 3
	case m.IsCapture():
		return 2
	case m.IsPromotion():
		return 1
	default:
		return 0
	}
}

// SortMoves stably sorts moves by descending priority, preserving the
// relative order of moves with equal priority, so deterministic generation
// order remains the tie-break.
func SortMoves(moves []Move, fn PriorityFn) {
	slices.SortStableFunc(moves, func(a, b Move) int {
		return int(fn(b)) - int(fn(a))
	})
}
