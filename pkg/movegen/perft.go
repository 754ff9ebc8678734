package movegen

import (
	"fmt"
	"strings"

	"github.com/corvidchess/corvid/pkg/board"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Perft counts the number of leaf positions reachable by playing every
// legal move sequence from pos to the given depth. It is the correctness
// oracle for GenerateLegalMoves: known-good perft counts for a handful of
// positions catch move generator bugs that no amount of unit testing on
// individual rules would.
func Perft(pos board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := GenerateLegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(pos.Apply(m), depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count at depth broken down by the root
// move played, keyed by the move's long algebraic string: each entry is the
// depth-1 count below that move, and the entries sum to Perft(pos, depth).
// Used to find the
// exact root move where a perft mismatch originates.
func PerftDivide(pos board.Position, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth == 0 {
		return out
	}
	for _, m := range GenerateLegalMoves(pos) {
		out[m.String()] = Perft(pos.Apply(m), depth-1)
	}
	return out
}

// FormatDivide renders a PerftDivide result as sorted "move: count" lines
// followed by the total, in the style of common perft CLI tools.
func FormatDivide(divide map[string]uint64) string {
	keys := maps.Keys(divide)
	slices.Sort(keys) // deterministic output regardless of map iteration order.

	var sb strings.Builder
	var total uint64
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s: %d\n", k, divide[k])
		total += divide[k]
	}
	fmt.Fprintf(&sb, "total: %d\n", total)
	return sb.String()
}

// PerftParallel is equivalent to Perft but fans the root moves out across
// goroutines, one per move, reducing by summation.
func PerftParallel(pos board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := GenerateLegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}

	results := make(chan uint64, len(moves))
	for _, m := range moves {
		m := m
		next := pos.Apply(m)
		go func() {
			results <- Perft(next, depth-1)
		}()
	}

	var nodes uint64
	for range moves {
		nodes += <-results
	}
	return nodes
}
