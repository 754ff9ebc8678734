package movegen_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/movegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Perft ground truth: these six positions and node counts must match exactly.
var perftCases = []struct {
	name  string
	fen   string
	depth int
	nodes uint64
}{
	{"startpos", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 5, 4865609},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -", 3, 97862},
	{"duplain", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -", 4, 43238},
	{"rook-corner", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 4, 422333},
	{"promo-pins", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 4, 2103487},
	{"steady-state", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 4, 3894594},
}

func TestPerft(t *testing.T) {
	for _, tc := range perftCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if testing.Short() && tc.nodes > 200000 {
				t.Skip("skipping large perft case in short mode")
			}
			pos, err := fen.Decode(tc.fen)
			require.NoError(t, err)
			assert.Equal(t, tc.nodes, movegen.Perft(pos, tc.depth))
		})
	}
}

func TestPerftParallelMatchesSequential(t *testing.T) {
	pos, err := fen.Decode(perftCases[1].fen)
	require.NoError(t, err)
	assert.Equal(t, movegen.Perft(pos, 3), movegen.PerftParallel(pos, 3))
}

// perftPositions is a smaller, cheap-to-walk sample used by the universal
// property tests below; walking every reachable position up to a shallow
// depth exercises far more of the pin/check machinery than the starting
// position alone.
func perftPositions(t *testing.T, start board.Position, depth int) []board.Position {
	t.Helper()
	positions := []board.Position{start}
	if depth == 0 {
		return positions
	}
	for _, m := range movegen.GenerateLegalMoves(start) {
		positions = append(positions, perftPositions(t, start.Apply(m), depth-1)...)
	}
	return positions
}

func allSamplePositions(t *testing.T) []board.Position {
	t.Helper()
	var out []board.Position
	for _, tc := range perftCases {
		pos, err := fen.Decode(tc.fen)
		require.NoError(t, err)
		out = append(out, perftPositions(t, pos, 2)...)
	}
	return out
}

func TestInvariantPreservation(t *testing.T) {
	for _, pos := range allSamplePositions(t) {
		for _, m := range movegen.GenerateLegalMoves(pos) {
			next := pos.Apply(m)
			_, err := fen.Decode(fen.Encode(next))
			assert.NoError(t, err, "move %v from %v produced an invalid position", m, fen.Encode(pos))
		}
	}
}

func TestRoundTripLongAlgebraic(t *testing.T) {
	for _, pos := range allSamplePositions(t) {
		for _, m := range movegen.GenerateLegalMoves(pos) {
			parsed, err := board.ParseMove(m.String())
			require.NoError(t, err)
			assert.Equal(t, m.From(), parsed.From())
			assert.Equal(t, m.To(), parsed.To())
			assert.Equal(t, m.Promotion(), parsed.Promotion())
		}
	}
}

func TestMirrorSymmetry(t *testing.T) {
	for _, pos := range allSamplePositions(t) {
		got := movegen.GenerateLegalMoves(pos.Mirror())
		want := make(map[board.Move]bool)
		for _, m := range movegen.GenerateLegalMoves(pos) {
			want[mirrorMoveForTest(m)] = true
		}
		assert.Equal(t, len(want), len(got))
		for _, m := range got {
			assert.True(t, want[m], "mirrored move %v not in expected set", m)
		}
	}
}

func mirrorMoveForTest(m board.Move) board.Move {
	return board.NewMove(board.MirrorSquare(m.From()), board.MirrorSquare(m.To()), m.Flag())
}

func TestDoubleCheckImpliesKingOnly(t *testing.T) {
	for _, pos := range allSamplePositions(t) {
		checkers := countCheckers(pos)
		if checkers < 2 {
			continue
		}
		kingSq := pos.KingSquare(pos.Turn())
		for _, m := range movegen.GenerateLegalMoves(pos) {
			assert.Equal(t, kingSq, m.From(), "non-king move generated while in double check")
		}
	}
}

// countCheckers is a brute-force re-derivation of the checking pieces,
// deliberately independent of the generator's own pin/check analysis, used
// only to pick out double-check positions for the test above.
func countCheckers(pos board.Position) int {
	us := pos.Turn()
	kingSq := pos.KingSquare(us)
	opp := us.Opponent()

	count := 0
	for _, p := range [5]board.Piece{board.Knight, board.Bishop, board.Rook, board.Queen, board.King} {
		bb := pos.Piece(opp, p)
		for bb != 0 {
			var sq board.Square
			sq, bb = bb.PopLSB()
			if p != board.King && board.Attackboard(p, sq, pos.Occupied()).IsSet(kingSq) {
				count++
			}
		}
	}
	if board.PawnCaptureboard(us, board.BitMask(kingSq))&pos.Piece(opp, board.Pawn) != 0 {
		count++
	}
	return count
}

func TestNoSelfCheck(t *testing.T) {
	for _, pos := range allSamplePositions(t) {
		mover := pos.Turn()
		for _, m := range movegen.GenerateLegalMoves(pos) {
			next := pos.Apply(m)
			assert.False(t, next.IsChecked(mover), "move %v left %v's own king in check", m, mover)
		}
	}
}

func TestEnPassantRarity(t *testing.T) {
	// The classic rook-on-the-fifth-rank pin: White's d5 pawn may not
	// capture en passant on e6 because doing so exposes the White king to
	// the black rook along rank 5.
	pos, err := fen.Decode("8/8/8/K2Pp2r/8/8/8/7k w - e6 0 1")
	require.NoError(t, err)
	for _, m := range movegen.GenerateLegalMoves(pos) {
		assert.False(t, m.IsEnPassant(), "en passant capture %v should be illegal: exposes king on rank 5", m)
	}
}
