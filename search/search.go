// Package search implements fail-hard alpha-beta negamax with quiescence
// over the board/movegen/ordering/eval packages. The recursive core in
// this file takes its transposition-table hint as a plain parameter and
// never touches a tt.Table itself, so it stays testable without a table
// fixture; IterativeDeepening (in iterative.go) layers TT probing and time
// management strictly outside it and copies each iteration's PV into its
// Result.
package search

import (
	"corvus/board"
	"corvus/eval"
	"corvus/ordering"
)

// MATE is a sentinel strictly greater than any evaluation score. A forced
// mate in n plies scores ±(MATE - n), so shorter mates dominate longer
// ones and the sign tells you who is winning.
const MATE = 30000

// MaxPly caps how far from the root Search recurses; it equals PV's
// capacity. A frame reached at MaxPly plies is scored as a draw.
const MaxPly = 64

// PV collects the principal variation found by Search, capped at MaxPly
// moves.
type PV struct {
	moves [64]board.Move
	count int
}

// Moves returns the collected principal variation line.
func (pv *PV) Moves() []board.Move { return pv.moves[:pv.count] }

func (pv *PV) set(m board.Move, child *PV) {
	pv.moves[0] = m
	copy(pv.moves[1:], child.moves[:child.count])
	pv.count = child.count + 1
}

func (pv *PV) clear() { pv.count = 0 }

// Context carries per-search counters by reference through the recursion,
// replacing the teacher's process-wide globals with fields any caller can
// read back after a search. The fields are not synchronised.
type Context struct {
	Nodes uint64
	First uint64
	Cuts  uint64
}

// Search runs fail-hard negamax alpha-beta to depth plies, filling pv with
// the best line found and returning its score from the side-to-move's
// perspective. ttMoveHint, when not board.NoMove, is tried first by the
// move orderer.
func Search(ctx *Context, b *board.Board, depth int, alpha, beta, ply int, pv *PV, ttMoveHint board.Move) int {
	ctx.Nodes++
	if ply >= MaxPly {
		pv.clear()
		switch {
		case alpha > 0:
			return alpha
		case beta < 0:
			return beta
		}
		return 0
	}
	if depth == 0 {
		pv.clear()
		return Quiescence(ctx, b, alpha, beta)
	}

	var s ordering.Sort
	ordering.InitSort(b, &s, ttMoveHint)

	var childPV PV
	moves := 0
	for {
		m, ok := ordering.NextMove(&s)
		if !ok {
			break
		}
		u := b.Make(m)
		if b.IsIllegal() {
			b.Unmake(u)
			continue
		}
		moves++
		v := -Search(ctx, b, depth-1, -beta, -alpha, ply+1, &childPV, board.NoMove)
		b.Unmake(u)

		if v >= beta {
			if moves == 1 {
				ctx.First++
			}
			ctx.Cuts++
			return beta
		}
		if v > alpha {
			alpha = v
			pv.set(m, &childPV)
		}
	}

	if moves == 0 {
		if b.InCheck(b.SideToMove()) {
			return -MATE + ply
		}
		return 0
	}
	return alpha
}

// Quiescence extends the search along captures only, until the position is
// quiet, returning a fail-hard bounded score.
func Quiescence(ctx *Context, b *board.Board, alpha, beta int) int {
	ctx.Nodes++

	standPat := eval.Relative(b)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var s ordering.Sort
	ordering.InitSortQuies(b, &s)

	for {
		m, ok := ordering.NextMove(&s)
		if !ok {
			break
		}
		u := b.Make(m)
		if b.IsIllegal() {
			b.Unmake(u)
			continue
		}
		v := -Quiescence(ctx, b, -beta, -alpha)
		b.Unmake(u)

		if v >= beta {
			return beta
		}
		if v > alpha {
			alpha = v
		}
	}
	return alpha
}
