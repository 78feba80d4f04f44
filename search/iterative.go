package search

import (
	"corvus/board"
	"corvus/timemgr"
	"corvus/tt"
)

// Result is what a completed (or time-aborted) iterative deepening run
// reports back to its caller, typically the uci package.
type Result struct {
	BestMove board.Move
	Score    int
	Depth    int
	Nodes    uint64
	PV       []board.Move
}

// IterativeDeepening repeatedly calls Search at increasing depths, feeding
// each iteration's best move back in as the next iteration's TT-sourced
// move hint and stopping either at maxDepth or when clock reports expired
// between iterations. It is the only place a tt.Table is consulted; the
// recursive Search/Quiescence core above never touches one.
func IterativeDeepening(b *board.Board, table *tt.Table, clock *timemgr.Handler, maxDepth int) Result {
	ctx := &Context{}
	var best Result

	for depth := 1; depth <= maxDepth; depth++ {
		hint := board.NoMove
		alpha, beta := -MATE, MATE
		if e, ok := table.Probe(b.Hash(), 0); ok {
			hint = e.Move
			// A prior iteration's entry at least as deep as this one lets us
			// tighten the window instead of searching it blind: an exact
			// score settles this depth outright, an alpha/beta bound
			// narrows the side of the window it proved.
			if int(e.Depth) >= depth {
				switch e.Flag {
				case tt.Exact:
					best = Result{
						Score:    int(e.Score),
						Depth:    depth,
						Nodes:    ctx.Nodes,
						BestMove: hint,
						PV:       []board.Move{hint},
					}
					if clock.Expired() {
						return best
					}
					continue
				case tt.Alpha:
					if int(e.Score) < beta {
						beta = int(e.Score)
					}
				case tt.Beta:
					if int(e.Score) > alpha {
						alpha = int(e.Score)
					}
				}
				if alpha >= beta {
					alpha, beta = -MATE, MATE
				}
			}
		}

		var pv PV
		score := Search(ctx, b, depth, alpha, beta, 0, &pv, hint)
		if score <= alpha || score >= beta {
			// The tightened window failed; re-search with the full window
			// so the reported score and PV are trustworthy.
			pv = PV{}
			score = Search(ctx, b, depth, -MATE, MATE, 0, &pv, hint)
		}

		if depth > 1 && clock.Expired() {
			break
		}

		best = Result{
			Score: score,
			Depth: depth,
			Nodes: ctx.Nodes,
			PV:    append([]board.Move(nil), pv.Moves()...),
		}
		if len(pv.Moves()) > 0 {
			best.BestMove = pv.Moves()[0]
		}

		flag := tt.Exact
		switch {
		case score <= -MATE:
			flag = tt.Alpha
		case score >= MATE:
			flag = tt.Beta
		}
		table.Store(b.Hash(), depth, 0, best.BestMove, score, flag)

		if clock.Expired() {
			break
		}
	}
	return best
}
