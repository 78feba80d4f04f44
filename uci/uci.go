// Package uci implements a minimal UCI (Universal Chess Interface) driver
// loop: enough of the protocol to play a full game against another engine
// or a GUI. Search itself lives in package search; this package owns the
// protocol parsing, the game-history stack used for draw detection, and
// wiring a tt.Table and timemgr.Handler across successive "go" commands.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"corvus/board"
	"corvus/movegen"
	"corvus/search"
	"corvus/timemgr"
	"corvus/tt"
)

const engineName = "Corvus"
const engineAuthor = "corvus"

// defaultMaxDepth bounds iterative deepening when no "depth" option is
// given and the clock, not a ply limit, is meant to govern the search.
const defaultMaxDepth = 64

// Engine holds the state that persists across UCI commands within one
// process: the current position, its move history (for repetition and
// 50-move draw detection) and the transposition table.
type Engine struct {
	board   *board.Board
	history []uint64
	table   *tt.Table
}

// NewEngine returns an Engine set up at the standard starting position.
func NewEngine() *Engine {
	return &Engine{
		board: board.MustParseFEN(board.StartFEN),
		table: tt.New(),
	}
}

// Run drives the UCI loop, reading commands from r and writing protocol
// responses to w, until "quit" or EOF.
func Run(r io.Reader, w io.Writer) {
	e := NewEngine()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1<<20), 1<<20)

	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "uci":
			fmt.Fprintf(w, "id name %s\n", engineName)
			fmt.Fprintf(w, "id author %s\n", engineAuthor)
			fmt.Fprintln(w, "uciok")
		case "isready":
			fmt.Fprintln(w, "readyok")
		case "ucinewgame":
			e.board = board.MustParseFEN(board.StartFEN)
			e.history = nil
			e.table.Clear()
		case "position":
			e.handlePosition(fields[1:])
		case "go":
			e.handleGo(fields[1:], w)
		case "stop":
			// No background search goroutine to cancel in this driver:
			// go commands run synchronously to completion or deadline.
		case "quit":
			return
		default:
			log.Printf("unknown command %s", fields[0])
		}
	}
}

func (e *Engine) handlePosition(fields []string) {
	if len(fields) == 0 {
		log.Printf("malformed position command")
		return
	}

	i := 0
	switch strings.ToLower(fields[0]) {
	case "startpos":
		e.board = board.MustParseFEN(board.StartFEN)
		i = 1
	case "fen":
		var fenParts []string
		i = 1
		for i < len(fields) && strings.ToLower(fields[i]) != "moves" {
			fenParts = append(fenParts, fields[i])
			i++
		}
		b, err := board.ParseFEN(strings.Join(fenParts, " "))
		if err != nil {
			log.Printf("invalid fen: %v", err)
			return
		}
		e.board = b
	default:
		log.Printf("invalid position subcommand %s", fields[0])
		return
	}

	e.history = []uint64{e.board.Hash()}

	if i < len(fields) && strings.ToLower(fields[i]) == "moves" {
		for _, moveStr := range fields[i+1:] {
			m, ok := findMove(e.board, moveStr)
			if !ok {
				log.Printf("move %s not found", moveStr)
				break
			}
			e.board.Make(m)
			e.history = append(e.history, e.board.Hash())
		}
	}
}

// findMove resolves a UCI coordinate move string (e.g. "e2e4", "e7e8q")
// against b's pseudo-legal, then-filtered-legal moves.
func findMove(b *board.Board, moveStr string) (board.Move, bool) {
	var buf [movegen.MaxMoves]board.Move
	n := movegen.GenerateCaptures(b, buf[:], 0)
	n = movegen.GenerateQuiets(b, buf[:], n)

	for i := 0; i < n; i++ {
		if buf[i].String() == moveStr {
			u := b.Make(buf[i])
			illegal := b.IsIllegal()
			b.Unmake(u)
			if !illegal {
				return buf[i], true
			}
		}
	}
	return board.NoMove, false
}

func (e *Engine) handleGo(fields []string, w io.Writer) {
	var wtime, btime, winc, binc, depth, moveTime int
	infinite := false

	for i := 0; i < len(fields); i++ {
		switch strings.ToLower(fields[i]) {
		case "infinite":
			infinite = true
		case "wtime":
			i++
			if i < len(fields) {
				wtime, _ = strconv.Atoi(fields[i])
			}
		case "btime":
			i++
			if i < len(fields) {
				btime, _ = strconv.Atoi(fields[i])
			}
		case "winc":
			i++
			if i < len(fields) {
				winc, _ = strconv.Atoi(fields[i])
			}
		case "binc":
			i++
			if i < len(fields) {
				binc, _ = strconv.Atoi(fields[i])
			}
		case "depth":
			i++
			if i < len(fields) {
				depth, _ = strconv.Atoi(fields[i])
			}
		case "movetime":
			i++
			if i < len(fields) {
				moveTime, _ = strconv.Atoi(fields[i])
			}
		default:
			log.Printf("unknown go subcommand %s", fields[i])
		}
	}

	if e.isDraw() {
		fmt.Fprintln(w, "bestmove 0000")
		return
	}

	var clock timemgr.Handler
	maxDepth := defaultMaxDepth
	switch {
	case depth > 0:
		clock.StartFixedDepth()
		maxDepth = depth
	case infinite:
		clock.StartFixedDepth()
	case moveTime > 0:
		clock.StartMoveTime(moveTime)
	default:
		remaining, increment := wtime, winc
		if e.board.SideToMove() == board.Black {
			remaining, increment = btime, binc
		}
		if remaining <= 0 {
			remaining = 5000
		}
		clock.Start(e.board, remaining, increment)
	}

	result := search.IterativeDeepening(e.board, e.table, &clock, maxDepth)

	fmt.Fprintf(w, "info depth %d score cp %d nodes %d\n", result.Depth, result.Score, result.Nodes)
	if result.BestMove == board.NoMove {
		fmt.Fprintln(w, "bestmove 0000")
		return
	}
	fmt.Fprintf(w, "bestmove %s\n", result.BestMove.String())
}

// isDraw reports 50-move and threefold-repetition draws at the driver
// layer; the core board/search packages carry no repetition state of
// their own.
func (e *Engine) isDraw() bool {
	if e.board.HalfmoveClock() >= 100 {
		return true
	}
	if len(e.history) == 0 {
		return false
	}
	current := e.history[len(e.history)-1]
	count := 0
	for _, h := range e.history {
		if h == current {
			count++
		}
	}
	return count >= 3
}
