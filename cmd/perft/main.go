// Command perft counts leaf nodes of the legal-move tree to a fixed depth,
// the standard correctness/performance benchmark for a move generator. It
// accepts one or more FENs and runs them concurrently, one goroutine per
// position, each with its own Board so no state crosses goroutines.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"corvus/board"
	"corvus/movegen"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to initial position)")
	fenFile := flag.String("fenfile", "", "file of FENs, one per line, run concurrently")
	depth := flag.Int("depth", 0, "perft depth (required)")
	divide := flag.Bool("divide", false, "print per-move node counts at root (single-FEN mode only)")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	fens := []string{*fen}
	if *fenFile != "" {
		lines, err := readLines(*fenFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "reading -fenfile: %v\n", err)
			os.Exit(2)
		}
		fens = lines
	}

	if *divide {
		if len(fens) != 1 {
			fmt.Fprintln(os.Stderr, "-divide only supports a single FEN")
			os.Exit(2)
		}
		runDivide(fens[0], *depth)
		return
	}

	runConcurrent(fens, *depth)
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

type result struct {
	fen     string
	nodes   uint64
	elapsed time.Duration
	err     error
}

// runConcurrent runs perft for each FEN in its own goroutine, coordinated
// with errgroup; each goroutine owns an independent Board, so this
// concurrency sits entirely outside any single perft/search call.
func runConcurrent(fens []string, depth int) {
	results := make([]result, len(fens))

	var g errgroup.Group
	for i, fen := range fens {
		i, fen := i, fen
		g.Go(func() error {
			b, err := board.ParseFEN(fen)
			if err != nil {
				results[i] = result{fen: fen, err: err}
				return nil
			}
			start := time.Now()
			nodes := movegen.Perft(b, depth)
			results[i] = result{fen: fen, nodes: nodes, elapsed: time.Since(start)}
			return nil
		})
	}
	_ = g.Wait()

	var total uint64
	for _, r := range results {
		if r.err != nil {
			fmt.Printf("%s\tERROR: %v\n", r.fen, r.err)
			continue
		}
		nps := float64(r.nodes) / r.elapsed.Seconds()
		fmt.Printf("%s\tdepth=%d\tnodes=%d\ttime=%s\tnps=%.0f\n", r.fen, depth, r.nodes, r.elapsed, nps)
		total += r.nodes
	}
	fmt.Printf("total nodes: %d\n", total)
}

func runDivide(fen string, depth int) {
	b, err := board.ParseFEN(fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	type kv struct {
		move  string
		nodes uint64
	}
	var rows []kv
	var sum uint64
	movegen.PerftDivide(b, depth, func(m board.Move, nodes uint64) {
		rows = append(rows, kv{m.String(), nodes})
		sum += nodes
	})

	sort.Slice(rows, func(i, j int) bool { return rows[i].move < rows[j].move })
	for _, r := range rows {
		fmt.Printf("%s: %d\n", r.move, r.nodes)
	}
	fmt.Printf("Total: %d\n", sum)
}
