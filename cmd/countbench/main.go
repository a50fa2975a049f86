package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"coursework/board"
)

func main() {
	fen := flag.String("fen", board.FENStartPos, "FEN string (defaults to initial position)")
	divide := flag.Bool("divide", false, "Print per-piece move and capture counts")
	repeat := flag.Int("repeat", 1, "Repeat the count N times and report aggregate (for steadier timings)")
	workers := flag.Int("workers", 1, "Pieces evaluated concurrently")
	bitboards := flag.Bool("bitboards", false, "Use magic bitboards for sliders")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *repeat <= 0 {
		fmt.Fprintln(os.Stderr, "-repeat must be > 0")
		os.Exit(2)
	}

	b, pieces, err := board.FromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FromFEN error: %v\n", err)
		os.Exit(2)
	}
	b.UseBitboards = *bitboards

	if *divide {
		if placement, err := b.FEN(); err == nil {
			fmt.Printf("Position: %s\n", placement)
		}
		var moves, captures int
		for _, p := range pieces {
			c := b.Count(p)
			fmt.Printf("%s: %d %d\n", p, c.Moves, c.Captures)
			moves += c.Moves
			captures += c.Captures
		}
		fmt.Printf("Total: %d %d\n", moves, captures)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var moves, captures int
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		counts, err := board.CountAll(context.Background(), b, pieces, *workers)
		if err != nil {
			fmt.Fprintf(os.Stderr, "count: %v\n", err)
			os.Exit(2)
		}
		for _, c := range counts {
			moves += c.Moves
			captures += c.Captures
		}
	}
	elapsed := time.Since(start)

	// Single line: Pieces Moves Captures Time
	fmt.Printf("%s \t%d \t%d \t%d \t%s\n", *label, len(pieces), moves, captures, elapsed)

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}
