package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"coursework/board"
	"coursework/setup"
)

type config struct {
	in        string
	out       string
	fen       string
	workers   int
	bitboards bool
	verbose   bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.in, "in", "input.txt", "Board description to read")
	flag.StringVar(&cfg.out, "out", "output.txt", "File to write move/capture counts to")
	flag.StringVar(&cfg.fen, "fen", "", "Read an 8x8 position from this FEN instead of -in")
	flag.IntVar(&cfg.workers, "workers", 1, "Pieces evaluated concurrently")
	flag.BoolVar(&cfg.bitboards, "bitboards", false, "Use magic bitboards for sliders on 8x8 boards")
	flag.BoolVar(&cfg.verbose, "v", false, "Log progress to stderr")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("counter: ")

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("%v", err)
	}
}

// run writes one "<moves> <captures>" line per piece, in input order. An
// invalid input is not a failure of run: its message becomes the whole
// output. Only I/O on the output file is returned as an error.
func run(ctx context.Context, cfg config) error {
	out, err := os.Create(cfg.out)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	w := bufio.NewWriter(out)

	s, err := load(cfg)
	if err != nil {
		if cfg.verbose {
			log.Printf("rejecting input: %v", err)
		}
		fmt.Fprintln(w, setup.Message(err))
		return closeOutput(w, out)
	}
	s.Board.UseBitboards = cfg.bitboards
	if cfg.verbose {
		log.Printf("%dx%d board, %d pieces, %d workers", s.Board.Size(), s.Board.Size(), len(s.Pieces), cfg.workers)
		if fen, err := s.Board.FEN(); err == nil {
			log.Printf("position %s", fen)
		}
	}

	counts, err := board.CountAll(ctx, s.Board, s.Pieces, cfg.workers)
	if err != nil {
		_ = out.Close()
		return err
	}
	if err := writeCounts(w, counts); err != nil {
		_ = out.Close()
		return err
	}
	return closeOutput(w, out)
}

func load(cfg config) (*setup.Setup, error) {
	if cfg.fen != "" {
		b, pieces, err := board.FromFEN(cfg.fen)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", setup.ErrInput, err)
		}
		if white, black := b.Kings(); white != 1 || black != 1 {
			return nil, fmt.Errorf("%w: %d white, %d black", setup.ErrKings, white, black)
		}
		return &setup.Setup{Board: b, Pieces: pieces}, nil
	}
	f, err := os.Open(cfg.in)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", setup.ErrInput, err)
	}
	defer f.Close()
	return setup.Parse(f)
}

func writeCounts(w io.Writer, counts []board.Counts) error {
	for _, c := range counts {
		if _, err := fmt.Fprintf(w, "%d %d\n", c.Moves, c.Captures); err != nil {
			return err
		}
	}
	return nil
}

func closeOutput(w *bufio.Writer, f *os.File) error {
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
