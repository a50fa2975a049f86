package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"coursework/board"
	"coursework/setup"
)

func main() {
	fen := flag.String("fen", "", "FEN position to convert")
	output := flag.String("out", "", "Input file to write")

	flag.Parse()

	if *fen == "" || *output == "" {
		fmt.Println("Usage: fen2input -fen <fen> -out <input.txt>")
		fmt.Println("Options:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	b, pieces, err := board.FromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Reading FEN failed: %v\n", err)
		os.Exit(1)
	}

	// Ensure output directory exists
	outDir := filepath.Dir(*output)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating %s: %v\n", *output, err)
		os.Exit(1)
	}
	if err := setup.Write(f, b.Size(), pieces); err != nil {
		_ = f.Close()
		fmt.Fprintf(os.Stderr, "Writing %s: %v\n", *output, err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Closing %s: %v\n", *output, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d pieces to %s\n", len(pieces), *output)
}
