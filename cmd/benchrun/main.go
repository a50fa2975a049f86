package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
	return 1
}

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func main() {
	// Usage: go run ./cmd/benchrun
	// Format: BenchmarkName  Iterations  ns/op  B/op  allocs/op
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	code := run("go", "test", "./board", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s")
	if code != 0 {
		os.Exit(code)
	}

	fmt.Println("\nCount throughput:")
	fmt.Println("TEST \t\tPieces \tMoves \tCaptures \tTime")
	run("go", "run", "./cmd/countbench", "-repeat", "100000", "-label", "Initial")
	run("go", "run", "./cmd/countbench", "-repeat", "100000", "-label", "Kiwipete", "-fen", kiwipete)
	run("go", "run", "./cmd/countbench", "-repeat", "100000", "-label", "Kiwipete-bb", "-fen", kiwipete, "-bitboards")
	os.Exit(0)
}
