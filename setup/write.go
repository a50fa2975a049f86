package setup

import (
	"bufio"
	"fmt"
	"io"

	"coursework/board"
)

// Write renders pieces on a size x size board in the input format read by
// Parse.
func Write(w io.Writer, size int, pieces []board.Piece) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%d\n", size, len(pieces))
	for _, p := range pieces {
		fmt.Fprintf(bw, "%s %s %d %d\n", p.Kind, p.Color, p.At.X, p.At.Y)
	}
	return bw.Flush()
}
