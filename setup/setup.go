// Package setup reads the counter's input format and validates it into a
// populated board.
//
// The format is:
//
//	N                       board size, 3..1000
//	M                       number of pieces, 2..N*N
//	<Kind> <Color> <x> <y>  one line per piece, M lines
//
// Each validation failure maps to one sentinel error whose text is the
// message written to the output file.
package setup

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"coursework/board"
)

var (
	ErrBoardSize  = errors.New("Invalid board size")
	ErrPieceCount = errors.New("Invalid number of pieces")
	ErrPieceName  = errors.New("Invalid piece name")
	ErrColor      = errors.New("Invalid piece color")
	ErrPosition   = errors.New("Invalid piece position")
	ErrKings      = errors.New("Invalid given Kings")
	ErrInput      = errors.New("Invalid input")
)

var sentinels = []error{ErrBoardSize, ErrPieceCount, ErrPieceName, ErrColor, ErrPosition, ErrKings, ErrInput}

// Message returns the fixed output text for err. Errors outside the setup
// taxonomy are reported as invalid input.
func Message(err error) string {
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return ErrInput.Error()
}

// Setup is a validated board together with its pieces in input order.
type Setup struct {
	Board  *board.Board
	Pieces []board.Piece
}

// Parse reads and validates a whole input. Checks run in input order and the
// first failure is returned.
func Parse(r io.Reader) (*Setup, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInput, err)
	}
	if len(lines) < 2 {
		if len(lines) == 0 {
			return nil, fmt.Errorf("%w: missing size line", ErrBoardSize)
		}
		if _, err := parseSize(lines[0]); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: missing piece count line", ErrPieceCount)
	}

	size, err := parseSize(lines[0])
	if err != nil {
		return nil, err
	}
	count, err := strconv.Atoi(lines[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrPieceCount, lines[1])
	}
	if count < 2 || count > size*size {
		return nil, fmt.Errorf("%w: %d pieces on %dx%d", ErrPieceCount, count, size, size)
	}
	if len(lines)-2 != count {
		return nil, fmt.Errorf("%w: declared %d, found %d lines", ErrPieceCount, count, len(lines)-2)
	}

	s := &Setup{Board: board.New(size), Pieces: make([]board.Piece, 0, count)}
	for i, line := range lines[2:] {
		p, err := parsePiece(line, size)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+3, err)
		}
		if err := s.Board.Add(p); err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", i+3, ErrPosition, err)
		}
		s.Pieces = append(s.Pieces, p)
	}

	if white, black := s.Board.Kings(); white != 1 || black != 1 {
		return nil, fmt.Errorf("%w: %d white, %d black", ErrKings, white, black)
	}
	return s, nil
}

func parseSize(line string) (int, error) {
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBoardSize, line)
	}
	if n < board.MinSize || n > board.MaxSize {
		return 0, fmt.Errorf("%w: %d", ErrBoardSize, n)
	}
	return n, nil
}

// parsePiece checks the position first, then the color, then the name.
func parsePiece(line string, size int) (board.Piece, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return board.Piece{}, fmt.Errorf("%w: %q", ErrInput, line)
	}
	x, errX := strconv.Atoi(fields[2])
	y, errY := strconv.Atoi(fields[3])
	if errX != nil || errY != nil || x < 1 || x > size || y < 1 || y > size {
		return board.Piece{}, fmt.Errorf("%w: %s %s", ErrPosition, fields[2], fields[3])
	}
	color, err := board.ParseColor(fields[1])
	if err != nil {
		return board.Piece{}, fmt.Errorf("%w: %v", ErrColor, err)
	}
	kind, err := board.ParseKind(fields[0])
	if err != nil {
		return board.Piece{}, fmt.Errorf("%w: %v", ErrPieceName, err)
	}
	return board.Piece{Kind: kind, Color: color, At: board.Coord{X: x, Y: y}}, nil
}

// readLines splits r into lines. A trailing newline does not start another
// line and a carriage return before the newline is dropped.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
