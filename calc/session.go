package calc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrCommandCount = errors.New("Amount of commands is Not a Number")
	ErrInput        = errors.New("Invalid input")
)

// maxCountDigits bounds the command count line.
const maxCountDigits = 2

// Run reads a session from r and writes one result line per command to w.
//
// The first line names the calculator type, the second holds the number of
// commands (at most two digits), and each command is three whitespace
// separated tokens: operator, left operand, right operand. A bad type or
// count ends the session with an error and nothing written; a bad operator
// only affects its own line.
func Run(r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)

	line, err := readLine(br)
	if err != nil {
		return fmt.Errorf("%w: reading calculator type: %v", ErrCalculatorType, err)
	}
	typ, err := ParseType(line)
	if err != nil {
		return err
	}
	c := New(typ)

	line, err = readLine(br)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCommandCount, err)
	}
	n, err := parseCount(line)
	if err != nil {
		return err
	}

	sc := bufio.NewScanner(br)
	sc.Split(bufio.ScanWords)
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}
	for i := 0; i < n; i++ {
		op, ok1 := next()
		a, ok2 := next()
		b, ok3 := next()
		if !ok1 || !ok2 || !ok3 {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("%w: command %d: %v", ErrInput, i+1, err)
			}
			return fmt.Errorf("%w: command %d is incomplete", ErrInput, i+1)
		}
		if _, err := fmt.Fprintln(w, Apply(c, op, a, b)); err != nil {
			return err
		}
	}
	return nil
}

func parseCount(line string) (int, error) {
	if line == "" || len(line) > maxCountDigits {
		return 0, fmt.Errorf("%w: %q", ErrCommandCount, line)
	}
	for _, r := range line {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrCommandCount, line)
		}
	}
	return strconv.Atoi(line)
}

// readLine returns the next line without its terminator. A final line without
// a newline is still returned.
func readLine(br *bufio.Reader) (string, error) {
	s, err := br.ReadString('\n')
	if err != nil && (err != io.EOF || s == "") {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// Message returns the text printed for a session error.
func Message(err error) string {
	for _, s := range []error{ErrCalculatorType, ErrCommandCount, ErrInput} {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return err.Error()
}
