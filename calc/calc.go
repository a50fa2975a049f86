// Package calc is a typed calculator: one session works over integers,
// doubles or strings and applies + - * / to pairs of textual operands.
// Every result, including an operand error, is a line of text.
package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Result texts for operations that cannot produce a value.
const (
	WrongArgument  = "Wrong argument type"
	DivisionByZero = "Division by zero"
	Unsupported    = "Unsupported operation for strings"
	WrongOperation = "Wrong operation type"
)

// Type selects the operand domain of a session.
type Type int

const (
	Integer Type = iota
	Double
	String
)

var ErrCalculatorType = errors.New("Wrong calculator type")

// ParseType accepts INTEGER, DOUBLE and STRING.
func ParseType(s string) (Type, error) {
	switch s {
	case "INTEGER":
		return Integer, nil
	case "DOUBLE":
		return Double, nil
	case "STRING":
		return String, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrCalculatorType, s)
}

// Calculator applies the four operations to textual operands.
type Calculator interface {
	Add(a, b string) string
	Subtract(a, b string) string
	Multiply(a, b string) string
	Divide(a, b string) string
}

// New returns the calculator for t.
func New(t Type) Calculator {
	switch t {
	case Double:
		return doubleCalculator{}
	case String:
		return stringCalculator{}
	default:
		return integerCalculator{}
	}
}

// Apply runs the operation named by op ("+", "-", "*" or "/").
func Apply(c Calculator, op, a, b string) string {
	switch op {
	case "+":
		return c.Add(a, b)
	case "-":
		return c.Subtract(a, b)
	case "*":
		return c.Multiply(a, b)
	case "/":
		return c.Divide(a, b)
	}
	return WrongOperation
}

// integerCalculator works on 32-bit signed integers; overflow wraps.
type integerCalculator struct{}

func parseInt32(s string) (int32, bool) {
	n, err := strconv.ParseInt(s, 10, 32)
	return int32(n), err == nil
}

func (integerCalculator) apply(a, b string, f func(x, y int32) string) string {
	x, ok := parseInt32(a)
	if !ok {
		return WrongArgument
	}
	y, ok := parseInt32(b)
	if !ok {
		return WrongArgument
	}
	return f(x, y)
}

func (c integerCalculator) Add(a, b string) string {
	return c.apply(a, b, func(x, y int32) string { return strconv.Itoa(int(x + y)) })
}

func (c integerCalculator) Subtract(a, b string) string {
	return c.apply(a, b, func(x, y int32) string { return strconv.Itoa(int(x - y)) })
}

func (c integerCalculator) Multiply(a, b string) string {
	return c.apply(a, b, func(x, y int32) string { return strconv.Itoa(int(x * y)) })
}

// Divide checks the divisor before the dividend: a zero divisor wins over a
// malformed dividend.
func (integerCalculator) Divide(a, b string) string {
	y, ok := parseInt32(b)
	if !ok {
		return WrongArgument
	}
	if y == 0 {
		return DivisionByZero
	}
	x, ok := parseInt32(a)
	if !ok {
		return WrongArgument
	}
	return strconv.Itoa(int(x / y))
}

type doubleCalculator struct{}

// parseDouble accepts decimal and hex floats with an optional d/f type
// suffix, plus the exact spellings "NaN" and "Infinity".
func parseDouble(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if body := strings.TrimLeft(s, "+-"); body != "NaN" && body != "Infinity" {
		lower := strings.ToLower(body)
		if strings.HasPrefix(lower, "inf") || strings.HasPrefix(lower, "nan") {
			return 0, false
		}
		if n := len(s); n > 1 && strings.IndexByte("dDfF", s[n-1]) >= 0 {
			s = s[:n-1]
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

func (doubleCalculator) apply(a, b string, f func(x, y float64) string) string {
	x, ok := parseDouble(a)
	if !ok {
		return WrongArgument
	}
	y, ok := parseDouble(b)
	if !ok {
		return WrongArgument
	}
	return f(x, y)
}

func (c doubleCalculator) Add(a, b string) string {
	return c.apply(a, b, func(x, y float64) string { return FormatDouble(x + y) })
}

func (c doubleCalculator) Subtract(a, b string) string {
	return c.apply(a, b, func(x, y float64) string { return FormatDouble(x - y) })
}

func (c doubleCalculator) Multiply(a, b string) string {
	return c.apply(a, b, func(x, y float64) string { return FormatDouble(x * y) })
}

func (doubleCalculator) Divide(a, b string) string {
	y, ok := parseDouble(b)
	if !ok {
		return WrongArgument
	}
	if y == 0 {
		return DivisionByZero
	}
	x, ok := parseDouble(a)
	if !ok {
		return WrongArgument
	}
	return FormatDouble(x / y)
}

type stringCalculator struct{}

func (stringCalculator) Add(a, b string) string { return a + b }

func (stringCalculator) Subtract(a, b string) string { return Unsupported }

// Multiply repeats a b times. A count of zero leaves a unchanged.
func (stringCalculator) Multiply(a, b string) string {
	n, ok := parseInt32(b)
	if !ok || n < 0 {
		return WrongArgument
	}
	if n == 0 {
		return a
	}
	return strings.Repeat(a, int(n))
}

func (stringCalculator) Divide(a, b string) string { return Unsupported }
