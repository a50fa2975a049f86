package calc_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursework/calc"
)

func TestApply(t *testing.T) {
	tests := []struct {
		typ      calc.Type
		op, a, b string
		want     string
	}{
		{calc.Integer, "+", "2", "3", "5"},
		{calc.Integer, "-", "2", "3", "-1"},
		{calc.Integer, "*", "-4", "3", "-12"},
		{calc.Integer, "/", "7", "2", "3"},
		{calc.Integer, "/", "-7", "2", "-3"},
		{calc.Integer, "/", "7", "0", calc.DivisionByZero},
		{calc.Integer, "+", "2147483647", "1", "-2147483648"},
		{calc.Integer, "*", "65536", "65536", "0"},
		{calc.Integer, "/", "-2147483648", "-1", "-2147483648"},
		{calc.Integer, "+", "2147483648", "1", calc.WrongArgument},
		{calc.Integer, "+", "1.5", "1", calc.WrongArgument},
		{calc.Integer, "/", "x", "0", calc.DivisionByZero},
		{calc.Integer, "/", "x", "2", calc.WrongArgument},
		{calc.Integer, "/", "4", "y", calc.WrongArgument},
		{calc.Integer, "%", "1", "1", calc.WrongOperation},

		{calc.Double, "+", "1", "2", "3.0"},
		{calc.Double, "+", "0.1", "0.2", "0.30000000000000004"},
		{calc.Double, "-", "1", "1.5", "-0.5"},
		{calc.Double, "*", "5000", "2000", "1.0E7"},
		{calc.Double, "/", "1", "8", "0.125"},
		{calc.Double, "/", "1", "0", calc.DivisionByZero},
		{calc.Double, "/", "1", "-0.0", calc.DivisionByZero},
		{calc.Double, "*", "abc", "2", calc.WrongArgument},
		{calc.Double, "/", "abc", "0", calc.DivisionByZero},
		{calc.Double, "/", "abc", "2", calc.WrongArgument},
		{calc.Double, "+", "1.5d", "1", "2.5"},
		{calc.Double, "+", "1.5F", "1f", "2.5"},
		{calc.Double, "+", "inf", "1", calc.WrongArgument},
		{calc.Double, "+", "-infinity", "1", calc.WrongArgument},
		{calc.Double, "+", "nan", "1", calc.WrongArgument},
		{calc.Double, "+", "Infinity", "1", "Infinity"},
		{calc.Double, "-", "-Infinity", "1", "-Infinity"},
		{calc.Double, "*", "NaN", "2", "NaN"},
		{calc.Double, "+", "0x1p3", "1", "9.0"},
		{calc.Double, "+", "d", "1", calc.WrongArgument},

		{calc.String, "+", "foo", "bar", "foobar"},
		{calc.String, "-", "foo", "bar", calc.Unsupported},
		{calc.String, "/", "foo", "bar", calc.Unsupported},
		{calc.String, "*", "ab", "3", "ababab"},
		{calc.String, "*", "ab", "1", "ab"},
		{calc.String, "*", "ab", "0", "ab"},
		{calc.String, "*", "ab", "-1", calc.WrongArgument},
		{calc.String, "*", "ab", "two", calc.WrongArgument},
		{calc.String, "^", "ab", "cd", calc.WrongOperation},
	}
	for _, tc := range tests {
		got := calc.Apply(calc.New(tc.typ), tc.op, tc.a, tc.b)
		assert.Equal(t, tc.want, got, "type %d: %s %s %s", tc.typ, tc.a, tc.op, tc.b)
	}
}

func TestFormatDouble(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{3, "3.0"},
		{-2.5, "-2.5"},
		{0.001, "0.001"},
		{0.0001, "1.0E-4"},
		{1.5e-7, "1.5E-7"},
		{9999999, "9999999.0"},
		{10000000, "1.0E7"},
		{123456789, "1.23456789E8"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, calc.FormatDouble(tc.in), "%v", tc.in)
	}
}

func TestParseType(t *testing.T) {
	typ, err := calc.ParseType("DOUBLE")
	require.NoError(t, err)
	assert.Equal(t, calc.Double, typ)

	_, err = calc.ParseType("double")
	assert.ErrorIs(t, err, calc.ErrCalculatorType)
}

func TestRun(t *testing.T) {
	in := "INTEGER\n4\n+ 1 2\n/ 9 0\n? 1 2\n* 6\n7\n"
	var out bytes.Buffer
	require.NoError(t, calc.Run(strings.NewReader(in), &out))
	assert.Equal(t, "3\nDivision by zero\nWrong operation type\n42\n", out.String())
}

func TestRunStringSession(t *testing.T) {
	in := "STRING\r\n2\r\n+ ab cd\r\n* x 3"
	var out bytes.Buffer
	require.NoError(t, calc.Run(strings.NewReader(in), &out))
	assert.Equal(t, "abcd\nxxx\n", out.String())
}

func TestRunFatalErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", calc.ErrCalculatorType},
		{"bad type", "COMPLEX\n1\n+ 1 1\n", calc.ErrCalculatorType},
		{"count too long", "INTEGER\n100\n", calc.ErrCommandCount},
		{"count not digits", "INTEGER\n1a\n", calc.ErrCommandCount},
		{"count negative", "INTEGER\n-1\n", calc.ErrCommandCount},
		{"count empty", "INTEGER\n\n", calc.ErrCommandCount},
		{"count missing", "INTEGER\n", calc.ErrCommandCount},
		{"command cut short", "INTEGER\n2\n+ 1 2\n- 1\n", calc.ErrInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := calc.Run(strings.NewReader(tc.in), &out)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, tc.want.Error(), calc.Message(err))
		})
	}
}

func TestMessageUnknownError(t *testing.T) {
	assert.Equal(t, "boom", calc.Message(errors.New("boom")))
}
