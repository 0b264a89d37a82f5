// Package format renders calculator values for display. Formatting is
// presentational only; callers keep the exact float64.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/simple-calc/calc/internal/calc"
)

// DefaultPrecision is the number of fractional digits kept for
// non-integral results.
const DefaultPrecision = 6

// Formatter renders numbers with a fixed fractional precision.
type Formatter struct {
	Precision int
}

// New returns a Formatter with DefaultPrecision.
func New() Formatter {
	return Formatter{Precision: DefaultPrecision}
}

// Result formats v with DefaultPrecision.
func Result(v float64) string {
	return New().Number(v)
}

// Number renders integral values without a decimal point and everything
// else with up to Precision fractional digits, trailing zeros removed.
func (f Formatter) Number(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		return "0"
	case v == math.Trunc(v):
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	prec := f.Precision
	if prec < 0 {
		prec = DefaultPrecision
	}
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// Expression renders an operation with its operands, e.g. "5 + 3",
// "2^10" or "√16".
func (f Formatter) Expression(op calc.Operation, operands []float64) string {
	parts := make([]string, len(operands))
	for i, v := range operands {
		parts[i] = f.Number(v)
	}

	switch {
	case op == calc.OpSquareRoot && len(parts) == 1:
		return op.Symbol() + parts[0]
	case op == calc.OpPower && len(parts) == 2:
		return parts[0] + op.Symbol() + parts[1]
	case len(parts) == 2:
		return parts[0] + " " + op.Symbol() + " " + parts[1]
	default:
		return op.String() + "(" + strings.Join(parts, ", ") + ")"
	}
}
