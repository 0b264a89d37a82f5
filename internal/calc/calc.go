// Package calc implements the calculator's arithmetic: six pure functions
// over float64 and a dispatcher keyed by Operation.
package calc

import (
	"fmt"
	"math"
)

func Add(a, b float64) float64 { return a + b }

func Subtract(a, b float64) float64 { return a - b }

func Multiply(a, b float64) float64 { return a * b }

// Divide returns a / b, or ErrDivisionByZero when b is zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Power returns base raised to exponent. Finite inputs whose result is
// infinite report ErrOverflow; finite inputs whose result is NaN (a
// negative base with a fractional exponent) or infinite from a zero base
// (zero to a negative power) report ErrDomain.
func Power(base, exponent float64) (float64, error) {
	r := math.Pow(base, exponent)
	if !isFinite(base) || !isFinite(exponent) {
		return r, nil
	}
	switch {
	case math.IsNaN(r), math.IsInf(r, 0) && base == 0:
		return 0, ErrDomain
	case math.IsInf(r, 0):
		return 0, ErrOverflow
	}
	return r, nil
}

// SquareRoot returns the non-negative root of x. Negative x reports
// ErrNegativeSquareRoot, which matches ErrDomain.
func SquareRoot(x float64) (float64, error) {
	if x < 0 {
		return 0, ErrNegativeSquareRoot
	}
	return math.Sqrt(x), nil
}

// Apply dispatches op over operands. The operand count must match op.Arity.
func Apply(op Operation, operands ...float64) (float64, error) {
	if !op.Valid() {
		return 0, fmt.Errorf("operation %d: %w", int(op), ErrInvalidInput)
	}
	if len(operands) != op.Arity() {
		return 0, fmt.Errorf("%s takes %d operand(s), got %d: %w",
			op, op.Arity(), len(operands), ErrInvalidInput)
	}

	switch op {
	case OpAdd:
		return Add(operands[0], operands[1]), nil
	case OpSubtract:
		return Subtract(operands[0], operands[1]), nil
	case OpMultiply:
		return Multiply(operands[0], operands[1]), nil
	case OpDivide:
		return Divide(operands[0], operands[1])
	case OpPower:
		return Power(operands[0], operands[1])
	default:
		return SquareRoot(operands[0])
	}
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
