package calc

import (
	"errors"
	"math"
	"testing"
)

func TestTotalOperations(t *testing.T) {
	tests := []struct {
		name string
		fn   func(a, b float64) float64
		a, b float64
		want float64
	}{
		{"add", Add, 5, 3, 8},
		{"add negatives", Add, -2.5, -0.5, -3},
		{"subtract", Subtract, 5, 3, 2},
		{"subtract below zero", Subtract, 3, 5, -2},
		{"multiply", Multiply, 4, 2.5, 10},
		{"multiply by zero", Multiply, 1e300, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.a, tt.b); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDivideMatchesFloatDivision(t *testing.T) {
	pairs := [][2]float64{
		{10, 4}, {1, 3}, {-7, 2}, {0, 5}, {1e-300, 1e10}, {math.MaxFloat64, 0.5},
	}
	for _, p := range pairs {
		got, err := Divide(p[0], p[1])
		if err != nil {
			t.Fatalf("Divide(%v, %v) error: %v", p[0], p[1], err)
		}
		if want := p[0] / p[1]; got != want {
			t.Errorf("Divide(%v, %v) = %v, want %v", p[0], p[1], got, want)
		}
	}
}

func TestDivideByZero(t *testing.T) {
	for _, a := range []float64{0, 1, -1, 10, math.Inf(1), math.NaN()} {
		for _, zero := range []float64{0, math.Copysign(0, -1)} {
			if _, err := Divide(a, zero); !errors.Is(err, ErrDivisionByZero) {
				t.Errorf("Divide(%v, %v) error = %v, want ErrDivisionByZero", a, zero, err)
			}
		}
	}
}

func TestSquareRoot(t *testing.T) {
	for _, x := range []float64{-1, -0.0001, -1e300, math.Inf(-1)} {
		_, err := SquareRoot(x)
		if !errors.Is(err, ErrDomain) {
			t.Errorf("SquareRoot(%v) error = %v, want ErrDomain", x, err)
		}
		if !errors.Is(err, ErrNegativeSquareRoot) {
			t.Errorf("SquareRoot(%v) error = %v, want ErrNegativeSquareRoot", x, err)
		}
	}

	for _, x := range []float64{0, 1, 2, 16, 0.25, 12345.678, 1e-12, 1e200} {
		r, err := SquareRoot(x)
		if err != nil {
			t.Fatalf("SquareRoot(%v) error: %v", x, err)
		}
		if r < 0 {
			t.Errorf("SquareRoot(%v) = %v, want non-negative", x, r)
		}
		if diff := math.Abs(r*r - x); diff > 1e-9*math.Max(1, x) {
			t.Errorf("SquareRoot(%v)^2 = %v, off by %v", x, r*r, diff)
		}
	}
}

func TestPower(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		exponent float64
		want     float64
		err      error
	}{
		{name: "integer", base: 2, exponent: 10, want: 1024},
		{name: "fractional exponent", base: 9, exponent: 0.5, want: 3},
		{name: "negative exponent", base: 2, exponent: -2, want: 0.25},
		{name: "zero exponent", base: 0, exponent: 0, want: 1},
		{name: "negative base integer exponent", base: -2, exponent: 3, want: -8},
		{name: "overflow", base: 10, exponent: 400, err: ErrOverflow},
		{name: "negative overflow", base: -10, exponent: 401, err: ErrOverflow},
		{name: "negative base fractional exponent", base: -8, exponent: 1.0 / 3, err: ErrDomain},
		{name: "zero to negative power", base: 0, exponent: -1, err: ErrDomain},
		{name: "underflow is not an error", base: 10, exponent: -400, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Power(tt.base, tt.exponent)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("error = %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Power(%v, %v) = %v, want %v", tt.base, tt.exponent, got, tt.want)
			}
		})
	}
}

func TestPowerNonFiniteInputsPassThrough(t *testing.T) {
	got, err := Power(math.Inf(1), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("Power(+Inf, 2) = %v, want +Inf", got)
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		op       Operation
		operands []float64
		want     float64
		err      error
	}{
		{OpAdd, []float64{5, 3}, 8, nil},
		{OpSubtract, []float64{5, 3}, 2, nil},
		{OpMultiply, []float64{5, 3}, 15, nil},
		{OpDivide, []float64{10, 4}, 2.5, nil},
		{OpDivide, []float64{10, 0}, 0, ErrDivisionByZero},
		{OpPower, []float64{2, 3}, 8, nil},
		{OpSquareRoot, []float64{49}, 7, nil},
		{OpSquareRoot, []float64{-49}, 0, ErrDomain},
		{OpSquareRoot, []float64{4, 9}, 0, ErrInvalidInput},
		{OpAdd, []float64{1}, 0, ErrInvalidInput},
		{Operation(42), []float64{1, 2}, 0, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			got, err := Apply(tt.op, tt.operands...)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Apply(%v, %v) error = %v, want %v", tt.op, tt.operands, err, tt.err)
			}
			if err == nil && got != tt.want {
				t.Errorf("Apply(%v, %v) = %v, want %v", tt.op, tt.operands, got, tt.want)
			}
		})
	}
}
