package session_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/simple-calc/calc/internal/calc"
	"github.com/simple-calc/calc/internal/history"
	"github.com/simple-calc/calc/internal/observability"
	"github.com/simple-calc/calc/internal/session"
)

type recorder struct {
	mu     sync.Mutex
	events []observability.Event
}

func (r *recorder) OnEvent(_ context.Context, e observability.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) types() []observability.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]observability.EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func TestNew(t *testing.T) {
	s := session.New()
	if s.Current() != 0 {
		t.Errorf("Current() = %v, want 0", s.Current())
	}
	if !s.Fresh() {
		t.Error("new session should start fresh")
	}
	if s.History().Len() != 0 {
		t.Error("new session should have empty history")
	}
	if s.AnsToken() != session.DefaultAnsToken {
		t.Errorf("AnsToken() = %q", s.AnsToken())
	}
}

func TestCalculateCommits(t *testing.T) {
	ctx := context.Background()
	s := session.New()

	entry, err := s.Calculate(ctx, calc.OpAdd, 5, 3)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if entry.Result != 8 || entry.Operation != calc.OpAdd {
		t.Errorf("entry = %+v", entry)
	}
	if s.Current() != 8 {
		t.Errorf("Current() = %v, want 8", s.Current())
	}
	if s.Fresh() {
		t.Error("session should chain after a successful calculation")
	}

	entries := s.History().Entries()
	if len(entries) != 1 {
		t.Fatalf("history has %d entries, want 1", len(entries))
	}
	got := entries[0]
	if got.Operation != calc.OpAdd || len(got.Operands) != 2 || got.Operands[0] != 5 || got.Operands[1] != 3 || got.Result != 8 {
		t.Errorf("history entry = %+v", got)
	}
}

func TestCalculateFailureLeavesStateUntouched(t *testing.T) {
	tests := []struct {
		name     string
		op       calc.Operation
		operands []float64
		err      error
	}{
		{"divide by zero", calc.OpDivide, []float64{10, 0}, calc.ErrDivisionByZero},
		{"negative root", calc.OpSquareRoot, []float64{-4}, calc.ErrDomain},
		{"overflow", calc.OpPower, []float64{10, 1000}, calc.ErrOverflow},
		{"wrong arity", calc.OpAdd, []float64{1}, calc.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := session.New()

			_, err := s.Calculate(ctx, tt.op, tt.operands...)
			if !errors.Is(err, tt.err) {
				t.Fatalf("error = %v, want %v", err, tt.err)
			}
			if s.Current() != 0 {
				t.Errorf("Current() = %v, want 0", s.Current())
			}
			if !s.Fresh() {
				t.Error("failure should not switch the session to chaining")
			}
			if s.History().Len() != 0 {
				t.Errorf("history has %d entries, want 0", s.History().Len())
			}
		})
	}
}

func TestFailureAfterSuccessKeepsPriorResult(t *testing.T) {
	ctx := context.Background()
	s := session.New()
	if _, err := s.Calculate(ctx, calc.OpMultiply, 6, 7); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Calculate(ctx, calc.OpDivide, 42, 0); err == nil {
		t.Fatal("expected error")
	}
	if s.Current() != 42 {
		t.Errorf("Current() = %v, want 42", s.Current())
	}
	if s.History().Len() != 1 {
		t.Errorf("history has %d entries, want 1", s.History().Len())
	}
}

func TestHistoryOrderAndClear(t *testing.T) {
	ctx := context.Background()
	s := session.New()
	const n = 10
	for i := 0; i < n; i++ {
		if _, err := s.Calculate(ctx, calc.OpAdd, float64(i), 0); err != nil {
			t.Fatal(err)
		}
	}

	entries := s.History().Entries()
	if len(entries) != n {
		t.Fatalf("history has %d entries, want %d", len(entries), n)
	}
	for i, e := range entries {
		if e.Result != float64(i) {
			t.Errorf("entry %d result = %v, want %v", i, e.Result, i)
		}
	}

	if removed := s.ClearHistory(ctx); removed != n {
		t.Errorf("ClearHistory() = %d, want %d", removed, n)
	}
	if s.History().Len() != 0 {
		t.Error("history should be empty after clear")
	}
	if s.Current() != float64(n-1) {
		t.Errorf("clearing history changed Current() to %v", s.Current())
	}
}

func TestChainedOperand(t *testing.T) {
	ctx := context.Background()
	s := session.New()

	if _, ok := s.ChainedOperand(calc.OpAdd); ok {
		t.Error("fresh session should not supply a chained operand")
	}

	if _, err := s.Calculate(ctx, calc.OpDivide, 1, 3); err != nil {
		t.Fatal(err)
	}
	prior := s.Current()

	v, ok := s.ChainedOperand(calc.OpMultiply)
	if !ok {
		t.Fatal("expected chained operand after a calculation")
	}
	if v != prior {
		t.Errorf("chained operand = %v, want exactly %v", v, prior)
	}

	if _, ok := s.ChainedOperand(calc.OpSquareRoot); ok {
		t.Error("square root should always prompt")
	}

	s.Chain(ctx, false)
	if _, ok := s.ChainedOperand(calc.OpAdd); ok {
		t.Error("declining to chain should require fresh operands")
	}
	if s.Current() != prior {
		t.Error("declining to chain should keep the current result")
	}

	s.Chain(ctx, true)
	if _, ok := s.ChainedOperand(calc.OpAdd); !ok {
		t.Error("Chain(true) should re-enable chaining")
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s := session.New()
	if _, err := s.Calculate(ctx, calc.OpAdd, 2, 2); err != nil {
		t.Fatal(err)
	}
	s.Reset(ctx)
	if s.Current() != 0 {
		t.Errorf("Current() = %v after Reset, want 0", s.Current())
	}
	if !s.Fresh() {
		t.Error("Reset should start fresh")
	}
	if s.History().Len() != 1 {
		t.Error("Reset should keep history")
	}
}

func TestParseOperand(t *testing.T) {
	ctx := context.Background()
	s := session.New()
	if _, err := s.Calculate(ctx, calc.OpAdd, 40, 2); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		in   string
		want float64
		err  bool
	}{
		{"5", 5, false},
		{"  -3.25 ", -3.25, false},
		{"1e3", 1000, false},
		{"1e400", math.Inf(1), false},
		{"-1e400", math.Inf(-1), false},
		{"inf", math.Inf(1), false},
		{"ans", 42, false},
		{"ANS", 42, false},
		{" Ans ", 42, false},
		{"", 0, true},
		{"abc", 0, true},
		{"5 5", 0, true},
		{"answer", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := s.ParseOperand(tt.in)
			if tt.err {
				if !errors.Is(err, calc.ErrInvalidInput) {
					t.Errorf("ParseOperand(%q) error = %v, want ErrInvalidInput", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOperand(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseOperand(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCustomAnsToken(t *testing.T) {
	s := session.New(session.WithAnsToken("prev"))
	if v, err := s.ParseOperand("PREV"); err != nil || v != 0 {
		t.Errorf("ParseOperand(PREV) = %v, %v", v, err)
	}
	if _, err := s.ParseOperand("ans"); err == nil {
		t.Error("default token should not be accepted when overridden")
	}

	blank := session.New(session.WithAnsToken("  "))
	if blank.AnsToken() != session.DefaultAnsToken {
		t.Errorf("blank token should keep default, got %q", blank.AnsToken())
	}
}

func TestWithHistory(t *testing.T) {
	h := history.New()
	s := session.New(session.WithHistory(h))
	if _, err := s.Calculate(context.Background(), calc.OpSubtract, 9, 4); err != nil {
		t.Fatal(err)
	}
	if h.Len() != 1 {
		t.Error("session should append to the supplied history")
	}
}

func TestEvents(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	s := session.New(session.WithObserver(rec))

	_, _ = s.Calculate(ctx, calc.OpAdd, 1, 2)
	_, _ = s.Calculate(ctx, calc.OpDivide, 1, 0)
	s.Chain(ctx, false)
	s.Reset(ctx)
	s.ClearHistory(ctx)

	want := []observability.EventType{
		observability.EventCalculated,
		observability.EventRejected,
		observability.EventChained,
		observability.EventReset,
		observability.EventHistoryCleared,
	}
	got := rec.types()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestOutOfRangeOperandFeedsArithmetic(t *testing.T) {
	ctx := context.Background()
	s := session.New()

	v, err := s.ParseOperand("1e400")
	if err != nil {
		t.Fatalf("ParseOperand(1e400): %v", err)
	}
	entry, err := s.Calculate(ctx, calc.OpPower, v, 2)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if !math.IsInf(entry.Result, 1) {
		t.Errorf("result = %v, want +Inf", entry.Result)
	}
}
