// Package session holds the state of one interactive calculator run: the
// current result, whether the next operation starts fresh, and the
// calculation history.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/simple-calc/calc/internal/calc"
	"github.com/simple-calc/calc/internal/history"
	"github.com/simple-calc/calc/internal/observability"
)

// DefaultAnsToken is the operand token that stands for the current result.
const DefaultAnsToken = "ans"

const eventSource = "session"

// Session is owned by a single front-end loop. A failed calculation leaves
// it untouched.
type Session struct {
	current  float64
	fresh    bool
	history  *history.History
	observer observability.Observer
	ansToken string
}

// Option configures a Session.
type Option func(*Session)

// WithHistory replaces the default empty history.
func WithHistory(h *history.History) Option {
	return func(s *Session) {
		s.history = h
	}
}

// WithObserver sets the sink for session events.
func WithObserver(o observability.Observer) Option {
	return func(s *Session) {
		s.observer = o
	}
}

// WithAnsToken overrides the token that recalls the current result.
func WithAnsToken(token string) Option {
	return func(s *Session) {
		if t := strings.TrimSpace(token); t != "" {
			s.ansToken = t
		}
	}
}

// New creates a session with a zero current result, ready for a fresh
// calculation.
func New(opts ...Option) *Session {
	s := &Session{
		fresh:    true,
		observer: observability.NoOpObserver{},
		ansToken: DefaultAnsToken,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.history == nil {
		s.history = history.New()
	}
	return s
}

// Current returns the result of the last successful calculation, or 0.
func (s *Session) Current() float64 { return s.current }

// Fresh reports whether the next operation prompts for every operand.
func (s *Session) Fresh() bool { return s.fresh }

func (s *Session) History() *history.History { return s.history }

// AnsToken is the operand token that recalls the current result.
func (s *Session) AnsToken() string { return s.ansToken }

// ParseOperand converts user text into an operand. The ans token (any case)
// yields the current result.
func (s *Session) ParseOperand(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if strings.EqualFold(text, s.ansToken) {
		return s.current, nil
	}
	if text == "" {
		return 0, fmt.Errorf("empty operand: %w", calc.ErrInvalidInput)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Literals beyond float64 range come back as ±Inf.
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		return 0, fmt.Errorf("%q is not a number: %w", text, calc.ErrInvalidInput)
	}
	return v, nil
}

// ChainedOperand returns the current result as op's first operand when the
// session is chaining. Unary operations always take fresh input.
func (s *Session) ChainedOperand(op calc.Operation) (float64, bool) {
	if s.fresh || op.Arity() < 2 {
		return 0, false
	}
	return s.current, true
}

// Calculate applies op and, on success, commits the result: it becomes the
// current result, the session switches to chaining, and a history entry is
// appended. On failure nothing changes.
func (s *Session) Calculate(ctx context.Context, op calc.Operation, operands ...float64) (history.Entry, error) {
	result, err := calc.Apply(op, operands...)
	if err != nil {
		s.emit(ctx, observability.EventRejected, observability.LevelWarning, map[string]any{
			"operation": op.String(),
			"operands":  operands,
			"error":     err.Error(),
		})
		return history.Entry{}, err
	}

	entry := s.history.Append(op, operands, result)
	s.current = result
	s.fresh = false

	s.emit(ctx, observability.EventCalculated, observability.LevelInfo, map[string]any{
		"id":        entry.ID,
		"operation": op.String(),
		"operands":  entry.Operands,
		"result":    result,
	})
	return entry, nil
}

// Chain decides how the next operation starts: with the current result as
// its first operand, or with fresh input.
func (s *Session) Chain(ctx context.Context, keep bool) {
	s.fresh = !keep
	s.emit(ctx, observability.EventChained, observability.LevelDebug, map[string]any{
		"chaining": keep,
		"current":  s.current,
	})
}

// Reset sets the current result back to zero and starts fresh. History is
// kept.
func (s *Session) Reset(ctx context.Context) {
	s.current = 0
	s.fresh = true
	s.emit(ctx, observability.EventReset, observability.LevelInfo, nil)
}

// ClearHistory empties the history and returns how many entries it held.
func (s *Session) ClearHistory(ctx context.Context) int {
	n := s.history.Clear()
	s.emit(ctx, observability.EventHistoryCleared, observability.LevelInfo, map[string]any{
		"removed": n,
	})
	return n
}

func (s *Session) emit(ctx context.Context, typ observability.EventType, level observability.Level, data map[string]any) {
	s.observer.OnEvent(ctx, observability.Event{
		Type:      typ,
		Level:     level,
		Timestamp: time.Now(),
		Source:    eventSource,
		Data:      data,
	})
}
