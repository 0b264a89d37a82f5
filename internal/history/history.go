// Package history keeps the ordered log of completed calculations for a
// single calculator session.
package history

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/simple-calc/calc/internal/calc"
)

// Entry is an immutable record of one completed calculation.
type Entry struct {
	ID        string         `json:"id" yaml:"id"`
	Operation calc.Operation `json:"operation" yaml:"operation"`
	Operands  []float64      `json:"operands" yaml:"operands"`
	Result    float64        `json:"result" yaml:"result"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
}

func (e Entry) clone() Entry {
	e.Operands = slices.Clone(e.Operands)
	return e
}

// History is an append-only, clearable sequence of entries in insertion
// order. It has no capacity bound. Safe for concurrent use.
type History struct {
	mu      sync.RWMutex
	entries []Entry
	now     func() time.Time
}

// Option configures a History.
type Option func(*History)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(h *History) {
		h.now = now
	}
}

// New creates an empty History.
func New(opts ...Option) *History {
	h := &History{now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Append records a calculation and returns the stored entry. The operands
// slice is copied.
func (h *History) Append(op calc.Operation, operands []float64, result float64) Entry {
	e := Entry{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Operation: op,
		Operands:  slices.Clone(operands),
		Result:    result,
		Timestamp: h.now(),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, e)
	return e.clone()
}

// Entries returns a copy of every entry, oldest first.
func (h *History) Entries() []Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	copied := make([]Entry, len(h.entries))
	for i, e := range h.entries {
		copied[i] = e.clone()
	}
	return copied
}

// Last returns the most recent entry.
func (h *History) Last() (Entry, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[len(h.entries)-1].clone(), true
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Clear empties the history and reports how many entries were removed.
func (h *History) Clear() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := len(h.entries)
	h.entries = nil
	return n
}
