// Package observability carries calculator session events to logging
// sinks. Sessions emit events; observers decide where they go.
package observability

import (
	"context"
	"log/slog"
	"time"
)

// Level is the severity of an event.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	default:
		return "ERROR"
	}
}

// SlogLevel maps the level onto slog.
func (l Level) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// EventType names what happened, e.g. "calculation.committed".
type EventType string

const (
	EventCalculated     EventType = "calculation.committed"
	EventRejected       EventType = "calculation.rejected"
	EventHistoryCleared EventType = "history.cleared"
	EventReset          EventType = "session.reset"
	EventChained        EventType = "session.chained"
)

// Event is emitted by a session for each state change or failure.
type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// Observer receives session events.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}
