package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Log levels, numeric to match the wire format of the log consumers.
const (
	LogLevelInfo  = 30
	LogLevelWarn  = 40
	LogLevelError = 50
)

// LogEntry is a persisted application log record, written best-effort by the
// request-tracking middleware.
type LogEntry struct {
	ID         uuid.UUID `json:"id"`
	Level      int       `json:"level"`
	Time       time.Time `json:"time"`
	Message    string    `json:"msg"`
	Method     string    `json:"method,omitempty"`
	URL        string    `json:"url,omitempty"`
	StatusCode int       `json:"statusCode,omitempty"`
}

type LogRepository interface {
	Insert(ctx context.Context, entry *LogEntry) error
	// List returns all log entries, newest first.
	List(ctx context.Context) ([]*LogEntry, error)
}
