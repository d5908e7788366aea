// Package logger builds the structured loggers of the trivia backend.
package logger

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// New returns a JSON logger writing to w at the given level.
// A nil writer means stdout.
func New(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// EventLogger logs request events that operators alert on.
// Entries carry no request bodies.
type EventLogger struct {
	logger *slog.Logger
}

// NewEventLogger wraps a logger. A nil logger discards events.
func NewEventLogger(l *slog.Logger) *EventLogger {
	if l == nil {
		l = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &EventLogger{logger: l}
}

// RateLimitExceeded logs when a client exceeds rate limits.
func (e *EventLogger) RateLimitExceeded(ip, path, requestID string) {
	e.logger.Warn("rate_limit_exceeded",
		slog.String("event_type", "rate_limit"),
		slog.String("ip", ip),
		slog.String("path", path),
		slog.String("request_id", requestID),
		slog.Time("timestamp", time.Now().UTC()),
	)
}

// PanicRecovered logs a handler panic turned into a 500 response.
func (e *EventLogger) PanicRecovered(ip, path, requestID string, err error, stack []byte) {
	e.logger.Error("panic_recovered",
		slog.String("event_type", "panic"),
		slog.String("ip", ip),
		slog.String("path", path),
		slog.String("request_id", requestID),
		slog.String("error", err.Error()),
		slog.String("stack", string(stack)),
		slog.Time("timestamp", time.Now().UTC()),
	)
}
