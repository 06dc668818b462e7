package store

import (
	"log/slog"
	"sync"

	"github.com/carepath/onboard-api/internal/domain"
)

// AuditLog is the append-only, session-scoped sequence of simulated
// integration events. Entries are never mutated or removed, ordering is
// strictly insertion order, and the log is exposed newest-first for display.
type AuditLog struct {
	mu     sync.RWMutex
	events []*domain.AuditEvent
	logger *slog.Logger
}

// NewAuditLog creates an empty audit log.
func NewAuditLog(logger *slog.Logger) *AuditLog {
	if logger == nil {
		logger = slog.Default()
	}

	return &AuditLog{
		events: make([]*domain.AuditEvent, 0),
		logger: logger.With(slog.String("component", "audit_log")),
	}
}

// Append adds an event to the log. Returns the event's validation error if
// it is malformed; valid events are always accepted.
func (l *AuditLog) Append(event *domain.AuditEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	l.events = append(l.events, event)
	count := len(l.events)
	l.mu.Unlock()

	l.logger.Debug("audit event appended",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", string(event.Type)),
		slog.String("persona", event.PersonaName),
		slog.Int("log_size", count))

	return nil
}

// Events returns the logged events newest-first. The returned slice is a
// copy; the events themselves are immutable by convention.
func (l *AuditLog) Events() []*domain.AuditEvent {
	l.mu.RLock()
	defer l.mu.RUnlock()

	newestFirst := make([]*domain.AuditEvent, 0, len(l.events))
	for i := len(l.events) - 1; i >= 0; i-- {
		newestFirst = append(newestFirst, l.events[i])
	}
	return newestFirst
}

// Len returns the number of logged events.
func (l *AuditLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}
