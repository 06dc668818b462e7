package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// AuditEvent-specific validation errors
var (
	// ErrAuditEventIDEmpty is returned when an audit event ID is nil.
	ErrAuditEventIDEmpty = errors.New("audit event ID cannot be empty")

	// ErrAuditEventTypeInvalid is returned when an audit event type is not
	// one of the known integration stubs.
	ErrAuditEventTypeInvalid = errors.New("audit event type is invalid")

	// ErrAuditEventPersonaEmpty is returned when an audit event has no
	// target persona name.
	ErrAuditEventPersonaEmpty = errors.New("audit event persona name cannot be empty")
)

// AuditEventType tags which simulated outbound integration produced an
// audit event.
type AuditEventType string

// Known audit event types, one per integration stub.
const (
	EventReminder       AuditEventType = "reminder"
	EventRecordSync     AuditEventType = "record_sync"
	EventCallScheduling AuditEventType = "call_scheduling"
)

// IsValid reports whether the event type is one of the known stubs.
func (t AuditEventType) IsValid() bool {
	switch t {
	case EventReminder, EventRecordSync, EventCallScheduling:
		return true
	}
	return false
}

// AuditEvent records one simulated outbound integration action for
// traceability display. Events are immutable once created; the audit log
// only appends, never mutates or removes entries.
type AuditEvent struct {
	ID          uuid.UUID      `json:"id"`
	Type        AuditEventType `json:"type"`
	When        time.Time      `json:"when"`
	PersonaName string         `json:"persona_name"`
	Payload     map[string]any `json:"payload"`
}

// NewAuditEvent creates an audit event of the given type targeting the named
// persona, stamping the creation time at call time.
// Returns an error if validation fails.
func NewAuditEvent(
	eventType AuditEventType,
	personaName string,
	payload map[string]any,
) (*AuditEvent, error) {
	event := &AuditEvent{
		ID:          uuid.New(),
		Type:        eventType,
		When:        time.Now().UTC(),
		PersonaName: personaName,
		Payload:     payload,
	}

	if err := event.Validate(); err != nil {
		return nil, err
	}

	return event, nil
}

// Validate checks if the AuditEvent has valid data.
func (e *AuditEvent) Validate() error {
	if e.ID == uuid.Nil {
		return ErrAuditEventIDEmpty
	}

	if !e.Type.IsValid() {
		return ErrAuditEventTypeInvalid
	}

	if e.PersonaName == "" {
		return ErrAuditEventPersonaEmpty
	}

	return nil
}
