package domain

import (
	"errors"
	"time"
)

// Task-specific validation errors
var (
	// ErrTaskIDEmpty is returned when a task ID is empty.
	ErrTaskIDEmpty = errors.New("task ID cannot be empty")

	// ErrTaskLabelEmpty is returned when a task label is empty.
	ErrTaskLabelEmpty = errors.New("task label cannot be empty")

	// ErrTaskCompletionInconsistent is returned when a task's completion
	// timestamp does not agree with its completion flag.
	ErrTaskCompletionInconsistent = errors.New(
		"task completion timestamp must be present exactly when the task is completed")
)

// Task is a single onboarding to-do assigned to a patient. Each
// PatientRecord owns an independent copy of the base task templates; a task
// is never shared between records.
type Task struct {
	ID          string     `json:"id"`
	Label       string     `json:"label"`
	DueInDays   int        `json:"due_in_days"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Validate checks if the Task has valid data, including the invariant that
// the completion timestamp is present if and only if the task is completed.
func (t *Task) Validate() error {
	if t.ID == "" {
		return ErrTaskIDEmpty
	}

	if t.Label == "" {
		return ErrTaskLabelEmpty
	}

	if t.Completed != (t.CompletedAt != nil) {
		return ErrTaskCompletionInconsistent
	}

	return nil
}

// Complete marks the task completed at the given time. Completing an
// already-completed task is a no-op: the first completion timestamp wins.
// It reports whether the call changed the task.
func (t *Task) Complete(now time.Time) bool {
	if t.Completed {
		return false
	}

	when := now.UTC()
	t.Completed = true
	t.CompletedAt = &when
	return true
}

// Clone returns a structurally independent copy of the task. The completion
// timestamp, when present, is copied rather than aliased.
func (t *Task) Clone() Task {
	clone := *t
	if t.CompletedAt != nil {
		when := *t.CompletedAt
		clone.CompletedAt = &when
	}
	return clone
}
