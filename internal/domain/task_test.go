package domain

import (
	"testing"
	"time"
)

func TestTaskComplete(t *testing.T) {
	t.Parallel() // Enable parallel execution
	task := Task{ID: "t1", Label: "Read welcome packet", DueInDays: 1}

	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	changed := task.Complete(now)

	if !changed {
		t.Error("Expected first completion to report a change")
	}
	if !task.Completed {
		t.Error("Expected task to be completed")
	}
	if task.CompletedAt == nil || !task.CompletedAt.Equal(now) {
		t.Errorf("Expected completion timestamp %v, got %v", now, task.CompletedAt)
	}

	// Second completion is a no-op: first-call timestamp wins.
	later := now.Add(2 * time.Hour)
	changed = task.Complete(later)

	if changed {
		t.Error("Expected second completion to be a no-op")
	}
	if !task.CompletedAt.Equal(now) {
		t.Errorf("Expected original timestamp %v to win, got %v", now, task.CompletedAt)
	}
}

func TestTaskValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution
	now := time.Now().UTC()

	validTask := Task{ID: "t1", Label: "Read welcome packet", DueInDays: 1}
	if err := validTask.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Empty ID
	invalid := validTask
	invalid.ID = ""
	if err := invalid.Validate(); err != ErrTaskIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrTaskIDEmpty, err)
	}

	// Empty label
	invalid = validTask
	invalid.Label = ""
	if err := invalid.Validate(); err != ErrTaskLabelEmpty {
		t.Errorf("Expected error %v, got %v", ErrTaskLabelEmpty, err)
	}

	// Completed without timestamp
	invalid = validTask
	invalid.Completed = true
	if err := invalid.Validate(); err != ErrTaskCompletionInconsistent {
		t.Errorf("Expected error %v, got %v", ErrTaskCompletionInconsistent, err)
	}

	// Timestamp without completion
	invalid = validTask
	invalid.CompletedAt = &now
	if err := invalid.Validate(); err != ErrTaskCompletionInconsistent {
		t.Errorf("Expected error %v, got %v", ErrTaskCompletionInconsistent, err)
	}
}

func TestTaskClone(t *testing.T) {
	t.Parallel() // Enable parallel execution
	task := Task{ID: "t2", Label: "Complete intake survey", DueInDays: 2}
	task.Complete(time.Now().UTC())

	clone := task.Clone()

	if clone.CompletedAt == task.CompletedAt {
		t.Error("Expected cloned completion timestamp to be an independent copy")
	}
	if !clone.CompletedAt.Equal(*task.CompletedAt) {
		t.Errorf("Expected equal timestamps, got %v and %v", clone.CompletedAt, task.CompletedAt)
	}
}
