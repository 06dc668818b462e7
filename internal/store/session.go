package store

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/carepath/onboard-api/internal/domain"
)

// QuizOutcome is the result of scoring a quiz submission.
type QuizOutcome struct {
	Score             int
	ComprehensionFlag bool

	// AutoCompletedTask is the ID of the linked quiz task that the
	// submission auto-completed, or "" when nothing was completed.
	AutoCompletedTask string
}

// SessionOption customizes session behavior at construction time.
type SessionOption func(*Session)

// WithQuizTaskID sets which task, if any, is auto-completed when a quiz is
// submitted. An empty ID disables the linkage.
func WithQuizTaskID(taskID string) SessionOption {
	return func(s *Session) {
		s.quizTaskID = taskID
	}
}

// WithClock overrides the time source used to stamp task completions.
// Intended for tests.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		s.now = now
	}
}

// Session owns all per-persona patient records for one onboarding session.
// Records are created by deep-copying the base task templates, mutated
// through the session's methods, and discarded with the session.
type Session struct {
	mu      sync.RWMutex
	records map[string]*domain.PatientRecord

	questions  []domain.QuizQuestion
	quizTaskID string
	now        func() time.Time
	logger     *slog.Logger
}

// defaultQuizTaskID is the task the reference data links to quiz
// submission.
const defaultQuizTaskID = "t3"

// NewSession initializes a session with one record per persona, each holding
// an independent copy of the base task templates and no quiz outcome.
func NewSession(
	personas []domain.Persona,
	baseTasks []domain.Task,
	questions []domain.QuizQuestion,
	logger *slog.Logger,
	opts ...SessionOption,
) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Session{
		records:    make(map[string]*domain.PatientRecord, len(personas)),
		questions:  questions,
		quizTaskID: defaultQuizTaskID,
		now:        time.Now,
		logger:     logger.With(slog.String("component", "session_store")),
	}

	for _, opt := range opts {
		opt(s)
	}

	for _, persona := range personas {
		record, err := domain.NewPatientRecord(persona.ID, baseTasks)
		if err != nil {
			return nil, fmt.Errorf("initializing record for persona %s: %w", persona.ID, err)
		}
		s.records[persona.ID] = record
	}

	return s, nil
}

// Snapshot returns a read-only deep copy of the record for the given
// persona. Returns domain.ErrPersonaNotFound if the session has no such
// record.
func (s *Session) Snapshot(personaID string) (*domain.PatientRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[personaID]
	if !ok {
		return nil, fmt.Errorf("snapshot of persona %s: %w", personaID, domain.ErrPersonaNotFound)
	}

	return record.Clone(), nil
}

// Snapshots returns deep copies of every record, keyed by persona ID.
func (s *Session) Snapshots() map[string]*domain.PatientRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshots := make(map[string]*domain.PatientRecord, len(s.records))
	for id, record := range s.records {
		snapshots[id] = record.Clone()
	}
	return snapshots
}

// CompleteTask marks the named task completed on the persona's record and
// returns an updated snapshot. Completing an already-completed task is a
// no-op that keeps the original timestamp. Unknown persona or task IDs are
// reported as wrapped not-found errors rather than the silent no-op of the
// reference behavior.
func (s *Session) CompleteTask(personaID, taskID string) (*domain.PatientRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, task, err := s.findTask(personaID, taskID)
	if err != nil {
		return nil, err
	}

	if task.Complete(s.now()) {
		s.logger.Debug("task completed",
			slog.String("persona_id", personaID),
			slog.String("task_id", taskID))
	}

	return record.Clone(), nil
}

// SubmitQuiz scores the given answers (question ID -> selected option
// index), stores the score and derived comprehension flag on the record,
// and auto-completes the linked quiz task when one is configured and still
// incomplete. Answers referencing unknown question IDs are rejected.
func (s *Session) SubmitQuiz(personaID string, answers map[string]int) (QuizOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[personaID]
	if !ok {
		return QuizOutcome{}, fmt.Errorf(
			"quiz submission for persona %s: %w", personaID, domain.ErrPersonaNotFound)
	}

	known := make(map[string]domain.QuizQuestion, len(s.questions))
	for _, q := range s.questions {
		known[q.ID] = q
	}
	for questionID := range answers {
		if _, ok := known[questionID]; !ok {
			return QuizOutcome{}, fmt.Errorf(
				"quiz submission references %s: %w", questionID, domain.ErrQuestionNotFound)
		}
	}

	correct := 0
	for _, q := range s.questions {
		if selected, answered := answers[q.ID]; answered && q.IsCorrect(selected) {
			correct++
		}
	}

	score := roundPercent(correct, len(s.questions))
	record.SetQuizOutcome(score)

	outcome := QuizOutcome{
		Score:             score,
		ComprehensionFlag: score < domain.ComprehensionThreshold,
	}

	if s.quizTaskID != "" {
		if task := record.Task(s.quizTaskID); task != nil && task.Complete(s.now()) {
			outcome.AutoCompletedTask = s.quizTaskID
		}
	}

	s.logger.Debug("quiz submitted",
		slog.String("persona_id", personaID),
		slog.Int("score", score),
		slog.Bool("comprehension_flag", outcome.ComprehensionFlag))

	return outcome, nil
}

// SetNotes replaces the free-text notes on the persona's record.
func (s *Session) SetNotes(personaID, notes string) (*domain.PatientRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[personaID]
	if !ok {
		return nil, fmt.Errorf("notes for persona %s: %w", personaID, domain.ErrPersonaNotFound)
	}

	record.SetNotes(notes)
	return record.Clone(), nil
}

// findTask locates a record and one of its tasks under the write lock.
func (s *Session) findTask(personaID, taskID string) (*domain.PatientRecord, *domain.Task, error) {
	record, ok := s.records[personaID]
	if !ok {
		return nil, nil, fmt.Errorf(
			"task completion for persona %s: %w", personaID, domain.ErrPersonaNotFound)
	}

	task := record.Task(taskID)
	if task == nil {
		return nil, nil, fmt.Errorf(
			"task %s for persona %s: %w", taskID, personaID, domain.ErrTaskNotFound)
	}

	return record, task, nil
}

// roundPercent returns round(100 * part / total), or 0 when total is 0.
func roundPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return (part*100 + total/2) / total
}
