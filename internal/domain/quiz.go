package domain

import "errors"

// Quiz-specific validation errors
var (
	// ErrQuestionIDEmpty is returned when a quiz question ID is empty.
	ErrQuestionIDEmpty = errors.New("quiz question ID cannot be empty")

	// ErrQuestionPromptEmpty is returned when a quiz question prompt is empty.
	ErrQuestionPromptEmpty = errors.New("quiz question prompt cannot be empty")

	// ErrQuestionOptionsInvalid is returned when a quiz question has fewer
	// than two answer options.
	ErrQuestionOptionsInvalid = errors.New("quiz question needs at least two options")

	// ErrQuestionAnswerInvalid is returned when the correct-answer index is
	// out of range for the question's options.
	ErrQuestionAnswerInvalid = errors.New("quiz question correct-answer index out of range")
)

// QuizQuestion is a single multiple-choice comprehension question. Questions
// are immutable catalog data; per-patient answers live on the PatientRecord
// as an aggregate score only.
type QuizQuestion struct {
	ID           string   `json:"id"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

// Validate checks if the QuizQuestion has valid data.
func (q *QuizQuestion) Validate() error {
	if q.ID == "" {
		return ErrQuestionIDEmpty
	}

	if q.Prompt == "" {
		return ErrQuestionPromptEmpty
	}

	if len(q.Options) < 2 {
		return ErrQuestionOptionsInvalid
	}

	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ErrQuestionAnswerInvalid
	}

	return nil
}

// IsCorrect reports whether the given selected option index answers the
// question correctly.
func (q *QuizQuestion) IsCorrect(selected int) bool {
	return selected == q.CorrectIndex
}
