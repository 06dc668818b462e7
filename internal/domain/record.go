package domain

import "errors"

// ComprehensionThreshold is the quiz score below which a patient is flagged
// as needing comprehension support.
const ComprehensionThreshold = 67

// PatientRecord-specific validation errors
var (
	// ErrRecordPersonaIDEmpty is returned when a record's persona ID is empty.
	ErrRecordPersonaIDEmpty = errors.New("record persona ID cannot be empty")

	// ErrRecordScoreInvalid is returned when a stored quiz score falls
	// outside the 0-100 range.
	ErrRecordScoreInvalid = errors.New("record quiz score must be in [0,100]")

	// ErrRecordFlagInconsistent is returned when the comprehension flag does
	// not agree with the stored quiz score.
	ErrRecordFlagInconsistent = errors.New(
		"record comprehension flag must equal (quiz score < threshold)")

	// ErrRecordFlagWithoutScore is returned when a comprehension flag is set
	// but no quiz score is stored.
	ErrRecordFlagWithoutScore = errors.New(
		"record comprehension flag requires a quiz score")
)

// PatientRecord holds all mutable per-patient onboarding state for one
// session: the patient's own copy of the task list, the quiz outcome, and
// free-text clinician notes. A record is created once per persona at session
// start and discarded with the session; nothing is persisted.
//
// QuizScore, ComprehensionFlag, and Notes are nil until set.
type PatientRecord struct {
	PersonaID         string  `json:"persona_id"`
	Tasks             []Task  `json:"tasks"`
	QuizScore         *int    `json:"quiz_score,omitempty"`
	ComprehensionFlag *bool   `json:"comprehension_flag,omitempty"`
	Notes             *string `json:"notes,omitempty"`
}

// NewPatientRecord creates a record for the given persona by deep-copying
// the base task templates, so that mutating one persona's tasks can never
// affect another's.
func NewPatientRecord(personaID string, baseTasks []Task) (*PatientRecord, error) {
	record := &PatientRecord{
		PersonaID: personaID,
		Tasks:     make([]Task, 0, len(baseTasks)),
	}

	for i := range baseTasks {
		record.Tasks = append(record.Tasks, baseTasks[i].Clone())
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks the record's invariants: a non-empty persona reference, a
// quiz score in range, a comprehension flag consistent with the score, and
// every task internally consistent.
func (r *PatientRecord) Validate() error {
	if r.PersonaID == "" {
		return ErrRecordPersonaIDEmpty
	}

	if r.QuizScore != nil && (*r.QuizScore < 0 || *r.QuizScore > 100) {
		return ErrRecordScoreInvalid
	}

	if r.ComprehensionFlag != nil {
		if r.QuizScore == nil {
			return ErrRecordFlagWithoutScore
		}
		if *r.ComprehensionFlag != (*r.QuizScore < ComprehensionThreshold) {
			return ErrRecordFlagInconsistent
		}
	}

	for i := range r.Tasks {
		if err := r.Tasks[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Task returns a pointer to the task with the given ID, or nil if the record
// has no such task. The pointer aliases the record's own task slice.
func (r *PatientRecord) Task(taskID string) *Task {
	for i := range r.Tasks {
		if r.Tasks[i].ID == taskID {
			return &r.Tasks[i]
		}
	}
	return nil
}

// SetQuizOutcome stores the quiz score and the derived comprehension flag.
// The flag is always recomputed from the score; callers cannot set it
// independently.
func (r *PatientRecord) SetQuizOutcome(score int) {
	flag := score < ComprehensionThreshold
	r.QuizScore = &score
	r.ComprehensionFlag = &flag
}

// SetNotes replaces the free-text notes on the record.
func (r *PatientRecord) SetNotes(notes string) {
	r.Notes = &notes
}

// CompletedTaskCount returns the number of completed tasks on the record.
func (r *PatientRecord) CompletedTaskCount() int {
	count := 0
	for i := range r.Tasks {
		if r.Tasks[i].Completed {
			count++
		}
	}
	return count
}

// Clone returns a structurally independent deep copy of the record.
func (r *PatientRecord) Clone() *PatientRecord {
	clone := &PatientRecord{
		PersonaID: r.PersonaID,
		Tasks:     make([]Task, 0, len(r.Tasks)),
	}

	for i := range r.Tasks {
		clone.Tasks = append(clone.Tasks, r.Tasks[i].Clone())
	}

	if r.QuizScore != nil {
		score := *r.QuizScore
		clone.QuizScore = &score
	}
	if r.ComprehensionFlag != nil {
		flag := *r.ComprehensionFlag
		clone.ComprehensionFlag = &flag
	}
	if r.Notes != nil {
		notes := *r.Notes
		clone.Notes = &notes
	}

	return clone
}
