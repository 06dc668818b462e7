package api

// Common request/response structures

// SubmitQuizRequest defines the payload for the quiz submission endpoint.
// Answers map question IDs to the selected option index.
type SubmitQuizRequest struct {
	Answers map[string]int `json:"answers" validate:"required,min=1"`
}

// QuizResultResponse defines the successful response for quiz submission.
type QuizResultResponse struct {
	Score             int    `json:"score"`
	ComprehensionFlag bool   `json:"comprehension_flag"`
	AutoCompletedTask string `json:"auto_completed_task,omitempty"`
}

// SetNotesRequest defines the payload for the notes endpoint.
type SetNotesRequest struct {
	Notes string `json:"notes"`
}

// SendReminderRequest defines the payload for the reminder endpoint.
type SendReminderRequest struct {
	TaskID string `json:"task_id" validate:"required"`
}

// ScheduleCallRequest defines the payload for the call-scheduling endpoint.
type ScheduleCallRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// HealthResponse defines the liveness probe response.
type HealthResponse struct {
	Status string `json:"status"`
}
