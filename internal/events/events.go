package events

import (
	"fmt"
	"time"

	"github.com/carepath/onboard-api/internal/domain"
)

// Default payload constants for the integration stubs. Deployments override
// the channel and project identifier through configuration.
const (
	// DefaultReminderChannel is the messaging channel a reminder pretends
	// to be sent over.
	DefaultReminderChannel = "sms"

	// DefaultSurveyProjectID identifies the survey-system project a record
	// sync pretends to target.
	DefaultSurveyProjectID = "onboarding-intake-v2"

	// CallUrgency is the fixed urgency level attached to simulated
	// telehealth call-scheduling requests.
	CallUrgency = "routine"
)

// NewReminderEvent builds a simulated task-reminder message for the persona:
// the message text interpolates the task label and due window, and the
// payload carries the delivery channel and the persona's language label.
func NewReminderEvent(
	persona domain.Persona,
	task domain.Task,
	channel string,
) (*domain.AuditEvent, error) {
	if channel == "" {
		channel = DefaultReminderChannel
	}

	payload := map[string]any{
		"message":  fmt.Sprintf("Reminder: %s (due in %d days)", task.Label, task.DueInDays),
		"channel":  channel,
		"language": persona.LanguageLabel,
		"task_id":  task.ID,
	}

	return domain.NewAuditEvent(domain.EventReminder, persona.Name, payload)
}

// NewRecordSyncEvent builds a simulated sync of the patient record into the
// survey system: per-task completion state, the quiz outcome when present,
// and the target project identifier.
func NewRecordSyncEvent(
	persona domain.Persona,
	record *domain.PatientRecord,
	projectID string,
) (*domain.AuditEvent, error) {
	if projectID == "" {
		projectID = DefaultSurveyProjectID
	}

	tasks := make([]map[string]any, 0, len(record.Tasks))
	for i := range record.Tasks {
		task := &record.Tasks[i]

		var completedAt any
		if task.CompletedAt != nil {
			completedAt = task.CompletedAt.Format(time.RFC3339)
		}

		tasks = append(tasks, map[string]any{
			"id":           task.ID,
			"completed":    task.Completed,
			"completed_at": completedAt,
		})
	}

	var quizScore any
	if record.QuizScore != nil {
		quizScore = *record.QuizScore
	}
	var comprehensionFlag any
	if record.ComprehensionFlag != nil {
		comprehensionFlag = *record.ComprehensionFlag
	}

	payload := map[string]any{
		"patient":            persona.Name,
		"tasks":              tasks,
		"quiz_score":         quizScore,
		"comprehension_flag": comprehensionFlag,
		"project_id":         projectID,
	}

	return domain.NewAuditEvent(domain.EventRecordSync, persona.Name, payload)
}

// NewCallSchedulingEvent builds a simulated telehealth call-scheduling
// request for the persona with a free-text reason and the fixed urgency.
func NewCallSchedulingEvent(
	persona domain.Persona,
	reason string,
) (*domain.AuditEvent, error) {
	payload := map[string]any{
		"patient": persona.Name,
		"reason":  reason,
		"urgency": CallUrgency,
	}

	return domain.NewAuditEvent(domain.EventCallScheduling, persona.Name, payload)
}
