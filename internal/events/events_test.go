package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carepath/onboard-api/internal/domain"
)

var testPersona = domain.Persona{
	ID:            "p1",
	Name:          "Maria Alvarez",
	Age:           67,
	Language:      "es",
	LanguageLabel: "Spanish",
	Literacy:      domain.LiteracyLow,
	TechAccess:    domain.TechAccessLow,
	RiskScore:     72,
}

func TestNewReminderEvent(t *testing.T) {
	t.Parallel()
	task := domain.Task{ID: "t1", Label: "Read welcome packet", DueInDays: 1}

	event, err := NewReminderEvent(testPersona, task, "")
	require.NoError(t, err)

	assert.Equal(t, domain.EventReminder, event.Type)
	assert.Equal(t, "Maria Alvarez", event.PersonaName)
	assert.False(t, event.When.IsZero())
	assert.Equal(t, "Reminder: Read welcome packet (due in 1 days)", event.Payload["message"])
	assert.Equal(t, DefaultReminderChannel, event.Payload["channel"])
	assert.Equal(t, "Spanish", event.Payload["language"])

	// Configured channel overrides the default.
	event, err = NewReminderEvent(testPersona, task, "voice")
	require.NoError(t, err)
	assert.Equal(t, "voice", event.Payload["channel"])
}

func TestNewRecordSyncEvent(t *testing.T) {
	t.Parallel()
	record, err := domain.NewPatientRecord("p1", []domain.Task{
		{ID: "t1", Label: "Read welcome packet", DueInDays: 1},
		{ID: "t2", Label: "Complete intake survey", DueInDays: 2},
	})
	require.NoError(t, err)

	record.Tasks[0].Complete(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	record.SetQuizOutcome(33)

	event, err := NewRecordSyncEvent(testPersona, record, "")
	require.NoError(t, err)

	assert.Equal(t, domain.EventRecordSync, event.Type)
	assert.Equal(t, "Maria Alvarez", event.Payload["patient"])
	assert.Equal(t, DefaultSurveyProjectID, event.Payload["project_id"])
	assert.Equal(t, 33, event.Payload["quiz_score"])
	assert.Equal(t, true, event.Payload["comprehension_flag"])

	tasks, ok := event.Payload["tasks"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, tasks, 2)
	assert.Equal(t, true, tasks[0]["completed"])
	assert.Equal(t, "2026-03-14T09:00:00Z", tasks[0]["completed_at"])
	assert.Equal(t, false, tasks[1]["completed"])
	assert.Nil(t, tasks[1]["completed_at"])
}

func TestNewRecordSyncEventUnansweredQuiz(t *testing.T) {
	t.Parallel()
	record, err := domain.NewPatientRecord("p1", []domain.Task{
		{ID: "t1", Label: "Read welcome packet", DueInDays: 1},
	})
	require.NoError(t, err)

	event, err := NewRecordSyncEvent(testPersona, record, "study-42")
	require.NoError(t, err)

	assert.Nil(t, event.Payload["quiz_score"])
	assert.Nil(t, event.Payload["comprehension_flag"])
	assert.Equal(t, "study-42", event.Payload["project_id"])
}

func TestNewCallSchedulingEvent(t *testing.T) {
	t.Parallel()
	event, err := NewCallSchedulingEvent(testPersona, "low comprehension score")
	require.NoError(t, err)

	assert.Equal(t, domain.EventCallScheduling, event.Type)
	assert.Equal(t, "Maria Alvarez", event.Payload["patient"])
	assert.Equal(t, "low comprehension score", event.Payload["reason"])
	assert.Equal(t, CallUrgency, event.Payload["urgency"])
}

func TestConstructorsHaveNoSideEffects(t *testing.T) {
	t.Parallel()
	record, err := domain.NewPatientRecord("p1", []domain.Task{
		{ID: "t1", Label: "Read welcome packet", DueInDays: 1},
	})
	require.NoError(t, err)

	// Repeated construction is safe and leaves inputs untouched.
	for i := 0; i < 3; i++ {
		_, err := NewRecordSyncEvent(testPersona, record, "")
		require.NoError(t, err)
	}
	assert.False(t, record.Tasks[0].Completed)
	assert.Nil(t, record.QuizScore)
}
