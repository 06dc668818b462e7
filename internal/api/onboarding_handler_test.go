package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carepath/onboard-api/internal/catalog"
	"github.com/carepath/onboard-api/internal/config"
	"github.com/carepath/onboard-api/internal/domain"
	"github.com/carepath/onboard-api/internal/metrics"
	"github.com/carepath/onboard-api/internal/service"
	"github.com/carepath/onboard-api/internal/store"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:     config.ServerConfig{Port: 8080, LogLevel: "error"},
		Onboarding: config.OnboardingConfig{QuizTaskID: "t3"},
		Integrations: config.IntegrationsConfig{
			SurveyProjectID: "onboarding-intake-v2",
			ReminderChannel: "sms",
		},
		Features: config.FeaturesConfig{MessagingEnabled: true},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}

	cat := catalog.New()
	session, err := store.NewSession(
		cat.Personas(), cat.BaseTasks(), cat.Questions(), nil,
		store.WithQuizTaskID(cfg.Onboarding.QuizTaskID))
	require.NoError(t, err)

	svc, err := service.NewOnboardingService(cat, session, store.NewAuditLog(nil), cfg, nil)
	require.NoError(t, err)

	return NewRouter(NewOnboardingHandler(svc, nil))
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListPersonas(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodGet, "/personas", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var personas []domain.Persona
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &personas))
	assert.Len(t, personas, 4)
}

func TestGetRecord(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodGet, "/personas/p1/record", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var record domain.PatientRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, "p1", record.PersonaID)
	assert.Len(t, record.Tasks, 4)

	rec = doRequest(t, router, http.MethodGet, "/personas/p99/record", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCompleteTaskEndpoint(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodPost, "/personas/p1/tasks/t1/complete", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var record domain.PatientRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.True(t, record.Task("t1").Completed)
	assert.NotNil(t, record.Task("t1").CompletedAt)

	rec = doRequest(t, router, http.MethodPost, "/personas/p1/tasks/t99/complete", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var errResp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "Task not found", errResp["error"])
	assert.NotEmpty(t, errResp["trace_id"], "error responses carry the trace ID")
}

func TestSubmitQuizEndpoint(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodPost, "/personas/p1/quiz",
		`{"answers":{"q1":1,"q2":2,"q3":1}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result QuizResultResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 100, result.Score)
	assert.False(t, result.ComprehensionFlag)
	assert.Equal(t, "t3", result.AutoCompletedTask)

	// Malformed body
	rec = doRequest(t, router, http.MethodPost, "/personas/p1/quiz", `{"answers":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Missing answers
	rec = doRequest(t, router, http.MethodPost, "/personas/p1/quiz", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown question
	rec = doRequest(t, router, http.MethodPost, "/personas/p1/quiz", `{"answers":{"q9":0}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendReminderEndpoint(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodPost, "/personas/p1/reminders", `{"task_id":"t1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var event domain.AuditEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &event))
	assert.Equal(t, domain.EventReminder, event.Type)
	assert.Equal(t, "Maria Alvarez", event.PersonaName)

	rec = doRequest(t, router, http.MethodPost, "/personas/p1/reminders", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendReminderDisabledByToggle(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	cfg.Features.MessagingEnabled = false
	router := newTestRouter(t, cfg)

	rec := doRequest(t, router, http.MethodPost, "/personas/p1/reminders", `{"task_id":"t1"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuditTrailEndpoint(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, nil)

	require.Equal(t, http.StatusCreated,
		doRequest(t, router, http.MethodPost, "/personas/p1/reminders", `{"task_id":"t1"}`).Code)
	require.Equal(t, http.StatusCreated,
		doRequest(t, router, http.MethodPost, "/personas/p1/sync", "").Code)
	require.Equal(t, http.StatusCreated,
		doRequest(t, router, http.MethodPost, "/personas/p1/calls", `{"reason":"follow-up"}`).Code)

	rec := doRequest(t, router, http.MethodGet, "/audit", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var events []domain.AuditEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 3)

	// Newest first.
	assert.Equal(t, domain.EventCallScheduling, events[0].Type)
	assert.Equal(t, domain.EventRecordSync, events[1].Type)
	assert.Equal(t, domain.EventReminder, events[2].Type)
}

func TestSummaryEndpoint(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, nil)

	require.Equal(t, http.StatusOK,
		doRequest(t, router, http.MethodPost, "/personas/p1/tasks/t1/complete", "").Code)
	require.Equal(t, http.StatusOK,
		doRequest(t, router, http.MethodPost, "/personas/p1/tasks/t2/complete", "").Code)

	rec := doRequest(t, router, http.MethodGet, "/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []metrics.PersonaMetrics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 4)
	assert.Equal(t, "p1", rows[0].PersonaID)
	assert.Equal(t, 50, rows[0].AdherenceRate)
}

func TestContentEndpoint(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodGet, "/personas/p1/content", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var content service.PersonaContent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &content))
	assert.Equal(t, domain.ContentSimple, content.Variant.Tier)
	assert.NotZero(t, content.GradeLevel)
}

func TestExportConfigEndpoint(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodGet, "/config/export", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "onboarding-intake-v2", doc["survey_project_id"])
	assert.Equal(t, "Enabled", doc["messaging_flow"])
}

func TestNotesEndpoint(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodPost, "/personas/p3/notes",
		`{"notes":"needs interpreter"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var record domain.PatientRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	require.NotNil(t, record.Notes)
	assert.Equal(t, "needs interpreter", *record.Notes)
}
