package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carepath/onboard-api/internal/api/shared"
	"github.com/carepath/onboard-api/internal/platform/logger"
	"github.com/carepath/onboard-api/internal/service"
)

// OnboardingHandler handles all onboarding-related HTTP requests.
type OnboardingHandler struct {
	svc    *service.OnboardingService
	logger *slog.Logger
}

// NewOnboardingHandler creates a new OnboardingHandler.
func NewOnboardingHandler(svc *service.OnboardingService, log *slog.Logger) *OnboardingHandler {
	if svc == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("service cannot be nil for OnboardingHandler")
	}
	if log == nil {
		log = slog.Default()
	}

	return &OnboardingHandler{
		svc:    svc,
		logger: log.With(slog.String("component", "onboarding_handler")),
	}
}

// Health handles GET /health requests.
func (h *OnboardingHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}

// ListPersonas handles GET /personas requests.
func (h *OnboardingHandler) ListPersonas(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.svc.Personas())
}

// GetRecord handles GET /personas/{id}/record requests.
func (h *OnboardingHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	personaID := chi.URLParam(r, "id")

	record, err := h.svc.Record(personaID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, record)
}

// GetContent handles GET /personas/{id}/content requests. It returns the
// content variant selected for the persona together with its estimated
// reading grade level.
func (h *OnboardingHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	personaID := chi.URLParam(r, "id")

	content, err := h.svc.ContentFor(personaID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, content)
}

// GetMetrics handles GET /personas/{id}/metrics requests.
func (h *OnboardingHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	personaID := chi.URLParam(r, "id")

	m, err := h.svc.MetricsFor(personaID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, m)
}

// CompleteTask handles POST /personas/{id}/tasks/{taskId}/complete requests.
func (h *OnboardingHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	personaID := chi.URLParam(r, "id")
	taskID := chi.URLParam(r, "taskId")

	record, err := h.svc.CompleteTask(personaID, taskID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task completed",
		slog.String("persona_id", personaID),
		slog.String("task_id", taskID))
	shared.RespondWithJSON(w, r, http.StatusOK, record)
}

// SubmitQuiz handles POST /personas/{id}/quiz requests.
func (h *OnboardingHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	personaID := chi.URLParam(r, "id")

	var req SubmitQuizRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Quiz answers are required")
		return
	}

	outcome, err := h.svc.SubmitQuiz(personaID, req.Answers)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("quiz scored",
		slog.String("persona_id", personaID),
		slog.Int("score", outcome.Score))
	shared.RespondWithJSON(w, r, http.StatusOK, QuizResultResponse{
		Score:             outcome.Score,
		ComprehensionFlag: outcome.ComprehensionFlag,
		AutoCompletedTask: outcome.AutoCompletedTask,
	})
}

// SetNotes handles POST /personas/{id}/notes requests.
func (h *OnboardingHandler) SetNotes(w http.ResponseWriter, r *http.Request) {
	personaID := chi.URLParam(r, "id")

	var req SetNotesRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.svc.SetNotes(personaID, req.Notes)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, record)
}

// SendReminder handles POST /personas/{id}/reminders requests.
func (h *OnboardingHandler) SendReminder(w http.ResponseWriter, r *http.Request) {
	personaID := chi.URLParam(r, "id")

	var req SendReminderRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Task ID is required")
		return
	}

	event, err := h.svc.SendReminder(personaID, req.TaskID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, event)
}

// SyncRecord handles POST /personas/{id}/sync requests.
func (h *OnboardingHandler) SyncRecord(w http.ResponseWriter, r *http.Request) {
	personaID := chi.URLParam(r, "id")

	event, err := h.svc.SyncRecord(personaID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, event)
}

// ScheduleCall handles POST /personas/{id}/calls requests.
func (h *OnboardingHandler) ScheduleCall(w http.ResponseWriter, r *http.Request) {
	personaID := chi.URLParam(r, "id")

	var req ScheduleCallRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Reason is required")
		return
	}

	event, err := h.svc.ScheduleCall(personaID, req.Reason)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, event)
}

// GetAudit handles GET /audit requests, returning the audit log newest
// first.
func (h *OnboardingHandler) GetAudit(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.svc.AuditTrail())
}

// GetSummary handles GET /summary requests, returning the clinician summary
// table.
func (h *OnboardingHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.svc.Summary())
}

// ExportConfig handles GET /config/export requests.
func (h *OnboardingHandler) ExportConfig(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.svc.ExportConfig())
}
