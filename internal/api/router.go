package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/carepath/onboard-api/internal/api/middleware"
)

// NewRouter builds the HTTP route tree for the onboarding API.
func NewRouter(h *OnboardingHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Trace)

	r.Get("/health", h.Health)

	r.Route("/personas", func(r chi.Router) {
		r.Get("/", h.ListPersonas)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/record", h.GetRecord)
			r.Get("/content", h.GetContent)
			r.Get("/metrics", h.GetMetrics)
			r.Post("/tasks/{taskId}/complete", h.CompleteTask)
			r.Post("/quiz", h.SubmitQuiz)
			r.Post("/notes", h.SetNotes)
			r.Post("/reminders", h.SendReminder)
			r.Post("/sync", h.SyncRecord)
			r.Post("/calls", h.ScheduleCall)
		})
	})

	r.Get("/audit", h.GetAudit)
	r.Get("/summary", h.GetSummary)
	r.Get("/config/export", h.ExportConfig)

	return r
}
