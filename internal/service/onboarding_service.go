package service

import (
	"log/slog"

	"github.com/carepath/onboard-api/internal/catalog"
	"github.com/carepath/onboard-api/internal/config"
	"github.com/carepath/onboard-api/internal/domain"
	"github.com/carepath/onboard-api/internal/events"
	"github.com/carepath/onboard-api/internal/metrics"
	"github.com/carepath/onboard-api/internal/readability"
	"github.com/carepath/onboard-api/internal/store"
)

// PersonaContent is the educational material selected for a persona together
// with its estimated reading grade level.
type PersonaContent struct {
	Variant    domain.ContentVariant `json:"variant"`
	GradeLevel int                   `json:"grade_level"`
}

// OnboardingService exposes every operation of the onboarding workflow for
// one session.
type OnboardingService struct {
	catalog *catalog.Catalog
	session *store.Session
	audit   *store.AuditLog
	cfg     *config.Config
	logger  *slog.Logger
}

// NewOnboardingService wires a service around one session's state.
// It returns an error if any of the required dependencies are nil.
func NewOnboardingService(
	cat *catalog.Catalog,
	session *store.Session,
	audit *store.AuditLog,
	cfg *config.Config,
	logger *slog.Logger,
) (*OnboardingService, error) {
	if cat == nil {
		return nil, domain.NewValidationError("catalog", "cannot be nil", domain.ErrValidation)
	}
	if session == nil {
		return nil, domain.NewValidationError("session", "cannot be nil", domain.ErrValidation)
	}
	if audit == nil {
		return nil, domain.NewValidationError("audit", "cannot be nil", domain.ErrValidation)
	}
	if cfg == nil {
		return nil, domain.NewValidationError("cfg", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &OnboardingService{
		catalog: cat,
		session: session,
		audit:   audit,
		cfg:     cfg,
		logger:  logger.With(slog.String("component", "onboarding_service")),
	}, nil
}

// Personas returns the catalog personas in display order.
func (s *OnboardingService) Personas() []domain.Persona {
	return s.catalog.Personas()
}

// Record returns a read-only snapshot of the persona's patient record.
func (s *OnboardingService) Record(personaID string) (*domain.PatientRecord, error) {
	record, err := s.session.Snapshot(personaID)
	if err != nil {
		return nil, NewOnboardingServiceError("record lookup", "snapshot failed", err)
	}
	return record, nil
}

// CompleteTask marks the task completed on the persona's record.
func (s *OnboardingService) CompleteTask(
	personaID, taskID string,
) (*domain.PatientRecord, error) {
	record, err := s.session.CompleteTask(personaID, taskID)
	if err != nil {
		return nil, NewOnboardingServiceError("task completion", "store update failed", err)
	}
	return record, nil
}

// SubmitQuiz scores the answers, stores the outcome, and auto-completes the
// configured quiz task if one is linked.
func (s *OnboardingService) SubmitQuiz(
	personaID string,
	answers map[string]int,
) (store.QuizOutcome, error) {
	outcome, err := s.session.SubmitQuiz(personaID, answers)
	if err != nil {
		return store.QuizOutcome{}, NewOnboardingServiceError(
			"quiz submission", "store update failed", err)
	}

	if outcome.ComprehensionFlag {
		s.logger.Info("comprehension support flagged",
			slog.String("persona_id", personaID),
			slog.Int("score", outcome.Score))
	}

	return outcome, nil
}

// SetNotes replaces the clinician notes on the persona's record.
func (s *OnboardingService) SetNotes(
	personaID, notes string,
) (*domain.PatientRecord, error) {
	record, err := s.session.SetNotes(personaID, notes)
	if err != nil {
		return nil, NewOnboardingServiceError("notes update", "store update failed", err)
	}
	return record, nil
}

// SendReminder builds a simulated task-reminder event for the persona and
// appends it to the audit log. Returns ErrMessagingDisabled (wrapped) when
// the messaging toggle is off.
func (s *OnboardingService) SendReminder(
	personaID, taskID string,
) (*domain.AuditEvent, error) {
	if !s.cfg.Features.MessagingEnabled {
		return nil, NewOnboardingServiceError(
			"reminder", "messaging toggle is off", ErrMessagingDisabled)
	}

	persona, err := s.catalog.PersonaByID(personaID)
	if err != nil {
		return nil, NewOnboardingServiceError("reminder", "persona lookup failed", err)
	}

	record, err := s.session.Snapshot(personaID)
	if err != nil {
		return nil, NewOnboardingServiceError("reminder", "snapshot failed", err)
	}

	task := record.Task(taskID)
	if task == nil {
		return nil, NewOnboardingServiceError(
			"reminder", "task lookup failed", domain.ErrTaskNotFound)
	}

	event, err := events.NewReminderEvent(persona, *task, s.cfg.Integrations.ReminderChannel)
	if err != nil {
		return nil, NewOnboardingServiceError("reminder", "event construction failed", err)
	}

	if err := s.audit.Append(event); err != nil {
		return nil, NewOnboardingServiceError("reminder", "audit append failed", err)
	}

	return event, nil
}

// SyncRecord builds a simulated record-sync event from the persona's current
// record and appends it to the audit log.
func (s *OnboardingService) SyncRecord(personaID string) (*domain.AuditEvent, error) {
	persona, err := s.catalog.PersonaByID(personaID)
	if err != nil {
		return nil, NewOnboardingServiceError("record sync", "persona lookup failed", err)
	}

	record, err := s.session.Snapshot(personaID)
	if err != nil {
		return nil, NewOnboardingServiceError("record sync", "snapshot failed", err)
	}

	event, err := events.NewRecordSyncEvent(persona, record, s.cfg.Integrations.SurveyProjectID)
	if err != nil {
		return nil, NewOnboardingServiceError("record sync", "event construction failed", err)
	}

	if err := s.audit.Append(event); err != nil {
		return nil, NewOnboardingServiceError("record sync", "audit append failed", err)
	}

	return event, nil
}

// ScheduleCall builds a simulated telehealth call-scheduling event and
// appends it to the audit log.
func (s *OnboardingService) ScheduleCall(
	personaID, reason string,
) (*domain.AuditEvent, error) {
	persona, err := s.catalog.PersonaByID(personaID)
	if err != nil {
		return nil, NewOnboardingServiceError("call scheduling", "persona lookup failed", err)
	}

	event, err := events.NewCallSchedulingEvent(persona, reason)
	if err != nil {
		return nil, NewOnboardingServiceError(
			"call scheduling", "event construction failed", err)
	}

	if err := s.audit.Append(event); err != nil {
		return nil, NewOnboardingServiceError("call scheduling", "audit append failed", err)
	}

	return event, nil
}

// AuditTrail returns the session's audit events, newest first.
func (s *OnboardingService) AuditTrail() []*domain.AuditEvent {
	return s.audit.Events()
}

// MetricsFor computes the derived metrics for one persona.
func (s *OnboardingService) MetricsFor(personaID string) (metrics.PersonaMetrics, error) {
	persona, err := s.catalog.PersonaByID(personaID)
	if err != nil {
		return metrics.PersonaMetrics{}, NewOnboardingServiceError(
			"metrics", "persona lookup failed", err)
	}

	record, err := s.session.Snapshot(personaID)
	if err != nil {
		return metrics.PersonaMetrics{}, NewOnboardingServiceError(
			"metrics", "snapshot failed", err)
	}

	return metrics.Compute(persona, record), nil
}

// Summary computes the clinician summary table: one metrics row per persona,
// in catalog order.
func (s *OnboardingService) Summary() []metrics.PersonaMetrics {
	return metrics.Summarize(s.catalog.Personas(), s.session.Snapshots())
}

// ContentFor selects the educational content variant for a persona and
// estimates its reading grade level. Low-literacy personas receive the
// simple variant; the simplified-content toggle forces it for everyone.
func (s *OnboardingService) ContentFor(personaID string) (PersonaContent, error) {
	persona, err := s.catalog.PersonaByID(personaID)
	if err != nil {
		return PersonaContent{}, NewOnboardingServiceError(
			"content selection", "persona lookup failed", err)
	}

	var variant domain.ContentVariant
	if s.cfg.Features.SimplifiedContent {
		variant = s.catalog.Variant(domain.ContentSimple)
	} else {
		variant = s.catalog.VariantForLiteracy(persona.Literacy)
	}

	return PersonaContent{
		Variant:    variant,
		GradeLevel: readability.EstimateGradeLevel(variant.Body),
	}, nil
}
