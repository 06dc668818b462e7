package service

import "github.com/carepath/onboard-api/internal/config"

// Policy description strings surfaced in the exported configuration
// document.
const (
	telehealthEscalationPolicy = "Unresolved comprehension flags are routed to a telehealth call request"

	contentGradeTargetSimplified = "Target a simple reading level for all patients"
	contentGradeTargetByLiteracy = "Match content tier to each patient's assessed literacy level"

	multilingualEnabled  = "Preferred-language content enabled"
	multilingualDisabled = "English content only"
)

// ExportedConfig is the descriptive configuration document a deployment can
// download. It is a serialization target only: nothing in the system parses
// or consumes it.
type ExportedConfig struct {
	SurveyProjectID      string `json:"survey_project_id"`
	MessagingFlow        string `json:"messaging_flow"`
	TelehealthEscalation string `json:"telehealth_escalation"`
	ContentGradeTarget   string `json:"content_grade_target"`
	MultilingualSupport  string `json:"multilingual_support"`
}

// BuildExportedConfig renders the current configuration as the exported
// document, translating the boolean toggles into their display strings.
func BuildExportedConfig(cfg *config.Config) ExportedConfig {
	doc := ExportedConfig{
		SurveyProjectID:      cfg.Integrations.SurveyProjectID,
		TelehealthEscalation: telehealthEscalationPolicy,
	}

	if cfg.Features.MessagingEnabled {
		doc.MessagingFlow = "Enabled"
	} else {
		doc.MessagingFlow = "Disabled"
	}

	if cfg.Features.SimplifiedContent {
		doc.ContentGradeTarget = contentGradeTargetSimplified
	} else {
		doc.ContentGradeTarget = contentGradeTargetByLiteracy
	}

	if cfg.Features.Multilingual {
		doc.MultilingualSupport = multilingualEnabled
	} else {
		doc.MultilingualSupport = multilingualDisabled
	}

	return doc
}

// ExportConfig returns the exported configuration document for this
// session's configuration.
func (s *OnboardingService) ExportConfig() ExportedConfig {
	return BuildExportedConfig(s.cfg)
}
