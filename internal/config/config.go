package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server       ServerConfig       `mapstructure:"server"       validate:"required"`
	Onboarding   OnboardingConfig   `mapstructure:"onboarding"`
	Integrations IntegrationsConfig `mapstructure:"integrations" validate:"required"`
	Features     FeaturesConfig     `mapstructure:"features"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// OnboardingConfig tunes the onboarding workflow itself.
type OnboardingConfig struct {
	// QuizTaskID names the task that is auto-completed when a quiz is
	// submitted. Empty disables the linkage.
	QuizTaskID string `mapstructure:"quiz_task_id"`
}

// IntegrationsConfig carries the identifiers stamped onto the simulated
// outbound integration events.
type IntegrationsConfig struct {
	SurveyProjectID string `mapstructure:"survey_project_id" validate:"required"`
	ReminderChannel string `mapstructure:"reminder_channel"  validate:"required"`
}

// FeaturesConfig holds the demo's feature toggles. All three surface in the
// exported configuration document; MessagingEnabled additionally gates
// reminder events, and SimplifiedContent forces the simple content variant
// for every persona regardless of literacy tier.
type FeaturesConfig struct {
	MessagingEnabled  bool `mapstructure:"messaging_enabled"`
	SimplifiedContent bool `mapstructure:"simplified_content"`
	Multilingual      bool `mapstructure:"multilingual"`
}
