package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/carepath/onboard-api/internal/events"
)

// Load reads configuration from defaults, an optional config.yaml in the
// working directory, and ONBOARD_-prefixed environment variables (e.g.
// ONBOARD_SERVER_PORT). Environment variables take precedence over file
// values, which take precedence over defaults.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; everything has a default.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("ONBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers a default for every known key so that AutomaticEnv
// can bind each of them.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("onboarding.quiz_task_id", "t3")

	v.SetDefault("integrations.survey_project_id", events.DefaultSurveyProjectID)
	v.SetDefault("integrations.reminder_channel", events.DefaultReminderChannel)

	v.SetDefault("features.messaging_enabled", true)
	v.SetDefault("features.simplified_content", false)
	v.SetDefault("features.multilingual", false)
}
