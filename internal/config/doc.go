// Package config defines the application configuration and its loading
// logic. Values come from defaults, an optional config.yaml, and
// ONBOARD_-prefixed environment variables, with the environment taking
// precedence. Loaded configuration is validated before use.
package config
