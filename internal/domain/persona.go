package domain

import "errors"

// Persona-specific validation errors
var (
	// ErrPersonaIDEmpty is returned when a persona ID is empty.
	ErrPersonaIDEmpty = errors.New("persona ID cannot be empty")

	// ErrPersonaNameEmpty is returned when a persona display name is empty.
	ErrPersonaNameEmpty = errors.New("persona name cannot be empty")

	// ErrPersonaAgeInvalid is returned when a persona age is not positive.
	ErrPersonaAgeInvalid = errors.New("persona age must be positive")

	// ErrPersonaLiteracyInvalid is returned when a literacy level is not one
	// of the known tiers.
	ErrPersonaLiteracyInvalid = errors.New("persona literacy level is invalid")

	// ErrPersonaRiskInvalid is returned when a static risk score falls
	// outside the 0-100 range.
	ErrPersonaRiskInvalid = errors.New("persona risk score must be in [0,100]")
)

// LiteracyLevel classifies a persona's health literacy tier. It drives which
// content variant the persona is shown.
type LiteracyLevel string

// Valid literacy levels.
const (
	LiteracyLow    LiteracyLevel = "low"
	LiteracyMedium LiteracyLevel = "medium"
	LiteracyHigh   LiteracyLevel = "high"
)

// IsValid reports whether the literacy level is one of the known tiers.
func (l LiteracyLevel) IsValid() bool {
	switch l {
	case LiteracyLow, LiteracyMedium, LiteracyHigh:
		return true
	}
	return false
}

// TechAccess classifies how reliably a persona can reach digital channels.
type TechAccess string

// Valid technology-access tiers.
const (
	TechAccessLow    TechAccess = "low"
	TechAccessMedium TechAccess = "medium"
	TechAccessHigh   TechAccess = "high"
)

// Persona is a simulated patient profile with fixed demographic and risk
// attributes. Personas are immutable after catalog load; all mutable
// per-patient state lives on the PatientRecord keyed by the persona ID.
type Persona struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Age           int           `json:"age"`
	Language      string        `json:"language"`       // BCP 47 style code, e.g. "es"
	LanguageLabel string        `json:"language_label"` // human-readable, e.g. "Spanish"
	Literacy      LiteracyLevel `json:"literacy"`
	TechAccess    TechAccess    `json:"tech_access"`
	RiskScore     int           `json:"risk_score"` // static risk, 0-100
}

// Validate checks if the Persona has valid data.
// Returns an error if any field fails validation.
func (p *Persona) Validate() error {
	if p.ID == "" {
		return ErrPersonaIDEmpty
	}

	if p.Name == "" {
		return ErrPersonaNameEmpty
	}

	if p.Age <= 0 {
		return ErrPersonaAgeInvalid
	}

	if !p.Literacy.IsValid() {
		return ErrPersonaLiteracyInvalid
	}

	if p.RiskScore < 0 || p.RiskScore > 100 {
		return ErrPersonaRiskInvalid
	}

	return nil
}
