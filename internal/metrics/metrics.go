// Package metrics computes the derived per-persona indicators shown on the
// clinician summary: adherence rate, quiz score, and the composite risk-flag
// count. Everything here is a pure map-and-reduce over catalog personas and
// patient records; there is no hidden state.
package metrics

import "github.com/carepath/onboard-api/internal/domain"

// Risk indicator thresholds.
const (
	// LowAdherenceThreshold flags personas whose adherence rate falls
	// below this percentage.
	LowAdherenceThreshold = 60

	// HighStaticRiskThreshold flags personas whose static risk score
	// exceeds this value.
	HighStaticRiskThreshold = 50
)

// PersonaMetrics is one row of the clinician summary table.
type PersonaMetrics struct {
	PersonaID     string `json:"persona_id"`
	Name          string `json:"name"`
	AdherenceRate int    `json:"adherence_rate"` // percent of tasks completed
	QuizScore     int    `json:"quiz_score"`     // 0 when the quiz is unanswered
	RiskFlagCount int    `json:"risk_flag_count"`
}

// Compute derives the metrics for one persona from its record and static
// risk attributes. The risk flag count sums three independent binary
// indicators: a raised comprehension flag, an adherence rate below
// LowAdherenceThreshold, and a static risk score above
// HighStaticRiskThreshold.
func Compute(persona domain.Persona, record *domain.PatientRecord) PersonaMetrics {
	m := PersonaMetrics{
		PersonaID:     persona.ID,
		Name:          persona.Name,
		AdherenceRate: adherenceRate(record),
	}

	if record.QuizScore != nil {
		m.QuizScore = *record.QuizScore
	}

	if record.ComprehensionFlag != nil && *record.ComprehensionFlag {
		m.RiskFlagCount++
	}
	if m.AdherenceRate < LowAdherenceThreshold {
		m.RiskFlagCount++
	}
	if persona.RiskScore > HighStaticRiskThreshold {
		m.RiskFlagCount++
	}

	return m
}

// Summarize computes the metrics row for every persona, in the given persona
// order. Personas without a record are skipped.
func Summarize(
	personas []domain.Persona,
	records map[string]*domain.PatientRecord,
) []PersonaMetrics {
	rows := make([]PersonaMetrics, 0, len(personas))
	for _, persona := range personas {
		record, ok := records[persona.ID]
		if !ok {
			continue
		}
		rows = append(rows, Compute(persona, record))
	}
	return rows
}

// adherenceRate returns round(100 * completed / total), or 0 for an empty
// task list.
func adherenceRate(record *domain.PatientRecord) int {
	total := len(record.Tasks)
	if total == 0 {
		return 0
	}
	return (record.CompletedTaskCount()*100 + total/2) / total
}
