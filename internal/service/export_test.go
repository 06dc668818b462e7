package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildExportedConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		doc := BuildExportedConfig(testConfig())

		assert.Equal(t, "onboarding-intake-v2", doc.SurveyProjectID)
		assert.Equal(t, "Enabled", doc.MessagingFlow)
		assert.Equal(t, telehealthEscalationPolicy, doc.TelehealthEscalation)
		assert.Equal(t, contentGradeTargetByLiteracy, doc.ContentGradeTarget)
		assert.Equal(t, multilingualDisabled, doc.MultilingualSupport)
	})

	t.Run("all toggles flipped", func(t *testing.T) {
		t.Parallel()
		cfg := testConfig()
		cfg.Features.MessagingEnabled = false
		cfg.Features.SimplifiedContent = true
		cfg.Features.Multilingual = true

		doc := BuildExportedConfig(cfg)

		assert.Equal(t, "Disabled", doc.MessagingFlow)
		assert.Equal(t, contentGradeTargetSimplified, doc.ContentGradeTarget)
		assert.Equal(t, multilingualEnabled, doc.MultilingualSupport)
	})
}

func TestExportedConfigSerializes(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, nil)

	data, err := json.Marshal(svc.ExportConfig())
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))

	// The document is descriptive only; every field is a display string.
	for _, key := range []string{
		"survey_project_id",
		"messaging_flow",
		"telehealth_escalation",
		"content_grade_target",
		"multilingual_support",
	} {
		assert.NotEmpty(t, decoded[key], "field %s should be present", key)
	}
}
