package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductor-ci/conductor/pkg/models"
)

func TestExtractJSONBlock(t *testing.T) {
	t.Run("json fence", func(t *testing.T) {
		text := "prose\n```json\n{\"a\": 1}\n```\nmore prose"
		assert.Equal(t, `{"a": 1}`, extractJSONBlock(text))
	})

	t.Run("bare fence", func(t *testing.T) {
		text := "```\n{\"a\": 1}\n```"
		assert.Equal(t, `{"a": 1}`, extractJSONBlock(text))
	})

	t.Run("unfenced object", func(t *testing.T) {
		assert.Equal(t, `{"a": 1}`, extractJSONBlock("  {\"a\": 1}  "))
	})

	t.Run("first fence wins", func(t *testing.T) {
		text := "```json\n{\"first\": true}\n```\n```json\n{\"second\": true}\n```"
		assert.Equal(t, `{"first": true}`, extractJSONBlock(text))
	})

	t.Run("no json", func(t *testing.T) {
		assert.Empty(t, extractJSONBlock("just words"))
	})
}

func TestReviewSystemPrompt_AdvertisesModelSeverities(t *testing.T) {
	for _, severity := range []models.IssueSeverity{
		models.SeverityError,
		models.SeverityWarning,
		models.SeveritySuggestion,
	} {
		assert.Contains(t, reviewSystemPrompt, `"`+string(severity)+`"`)
	}
	assert.NotContains(t, reviewSystemPrompt, `"info"`)
}

func TestFormatIssue(t *testing.T) {
	issue := models.ReviewIssue{
		File:       "pkg/api/server.go",
		Line:       42,
		Severity:   models.SeverityError,
		Message:    "unchecked error",
		Suggestion: "wrap and return it",
	}
	assert.Equal(t,
		"[error] pkg/api/server.go:42 unchecked error (wrap and return it)",
		formatIssue(issue))
}

func TestFormatIssue_Minimal(t *testing.T) {
	issue := models.ReviewIssue{
		File:     "main.go",
		Severity: models.SeverityWarning,
		Message:  "unused variable",
	}
	assert.Equal(t, "[warning] main.go unused variable", formatIssue(issue))
}

func TestParseReviewOutcome(t *testing.T) {
	response := "```json\n" + `{
		"result": "changes_requested",
		"summary": "two problems",
		"issues": [
			{"file": "a.go", "line": 3, "severity": "error", "message": "broken"},
			{"file": "b.go", "severity": "suggestion", "message": "rename"}
		]
	}` + "\n```"

	outcome, err := parseReviewOutcome(response)
	require.NoError(t, err)
	assert.Equal(t, models.ReviewChangesRequested, outcome.Result)
	require.Len(t, outcome.Issues, 2)
	assert.Equal(t, 1, outcome.ErrorCount())
}

func TestParseReviewOutcome_RejectsUnknownResult(t *testing.T) {
	_, err := parseReviewOutcome(`{"result": "maybe", "summary": "s"}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not approved or changes_requested")
}

func TestParseReviewOutcome_NoJSON(t *testing.T) {
	_, err := parseReviewOutcome("looks good to me")
	require.Error(t, err)
}
