package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepoConfig_Empty(t *testing.T) {
	cfg, err := ParseRepoConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "1.0", cfg.Version)
	assert.True(t, cfg.AutoDetectEnabled())
	assert.Equal(t, []string{"packages/*", "apps/*"}, cfg.Subprojects.AutoDetect.Patterns)
	assert.Equal(t, 5, cfg.Agents.SubAgent.MaxParallel)
	assert.Equal(t, 30*time.Minute, cfg.SubAgentTimeout())
	assert.Equal(t, "conductor/{task_id}/{short_description}", cfg.Workflow.BranchPattern)
	assert.Equal(t, 3, cfg.Workflow.MaxIterations)
	assert.Equal(t, "Todo", cfg.Workflow.Triggers.StartColumn)
}

func TestParseRepoConfig_Overlay(t *testing.T) {
	data := []byte(`
version: "1.0"
project:
  name: payments
agents:
  master:
    model: strong-model
  subAgent:
    maxParallel: 2
    timeoutMinutes: 10
workflow:
  branchPattern: "bot/{task_id}"
  maxIterations: 5
  requireSmokeTest: true
security:
  blockedPatterns:
    - "**/*.pem"
  maxFilesPerPr: 30
`)
	cfg, err := ParseRepoConfig(data)
	require.NoError(t, err)

	assert.Equal(t, "payments", cfg.Project.Name)
	assert.Equal(t, "strong-model", cfg.Agents.Master.Model)
	assert.Equal(t, 2, cfg.Agents.SubAgent.MaxParallel)
	assert.Equal(t, 10*time.Minute, cfg.SubAgentTimeout())
	assert.Equal(t, "bot/{task_id}", cfg.Workflow.BranchPattern)
	assert.Equal(t, 5, cfg.Workflow.MaxIterations)
	assert.True(t, cfg.Workflow.RequireSmokeTest)
	assert.Equal(t, []string{"**/*.pem"}, cfg.Security.BlockedPatterns)
	assert.Equal(t, 30, cfg.Security.MaxFilesPerPR)

	// Unset fields keep their defaults.
	assert.Equal(t, []string{"packages/*", "apps/*"}, cfg.Subprojects.AutoDetect.Patterns)
}

func TestParseRepoConfig_InvalidYAML(t *testing.T) {
	_, err := ParseRepoConfig([]byte("workflow: [not a map"))
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestParseRepoConfig_Validation(t *testing.T) {
	t.Run("bad version", func(t *testing.T) {
		_, err := ParseRepoConfig([]byte(`version: "banana"`))
		require.Error(t, err)
	})

	t.Run("maxParallel out of range", func(t *testing.T) {
		_, err := ParseRepoConfig([]byte("agents:\n  subAgent:\n    maxParallel: 50"))
		require.Error(t, err)
	})

	t.Run("timeout out of range", func(t *testing.T) {
		_, err := ParseRepoConfig([]byte("agents:\n  subAgent:\n    timeoutMinutes: 600"))
		require.Error(t, err)
	})

	t.Run("explicit subproject needs path", func(t *testing.T) {
		_, err := ParseRepoConfig([]byte("subprojects:\n  explicit:\n    - name: web"))
		require.Error(t, err)
	})
}

func TestAutoDetectEnabled(t *testing.T) {
	off := false
	cfg := DefaultRepoConfig()
	cfg.Subprojects.AutoDetect.Enabled = &off
	assert.False(t, cfg.AutoDetectEnabled())

	cfg.Subprojects.AutoDetect.Enabled = nil
	assert.True(t, cfg.AutoDetectEnabled(), "nil means enabled")
}
