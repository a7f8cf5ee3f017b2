package config

import (
	"fmt"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// RepoConfig is the repository-root .conductor.yml schema. It controls
// decomposition, agent models, workflow triggers, and per-repo limits.
type RepoConfig struct {
	Version       string            `yaml:"version"`
	Project       ProjectConfig     `yaml:"project"`
	Subprojects   SubprojectsConfig `yaml:"subprojects"`
	Agents        AgentsConfig      `yaml:"agents"`
	Workflow      WorkflowConfig    `yaml:"workflow"`
	Notifications RepoNotifications `yaml:"notifications"`
	Security      SecurityConfig    `yaml:"security"`
}

// ProjectConfig identifies the project.
type ProjectConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// SubprojectsConfig controls how the repository is split into logical
// subprojects for decomposition.
type SubprojectsConfig struct {
	AutoDetect AutoDetectConfig     `yaml:"autoDetect"`
	Explicit   []ExplicitSubproject `yaml:"explicit"`
}

// AutoDetectConfig enables glob-based subproject detection.
type AutoDetectConfig struct {
	Enabled  *bool    `yaml:"enabled"`
	Patterns []string `yaml:"patterns"`
}

// ExplicitSubproject is a fixed subproject entry.
type ExplicitSubproject struct {
	Path         string `yaml:"path"`
	Name         string `yaml:"name"`
	Language     string `yaml:"language,omitempty"`
	TestCommand  string `yaml:"testCommand,omitempty"`
	BuildCommand string `yaml:"buildCommand,omitempty"`
}

// AgentsConfig holds per-role agent settings.
type AgentsConfig struct {
	Master     AgentRoleConfig `yaml:"master"`
	SubAgent   SubAgentConfig  `yaml:"subAgent"`
	CodeReview AgentRoleConfig `yaml:"codeReview"`
}

// AgentRoleConfig is common to all agent roles.
type AgentRoleConfig struct {
	Model    string `yaml:"model"`
	MaxTurns int    `yaml:"maxTurns"`
}

// SubAgentConfig extends the role config with parallelism and wall clock.
type SubAgentConfig struct {
	AgentRoleConfig `yaml:",inline"`
	MaxParallel     int `yaml:"maxParallel"`
	TimeoutMinutes  int `yaml:"timeoutMinutes"`
}

// WorkflowConfig controls triggers and the review/PR pipeline.
type WorkflowConfig struct {
	Triggers         TriggersConfig `yaml:"triggers"`
	BranchPattern    string         `yaml:"branchPattern"`
	AutoMerge        bool           `yaml:"autoMerge"`
	RequireSmokeTest bool           `yaml:"requireSmokeTest"`
	SmokeTestWebhook string         `yaml:"smokeTestWebhook"`
	MaxIterations    int            `yaml:"maxIterations"`
	PassThreshold    int            `yaml:"passThreshold"`
}

// TriggersConfig names the board columns that drive the lifecycle.
type TriggersConfig struct {
	StartColumn string `yaml:"startColumn"`
}

// RepoNotifications enables channels per repository.
type RepoNotifications struct {
	Telegram bool `yaml:"telegram"`
	Slack    bool `yaml:"slack"`
	Webhook  bool `yaml:"webhook"`
}

// SecurityConfig limits what agents may touch. BlockedPatterns are
// enforced via the runner's tool policy; the PR limits are advisory.
type SecurityConfig struct {
	BlockedPatterns []string `yaml:"blockedPatterns"`
	MaxFilesPerPR   int      `yaml:"maxFilesPerPr"`
	MaxLinesPerPR   int      `yaml:"maxLinesPerPr"`
}

var versionPattern = regexp.MustCompile(`^\d+\.\d+$`)

// DefaultRepoConfig returns the behaviour used when a repository carries
// no .conductor.yml.
func DefaultRepoConfig() *RepoConfig {
	enabled := true
	return &RepoConfig{
		Version: "1.0",
		Subprojects: SubprojectsConfig{
			AutoDetect: AutoDetectConfig{
				Enabled:  &enabled,
				Patterns: []string{"packages/*", "apps/*"},
			},
		},
		Agents: AgentsConfig{
			SubAgent: SubAgentConfig{
				MaxParallel:    5,
				TimeoutMinutes: 30,
			},
		},
		Workflow: WorkflowConfig{
			Triggers:      TriggersConfig{StartColumn: "Todo"},
			BranchPattern: "conductor/{task_id}/{short_description}",
			MaxIterations: 3,
			PassThreshold: 0,
		},
	}
}

// ParseRepoConfig parses .conductor.yml content, applies defaults, and
// validates. Empty content yields the defaults.
func ParseRepoConfig(data []byte) (*RepoConfig, error) {
	cfg := DefaultRepoConfig()
	if len(data) == 0 {
		return cfg, nil
	}

	var user RepoConfig
	if err := yaml.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	applyRepoConfig(cfg, &user)

	if err := validateRepoConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyRepoConfig overlays user-set values onto the defaults.
func applyRepoConfig(cfg, user *RepoConfig) {
	if user.Version != "" {
		cfg.Version = user.Version
	}
	cfg.Project = user.Project
	if user.Subprojects.AutoDetect.Enabled != nil {
		cfg.Subprojects.AutoDetect.Enabled = user.Subprojects.AutoDetect.Enabled
	}
	if len(user.Subprojects.AutoDetect.Patterns) > 0 {
		cfg.Subprojects.AutoDetect.Patterns = user.Subprojects.AutoDetect.Patterns
	}
	cfg.Subprojects.Explicit = user.Subprojects.Explicit

	if user.Agents.Master.Model != "" {
		cfg.Agents.Master.Model = user.Agents.Master.Model
	}
	if user.Agents.Master.MaxTurns > 0 {
		cfg.Agents.Master.MaxTurns = user.Agents.Master.MaxTurns
	}
	if user.Agents.CodeReview.Model != "" {
		cfg.Agents.CodeReview.Model = user.Agents.CodeReview.Model
	}
	if user.Agents.CodeReview.MaxTurns > 0 {
		cfg.Agents.CodeReview.MaxTurns = user.Agents.CodeReview.MaxTurns
	}
	if user.Agents.SubAgent.Model != "" {
		cfg.Agents.SubAgent.Model = user.Agents.SubAgent.Model
	}
	if user.Agents.SubAgent.MaxTurns > 0 {
		cfg.Agents.SubAgent.MaxTurns = user.Agents.SubAgent.MaxTurns
	}
	if user.Agents.SubAgent.MaxParallel > 0 {
		cfg.Agents.SubAgent.MaxParallel = user.Agents.SubAgent.MaxParallel
	}
	if user.Agents.SubAgent.TimeoutMinutes > 0 {
		cfg.Agents.SubAgent.TimeoutMinutes = user.Agents.SubAgent.TimeoutMinutes
	}

	if user.Workflow.Triggers.StartColumn != "" {
		cfg.Workflow.Triggers.StartColumn = user.Workflow.Triggers.StartColumn
	}
	if user.Workflow.BranchPattern != "" {
		cfg.Workflow.BranchPattern = user.Workflow.BranchPattern
	}
	cfg.Workflow.AutoMerge = user.Workflow.AutoMerge
	cfg.Workflow.RequireSmokeTest = user.Workflow.RequireSmokeTest
	cfg.Workflow.SmokeTestWebhook = user.Workflow.SmokeTestWebhook
	if user.Workflow.MaxIterations > 0 {
		cfg.Workflow.MaxIterations = user.Workflow.MaxIterations
	}
	if user.Workflow.PassThreshold > 0 {
		cfg.Workflow.PassThreshold = user.Workflow.PassThreshold
	}

	cfg.Notifications = user.Notifications
	cfg.Security = user.Security
}

func validateRepoConfig(cfg *RepoConfig) error {
	if !versionPattern.MatchString(cfg.Version) {
		return NewValidationError("repo", ".conductor.yml", "version", ErrInvalidValue)
	}
	if cfg.Agents.SubAgent.MaxParallel < 1 || cfg.Agents.SubAgent.MaxParallel > 10 {
		return NewValidationError("repo", ".conductor.yml", "agents.subAgent.maxParallel", ErrInvalidValue)
	}
	if cfg.Agents.SubAgent.TimeoutMinutes < 1 || cfg.Agents.SubAgent.TimeoutMinutes > 120 {
		return NewValidationError("repo", ".conductor.yml", "agents.subAgent.timeoutMinutes", ErrInvalidValue)
	}
	for _, sp := range cfg.Subprojects.Explicit {
		if sp.Path == "" {
			return NewValidationError("repo", ".conductor.yml", "subprojects.explicit.path", ErrMissingRequiredField)
		}
	}
	return nil
}

// AutoDetectEnabled reports whether glob-based detection is on.
func (c *RepoConfig) AutoDetectEnabled() bool {
	return c.Subprojects.AutoDetect.Enabled == nil || *c.Subprojects.AutoDetect.Enabled
}

// SubAgentTimeout returns the per-subtask wall clock as a duration.
func (c *RepoConfig) SubAgentTimeout() time.Duration {
	return time.Duration(c.Agents.SubAgent.TimeoutMinutes) * time.Minute
}
