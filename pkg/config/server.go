package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ServerConfig is the orchestrator's own configuration, loaded from
// conductor.yaml in the config directory. Per-repository behaviour lives
// in .conductor.yml inside each repository (see RepoConfig).
type ServerConfig struct {
	// WorkspacesRoot is the directory holding per-task working trees.
	WorkspacesRoot string `yaml:"workspaces_root"`

	// Queue holds worker pool and retry settings.
	Queue *QueueConfig `yaml:"queue"`

	// Agent holds coding-agent CLI settings.
	Agent *AgentCLIConfig `yaml:"agent"`

	// GitHub holds forge credentials and endpoints.
	GitHub *GitHubConfig `yaml:"github"`

	// Notifications holds outbound channel settings.
	Notifications *NotificationsConfig `yaml:"notifications"`

	// Retention controls background cleanup.
	Retention *RetentionConfig `yaml:"retention"`

	// WebhookSecretEnv names the env var holding the webhook HMAC secret.
	WebhookSecretEnv string `yaml:"webhook_secret_env"`

	// BotLogin is the forge account name of the orchestrator; comments
	// authored by it are ignored when collecting human feedback.
	BotLogin string `yaml:"bot_login"`
}

// AgentCLIConfig configures how the external coding agent is spawned.
type AgentCLIConfig struct {
	// Binary is the agent executable on PATH.
	Binary string `yaml:"binary"`

	// CredentialEnv names the env var carrying the LLM API key; it is
	// passed through to the child process environment.
	CredentialEnv string `yaml:"credential_env"`

	// DefaultModel is used when the repository config names none.
	DefaultModel string `yaml:"default_model"`

	// DefaultTimeout caps a single invocation's wall clock.
	DefaultTimeout time.Duration `yaml:"default_timeout"`
}

// GitHubConfig holds forge access settings.
type GitHubConfig struct {
	// APIBaseURL is the REST endpoint (override for GHE).
	APIBaseURL string `yaml:"api_base_url"`

	// GraphQLURL is the GraphQL endpoint used for Projects V2.
	GraphQLURL string `yaml:"graphql_url"`

	// AppID identifies the forge application.
	AppID int64 `yaml:"app_id"`

	// PrivateKeyEnv names the env var holding the app signing key (PEM).
	PrivateKeyEnv string `yaml:"private_key_env"`

	// BotName and BotEmail form the commit identity for workspace commits.
	BotName  string `yaml:"bot_name"`
	BotEmail string `yaml:"bot_email"`
}

// NotificationsConfig groups outbound delivery channels. A channel with
// no endpoint configured is disabled.
type NotificationsConfig struct {
	Telegram *TelegramChannelConfig `yaml:"telegram"`
	Slack    *SlackChannelConfig    `yaml:"slack"`
	Webhook  *WebhookChannelConfig  `yaml:"webhook"`
}

// TelegramChannelConfig configures Telegram bot delivery.
type TelegramChannelConfig struct {
	Enabled  bool   `yaml:"enabled"`
	TokenEnv string `yaml:"token_env"`
	ChatID   string `yaml:"chat_id"`
}

// SlackChannelConfig configures Slack bot delivery.
type SlackChannelConfig struct {
	Enabled  bool   `yaml:"enabled"`
	TokenEnv string `yaml:"token_env"`
	Channel  string `yaml:"channel"`
}

// WebhookChannelConfig configures generic webhook delivery.
type WebhookChannelConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
}

// RetentionConfig controls background cleanup behaviour.
type RetentionConfig struct {
	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// NotificationTTL is how long delivered notifications are kept.
	NotificationTTL time.Duration `yaml:"notification_ttl"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		CleanupInterval: 12 * time.Hour,
		NotificationTTL: 30 * 24 * time.Hour,
	}
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		WorkspacesRoot: "/var/lib/conductor/workspaces",
		Queue:          DefaultQueueConfig(),
		Agent: &AgentCLIConfig{
			Binary:         "claude",
			CredentialEnv:  "ANTHROPIC_API_KEY",
			DefaultModel:   "",
			DefaultTimeout: 30 * time.Minute,
		},
		GitHub: &GitHubConfig{
			APIBaseURL:    "https://api.github.com",
			GraphQLURL:    "https://api.github.com/graphql",
			PrivateKeyEnv: "GITHUB_APP_PRIVATE_KEY",
			BotName:       "conductor[bot]",
			BotEmail:      "conductor[bot]@users.noreply.github.com",
		},
		Notifications:    &NotificationsConfig{},
		Retention:        DefaultRetentionConfig(),
		WebhookSecretEnv: "WEBHOOK_SECRET",
		BotLogin:         "conductor[bot]",
	}
}

// Initialize loads, merges, and validates the server configuration from
// configDir/conductor.yaml. A missing file yields the defaults.
func Initialize(_ context.Context, configDir string) (*ServerConfig, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg := DefaultServerConfig()

	path := filepath.Join(configDir, "conductor.yaml")
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		log.Info("No conductor.yaml found, using defaults")
	case err != nil:
		return nil, NewLoadError("conductor.yaml", err)
	default:
		data = ExpandEnv(data)
		var user ServerConfig
		if err := yaml.Unmarshal(data, &user); err != nil {
			return nil, NewLoadError("conductor.yaml", fmt.Errorf("%w: %v", ErrInvalidYAML, err))
		}
		// User values override defaults; unset fields keep the default.
		if err := mergo.Merge(cfg, &user, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge server config: %w", err)
		}
	}

	if err := validateServerConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	log.Info("Configuration initialized",
		"workspaces_root", cfg.WorkspacesRoot,
		"agent_binary", cfg.Agent.Binary)
	return cfg, nil
}

func validateServerConfig(cfg *ServerConfig) error {
	if cfg.WorkspacesRoot == "" {
		return NewValidationError("server", "conductor", "workspaces_root", ErrMissingRequiredField)
	}
	if cfg.Agent == nil || cfg.Agent.Binary == "" {
		return NewValidationError("server", "conductor", "agent.binary", ErrMissingRequiredField)
	}
	if cfg.Queue.MaxAttempts < 1 {
		return NewValidationError("server", "conductor", "queue.max_attempts", ErrInvalidValue)
	}
	if cfg.Queue.BackoffBase <= 0 || cfg.Queue.BackoffCap < cfg.Queue.BackoffBase {
		return NewValidationError("server", "conductor", "queue.backoff", ErrInvalidValue)
	}
	return nil
}
