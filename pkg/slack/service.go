// Package slack posts task lifecycle notifications to a Slack channel
// using Block Kit messages. Messages for the same task are threaded
// under the first one posted for it.
package slack

import (
	"context"
	"log/slog"
	"time"
)

const postTimeout = 10 * time.Second

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token   string
	Channel string
}

// Service handles Slack notification delivery.
type Service struct {
	client *Client
	logger *slog.Logger
}

// NewService creates a new Slack notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client: NewClient(cfg.Token, cfg.Channel),
		logger: slog.Default().With("component", "slack-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client) *Service {
	return &Service{
		client: client,
		logger: slog.Default().With("component", "slack-service"),
	}
}

// NotifyTask posts one task notification. Later notifications for the
// same task are threaded under the first; a failed thread lookup falls
// back to an unthreaded post.
func (s *Service) NotifyTask(ctx context.Context, taskID, notificationType string, payload map[string]any) error {
	threadTS, err := s.client.FindTaskThread(ctx, taskID)
	if err != nil {
		s.logger.Warn("Thread lookup failed, posting unthreaded",
			"task_id", taskID, "error", err)
		threadTS = ""
	}
	blocks := BuildTaskMessage(taskID, notificationType, payload)
	return s.client.PostMessage(ctx, blocks, threadTS, postTimeout)
}
