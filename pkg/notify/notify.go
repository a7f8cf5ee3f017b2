// Package notify delivers lifecycle notifications over telegram, slack,
// or a generic webhook. Delivery is queued and fail-open: a broken
// channel never fails the task that triggered it.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/conductor-ci/conductor/pkg/config"
	"github.com/conductor-ci/conductor/pkg/models"
	"github.com/conductor-ci/conductor/pkg/queue"
	"github.com/conductor-ci/conductor/pkg/services"
	"github.com/conductor-ci/conductor/pkg/slack"
)

// Notification types emitted by the orchestrator.
const (
	TypeHumanReviewNeeded = "human_review_needed"
	TypeTaskCompleted     = "task_completed"
	TypeTaskFailed        = "task_failed"
	TypePRCreated         = "pr_created"
)

// Dispatcher creates notification rows and their delivery jobs.
type Dispatcher struct {
	notifications *services.NotificationService
	jobs          *queue.Service
	cfg           *config.NotificationsConfig
	logger        *slog.Logger
}

// NewDispatcher wires a dispatcher.
func NewDispatcher(notifications *services.NotificationService, jobs *queue.Service, cfg *config.NotificationsConfig, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		notifications: notifications,
		jobs:          jobs,
		cfg:           cfg,
		logger:        logger.With("component", "notify"),
	}
}

// Notify records one notification per enabled channel and enqueues its
// delivery. Errors are logged, never returned: notification failure
// must not fail the triggering operation.
func (d *Dispatcher) Notify(ctx context.Context, taskID, notificationType string, payload map[string]any) {
	for _, channel := range d.enabledChannels() {
		row, err := d.notifications.CreateNotification(ctx, models.CreateNotificationRequest{
			TaskID:  taskID,
			Type:    notificationType,
			Channel: channel,
			Payload: payload,
		})
		if err != nil {
			d.logger.Warn("Failed to record notification",
				"task_id", taskID, "type", notificationType, "channel", channel, "error", err)
			continue
		}
		err = d.jobs.Enqueue(ctx, config.QueueNotifications,
			queue.NotificationJobID(row.ID),
			queue.NotificationJobPayload{NotificationID: row.ID})
		if err != nil {
			d.logger.Warn("Failed to enqueue notification delivery",
				"notification_id", row.ID, "error", err)
		}
	}
}

func (d *Dispatcher) enabledChannels() []string {
	if d.cfg == nil {
		return nil
	}
	var channels []string
	if d.cfg.Telegram != nil && d.cfg.Telegram.Enabled {
		channels = append(channels, "telegram")
	}
	if d.cfg.Slack != nil && d.cfg.Slack.Enabled {
		channels = append(channels, "slack")
	}
	if d.cfg.Webhook != nil && d.cfg.Webhook.Enabled {
		channels = append(channels, "webhook")
	}
	return channels
}

// Deliverer is the notifications-queue handler: it loads the row and
// pushes it over its channel.
type Deliverer struct {
	notifications *services.NotificationService
	cfg           *config.NotificationsConfig
	slack         *slack.Service
	httpClient    *http.Client
	logger        *slog.Logger
}

// NewDeliverer wires a deliverer.
func NewDeliverer(notifications *services.NotificationService, cfg *config.NotificationsConfig, logger *slog.Logger) *Deliverer {
	del := &Deliverer{
		notifications: notifications,
		cfg:           cfg,
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		logger:        logger.With("component", "notify_deliverer"),
	}
	if cfg != nil && cfg.Slack != nil {
		del.slack = slack.NewService(slack.ServiceConfig{
			Token:   os.Getenv(cfg.Slack.TokenEnv),
			Channel: cfg.Slack.Channel,
		})
	}
	return del
}

// Handle delivers one notification job.
func (del *Deliverer) Handle(ctx context.Context, job *queue.Job) error {
	var payload queue.NotificationJobPayload
	if err := job.DecodePayload(&payload); err != nil {
		return err
	}

	row, err := del.notifications.GetNotification(ctx, payload.NotificationID)
	if err != nil {
		return err
	}
	if row.SentAt != nil {
		return nil
	}

	var sendErr error
	switch string(row.Channel) {
	case "telegram":
		sendErr = del.sendTelegram(ctx, row.NotificationType, row.Payload)
	case "slack":
		sendErr = del.sendSlack(ctx, row.TaskID, row.NotificationType, row.Payload)
	case "webhook":
		sendErr = del.sendWebhook(ctx, row.NotificationType, row.Payload)
	default:
		sendErr = fmt.Errorf("unknown channel %q", row.Channel)
	}

	if sendErr != nil {
		if markErr := del.notifications.MarkFailed(ctx, row.ID, sendErr.Error()); markErr != nil {
			del.logger.Error("Failed to record delivery failure",
				"notification_id", row.ID, "error", markErr)
		}
		return sendErr
	}
	return del.notifications.MarkSent(ctx, row.ID)
}

func (del *Deliverer) sendTelegram(ctx context.Context, notificationType string, payload map[string]any) error {
	if del.cfg == nil || del.cfg.Telegram == nil {
		return fmt.Errorf("telegram channel not configured")
	}
	token := os.Getenv(del.cfg.Telegram.TokenEnv)
	if token == "" || del.cfg.Telegram.ChatID == "" {
		return fmt.Errorf("telegram channel not configured")
	}
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", token)
	body := map[string]any{
		"chat_id": del.cfg.Telegram.ChatID,
		"text":    formatMessage(notificationType, payload),
	}
	return del.post(ctx, url, body)
}

func (del *Deliverer) sendSlack(ctx context.Context, taskID, notificationType string, payload map[string]any) error {
	if del.slack == nil {
		return fmt.Errorf("slack channel not configured")
	}
	return del.slack.NotifyTask(ctx, taskID, notificationType, payload)
}

func (del *Deliverer) sendWebhook(ctx context.Context, notificationType string, payload map[string]any) error {
	if del.cfg == nil || del.cfg.Webhook == nil || del.cfg.Webhook.URL == "" {
		return fmt.Errorf("webhook channel not configured")
	}
	return del.post(ctx, del.cfg.Webhook.URL, map[string]any{
		"type":    notificationType,
		"payload": payload,
	})
}

func (del *Deliverer) post(ctx context.Context, url string, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := del.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("deliver notification: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notification endpoint returned HTTP %d", resp.StatusCode)
	}
	return nil
}

// formatMessage renders a human-readable line for chat channels.
func formatMessage(notificationType string, payload map[string]any) string {
	title, _ := payload["title"].(string)
	switch notificationType {
	case TypeHumanReviewNeeded:
		question, _ := payload["question"].(string)
		return fmt.Sprintf("Task %q needs human review: %s", title, question)
	case TypeTaskCompleted:
		return fmt.Sprintf("Task %q completed", title)
	case TypeTaskFailed:
		reason, _ := payload["error"].(string)
		return fmt.Sprintf("Task %q failed: %s", title, reason)
	case TypePRCreated:
		url, _ := payload["url"].(string)
		return fmt.Sprintf("Pull request opened for %q: %s", title, url)
	default:
		return fmt.Sprintf("%s: %s", notificationType, title)
	}
}
