package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/conductor-ci/conductor/ent"
	"github.com/conductor-ci/conductor/ent/notification"
	"github.com/conductor-ci/conductor/pkg/models"
)

// NotificationService manages outbound notification rows. Delivery is
// performed by the notifications queue; this service only records state.
type NotificationService struct {
	client *ent.Client
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(client *ent.Client) *NotificationService {
	return &NotificationService{client: client}
}

// CreateNotification inserts a pending notification and returns it.
func (s *NotificationService) CreateNotification(ctx context.Context, req models.CreateNotificationRequest) (*ent.Notification, error) {
	if req.TaskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if req.Channel == "" {
		return nil, NewValidationError("channel", "required")
	}

	n, err := s.client.Notification.Create().
		SetID(uuid.New().String()).
		SetTaskID(req.TaskID).
		SetNotificationType(req.Type).
		SetChannel(notification.Channel(req.Channel)).
		SetPayload(req.Payload).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return n, nil
}

// GetNotification retrieves a notification by ID.
func (s *NotificationService) GetNotification(ctx context.Context, id string) (*ent.Notification, error) {
	n, err := s.client.Notification.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return n, nil
}

// MarkSent records successful delivery.
func (s *NotificationService) MarkSent(ctx context.Context, id string) error {
	if err := s.client.Notification.UpdateOneID(id).
		SetSentAt(time.Now()).
		ClearError().
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark notification sent: %w", err)
	}
	return nil
}

// MarkFailed records a delivery failure.
func (s *NotificationService) MarkFailed(ctx context.Context, id, errMsg string) error {
	if err := s.client.Notification.UpdateOneID(id).
		SetError(errMsg).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark notification failed: %w", err)
	}
	return nil
}

// DeleteSentBefore removes delivered notifications older than cutoff.
// Used by the retention cleanup loop.
func (s *NotificationService) DeleteSentBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Notification.Delete().
		Where(
			notification.SentAtNotNil(),
			notification.SentAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old notifications: %w", err)
	}
	return n, nil
}
