package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conductor-ci/conductor/pkg/metrics"
	"github.com/conductor-ci/conductor/pkg/webhook"
)

// maxWebhookBody caps the accepted payload size.
const maxWebhookBody = 5 << 20

// handleWebhook verifies and dispatches a forge event delivery.
func (s *Server) handleWebhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}

	sig := c.GetHeader(webhook.HeaderSignature)
	if err := webhook.VerifySignature(s.webhookSecret, body, sig); err != nil {
		if errors.Is(err, webhook.ErrInvalidSignature) {
			s.logger.Warn("Webhook rejected, signature mismatch",
				"event", c.GetHeader(webhook.HeaderEvent))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	event := c.GetHeader(webhook.HeaderEvent)
	ctx := c.Request.Context()
	switch event {
	case webhook.EventProjectsV2Item:
		var payload webhook.ProjectsV2ItemEvent
		if err := json.Unmarshal(body, &payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payload"})
			return
		}
		err = s.intake.HandleProjectsV2Item(ctx, &payload)
	case webhook.EventPullRequest:
		var payload webhook.PullRequestEvent
		if err := json.Unmarshal(body, &payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payload"})
			return
		}
		err = s.intake.HandlePullRequest(ctx, &payload)
	case webhook.EventIssueComment:
		var payload webhook.IssueCommentEvent
		if err := json.Unmarshal(body, &payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payload"})
			return
		}
		err = s.intake.HandleIssueComment(ctx, &payload)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	if err != nil {
		s.logger.Error("Webhook handling failed", "event", event, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	metrics.WebhookEvents.WithLabelValues(event).Inc()
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
