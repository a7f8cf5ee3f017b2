package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conductor-ci/conductor/pkg/config"
)

func TestFormatMessage(t *testing.T) {
	cases := []struct {
		name    string
		typ     string
		payload map[string]any
		want    string
	}{
		{
			name:    "human review",
			typ:     TypeHumanReviewNeeded,
			payload: map[string]any{"title": "Migrate DB", "question": "Which region?"},
			want:    `Task "Migrate DB" needs human review: Which region?`,
		},
		{
			name:    "completed",
			typ:     TypeTaskCompleted,
			payload: map[string]any{"title": "Add caching"},
			want:    `Task "Add caching" completed`,
		},
		{
			name:    "failed",
			typ:     TypeTaskFailed,
			payload: map[string]any{"title": "Add caching", "error": "agent exited with code 1"},
			want:    `Task "Add caching" failed: agent exited with code 1`,
		},
		{
			name:    "pr created",
			typ:     TypePRCreated,
			payload: map[string]any{"title": "Add caching", "url": "https://github.com/a/b/pull/9"},
			want:    `Pull request opened for "Add caching": https://github.com/a/b/pull/9`,
		},
		{
			name:    "unknown type falls through",
			typ:     "surprise",
			payload: map[string]any{"title": "T"},
			want:    "surprise: T",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatMessage(tc.typ, tc.payload))
		})
	}
}

func TestDispatcherEnabledChannels(t *testing.T) {
	d := &Dispatcher{cfg: &config.NotificationsConfig{
		Telegram: &config.TelegramChannelConfig{Enabled: true},
		Slack:    &config.SlackChannelConfig{Enabled: false},
		Webhook:  &config.WebhookChannelConfig{Enabled: true},
	}}
	assert.Equal(t, []string{"telegram", "webhook"}, d.enabledChannels())

	d = &Dispatcher{}
	assert.Empty(t, d.enabledChannels(), "nil config disables everything")
}
