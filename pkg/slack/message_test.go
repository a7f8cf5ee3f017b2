package slack

import (
	"strings"
	"testing"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTaskMessage_Completed(t *testing.T) {
	blocks := BuildTaskMessage("task-1", "task_completed", map[string]any{
		"title": "Add rate limiting",
	})

	require.Len(t, blocks, 2)

	header, ok := blocks[0].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, ":white_check_mark:")
	assert.Contains(t, header.Text.Text, "Task Completed")
	assert.Contains(t, header.Text.Text, "Add rate limiting")

	footer, ok := blocks[1].(*goslack.ContextBlock)
	require.True(t, ok)
	require.Len(t, footer.ContextElements.Elements, 1)
	marker := footer.ContextElements.Elements[0].(*goslack.TextBlockObject)
	assert.Equal(t, "task:task-1", marker.Text)
}

func TestBuildTaskMessage_Failed(t *testing.T) {
	blocks := BuildTaskMessage("task-2", "task_failed", map[string]any{
		"title": "Fix flaky test",
		"error": "code review failed after maximum iterations",
	})

	require.Len(t, blocks, 3)

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":x:")
	assert.Contains(t, header.Text.Text, "Task Failed")

	detail := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, detail.Text.Text, "*Error:*")
	assert.Contains(t, detail.Text.Text, "code review failed after maximum iterations")
}

func TestBuildTaskMessage_HumanReview(t *testing.T) {
	blocks := BuildTaskMessage("task-3", "human_review_needed", map[string]any{
		"title":    "Migrate billing schema",
		"question": "Should existing invoices be backfilled?",
	})

	require.Len(t, blocks, 3)

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, "Human Review Needed")

	detail := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, detail.Text.Text, "Should existing invoices be backfilled?")
}

func TestBuildTaskMessage_PRCreated(t *testing.T) {
	blocks := BuildTaskMessage("task-4", "pr_created", map[string]any{
		"title": "Add rate limiting",
		"url":   "https://github.com/acme/api/pull/42",
	})

	require.Len(t, blocks, 3)

	action, ok := blocks[1].(*goslack.ActionBlock)
	require.True(t, ok)
	require.Len(t, action.Elements.ElementSet, 1)
	btn, ok := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	require.True(t, ok)
	assert.Equal(t, "View Pull Request", btn.Text.Text)
	assert.Equal(t, "https://github.com/acme/api/pull/42", btn.URL)
}

func TestBuildTaskMessage_UnknownType(t *testing.T) {
	blocks := BuildTaskMessage("task-5", "something_new", map[string]any{
		"title": "Mystery",
	})

	require.Len(t, blocks, 2)
	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":information_source:")
	assert.Contains(t, header.Text.Text, "something_new")
}

func TestTruncateForSlack(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", truncateForSlack("hello"))
	})

	t.Run("exact limit unchanged", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength)
		assert.Equal(t, text, truncateForSlack(text))
	})

	t.Run("over limit truncated", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength+100)
		result := truncateForSlack(text)
		assert.True(t, len(result) < len(text))
		assert.Contains(t, result, "truncated")
	})

	t.Run("multi-byte runes not split", func(t *testing.T) {
		text := strings.Repeat("🔥", maxBlockTextLength+10)
		result := truncateForSlack(text)
		assert.Contains(t, result, "truncated")
		assert.True(t, utf8.ValidString(result))
		prefix := strings.Split(result, "\n\n_...")[0]
		assert.Equal(t, maxBlockTextLength, utf8.RuneCountInString(prefix))
	})
}
