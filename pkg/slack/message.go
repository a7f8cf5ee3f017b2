package slack

import (
	"fmt"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var typeEmoji = map[string]string{
	"human_review_needed": ":raising_hand:",
	"task_completed":      ":white_check_mark:",
	"task_failed":         ":x:",
	"pr_created":          ":git:",
}

var typeLabel = map[string]string{
	"human_review_needed": "Human Review Needed",
	"task_completed":      "Task Completed",
	"task_failed":         "Task Failed",
	"pr_created":          "Pull Request Opened",
}

// BuildTaskMessage creates Block Kit blocks for a task lifecycle
// notification. The payload keys match what the orchestrator emits:
// title, question, error, url.
func BuildTaskMessage(taskID, notificationType string, payload map[string]any) []goslack.Block {
	emoji := typeEmoji[notificationType]
	if emoji == "" {
		emoji = ":information_source:"
	}
	label := typeLabel[notificationType]
	if label == "" {
		label = notificationType
	}
	title, _ := payload["title"].(string)

	header := fmt.Sprintf("%s *%s*", emoji, label)
	if title != "" {
		header += fmt.Sprintf("\n%s", title)
	}

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, header, false, false),
			nil, nil,
		),
	}

	switch notificationType {
	case "human_review_needed":
		if question, _ := payload["question"].(string); question != "" {
			blocks = append(blocks, goslack.NewSectionBlock(
				goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(question), false, false),
				nil, nil,
			))
		}
	case "task_failed":
		if reason, _ := payload["error"].(string); reason != "" {
			text := fmt.Sprintf("*Error:*\n%s", truncateForSlack(reason))
			blocks = append(blocks, goslack.NewSectionBlock(
				goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
				nil, nil,
			))
		}
	case "pr_created":
		if url, _ := payload["url"].(string); url != "" {
			btn := goslack.NewButtonBlockElement("", "",
				goslack.NewTextBlockObject(goslack.PlainTextType, "View Pull Request", false, false))
			btn.URL = url
			blocks = append(blocks, goslack.NewActionBlock("", btn))
		}
	}

	blocks = append(blocks, goslack.NewContextBlock("",
		goslack.NewTextBlockObject(goslack.MarkdownType, TaskMarker(taskID), false, false),
	))
	return blocks
}

func truncateForSlack(text string) string {
	if utf8.RuneCountInString(text) <= maxBlockTextLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxBlockTextLength]) + "\n\n_... (truncated)_"
}
