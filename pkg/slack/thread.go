package slack

import (
	"fmt"
	"regexp"
	"strings"

	goslack "github.com/slack-go/slack"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// TaskMarker is the text stamped into the context block of every task
// message. Follow-up notifications locate the root message by it and
// reply in its thread.
func TaskMarker(taskID string) string {
	return fmt.Sprintf("task:%s", taskID)
}

func normalizeText(s string) string {
	s = strings.ToLower(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func collectMessageText(msg goslack.Message) string {
	var parts []string
	if msg.Text != "" {
		parts = append(parts, msg.Text)
	}
	for _, block := range msg.Blocks.BlockSet {
		switch b := block.(type) {
		case *goslack.SectionBlock:
			if b.Text != nil {
				parts = append(parts, b.Text.Text)
			}
		case *goslack.ContextBlock:
			for _, el := range b.ContextElements.Elements {
				if txt, ok := el.(*goslack.TextBlockObject); ok {
					parts = append(parts, txt.Text)
				}
			}
		}
	}
	for _, att := range msg.Attachments {
		if att.Text != "" {
			parts = append(parts, att.Text)
		}
		if att.Fallback != "" {
			parts = append(parts, att.Fallback)
		}
	}
	return strings.Join(parts, " ")
}
