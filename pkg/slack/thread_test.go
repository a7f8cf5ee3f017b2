package slack

import (
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "task:abc", normalizeText("  Task:ABC \n"))
	assert.Equal(t, "a b c", normalizeText("a\t b\n\nc"))
}

func TestCollectMessageText_Blocks(t *testing.T) {
	msg := goslack.Message{}
	msg.Text = "fallback text"
	msg.Blocks = goslack.Blocks{BlockSet: []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, "section body", false, false),
			nil, nil,
		),
		goslack.NewContextBlock("",
			goslack.NewTextBlockObject(goslack.MarkdownType, TaskMarker("task-9"), false, false),
		),
	}}

	text := collectMessageText(msg)
	assert.Contains(t, text, "fallback text")
	assert.Contains(t, text, "section body")
	assert.Contains(t, text, "task:task-9")
}

func TestCollectMessageText_Attachments(t *testing.T) {
	msg := goslack.Message{}
	msg.Attachments = []goslack.Attachment{
		{Text: "attachment text", Fallback: "attachment fallback"},
	}

	text := collectMessageText(msg)
	assert.Contains(t, text, "attachment text")
	assert.Contains(t, text, "attachment fallback")
}
