package webhook

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinFeedback_CapsEntries(t *testing.T) {
	var parts []string
	for i := 0; i < 25; i++ {
		parts = append(parts, fmt.Sprintf("comment %d", i))
	}

	joined := joinFeedback(parts)
	entries := strings.Split(joined, "\n\n")
	assert.Len(t, entries, maxFeedbackEntries)
	assert.Equal(t, "comment 0", entries[0])
	assert.Equal(t, "comment 9", entries[len(entries)-1])

	// Under the cap everything passes through.
	assert.Equal(t, "a\n\nb", joinFeedback([]string{"a", "b"}))
	assert.Equal(t, "", joinFeedback(nil))
}

func TestParseCommand(t *testing.T) {
	cases := []struct {
		name string
		body string
		cmd  string
		ok   bool
	}{
		{"simple", "/conductor status", "status", true},
		{"uppercase command", "/conductor RETRY", "retry", true},
		{"bare invocation defaults to help", "/conductor", "help", true},
		{"embedded in comment", "Thanks!\n\n/conductor retry\n\ncc @someone", "retry", true},
		{"leading whitespace", "   /conductor status", "status", true},
		{"extra arguments ignored", "/conductor status please", "status", true},
		{"no command", "just a regular comment", "", false},
		{"mid-line mention not a command", "run /conductor status for me", "", false},
		{"empty body", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, ok := parseCommand(tc.body)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.cmd, cmd)
		})
	}
}
