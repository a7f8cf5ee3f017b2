package agent

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamParser_ResultEvent(t *testing.T) {
	p := newStreamParser(nil)
	p.consume([]byte(`{"type":"result","usage":{"input_tokens":100,"cache_creation_input_tokens":20,"cache_read_input_tokens":30,"output_tokens":40},"total_cost_usd":0.12}`))

	assert.Equal(t, 150, p.inputTokens)
	assert.Equal(t, 40, p.outputTokens)
	assert.InDelta(t, 0.12, p.totalCost, 1e-9)
}

func TestStreamParser_ResultText(t *testing.T) {
	p := newStreamParser(nil)
	p.consume([]byte(`{"type":"result","result":"All done.","usage":{"output_tokens":1}}`))

	assert.Equal(t, "All done.", p.resultText)
}

func TestStreamParser_UsageDeltas(t *testing.T) {
	p := newStreamParser(nil)
	p.consume([]byte(`{"type":"usage","usage":{"input_tokens":10,"output_tokens":5}}`))
	p.consume([]byte(`{"type":"usage","usage":{"input_tokens":7,"cache_read_input_tokens":3,"output_tokens":2}}`))

	assert.Equal(t, 20, p.inputTokens)
	assert.Equal(t, 7, p.outputTokens)
}

func TestStreamParser_FileTracking(t *testing.T) {
	p := newStreamParser(nil)
	p.consume([]byte(`{"type":"tool_use","name":"Write","input":{"file_path":"src/index.ts"}}`))
	p.consume([]byte(`{"type":"tool_use","name":"Edit","input":{"file_path":"src/index.ts"}}`))
	p.consume([]byte(`{"type":"tool_use","name":"Read","input":{"file_path":"README.md"}}`))
	p.consume([]byte(`{"type":"tool_result","name":"MultiEdit","input":{"file_path":"src/util.ts"}}`))

	files := p.files()
	assert.Len(t, files, 2)
	assert.Contains(t, files, "src/index.ts")
	assert.Contains(t, files, "src/util.ts")
}

func TestStreamParser_AssistantProgress(t *testing.T) {
	var snippets []string
	p := newStreamParser(func(s string) { snippets = append(snippets, s) })

	long := make([]byte, 0, 300)
	for i := 0; i < 300; i++ {
		long = append(long, 'a')
	}
	p.consume([]byte(`{"type":"assistant","message":{"content":[{"type":"text","text":"` + string(long) + `"}]}}`))

	assert.Len(t, snippets, 1)
	assert.Len(t, snippets[0], 100)
}

func TestStreamParser_IgnoresNonJSON(t *testing.T) {
	p := newStreamParser(nil)
	p.consume([]byte(`not json at all`))

	assert.Equal(t, 0, p.inputTokens)
	assert.Contains(t, p.output.String(), "not json at all")
}

func TestRunner_TimeoutSurfacesSentinel(t *testing.T) {
	bin := filepath.Join(t.TempDir(), "slow-agent")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\nexec sleep 5\n"), 0o755))

	r := NewRunner(bin, "", slog.New(slog.NewTextHandler(io.Discard, nil)))
	out, err := r.Run(context.Background(), RunOptions{
		Prompt:  "do nothing",
		Timeout: 100 * time.Millisecond,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRunTimeout)
	require.NotNil(t, out)
	assert.False(t, out.Success)
}

func TestPolicy(t *testing.T) {
	policy := NewPolicy([]string{"**/.env*", "**/secrets/**"}, 2)

	t.Run("violations", func(t *testing.T) {
		v := policy.Violations([]string{"src/app.ts", "config/.env.local", "infra/secrets/key.pem"})
		assert.Equal(t, []string{"config/.env.local", "infra/secrets/key.pem"}, v)
	})

	t.Run("file count cap", func(t *testing.T) {
		err := policy.Check([]string{"a.go", "b.go", "c.go"})
		assert.ErrorContains(t, err, "exceeds limit")
	})

	t.Run("clean set passes", func(t *testing.T) {
		assert.NoError(t, policy.Check([]string{"a.go", "b.go"}))
	})
}

func TestLimiter_BoundsPerKey(t *testing.T) {
	l := NewLimiter()
	ctx := context.Background()

	rel1, err := l.Acquire(ctx, "acme/api", 2)
	assert.NoError(t, err)
	rel2, err := l.Acquire(ctx, "acme/api", 2)
	assert.NoError(t, err)

	// Third slot for the same key must wait until one is released.
	blocked, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err = l.Acquire(blocked, "acme/api", 2)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// Another key is unaffected.
	relOther, err := l.Acquire(ctx, "acme/web", 1)
	assert.NoError(t, err)
	relOther()

	rel1()
	rel3, err := l.Acquire(ctx, "acme/api", 2)
	assert.NoError(t, err)
	rel3()
	rel2()
}
