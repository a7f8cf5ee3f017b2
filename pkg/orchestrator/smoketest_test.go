package orchestrator

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductor-ci/conductor/ent"
	"github.com/conductor-ci/conductor/pkg/config"
	"github.com/conductor-ci/conductor/pkg/workspace"
)

func TestDetectTestCommand(t *testing.T) {
	t.Run("node project", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}"), 0o644))
		assert.Equal(t, []string{"npm", "test", "--if-present"}, detectTestCommand(dir))
	})

	t.Run("go project", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module x"), 0o644))
		assert.Equal(t, []string{"go", "test", "./..."}, detectTestCommand(dir))
	})

	t.Run("makefile project", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Makefile"), []byte("test:\n"), 0o644))
		assert.Equal(t, []string{"make", "test"}, detectTestCommand(dir))
	})

	t.Run("package.json wins over Makefile", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Makefile"), []byte("test:\n"), 0o644))
		assert.Equal(t, "npm", detectTestCommand(dir)[0])
	})

	t.Run("nothing detected", func(t *testing.T) {
		assert.Nil(t, detectTestCommand(t.TempDir()))
	})
}

func TestTruncateOutput(t *testing.T) {
	short := []byte("all good")
	assert.Equal(t, "all good", truncateOutput(short))

	long := []byte(strings.Repeat("x", 5000) + "TAIL")
	got := truncateOutput(long)
	assert.Len(t, got, 2048)
	assert.True(t, strings.HasSuffix(got, "TAIL"), "keeps the end of the output")
}

func TestSmokeTester_WebhookSuccess(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
	}))
	defer server.Close()

	tester := NewSmokeTester(slog.Default())
	task := &ent.Task{ID: "t-1", Title: "Add caching", RepositoryFullName: "acme/api"}
	ws := &workspace.Workspace{BranchName: "conductor/t-1/add-caching"}
	repoCfg := config.DefaultRepoConfig()
	repoCfg.Workflow.SmokeTestWebhook = server.URL

	require.NoError(t, tester.Run(context.Background(), task, ws, repoCfg))
	assert.Equal(t, "t-1", received["taskId"])
	assert.Equal(t, "conductor/t-1/add-caching", received["branchName"])
}

func TestSmokeTester_WebhookReportsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]bool{"success": false})
	}))
	defer server.Close()

	tester := NewSmokeTester(slog.Default())
	repoCfg := config.DefaultRepoConfig()
	repoCfg.Workflow.SmokeTestWebhook = server.URL

	err := tester.Run(context.Background(), &ent.Task{ID: "t-2"}, &workspace.Workspace{}, repoCfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reported failure")
}

func TestSmokeTester_WebhookHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	tester := NewSmokeTester(slog.Default())
	repoCfg := config.DefaultRepoConfig()
	repoCfg.Workflow.SmokeTestWebhook = server.URL

	err := tester.Run(context.Background(), &ent.Task{ID: "t-3"}, &workspace.Workspace{}, repoCfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestSmokeTester_NoTestSetupPassesVacuously(t *testing.T) {
	tester := NewSmokeTester(slog.Default())
	ws := &workspace.Workspace{Path: t.TempDir()}
	repoCfg := config.DefaultRepoConfig()

	assert.NoError(t, tester.Run(context.Background(), &ent.Task{ID: "t-4"}, ws, repoCfg))
}
