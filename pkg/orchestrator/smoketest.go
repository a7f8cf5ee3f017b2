package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/conductor-ci/conductor/ent"
	"github.com/conductor-ci/conductor/pkg/config"
	"github.com/conductor-ci/conductor/pkg/workspace"
)

// smokeTestTimeout caps the local fallback test command.
const smokeTestTimeout = 2 * time.Minute

// SmokeTester validates a branch before the pull request is opened:
// either a configured webhook decides, or a best-effort local test run.
type SmokeTester struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewSmokeTester creates a smoke tester.
func NewSmokeTester(logger *slog.Logger) *SmokeTester {
	return &SmokeTester{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger.With("component", "smoke_test"),
	}
}

// Run executes the smoke test for a task. A nil error means the branch
// passed.
func (s *SmokeTester) Run(ctx context.Context, task *ent.Task, ws *workspace.Workspace, repoCfg *config.RepoConfig) error {
	if url := repoCfg.Workflow.SmokeTestWebhook; url != "" {
		return s.runWebhook(ctx, url, task, ws)
	}
	return s.runLocal(ctx, ws)
}

func (s *SmokeTester) runWebhook(ctx context.Context, url string, task *ent.Task, ws *workspace.Workspace) error {
	payload, err := json.Marshal(map[string]string{
		"taskId":             task.ID,
		"title":              task.Title,
		"branchName":         ws.BranchName,
		"repositoryFullName": task.RepositoryFullName,
	})
	if err != nil {
		return fmt.Errorf("marshal smoke test payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create smoke test request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("smoke test webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("smoke test webhook returned HTTP %d", resp.StatusCode)
	}

	var body struct {
		Success *bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Success != nil && !*body.Success {
		return fmt.Errorf("smoke test webhook reported failure")
	}
	return nil
}

// runLocal runs the project's test command with a hard cap. Absence of
// a recognisable test setup is success.
func (s *SmokeTester) runLocal(ctx context.Context, ws *workspace.Workspace) error {
	cmdline := detectTestCommand(ws.Path)
	if cmdline == nil {
		s.logger.Info("No test command detected, smoke test passes vacuously", "path", ws.Path)
		return nil
	}

	runCtx, cancel := context.WithTimeout(ctx, smokeTestTimeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, cmdline[0], cmdline[1:]...)
	cmd.Dir = ws.Path
	output, err := cmd.CombinedOutput()
	if err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("smoke test timed out after %s", smokeTestTimeout)
		}
		return fmt.Errorf("smoke test failed: %w: %s", err, truncateOutput(output))
	}
	return nil
}

// detectTestCommand picks a test invocation from the project layout.
func detectTestCommand(dir string) []string {
	if fileExists(dir, "package.json") {
		return []string{"npm", "test", "--if-present"}
	}
	if fileExists(dir, "go.mod") {
		return []string{"go", "test", "./..."}
	}
	if fileExists(dir, "Makefile") {
		return []string{"make", "test"}
	}
	return nil
}

func truncateOutput(output []byte) string {
	const limit = 2048
	if len(output) > limit {
		output = output[len(output)-limit:]
	}
	return string(output)
}

func fileExists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
