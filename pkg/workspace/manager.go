// Package workspace manages per-task git working trees: clone-or-reuse,
// branch checkout, commit and push, cleanup. All tree mutation for one
// task happens under that task's exclusive lock.
package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/conductor-ci/conductor/ent"
	"github.com/conductor-ci/conductor/pkg/config"
	"github.com/conductor-ci/conductor/pkg/github"
)

// Workspace is a prepared working tree for one task.
type Workspace struct {
	Path       string
	BranchName string
	BaseBranch string
	TaskID     string

	// token is the credential embedded in the remote URL, kept only to
	// redact it from command output.
	token string
}

// Manager owns the workspaces root directory.
type Manager struct {
	root   string
	forge  *github.Client
	bot    config.GitHubConfig
	locks  *taskLocks
	logger *slog.Logger
}

// NewManager creates a workspace manager rooted at root.
func NewManager(root string, forge *github.Client, bot config.GitHubConfig, logger *slog.Logger) *Manager {
	return &Manager{
		root:   root,
		forge:  forge,
		bot:    bot,
		locks:  newTaskLocks(),
		logger: logger.With("component", "workspace"),
	}
}

// Lock acquires the task's workspace lock and returns the unlock
// function. Callers hold it across any sequence of tree mutations that
// must be atomic with respect to other subtasks of the same task.
func (m *Manager) Lock(taskID string) func() {
	return m.locks.acquire(taskID)
}

// Path returns the working-tree location for a task id.
func (m *Manager) Path(taskID string) string {
	return filepath.Join(m.root, taskID)
}

// Prepare returns a coherent working tree for the task: an existing
// valid checkout is fetched and switched to the task branch, anything
// else is cloned fresh. Must be called with the task's lock held.
func (m *Manager) Prepare(ctx context.Context, task *ent.Task, branchName string) (*Workspace, error) {
	path := m.Path(task.ID)
	logger := m.logger.With("task_id", task.ID, "path", path)

	token, err := m.forge.InstallationToken(ctx, task.InstallationID)
	if err != nil {
		return nil, fmt.Errorf("resolve clone credential: %w", err)
	}

	repo, err := m.forge.GetRepository(ctx, task.InstallationID, task.RepositoryFullName)
	if err != nil {
		return nil, fmt.Errorf("resolve default branch: %w", err)
	}
	baseBranch := repo.DefaultBranch

	if isGitRepo(path) {
		if err := m.refresh(ctx, path, branchName, baseBranch, token, task.RepositoryFullName); err != nil {
			logger.Warn("Reusing workspace failed, recloning", "error", err)
			if rmErr := os.RemoveAll(path); rmErr != nil {
				return nil, fmt.Errorf("remove broken workspace: %w", rmErr)
			}
		} else {
			return &Workspace{Path: path, BranchName: branchName, BaseBranch: baseBranch, TaskID: task.ID, token: token}, nil
		}
	} else if _, statErr := os.Stat(path); statErr == nil {
		// Partial tree from an interrupted clone.
		if err := os.RemoveAll(path); err != nil {
			return nil, fmt.Errorf("remove partial workspace: %w", err)
		}
	}

	if err := m.clone(ctx, path, branchName, baseBranch, token, task.RepositoryFullName); err != nil {
		return nil, err
	}
	logger.Info("Workspace prepared", "branch", branchName, "base", baseBranch)
	return &Workspace{Path: path, BranchName: branchName, BaseBranch: baseBranch, TaskID: task.ID, token: token}, nil
}

func (m *Manager) clone(ctx context.Context, path, branch, baseBranch, token, repoFullName string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create workspaces root: %w", err)
	}
	cloneURL := github.CloneURL(repoFullName, token)
	if _, err := runGit(ctx, filepath.Dir(path), token, "clone", cloneURL, path); err != nil {
		return fmt.Errorf("clone %s: %w", repoFullName, err)
	}
	if err := m.configureIdentity(ctx, path, token); err != nil {
		return err
	}
	return checkoutTaskBranch(ctx, path, branch, baseBranch, token)
}

func (m *Manager) refresh(ctx context.Context, path, branch, baseBranch, token, repoFullName string) error {
	// Refresh the remote URL so a rotated token never poisons reuse.
	if _, err := runGit(ctx, path, token, "remote", "set-url", "origin", github.CloneURL(repoFullName, token)); err != nil {
		return err
	}
	if _, err := runGit(ctx, path, token, "fetch", "origin", "--prune"); err != nil {
		return err
	}
	if err := m.configureIdentity(ctx, path, token); err != nil {
		return err
	}
	return checkoutTaskBranch(ctx, path, branch, baseBranch, token)
}

func (m *Manager) configureIdentity(ctx context.Context, path, token string) error {
	if _, err := runGit(ctx, path, token, "config", "user.name", m.bot.BotName); err != nil {
		return fmt.Errorf("configure bot identity: %w", err)
	}
	if _, err := runGit(ctx, path, token, "config", "user.email", m.bot.BotEmail); err != nil {
		return fmt.Errorf("configure bot identity: %w", err)
	}
	return nil
}

// checkoutTaskBranch switches to the task branch, creating it from the
// base branch when it exists nowhere yet.
func checkoutTaskBranch(ctx context.Context, path, branch, baseBranch, token string) error {
	if branchExists(ctx, path, branch) {
		_, err := runGit(ctx, path, token, "checkout", branch)
		return err
	}
	if _, err := runGit(ctx, path, token, "rev-parse", "--verify", "origin/"+branch); err == nil {
		_, err := runGit(ctx, path, token, "checkout", "-b", branch, "origin/"+branch)
		return err
	}
	_, err := runGit(ctx, path, token, "checkout", "-b", branch, "origin/"+baseBranch)
	return err
}

// CommitAndPush stages everything and pushes the branch. A clean tree
// returns the current head unchanged. Must be called with the task's
// lock held.
func (m *Manager) CommitAndPush(ctx context.Context, ws *Workspace, message string) (string, error) {
	token := ws.token

	if _, err := runGit(ctx, ws.Path, token, "add", "-A"); err != nil {
		return "", fmt.Errorf("stage changes: %w", err)
	}

	status, err := runGit(ctx, ws.Path, token, "status", "--porcelain")
	if err != nil {
		return "", fmt.Errorf("check working tree: %w", err)
	}
	if strings.TrimSpace(status) == "" {
		head, err := runGit(ctx, ws.Path, token, "rev-parse", "HEAD")
		if err != nil {
			return "", fmt.Errorf("resolve head of clean tree: %w", err)
		}
		return strings.TrimSpace(head), nil
	}

	if _, err := runGit(ctx, ws.Path, token, "commit", "-m", message); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	head, err := runGit(ctx, ws.Path, token, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("resolve new head: %w", err)
	}

	if _, err := runGit(ctx, ws.Path, token, "push", "-u", "origin", ws.BranchName); err != nil {
		return strings.TrimSpace(head), fmt.Errorf("push %s: %w", ws.BranchName, err)
	}
	return strings.TrimSpace(head), nil
}

// ChangedFiles returns paths modified or untracked in the working
// tree. Used to cross-check the runner's self-reported file list.
func (m *Manager) ChangedFiles(ctx context.Context, ws *Workspace) ([]string, error) {
	out, err := runGit(ctx, ws.Path, "", "status", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("list changed files: %w", err)
	}
	var files []string
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		file := strings.TrimSpace(line[3:])
		// Renames are reported as "old -> new".
		if i := strings.Index(file, " -> "); i >= 0 {
			file = file[i+4:]
		}
		if file != "" {
			files = append(files, file)
		}
	}
	return files, nil
}

// ReadFile reads one file from the working tree. The reviewer's
// fallback path when the compare endpoint fails.
func (m *Manager) ReadFile(ws *Workspace, relPath string) (string, error) {
	clean := filepath.Clean(relPath)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("path %q escapes the workspace", relPath)
	}
	data, err := os.ReadFile(filepath.Join(ws.Path, clean))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Cleanup removes the task's working tree. Best-effort.
func (m *Manager) Cleanup(taskID string) {
	unlock := m.locks.acquire(taskID)
	defer unlock()
	path := m.Path(taskID)
	if err := os.RemoveAll(path); err != nil {
		m.logger.Warn("Workspace cleanup failed", "task_id", taskID, "error", err)
		return
	}
	m.logger.Info("Workspace removed", "task_id", taskID)
}

// runGit executes a git command in dir. The token is redacted from any
// error output before it can reach logs.
func runGit(ctx context.Context, dir, token string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	text := string(output)
	if token != "" {
		text = strings.ReplaceAll(text, token, "***")
	}
	if err != nil {
		return text, fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(text))
	}
	return text, nil
}

func isGitRepo(path string) bool {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = path
	return cmd.Run() == nil
}

func branchExists(ctx context.Context, path, name string) bool {
	_, err := runGit(ctx, path, "", "show-ref", "--verify", "--quiet", "refs/heads/"+name)
	return err == nil
}
