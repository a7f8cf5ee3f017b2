// Package agent invokes the command-line coding agent and parses its
// newline-delimited JSON event stream into run statistics.
package agent

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"
)

// ErrRunTimeout reports a run killed by its wall clock. Callers match
// it with errors.Is to record the run as timed out rather than failed.
var ErrRunTimeout = errors.New("agent run timed out")

const (
	// maxOutputSize caps the accumulated stdout of one run.
	maxOutputSize = 1 << 20

	// killGrace is how long a terminated process gets before kill.
	killGrace = 5 * time.Second

	// DefaultTimeout bounds a run when the caller sets none.
	DefaultTimeout = 30 * time.Minute

	progressSnippetLen = 100
)

// RunOptions configures one agent invocation.
type RunOptions struct {
	WorkDir         string
	Prompt          string
	SystemPrompt    string
	Model           string
	MaxTurns        int
	Timeout         time.Duration
	AllowedTools    []string
	DisallowedTools []string

	// OnProgress receives assistant-message snippets as they stream.
	OnProgress func(snippet string)
}

// Output is the result of one agent invocation.
type Output struct {
	Success  bool
	ExitCode int

	// Output is the raw event transcript; Result is the agent's final
	// response text from the result event.
	Output string
	Result string
	InputTokens   int
	OutputTokens  int
	TotalCost     float64
	FilesModified []string
	Duration      time.Duration
}

// Runner spawns the agent binary. Safe for concurrent use; each Run is
// an independent child process.
type Runner struct {
	binary        string
	credentialEnv string
	logger        *slog.Logger
}

// NewRunner creates a runner for the given agent binary. credentialEnv
// names the environment variable holding the LLM credential; it is
// passed through to the child untouched.
func NewRunner(binary, credentialEnv string, logger *slog.Logger) *Runner {
	return &Runner{
		binary:        binary,
		credentialEnv: credentialEnv,
		logger:        logger.With("component", "agent_runner"),
	}
}

// Run executes the agent to completion or timeout.
func (r *Runner) Run(ctx context.Context, opts RunOptions) (*Output, error) {
	if opts.Prompt == "" {
		return nil, fmt.Errorf("prompt is required")
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := []string{"--print", "--output-format", "json", "--dangerously-skip-permissions"}
	if opts.Model != "" {
		args = append(args, "--model", opts.Model)
	}
	if opts.MaxTurns > 0 {
		args = append(args, "--max-turns", fmt.Sprintf("%d", opts.MaxTurns))
	}
	if opts.SystemPrompt != "" {
		args = append(args, "--system-prompt", opts.SystemPrompt)
	}
	if len(opts.AllowedTools) > 0 {
		args = append(args, "--allowedTools", strings.Join(opts.AllowedTools, ","))
	}
	if len(opts.DisallowedTools) > 0 {
		args = append(args, "--disallowedTools", strings.Join(opts.DisallowedTools, ","))
	}
	args = append(args, opts.Prompt)

	if r.credentialEnv != "" && os.Getenv(r.credentialEnv) == "" {
		r.logger.Warn("LLM credential not set in environment", "env", r.credentialEnv)
	}

	cmd := exec.CommandContext(runCtx, r.binary, args...)
	cmd.Dir = opts.WorkDir
	cmd.Env = os.Environ()
	cmd.Cancel = func() error {
		// Terminate first so the agent can flush its result event.
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = killGrace

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("open stdout pipe: %w", err)
	}
	var stderr strings.Builder
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start agent %s: %w", r.binary, err)
	}

	stream := newStreamParser(opts.OnProgress)
	overflow := false
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), maxOutputSize)
	for scanner.Scan() {
		line := scanner.Bytes()
		if stream.totalBytes+len(line) > maxOutputSize {
			overflow = true
			cancel()
			break
		}
		stream.consume(line)
	}

	waitErr := cmd.Wait()
	duration := time.Since(start)

	exitCode := 0
	if waitErr != nil {
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
	}

	killed := runCtx.Err() != nil || overflow
	out := &Output{
		Success:       exitCode == 0 && !killed,
		ExitCode:      exitCode,
		Output:        stream.output.String(),
		Result:        stream.resultText,
		InputTokens:   stream.inputTokens,
		OutputTokens:  stream.outputTokens,
		TotalCost:     stream.totalCost,
		FilesModified: stream.files(),
		Duration:      duration,
	}

	logger := r.logger.With("exit_code", exitCode, "duration", duration,
		"input_tokens", out.InputTokens, "output_tokens", out.OutputTokens)
	switch {
	case overflow:
		logger.Error("Agent run exceeded output cap", "cap_bytes", maxOutputSize)
		return out, fmt.Errorf("agent output exceeded %d bytes", maxOutputSize)
	case runCtx.Err() == context.DeadlineExceeded:
		logger.Error("Agent run timed out", "timeout", timeout)
		return out, fmt.Errorf("%w after %s", ErrRunTimeout, timeout)
	case ctx.Err() != nil:
		return out, ctx.Err()
	case exitCode != 0:
		logger.Warn("Agent run failed", "stderr", truncate(stderr.String(), 2048))
		return out, nil
	default:
		logger.Info("Agent run completed", "cost_usd", out.TotalCost,
			"files_modified", len(out.FilesModified))
		return out, nil
	}
}

// streamParser folds the agent's NDJSON events into run statistics.
type streamParser struct {
	output       strings.Builder
	totalBytes   int
	inputTokens  int
	outputTokens int
	totalCost    float64
	resultText   string
	modified     map[string]struct{}
	onProgress   func(string)
}

func newStreamParser(onProgress func(string)) *streamParser {
	return &streamParser{
		modified:   map[string]struct{}{},
		onProgress: onProgress,
	}
}

type agentEvent struct {
	Type    string `json:"type"`
	Subtype string `json:"subtype"`
	Result  string `json:"result"`
	Usage   *struct {
		InputTokens              int `json:"input_tokens"`
		CacheCreationInputTokens int `json:"cache_creation_input_tokens"`
		CacheReadInputTokens     int `json:"cache_read_input_tokens"`
		OutputTokens             int `json:"output_tokens"`
	} `json:"usage"`
	TotalCostUSD float64 `json:"total_cost_usd"`
	Name         string  `json:"name"`
	Input        *struct {
		FilePath string `json:"file_path"`
	} `json:"input"`
	Message *struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"message"`
}

// writeToolNames are the tool names whose file_path argument marks a
// file as modified.
var writeToolNames = map[string]bool{
	"Write":        true,
	"Edit":         true,
	"MultiEdit":    true,
	"NotebookEdit": true,
	"str_replace":  true,
}

func (p *streamParser) consume(line []byte) {
	p.totalBytes += len(line) + 1
	p.output.Write(line)
	p.output.WriteByte('\n')

	var event agentEvent
	if err := json.Unmarshal(line, &event); err != nil {
		// Non-JSON noise on stdout is kept in the transcript only.
		return
	}

	switch event.Type {
	case "result":
		if event.Result != "" {
			p.resultText = event.Result
		}
		if event.Usage != nil {
			p.inputTokens = event.Usage.InputTokens +
				event.Usage.CacheCreationInputTokens +
				event.Usage.CacheReadInputTokens
			p.outputTokens = event.Usage.OutputTokens
		}
		if event.TotalCostUSD > 0 {
			p.totalCost = event.TotalCostUSD
		}
	case "usage":
		if event.Usage != nil {
			p.inputTokens += event.Usage.InputTokens +
				event.Usage.CacheCreationInputTokens +
				event.Usage.CacheReadInputTokens
			p.outputTokens += event.Usage.OutputTokens
		}
	case "tool_use", "tool_result":
		if writeToolNames[event.Name] && event.Input != nil && event.Input.FilePath != "" {
			p.modified[event.Input.FilePath] = struct{}{}
		}
	case "assistant":
		if p.onProgress != nil && event.Message != nil {
			for _, block := range event.Message.Content {
				if block.Type == "text" && block.Text != "" {
					p.onProgress(truncate(block.Text, progressSnippetLen))
					break
				}
			}
		}
	}
}

func (p *streamParser) files() []string {
	if len(p.modified) == 0 {
		return nil
	}
	files := make([]string, 0, len(p.modified))
	for f := range p.modified {
		files = append(files, f)
	}
	return files
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
