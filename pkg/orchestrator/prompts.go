package orchestrator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/conductor-ci/conductor/ent"
	"github.com/conductor-ci/conductor/pkg/models"
	"github.com/conductor-ci/conductor/pkg/subproject"
)

const masterSystemPrompt = `You are the planning agent of an autonomous software-engineering system.
Given a task and a repository overview, decide how to execute it.

Respond with exactly one JSON code block of this shape:

` + "```json" + `
{
  "type": "simple" | "epic",
  "summary": "one-paragraph plan",
  "subtasks": [
    {"subprojectPath": ".", "title": "...", "description": "...", "dependsOn": []}
  ],
  "childTasks": [
    {"title": "...", "description": "...", "dependsOn": []}
  ],
  "needsHumanReview": false,
  "humanReviewQuestion": ""
}
` + "```" + `

Rules:
- Use "simple" when the work fits one pull request; plan subtasks scoped to
  disjoint subprojects so they can run in parallel.
- Use "epic" only when the work needs several independent pull requests;
  childTasks dependsOn entries are titles of prerequisite siblings.
- Set needsHumanReview true only when the task cannot be started without an
  answer from a human, and put the question in humanReviewQuestion.
- subprojectPath must be one of the listed subprojects, or "." for the
  repository root.`

const reviewSystemPrompt = `You are a strict code reviewer. Examine the presented changes for
correctness, security problems, and broken contracts. Respond with exactly
one JSON code block:

` + "```json" + `
{
  "result": "approved" | "changes_requested",
  "summary": "...",
  "issues": [
    {"file": "path", "line": 0, "severity": "error" | "warning" | "suggestion",
     "message": "...", "suggestion": "..."}
  ]
}
` + "```" + `

Only report issues you are confident about. Severity "error" is reserved for
defects that must block the change.`

const fixSystemPrompt = `You are fixing concrete review findings in an existing change. Address
every listed issue, change nothing unrelated, and keep the existing style
of the code.`

// buildAnalysisPrompt renders the decomposer's single analysis prompt.
func buildAnalysisPrompt(task *ent.Task, repoPaths []string, subs []subproject.Subproject, contextFiles map[string]string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Task\n\nTitle: %s\n\n%s\n\n", task.Title, task.Description)
	if task.HumanReviewAnswer != nil && *task.HumanReviewAnswer != "" {
		fmt.Fprintf(&b, "## Feedback from a human\n\n%s\n\n", *task.HumanReviewAnswer)
	}

	b.WriteString("# Repository structure\n\n")
	for _, p := range repoPaths {
		b.WriteString(p)
		b.WriteByte('\n')
	}

	b.WriteString("\n# Subprojects\n\n")
	for _, s := range subs {
		fmt.Fprintf(&b, "- %s", s.Path)
		if s.Name != "" && s.Name != s.Path {
			fmt.Fprintf(&b, " (%s)", s.Name)
		}
		b.WriteByte('\n')
	}

	for name, content := range contextFiles {
		fmt.Fprintf(&b, "\n# %s\n\n%s\n", name, content)
	}
	return b.String()
}

// buildSubtaskPrompt renders the working prompt of one subtask run.
func buildSubtaskPrompt(task *ent.Task, sub *ent.Subtask, constraints string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Implement the following change.\n\nTask: %s\n\n", task.Title)
	fmt.Fprintf(&b, "Subtask: %s\n\n%s\n", sub.Title, sub.Description)
	if sub.SubprojectPath != "" && sub.SubprojectPath != "." {
		fmt.Fprintf(&b, "\nWork only inside %s/.\n", sub.SubprojectPath)
	}
	if constraints != "" {
		b.WriteString("\n" + constraints + "\n")
	}
	return b.String()
}

// buildReviewPrompt renders the change set for the review run.
func buildReviewPrompt(task *ent.Task, diffs []fileDiff) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Review the changes made for this task.\n\nTask: %s\n\n%s\n\n", task.Title, task.Description)
	b.WriteString("# Changes\n")
	for _, d := range diffs {
		fmt.Fprintf(&b, "\n## %s\n\n", d.Path)
		if d.Patch != "" {
			fmt.Fprintf(&b, "```diff\n%s\n```\n", d.Patch)
		} else {
			fmt.Fprintf(&b, "```\n%s\n```\n", d.Content)
		}
	}
	return b.String()
}

// buildFixPrompt enumerates review issues for the fixer run.
func buildFixPrompt(task *ent.Task, issues []models.ReviewIssue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The code review of task %q found the following issues. Fix all of them.\n\n", task.Title)
	for _, issue := range issues {
		b.WriteString("- ")
		b.WriteString(formatIssue(issue))
		b.WriteByte('\n')
	}
	return b.String()
}

// formatIssue renders one issue as "[severity] file[:line] message (suggestion)".
func formatIssue(issue models.ReviewIssue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", issue.Severity, issue.File)
	if issue.Line > 0 {
		fmt.Fprintf(&b, ":%d", issue.Line)
	}
	fmt.Fprintf(&b, " %s", issue.Message)
	if issue.Suggestion != "" {
		fmt.Fprintf(&b, " (%s)", issue.Suggestion)
	}
	return b.String()
}

var jsonFencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*\\n(.*?)```")

// extractJSONBlock returns the contents of the first JSON code fence,
// or the trimmed input when no fence is present.
func extractJSONBlock(text string) string {
	if m := jsonFencePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "{") {
		return trimmed
	}
	return ""
}
