package models

// ReviewResult is the outcome of one review pass.
type ReviewResult string

// Review results.
const (
	ReviewApproved         ReviewResult = "approved"
	ReviewChangesRequested ReviewResult = "changes_requested"
	ReviewFailed           ReviewResult = "failed"
)

// IssueSeverity classifies a single review finding.
type IssueSeverity string

// Issue severities.
const (
	SeverityError      IssueSeverity = "error"
	SeverityWarning    IssueSeverity = "warning"
	SeveritySuggestion IssueSeverity = "suggestion"
)

// ReviewIssue is one finding from a code review pass. Issues are stored
// as JSON on the code_reviews row and, between review and fix, serialised
// into the task's error_message column.
type ReviewIssue struct {
	File       string        `json:"file"`
	Line       int           `json:"line,omitempty"`
	Severity   IssueSeverity `json:"severity"`
	Message    string        `json:"message"`
	Suggestion string        `json:"suggestion,omitempty"`
}

// ReviewOutcome is what the reviewer returns to the task processor.
type ReviewOutcome struct {
	Result    ReviewResult  `json:"result"`
	Summary   string        `json:"summary"`
	Issues    []ReviewIssue `json:"issues"`
	Iteration int           `json:"iteration"`
}

// ErrorCount returns the number of issues with severity error.
func (o *ReviewOutcome) ErrorCount() int {
	n := 0
	for _, issue := range o.Issues {
		if issue.Severity == SeverityError {
			n++
		}
	}
	return n
}
