package webhook

// Event headers and names recognised at intake.
const (
	HeaderEvent     = "X-GitHub-Event"
	HeaderSignature = "X-Hub-Signature-256"

	EventProjectsV2Item = "projects_v2_item"
	EventPullRequest    = "pull_request"
	EventIssueComment   = "issue_comment"
)

// ProjectsV2ItemEvent is the board-item webhook payload, trimmed to the
// fields intake reads.
type ProjectsV2ItemEvent struct {
	Action string `json:"action"`
	Item   struct {
		NodeID        string `json:"node_id"`
		ProjectNodeID string `json:"project_node_id"`
		ContentType   string `json:"content_type"`
	} `json:"projects_v2_item"`
	Installation struct {
		ID int64 `json:"id"`
	} `json:"installation"`
}

// PullRequestEvent is the pull-request webhook payload.
type PullRequestEvent struct {
	Action      string `json:"action"`
	Number      int    `json:"number"`
	PullRequest struct {
		Number int  `json:"number"`
		Merged bool `json:"merged"`
		Head   struct {
			Ref string `json:"ref"`
			SHA string `json:"sha"`
		} `json:"head"`
	} `json:"pull_request"`
	Repository struct {
		FullName string `json:"full_name"`
	} `json:"repository"`
	Installation struct {
		ID int64 `json:"id"`
	} `json:"installation"`
}

// IssueCommentEvent is the issue-comment webhook payload.
type IssueCommentEvent struct {
	Action string `json:"action"`
	Issue  struct {
		Number int `json:"number"`
	} `json:"issue"`
	Comment struct {
		Body string `json:"body"`
		User struct {
			Login string `json:"login"`
		} `json:"user"`
	} `json:"comment"`
	Repository struct {
		FullName string `json:"full_name"`
	} `json:"repository"`
	Installation struct {
		ID int64 `json:"id"`
	} `json:"installation"`
}
