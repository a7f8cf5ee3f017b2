package github

import (
	"context"
	"fmt"
	"net/http"
)

// Issue is the subset of the issues API the orchestrator needs.
type Issue struct {
	Number  int    `json:"number"`
	NodeID  string `json:"node_id"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	State   string `json:"state"`
	HTMLURL string `json:"html_url"`
}

// IssueComment is one comment on an issue or pull request.
type IssueComment struct {
	ID   int64  `json:"id"`
	Body string `json:"body"`
	User struct {
		Login string `json:"login"`
		Type  string `json:"type"`
	} `json:"user"`
}

// CreateIssue opens an issue with optional labels.
func (c *Client) CreateIssue(ctx context.Context, installationID int64, repoFullName, title, body string, labels []string) (*Issue, error) {
	payload := map[string]any{
		"title": title,
		"body":  body,
	}
	if len(labels) > 0 {
		payload["labels"] = labels
	}
	var issue Issue
	path := fmt.Sprintf("/repos/%s/issues", repoFullName)
	if err := c.rest(ctx, installationID, http.MethodPost, path, payload, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// GetIssue fetches one issue by number.
func (c *Client) GetIssue(ctx context.Context, installationID int64, repoFullName string, number int) (*Issue, error) {
	var issue Issue
	path := fmt.Sprintf("/repos/%s/issues/%d", repoFullName, number)
	if err := c.rest(ctx, installationID, http.MethodGet, path, nil, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// CommentOnIssue posts a comment on an issue or pull request.
func (c *Client) CommentOnIssue(ctx context.Context, installationID int64, repoFullName string, number int, body string) error {
	path := fmt.Sprintf("/repos/%s/issues/%d/comments", repoFullName, number)
	return c.rest(ctx, installationID, http.MethodPost, path, map[string]any{"body": body}, nil)
}

// ListIssueComments returns all comments on an issue or pull request,
// following pagination.
func (c *Client) ListIssueComments(ctx context.Context, installationID int64, repoFullName string, number int) ([]IssueComment, error) {
	var all []IssueComment
	for page := 1; ; page++ {
		var batch []IssueComment
		path := fmt.Sprintf("/repos/%s/issues/%d/comments?per_page=100&page=%d", repoFullName, number, page)
		if err := c.rest(ctx, installationID, http.MethodGet, path, nil, &batch); err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < 100 {
			return all, nil
		}
	}
}

// AddLabels attaches labels to an issue.
func (c *Client) AddLabels(ctx context.Context, installationID int64, repoFullName string, number int, labels []string) error {
	path := fmt.Sprintf("/repos/%s/issues/%d/labels", repoFullName, number)
	return c.rest(ctx, installationID, http.MethodPost, path, map[string]any{"labels": labels}, nil)
}
