package github

import (
	"context"
	"fmt"
	"net/http"
)

// PullRequest is the subset of the pulls API the orchestrator needs.
type PullRequest struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	State   string `json:"state"`
	Merged  bool   `json:"merged"`
	HTMLURL string `json:"html_url"`
	Head    struct {
		Ref string `json:"ref"`
		SHA string `json:"sha"`
	} `json:"head"`
	Base struct {
		Ref string `json:"ref"`
	} `json:"base"`
}

// PullReview is one submitted review on a pull request.
type PullReview struct {
	ID    int64  `json:"id"`
	Body  string `json:"body"`
	State string `json:"state"`
	User  struct {
		Login string `json:"login"`
		Type  string `json:"type"`
	} `json:"user"`
}

// CreatePullRequest opens a pull request from head into base.
func (c *Client) CreatePullRequest(ctx context.Context, installationID int64, repoFullName, title, body, head, base string) (*PullRequest, error) {
	payload := map[string]any{
		"title": title,
		"body":  body,
		"head":  head,
		"base":  base,
	}
	var pr PullRequest
	path := fmt.Sprintf("/repos/%s/pulls", repoFullName)
	if err := c.rest(ctx, installationID, http.MethodPost, path, payload, &pr); err != nil {
		return nil, err
	}
	return &pr, nil
}

// GetPullRequest fetches one pull request by number.
func (c *Client) GetPullRequest(ctx context.Context, installationID int64, repoFullName string, number int) (*PullRequest, error) {
	var pr PullRequest
	path := fmt.Sprintf("/repos/%s/pulls/%d", repoFullName, number)
	if err := c.rest(ctx, installationID, http.MethodGet, path, nil, &pr); err != nil {
		return nil, err
	}
	return &pr, nil
}

// ListPullReviews returns all reviews submitted on a pull request.
func (c *Client) ListPullReviews(ctx context.Context, installationID int64, repoFullName string, number int) ([]PullReview, error) {
	var all []PullReview
	for page := 1; ; page++ {
		var batch []PullReview
		path := fmt.Sprintf("/repos/%s/pulls/%d/reviews?per_page=100&page=%d", repoFullName, number, page)
		if err := c.rest(ctx, installationID, http.MethodGet, path, nil, &batch); err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < 100 {
			return all, nil
		}
	}
}
