package github

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Repository is the subset of the repos API the orchestrator needs.
type Repository struct {
	ID            int64  `json:"id"`
	FullName      string `json:"full_name"`
	DefaultBranch string `json:"default_branch"`
	Private       bool   `json:"private"`
}

// ComparedFile is one changed file from the compare endpoint.
type ComparedFile struct {
	Filename  string `json:"filename"`
	Status    string `json:"status"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
	Patch     string `json:"patch"`
}

// Comparison is the result of comparing two refs.
type Comparison struct {
	AheadBy  int            `json:"ahead_by"`
	BehindBy int            `json:"behind_by"`
	Files    []ComparedFile `json:"files"`
}

// GetRepository fetches repository metadata.
func (c *Client) GetRepository(ctx context.Context, installationID int64, repoFullName string) (*Repository, error) {
	var repo Repository
	if err := c.rest(ctx, installationID, http.MethodGet, "/repos/"+repoFullName, nil, &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

// GetFileContent fetches one file's decoded content at a ref. Returns
// a wrapped 404 APIError when the path does not exist.
func (c *Client) GetFileContent(ctx context.Context, installationID int64, repoFullName, path, ref string) (string, error) {
	apiPath := fmt.Sprintf("/repos/%s/contents/%s", repoFullName, path)
	if ref != "" {
		apiPath += "?ref=" + url.QueryEscape(ref)
	}
	var content struct {
		Type     string `json:"type"`
		Encoding string `json:"encoding"`
		Content  string `json:"content"`
	}
	if err := c.rest(ctx, installationID, http.MethodGet, apiPath, nil, &content); err != nil {
		return "", err
	}
	if content.Type != "file" {
		return "", fmt.Errorf("github: %s at %s is a %s, not a file", path, repoFullName, content.Type)
	}
	if content.Encoding != "base64" {
		return content.Content, nil
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(content.Content, "\n", ""))
	if err != nil {
		return "", fmt.Errorf("decode content of %s: %w", path, err)
	}
	return string(decoded), nil
}

// CompareCommits returns the changed files between base and head.
func (c *Client) CompareCommits(ctx context.Context, installationID int64, repoFullName, base, head string) (*Comparison, error) {
	path := fmt.Sprintf("/repos/%s/compare/%s...%s", repoFullName, base, head)
	var cmp Comparison
	if err := c.rest(ctx, installationID, http.MethodGet, path, nil, &cmp); err != nil {
		return nil, err
	}
	return &cmp, nil
}

// ListTree returns repository paths at a ref, capped at limit entries.
// Uses the recursive git trees endpoint.
func (c *Client) ListTree(ctx context.Context, installationID int64, repoFullName, ref string, limit int) ([]string, error) {
	path := fmt.Sprintf("/repos/%s/git/trees/%s?recursive=1", repoFullName, ref)
	var tree struct {
		Tree []struct {
			Path string `json:"path"`
			Type string `json:"type"`
		} `json:"tree"`
		Truncated bool `json:"truncated"`
	}
	if err := c.rest(ctx, installationID, http.MethodGet, path, nil, &tree); err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(tree.Tree))
	for _, entry := range tree.Tree {
		if entry.Type != "blob" {
			continue
		}
		paths = append(paths, entry.Path)
		if limit > 0 && len(paths) >= limit {
			break
		}
	}
	return paths, nil
}
