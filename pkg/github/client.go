// Package github is the source-forge client: REST for issues, pulls,
// repos and contents, GraphQL for Projects V2 board operations.
// Credentials are resolved per installation through a TokenSource.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

const (
	defaultAPIBaseURL = "https://api.github.com"
	defaultGraphQLURL = "https://api.github.com/graphql"

	// maxErrorBody bounds how much of an error response we keep.
	maxErrorBody = 4 << 10
)

// APIError is a non-2xx response from the forge.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: %s %s returned HTTP %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the forge.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client talks to one forge instance. Safe for concurrent use.
type Client struct {
	httpClient *http.Client
	apiBase    string
	graphqlURL string
	tokens     TokenSource
	logger     *slog.Logger

	// Status-field lookups per project node id, resolved once.
	fieldMu      sync.Mutex
	statusFields map[string]statusField
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURLs overrides the REST and GraphQL endpoints (enterprise
// instances, test servers).
func WithBaseURLs(apiBase, graphqlURL string) Option {
	return func(c *Client) {
		if apiBase != "" {
			c.apiBase = apiBase
		}
		if graphqlURL != "" {
			c.graphqlURL = graphqlURL
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// NewClient creates a forge client that authenticates via tokens.
func NewClient(tokens TokenSource, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		apiBase:      defaultAPIBaseURL,
		graphqlURL:   defaultGraphQLURL,
		tokens:       tokens,
		logger:       logger.With("component", "github"),
		statusFields: map[string]statusField{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// rest performs one REST call. body is marshalled to JSON when non-nil;
// out is decoded from the response when non-nil.
func (c *Client) rest(ctx context.Context, installationID int64, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body for %s %s: %w", method, path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiBase+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if err := c.setAuthHeader(ctx, req, installationID); err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp, method, path)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response of %s %s: %w", method, path, err)
	}
	return nil
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

// graphql performs one GraphQL call and decodes the data object into
// out.
func (c *Client) graphql(ctx context.Context, installationID int64, query string, variables map[string]any, out any) error {
	data, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("marshal graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create graphql request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if err := c.setAuthHeader(ctx, req, installationID); err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("graphql request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return newAPIError(resp, http.MethodPost, "/graphql")
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphqlError  `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode graphql response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("graphql error: %s", envelope.Errors[0].Message)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode graphql data: %w", err)
	}
	return nil
}

func (c *Client) setAuthHeader(ctx context.Context, req *http.Request, installationID int64) error {
	token, err := c.tokens.Token(ctx, installationID)
	if err != nil {
		return fmt.Errorf("resolve token for installation %d: %w", installationID, err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}

func newAPIError(resp *http.Response, method, path string) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := ""
	var ghErr struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &ghErr) == nil && ghErr.Message != "" {
		msg = ghErr.Message
	} else {
		msg = string(body)
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Method:     method,
		Path:       path,
		Message:    msg,
	}
}
