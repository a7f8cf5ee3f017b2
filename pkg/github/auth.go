package github

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// TokenSource resolves a bearer token scoped to an installation.
type TokenSource interface {
	Token(ctx context.Context, installationID int64) (string, error)
}

// StaticTokenSource returns the same token for every installation.
// Used with a personal access token in development.
type StaticTokenSource struct {
	token string
}

// NewStaticTokenSource wraps a fixed token.
func NewStaticTokenSource(token string) *StaticTokenSource {
	return &StaticTokenSource{token: token}
}

// Token returns the fixed token.
func (s *StaticTokenSource) Token(_ context.Context, _ int64) (string, error) {
	return s.token, nil
}

// AppTokenSource exchanges a GitHub App private key for short-lived
// installation tokens, cached until shortly before expiry.
type AppTokenSource struct {
	appID      int64
	privateKey *rsa.PrivateKey
	apiBase    string
	httpClient *http.Client

	mu    sync.Mutex
	cache map[int64]cachedToken
}

type cachedToken struct {
	token     string
	expiresAt time.Time
}

// NewAppTokenSource parses a PEM-encoded RSA private key and returns a
// token source for the given App id.
func NewAppTokenSource(appID int64, privateKeyPEM []byte, apiBase string) (*AppTokenSource, error) {
	key, err := parseRSAPrivateKey(privateKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("parse app private key: %w", err)
	}
	if apiBase == "" {
		apiBase = defaultAPIBaseURL
	}
	return &AppTokenSource{
		appID:      appID,
		privateKey: key,
		apiBase:    apiBase,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cache:      map[int64]cachedToken{},
	}, nil
}

// Token returns a valid installation token, reusing the cached one
// while it has more than a minute of life left.
func (s *AppTokenSource) Token(ctx context.Context, installationID int64) (string, error) {
	s.mu.Lock()
	cached, ok := s.cache[installationID]
	s.mu.Unlock()
	if ok && time.Until(cached.expiresAt) > time.Minute {
		return cached.token, nil
	}

	token, expiresAt, err := s.exchange(ctx, installationID)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.cache[installationID] = cachedToken{token: token, expiresAt: expiresAt}
	s.mu.Unlock()
	return token, nil
}

func (s *AppTokenSource) exchange(ctx context.Context, installationID int64) (string, time.Time, error) {
	jwt, err := s.appJWT(time.Now())
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign app jwt: %w", err)
	}

	url := fmt.Sprintf("%s/app/installations/%d/access_tokens", s.apiBase, installationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+jwt)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("exchange installation token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", time.Time{}, newAPIError(resp, http.MethodPost, "/app/installations/.../access_tokens")
	}

	var body struct {
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expires_at"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", time.Time{}, fmt.Errorf("decode token response: %w", err)
	}
	return body.Token, body.ExpiresAt, nil
}

// appJWT builds the RS256-signed App JWT GitHub requires for the token
// exchange. Issued-at is backdated a minute to absorb clock skew.
func (s *AppTokenSource) appJWT(now time.Time) (string, error) {
	header := map[string]string{"alg": "RS256", "typ": "JWT"}
	claims := map[string]any{
		"iat": now.Add(-time.Minute).Unix(),
		"exp": now.Add(9 * time.Minute).Unix(),
		"iss": fmt.Sprintf("%d", s.appID),
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", err
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	enc := base64.RawURLEncoding
	signingInput := enc.EncodeToString(headerJSON) + "." + enc.EncodeToString(claimsJSON)

	digest := sha256.Sum256([]byte(signingInput))
	signature, err := rsa.SignPKCS1v15(rand.Reader, s.privateKey, crypto.SHA256, digest[:])
	if err != nil {
		return "", err
	}
	return signingInput + "." + enc.EncodeToString(signature), nil
}

func parseRSAPrivateKey(pemBytes []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("no PEM block found")
	}
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is %T, want *rsa.PrivateKey", parsed)
	}
	return key, nil
}

// InstallationToken exposes the client's token source for callers that
// embed credentials elsewhere (git clone URLs).
func (c *Client) InstallationToken(ctx context.Context, installationID int64) (string, error) {
	return c.tokens.Token(ctx, installationID)
}

// CloneURL builds an HTTPS clone URL, embedding the installation token
// when present.
func CloneURL(repoFullName, token string) string {
	if token == "" {
		return "https://github.com/" + repoFullName + ".git"
	}
	return "https://x-access-token:" + strings.TrimSpace(token) + "@github.com/" + repoFullName + ".git"
}
