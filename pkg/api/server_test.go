package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conductor-ci/conductor/pkg/config"
	"github.com/conductor-ci/conductor/pkg/webhook"
)

const testSecret = "test-webhook-secret"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	t.Setenv("WEBHOOK_SECRET", testSecret)
	cfg := config.DefaultServerConfig()
	return NewServer(cfg, nil, nil, nil, nil, nil, slog.Default())
}

func signBody(body string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(body))
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestHandleWebhook_RejectsBadSignature(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	req := httptest.NewRequest(http.MethodPost, "/webhooks", strings.NewReader(`{}`))
	req.Header.Set(webhook.HeaderEvent, webhook.EventPullRequest)
	req.Header.Set(webhook.HeaderSignature, "sha256=0000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleWebhook_MissingSignature(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	req := httptest.NewRequest(http.MethodPost, "/webhooks", strings.NewReader(`{}`))
	req.Header.Set(webhook.HeaderEvent, webhook.EventPullRequest)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleWebhook_IgnoresUnknownEvent(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	body := `{"zen": "Keep it logically awesome."}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks", strings.NewReader(body))
	req.Header.Set(webhook.HeaderEvent, "ping")
	req.Header.Set(webhook.HeaderSignature, signBody(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ignored")
}

func TestHandleWebhook_MalformedPayload(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	body := `{"action": `
	req := httptest.NewRequest(http.MethodPost, "/webhooks", strings.NewReader(body))
	req.Header.Set(webhook.HeaderEvent, webhook.EventPullRequest)
	req.Header.Set(webhook.HeaderSignature, signBody(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleTrigger_ValidationFailure(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	req := httptest.NewRequest(http.MethodPost, "/trigger",
		strings.NewReader(`{"title": "missing repo and installation"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSecurityHeaders(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	body := `{}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks", strings.NewReader(body))
	req.Header.Set(webhook.HeaderEvent, "ping")
	req.Header.Set(webhook.HeaderSignature, signBody(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}
