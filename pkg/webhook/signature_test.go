package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "it's a secret to everybody"
	body := []byte(`{"action": "created"}`)

	require.NoError(t, VerifySignature(secret, body, sign(secret, body)))
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	body := []byte(`{"action": "created"}`)
	err := VerifySignature("right", body, sign("wrong", body))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifySignature_TamperedBody(t *testing.T) {
	secret := "s3cr3t"
	header := sign(secret, []byte("original"))
	err := VerifySignature(secret, []byte("tampered"), header)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifySignature_MissingPrefix(t *testing.T) {
	err := VerifySignature("s3cr3t", []byte("body"), "deadbeef")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifySignature_EmptySecret(t *testing.T) {
	err := VerifySignature("", []byte("body"), "sha256=deadbeef")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidSignature, "missing secret is a config error")
}
