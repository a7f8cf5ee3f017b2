package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// ErrInvalidSignature rejects a delivery whose HMAC does not match.
var ErrInvalidSignature = errors.New("webhook signature mismatch")

// VerifySignature checks a X-Hub-Signature-256 header ("sha256=<hex>")
// against the raw request body.
func VerifySignature(secret string, body []byte, header string) error {
	if secret == "" {
		return errors.New("webhook secret is not configured")
	}
	expected, ok := strings.CutPrefix(header, "sha256=")
	if !ok {
		return ErrInvalidSignature
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	computed := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(computed), []byte(expected)) {
		return ErrInvalidSignature
	}
	return nil
}
