package suppliers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SignWebhookPayload computes the hex-encoded HMAC-SHA256 signature of a
// webhook payload under the provider's shared secret.
func SignWebhookPayload(secret string, payload []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

// VerifyWebhookSignature checks a provider-supplied signature against the
// computed one in constant time. A "sha256=" prefix on the header value is
// tolerated. An empty secret never verifies. Default-permissive handling is
// reserved for providers that offer no signature scheme at all, and those
// skip this helper entirely.
func VerifyWebhookSignature(secret string, payload []byte, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	signature = strings.TrimPrefix(signature, "sha256=")
	expected := SignWebhookPayload(secret, payload)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}
