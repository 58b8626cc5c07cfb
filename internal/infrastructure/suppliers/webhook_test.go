package suppliers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyWebhookSignature(t *testing.T) {
	secret := "shared-secret"
	payload := []byte(`{"orderId":1,"status":"SHIPPED"}`)
	signature := SignWebhookPayload(secret, payload)

	t.Run("valid signature", func(t *testing.T) {
		assert.True(t, VerifyWebhookSignature(secret, payload, signature))
	})

	t.Run("sha256 prefix is tolerated", func(t *testing.T) {
		assert.True(t, VerifyWebhookSignature(secret, payload, "sha256="+signature))
	})

	t.Run("uppercase hex is tolerated", func(t *testing.T) {
		assert.True(t, VerifyWebhookSignature(secret, payload, strings.ToUpper(signature)))
	})

	t.Run("tampered payload is rejected", func(t *testing.T) {
		assert.False(t, VerifyWebhookSignature(secret, []byte(`{"orderId":2}`), signature))
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		assert.False(t, VerifyWebhookSignature("other-secret", payload, signature))
	})

	t.Run("empty signature is rejected", func(t *testing.T) {
		assert.False(t, VerifyWebhookSignature(secret, payload, ""))
	})

	t.Run("empty secret never verifies", func(t *testing.T) {
		assert.False(t, VerifyWebhookSignature("", payload, SignWebhookPayload("", payload)))
	})
}
