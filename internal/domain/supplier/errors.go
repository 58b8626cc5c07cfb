package supplier

import "errors"

// ---------------------------------------------------------------------------
// Connector Errors
// ---------------------------------------------------------------------------

var (
	// Transient provider errors, safe to retry.
	ErrProviderUnavailable = errors.New("supplier: provider temporarily unavailable")
	ErrProviderRateLimited = errors.New("supplier: provider rate limited")

	// Authentication errors are surfaced immediately; the caller should
	// re-authenticate or refresh the token before retrying the operation.
	ErrAuthFailed   = errors.New("supplier: provider authentication failed")
	ErrTokenExpired = errors.New("supplier: provider token expired")

	// Validation/request errors, never retried.
	ErrInvalidRequest    = errors.New("supplier: invalid request")
	ErrProductNotFound   = errors.New("supplier: product not found")
	ErrOrderNotFound     = errors.New("supplier: order not found")
	ErrInvalidCredential = errors.New("supplier: invalid or incomplete credentials")

	// ErrNotSupported signals a declined optional capability.
	ErrNotSupported = errors.New("supplier: operation not supported by provider")

	// ErrOrderStateUnknown is returned when a network failure occurred after
	// the provider may have already registered the order. The caller must
	// reconcile via GetOrder (by client order reference) before resubmitting.
	ErrOrderStateUnknown = errors.New("supplier: order placement outcome unknown")

	// Registry errors.
	ErrProviderNotRegistered = errors.New("supplier: provider not registered")

	// Webhook errors.
	ErrInvalidSignature    = errors.New("supplier: invalid webhook signature")
	ErrUnknownWebhookEvent = errors.New("supplier: unknown webhook event type")
)

// IsTransient reports whether an error belongs to the transient failure class
// (connection failures, provider-reported rate limiting) that the retry
// executor may retry.
func IsTransient(err error) bool {
	return errors.Is(err, ErrProviderUnavailable) || errors.Is(err, ErrProviderRateLimited)
}
