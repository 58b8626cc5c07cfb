package suppliers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/dropship/backend/internal/domain/supplier"
)

// maxResponseSize limits provider response bodies to prevent memory exhaustion
const maxResponseSize = 10 * 1024 * 1024 // 10MB

// readBody drains a provider response body with the size cap applied.
func readBody(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", supplier.ErrProviderUnavailable, err)
	}
	return body, nil
}

// statusError maps an HTTP status code onto the domain error taxonomy:
// 429 is rate limiting (transient), 401/403 are auth failures, 404 is a
// not-found request error, other 4xx are validation errors (never retried)
// and 5xx are transient provider failures.
func statusError(provider string, code int) error {
	switch {
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s returned HTTP 429", supplier.ErrProviderRateLimited, provider)
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%w: %s returned HTTP %d", supplier.ErrAuthFailed, provider, code)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s returned HTTP 404", supplier.ErrProductNotFound, provider)
	case code >= 400 && code < 500:
		return fmt.Errorf("%w: %s returned HTTP %d", supplier.ErrInvalidRequest, provider, code)
	case code >= 500:
		return fmt.Errorf("%w: %s returned HTTP %d", supplier.ErrProviderUnavailable, provider, code)
	default:
		return nil
	}
}

// ParseDecimal safely parses a provider money string into a decimal.
// Returns zero for empty or malformed values.
func ParseDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
