package suppliers

import (
	"errors"

	"github.com/dropship/backend/internal/infrastructure/config"
)

// BigBuyConfig holds configuration for the BigBuy wholesale API.
// BigBuy uses a static API key sent as a bearer header; there is no login
// exchange, no refresh step and no webhook signature scheme.
type BigBuyConfig struct {
	// APIKey is the pre-issued API key
	APIKey string
	// APIBaseURL is the API root URL (production or sandbox)
	APIBaseURL string
	// IsSandbox indicates if this is a sandbox environment
	IsSandbox bool
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
	// RequestsPerMinute and RequestsPerHour are the rate limiter budgets
	RequestsPerMinute int
	RequestsPerHour   int
	// MaxRetries is the retry executor attempt ceiling
	MaxRetries int
}

const (
	// BigBuyProductionAPIURL is the production API root
	BigBuyProductionAPIURL = "https://api.bigbuy.eu"
	// BigBuySandboxAPIURL is the sandbox API root
	BigBuySandboxAPIURL = "https://api.sandbox.bigbuy.eu"
)

// ErrBigBuyConfigMissingAPIKey indicates the API key is missing
var ErrBigBuyConfigMissingAPIKey = errors.New("bigbuy: api key is required")

// NewBigBuyConfig creates a new BigBuy configuration with defaults
func NewBigBuyConfig(apiKey string) *BigBuyConfig {
	return &BigBuyConfig{
		APIKey:            apiKey,
		APIBaseURL:        BigBuyProductionAPIURL,
		TimeoutSeconds:    30,
		RequestsPerMinute: 60,
		RequestsPerHour:   1000,
		MaxRetries:        3,
	}
}

// applyProviderConfig overlays the configured provider section.
func (c *BigBuyConfig) applyProviderConfig(p config.ProviderConfig) {
	if p.BaseURL != "" {
		c.APIBaseURL = p.BaseURL
	}
	c.IsSandbox = p.Sandbox
	if p.TimeoutSeconds > 0 {
		c.TimeoutSeconds = p.TimeoutSeconds
	}
	if p.RequestsPerMinute > 0 {
		c.RequestsPerMinute = p.RequestsPerMinute
	}
	if p.RequestsPerHour > 0 {
		c.RequestsPerHour = p.RequestsPerHour
	}
	if p.RetryAttempts > 0 {
		c.MaxRetries = p.RetryAttempts
	}
}

// Validate validates the BigBuy configuration
func (c *BigBuyConfig) Validate() error {
	if c.APIKey == "" {
		return ErrBigBuyConfigMissingAPIKey
	}
	if c.APIBaseURL == "" {
		if c.IsSandbox {
			c.APIBaseURL = BigBuySandboxAPIURL
		} else {
			c.APIBaseURL = BigBuyProductionAPIURL
		}
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
	return nil
}
