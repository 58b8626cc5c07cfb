package suppliers

import (
	"errors"

	"github.com/dropship/backend/internal/infrastructure/config"
)

// CJConfig holds configuration for the CJ Dropshipping API.
// CJ belongs to the token family: a login call exchanges the account email
// and API key for an access/refresh token pair, the access token rides on
// every request as a header, and the refresh token mints replacements
// without a full re-login.
type CJConfig struct {
	// Email is the CJ account email used for the login exchange
	Email string
	// APIKey is the account API key used as the login password
	APIKey string
	// APIBaseURL is the API root URL
	APIBaseURL string
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
	// RequestsPerMinute and RequestsPerHour are the rate limiter budgets
	RequestsPerMinute int
	RequestsPerHour   int
	// MaxRetries is the retry executor attempt ceiling
	MaxRetries int
	// WebhookSecret verifies inbound provider pushes
	WebhookSecret string
}

// CJProductionAPIURL is the production API root
const CJProductionAPIURL = "https://developers.cjdropshipping.com/api2.0/v1"

// Errors for CJ Dropshipping configuration
var (
	ErrCJConfigMissingEmail  = errors.New("cjdropshipping: account email is required")
	ErrCJConfigMissingAPIKey = errors.New("cjdropshipping: api key is required")
)

// NewCJConfig creates a new CJ Dropshipping configuration with defaults
func NewCJConfig(email, apiKey string) *CJConfig {
	return &CJConfig{
		Email:             email,
		APIKey:            apiKey,
		APIBaseURL:        CJProductionAPIURL,
		TimeoutSeconds:    30,
		RequestsPerMinute: 60,
		RequestsPerHour:   1000,
		MaxRetries:        3,
	}
}

// applyProviderConfig overlays the configured provider section.
func (c *CJConfig) applyProviderConfig(p config.ProviderConfig) {
	if p.BaseURL != "" {
		c.APIBaseURL = p.BaseURL
	}
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

// Validate validates the CJ Dropshipping configuration
func (c *CJConfig) Validate() error {
	if c.Email == "" {
		return ErrCJConfigMissingEmail
	}
	if c.APIKey == "" {
		return ErrCJConfigMissingAPIKey
	}
	if c.APIBaseURL == "" {
		c.APIBaseURL = CJProductionAPIURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
	return nil
}
