package suppliers

import (
	"errors"

	"github.com/dropship/backend/internal/infrastructure/config"
)

// PrintfulConfig holds configuration for the Printful print-on-demand API.
// Printful uses a static bearer token: no login exchange, no refresh step.
type PrintfulConfig struct {
	// APIToken is the pre-issued bearer token
	APIToken string
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
	// MockupPollSeconds is the fixed interval between mockup task polls
	MockupPollSeconds int
	// MockupMaxPolls bounds the mockup polling budget; a task still pending
	// after the last poll is reported as timed out, not failed
	MockupMaxPolls int
}

// PrintfulProductionAPIURL is the production API root
const PrintfulProductionAPIURL = "https://api.printful.com"

// ErrPrintfulConfigMissingToken indicates the bearer token is missing
var ErrPrintfulConfigMissingToken = errors.New("printful: api token is required")

// NewPrintfulConfig creates a new Printful configuration with defaults
func NewPrintfulConfig(apiToken string) *PrintfulConfig {
	return &PrintfulConfig{
		APIToken:          apiToken,
		APIBaseURL:        PrintfulProductionAPIURL,
		TimeoutSeconds:    30,
		RequestsPerMinute: 60,
		RequestsPerHour:   1000,
		MaxRetries:        3,
		MockupPollSeconds: 2,
		MockupMaxPolls:    15,
	}
}

// applyProviderConfig overlays the configured provider section.
func (c *PrintfulConfig) applyProviderConfig(p config.ProviderConfig) {
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

// Validate validates the Printful configuration
func (c *PrintfulConfig) Validate() error {
	if c.APIToken == "" {
		return ErrPrintfulConfigMissingToken
	}
	if c.APIBaseURL == "" {
		c.APIBaseURL = PrintfulProductionAPIURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
	if c.MockupPollSeconds <= 0 {
		c.MockupPollSeconds = 2
	}
	if c.MockupMaxPolls <= 0 {
		c.MockupMaxPolls = 15
	}
	return nil
}
