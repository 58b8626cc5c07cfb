package suppliers

import (
	"crypto/hmac"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"sort"
	"strings"

	"github.com/dropship/backend/internal/infrastructure/config"
)

// AliExpressConfig holds configuration for the AliExpress dropshipping API.
// AliExpress belongs to the signed-request family: every request carries a
// keyed-hash signature over the sorted parameter set plus a millisecond
// timestamp, and the session key joins the signed parameters once the
// connector has authenticated.
type AliExpressConfig struct {
	// AppKey is the application key from the AliExpress open platform
	AppKey string
	// AppSecret is the application secret used for request signing
	AppSecret string
	// APIBaseURL is the gateway URL (production or sandbox)
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
	// WebhookSecret verifies inbound provider pushes
	WebhookSecret string
}

const (
	// AliExpressProductionAPIURL is the production gateway endpoint
	AliExpressProductionAPIURL = "https://api-sg.aliexpress.com/sync"
	// AliExpressSandboxAPIURL is the sandbox gateway endpoint
	AliExpressSandboxAPIURL = "https://api-sg.aliexpress.com/sandbox/sync"
)

// Errors for AliExpress configuration
var (
	ErrAliExpressConfigMissingAppKey    = errors.New("aliexpress: app key is required")
	ErrAliExpressConfigMissingAppSecret = errors.New("aliexpress: app secret is required")
)

// NewAliExpressConfig creates a new AliExpress configuration with defaults
func NewAliExpressConfig(appKey, appSecret string) *AliExpressConfig {
	return &AliExpressConfig{
		AppKey:            appKey,
		AppSecret:         appSecret,
		APIBaseURL:        AliExpressProductionAPIURL,
		TimeoutSeconds:    30,
		RequestsPerMinute: 60,
		RequestsPerHour:   1000,
		MaxRetries:        3,
	}
}

// applyProviderConfig overlays the configured provider section.
func (c *AliExpressConfig) applyProviderConfig(p config.ProviderConfig) {
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

// Validate validates the AliExpress configuration
func (c *AliExpressConfig) Validate() error {
	if c.AppKey == "" {
		return ErrAliExpressConfigMissingAppKey
	}
	if c.AppSecret == "" {
		return ErrAliExpressConfigMissingAppSecret
	}
	if c.APIBaseURL == "" {
		if c.IsSandbox {
			c.APIBaseURL = AliExpressSandboxAPIURL
		} else {
			c.APIBaseURL = AliExpressProductionAPIURL
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

// Sign generates the request signature.
// The gateway expects HMAC-MD5 over the sorted parameter set:
// concatenate key1value1key2value2... in key order, key the hash with the app
// secret, and uppercase the hex digest. The "sign" parameter itself is
// excluded from the signed set.
func (c *AliExpressConfig) Sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == "sign" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for _, k := range keys {
		builder.WriteString(k)
		builder.WriteString(params[k])
	}

	h := hmac.New(md5.New, []byte(c.AppSecret))
	h.Write([]byte(builder.String()))
	return strings.ToUpper(hex.EncodeToString(h.Sum(nil)))
}
