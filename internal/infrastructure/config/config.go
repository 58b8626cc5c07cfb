package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Log       LogConfig
	Suppliers SuppliersConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// ProviderConfig holds the per-provider connector settings. Credentials are
// NOT configured here; they arrive from the secrets store at connector
// construction time.
type ProviderConfig struct {
	BaseURL           string
	Sandbox           bool
	TimeoutSeconds    int
	RequestsPerMinute int
	RequestsPerHour   int
	RetryAttempts     int
}

// SuppliersConfig holds one section per supported provider
type SuppliersConfig struct {
	AliExpress     ProviderConfig
	CJDropshipping ProviderConfig
	Printful       ProviderConfig
	BigBuy         ProviderConfig
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with DROPSHIP_ prefix (e.g. DROPSHIP_LOG_LEVEL)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("DROPSHIP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Suppliers: SuppliersConfig{
			AliExpress:     loadProvider(v, "suppliers.aliexpress"),
			CJDropshipping: loadProvider(v, "suppliers.cjdropshipping"),
			Printful:       loadProvider(v, "suppliers.printful"),
			BigBuy:         loadProvider(v, "suppliers.bigbuy"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadProvider reads one provider section
func loadProvider(v *viper.Viper, key string) ProviderConfig {
	return ProviderConfig{
		BaseURL:           v.GetString(key + ".base_url"),
		Sandbox:           v.GetBool(key + ".sandbox"),
		TimeoutSeconds:    v.GetInt(key + ".timeout_seconds"),
		RequestsPerMinute: v.GetInt(key + ".requests_per_minute"),
		RequestsPerHour:   v.GetInt(key + ".requests_per_hour"),
		RetryAttempts:     v.GetInt(key + ".retry_attempts"),
	}
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "dropship-backend"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	for _, p := range []*ProviderConfig{
		&cfg.Suppliers.AliExpress,
		&cfg.Suppliers.CJDropshipping,
		&cfg.Suppliers.Printful,
		&cfg.Suppliers.BigBuy,
	} {
		applyProviderDefaults(p)
	}
}

// applyProviderDefaults fills conservative per-provider defaults. Base URLs
// are left empty here; each connector config falls back to its production
// endpoint when none is configured.
func applyProviderDefaults(p *ProviderConfig) {
	if p.TimeoutSeconds == 0 {
		p.TimeoutSeconds = 30
	}
	if p.RequestsPerMinute == 0 {
		p.RequestsPerMinute = 60
	}
	if p.RequestsPerHour == 0 {
		p.RequestsPerHour = 1000
	}
	if p.RetryAttempts == 0 {
		p.RetryAttempts = 3
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	providers := map[string]ProviderConfig{
		"suppliers.aliexpress":     c.Suppliers.AliExpress,
		"suppliers.cjdropshipping": c.Suppliers.CJDropshipping,
		"suppliers.printful":       c.Suppliers.Printful,
		"suppliers.bigbuy":         c.Suppliers.BigBuy,
	}
	for name, p := range providers {
		if p.RequestsPerMinute < 0 || p.RequestsPerHour < 0 {
			return fmt.Errorf("%s: rate budgets cannot be negative", name)
		}
		if p.RequestsPerMinute > p.RequestsPerHour {
			return fmt.Errorf("%s: requests_per_minute (%d) cannot exceed requests_per_hour (%d)",
				name, p.RequestsPerMinute, p.RequestsPerHour)
		}
		if p.RetryAttempts < 1 {
			return fmt.Errorf("%s: retry_attempts must be at least 1", name)
		}
	}

	// Production-specific validations
	if c.App.Env == "production" {
		for name, p := range providers {
			if p.Sandbox {
				return fmt.Errorf("%s: sandbox endpoints are not allowed in production", name)
			}
		}
	}

	return nil
}
