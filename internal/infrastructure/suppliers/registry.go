package suppliers

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/dropship/backend/internal/domain/supplier"
	"github.com/dropship/backend/internal/infrastructure/config"
	"github.com/dropship/backend/internal/infrastructure/logger"
)

// Builder constructs a connector from a decrypted credential bundle. The
// credential-to-config mapping inside a builder must be exhaustive for its
// provider; a missing mapping is a programming error caught in tests.
type Builder func(creds supplier.Credentials) (supplier.Connector, error)

// Registry maps provider codes to connector builders. It is an explicit
// object constructed at startup and passed by reference; there is no hidden
// process-wide registry. New providers register at runtime without touching
// the registry itself.
type Registry struct {
	mu       sync.RWMutex
	builders map[supplier.ProviderCode]Builder
	logger   *zap.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		builders: make(map[supplier.ProviderCode]Builder),
		logger:   logger,
	}
}

// NewDefaultRegistry creates a registry with all built-in providers wired to
// their configuration sections. A nil log builds the process logger from the
// configured log section; each connector receives a provider-tagged child.
func NewDefaultRegistry(cfg *config.Config, log *zap.Logger) *Registry {
	if log == nil {
		log = logger.New(&logger.Config{
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
			Output: cfg.Log.Output,
		})
	}
	r := NewRegistry(log)

	r.Register(supplier.ProviderCodeAliExpress, func(creds supplier.Credentials) (supplier.Connector, error) {
		c := NewAliExpressConfig(creds.APIKey, creds.APISecret)
		c.WebhookSecret = creds.WebhookSecret
		c.applyProviderConfig(cfg.Suppliers.AliExpress)
		return NewAliExpressConnector(c, logger.ForProvider(log, "aliexpress"))
	})

	r.Register(supplier.ProviderCodeCJDropshipping, func(creds supplier.Credentials) (supplier.Connector, error) {
		c := NewCJConfig(creds.Email, creds.APIKey)
		c.WebhookSecret = creds.WebhookSecret
		c.applyProviderConfig(cfg.Suppliers.CJDropshipping)
		return NewCJConnector(c, logger.ForProvider(log, "cjdropshipping"))
	})

	r.Register(supplier.ProviderCodePrintful, func(creds supplier.Credentials) (supplier.Connector, error) {
		c := NewPrintfulConfig(creds.AccessToken)
		if c.APIToken == "" {
			c.APIToken = creds.APIKey
		}
		c.WebhookSecret = creds.WebhookSecret
		c.applyProviderConfig(cfg.Suppliers.Printful)
		return NewPrintfulConnector(c, logger.ForProvider(log, "printful"))
	})

	r.Register(supplier.ProviderCodeBigBuy, func(creds supplier.Credentials) (supplier.Connector, error) {
		c := NewBigBuyConfig(creds.APIKey)
		c.applyProviderConfig(cfg.Suppliers.BigBuy)
		return NewBigBuyConnector(c, logger.ForProvider(log, "bigbuy"))
	})

	return r
}

// Register adds or replaces the builder for a provider code.
func (r *Registry) Register(code supplier.ProviderCode, builder Builder) {
	if builder == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builders[code] = builder
}

// IsRegistered reports whether a builder exists for the provider code.
func (r *Registry) IsRegistered(code supplier.ProviderCode) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.builders[code]
	return ok
}

// Codes returns all registered provider codes.
func (r *Registry) Codes() []supplier.ProviderCode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codes := make([]supplier.ProviderCode, 0, len(r.builders))
	for code := range r.builders {
		codes = append(codes, code)
	}
	return codes
}

// Connect constructs a connector for the provider and authenticates it so the
// caller receives a ready-to-use instance. Returns
// supplier.ErrProviderNotRegistered when no implementation is registered.
func (r *Registry) Connect(ctx context.Context, code supplier.ProviderCode, creds supplier.Credentials) (supplier.Connector, error) {
	r.mu.RLock()
	builder, ok := r.builders[code]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", supplier.ErrProviderNotRegistered, code)
	}

	conn, err := builder(creds)
	if err != nil {
		return nil, fmt.Errorf("building %s connector: %w", code, err)
	}

	if err := conn.Authenticate(ctx); err != nil {
		// Release the session a failed connector may have opened.
		_ = conn.Close()
		return nil, fmt.Errorf("authenticating %s connector: %w", code, err)
	}

	r.logger.Info("supplier connector ready", zap.String("provider", code.String()))
	return conn, nil
}
