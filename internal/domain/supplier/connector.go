package supplier

import (
	"context"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Credentials
// ---------------------------------------------------------------------------

// Credentials is the decrypted credential bundle handed to the registry when
// constructing a connector. Which fields are required is provider-specific;
// each connector's config validates its own subset. This package never stores
// or encrypts credentials; that is the secrets store's job.
type Credentials struct {
	// APIKey is a static API key or application key
	APIKey string
	// APISecret is the shared secret used for request signing
	APISecret string
	// Email is the account email for providers using login-based auth
	Email string
	// Password is the account password or password hash
	Password string
	// AccessToken is a pre-issued OAuth/bearer access token
	AccessToken string
	// RefreshToken is the long-lived token exchanged for new access tokens
	RefreshToken string
	// WebhookSecret is the shared secret for inbound webhook verification
	WebhookSecret string
	// Extra holds provider-specific credential fields
	Extra map[string]string
}

// ---------------------------------------------------------------------------
// SearchQuery
// ---------------------------------------------------------------------------

// SearchQuery describes one catalog search.
type SearchQuery struct {
	// Query is the free-text search term
	Query string
	// Category restricts results to one provider category (optional)
	Category string
	// Page is the 1-indexed result page
	Page int
	// Limit caps the number of returned products
	Limit int
	// Filters holds provider-specific search filters
	Filters map[string]string
}

// Normalize applies the paging defaults connectors rely on.
func (q *SearchQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 20
	}
}

// ---------------------------------------------------------------------------
// Connector Port Interface
// ---------------------------------------------------------------------------

// Connector is the capability surface every supplier integration must provide.
// Implementations translate provider responses into the canonical model and
// funnel every outbound call through the shared rate limiter and retry
// executor. Connectors are safe for concurrent use by multiple callers.
type Connector interface {
	// ProviderCode returns the provider this connector integrates
	ProviderCode() ProviderCode

	// Authenticate establishes or validates credentials with the provider.
	// It is idempotent and safe to call repeatedly.
	Authenticate(ctx context.Context) error

	// RefreshToken exchanges the refresh token for a new access token.
	// Connectors whose auth scheme has no refresh step return ErrNotSupported.
	// The swap is atomic: concurrent calls observe either the old or the new
	// token, never a torn state.
	RefreshToken(ctx context.Context) error

	// SearchProducts returns at most query.Limit normalized products matching
	// a free-text query. No results is an empty slice, never an error;
	// network/auth failures propagate as errors.
	SearchProducts(ctx context.Context, query SearchQuery) ([]SupplierProduct, error)

	// GetProduct fetches one product by its provider identifier
	GetProduct(ctx context.Context, externalID string) (*SupplierProduct, error)

	// GetProductVariants fetches the variant list for one product
	GetProductVariants(ctx context.Context, externalID string) ([]ProductVariant, error)

	// GetInventory reports stock for the given product ids. Best effort: a
	// failure fetching one id is logged and that id omitted from the result
	// rather than failing the batch.
	GetInventory(ctx context.Context, productIDs []string) ([]InventoryUpdate, error)

	// GetShippingMethods lists delivery options for a product and destination
	GetShippingMethods(ctx context.Context, externalID, countryCode string) ([]ShippingMethod, error)

	// CalculateShipping quotes the cost of shipping the given items
	CalculateShipping(ctx context.Context, items []OrderItem, address ShippingAddress, method string) (*ShippingQuote, error)

	// PlaceOrder submits one order to the provider. Call at most once per
	// logical order: the connector does not guarantee idempotency across
	// caller retries. An ambiguous network failure after the request may have
	// reached the provider surfaces as ErrOrderStateUnknown; reconcile via
	// GetOrder before resubmitting.
	PlaceOrder(ctx context.Context, req *OrderRequest) (*SupplierOrder, error)

	// GetOrder fetches the current provider-side state of one order
	GetOrder(ctx context.Context, externalOrderID string) (*SupplierOrder, error)

	// CancelOrder requests cancellation of one order
	CancelOrder(ctx context.Context, externalOrderID string) error

	// GetTracking returns the full known tracking history, oldest first.
	// No events yet is an empty slice, never an error.
	GetTracking(ctx context.Context, externalOrderID string) ([]TrackingEvent, error)

	// GetCategories lists the provider's catalog categories
	GetCategories(ctx context.Context) ([]Category, error)

	// Close releases the connector's network session. Safe to call after
	// errors and more than once.
	Close() error
}

// ---------------------------------------------------------------------------
// Optional Capabilities
// ---------------------------------------------------------------------------

// TrendingProvider is implemented by connectors whose provider exposes a
// trending/bestseller feed. Callers discover support via type assertion.
type TrendingProvider interface {
	GetTrendingProducts(ctx context.Context, category string, limit int) ([]SupplierProduct, error)
}

// WarehouseProvider is implemented by connectors whose provider reports its
// fulfillment warehouses.
type WarehouseProvider interface {
	GetWarehouses(ctx context.Context) ([]Warehouse, error)
}

// SampleOrderer is implemented by connectors whose provider supports ordering
// a product sample before committing to a listing.
type SampleOrderer interface {
	OrderSample(ctx context.Context, externalID string, address ShippingAddress) (*SupplierOrder, error)
}

// PODProvider is implemented by print-on-demand connectors.
type PODProvider interface {
	// GetPODTemplates lists the print placements for a base product
	GetPODTemplates(ctx context.Context, productID string) ([]PODTemplate, error)

	// CreatePODMockup submits an async render job and polls it with a bounded
	// budget. Returns a mockup with MockupStatusTimeout rather than blocking
	// indefinitely.
	CreatePODMockup(ctx context.Context, productID, designURL string, opts MockupOptions) (*PODMockup, error)

	// SubmitPODDesign registers a finished design as an orderable catalog entry
	SubmitPODDesign(ctx context.Context, productID, name, designURL string, retailPrice decimal.Decimal) (*PODDesign, error)
}
