package supplier

import (
	"context"
	"time"
)

// ---------------------------------------------------------------------------
// Webhook Ingestion
// ---------------------------------------------------------------------------

// WebhookEventType classifies a normalized provider push.
type WebhookEventType string

const (
	// WebhookEventOrderStatus is an order status change pushed by the provider
	WebhookEventOrderStatus WebhookEventType = "ORDER_STATUS"
	// WebhookEventInventory is a stock change pushed by the provider
	WebhookEventInventory WebhookEventType = "INVENTORY"
)

// OrderStatusChange is the normalized payload of an order-status webhook.
type OrderStatusChange struct {
	ExternalOrderID string
	Status          OrderStatus
	TrackingNumber  string
	Carrier         string
}

// WebhookEvent is a provider push normalized into the canonical shape.
// Exactly one of OrderStatus / Inventory is set, matching Type.
type WebhookEvent struct {
	// Provider identifies which supplier pushed the event
	Provider ProviderCode
	// Type classifies the event
	Type WebhookEventType
	// ReceivedAt is when the event was ingested
	ReceivedAt time.Time
	// OrderStatus carries the payload for WebhookEventOrderStatus events
	OrderStatus *OrderStatusChange
	// Inventory carries the payload for WebhookEventInventory events
	Inventory *InventoryUpdate
}

// WebhookConsumer is implemented by connectors whose provider pushes events.
// The external HTTP route handler calls VerifyWebhook before ProcessWebhook;
// an unverified signature must be rejected, never logged-and-accepted.
type WebhookConsumer interface {
	// VerifyWebhook checks the provider signature over the raw payload.
	// Providers without a signature scheme verify permissively.
	VerifyWebhook(payload []byte, signature string) bool

	// ProcessWebhook translates a verified provider push into a canonical event
	ProcessWebhook(ctx context.Context, eventType string, payload []byte) (*WebhookEvent, error)
}
