package supplier

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// OrderStatus
// ---------------------------------------------------------------------------

// OrderStatus is the canonical status vocabulary for a supplier order.
// Every provider-specific status maps onto one of these values; unknown
// provider statuses map to OrderStatusPending.
type OrderStatus string

const (
	// OrderStatusPending indicates the order has been created locally but not
	// yet acknowledged by the provider
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusSubmitted indicates the provider accepted the order
	OrderStatusSubmitted OrderStatus = "SUBMITTED"
	// OrderStatusProcessing indicates the provider is preparing the shipment
	OrderStatusProcessing OrderStatus = "PROCESSING"
	// OrderStatusShipped indicates the order has left the provider's warehouse
	OrderStatusShipped OrderStatus = "SHIPPED"
	// OrderStatusDelivered indicates the carrier reported delivery
	OrderStatusDelivered OrderStatus = "DELIVERED"
	// OrderStatusCancelled indicates the order was cancelled
	OrderStatusCancelled OrderStatus = "CANCELLED"
	// OrderStatusFailed indicates the provider rejected or failed the order
	OrderStatusFailed OrderStatus = "FAILED"
)

// forwardRank orders the non-terminal happy-path statuses; terminal failure
// states are handled separately by CanTransitionTo.
var forwardRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusSubmitted:  1,
	OrderStatusProcessing: 2,
	OrderStatusShipped:    3,
	OrderStatusDelivered:  4,
}

// IsValid returns true if the status is part of the canonical vocabulary
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusSubmitted, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatusFailed:
		return true
	default:
		return false
	}
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// IsTerminal returns true for DELIVERED, CANCELLED and FAILED. A terminal
// order must not mutate further except by a fresh fetch reconciling
// provider-side state.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusDelivered, OrderStatusCancelled, OrderStatusFailed:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the lifecycle permits moving from s to next.
// The happy path only moves forward (PENDING -> SUBMITTED -> PROCESSING ->
// SHIPPED -> DELIVERED); CANCELLED and FAILED are reachable from any
// non-terminal state; terminal states permit no transition.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !s.IsValid() || !next.IsValid() {
		return false
	}
	if s.IsTerminal() {
		return false
	}
	if next == OrderStatusCancelled || next == OrderStatusFailed {
		return true
	}
	return forwardRank[next] > forwardRank[s]
}

// ---------------------------------------------------------------------------
// SupplierOrder
// ---------------------------------------------------------------------------

// OrderItem is one ordered line item.
type OrderItem struct {
	// ExternalProductID is the product identifier on the provider
	ExternalProductID string `validate:"required"`
	// VariantID is the variant identifier on the provider (optional)
	VariantID string
	// SKU is the provider-side SKU code (optional)
	SKU string
	// Quantity is the ordered quantity
	Quantity int `validate:"required,gt=0"`
	// UnitPrice is the agreed unit price
	UnitPrice decimal.Decimal
}

// ShippingAddress is the delivery destination for a supplier order.
type ShippingAddress struct {
	Name        string `validate:"required"`
	Phone       string
	AddressLine string `validate:"required"`
	City        string `validate:"required"`
	Province    string
	PostalCode  string
	CountryCode string `validate:"required,len=2"`
}

// ShippingMethod describes one delivery option offered by a provider.
type ShippingMethod struct {
	// Code is the provider's method identifier
	Code string
	// Name is the human-readable method name
	Name string
	// Cost is the quoted cost for this method
	Cost decimal.Decimal
	// Currency is the quote currency
	Currency string
	// MinDays and MaxDays bound the delivery estimate
	MinDays int
	MaxDays int
}

// ShippingQuote is the result of a shipping cost calculation.
type ShippingQuote struct {
	Method   string
	Cost     decimal.Decimal
	Currency string
	MinDays  int
	MaxDays  int
}

// OrderRequest carries everything a connector needs to place one order.
//
// ClientOrderRef is the caller-supplied idempotency key: a connector never
// resubmits on its own, and after an ErrOrderStateUnknown outcome the caller
// must reconcile by this reference before placing the order again.
type OrderRequest struct {
	ClientOrderRef  uuid.UUID       `validate:"required"`
	Items           []OrderItem     `validate:"required,min=1,dive"`
	ShippingAddress ShippingAddress `validate:"required"`
	ShippingMethod  string
}

var orderValidator = validator.New()

// Validate checks the request before it is sent to a provider.
func (r *OrderRequest) Validate() error {
	if r.ClientOrderRef == uuid.Nil {
		return errors.Join(ErrInvalidRequest, errors.New("client order reference is required"))
	}
	if err := orderValidator.Struct(r); err != nil {
		return errors.Join(ErrInvalidRequest, err)
	}
	return nil
}

// SupplierOrder represents one order placed with a provider. It is created by
// PlaceOrder and advanced only by provider-reported changes (GetOrder or
// webhook); the connector that created it is its sole owner.
type SupplierOrder struct {
	// ExternalOrderID is the order identifier on the provider
	ExternalOrderID string
	// Provider identifies which supplier holds this order
	Provider ProviderCode
	// ClientOrderRef echoes the idempotency key the order was placed with
	ClientOrderRef uuid.UUID
	// Status is the canonical order status
	Status OrderStatus
	// Items contains the ordered line items
	Items []OrderItem
	// ShippingAddress is the delivery destination
	ShippingAddress ShippingAddress
	// ShippingMethod is the chosen delivery method code
	ShippingMethod string
	// ShippingCost is the charged shipping cost
	ShippingCost decimal.Decimal
	// TotalCost is the total charged amount
	TotalCost decimal.Decimal
	// Currency is the ISO 4217 currency code
	Currency string
	// TrackingNumber is the carrier tracking number (optional)
	TrackingNumber string
	// Carrier is the carrier name (optional)
	Carrier string
	// TrackingURL is the carrier tracking page URL (optional)
	TrackingURL string
	// EstimatedDelivery is the provider's delivery estimate (optional)
	EstimatedDelivery *time.Time
	// CreatedAt is when the order was created on the provider
	CreatedAt time.Time
	// UpdatedAt is when the provider last reported a change
	UpdatedAt time.Time
}

// ---------------------------------------------------------------------------
// TrackingEvent
// ---------------------------------------------------------------------------

// TrackingEvent is one entry in an order's append-only tracking history.
// Connectors return event sequences oldest first.
type TrackingEvent struct {
	// Timestamp is when the event occurred
	Timestamp time.Time
	// Status is the carrier/provider status code for the event
	Status string
	// Description is the human-readable event description
	Description string
	// Location is where the event occurred (optional)
	Location string
}
