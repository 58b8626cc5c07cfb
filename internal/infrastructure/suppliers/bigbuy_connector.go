package suppliers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/dropship/backend/internal/domain/supplier"
)

// bigbuyTimeLayout is the timestamp format the API reports
const bigbuyTimeLayout = "2006-01-02 15:04:05"

// BigBuyConnector implements the supplier.Connector contract for the BigBuy
// wholesale API (static API key, no refresh). BigBuy products have no
// variants: the catalog is flat SKUs.
type BigBuyConnector struct {
	config     *BigBuyConfig
	httpClient *http.Client
	limiter    *RateLimiter
	retry      RetryPolicy
	logger     *zap.Logger
}

// NewBigBuyConnector creates a connector with the given configuration
func NewBigBuyConnector(config *BigBuyConfig, logger *zap.Logger) (*BigBuyConnector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	retry := DefaultRetryPolicy()
	retry.MaxAttempts = config.MaxRetries

	return &BigBuyConnector{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		limiter: NewRateLimiter(config.RequestsPerMinute, config.RequestsPerHour),
		retry:   retry,
		logger:  logger.Named("bigbuy"),
	}, nil
}

// ProviderCode returns the provider this connector integrates
func (c *BigBuyConnector) ProviderCode() supplier.ProviderCode {
	return supplier.ProviderCodeBigBuy
}

// ---------------------------------------------------------------------------
// Authentication
// ---------------------------------------------------------------------------

// Authenticate validates the static API key against the account endpoint
func (c *BigBuyConnector) Authenticate(ctx context.Context) error {
	return c.call(ctx, http.MethodGet, "/rest/user/purse.json", nil, nil, nil)
}

// RefreshToken is not supported: the API key is static.
func (c *BigBuyConnector) RefreshToken(_ context.Context) error {
	return fmt.Errorf("%w: bigbuy uses a static api key", supplier.ErrNotSupported)
}

// ---------------------------------------------------------------------------
// Catalog Operations
// ---------------------------------------------------------------------------

// SearchProducts pages the catalog and filters by name match: the provider
// has no free-text search endpoint.
func (c *BigBuyConnector) SearchProducts(ctx context.Context, query supplier.SearchQuery) ([]supplier.SupplierProduct, error) {
	query.Normalize()

	params := url.Values{}
	params.Set("page", strconv.Itoa(query.Page))
	params.Set("pageSize", strconv.Itoa(query.Limit*5)) // over-fetch: filtering discards rows
	if query.Category != "" {
		params.Set("category", query.Category)
	}

	var catalog []BigBuyProduct
	if err := c.call(ctx, http.MethodGet, "/rest/catalog/products.json", params, nil, &catalog); err != nil {
		return nil, err
	}
	return c.filterCatalog(catalog, query.Query, query.Limit), nil
}

func (c *BigBuyConnector) filterCatalog(catalog []BigBuyProduct, needle string, limit int) []supplier.SupplierProduct {
	needle = strings.ToLower(needle)
	products := make([]supplier.SupplierProduct, 0)
	for i := range catalog {
		p := &catalog[i]
		if !p.Active {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if len(products) >= limit {
			break
		}
		product := c.translateProduct(p)
		if err := product.Validate(); err != nil {
			c.logger.Warn("skipping invalid product from catalog",
				zap.String("external_id", product.ExternalID), zap.Error(err))
			continue
		}
		products = append(products, product)
	}
	return products
}

// GetProduct fetches one product by its catalog id
func (c *BigBuyConnector) GetProduct(ctx context.Context, externalID string) (*supplier.SupplierProduct, error) {
	var data BigBuyProduct
	if err := c.call(ctx, http.MethodGet, "/rest/catalog/product/"+externalID+".json", nil, nil, &data); err != nil {
		return nil, err
	}
	if data.ID == 0 {
		return nil, fmt.Errorf("%w: bigbuy product %s", supplier.ErrProductNotFound, externalID)
	}
	product := c.translateProduct(&data)
	return &product, nil
}

// GetProductVariants returns an empty list: the catalog is flat SKUs.
func (c *BigBuyConnector) GetProductVariants(_ context.Context, _ string) ([]supplier.ProductVariant, error) {
	return []supplier.ProductVariant{}, nil
}

// GetInventory reports stock for the given ids, summed across warehouses.
// Best effort: a failure on one id is logged and omitted.
func (c *BigBuyConnector) GetInventory(ctx context.Context, productIDs []string) ([]supplier.InventoryUpdate, error) {
	updates := make([]supplier.InventoryUpdate, 0, len(productIDs))
	for _, id := range productIDs {
		if ctx.Err() != nil {
			return updates, ctx.Err()
		}

		var stock BigBuyProductStock
		if err := c.call(ctx, http.MethodGet, "/rest/catalog/productstock/"+id+".json", nil, nil, &stock); err != nil {
			c.logger.Warn("inventory fetch failed, omitting product",
				zap.String("external_id", id), zap.Error(err))
			continue
		}

		var total int
		for _, entry := range stock.Stocks {
			total += entry.Quantity
		}
		updates = append(updates, supplier.NewInventoryUpdate(id, stock.SKU, total))
	}
	return updates, nil
}

// GetCategories lists the provider catalog categories
func (c *BigBuyConnector) GetCategories(ctx context.Context) ([]supplier.Category, error) {
	var data []BigBuyCategory
	if err := c.call(ctx, http.MethodGet, "/rest/catalog/categories.json", nil, nil, &data); err != nil {
		return nil, err
	}

	categories := make([]supplier.Category, 0, len(data))
	for _, cat := range data {
		category := supplier.Category{
			ExternalID: strconv.FormatInt(cat.ID, 10),
			Name:       cat.Name,
		}
		if cat.ParentID > 0 {
			category.ParentID = strconv.FormatInt(cat.ParentID, 10)
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// ---------------------------------------------------------------------------
// Shipping Operations
// ---------------------------------------------------------------------------

// GetShippingMethods quotes delivery options for one unit of a product
func (c *BigBuyConnector) GetShippingMethods(ctx context.Context, externalID, countryCode string) ([]supplier.ShippingMethod, error) {
	product, err := c.GetProduct(ctx, externalID)
	if err != nil {
		return nil, err
	}

	var req BigBuyShippingRequest
	req.Order.Delivery = BigBuyDelivery{IsoCountry: countryCode}
	req.Order.Products = []BigBuyCartProduct{{Reference: product.SKU, Quantity: 1}}
	return c.shippingOptions(ctx, req)
}

// CalculateShipping quotes the given method for the full item set; when no
// method is named the cheapest option wins.
func (c *BigBuyConnector) CalculateShipping(ctx context.Context, items []supplier.OrderItem, address supplier.ShippingAddress, method string) (*supplier.ShippingQuote, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items to quote", supplier.ErrInvalidRequest)
	}

	var req BigBuyShippingRequest
	req.Order.Delivery = BigBuyDelivery{IsoCountry: address.CountryCode, Postcode: address.PostalCode}
	for _, item := range items {
		req.Order.Products = append(req.Order.Products, BigBuyCartProduct{
			Reference: bigbuyReference(item),
			Quantity:  item.Quantity,
		})
	}

	methods, err := c.shippingOptions(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(methods) == 0 {
		return nil, fmt.Errorf("%w: bigbuy offers no shipping to %s", supplier.ErrInvalidRequest, address.CountryCode)
	}

	var chosen *supplier.ShippingMethod
	for i := range methods {
		m := &methods[i]
		if method != "" && m.Code == method {
			chosen = m
			break
		}
		if method == "" && (chosen == nil || m.Cost.LessThan(chosen.Cost)) {
			chosen = m
		}
	}
	if chosen == nil {
		return nil, fmt.Errorf("%w: shipping method %q not offered", supplier.ErrInvalidRequest, method)
	}

	return &supplier.ShippingQuote{
		Method:   chosen.Code,
		Cost:     chosen.Cost,
		Currency: chosen.Currency,
		MinDays:  chosen.MinDays,
		MaxDays:  chosen.MaxDays,
	}, nil
}

func (c *BigBuyConnector) shippingOptions(ctx context.Context, req BigBuyShippingRequest) ([]supplier.ShippingMethod, error) {
	var resp BigBuyShippingResponse
	if err := c.call(ctx, http.MethodPost, "/rest/shipping/orders.json", nil, req, &resp); err != nil {
		return nil, err
	}

	methods := make([]supplier.ShippingMethod, 0, len(resp.ShippingOptions))
	for _, opt := range resp.ShippingOptions {
		minDays, maxDays := parseCJAging(opt.Service.Delay)
		methods = append(methods, supplier.ShippingMethod{
			Code:     opt.Service.Name,
			Name:     opt.Service.Name,
			Cost:     decimal.NewFromFloat(opt.Cost),
			Currency: "EUR",
			MinDays:  minDays,
			MaxDays:  maxDays,
		})
	}
	return methods, nil
}

// bigbuyReference picks the cart reference for an item: BigBuy carts are
// keyed by SKU, not catalog id.
func bigbuyReference(item supplier.OrderItem) string {
	if item.SKU != "" {
		return item.SKU
	}
	return item.ExternalProductID
}

// ---------------------------------------------------------------------------
// Order Operations
// ---------------------------------------------------------------------------

// PlaceOrder submits one order. The HTTP call is made exactly once (never
// retried), so a transport failure after the request may have reached the
// provider surfaces as ErrOrderStateUnknown for the caller to reconcile via
// GetOrder before resubmitting.
func (c *BigBuyConnector) PlaceOrder(ctx context.Context, req *supplier.OrderRequest) (*supplier.SupplierOrder, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	firstName, lastName := splitRecipientName(req.ShippingAddress.Name)
	var body BigBuyOrderCreate
	body.Order.InternalReference = req.ClientOrderRef.String()
	body.Order.Language = "en"
	body.Order.ShippingService = req.ShippingMethod
	body.Order.Shipping = BigBuyOrderAddress{
		FirstName:  firstName,
		LastName:   lastName,
		Address:    req.ShippingAddress.AddressLine,
		Postcode:   req.ShippingAddress.PostalCode,
		Town:       req.ShippingAddress.City,
		IsoCountry: req.ShippingAddress.CountryCode,
		Phone:      req.ShippingAddress.Phone,
	}
	for _, item := range req.Items {
		body.Order.Products = append(body.Order.Products, BigBuyCartProduct{
			Reference: bigbuyReference(item),
			Quantity:  item.Quantity,
		})
	}

	if err := c.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	raw, err := c.doRequest(ctx, http.MethodPost, "/rest/order/create.json", nil, body)
	if err != nil {
		if supplier.IsTransient(err) {
			// The request may have reached the provider before the failure.
			return nil, fmt.Errorf("%w: bigbuy order %s: %v",
				supplier.ErrOrderStateUnknown, req.ClientOrderRef, err)
		}
		return nil, err
	}

	var created BigBuyOrderCreated
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, fmt.Errorf("%w: bigbuy order %s: unparseable response: %v",
			supplier.ErrOrderStateUnknown, req.ClientOrderRef, err)
	}
	if created.OrderID == 0 {
		return nil, fmt.Errorf("%w: bigbuy returned no order id", supplier.ErrInvalidRequest)
	}

	now := time.Now()
	return &supplier.SupplierOrder{
		ExternalOrderID: strconv.FormatInt(created.OrderID, 10),
		Provider:        supplier.ProviderCodeBigBuy,
		ClientOrderRef:  req.ClientOrderRef,
		Status:          supplier.OrderStatusSubmitted,
		Items:           req.Items,
		ShippingAddress: req.ShippingAddress,
		ShippingMethod:  req.ShippingMethod,
		Currency:        "EUR",
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// GetOrder fetches the current provider-side order state
func (c *BigBuyConnector) GetOrder(ctx context.Context, externalOrderID string) (*supplier.SupplierOrder, error) {
	var data BigBuyOrder
	if err := c.call(ctx, http.MethodGet, "/rest/order/"+externalOrderID+".json", nil, nil, &data); err != nil {
		if errors.Is(err, supplier.ErrProductNotFound) {
			return nil, fmt.Errorf("%w: bigbuy order %s", supplier.ErrOrderNotFound, externalOrderID)
		}
		return nil, err
	}
	if data.ID == 0 {
		return nil, fmt.Errorf("%w: bigbuy order %s", supplier.ErrOrderNotFound, externalOrderID)
	}
	return c.translateOrder(&data), nil
}

// CancelOrder requests cancellation of one order
func (c *BigBuyConnector) CancelOrder(ctx context.Context, externalOrderID string) error {
	return c.call(ctx, http.MethodPost, "/rest/order/cancel/"+externalOrderID+".json", nil, nil, nil)
}

// GetTracking returns the known tracking history, oldest first. No events yet
// is an empty slice, never an error.
func (c *BigBuyConnector) GetTracking(ctx context.Context, externalOrderID string) ([]supplier.TrackingEvent, error) {
	var data BigBuyTrackingResponse
	if err := c.call(ctx, http.MethodGet, "/rest/tracking/order/"+externalOrderID+".json", nil, nil, &data); err != nil {
		return nil, err
	}

	events := make([]supplier.TrackingEvent, 0, len(data.Trackings))
	for _, e := range data.Trackings {
		event := supplier.TrackingEvent{
			Status:      e.Status,
			Description: e.Description,
			Location:    e.Location,
		}
		if t, err := time.ParseInLocation(bigbuyTimeLayout, e.Datetime, time.UTC); err == nil {
			event.Timestamp = t
		}
		events = append(events, event)
	}
	return events, nil
}

// Close releases the connector's HTTP session
func (c *BigBuyConnector) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// ---------------------------------------------------------------------------
// Optional Capabilities
// ---------------------------------------------------------------------------

// GetTrendingProducts returns the provider's new-arrivals feed, optionally
// restricted to one category.
func (c *BigBuyConnector) GetTrendingProducts(ctx context.Context, category string, limit int) ([]supplier.SupplierProduct, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	params := url.Values{}
	if category != "" {
		params.Set("category", category)
	}
	var catalog []BigBuyProduct
	if err := c.call(ctx, http.MethodGet, "/rest/catalog/newproducts.json", params, nil, &catalog); err != nil {
		return nil, err
	}
	return c.filterCatalog(catalog, "", limit), nil
}

// GetWarehouses lists the provider's fulfillment warehouses
func (c *BigBuyConnector) GetWarehouses(ctx context.Context) ([]supplier.Warehouse, error) {
	var data []BigBuyWarehouse
	if err := c.call(ctx, http.MethodGet, "/rest/catalog/warehouses.json", nil, nil, &data); err != nil {
		return nil, err
	}

	warehouses := make([]supplier.Warehouse, 0, len(data))
	for _, w := range data {
		warehouses = append(warehouses, supplier.Warehouse{
			ExternalID:  strconv.FormatInt(w.ID, 10),
			Name:        w.Name,
			CountryCode: w.IsoCountry,
			City:        w.City,
		})
	}
	return warehouses, nil
}

// ---------------------------------------------------------------------------
// Webhook Ingestion
// ---------------------------------------------------------------------------

// VerifyWebhook always accepts: the provider has no signature scheme, so
// inbound pushes are gated by the route URL alone.
func (c *BigBuyConnector) VerifyWebhook(_ []byte, _ string) bool {
	return true
}

// ProcessWebhook translates a provider push into a canonical event
func (c *BigBuyConnector) ProcessWebhook(_ context.Context, eventType string, payload []byte) (*supplier.WebhookEvent, error) {
	switch eventType {
	case "order_status":
		var push BigBuyOrderWebhook
		if err := json.Unmarshal(payload, &push); err != nil {
			return nil, fmt.Errorf("bigbuy: failed to parse webhook payload: %w", err)
		}
		return &supplier.WebhookEvent{
			Provider:   supplier.ProviderCodeBigBuy,
			Type:       supplier.WebhookEventOrderStatus,
			ReceivedAt: time.Now(),
			OrderStatus: &supplier.OrderStatusChange{
				ExternalOrderID: strconv.FormatInt(push.OrderID, 10),
				Status:          mapBigBuyOrderStatus(push.Status),
				TrackingNumber:  push.TrackingNumber,
				Carrier:         push.CarrierName,
			},
		}, nil
	case "inventory":
		var push BigBuyStockWebhook
		if err := json.Unmarshal(payload, &push); err != nil {
			return nil, fmt.Errorf("bigbuy: failed to parse webhook payload: %w", err)
		}
		update := supplier.NewInventoryUpdate(strconv.FormatInt(push.ProductID, 10), push.SKU, push.Stock)
		return &supplier.WebhookEvent{
			Provider:   supplier.ProviderCodeBigBuy,
			Type:       supplier.WebhookEventInventory,
			ReceivedAt: time.Now(),
			Inventory:  &update,
		}, nil
	default:
		return nil, fmt.Errorf("%w: bigbuy %q", supplier.ErrUnknownWebhookEvent, eventType)
	}
}

// ---------------------------------------------------------------------------
// Internal Helpers
// ---------------------------------------------------------------------------

// call funnels one API request through the rate limiter and retry executor
// and decodes the payload into out when given. BigBuy has no response
// envelope: HTTP status codes carry the whole error vocabulary.
func (c *BigBuyConnector) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	return Retry(ctx, c.retry, func(ctx context.Context) error {
		if err := c.limiter.Acquire(ctx); err != nil {
			return err
		}
		raw, err := c.doRequest(ctx, method, path, query, body)
		if err != nil {
			return err
		}
		if out != nil && len(raw) > 0 && string(raw) != "null" {
			if err := json.Unmarshal(raw, out); err != nil {
				return fmt.Errorf("bigbuy: failed to parse response: %w", err)
			}
		}
		return nil
	})
}

// doRequest performs one HTTP request and returns the raw body
func (c *BigBuyConnector) doRequest(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	endpoint := c.config.APIBaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("bigbuy: failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("bigbuy: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", supplier.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := readBody(resp)
	if err != nil {
		return nil, err
	}
	if err := statusError("bigbuy", resp.StatusCode); err != nil {
		return nil, err
	}
	return raw, nil
}

// translateProduct maps a catalog product onto the canonical model. The
// wholesale price is the buying price; the retail price rides along as an
// attribute for pricing decisions upstream.
func (c *BigBuyConnector) translateProduct(p *BigBuyProduct) supplier.SupplierProduct {
	product := supplier.SupplierProduct{
		ExternalID:    strconv.FormatInt(p.ID, 10),
		Provider:      supplier.ProviderCodeBigBuy,
		Title:         p.Name,
		Description:   p.Description,
		Price:         decimal.NewFromFloat(p.WholesalePrice),
		Currency:      "EUR",
		StockQuantity: p.Stock,
		ImageURLs:     p.Images,
		Category:      p.CategoryName,
		SKU:           p.SKU,
		Weight:        decimal.NewFromFloat(p.WeightKg),
		WeightUnit:    "kg",
		DetailURL:     p.URL,
		Attributes:    map[string]string{"ean13": p.EAN},
	}
	if p.RetailPrice > 0 {
		retail := decimal.NewFromFloat(p.RetailPrice)
		product.OriginalPrice = &retail
	}
	return product
}

// translateOrder maps a provider order onto the canonical model
func (c *BigBuyConnector) translateOrder(o *BigBuyOrder) *supplier.SupplierOrder {
	order := &supplier.SupplierOrder{
		ExternalOrderID: strconv.FormatInt(o.ID, 10),
		Provider:        supplier.ProviderCodeBigBuy,
		Status:          mapBigBuyOrderStatus(o.Status),
		TotalCost:       decimal.NewFromFloat(o.Total),
		ShippingCost:    decimal.NewFromFloat(o.ShippingCost),
		Currency:        "EUR",
		TrackingNumber:  o.TrackingNumber,
		Carrier:         o.CarrierName,
		TrackingURL:     o.TrackingURL,
		ShippingMethod:  o.CarrierName,
	}
	if ref, err := uuid.Parse(o.InternalReference); err == nil {
		order.ClientOrderRef = ref
	}
	if t, err := time.ParseInLocation(bigbuyTimeLayout, o.DateAdd, time.UTC); err == nil {
		order.CreatedAt = t
	}
	if t, err := time.ParseInLocation(bigbuyTimeLayout, o.DateUpd, time.UTC); err == nil {
		order.UpdatedAt = t
	}
	for _, item := range o.Products {
		order.Items = append(order.Items, supplier.OrderItem{
			ExternalProductID: item.Reference,
			SKU:               item.Reference,
			Quantity:          item.Quantity,
			UnitPrice:         decimal.NewFromFloat(item.Price),
		})
	}
	return order
}

// splitRecipientName splits a full name into the first/last pair the order
// API requires. A single-word name becomes the first name with the last name
// repeated: the API rejects empty last names.
func splitRecipientName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], parts[0]
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

// ---------------------------------------------------------------------------
// Status Mapping
// ---------------------------------------------------------------------------

// mapBigBuyOrderStatus maps the provider status vocabulary onto the canonical
// enum. Unknown statuses map to PENDING.
func mapBigBuyOrderStatus(status string) supplier.OrderStatus {
	switch strings.ToUpper(status) {
	case "PENDING", "PENDING PAYMENT":
		return supplier.OrderStatusPending
	case "CONFIRMED", "PAID":
		return supplier.OrderStatusSubmitted
	case "PREPARATION", "IN PREPARATION", "PROCESSING":
		return supplier.OrderStatusProcessing
	case "SHIPPED", "SENT":
		return supplier.OrderStatusShipped
	case "DELIVERED":
		return supplier.OrderStatusDelivered
	case "CANCELLED", "REFUSED":
		return supplier.OrderStatusCancelled
	case "INCIDENT":
		return supplier.OrderStatusFailed
	default:
		return supplier.OrderStatusPending
	}
}

// Compile-time interface checks
var (
	_ supplier.Connector         = (*BigBuyConnector)(nil)
	_ supplier.TrendingProvider  = (*BigBuyConnector)(nil)
	_ supplier.WarehouseProvider = (*BigBuyConnector)(nil)
	_ supplier.WebhookConsumer   = (*BigBuyConnector)(nil)
)
