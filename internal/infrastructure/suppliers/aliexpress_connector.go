package suppliers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dropship/backend/internal/domain/supplier"
)

// aliexpressTimeLayout is the timestamp format the gateway reports
const aliexpressTimeLayout = "2006-01-02 15:04:05"

// aliexpressEnvelope lets the shared call helper inspect any typed response
// for a gateway-level error.
type aliexpressEnvelope interface {
	errorResponse() *AliExpressErrorResponse
}

func (r *AliExpressResponse) errorResponse() *AliExpressErrorResponse {
	return r.ErrorResponse
}

// AliExpressConnector implements the supplier.Connector contract for the
// AliExpress dropshipping API (signed-request authentication family).
type AliExpressConnector struct {
	config     *AliExpressConfig
	httpClient *http.Client
	limiter    *RateLimiter
	retry      RetryPolicy
	logger     *zap.Logger

	// mu guards the session key; writers swap it whole, readers snapshot it
	mu      sync.RWMutex
	session string
}

// NewAliExpressConnector creates a connector with the given configuration
func NewAliExpressConnector(config *AliExpressConfig, logger *zap.Logger) (*AliExpressConnector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	retry := DefaultRetryPolicy()
	retry.MaxAttempts = config.MaxRetries

	return &AliExpressConnector{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		limiter: NewRateLimiter(config.RequestsPerMinute, config.RequestsPerHour),
		retry:   retry,
		logger:  logger.Named("aliexpress"),
	}, nil
}

// ProviderCode returns the provider this connector integrates
func (c *AliExpressConnector) ProviderCode() supplier.ProviderCode {
	return supplier.ProviderCodeAliExpress
}

// ---------------------------------------------------------------------------
// Authentication
// ---------------------------------------------------------------------------

// Authenticate creates a gateway session. Safe to call repeatedly: each call
// establishes a fresh session and swaps it in whole.
func (c *AliExpressConnector) Authenticate(ctx context.Context) error {
	var resp AliExpressAuthResponse
	if err := c.call(ctx, "aliexpress.auth.session.create", nil, &resp); err != nil {
		if errors.Is(err, supplier.ErrInvalidRequest) {
			return fmt.Errorf("%w: aliexpress session create rejected", supplier.ErrAuthFailed)
		}
		return err
	}
	if resp.Result == nil || resp.Result.SessionKey == "" {
		return fmt.Errorf("%w: aliexpress returned no session key", supplier.ErrAuthFailed)
	}

	c.mu.Lock()
	c.session = resp.Result.SessionKey
	c.mu.Unlock()
	return nil
}

// RefreshToken re-establishes the gateway session. The signed-request family
// has no separate refresh grant; a fresh login is the refresh.
func (c *AliExpressConnector) RefreshToken(ctx context.Context) error {
	return c.Authenticate(ctx)
}

// sessionKey snapshots the current session under the read lock.
func (c *AliExpressConnector) sessionKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// ---------------------------------------------------------------------------
// Catalog Operations
// ---------------------------------------------------------------------------

// SearchProducts returns at most query.Limit normalized products. No results
// is an empty slice, never an error.
func (c *AliExpressConnector) SearchProducts(ctx context.Context, query supplier.SearchQuery) ([]supplier.SupplierProduct, error) {
	query.Normalize()

	params := map[string]string{
		"keywords":  query.Query,
		"page_no":   strconv.Itoa(query.Page),
		"page_size": strconv.Itoa(query.Limit),
	}
	if query.Category != "" {
		params["category_id"] = query.Category
	}
	for k, v := range query.Filters {
		params[k] = v
	}

	var resp AliExpressSearchResponse
	if err := c.call(ctx, "aliexpress.ds.text.search", params, &resp); err != nil {
		return nil, err
	}

	products := make([]supplier.SupplierProduct, 0)
	if resp.Result == nil {
		return products, nil
	}
	for i := range resp.Result.Products {
		if len(products) >= query.Limit {
			break
		}
		p := c.translateProduct(&resp.Result.Products[i])
		if err := p.Validate(); err != nil {
			c.logger.Warn("skipping invalid product from search",
				zap.String("external_id", p.ExternalID), zap.Error(err))
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// GetProduct fetches one product by its item id
func (c *AliExpressConnector) GetProduct(ctx context.Context, externalID string) (*supplier.SupplierProduct, error) {
	var resp AliExpressProductResponse
	params := map[string]string{"item_id": externalID}
	if err := c.call(ctx, "aliexpress.ds.product.get", params, &resp); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, fmt.Errorf("%w: aliexpress item %s", supplier.ErrProductNotFound, externalID)
	}
	product := c.translateProduct(resp.Result)
	return &product, nil
}

// GetProductVariants fetches the variant list for one product
func (c *AliExpressConnector) GetProductVariants(ctx context.Context, externalID string) ([]supplier.ProductVariant, error) {
	product, err := c.GetProduct(ctx, externalID)
	if err != nil {
		return nil, err
	}
	return product.Variants, nil
}

// GetInventory reports stock for the given ids. Best effort: a failure on one
// id is logged and omitted, it never aborts the batch.
func (c *AliExpressConnector) GetInventory(ctx context.Context, productIDs []string) ([]supplier.InventoryUpdate, error) {
	updates := make([]supplier.InventoryUpdate, 0, len(productIDs))
	for _, id := range productIDs {
		if ctx.Err() != nil {
			return updates, ctx.Err()
		}
		product, err := c.GetProduct(ctx, id)
		if err != nil {
			c.logger.Warn("inventory fetch failed, omitting product",
				zap.String("external_id", id), zap.Error(err))
			continue
		}
		updates = append(updates, supplier.NewInventoryUpdate(id, product.SKU, product.StockQuantity))
	}
	return updates, nil
}

// GetCategories lists the provider catalog categories
func (c *AliExpressConnector) GetCategories(ctx context.Context) ([]supplier.Category, error) {
	var resp AliExpressCategoryResponse
	if err := c.call(ctx, "aliexpress.ds.category.get", nil, &resp); err != nil {
		return nil, err
	}
	categories := make([]supplier.Category, 0)
	if resp.Result == nil {
		return categories, nil
	}
	for _, cat := range resp.Result.Categories {
		category := supplier.Category{
			ExternalID: strconv.FormatInt(cat.CategoryID, 10),
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

// GetShippingMethods lists freight options for a product and destination
func (c *AliExpressConnector) GetShippingMethods(ctx context.Context, externalID, countryCode string) ([]supplier.ShippingMethod, error) {
	var resp AliExpressFreightResponse
	params := map[string]string{
		"item_id":      externalID,
		"country_code": countryCode,
	}
	if err := c.call(ctx, "aliexpress.ds.freight.query", params, &resp); err != nil {
		return nil, err
	}

	methods := make([]supplier.ShippingMethod, 0)
	if resp.Result == nil {
		return methods, nil
	}
	for _, opt := range resp.Result.Options {
		methods = append(methods, supplier.ShippingMethod{
			Code:     opt.ServiceName,
			Name:     opt.ServiceName,
			Cost:     ParseDecimal(opt.Amount),
			Currency: opt.Currency,
			MinDays:  opt.MinDays,
			MaxDays:  opt.MaxDays,
		})
	}
	return methods, nil
}

// CalculateShipping quotes the given method for the first item's destination
// freight table; when no method is named the cheapest option wins.
func (c *AliExpressConnector) CalculateShipping(ctx context.Context, items []supplier.OrderItem, address supplier.ShippingAddress, method string) (*supplier.ShippingQuote, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items to quote", supplier.ErrInvalidRequest)
	}

	methods, err := c.GetShippingMethods(ctx, items[0].ExternalProductID, address.CountryCode)
	if err != nil {
		return nil, err
	}
	if len(methods) == 0 {
		return nil, fmt.Errorf("%w: aliexpress offers no shipping to %s", supplier.ErrInvalidRequest, address.CountryCode)
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

// ---------------------------------------------------------------------------
// Order Operations
// ---------------------------------------------------------------------------

// PlaceOrder submits one order. The HTTP call is made exactly once (never
// retried), so a transport failure after the request may have reached the
// provider surfaces as ErrOrderStateUnknown for the caller to reconcile via
// GetOrder before resubmitting.
func (c *AliExpressConnector) PlaceOrder(ctx context.Context, req *supplier.OrderRequest) (*supplier.SupplierOrder, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	itemsPayload := make([]map[string]any, 0, len(req.Items))
	for _, item := range req.Items {
		itemsPayload = append(itemsPayload, map[string]any{
			"item_id":  item.ExternalProductID,
			"sku_id":   item.VariantID,
			"quantity": item.Quantity,
		})
	}
	itemsJSON, err := json.Marshal(itemsPayload)
	if err != nil {
		return nil, fmt.Errorf("aliexpress: failed to marshal order items: %w", err)
	}
	addressJSON, err := json.Marshal(map[string]string{
		"contact_person": req.ShippingAddress.Name,
		"phone":          req.ShippingAddress.Phone,
		"address":        req.ShippingAddress.AddressLine,
		"city":           req.ShippingAddress.City,
		"province":       req.ShippingAddress.Province,
		"zip":            req.ShippingAddress.PostalCode,
		"country":        req.ShippingAddress.CountryCode,
	})
	if err != nil {
		return nil, fmt.Errorf("aliexpress: failed to marshal address: %w", err)
	}

	params := map[string]string{
		"out_order_id":      req.ClientOrderRef.String(),
		"product_items":     string(itemsJSON),
		"logistics_address": string(addressJSON),
	}
	if req.ShippingMethod != "" {
		params["logistics_service_name"] = req.ShippingMethod
	}

	if err := c.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	body, err := c.doRequest(ctx, "aliexpress.ds.order.create", params)
	if err != nil {
		if supplier.IsTransient(err) {
			// The request may have reached the provider before the failure.
			return nil, fmt.Errorf("%w: aliexpress order %s: %v",
				supplier.ErrOrderStateUnknown, req.ClientOrderRef, err)
		}
		return nil, err
	}

	var resp AliExpressOrderCreateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: aliexpress order %s: unparseable response: %v",
			supplier.ErrOrderStateUnknown, req.ClientOrderRef, err)
	}
	if e := resp.errorResponse(); e != nil {
		return nil, c.apiError(e)
	}
	if resp.Result == nil || !resp.Result.IsSuccess {
		return nil, fmt.Errorf("%w: aliexpress rejected order placement", supplier.ErrInvalidRequest)
	}

	now := time.Now()
	return &supplier.SupplierOrder{
		ExternalOrderID: strconv.FormatInt(resp.Result.OrderID, 10),
		Provider:        supplier.ProviderCodeAliExpress,
		ClientOrderRef:  req.ClientOrderRef,
		Status:          supplier.OrderStatusSubmitted,
		Items:           req.Items,
		ShippingAddress: req.ShippingAddress,
		ShippingMethod:  req.ShippingMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// GetOrder fetches the current provider-side order state
func (c *AliExpressConnector) GetOrder(ctx context.Context, externalOrderID string) (*supplier.SupplierOrder, error) {
	var resp AliExpressOrderResponse
	params := map[string]string{"order_id": externalOrderID}
	if err := c.call(ctx, "aliexpress.ds.order.get", params, &resp); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, fmt.Errorf("%w: aliexpress order %s", supplier.ErrOrderNotFound, externalOrderID)
	}
	return c.translateOrder(resp.Result), nil
}

// CancelOrder requests cancellation of one order
func (c *AliExpressConnector) CancelOrder(ctx context.Context, externalOrderID string) error {
	var resp AliExpressOrderCancelResponse
	params := map[string]string{"order_id": externalOrderID}
	if err := c.call(ctx, "aliexpress.ds.order.cancel", params, &resp); err != nil {
		return err
	}
	if resp.Result == nil || !resp.Result.IsSuccess {
		return fmt.Errorf("%w: aliexpress declined cancellation of order %s",
			supplier.ErrInvalidRequest, externalOrderID)
	}
	return nil
}

// GetTracking returns the known tracking history, oldest first. No events yet
// is an empty slice, never an error.
func (c *AliExpressConnector) GetTracking(ctx context.Context, externalOrderID string) ([]supplier.TrackingEvent, error) {
	var resp AliExpressTrackingResponse
	params := map[string]string{"order_id": externalOrderID}
	if err := c.call(ctx, "aliexpress.ds.tracking.get", params, &resp); err != nil {
		return nil, err
	}

	events := make([]supplier.TrackingEvent, 0)
	if resp.Result == nil {
		return events, nil
	}
	for _, e := range resp.Result.Events {
		event := supplier.TrackingEvent{
			Status:      e.Status,
			Description: e.Description,
			Location:    e.Address,
		}
		if t, err := time.ParseInLocation(aliexpressTimeLayout, e.EventDate, time.UTC); err == nil {
			event.Timestamp = t
		}
		events = append(events, event)
	}
	return events, nil
}

// Close releases the connector's HTTP session
func (c *AliExpressConnector) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// ---------------------------------------------------------------------------
// Webhook Ingestion
// ---------------------------------------------------------------------------

// VerifyWebhook checks the shared-secret signature over the raw payload
func (c *AliExpressConnector) VerifyWebhook(payload []byte, signature string) bool {
	return VerifyWebhookSignature(c.config.WebhookSecret, payload, signature)
}

// ProcessWebhook translates a verified provider push into a canonical event
func (c *AliExpressConnector) ProcessWebhook(_ context.Context, eventType string, payload []byte) (*supplier.WebhookEvent, error) {
	switch eventType {
	case "order_status":
		var push AliExpressOrderWebhook
		if err := json.Unmarshal(payload, &push); err != nil {
			return nil, fmt.Errorf("aliexpress: failed to parse webhook payload: %w", err)
		}
		return &supplier.WebhookEvent{
			Provider:   supplier.ProviderCodeAliExpress,
			Type:       supplier.WebhookEventOrderStatus,
			ReceivedAt: time.Now(),
			OrderStatus: &supplier.OrderStatusChange{
				ExternalOrderID: strconv.FormatInt(push.OrderID, 10),
				Status:          mapAliExpressOrderStatus(push.Status),
				TrackingNumber:  push.LogisticsNo,
				Carrier:         push.LogisticsCompany,
			},
		}, nil
	case "inventory":
		var push AliExpressInventoryWebhook
		if err := json.Unmarshal(payload, &push); err != nil {
			return nil, fmt.Errorf("aliexpress: failed to parse webhook payload: %w", err)
		}
		update := supplier.NewInventoryUpdate(strconv.FormatInt(push.ItemID, 10), push.SKUCode, push.Stock)
		return &supplier.WebhookEvent{
			Provider:   supplier.ProviderCodeAliExpress,
			Type:       supplier.WebhookEventInventory,
			ReceivedAt: time.Now(),
			Inventory:  &update,
		}, nil
	default:
		return nil, fmt.Errorf("%w: aliexpress %q", supplier.ErrUnknownWebhookEvent, eventType)
	}
}

// ---------------------------------------------------------------------------
// Internal Helpers
// ---------------------------------------------------------------------------

// call funnels one gateway method through the rate limiter and retry executor
// and decodes the typed response, surfacing gateway-level errors through the
// domain taxonomy so transient ones are retried.
func (c *AliExpressConnector) call(ctx context.Context, method string, params map[string]string, out aliexpressEnvelope) error {
	return Retry(ctx, c.retry, func(ctx context.Context) error {
		if err := c.limiter.Acquire(ctx); err != nil {
			return err
		}
		body, err := c.doRequest(ctx, method, params)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("aliexpress: failed to parse response: %w", err)
		}
		if e := out.errorResponse(); e != nil {
			return c.apiError(e)
		}
		return nil
	})
}

// doRequest performs one signed HTTP request against the gateway
func (c *AliExpressConnector) doRequest(ctx context.Context, method string, params map[string]string) ([]byte, error) {
	signed := make(map[string]string, len(params)+6)
	for k, v := range params {
		signed[k] = v
	}
	signed["method"] = method
	signed["app_key"] = c.config.AppKey
	signed["timestamp"] = strconv.FormatInt(time.Now().UnixMilli(), 10)
	signed["format"] = "json"
	signed["v"] = "2.0"
	signed["sign_method"] = "hmac-md5"
	if session := c.sessionKey(); session != "" {
		signed["session"] = session
	}
	signed["sign"] = c.config.Sign(signed)

	values := url.Values{}
	for k, v := range signed {
		values.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.APIBaseURL, strings.NewReader(values.Encode()))
	if err != nil {
		return nil, fmt.Errorf("aliexpress: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", supplier.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}
	if err := statusError("aliexpress", resp.StatusCode); err != nil {
		return nil, err
	}
	return body, nil
}

// apiError maps a gateway error envelope onto the domain error taxonomy
func (c *AliExpressConnector) apiError(e *AliExpressErrorResponse) error {
	code := strings.ToLower(e.Code + " " + e.SubCode)
	switch {
	case strings.Contains(code, "call-limit") || strings.Contains(code, "flow-limit"):
		return fmt.Errorf("%w: aliexpress: %s - %s", supplier.ErrProviderRateLimited, e.Code, e.Msg)
	case strings.Contains(code, "invalid-session") || strings.Contains(code, "session-expired"):
		return fmt.Errorf("%w: aliexpress: %s - %s", supplier.ErrTokenExpired, e.Code, e.Msg)
	case strings.Contains(code, "unauthorized") || strings.Contains(code, "permission"):
		return fmt.Errorf("%w: aliexpress: %s - %s", supplier.ErrAuthFailed, e.Code, e.Msg)
	default:
		return fmt.Errorf("%w: aliexpress: %s - %s", supplier.ErrInvalidRequest, e.Code, e.Msg)
	}
}

// translateProduct maps a gateway product onto the canonical model
func (c *AliExpressConnector) translateProduct(p *AliExpressProduct) supplier.SupplierProduct {
	product := supplier.SupplierProduct{
		ExternalID:      strconv.FormatInt(p.ItemID, 10),
		Provider:        supplier.ProviderCodeAliExpress,
		Title:           p.Title,
		Description:     p.Description,
		Price:           ParseDecimal(p.SalePrice),
		Currency:        p.Currency,
		StockQuantity:   p.Stock,
		ImageURLs:       p.ImageURLs,
		VideoURLs:       p.VideoURLs,
		Category:        p.CategoryName,
		Subcategory:     p.Subcategory,
		Brand:           p.Brand,
		SKU:             p.SKUCode,
		Weight:          ParseDecimal(p.WeightGrams),
		WeightUnit:      "g",
		ShippingMinDays: p.DeliveryMin,
		ShippingMaxDays: p.DeliveryMax,
		Rating:          p.EvaluateRate,
		ReviewCount:     p.ReviewCount,
		SalesCount:      p.OrderCount,
		DetailURL:       p.DetailURL,
		Attributes:      make(map[string]string, len(p.Properties)),
	}
	if p.OriginalPrice != "" {
		original := ParseDecimal(p.OriginalPrice)
		product.OriginalPrice = &original
	}
	if p.FreightCost != "" {
		freight := ParseDecimal(p.FreightCost)
		product.ShippingCost = &freight
	}
	for k, v := range p.Properties {
		product.Attributes[k] = v
	}

	for _, sku := range p.SKUs {
		variant := supplier.ProductVariant{
			ExternalID:    strconv.FormatInt(sku.SKUID, 10),
			SKU:           sku.SKUCode,
			Price:         ParseDecimal(sku.Price),
			StockQuantity: sku.Stock,
			ImageURL:      sku.ImageURL,
			Options:       make(map[string]string, len(sku.Properties)),
		}
		for _, prop := range sku.Properties {
			variant.Options[prop.Name] = prop.Value
		}
		product.Variants = append(product.Variants, variant)
	}
	return product
}

// translateOrder maps a gateway order onto the canonical model
func (c *AliExpressConnector) translateOrder(o *AliExpressOrder) *supplier.SupplierOrder {
	order := &supplier.SupplierOrder{
		ExternalOrderID: strconv.FormatInt(o.OrderID, 10),
		Provider:        supplier.ProviderCodeAliExpress,
		Status:          mapAliExpressOrderStatus(o.Status),
		TotalCost:       ParseDecimal(o.TotalAmount),
		ShippingCost:    ParseDecimal(o.FreightAmount),
		Currency:        o.Currency,
		TrackingNumber:  o.LogisticsNo,
		Carrier:         o.LogisticsCompany,
		TrackingURL:     o.LogisticsURL,
	}
	if ref, err := uuid.Parse(o.OutOrderID); err == nil {
		order.ClientOrderRef = ref
	}
	if t, err := time.ParseInLocation(aliexpressTimeLayout, o.GmtCreate, time.UTC); err == nil {
		order.CreatedAt = t
	}
	if t, err := time.ParseInLocation(aliexpressTimeLayout, o.GmtModified, time.UTC); err == nil {
		order.UpdatedAt = t
	}
	if t, err := time.ParseInLocation(aliexpressTimeLayout, o.EstimatedArrival, time.UTC); err == nil {
		order.EstimatedDelivery = &t
	}
	for _, item := range o.Items {
		order.Items = append(order.Items, supplier.OrderItem{
			ExternalProductID: strconv.FormatInt(item.ItemID, 10),
			VariantID:         strconv.FormatInt(item.SKUID, 10),
			SKU:               item.SKUCode,
			Quantity:          item.Quantity,
			UnitPrice:         ParseDecimal(item.UnitPrice),
		})
	}
	return order
}

// ---------------------------------------------------------------------------
// Status Mapping
// ---------------------------------------------------------------------------

// mapAliExpressOrderStatus maps the provider status vocabulary onto the
// canonical enum. Unknown statuses map to PENDING because providers add new
// statuses without notice.
func mapAliExpressOrderStatus(status string) supplier.OrderStatus {
	switch status {
	case "PLACE_ORDER_SUCCESS":
		return supplier.OrderStatusSubmitted
	case "WAIT_SELLER_SEND_GOODS", "SELLER_PART_SEND_GOODS", "IN_CANCEL", "IN_ISSUE", "FUND_PROCESSING":
		return supplier.OrderStatusProcessing
	case "WAIT_BUYER_ACCEPT_GOODS":
		return supplier.OrderStatusShipped
	case "FINISH":
		return supplier.OrderStatusDelivered
	case "CANCEL":
		return supplier.OrderStatusCancelled
	case "RISK_CONTROL", "WAIT_SELLER_EXAMINE_MONEY":
		return supplier.OrderStatusPending
	default:
		return supplier.OrderStatusPending
	}
}

// Compile-time interface checks
var (
	_ supplier.Connector       = (*AliExpressConnector)(nil)
	_ supplier.WebhookConsumer = (*AliExpressConnector)(nil)
)
