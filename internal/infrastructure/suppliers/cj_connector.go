package suppliers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/dropship/backend/internal/domain/supplier"
)

// cjTimeLayout is the timestamp format the API reports
const cjTimeLayout = "2006-01-02 15:04:05"

// CJConnector implements the supplier.Connector contract for the
// CJ Dropshipping API (token authentication family with refresh).
type CJConnector struct {
	config     *CJConfig
	httpClient *http.Client
	limiter    *RateLimiter
	retry      RetryPolicy
	logger     *zap.Logger

	// mu guards the token pair; RefreshToken swaps both under the write lock
	// so concurrent requests observe either the old pair or the new one.
	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

// NewCJConnector creates a connector with the given configuration
func NewCJConnector(config *CJConfig, logger *zap.Logger) (*CJConnector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	retry := DefaultRetryPolicy()
	retry.MaxAttempts = config.MaxRetries

	return &CJConnector{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		limiter: NewRateLimiter(config.RequestsPerMinute, config.RequestsPerHour),
		retry:   retry,
		logger:  logger.Named("cjdropshipping"),
	}, nil
}

// ProviderCode returns the provider this connector integrates
func (c *CJConnector) ProviderCode() supplier.ProviderCode {
	return supplier.ProviderCodeCJDropshipping
}

// ---------------------------------------------------------------------------
// Authentication
// ---------------------------------------------------------------------------

// Authenticate exchanges the account email and API key for a token pair.
// Safe to call repeatedly: each call performs a fresh login.
func (c *CJConnector) Authenticate(ctx context.Context) error {
	var data CJAuthData
	err := c.call(ctx, http.MethodPost, "/authentication/getAccessToken", nil, map[string]string{
		"email":    c.config.Email,
		"password": c.config.APIKey,
	}, &data)
	if err != nil {
		if !supplier.IsTransient(err) {
			return fmt.Errorf("%w: cjdropshipping login rejected: %v", supplier.ErrAuthFailed, err)
		}
		return err
	}
	if data.AccessToken == "" {
		return fmt.Errorf("%w: cjdropshipping returned no access token", supplier.ErrAuthFailed)
	}

	c.mu.Lock()
	c.accessToken = data.AccessToken
	c.refreshToken = data.RefreshToken
	c.mu.Unlock()
	return nil
}

// RefreshToken exchanges the refresh token for a fresh pair. Falls back to a
// full login when no refresh token is held yet.
func (c *CJConnector) RefreshToken(ctx context.Context) error {
	c.mu.RLock()
	refresh := c.refreshToken
	c.mu.RUnlock()
	if refresh == "" {
		return c.Authenticate(ctx)
	}

	var data CJAuthData
	err := c.call(ctx, http.MethodPost, "/authentication/refreshAccessToken", nil, map[string]string{
		"refreshToken": refresh,
	}, &data)
	if err != nil {
		return err
	}
	if data.AccessToken == "" {
		return fmt.Errorf("%w: cjdropshipping refresh returned no access token", supplier.ErrAuthFailed)
	}

	c.mu.Lock()
	c.accessToken = data.AccessToken
	if data.RefreshToken != "" {
		c.refreshToken = data.RefreshToken
	}
	c.mu.Unlock()
	return nil
}

// token snapshots the current access token under the read lock.
func (c *CJConnector) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// ---------------------------------------------------------------------------
// Catalog Operations
// ---------------------------------------------------------------------------

// SearchProducts returns at most query.Limit normalized products. No results
// is an empty slice, never an error.
func (c *CJConnector) SearchProducts(ctx context.Context, query supplier.SearchQuery) ([]supplier.SupplierProduct, error) {
	query.Normalize()

	params := url.Values{}
	params.Set("productNameEn", query.Query)
	params.Set("pageNum", strconv.Itoa(query.Page))
	params.Set("pageSize", strconv.Itoa(query.Limit))
	if query.Category != "" {
		params.Set("categoryId", query.Category)
	}
	for k, v := range query.Filters {
		params.Set(k, v)
	}

	var list CJProductList
	if err := c.call(ctx, http.MethodGet, "/product/list", params, nil, &list); err != nil {
		return nil, err
	}

	products := make([]supplier.SupplierProduct, 0)
	for i := range list.List {
		if len(products) >= query.Limit {
			break
		}
		p := c.translateProduct(&list.List[i])
		if err := p.Validate(); err != nil {
			c.logger.Warn("skipping invalid product from search",
				zap.String("external_id", p.ExternalID), zap.Error(err))
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// GetProduct fetches one product by its pid
func (c *CJConnector) GetProduct(ctx context.Context, externalID string) (*supplier.SupplierProduct, error) {
	params := url.Values{}
	params.Set("pid", externalID)

	var data *CJProduct
	if err := c.call(ctx, http.MethodGet, "/product/query", params, nil, &data); err != nil {
		return nil, err
	}
	if data == nil || data.PID == "" {
		return nil, fmt.Errorf("%w: cjdropshipping product %s", supplier.ErrProductNotFound, externalID)
	}
	product := c.translateProduct(data)
	return &product, nil
}

// GetProductVariants fetches the variant list for one product
func (c *CJConnector) GetProductVariants(ctx context.Context, externalID string) ([]supplier.ProductVariant, error) {
	params := url.Values{}
	params.Set("pid", externalID)

	var data []CJVariant
	if err := c.call(ctx, http.MethodGet, "/product/variant/query", params, nil, &data); err != nil {
		return nil, err
	}

	variants := make([]supplier.ProductVariant, 0, len(data))
	for i := range data {
		variants = append(variants, translateCJVariant(&data[i]))
	}
	return variants, nil
}

// GetInventory reports stock for the given pids, summed across warehouses.
// Best effort: a failure on one pid is logged and omitted.
func (c *CJConnector) GetInventory(ctx context.Context, productIDs []string) ([]supplier.InventoryUpdate, error) {
	updates := make([]supplier.InventoryUpdate, 0, len(productIDs))
	for _, id := range productIDs {
		if ctx.Err() != nil {
			return updates, ctx.Err()
		}

		params := url.Values{}
		params.Set("pid", id)
		var items []CJStockItem
		if err := c.call(ctx, http.MethodGet, "/product/stock/queryByPid", params, nil, &items); err != nil {
			c.logger.Warn("inventory fetch failed, omitting product",
				zap.String("external_id", id), zap.Error(err))
			continue
		}

		var total int
		var sku string
		for _, item := range items {
			total += item.StorageCount
			if sku == "" {
				sku = item.SKU
			}
		}
		updates = append(updates, supplier.NewInventoryUpdate(id, sku, total))
	}
	return updates, nil
}

// GetCategories flattens the provider category tree into the canonical list
func (c *CJConnector) GetCategories(ctx context.Context) ([]supplier.Category, error) {
	var tree []CJCategory
	if err := c.call(ctx, http.MethodGet, "/product/getCategory", nil, nil, &tree); err != nil {
		return nil, err
	}

	categories := make([]supplier.Category, 0)
	var walk func(nodes []CJCategory, parentID string)
	walk = func(nodes []CJCategory, parentID string) {
		for _, node := range nodes {
			categories = append(categories, supplier.Category{
				ExternalID: node.CategoryID,
				Name:       node.Name,
				ParentID:   parentID,
			})
			walk(node.Children, node.CategoryID)
		}
	}
	walk(tree, "")
	return categories, nil
}

// ---------------------------------------------------------------------------
// Shipping Operations
// ---------------------------------------------------------------------------

// GetShippingMethods lists freight options for a product's first variant
func (c *CJConnector) GetShippingMethods(ctx context.Context, externalID, countryCode string) ([]supplier.ShippingMethod, error) {
	variants, err := c.GetProductVariants(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if len(variants) == 0 {
		return nil, fmt.Errorf("%w: cjdropshipping product %s has no variants to quote", supplier.ErrInvalidRequest, externalID)
	}

	return c.freightOptions(ctx, countryCode, []CJFreightProduct{
		{VID: variants[0].ExternalID, Quantity: 1},
	})
}

// CalculateShipping quotes the given method for the full item set; when no
// method is named the cheapest option wins.
func (c *CJConnector) CalculateShipping(ctx context.Context, items []supplier.OrderItem, address supplier.ShippingAddress, method string) (*supplier.ShippingQuote, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items to quote", supplier.ErrInvalidRequest)
	}

	products := make([]CJFreightProduct, 0, len(items))
	for _, item := range items {
		vid := item.VariantID
		if vid == "" {
			vid = item.ExternalProductID
		}
		products = append(products, CJFreightProduct{VID: vid, Quantity: item.Quantity})
	}

	methods, err := c.freightOptions(ctx, address.CountryCode, products)
	if err != nil {
		return nil, err
	}
	if len(methods) == 0 {
		return nil, fmt.Errorf("%w: cjdropshipping offers no shipping to %s", supplier.ErrInvalidRequest, address.CountryCode)
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

func (c *CJConnector) freightOptions(ctx context.Context, countryCode string, products []CJFreightProduct) ([]supplier.ShippingMethod, error) {
	body := CJFreightRequest{
		StartCountryCode: "CN",
		EndCountryCode:   countryCode,
		Products:         products,
	}

	var options []CJFreightOption
	if err := c.call(ctx, http.MethodPost, "/logistic/freightCalculate", nil, body, &options); err != nil {
		return nil, err
	}

	methods := make([]supplier.ShippingMethod, 0, len(options))
	for _, opt := range options {
		minDays, maxDays := parseCJAging(opt.Aging)
		currency := opt.Currency
		if currency == "" {
			currency = "USD"
		}
		methods = append(methods, supplier.ShippingMethod{
			Code:     opt.LogisticName,
			Name:     opt.LogisticName,
			Cost:     decimal.NewFromFloat(opt.LogisticPrice),
			Currency: currency,
			MinDays:  minDays,
			MaxDays:  maxDays,
		})
	}
	return methods, nil
}

// parseCJAging splits the provider's "7-15" day-range string. A single number
// is both bounds; anything unparseable is zero.
func parseCJAging(aging string) (int, int) {
	parts := strings.SplitN(strings.TrimSpace(aging), "-", 2)
	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0
	}
	if len(parts) == 1 {
		return min, min
	}
	max, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return min, min
	}
	return min, max
}

// ---------------------------------------------------------------------------
// Order Operations
// ---------------------------------------------------------------------------

// PlaceOrder submits one order. The HTTP call is made exactly once (never
// retried), so a transport failure after the request may have reached the
// provider surfaces as ErrOrderStateUnknown for the caller to reconcile via
// GetOrder before resubmitting.
func (c *CJConnector) PlaceOrder(ctx context.Context, req *supplier.OrderRequest) (*supplier.SupplierOrder, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	products := make([]CJOrderProduct, 0, len(req.Items))
	for _, item := range req.Items {
		vid := item.VariantID
		if vid == "" {
			vid = item.ExternalProductID
		}
		products = append(products, CJOrderProduct{VID: vid, Quantity: item.Quantity})
	}

	body := CJOrderCreateRequest{
		OrderNumber:     req.ClientOrderRef.String(),
		ShippingCountry: req.ShippingAddress.CountryCode,
		ShippingProv:    req.ShippingAddress.Province,
		ShippingCity:    req.ShippingAddress.City,
		ShippingAddress: req.ShippingAddress.AddressLine,
		ShippingZip:     req.ShippingAddress.PostalCode,
		ShippingName:    req.ShippingAddress.Name,
		ShippingPhone:   req.ShippingAddress.Phone,
		LogisticName:    req.ShippingMethod,
		Products:        products,
	}

	if err := c.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	resp, err := c.doRequest(ctx, http.MethodPost, "/shopping/order/createOrderV2", nil, body)
	if err != nil {
		if supplier.IsTransient(err) {
			// The request may have reached the provider before the failure.
			return nil, fmt.Errorf("%w: cjdropshipping order %s: %v",
				supplier.ErrOrderStateUnknown, req.ClientOrderRef, err)
		}
		return nil, err
	}
	if !resp.IsSuccess() {
		// An envelope error is a definite provider-side rejection.
		return nil, c.apiError(resp)
	}

	var data CJOrderCreateData
	if len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			return nil, fmt.Errorf("%w: cjdropshipping order %s: unparseable response: %v",
				supplier.ErrOrderStateUnknown, req.ClientOrderRef, err)
		}
	}
	if data.OrderID == "" {
		return nil, fmt.Errorf("%w: cjdropshipping returned no order id", supplier.ErrInvalidRequest)
	}

	now := time.Now()
	return &supplier.SupplierOrder{
		ExternalOrderID: data.OrderID,
		Provider:        supplier.ProviderCodeCJDropshipping,
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
func (c *CJConnector) GetOrder(ctx context.Context, externalOrderID string) (*supplier.SupplierOrder, error) {
	params := url.Values{}
	params.Set("orderId", externalOrderID)

	var data *CJOrder
	if err := c.call(ctx, http.MethodGet, "/shopping/order/getOrderDetail", params, nil, &data); err != nil {
		return nil, err
	}
	if data == nil || data.OrderID == "" {
		return nil, fmt.Errorf("%w: cjdropshipping order %s", supplier.ErrOrderNotFound, externalOrderID)
	}
	return c.translateOrder(data), nil
}

// CancelOrder requests cancellation of one order
func (c *CJConnector) CancelOrder(ctx context.Context, externalOrderID string) error {
	return c.call(ctx, http.MethodPost, "/shopping/order/cancelOrder", nil, map[string]string{
		"orderId": externalOrderID,
	}, nil)
}

// GetTracking returns the known tracking history, oldest first. An order with
// no tracking number yet has an empty history, never an error.
func (c *CJConnector) GetTracking(ctx context.Context, externalOrderID string) ([]supplier.TrackingEvent, error) {
	order, err := c.GetOrder(ctx, externalOrderID)
	if err != nil {
		return nil, err
	}

	events := make([]supplier.TrackingEvent, 0)
	if order.TrackingNumber == "" {
		return events, nil
	}

	params := url.Values{}
	params.Set("trackNumber", order.TrackingNumber)
	var info CJTrackInfo
	if err := c.call(ctx, http.MethodGet, "/logistic/getTrackInfo", params, nil, &info); err != nil {
		return nil, err
	}

	for _, e := range info.TrackDetails {
		event := supplier.TrackingEvent{
			Status:      e.Status,
			Description: e.Details,
			Location:    e.Area,
		}
		if t, err := time.ParseInLocation(cjTimeLayout, e.Date, time.UTC); err == nil {
			event.Timestamp = t
		}
		events = append(events, event)
	}
	return events, nil
}

// Close releases the connector's HTTP session
func (c *CJConnector) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// ---------------------------------------------------------------------------
// Optional Capabilities
// ---------------------------------------------------------------------------

// GetWarehouses lists the provider's fulfillment warehouses
func (c *CJConnector) GetWarehouses(ctx context.Context) ([]supplier.Warehouse, error) {
	var data []CJWarehouse
	if err := c.call(ctx, http.MethodGet, "/warehouse/list", nil, nil, &data); err != nil {
		return nil, err
	}

	warehouses := make([]supplier.Warehouse, 0, len(data))
	for _, w := range data {
		warehouses = append(warehouses, supplier.Warehouse{
			ExternalID:  w.AreaID,
			Name:        w.AreaName,
			CountryCode: w.CountryCode,
			City:        w.City,
		})
	}
	return warehouses, nil
}

// ---------------------------------------------------------------------------
// Webhook Ingestion
// ---------------------------------------------------------------------------

// VerifyWebhook checks the shared-secret signature over the raw payload
func (c *CJConnector) VerifyWebhook(payload []byte, signature string) bool {
	return VerifyWebhookSignature(c.config.WebhookSecret, payload, signature)
}

// ProcessWebhook translates a verified provider push into a canonical event
func (c *CJConnector) ProcessWebhook(_ context.Context, eventType string, payload []byte) (*supplier.WebhookEvent, error) {
	switch eventType {
	case "order_status":
		var push CJOrderWebhook
		if err := json.Unmarshal(payload, &push); err != nil {
			return nil, fmt.Errorf("cjdropshipping: failed to parse webhook payload: %w", err)
		}
		return &supplier.WebhookEvent{
			Provider:   supplier.ProviderCodeCJDropshipping,
			Type:       supplier.WebhookEventOrderStatus,
			ReceivedAt: time.Now(),
			OrderStatus: &supplier.OrderStatusChange{
				ExternalOrderID: push.OrderID,
				Status:          mapCJOrderStatus(push.OrderStatus),
				TrackingNumber:  push.TrackNumber,
				Carrier:         push.LogisticName,
			},
		}, nil
	case "inventory":
		var push CJStockWebhook
		if err := json.Unmarshal(payload, &push); err != nil {
			return nil, fmt.Errorf("cjdropshipping: failed to parse webhook payload: %w", err)
		}
		update := supplier.NewInventoryUpdate(push.PID, push.SKU, push.StorageNum)
		return &supplier.WebhookEvent{
			Provider:   supplier.ProviderCodeCJDropshipping,
			Type:       supplier.WebhookEventInventory,
			ReceivedAt: time.Now(),
			Inventory:  &update,
		}, nil
	default:
		return nil, fmt.Errorf("%w: cjdropshipping %q", supplier.ErrUnknownWebhookEvent, eventType)
	}
}

// ---------------------------------------------------------------------------
// Internal Helpers
// ---------------------------------------------------------------------------

// call funnels one API request through the rate limiter and retry executor,
// surfaces envelope errors through the domain taxonomy so transient ones are
// retried, and decodes the data payload into out when given.
func (c *CJConnector) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	return Retry(ctx, c.retry, func(ctx context.Context) error {
		if err := c.limiter.Acquire(ctx); err != nil {
			return err
		}
		resp, err := c.doRequest(ctx, method, path, query, body)
		if err != nil {
			return err
		}
		if !resp.IsSuccess() {
			return c.apiError(resp)
		}
		if out != nil && len(resp.Data) > 0 && string(resp.Data) != "null" {
			if err := json.Unmarshal(resp.Data, out); err != nil {
				return fmt.Errorf("cjdropshipping: failed to parse response data: %w", err)
			}
		}
		return nil
	})
}

// doRequest performs one HTTP request and parses the response envelope.
// Envelope-level errors are left to the caller so order placement can tell a
// definite rejection apart from an ambiguous transport failure.
func (c *CJConnector) doRequest(ctx context.Context, method, path string, query url.Values, body any) (*CJResponse, error) {
	endpoint := c.config.APIBaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("cjdropshipping: failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("cjdropshipping: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.token(); token != "" {
		req.Header.Set("CJ-Access-Token", token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", supplier.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := readBody(resp)
	if err != nil {
		return nil, err
	}
	if err := statusError("cjdropshipping", resp.StatusCode); err != nil {
		return nil, err
	}

	var envelope CJResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("cjdropshipping: failed to parse response: %w", err)
	}
	return &envelope, nil
}

// apiError maps an envelope error onto the domain error taxonomy
func (c *CJConnector) apiError(resp *CJResponse) error {
	switch resp.Code {
	case cjCodeTooManyCalls:
		return fmt.Errorf("%w: cjdropshipping: %d %s", supplier.ErrProviderRateLimited, resp.Code, resp.Message)
	case cjCodeTokenExpired:
		return fmt.Errorf("%w: cjdropshipping: %d %s", supplier.ErrTokenExpired, resp.Code, resp.Message)
	case cjCodeInvalidToken, cjCodeAuthFailed:
		return fmt.Errorf("%w: cjdropshipping: %d %s", supplier.ErrAuthFailed, resp.Code, resp.Message)
	case cjCodeRecordMissing:
		return fmt.Errorf("%w: cjdropshipping: %d %s", supplier.ErrProductNotFound, resp.Code, resp.Message)
	default:
		return fmt.Errorf("%w: cjdropshipping: %d %s", supplier.ErrInvalidRequest, resp.Code, resp.Message)
	}
}

// translateProduct maps an API product onto the canonical model
func (c *CJConnector) translateProduct(p *CJProduct) supplier.SupplierProduct {
	currency := p.Currency
	if currency == "" {
		currency = "USD"
	}
	product := supplier.SupplierProduct{
		ExternalID:    p.PID,
		Provider:      supplier.ProviderCodeCJDropshipping,
		Title:         p.NameEn,
		Description:   p.Description,
		Price:         decimal.NewFromFloat(p.SellPrice),
		Currency:      currency,
		StockQuantity: p.Stock,
		ImageURLs:     p.Images,
		Category:      p.CategoryName,
		SKU:           p.SKU,
		Weight:        decimal.NewFromFloat(p.WeightGram),
		WeightUnit:    "g",
		DetailURL:     p.SourceURL,
	}
	for i := range p.Variants {
		product.Variants = append(product.Variants, translateCJVariant(&p.Variants[i]))
	}
	return product
}

func translateCJVariant(v *CJVariant) supplier.ProductVariant {
	variant := supplier.ProductVariant{
		ExternalID:    v.VID,
		SKU:           v.SKU,
		Price:         decimal.NewFromFloat(v.Price),
		StockQuantity: v.Stock,
		ImageURL:      v.Image,
	}
	// variantKey is a "-"-joined option tuple, e.g. "Black-XL"
	if v.Key != "" {
		variant.Options = map[string]string{"key": v.Key}
	}
	return variant
}

// translateOrder maps an API order onto the canonical model
func (c *CJConnector) translateOrder(o *CJOrder) *supplier.SupplierOrder {
	currency := o.Currency
	if currency == "" {
		currency = "USD"
	}
	order := &supplier.SupplierOrder{
		ExternalOrderID: o.OrderID,
		Provider:        supplier.ProviderCodeCJDropshipping,
		Status:          mapCJOrderStatus(o.OrderStatus),
		TotalCost:       decimal.NewFromFloat(o.OrderAmount),
		ShippingCost:    decimal.NewFromFloat(o.PostageAmount),
		Currency:        currency,
		TrackingNumber:  o.TrackNumber,
		Carrier:         o.LogisticName,
		ShippingMethod:  o.LogisticName,
	}
	if ref, err := uuid.Parse(o.OrderNumber); err == nil {
		order.ClientOrderRef = ref
	}
	if t, err := time.ParseInLocation(cjTimeLayout, o.CreateDate, time.UTC); err == nil {
		order.CreatedAt = t
		order.UpdatedAt = t
	}
	for _, item := range o.ProductList {
		order.Items = append(order.Items, supplier.OrderItem{
			ExternalProductID: item.VID,
			VariantID:         item.VID,
			SKU:               item.SKU,
			Quantity:          item.Quantity,
			UnitPrice:         decimal.NewFromFloat(item.SellPrice),
		})
	}
	return order
}

// ---------------------------------------------------------------------------
// Status Mapping
// ---------------------------------------------------------------------------

// mapCJOrderStatus maps the provider status vocabulary onto the canonical
// enum. Unknown statuses map to PENDING.
func mapCJOrderStatus(status string) supplier.OrderStatus {
	switch status {
	case "CREATED":
		return supplier.OrderStatusSubmitted
	case "IN_CART", "UNPAID":
		return supplier.OrderStatusPending
	case "UNSHIPPED", "PAID", "PROCESSING":
		return supplier.OrderStatusProcessing
	case "SHIPPED":
		return supplier.OrderStatusShipped
	case "DELIVERED":
		return supplier.OrderStatusDelivered
	case "CANCELLED":
		return supplier.OrderStatusCancelled
	default:
		return supplier.OrderStatusPending
	}
}

// Compile-time interface checks
var (
	_ supplier.Connector         = (*CJConnector)(nil)
	_ supplier.WarehouseProvider = (*CJConnector)(nil)
	_ supplier.WebhookConsumer   = (*CJConnector)(nil)
)
