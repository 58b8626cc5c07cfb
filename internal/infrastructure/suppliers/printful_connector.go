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
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/dropship/backend/internal/domain/supplier"
)

// PrintfulConnector implements the supplier.Connector contract for the
// Printful print-on-demand API (static bearer token, no refresh).
//
// Printful products are made to order, so "stock" means the number of
// variants the provider can currently produce, not a warehouse count.
type PrintfulConnector struct {
	config     *PrintfulConfig
	httpClient *http.Client
	limiter    *RateLimiter
	retry      RetryPolicy
	logger     *zap.Logger

	// mockup polling budget, taken from config
	pollInterval time.Duration
	maxPolls     int
}

// NewPrintfulConnector creates a connector with the given configuration
func NewPrintfulConnector(config *PrintfulConfig, logger *zap.Logger) (*PrintfulConnector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	retry := DefaultRetryPolicy()
	retry.MaxAttempts = config.MaxRetries

	return &PrintfulConnector{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		limiter:      NewRateLimiter(config.RequestsPerMinute, config.RequestsPerHour),
		retry:        retry,
		logger:       logger.Named("printful"),
		pollInterval: time.Duration(config.MockupPollSeconds) * time.Second,
		maxPolls:     config.MockupMaxPolls,
	}, nil
}

// ProviderCode returns the provider this connector integrates
func (c *PrintfulConnector) ProviderCode() supplier.ProviderCode {
	return supplier.ProviderCodePrintful
}

// ---------------------------------------------------------------------------
// Authentication
// ---------------------------------------------------------------------------

// Authenticate validates the static bearer token against the store endpoint
func (c *PrintfulConnector) Authenticate(ctx context.Context) error {
	return c.call(ctx, http.MethodGet, "/store", nil, nil, nil)
}

// RefreshToken is not supported: the bearer token is static.
func (c *PrintfulConnector) RefreshToken(_ context.Context) error {
	return fmt.Errorf("%w: printful uses a static bearer token", supplier.ErrNotSupported)
}

// ---------------------------------------------------------------------------
// Catalog Operations
// ---------------------------------------------------------------------------

// SearchProducts lists the base catalog and filters by title match: the
// provider has no free-text search endpoint.
func (c *PrintfulConnector) SearchProducts(ctx context.Context, query supplier.SearchQuery) ([]supplier.SupplierProduct, error) {
	query.Normalize()

	params := url.Values{}
	if query.Category != "" {
		params.Set("category_id", query.Category)
	}

	var catalog []PrintfulProduct
	if err := c.call(ctx, http.MethodGet, "/products", params, nil, &catalog); err != nil {
		return nil, err
	}

	needle := strings.ToLower(query.Query)
	products := make([]supplier.SupplierProduct, 0)
	skip := (query.Page - 1) * query.Limit
	for i := range catalog {
		p := &catalog[i]
		if p.IsDiscont {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Model), needle) {
			continue
		}
		if skip > 0 {
			skip--
			continue
		}
		if len(products) >= query.Limit {
			break
		}
		product := c.translateProduct(p, nil)
		if err := product.Validate(); err != nil {
			c.logger.Warn("skipping invalid product from catalog",
				zap.String("external_id", product.ExternalID), zap.Error(err))
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

// GetProduct fetches one base product with its variants
func (c *PrintfulConnector) GetProduct(ctx context.Context, externalID string) (*supplier.SupplierProduct, error) {
	detail, err := c.productDetail(ctx, externalID)
	if err != nil {
		return nil, err
	}
	product := c.translateProduct(&detail.Product, detail.Variants)
	return &product, nil
}

// GetProductVariants fetches the variant list for one product
func (c *PrintfulConnector) GetProductVariants(ctx context.Context, externalID string) ([]supplier.ProductVariant, error) {
	detail, err := c.productDetail(ctx, externalID)
	if err != nil {
		return nil, err
	}

	variants := make([]supplier.ProductVariant, 0, len(detail.Variants))
	for i := range detail.Variants {
		variants = append(variants, translatePrintfulVariant(&detail.Variants[i]))
	}
	return variants, nil
}

// GetInventory reports producibility for the given ids: the quantity is the
// number of variants currently in production. Best effort per id.
func (c *PrintfulConnector) GetInventory(ctx context.Context, productIDs []string) ([]supplier.InventoryUpdate, error) {
	updates := make([]supplier.InventoryUpdate, 0, len(productIDs))
	for _, id := range productIDs {
		if ctx.Err() != nil {
			return updates, ctx.Err()
		}
		detail, err := c.productDetail(ctx, id)
		if err != nil {
			c.logger.Warn("inventory fetch failed, omitting product",
				zap.String("external_id", id), zap.Error(err))
			continue
		}
		var producible int
		for _, v := range detail.Variants {
			if v.InStock {
				producible++
			}
		}
		updates = append(updates, supplier.NewInventoryUpdate(id, detail.Product.Model, producible))
	}
	return updates, nil
}

// GetCategories lists the provider catalog categories
func (c *PrintfulConnector) GetCategories(ctx context.Context) ([]supplier.Category, error) {
	var list PrintfulCategoryList
	if err := c.call(ctx, http.MethodGet, "/categories", nil, nil, &list); err != nil {
		return nil, err
	}

	categories := make([]supplier.Category, 0, len(list.Categories))
	for _, cat := range list.Categories {
		category := supplier.Category{
			ExternalID: strconv.FormatInt(cat.ID, 10),
			Name:       cat.Title,
		}
		if cat.ParentID > 0 {
			category.ParentID = strconv.FormatInt(cat.ParentID, 10)
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func (c *PrintfulConnector) productDetail(ctx context.Context, externalID string) (*PrintfulProductDetail, error) {
	var detail PrintfulProductDetail
	if err := c.call(ctx, http.MethodGet, "/products/"+externalID, nil, nil, &detail); err != nil {
		return nil, err
	}
	if detail.Product.ID == 0 {
		return nil, fmt.Errorf("%w: printful product %s", supplier.ErrProductNotFound, externalID)
	}
	return &detail, nil
}

// ---------------------------------------------------------------------------
// Shipping Operations
// ---------------------------------------------------------------------------

// GetShippingMethods quotes delivery options for a product's first variant
func (c *PrintfulConnector) GetShippingMethods(ctx context.Context, externalID, countryCode string) ([]supplier.ShippingMethod, error) {
	detail, err := c.productDetail(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if len(detail.Variants) == 0 {
		return nil, fmt.Errorf("%w: printful product %s has no variants to quote", supplier.ErrInvalidRequest, externalID)
	}

	return c.shippingRates(ctx, PrintfulRateRequest{
		Recipient: PrintfulRecipient{CountryCode: countryCode},
		Items: []PrintfulRateItem{
			{VariantID: strconv.FormatInt(detail.Variants[0].ID, 10), Quantity: 1},
		},
	})
}

// CalculateShipping quotes the given method for the full item set; when no
// method is named the cheapest rate wins.
func (c *PrintfulConnector) CalculateShipping(ctx context.Context, items []supplier.OrderItem, address supplier.ShippingAddress, method string) (*supplier.ShippingQuote, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items to quote", supplier.ErrInvalidRequest)
	}

	rateItems := make([]PrintfulRateItem, 0, len(items))
	for _, item := range items {
		vid := item.VariantID
		if vid == "" {
			vid = item.ExternalProductID
		}
		rateItems = append(rateItems, PrintfulRateItem{VariantID: vid, Quantity: item.Quantity})
	}

	methods, err := c.shippingRates(ctx, PrintfulRateRequest{
		Recipient: translateRecipient(address),
		Items:     rateItems,
	})
	if err != nil {
		return nil, err
	}
	if len(methods) == 0 {
		return nil, fmt.Errorf("%w: printful offers no shipping to %s", supplier.ErrInvalidRequest, address.CountryCode)
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

func (c *PrintfulConnector) shippingRates(ctx context.Context, req PrintfulRateRequest) ([]supplier.ShippingMethod, error) {
	var rates []PrintfulRate
	if err := c.call(ctx, http.MethodPost, "/shipping/rates", nil, req, &rates); err != nil {
		return nil, err
	}

	methods := make([]supplier.ShippingMethod, 0, len(rates))
	for _, rate := range rates {
		methods = append(methods, supplier.ShippingMethod{
			Code:     rate.ID,
			Name:     rate.Name,
			Cost:     ParseDecimal(rate.Rate),
			Currency: rate.Currency,
			MinDays:  rate.MinDays,
			MaxDays:  rate.MaxDays,
		})
	}
	return methods, nil
}

// ---------------------------------------------------------------------------
// Order Operations
// ---------------------------------------------------------------------------

// PlaceOrder submits one order. The HTTP call is made exactly once (never
// retried), so a transport failure after the request may have reached the
// provider surfaces as ErrOrderStateUnknown for the caller to reconcile via
// GetOrder before resubmitting.
func (c *PrintfulConnector) PlaceOrder(ctx context.Context, req *supplier.OrderRequest) (*supplier.SupplierOrder, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body := PrintfulOrderRequest{
		ExternalID: req.ClientOrderRef.String(),
		Shipping:   req.ShippingMethod,
		Recipient:  translateRecipient(req.ShippingAddress),
	}
	for _, item := range req.Items {
		vid := item.VariantID
		if vid == "" {
			vid = item.ExternalProductID
		}
		variantID, err := strconv.ParseInt(vid, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: printful variant id %q is not numeric", supplier.ErrInvalidRequest, vid)
		}
		body.Items = append(body.Items, PrintfulOrderItem{
			VariantID: variantID,
			Quantity:  item.Quantity,
		})
	}

	order, err := c.submitOrder(ctx, req.ClientOrderRef, body)
	if err != nil {
		return nil, err
	}
	order.Items = req.Items
	order.ShippingAddress = req.ShippingAddress
	return order, nil
}

// submitOrder performs the single-shot order POST shared by PlaceOrder and
// OrderSample.
func (c *PrintfulConnector) submitOrder(ctx context.Context, ref uuid.UUID, body PrintfulOrderRequest) (*supplier.SupplierOrder, error) {
	if err := c.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	resp, err := c.doRequest(ctx, http.MethodPost, "/orders", nil, body)
	if err != nil {
		if supplier.IsTransient(err) {
			// The request may have reached the provider before the failure.
			return nil, fmt.Errorf("%w: printful order %s: %v", supplier.ErrOrderStateUnknown, ref, err)
		}
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, c.apiError(resp)
	}

	var created PrintfulOrder
	if err := json.Unmarshal(resp.Result, &created); err != nil {
		return nil, fmt.Errorf("%w: printful order %s: unparseable response: %v",
			supplier.ErrOrderStateUnknown, ref, err)
	}

	order := c.translateOrder(&created)
	order.ClientOrderRef = ref
	return order, nil
}

// GetOrder fetches the current provider-side order state
func (c *PrintfulConnector) GetOrder(ctx context.Context, externalOrderID string) (*supplier.SupplierOrder, error) {
	var data PrintfulOrder
	if err := c.call(ctx, http.MethodGet, "/orders/"+externalOrderID, nil, nil, &data); err != nil {
		return nil, err
	}
	if data.ID == 0 {
		return nil, fmt.Errorf("%w: printful order %s", supplier.ErrOrderNotFound, externalOrderID)
	}
	return c.translateOrder(&data), nil
}

// CancelOrder requests cancellation of one order
func (c *PrintfulConnector) CancelOrder(ctx context.Context, externalOrderID string) error {
	return c.call(ctx, http.MethodDelete, "/orders/"+externalOrderID, nil, nil, nil)
}

// GetTracking synthesizes tracking history from the order's shipments: the
// provider exposes no per-scan event feed.
func (c *PrintfulConnector) GetTracking(ctx context.Context, externalOrderID string) ([]supplier.TrackingEvent, error) {
	var data PrintfulOrder
	if err := c.call(ctx, http.MethodGet, "/orders/"+externalOrderID, nil, nil, &data); err != nil {
		return nil, err
	}
	if data.ID == 0 {
		return nil, fmt.Errorf("%w: printful order %s", supplier.ErrOrderNotFound, externalOrderID)
	}

	events := make([]supplier.TrackingEvent, 0, len(data.Shipments))
	for _, shipment := range data.Shipments {
		event := supplier.TrackingEvent{
			Status:      "SHIPPED",
			Description: fmt.Sprintf("Shipped via %s %s, tracking %s", shipment.Carrier, shipment.Service, shipment.TrackingNumber),
		}
		if shipment.ShippedAt > 0 {
			event.Timestamp = time.Unix(shipment.ShippedAt, 0).UTC()
		}
		events = append(events, event)
	}
	return events, nil
}

// Close releases the connector's HTTP session
func (c *PrintfulConnector) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// ---------------------------------------------------------------------------
// Sample Orders
// ---------------------------------------------------------------------------

// OrderSample places a single-unit sample order for the product's first
// variant so the merchant can inspect quality before listing.
func (c *PrintfulConnector) OrderSample(ctx context.Context, externalID string, address supplier.ShippingAddress) (*supplier.SupplierOrder, error) {
	detail, err := c.productDetail(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if len(detail.Variants) == 0 {
		return nil, fmt.Errorf("%w: printful product %s has no orderable variants", supplier.ErrInvalidRequest, externalID)
	}

	ref := uuid.New()
	order, err := c.submitOrder(ctx, ref, PrintfulOrderRequest{
		ExternalID: ref.String(),
		Recipient:  translateRecipient(address),
		Items: []PrintfulOrderItem{
			{VariantID: detail.Variants[0].ID, Quantity: 1},
		},
		IsSample: true,
	})
	if err != nil {
		return nil, err
	}
	order.ShippingAddress = address
	return order, nil
}

// ---------------------------------------------------------------------------
// Print-on-Demand Operations
// ---------------------------------------------------------------------------

// GetPODTemplates builds the print template for a base product from its
// printfile specification.
func (c *PrintfulConnector) GetPODTemplates(ctx context.Context, productID string) ([]supplier.PODTemplate, error) {
	var result PrintfulPrintfileResult
	if err := c.call(ctx, http.MethodGet, "/mockup-generator/printfiles/"+productID, nil, nil, &result); err != nil {
		return nil, err
	}

	template := supplier.PODTemplate{
		ExternalID: strconv.FormatInt(result.ProductID, 10),
		ProductID:  productID,
	}
	for code, name := range result.AvailablePlaces {
		placement := supplier.PODPlacement{Code: code, Name: name}
		if len(result.Printfiles) > 0 {
			placement.WidthPx = result.Printfiles[0].Width
			placement.HeightPx = result.Printfiles[0].Height
		}
		template.Placements = append(template.Placements, placement)
	}
	if len(result.Printfiles) > 0 {
		template.PrintFileRequirements = map[string]string{
			"dpi":       strconv.Itoa(result.Printfiles[0].DPI),
			"fill_mode": result.Printfiles[0].FillMD,
		}
	}
	return []supplier.PODTemplate{template}, nil
}

// CreatePODMockup submits an async render task and polls it at a fixed
// interval with a bounded budget. A task still pending after the last poll is
// reported with MockupStatusTimeout and no error: the job may still complete
// provider-side.
func (c *PrintfulConnector) CreatePODMockup(ctx context.Context, productID, designURL string, opts supplier.MockupOptions) (*supplier.PODMockup, error) {
	placement := opts.Placement
	if placement == "" {
		placement = "front"
	}

	variantIDs := make([]int64, 0, len(opts.VariantIDs))
	for _, vid := range opts.VariantIDs {
		id, err := strconv.ParseInt(vid, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: printful variant id %q is not numeric", supplier.ErrInvalidRequest, vid)
		}
		variantIDs = append(variantIDs, id)
	}
	if len(variantIDs) == 0 {
		detail, err := c.productDetail(ctx, productID)
		if err != nil {
			return nil, err
		}
		if len(detail.Variants) == 0 {
			return nil, fmt.Errorf("%w: printful product %s has no variants to render", supplier.ErrInvalidRequest, productID)
		}
		variantIDs = append(variantIDs, detail.Variants[0].ID)
	}

	var task PrintfulMockupTask
	err := c.call(ctx, http.MethodPost, "/mockup-generator/create-task/"+productID, nil, PrintfulMockupTaskRequest{
		VariantIDs: variantIDs,
		Files: []PrintfulMockupTaskFile{
			{Placement: placement, ImageURL: designURL},
		},
	}, &task)
	if err != nil {
		return nil, err
	}

	mockup := &supplier.PODMockup{
		TaskID:    task.TaskKey,
		ProductID: productID,
		Status:    supplier.MockupStatusPending,
	}

	params := url.Values{}
	params.Set("task_key", task.TaskKey)
	for poll := 0; poll < c.maxPolls; poll++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}

		var state PrintfulMockupTask
		if err := c.call(ctx, http.MethodGet, "/mockup-generator/task", params, nil, &state); err != nil {
			return nil, err
		}
		switch state.Status {
		case "completed":
			mockup.Status = supplier.MockupStatusCompleted
			for _, m := range state.Mockups {
				mockup.MockupURLs = append(mockup.MockupURLs, m.MockupURL)
			}
			return mockup, nil
		case "failed":
			c.logger.Warn("mockup render failed",
				zap.String("task_key", task.TaskKey), zap.String("reason", state.Error))
			mockup.Status = supplier.MockupStatusFailed
			return mockup, nil
		}
	}

	mockup.Status = supplier.MockupStatusTimeout
	return mockup, nil
}

// SubmitPODDesign registers a finished design as an orderable store product
func (c *PrintfulConnector) SubmitPODDesign(ctx context.Context, productID, name, designURL string, retailPrice decimal.Decimal) (*supplier.PODDesign, error) {
	detail, err := c.productDetail(ctx, productID)
	if err != nil {
		return nil, err
	}
	if len(detail.Variants) == 0 {
		return nil, fmt.Errorf("%w: printful product %s has no variants to list", supplier.ErrInvalidRequest, productID)
	}

	var body PrintfulSyncProductRequest
	body.SyncProduct.Name = name
	for _, v := range detail.Variants {
		body.SyncVariants = append(body.SyncVariants, PrintfulSyncVariantRequest{
			VariantID:   v.ID,
			RetailPrice: retailPrice.StringFixed(2),
			Files:       []PrintfulFile{{URL: designURL}},
		})
	}

	var created PrintfulSyncProduct
	if err := c.call(ctx, http.MethodPost, "/store/products", nil, body, &created); err != nil {
		return nil, err
	}

	currency := detail.Product.Currency
	if currency == "" {
		currency = "USD"
	}
	return &supplier.PODDesign{
		ExternalID:  strconv.FormatInt(created.ID, 10),
		ProductID:   productID,
		Name:        name,
		DesignURL:   designURL,
		RetailPrice: retailPrice,
		Currency:    currency,
	}, nil
}

// ---------------------------------------------------------------------------
// Webhook Ingestion
// ---------------------------------------------------------------------------

// VerifyWebhook checks the shared-secret signature over the raw payload
func (c *PrintfulConnector) VerifyWebhook(payload []byte, signature string) bool {
	return VerifyWebhookSignature(c.config.WebhookSecret, payload, signature)
}

// ProcessWebhook translates a verified provider push into a canonical event.
// The push body carries its own type; it wins over the transport-level hint.
func (c *PrintfulConnector) ProcessWebhook(_ context.Context, eventType string, payload []byte) (*supplier.WebhookEvent, error) {
	var push PrintfulWebhook
	if err := json.Unmarshal(payload, &push); err != nil {
		return nil, fmt.Errorf("printful: failed to parse webhook payload: %w", err)
	}
	if push.Type != "" {
		eventType = push.Type
	}

	switch eventType {
	case "order_created", "order_updated", "order_failed", "order_canceled", "package_shipped":
		var data PrintfulOrderWebhookData
		if err := json.Unmarshal(push.Data, &data); err != nil {
			return nil, fmt.Errorf("printful: failed to parse webhook data: %w", err)
		}
		change := &supplier.OrderStatusChange{
			ExternalOrderID: strconv.FormatInt(data.Order.ID, 10),
			Status:          mapPrintfulOrderStatus(data.Order.Status),
		}
		switch eventType {
		case "package_shipped":
			change.Status = supplier.OrderStatusShipped
		case "order_failed":
			change.Status = supplier.OrderStatusFailed
		case "order_canceled":
			change.Status = supplier.OrderStatusCancelled
		}
		if data.Shipment != nil {
			change.TrackingNumber = data.Shipment.TrackingNumber
			change.Carrier = data.Shipment.Carrier
		}
		return &supplier.WebhookEvent{
			Provider:    supplier.ProviderCodePrintful,
			Type:        supplier.WebhookEventOrderStatus,
			ReceivedAt:  time.Now(),
			OrderStatus: change,
		}, nil
	case "stock_updated":
		var data PrintfulStockWebhookData
		if err := json.Unmarshal(push.Data, &data); err != nil {
			return nil, fmt.Errorf("printful: failed to parse webhook data: %w", err)
		}
		var producible int
		for _, inStock := range data.VariantStock {
			if inStock {
				producible++
			}
		}
		update := supplier.NewInventoryUpdate(strconv.FormatInt(data.ProductID, 10), "", producible)
		return &supplier.WebhookEvent{
			Provider:   supplier.ProviderCodePrintful,
			Type:       supplier.WebhookEventInventory,
			ReceivedAt: time.Now(),
			Inventory:  &update,
		}, nil
	default:
		return nil, fmt.Errorf("%w: printful %q", supplier.ErrUnknownWebhookEvent, eventType)
	}
}

// ---------------------------------------------------------------------------
// Internal Helpers
// ---------------------------------------------------------------------------

// call funnels one API request through the rate limiter and retry executor
// and decodes the result payload into out when given.
func (c *PrintfulConnector) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
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
		if out != nil && len(resp.Result) > 0 && string(resp.Result) != "null" {
			if err := json.Unmarshal(resp.Result, out); err != nil {
				return fmt.Errorf("printful: failed to parse response result: %w", err)
			}
		}
		return nil
	})
}

// doRequest performs one HTTP request and parses the response envelope.
// Envelope-level errors are left to the caller so order placement can tell a
// definite rejection apart from an ambiguous transport failure.
func (c *PrintfulConnector) doRequest(ctx context.Context, method, path string, query url.Values, body any) (*PrintfulResponse, error) {
	endpoint := c.config.APIBaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("printful: failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("printful: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", supplier.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := readBody(resp)
	if err != nil {
		return nil, err
	}
	if err := statusError("printful", resp.StatusCode); err != nil {
		return nil, err
	}

	var envelope PrintfulResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("printful: failed to parse response: %w", err)
	}
	return &envelope, nil
}

// apiError maps an envelope error onto the domain error taxonomy. The
// envelope code mirrors the HTTP status vocabulary.
func (c *PrintfulConnector) apiError(resp *PrintfulResponse) error {
	message := ""
	if resp.Error != nil {
		message = resp.Error.Message
	}
	if err := statusError("printful", resp.Code); err != nil {
		if message != "" {
			return fmt.Errorf("%w: %s", err, message)
		}
		return err
	}
	return fmt.Errorf("%w: printful: %s", supplier.ErrInvalidRequest, message)
}

// translateProduct maps a catalog product onto the canonical model. Every
// Printful product is print-on-demand; the template payload starts as a
// pointer to the product and is filled in by GetPODTemplates.
func (c *PrintfulConnector) translateProduct(p *PrintfulProduct, variants []PrintfulVariant) supplier.SupplierProduct {
	currency := p.Currency
	if currency == "" {
		currency = "USD"
	}
	id := strconv.FormatInt(p.ID, 10)
	product := supplier.SupplierProduct{
		ExternalID:  id,
		Provider:    supplier.ProviderCodePrintful,
		Title:       p.Title,
		Description: p.Description,
		Currency:    currency,
		ImageURLs:   []string{p.Image},
		Category:    p.TypeName,
		Brand:       p.Brand,
		SKU:         p.Model,
		IsPOD:       true,
		PODTemplate: &supplier.PODTemplate{ProductID: id},
	}

	var producible int
	for i := range variants {
		v := &variants[i]
		variant := translatePrintfulVariant(v)
		product.Variants = append(product.Variants, variant)
		if v.InStock {
			producible++
		}
		if product.Price.IsZero() || (variant.Price.IsPositive() && variant.Price.LessThan(product.Price)) {
			product.Price = variant.Price
		}
	}
	product.StockQuantity = producible
	return product
}

func translatePrintfulVariant(v *PrintfulVariant) supplier.ProductVariant {
	stock := 0
	if v.InStock {
		stock = 1
	}
	return supplier.ProductVariant{
		ExternalID:    strconv.FormatInt(v.ID, 10),
		SKU:           v.Name,
		Price:         ParseDecimal(v.Price),
		StockQuantity: stock,
		ImageURL:      v.Image,
		Options: map[string]string{
			"size":  v.Size,
			"color": v.Color,
		},
	}
}

func translateRecipient(address supplier.ShippingAddress) PrintfulRecipient {
	return PrintfulRecipient{
		Name:        address.Name,
		Phone:       address.Phone,
		Address1:    address.AddressLine,
		City:        address.City,
		StateCode:   address.Province,
		CountryCode: address.CountryCode,
		Zip:         address.PostalCode,
	}
}

// translateOrder maps a provider order onto the canonical model
func (c *PrintfulConnector) translateOrder(o *PrintfulOrder) *supplier.SupplierOrder {
	currency := o.Costs.Currency
	if currency == "" {
		currency = "USD"
	}
	order := &supplier.SupplierOrder{
		ExternalOrderID: strconv.FormatInt(o.ID, 10),
		Provider:        supplier.ProviderCodePrintful,
		Status:          mapPrintfulOrderStatus(o.Status),
		ShippingMethod:  o.Shipping,
		ShippingCost:    ParseDecimal(o.Costs.Shipping),
		TotalCost:       ParseDecimal(o.Costs.Total),
		Currency:        currency,
	}
	if ref, err := uuid.Parse(o.ExternalID); err == nil {
		order.ClientOrderRef = ref
	}
	if o.Created > 0 {
		order.CreatedAt = time.Unix(o.Created, 0).UTC()
	}
	if o.Updated > 0 {
		order.UpdatedAt = time.Unix(o.Updated, 0).UTC()
	}
	if len(o.Shipments) > 0 {
		last := o.Shipments[len(o.Shipments)-1]
		order.TrackingNumber = last.TrackingNumber
		order.Carrier = last.Carrier
		order.TrackingURL = last.TrackingURL
	}
	for _, item := range o.Items {
		order.Items = append(order.Items, supplier.OrderItem{
			ExternalProductID: strconv.FormatInt(item.VariantID, 10),
			VariantID:         strconv.FormatInt(item.VariantID, 10),
			Quantity:          item.Quantity,
			UnitPrice:         ParseDecimal(item.Price),
		})
	}
	return order
}

// ---------------------------------------------------------------------------
// Status Mapping
// ---------------------------------------------------------------------------

// mapPrintfulOrderStatus maps the provider status vocabulary onto the
// canonical enum. Unknown statuses map to PENDING.
func mapPrintfulOrderStatus(status string) supplier.OrderStatus {
	switch status {
	case "draft":
		return supplier.OrderStatusPending
	case "pending":
		return supplier.OrderStatusSubmitted
	case "inprocess", "onhold", "partial":
		return supplier.OrderStatusProcessing
	case "fulfilled":
		return supplier.OrderStatusShipped
	case "canceled":
		return supplier.OrderStatusCancelled
	case "failed":
		return supplier.OrderStatusFailed
	default:
		return supplier.OrderStatusPending
	}
}

// Compile-time interface checks
var (
	_ supplier.Connector       = (*PrintfulConnector)(nil)
	_ supplier.PODProvider     = (*PrintfulConnector)(nil)
	_ supplier.SampleOrderer   = (*PrintfulConnector)(nil)
	_ supplier.WebhookConsumer = (*PrintfulConnector)(nil)
)
