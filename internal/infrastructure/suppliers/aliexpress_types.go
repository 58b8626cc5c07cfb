package suppliers

// ---------------------------------------------------------------------------
// Common AliExpress API Response Types
// ---------------------------------------------------------------------------

// AliExpressResponse is the base response wrapper for all AliExpress API calls
type AliExpressResponse struct {
	// ErrorResponse contains error information if the request failed
	ErrorResponse *AliExpressErrorResponse `json:"error_response,omitempty"`
}

// AliExpressErrorResponse represents an error response from the gateway
type AliExpressErrorResponse struct {
	Code      string `json:"code"`
	Msg       string `json:"msg"`
	SubCode   string `json:"sub_code,omitempty"`
	SubMsg    string `json:"sub_msg,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// IsSuccess returns true if the response indicates success
func (r *AliExpressResponse) IsSuccess() bool {
	return r.ErrorResponse == nil
}

// ---------------------------------------------------------------------------
// Auth Types
// ---------------------------------------------------------------------------

// AliExpressAuthResponse is the response for aliexpress.auth.session.create
type AliExpressAuthResponse struct {
	AliExpressResponse
	Result *AliExpressAuthResult `json:"auth_session_create_response,omitempty"`
}

// AliExpressAuthResult carries the issued session key
type AliExpressAuthResult struct {
	SessionKey string `json:"session_key"`
	ExpiresIn  int64  `json:"expires_in"`
}

// ---------------------------------------------------------------------------
// Product Types
// ---------------------------------------------------------------------------

// AliExpressSKUProperty is one option of a product variant
type AliExpressSKUProperty struct {
	Name  string `json:"sku_property_name"`
	Value string `json:"sku_property_value"`
}

// AliExpressSKU is one orderable variant
type AliExpressSKU struct {
	SKUID      int64                   `json:"sku_id"`
	SKUCode    string                  `json:"sku_code"`
	Price      string                  `json:"sku_price"`
	Stock      int                     `json:"sku_stock"`
	ImageURL   string                  `json:"sku_image"`
	Properties []AliExpressSKUProperty `json:"sku_properties"`
}

// AliExpressProduct is one catalog item as the gateway reports it
type AliExpressProduct struct {
	ItemID        int64             `json:"item_id"`
	Title         string            `json:"subject"`
	Description   string            `json:"detail"`
	SalePrice     string            `json:"sale_price"`
	OriginalPrice string            `json:"original_price"`
	Currency      string            `json:"currency_code"`
	Stock         int               `json:"total_stock"`
	ImageURLs     []string          `json:"image_urls"`
	VideoURLs     []string          `json:"video_urls"`
	CategoryName  string            `json:"category_name"`
	Subcategory   string            `json:"subcategory_name"`
	Brand         string            `json:"brand_name"`
	SKUCode       string            `json:"sku_code"`
	WeightGrams   string            `json:"gross_weight"`
	FreightCost   string            `json:"freight_cost"`
	DeliveryMin   int               `json:"delivery_time_min"`
	DeliveryMax   int               `json:"delivery_time_max"`
	SKUs          []AliExpressSKU   `json:"sku_list"`
	Properties    map[string]string `json:"item_properties"`
	EvaluateRate  float64           `json:"evaluate_rate"`
	ReviewCount   int               `json:"review_count"`
	OrderCount    int               `json:"order_count"`
	DetailURL     string            `json:"detail_url"`
}

// AliExpressSearchResponse is the response for aliexpress.ds.text.search
type AliExpressSearchResponse struct {
	AliExpressResponse
	Result *AliExpressSearchResult `json:"ds_text_search_response,omitempty"`
}

// AliExpressSearchResult contains the matched products
type AliExpressSearchResult struct {
	TotalCount int                 `json:"total_count"`
	Products   []AliExpressProduct `json:"products"`
}

// AliExpressProductResponse is the response for aliexpress.ds.product.get
type AliExpressProductResponse struct {
	AliExpressResponse
	Result *AliExpressProduct `json:"ds_product_get_response,omitempty"`
}

// AliExpressCategoryResponse is the response for aliexpress.ds.category.get
type AliExpressCategoryResponse struct {
	AliExpressResponse
	Result *AliExpressCategoryResult `json:"ds_category_get_response,omitempty"`
}

// AliExpressCategoryResult contains the category list
type AliExpressCategoryResult struct {
	Categories []AliExpressCategory `json:"categories"`
}

// AliExpressCategory is one catalog category
type AliExpressCategory struct {
	CategoryID int64  `json:"category_id"`
	Name       string `json:"category_name"`
	ParentID   int64  `json:"parent_category_id"`
}

// ---------------------------------------------------------------------------
// Shipping Types
// ---------------------------------------------------------------------------

// AliExpressFreightResponse is the response for aliexpress.ds.freight.query
type AliExpressFreightResponse struct {
	AliExpressResponse
	Result *AliExpressFreightResult `json:"ds_freight_query_response,omitempty"`
}

// AliExpressFreightResult contains the freight options
type AliExpressFreightResult struct {
	Options []AliExpressFreightOption `json:"freight_options"`
}

// AliExpressFreightOption is one delivery option quote
type AliExpressFreightOption struct {
	ServiceName string `json:"service_name"`
	Amount      string `json:"freight_amount"`
	Currency    string `json:"currency_code"`
	MinDays     int    `json:"delivery_time_min"`
	MaxDays     int    `json:"delivery_time_max"`
}

// ---------------------------------------------------------------------------
// Order Types
// ---------------------------------------------------------------------------

// AliExpressOrderCreateResponse is the response for aliexpress.ds.order.create
type AliExpressOrderCreateResponse struct {
	AliExpressResponse
	Result *AliExpressOrderCreateResult `json:"ds_order_create_response,omitempty"`
}

// AliExpressOrderCreateResult carries the created order id
type AliExpressOrderCreateResult struct {
	OrderID   int64 `json:"order_id"`
	IsSuccess bool  `json:"is_success"`
}

// AliExpressOrderItem is one line item of a provider order
type AliExpressOrderItem struct {
	ItemID    int64  `json:"item_id"`
	SKUID     int64  `json:"sku_id"`
	SKUCode   string `json:"sku_code"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// AliExpressOrder is one provider order
type AliExpressOrder struct {
	OrderID          int64                 `json:"order_id"`
	OutOrderID       string                `json:"out_order_id"`
	Status           string                `json:"order_status"`
	TotalAmount      string                `json:"total_amount"`
	FreightAmount    string                `json:"freight_amount"`
	Currency         string                `json:"currency_code"`
	LogisticsNo      string                `json:"logistics_no"`
	LogisticsCompany string                `json:"logistics_company"`
	LogisticsURL     string                `json:"logistics_url"`
	EstimatedArrival string                `json:"estimated_arrival_time"`
	GmtCreate        string                `json:"gmt_create"`
	GmtModified      string                `json:"gmt_modified"`
	Items            []AliExpressOrderItem `json:"child_order_list"`
}

// AliExpressOrderResponse is the response for aliexpress.ds.order.get
type AliExpressOrderResponse struct {
	AliExpressResponse
	Result *AliExpressOrder `json:"ds_order_get_response,omitempty"`
}

// AliExpressOrderCancelResponse is the response for aliexpress.ds.order.cancel
type AliExpressOrderCancelResponse struct {
	AliExpressResponse
	Result *AliExpressOrderCreateResult `json:"ds_order_cancel_response,omitempty"`
}

// ---------------------------------------------------------------------------
// Tracking Types
// ---------------------------------------------------------------------------

// AliExpressTrackingResponse is the response for aliexpress.ds.tracking.get
type AliExpressTrackingResponse struct {
	AliExpressResponse
	Result *AliExpressTrackingResult `json:"ds_tracking_get_response,omitempty"`
}

// AliExpressTrackingResult contains the tracking event list, oldest first
type AliExpressTrackingResult struct {
	Events []AliExpressTrackingEvent `json:"tracking_events"`
}

// AliExpressTrackingEvent is one carrier scan event
type AliExpressTrackingEvent struct {
	EventDate   string `json:"event_date"`
	Status      string `json:"event_status"`
	Description string `json:"event_desc"`
	Address     string `json:"address"`
}

// ---------------------------------------------------------------------------
// Webhook Payload Types
// ---------------------------------------------------------------------------

// AliExpressOrderWebhook is the payload of an order status push
type AliExpressOrderWebhook struct {
	OrderID          int64  `json:"order_id"`
	Status           string `json:"order_status"`
	LogisticsNo      string `json:"logistics_no"`
	LogisticsCompany string `json:"logistics_company"`
}

// AliExpressInventoryWebhook is the payload of a stock change push
type AliExpressInventoryWebhook struct {
	ItemID  int64  `json:"item_id"`
	SKUCode string `json:"sku_code"`
	Stock   int    `json:"stock"`
}
