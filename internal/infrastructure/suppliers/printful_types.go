package suppliers

import "encoding/json"

// ---------------------------------------------------------------------------
// Common Printful API Response Types
// ---------------------------------------------------------------------------

// PrintfulResponse is the envelope every Printful endpoint returns. Result
// carries the endpoint-specific payload and is decoded separately.
type PrintfulResponse struct {
	Code   int             `json:"code"`
	Result json.RawMessage `json:"result"`
	Error  *PrintfulError  `json:"error,omitempty"`
}

// PrintfulError carries the envelope-level error detail
type PrintfulError struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// IsSuccess returns true if the response indicates success
func (r *PrintfulResponse) IsSuccess() bool {
	return r.Code >= 200 && r.Code < 300 && r.Error == nil
}

// ---------------------------------------------------------------------------
// Catalog Types
// ---------------------------------------------------------------------------

// PrintfulProduct is one catalog base product
type PrintfulProduct struct {
	ID           int64    `json:"id"`
	MainCategory int64    `json:"main_category_id"`
	Type         string   `json:"type"`
	TypeName     string   `json:"type_name"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Image        string   `json:"image"`
	VariantCount int      `json:"variant_count"`
	Currency     string   `json:"currency"`
	Files        []string `json:"files"`
	IsDiscont    bool     `json:"is_discontinued"`
}

// PrintfulVariant is one orderable catalog variant
type PrintfulVariant struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	ColorCode string `json:"color_code"`
	Image     string `json:"image"`
	Price     string `json:"price"`
	InStock   bool   `json:"in_stock"`
}

// PrintfulProductDetail is the payload of /products/{id}
type PrintfulProductDetail struct {
	Product  PrintfulProduct   `json:"product"`
	Variants []PrintfulVariant `json:"variants"`
}

// PrintfulCategory is one catalog category
type PrintfulCategory struct {
	ID       int64  `json:"id"`
	ParentID int64  `json:"parent_id"`
	Title    string `json:"title"`
}

// PrintfulCategoryList is the payload of /categories
type PrintfulCategoryList struct {
	Categories []PrintfulCategory `json:"categories"`
}

// ---------------------------------------------------------------------------
// Shipping Types
// ---------------------------------------------------------------------------

// PrintfulRecipient is a delivery destination
type PrintfulRecipient struct {
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	Address1    string `json:"address1"`
	City        string `json:"city"`
	StateCode   string `json:"state_code,omitempty"`
	CountryCode string `json:"country_code"`
	Zip         string `json:"zip,omitempty"`
}

// PrintfulRateItem is one line of a shipping rate request
type PrintfulRateItem struct {
	VariantID         string `json:"variant_id,omitempty"`
	ExternalVariantID string `json:"external_variant_id,omitempty"`
	Quantity          int    `json:"quantity"`
}

// PrintfulRateRequest is the body of /shipping/rates
type PrintfulRateRequest struct {
	Recipient PrintfulRecipient  `json:"recipient"`
	Items     []PrintfulRateItem `json:"items"`
}

// PrintfulRate is one shipping rate quote
type PrintfulRate struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Rate     string `json:"rate"`
	Currency string `json:"currency"`
	MinDays  int    `json:"minDeliveryDays"`
	MaxDays  int    `json:"maxDeliveryDays"`
}

// ---------------------------------------------------------------------------
// Order Types
// ---------------------------------------------------------------------------

// PrintfulOrderItem is one line item of an order
type PrintfulOrderItem struct {
	ID          int64          `json:"id,omitempty"`
	VariantID   int64          `json:"variant_id,omitempty"`
	Quantity    int            `json:"quantity"`
	Price       string         `json:"price,omitempty"`
	RetailPrice string         `json:"retail_price,omitempty"`
	Name        string         `json:"name,omitempty"`
	Files       []PrintfulFile `json:"files,omitempty"`
}

// PrintfulFile is one print file attachment
type PrintfulFile struct {
	ID        int64  `json:"id,omitempty"`
	Type      string `json:"type,omitempty"`
	URL       string `json:"url,omitempty"`
	Placement string `json:"placement,omitempty"`
}

// PrintfulCosts is the cost breakdown of an order
type PrintfulCosts struct {
	Currency string `json:"currency"`
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

// PrintfulShipment is one outbound shipment of an order
type PrintfulShipment struct {
	ID             int64  `json:"id"`
	Carrier        string `json:"carrier"`
	Service        string `json:"service"`
	TrackingNumber string `json:"tracking_number"`
	TrackingURL    string `json:"tracking_url"`
	ShippedAt      int64  `json:"ship_date_unix"`
	Status         string `json:"status"`
}

// PrintfulOrderRequest is the body of POST /orders
type PrintfulOrderRequest struct {
	ExternalID string              `json:"external_id"`
	Shipping   string              `json:"shipping,omitempty"`
	Recipient  PrintfulRecipient   `json:"recipient"`
	Items      []PrintfulOrderItem `json:"items"`
	IsSample   bool                `json:"is_sample,omitempty"`
}

// PrintfulOrder is one provider order
type PrintfulOrder struct {
	ID         int64               `json:"id"`
	ExternalID string              `json:"external_id"`
	Status     string              `json:"status"`
	Shipping   string              `json:"shipping"`
	Created    int64               `json:"created"`
	Updated    int64               `json:"updated"`
	Recipient  PrintfulRecipient   `json:"recipient"`
	Items      []PrintfulOrderItem `json:"items"`
	Costs      PrintfulCosts       `json:"costs"`
	Shipments  []PrintfulShipment  `json:"shipments"`
}

// ---------------------------------------------------------------------------
// Mockup Generator Types
// ---------------------------------------------------------------------------

// PrintfulPrintfile is one printable file slot for a placement
type PrintfulPrintfile struct {
	ID     int64  `json:"printfile_id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	DPI    int    `json:"dpi"`
	FillMD string `json:"fill_mode"`
}

// PrintfulVariantPrintfile maps placement codes to printfile ids per variant
type PrintfulVariantPrintfile struct {
	VariantID  int64            `json:"variant_id"`
	Placements map[string]int64 `json:"placements"`
}

// PrintfulPrintfileResult is the payload of /mockup-generator/printfiles/{id}
type PrintfulPrintfileResult struct {
	ProductID         int64                      `json:"product_id"`
	AvailablePlaces   map[string]string          `json:"available_placements"`
	Printfiles        []PrintfulPrintfile        `json:"printfiles"`
	VariantPrintfiles []PrintfulVariantPrintfile `json:"variant_printfiles"`
}

// PrintfulMockupTaskRequest is the body of /mockup-generator/create-task/{id}
type PrintfulMockupTaskRequest struct {
	VariantIDs []int64                  `json:"variant_ids"`
	Format     string                   `json:"format,omitempty"`
	Files      []PrintfulMockupTaskFile `json:"files"`
}

// PrintfulMockupTaskFile is one artwork file of a mockup task
type PrintfulMockupTaskFile struct {
	Placement string `json:"placement"`
	ImageURL  string `json:"image_url"`
}

// PrintfulMockup is one rendered mockup preview
type PrintfulMockup struct {
	Placement string `json:"placement"`
	MockupURL string `json:"mockup_url"`
}

// PrintfulMockupTask is the state of an async mockup render job
type PrintfulMockupTask struct {
	TaskKey string           `json:"task_key"`
	Status  string           `json:"status"` // "pending", "completed", "failed"
	Error   string           `json:"error,omitempty"`
	Mockups []PrintfulMockup `json:"mockups,omitempty"`
}

// ---------------------------------------------------------------------------
// Store Product Types
// ---------------------------------------------------------------------------

// PrintfulSyncProduct is a store catalog entry created from a design
type PrintfulSyncProduct struct {
	ID         int64  `json:"id"`
	ExternalID string `json:"external_id"`
	Name       string `json:"name"`
	Thumbnail  string `json:"thumbnail_url"`
}

// PrintfulSyncVariantRequest is one variant of a store product create request
type PrintfulSyncVariantRequest struct {
	VariantID   int64          `json:"variant_id"`
	RetailPrice string         `json:"retail_price"`
	Files       []PrintfulFile `json:"files"`
}

// PrintfulSyncProductRequest is the body of POST /store/products
type PrintfulSyncProductRequest struct {
	SyncProduct struct {
		Name string `json:"name"`
	} `json:"sync_product"`
	SyncVariants []PrintfulSyncVariantRequest `json:"sync_variants"`
}

// ---------------------------------------------------------------------------
// Webhook Payload Types
// ---------------------------------------------------------------------------

// PrintfulWebhook is the common push envelope
type PrintfulWebhook struct {
	Type    string          `json:"type"`
	Created int64           `json:"created"`
	Data    json.RawMessage `json:"data"`
}

// PrintfulOrderWebhookData is the data of order lifecycle pushes
type PrintfulOrderWebhookData struct {
	Order    PrintfulOrder     `json:"order"`
	Shipment *PrintfulShipment `json:"shipment,omitempty"`
}

// PrintfulStockWebhookData is the data of stock change pushes
type PrintfulStockWebhookData struct {
	ProductID    int64           `json:"product_id"`
	VariantStock map[string]bool `json:"variant_stock"`
}
