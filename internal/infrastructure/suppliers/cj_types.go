package suppliers

import "encoding/json"

// ---------------------------------------------------------------------------
// Common CJ Dropshipping API Response Types
// ---------------------------------------------------------------------------

// CJResponse is the envelope every CJ endpoint returns. Data carries the
// endpoint-specific payload and is decoded separately.
type CJResponse struct {
	Code      int             `json:"code"`
	Result    bool            `json:"result"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	RequestID string          `json:"requestId"`
}

// IsSuccess returns true if the response indicates success
func (r *CJResponse) IsSuccess() bool {
	return r.Result && r.Code == cjCodeSuccess
}

// CJ envelope codes
const (
	cjCodeSuccess       = 200
	cjCodeTokenExpired  = 1600002
	cjCodeInvalidToken  = 1600001
	cjCodeTooManyCalls  = 1600200
	cjCodeAuthFailed    = 1601000
	cjCodeRecordMissing = 1602000
)

// ---------------------------------------------------------------------------
// Auth Types
// ---------------------------------------------------------------------------

// CJAuthData carries the issued token pair
type CJAuthData struct {
	AccessToken        string `json:"accessToken"`
	AccessTokenExpiry  string `json:"accessTokenExpiryDate"`
	RefreshToken       string `json:"refreshToken"`
	RefreshTokenExpiry string `json:"refreshTokenExpiryDate"`
}

// ---------------------------------------------------------------------------
// Product Types
// ---------------------------------------------------------------------------

// CJVariant is one orderable variant
type CJVariant struct {
	VID        string  `json:"vid"`
	SKU        string  `json:"variantSku"`
	Price      float64 `json:"variantSellPrice"`
	Stock      int     `json:"variantStock"`
	Image      string  `json:"variantImage"`
	Key        string  `json:"variantKey"`
	WeightGram float64 `json:"variantWeight"`
}

// CJProduct is one catalog item as the API reports it
type CJProduct struct {
	PID          string      `json:"pid"`
	NameEn       string      `json:"productNameEn"`
	Description  string      `json:"description"`
	SellPrice    float64     `json:"sellPrice"`
	Currency     string      `json:"currency"`
	Stock        int         `json:"listedNum"`
	Images       []string    `json:"productImageSet"`
	CategoryID   string      `json:"categoryId"`
	CategoryName string      `json:"categoryName"`
	SKU          string      `json:"productSku"`
	WeightGram   float64     `json:"productWeight"`
	Variants     []CJVariant `json:"variants"`
	SourceURL    string      `json:"sourceFrom"`
}

// CJProductList is the payload of /product/list
type CJProductList struct {
	PageNum  int         `json:"pageNum"`
	PageSize int         `json:"pageSize"`
	Total    int         `json:"total"`
	List     []CJProduct `json:"list"`
}

// CJStockItem is one warehouse stock report for a variant
type CJStockItem struct {
	VID          string `json:"vid"`
	SKU          string `json:"variantSku"`
	AreaID       string `json:"areaId"`
	AreaName     string `json:"areaEn"`
	CountryCode  string `json:"countryCode"`
	StorageCount int    `json:"storageNum"`
}

// CJCategory is one node of the category tree
type CJCategory struct {
	CategoryID string       `json:"categoryId"`
	Name       string       `json:"categoryName"`
	ParentID   string       `json:"parentId"`
	Children   []CJCategory `json:"children"`
}

// ---------------------------------------------------------------------------
// Shipping Types
// ---------------------------------------------------------------------------

// CJFreightProduct is one line of a freight calculation request
type CJFreightProduct struct {
	VID      string `json:"vid"`
	Quantity int    `json:"quantity"`
}

// CJFreightRequest is the body of /logistic/freightCalculate
type CJFreightRequest struct {
	StartCountryCode string             `json:"startCountryCode"`
	EndCountryCode   string             `json:"endCountryCode"`
	Products         []CJFreightProduct `json:"products"`
}

// CJFreightOption is one delivery option quote
type CJFreightOption struct {
	LogisticName  string  `json:"logisticName"`
	LogisticPrice float64 `json:"logisticPrice"`
	Currency      string  `json:"logisticPriceCurrency"`
	Aging         string  `json:"logisticAging"` // "7-15" day range
}

// ---------------------------------------------------------------------------
// Order Types
// ---------------------------------------------------------------------------

// CJOrderProduct is one line item of an order create request
type CJOrderProduct struct {
	VID      string `json:"vid"`
	Quantity int    `json:"quantity"`
}

// CJOrderCreateRequest is the body of /shopping/order/createOrderV2
type CJOrderCreateRequest struct {
	OrderNumber     string           `json:"orderNumber"`
	ShippingCountry string           `json:"shippingCountryCode"`
	ShippingProv    string           `json:"shippingProvince"`
	ShippingCity    string           `json:"shippingCity"`
	ShippingAddress string           `json:"shippingAddress"`
	ShippingZip     string           `json:"shippingZip"`
	ShippingName    string           `json:"shippingCustomerName"`
	ShippingPhone   string           `json:"shippingPhone"`
	LogisticName    string           `json:"logisticName,omitempty"`
	FromCountryCode string           `json:"fromCountryCode,omitempty"`
	Products        []CJOrderProduct `json:"products"`
}

// CJOrderCreateData carries the created order id
type CJOrderCreateData struct {
	OrderID string `json:"orderId"`
}

// CJOrderItem is one line item of a provider order
type CJOrderItem struct {
	VID       string  `json:"vid"`
	SKU       string  `json:"variantSku"`
	Quantity  int     `json:"quantity"`
	SellPrice float64 `json:"sellPrice"`
}

// CJOrder is one provider order
type CJOrder struct {
	OrderID        string        `json:"orderId"`
	OrderNumber    string        `json:"orderNumber"`
	OrderStatus    string        `json:"orderStatus"`
	OrderAmount    float64       `json:"orderAmount"`
	PostageAmount  float64       `json:"postageAmount"`
	Currency       string        `json:"currency"`
	TrackNumber    string        `json:"trackNumber"`
	LogisticName   string        `json:"logisticName"`
	CreateDate     string        `json:"createDate"`
	PaymentDate    string        `json:"paymentDate"`
	ProductList    []CJOrderItem `json:"productList"`
	ShippingMethod string        `json:"shippingMethod"`
}

// CJTrackEvent is one carrier scan event
type CJTrackEvent struct {
	Date    string `json:"date"`
	Status  string `json:"trackingStatus"`
	Details string `json:"details"`
	Area    string `json:"area"`
}

// CJTrackInfo is the payload of /logistic/getTrackInfo
type CJTrackInfo struct {
	TrackNumber  string         `json:"trackNumber"`
	LogisticName string         `json:"logisticName"`
	DeliveryTime string         `json:"deliveryTime"`
	TrackDetails []CJTrackEvent `json:"trackDetails"`
}

// CJWarehouse is one fulfillment warehouse
type CJWarehouse struct {
	AreaID      string `json:"areaId"`
	AreaName    string `json:"areaEn"`
	CountryCode string `json:"countryCode"`
	City        string `json:"cityEn"`
}

// ---------------------------------------------------------------------------
// Webhook Payload Types
// ---------------------------------------------------------------------------

// CJOrderWebhook is the payload of an order status push
type CJOrderWebhook struct {
	OrderID      string `json:"orderId"`
	OrderStatus  string `json:"orderStatus"`
	TrackNumber  string `json:"trackNumber"`
	LogisticName string `json:"logisticName"`
}

// CJStockWebhook is the payload of a stock change push
type CJStockWebhook struct {
	PID        string `json:"pid"`
	VID        string `json:"vid"`
	SKU        string `json:"variantSku"`
	StorageNum int    `json:"storageNum"`
}
