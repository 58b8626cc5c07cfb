package suppliers

// BigBuy endpoints return bare JSON payloads with HTTP status codes carrying
// the error vocabulary; there is no response envelope.

// ---------------------------------------------------------------------------
// Catalog Types
// ---------------------------------------------------------------------------

// BigBuyProduct is one catalog item as the API reports it
type BigBuyProduct struct {
	ID             int64    `json:"id"`
	SKU            string   `json:"sku"`
	EAN            string   `json:"ean13"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	WholesalePrice float64  `json:"wholesalePrice"`
	RetailPrice    float64  `json:"retailPrice"`
	Stock          int      `json:"stock"`
	Images         []string `json:"images"`
	CategoryID     int64    `json:"category"`
	CategoryName   string   `json:"categoryName"`
	WeightKg       float64  `json:"weight"`
	Active         bool     `json:"active"`
	URL            string   `json:"url"`
}

// BigBuyCategory is one catalog category
type BigBuyCategory struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID int64  `json:"parentCategory"`
}

// BigBuyStockEntry is one warehouse stock line of a product
type BigBuyStockEntry struct {
	Quantity        int `json:"quantity"`
	MinHandlingDays int `json:"minHandlingDays"`
	MaxHandlingDays int `json:"maxHandlingDays"`
}

// BigBuyProductStock is the stock report for one product
type BigBuyProductStock struct {
	ID     int64              `json:"id"`
	SKU    string             `json:"sku"`
	Stocks []BigBuyStockEntry `json:"stocks"`
}

// BigBuyWarehouse is one fulfillment warehouse
type BigBuyWarehouse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IsoCountry string `json:"isoCountry"`
	City       string `json:"city"`
}

// ---------------------------------------------------------------------------
// Shipping Types
// ---------------------------------------------------------------------------

// BigBuyDelivery is the destination of a shipping quote or order
type BigBuyDelivery struct {
	IsoCountry string `json:"isoCountry"`
	Postcode   string `json:"postcode,omitempty"`
}

// BigBuyCartProduct is one line of a quote or order cart
type BigBuyCartProduct struct {
	Reference string `json:"reference"`
	Quantity  int    `json:"quantity"`
}

// BigBuyShippingRequest is the body of /rest/shipping/orders.json
type BigBuyShippingRequest struct {
	Order struct {
		Delivery BigBuyDelivery      `json:"delivery"`
		Products []BigBuyCartProduct `json:"products"`
	} `json:"order"`
}

// BigBuyShippingService names one carrier service
type BigBuyShippingService struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Delay string `json:"delay,omitempty"` // "3-6" day range
}

// BigBuyShippingOption is one delivery option quote
type BigBuyShippingOption struct {
	Service BigBuyShippingService `json:"shippingService"`
	Cost    float64               `json:"cost"`
}

// BigBuyShippingResponse is the payload of /rest/shipping/orders.json
type BigBuyShippingResponse struct {
	ShippingOptions []BigBuyShippingOption `json:"shippingOptions"`
}

// ---------------------------------------------------------------------------
// Order Types
// ---------------------------------------------------------------------------

// BigBuyOrderAddress is the delivery address of an order
type BigBuyOrderAddress struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Address    string `json:"address"`
	Postcode   string `json:"postcode"`
	Town       string `json:"town"`
	IsoCountry string `json:"isoCountry"`
	Phone      string `json:"phone,omitempty"`
}

// BigBuyOrderCreate is the body of /rest/order/create.json
type BigBuyOrderCreate struct {
	Order struct {
		InternalReference string              `json:"internalReference"`
		Language          string              `json:"language"`
		ShippingService   string              `json:"carrierName,omitempty"`
		Shipping          BigBuyOrderAddress  `json:"shippingAddress"`
		Products          []BigBuyCartProduct `json:"products"`
	} `json:"order"`
}

// BigBuyOrderCreated carries the created order id
type BigBuyOrderCreated struct {
	OrderID int64 `json:"order_id"`
}

// BigBuyOrderProduct is one line item of a provider order
type BigBuyOrderProduct struct {
	Reference string  `json:"reference"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// BigBuyOrder is one provider order
type BigBuyOrder struct {
	ID                int64                `json:"id"`
	InternalReference string               `json:"internalReference"`
	Status            string               `json:"status"`
	Total             float64              `json:"total"`
	ShippingCost      float64              `json:"shippingCost"`
	CarrierName       string               `json:"carrierName"`
	TrackingNumber    string               `json:"trackingNumber"`
	TrackingURL       string               `json:"trackingUrl"`
	DateAdd           string               `json:"dateAdd"`
	DateUpd           string               `json:"dateUpd"`
	Products          []BigBuyOrderProduct `json:"products"`
}

// BigBuyTracking is one carrier scan event
type BigBuyTracking struct {
	Status      string `json:"statusDescription"`
	Datetime    string `json:"datetime"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// BigBuyTrackingResponse is the payload of /rest/tracking/order/{id}.json
type BigBuyTrackingResponse struct {
	TrackingNumber string           `json:"trackingNumber"`
	Trackings      []BigBuyTracking `json:"trackings"`
}

// ---------------------------------------------------------------------------
// Webhook Payload Types
// ---------------------------------------------------------------------------

// BigBuyOrderWebhook is the payload of an order status push
type BigBuyOrderWebhook struct {
	OrderID        int64  `json:"orderId"`
	Status         string `json:"status"`
	TrackingNumber string `json:"trackingNumber"`
	CarrierName    string `json:"carrierName"`
}

// BigBuyStockWebhook is the payload of a stock change push
type BigBuyStockWebhook struct {
	ProductID int64  `json:"productId"`
	SKU       string `json:"sku"`
	Stock     int    `json:"stock"`
}
