package supplier

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// ProviderCode
// ---------------------------------------------------------------------------

// ProviderCode identifies one external dropshipping supplier.
type ProviderCode string

const (
	// ProviderCodeAliExpress represents the AliExpress dropshipping API
	ProviderCodeAliExpress ProviderCode = "ALIEXPRESS"
	// ProviderCodeCJDropshipping represents the CJ Dropshipping API
	ProviderCodeCJDropshipping ProviderCode = "CJDROPSHIPPING"
	// ProviderCodePrintful represents the Printful print-on-demand API
	ProviderCodePrintful ProviderCode = "PRINTFUL"
	// ProviderCodeBigBuy represents the BigBuy wholesale distributor API
	ProviderCodeBigBuy ProviderCode = "BIGBUY"
)

// String returns the string representation of ProviderCode
func (c ProviderCode) String() string {
	return string(c)
}

// ---------------------------------------------------------------------------
// SupplierProduct
// ---------------------------------------------------------------------------

// Dimensions holds physical product dimensions in centimeters.
type Dimensions struct {
	Length decimal.Decimal
	Width  decimal.Decimal
	Height decimal.Decimal
}

// ProductVariant represents one orderable variant of a supplier product.
type ProductVariant struct {
	// ExternalID is the variant identifier on the provider
	ExternalID string
	// SKU is the provider-side SKU code
	SKU string
	// Price is the variant selling price
	Price decimal.Decimal
	// StockQuantity is the available stock for this variant
	StockQuantity int
	// Options maps option name to value (e.g. "color" -> "black")
	Options map[string]string
	// ImageURL is the variant-specific image URL
	ImageURL string
}

// SupplierProduct is a provider catalog item normalized into the canonical
// shape. It is read-only from the provider's perspective: the platform never
// writes catalog changes back.
type SupplierProduct struct {
	// ExternalID is the product identifier on the provider
	ExternalID string
	// Provider identifies which supplier this product came from
	Provider ProviderCode
	// Title is the product title
	Title string
	// Description is the product description
	Description string
	// Price is the current selling price
	Price decimal.Decimal
	// OriginalPrice is the pre-discount price, nil when the provider reports none
	OriginalPrice *decimal.Decimal
	// Currency is the ISO 4217 currency code
	Currency string
	// StockQuantity is the total available stock
	StockQuantity int
	// ImageURLs contains product image URLs
	ImageURLs []string
	// VideoURLs contains product video URLs
	VideoURLs []string
	// Category is the provider category name
	Category string
	// Subcategory is the provider subcategory name
	Subcategory string
	// Brand is the product brand
	Brand string
	// SKU is the provider-side SKU code
	SKU string
	// Weight is the product weight
	Weight decimal.Decimal
	// WeightUnit is the unit of Weight (e.g. "g", "kg")
	WeightUnit string
	// Dimensions holds the physical dimensions, nil when unknown
	Dimensions *Dimensions
	// ShippingCost is the estimated shipping cost, nil when unknown
	ShippingCost *decimal.Decimal
	// ShippingMinDays is the lower bound of the shipping estimate in days
	ShippingMinDays int
	// ShippingMaxDays is the upper bound of the shipping estimate in days
	ShippingMaxDays int
	// Variants contains the orderable variants
	Variants []ProductVariant
	// Attributes holds provider-specific extras that have no canonical field
	Attributes map[string]string
	// Rating is the average review rating
	Rating float64
	// ReviewCount is the number of reviews
	ReviewCount int
	// SalesCount is the number of recorded sales
	SalesCount int
	// DetailURL is the canonical product page URL on the provider
	DetailURL string
	// IsPOD marks the product as a print-on-demand base product
	IsPOD bool
	// PODTemplate carries the print template payload; required when IsPOD is true
	PODTemplate *PODTemplate
}

// Product validation errors
var (
	ErrProductNegativePrice      = errors.New("supplier: product price must not be negative")
	ErrProductNegativeStock      = errors.New("supplier: product stock must not be negative")
	ErrProductMissingPODTemplate = errors.New("supplier: POD product requires a template payload")
)

// Validate checks the canonical product invariants.
func (p *SupplierProduct) Validate() error {
	if p.Price.IsNegative() {
		return ErrProductNegativePrice
	}
	if p.StockQuantity < 0 {
		return ErrProductNegativeStock
	}
	if p.IsPOD && p.PODTemplate == nil {
		return ErrProductMissingPODTemplate
	}
	return nil
}

// ---------------------------------------------------------------------------
// InventoryUpdate
// ---------------------------------------------------------------------------

// InventoryUpdate is a point-in-time stock report for one provider product.
type InventoryUpdate struct {
	// ExternalProductID is the product identifier on the provider
	ExternalProductID string
	// SKU is the provider-side SKU code (optional)
	SKU string
	// Quantity is the reported stock quantity
	Quantity int
	// IsInStock is derived: true when Quantity > 0
	IsInStock bool
	// WarehouseID identifies the reporting warehouse (optional)
	WarehouseID string
	// WarehouseLocation is the warehouse location name (optional)
	WarehouseLocation string
}

// NewInventoryUpdate builds an InventoryUpdate with the derived stock flag.
func NewInventoryUpdate(externalProductID, sku string, quantity int) InventoryUpdate {
	return InventoryUpdate{
		ExternalProductID: externalProductID,
		SKU:               sku,
		Quantity:          quantity,
		IsInStock:         quantity > 0,
	}
}

// ---------------------------------------------------------------------------
// Category / Warehouse
// ---------------------------------------------------------------------------

// Category is a provider catalog category.
type Category struct {
	// ExternalID is the category identifier on the provider
	ExternalID string
	// Name is the category display name
	Name string
	// ParentID is the parent category identifier, empty for root categories
	ParentID string
}

// Warehouse describes a provider fulfillment location.
type Warehouse struct {
	// ExternalID is the warehouse identifier on the provider
	ExternalID string
	// Name is the warehouse display name
	Name string
	// CountryCode is the ISO 3166-1 alpha-2 country code
	CountryCode string
	// City is the warehouse city
	City string
}
