package supplier

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSupplierProduct_Validate(t *testing.T) {
	tests := []struct {
		name    string
		product SupplierProduct
		wantErr error
	}{
		{
			name: "valid product",
			product: SupplierProduct{
				ExternalID:    "1005001234",
				Title:         "Wireless Headphones",
				Price:         decimal.NewFromFloat(24.99),
				Currency:      "USD",
				StockQuantity: 120,
			},
			wantErr: nil,
		},
		{
			name: "zero price is allowed",
			product: SupplierProduct{
				ExternalID: "free-sample",
				Price:      decimal.Zero,
			},
			wantErr: nil,
		},
		{
			name: "negative price",
			product: SupplierProduct{
				ExternalID: "bad",
				Price:      decimal.NewFromFloat(-0.01),
			},
			wantErr: ErrProductNegativePrice,
		},
		{
			name: "negative stock",
			product: SupplierProduct{
				ExternalID:    "bad",
				Price:         decimal.NewFromInt(1),
				StockQuantity: -1,
			},
			wantErr: ErrProductNegativeStock,
		},
		{
			name: "POD without template",
			product: SupplierProduct{
				ExternalID: "tee-71",
				Price:      decimal.NewFromInt(12),
				IsPOD:      true,
			},
			wantErr: ErrProductMissingPODTemplate,
		},
		{
			name: "POD with template",
			product: SupplierProduct{
				ExternalID:  "tee-71",
				Price:       decimal.NewFromInt(12),
				IsPOD:       true,
				PODTemplate: &PODTemplate{ExternalID: "tpl-1", ProductID: "tee-71"},
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewInventoryUpdate(t *testing.T) {
	inStock := NewInventoryUpdate("p1", "SKU-1", 5)
	assert.True(t, inStock.IsInStock)
	assert.Equal(t, 5, inStock.Quantity)
	assert.Equal(t, "p1", inStock.ExternalProductID)

	outOfStock := NewInventoryUpdate("p2", "", 0)
	assert.False(t, outOfStock.IsInStock)
}

func TestSearchQuery_Normalize(t *testing.T) {
	q := SearchQuery{Query: "headphones"}
	q.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.Limit)

	q = SearchQuery{Query: "headphones", Page: 3, Limit: 500}
	q.Normalize()
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 20, q.Limit)

	q = SearchQuery{Query: "headphones", Page: 2, Limit: 2}
	q.Normalize()
	assert.Equal(t, 2, q.Limit)
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(ErrProviderUnavailable))
	assert.True(t, IsTransient(ErrProviderRateLimited))
	assert.False(t, IsTransient(ErrAuthFailed))
	assert.False(t, IsTransient(ErrInvalidRequest))
	assert.False(t, IsTransient(nil))
}
