package suppliers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dropship/backend/internal/domain/supplier"
)

func newTestPrintfulConnector(t *testing.T, handler http.Handler) *PrintfulConnector {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := NewPrintfulConfig("test-token")
	config.APIBaseURL = server.URL
	config.WebhookSecret = "test-webhook-secret"

	conn, err := NewPrintfulConnector(config, zap.NewNop())
	require.NoError(t, err)
	conn.pollInterval = time.Millisecond // keep mockup tests fast
	return conn
}

func printfulOK(result string) string {
	return fmt.Sprintf(`{"code":200,"result":%s}`, result)
}

const printfulShirtDetail = `{"product":{"id":71,"title":"Unisex Staple T-Shirt","type_name":"T-Shirt","brand":"Bella + Canvas","model":"3001","image":"https://img/71.png","currency":"USD"},
	"variants":[
		{"id":4011,"product_id":71,"name":"3001 Black / S","size":"S","color":"Black","price":"13.25","in_stock":true},
		{"id":4012,"product_id":71,"name":"3001 Black / M","size":"M","color":"Black","price":"12.95","in_stock":true},
		{"id":4013,"product_id":71,"name":"3001 Black / L","size":"L","color":"Black","price":"13.25","in_stock":false}
	]}`

func TestNewPrintfulConnector_InvalidConfig(t *testing.T) {
	_, err := NewPrintfulConnector(NewPrintfulConfig(""), zap.NewNop())
	assert.ErrorIs(t, err, ErrPrintfulConfigMissingToken)
}

func TestPrintfulConnector_Authenticate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/store", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		fmt.Fprint(w, printfulOK(`{"id":1,"name":"Test Store"}`))
	})
	conn := newTestPrintfulConnector(t, mux)

	assert.NoError(t, conn.Authenticate(context.Background()))
}

func TestPrintfulConnector_Authenticate_BadToken(t *testing.T) {
	conn := newTestPrintfulConnector(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	err := conn.Authenticate(context.Background())
	assert.ErrorIs(t, err, supplier.ErrAuthFailed)
}

func TestPrintfulConnector_RefreshToken_NotSupported(t *testing.T) {
	conn := newTestPrintfulConnector(t, http.NewServeMux())
	assert.ErrorIs(t, conn.RefreshToken(context.Background()), supplier.ErrNotSupported)
}

func TestPrintfulConnector_SearchProducts_FiltersByTitle(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, printfulOK(`[
			{"id":71,"title":"Unisex Staple T-Shirt","type_name":"T-Shirt","model":"3001","image":"https://img/71.png"},
			{"id":19,"title":"White Glossy Mug","type_name":"Mug","model":"MUG11","image":"https://img/19.png"},
			{"id":72,"title":"Premium T-Shirt","type_name":"T-Shirt","model":"4001","image":"https://img/72.png"},
			{"id":73,"title":"Retired T-Shirt","type_name":"T-Shirt","model":"OLD1","image":"https://img/73.png","is_discontinued":true}
		]`))
	})
	conn := newTestPrintfulConnector(t, mux)

	products, err := conn.SearchProducts(context.Background(), supplier.SearchQuery{Query: "t-shirt", Limit: 10})
	require.NoError(t, err)
	require.Len(t, products, 2, "mug and discontinued shirt are filtered out")
	assert.Equal(t, "71", products[0].ExternalID)
	assert.True(t, products[0].IsPOD)
	require.NotNil(t, products[0].PODTemplate)
}

func TestPrintfulConnector_GetProduct(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/products/71", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, printfulOK(printfulShirtDetail))
	})
	conn := newTestPrintfulConnector(t, mux)

	product, err := conn.GetProduct(context.Background(), "71")
	require.NoError(t, err)
	assert.Equal(t, "Unisex Staple T-Shirt", product.Title)
	assert.True(t, product.IsPOD)
	assert.Equal(t, "12.95", product.Price.String(), "cheapest variant price")
	assert.Equal(t, 2, product.StockQuantity, "producible variant count")
	require.Len(t, product.Variants, 3)
	assert.Equal(t, "S", product.Variants[0].Options["size"])
}

func TestPrintfulConnector_GetProduct_NotFound(t *testing.T) {
	conn := newTestPrintfulConnector(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"code":404,"result":null,"error":{"reason":"NotFound","message":"Product not found"}}`)
	}))

	_, err := conn.GetProduct(context.Background(), "999999")
	assert.ErrorIs(t, err, supplier.ErrProductNotFound)
}

func TestPrintfulConnector_GetInventory(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/products/71", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, printfulOK(printfulShirtDetail))
	})
	conn := newTestPrintfulConnector(t, mux)
	conn.retry.MaxAttempts = 1

	updates, err := conn.GetInventory(context.Background(), []string{"71", "404404"})
	require.NoError(t, err)
	require.Len(t, updates, 1, "unknown product is omitted")
	assert.Equal(t, 2, updates[0].Quantity)
	assert.True(t, updates[0].IsInStock)
}

func TestPrintfulConnector_CalculateShipping(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/shipping/rates", func(w http.ResponseWriter, r *http.Request) {
		var body PrintfulRateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "US", body.Recipient.CountryCode)
		fmt.Fprint(w, printfulOK(`[
			{"id":"STANDARD","name":"Flat Rate","rate":"4.39","currency":"USD","minDeliveryDays":4,"maxDeliveryDays":7},
			{"id":"EXPRESS","name":"Express","rate":"11.90","currency":"USD","minDeliveryDays":2,"maxDeliveryDays":3}
		]`))
	})
	conn := newTestPrintfulConnector(t, mux)

	items := []supplier.OrderItem{{ExternalProductID: "71", VariantID: "4011", Quantity: 2}}
	address := supplier.ShippingAddress{Name: "Jane", AddressLine: "1 Main St", City: "Springfield", CountryCode: "US"}

	quote, err := conn.CalculateShipping(context.Background(), items, address, "")
	require.NoError(t, err)
	assert.Equal(t, "STANDARD", quote.Method)
	assert.Equal(t, "4.39", quote.Cost.String())

	quote, err = conn.CalculateShipping(context.Background(), items, address, "EXPRESS")
	require.NoError(t, err)
	assert.Equal(t, "EXPRESS", quote.Method)
	assert.Equal(t, 2, quote.MinDays)
}

func TestPrintfulConnector_PlaceOrder(t *testing.T) {
	ref := uuid.New()
	mux := http.NewServeMux()
	mux.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		var body PrintfulOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, ref.String(), body.ExternalID)
		assert.False(t, body.IsSample)
		require.Len(t, body.Items, 1)
		assert.Equal(t, int64(4011), body.Items[0].VariantID)
		fmt.Fprint(w, printfulOK(fmt.Sprintf(`{"id":5501,"external_id":%q,"status":"draft",
			"costs":{"currency":"USD","shipping":"4.39","total":"30.89"}}`, ref.String())))
	})
	conn := newTestPrintfulConnector(t, mux)

	order, err := conn.PlaceOrder(context.Background(), &supplier.OrderRequest{
		ClientOrderRef: ref,
		Items:          []supplier.OrderItem{{ExternalProductID: "71", VariantID: "4011", Quantity: 2}},
		ShippingAddress: supplier.ShippingAddress{
			Name: "Jane Doe", AddressLine: "1 Main St", City: "Springfield", CountryCode: "US",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "5501", order.ExternalOrderID)
	assert.Equal(t, ref, order.ClientOrderRef)
	assert.Equal(t, "30.89", order.TotalCost.String())
}

func TestPrintfulConnector_PlaceOrder_TransportFailureIsNotRetried(t *testing.T) {
	var calls int
	conn := newTestPrintfulConnector(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := conn.PlaceOrder(context.Background(), &supplier.OrderRequest{
		ClientOrderRef: uuid.New(),
		Items:          []supplier.OrderItem{{ExternalProductID: "71", VariantID: "4011", Quantity: 1}},
		ShippingAddress: supplier.ShippingAddress{
			Name: "Jane Doe", AddressLine: "1 Main St", City: "Springfield", CountryCode: "US",
		},
	})
	assert.ErrorIs(t, err, supplier.ErrOrderStateUnknown)
	assert.Equal(t, 1, calls)
}

func TestPrintfulConnector_OrderSample(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/products/71", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, printfulOK(printfulShirtDetail))
	})
	mux.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		var body PrintfulOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, body.IsSample)
		require.Len(t, body.Items, 1)
		assert.Equal(t, int64(4011), body.Items[0].VariantID)
		assert.Equal(t, 1, body.Items[0].Quantity)
		fmt.Fprint(w, printfulOK(fmt.Sprintf(`{"id":5502,"external_id":%q,"status":"draft","costs":{"currency":"USD"}}`, body.ExternalID)))
	})
	conn := newTestPrintfulConnector(t, mux)

	order, err := conn.OrderSample(context.Background(), "71", supplier.ShippingAddress{
		Name: "Jane Doe", AddressLine: "1 Main St", City: "Springfield", CountryCode: "US",
	})
	require.NoError(t, err)
	assert.Equal(t, "5502", order.ExternalOrderID)
	assert.NotEqual(t, uuid.Nil, order.ClientOrderRef)
}

func TestPrintfulConnector_GetOrderAndTracking(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orders/5501", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, printfulOK(`{"id":5501,"status":"fulfilled","created":1754560000,"updated":1755000000,
			"costs":{"currency":"USD","shipping":"4.39","total":"30.89"},
			"shipments":[{"id":1,"carrier":"USPS","service":"First Class","tracking_number":"9400110","tracking_url":"https://t/9400110","ship_date_unix":1754900000}]}`))
	})
	conn := newTestPrintfulConnector(t, mux)

	order, err := conn.GetOrder(context.Background(), "5501")
	require.NoError(t, err)
	assert.Equal(t, supplier.OrderStatusShipped, order.Status)
	assert.Equal(t, "9400110", order.TrackingNumber)
	assert.Equal(t, "USPS", order.Carrier)

	events, err := conn.GetTracking(context.Background(), "5501")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "SHIPPED", events[0].Status)
	assert.Contains(t, events[0].Description, "USPS")
	assert.False(t, events[0].Timestamp.IsZero())
}

func TestPrintfulConnector_CancelOrder(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orders/5501", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		fmt.Fprint(w, printfulOK(`{"id":5501,"status":"canceled"}`))
	})
	conn := newTestPrintfulConnector(t, mux)

	assert.NoError(t, conn.CancelOrder(context.Background(), "5501"))
}

func TestPrintfulConnector_GetPODTemplates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/mockup-generator/printfiles/71", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, printfulOK(`{"product_id":71,
			"available_placements":{"front":"Front print","back":"Back print"},
			"printfiles":[{"printfile_id":1,"width":1800,"height":2400,"dpi":150,"fill_mode":"cover"}]}`))
	})
	conn := newTestPrintfulConnector(t, mux)

	templates, err := conn.GetPODTemplates(context.Background(), "71")
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "71", templates[0].ExternalID)
	assert.Len(t, templates[0].Placements, 2)
	assert.Equal(t, 1800, templates[0].Placements[0].WidthPx)
	assert.Equal(t, "150", templates[0].PrintFileRequirements["dpi"])
}

func TestPrintfulConnector_CreatePODMockup_Completed(t *testing.T) {
	var polls int
	mux := http.NewServeMux()
	mux.HandleFunc("/mockup-generator/create-task/71", func(w http.ResponseWriter, r *http.Request) {
		var body PrintfulMockupTaskRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []int64{4011}, body.VariantIDs)
		require.Len(t, body.Files, 1)
		assert.Equal(t, "front", body.Files[0].Placement)
		fmt.Fprint(w, printfulOK(`{"task_key":"task-1","status":"pending"}`))
	})
	mux.HandleFunc("/mockup-generator/task", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "task-1", r.URL.Query().Get("task_key"))
		polls++
		if polls < 3 {
			fmt.Fprint(w, printfulOK(`{"task_key":"task-1","status":"pending"}`))
			return
		}
		fmt.Fprint(w, printfulOK(`{"task_key":"task-1","status":"completed","mockups":[
			{"placement":"front","mockup_url":"https://mock/front.png"}]}`))
	})
	conn := newTestPrintfulConnector(t, mux)

	mockup, err := conn.CreatePODMockup(context.Background(), "71", "https://art/design.png",
		supplier.MockupOptions{VariantIDs: []string{"4011"}})
	require.NoError(t, err)
	assert.Equal(t, supplier.MockupStatusCompleted, mockup.Status)
	assert.Equal(t, []string{"https://mock/front.png"}, mockup.MockupURLs)
	assert.Equal(t, 3, polls)
}

func TestPrintfulConnector_CreatePODMockup_Timeout(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/mockup-generator/create-task/71", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, printfulOK(`{"task_key":"task-2","status":"pending"}`))
	})
	mux.HandleFunc("/mockup-generator/task", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, printfulOK(`{"task_key":"task-2","status":"pending"}`))
	})
	conn := newTestPrintfulConnector(t, mux)
	conn.maxPolls = 3

	mockup, err := conn.CreatePODMockup(context.Background(), "71", "https://art/design.png",
		supplier.MockupOptions{VariantIDs: []string{"4011"}})
	require.NoError(t, err, "a timed-out render is an outcome, not an error")
	assert.Equal(t, supplier.MockupStatusTimeout, mockup.Status)
	assert.Empty(t, mockup.MockupURLs)
	assert.Equal(t, "task-2", mockup.TaskID)
}

func TestPrintfulConnector_CreatePODMockup_Failed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/mockup-generator/create-task/71", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, printfulOK(`{"task_key":"task-3","status":"pending"}`))
	})
	mux.HandleFunc("/mockup-generator/task", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, printfulOK(`{"task_key":"task-3","status":"failed","error":"artwork too small"}`))
	})
	conn := newTestPrintfulConnector(t, mux)

	mockup, err := conn.CreatePODMockup(context.Background(), "71", "https://art/tiny.png",
		supplier.MockupOptions{VariantIDs: []string{"4011"}})
	require.NoError(t, err)
	assert.Equal(t, supplier.MockupStatusFailed, mockup.Status)
}

func TestPrintfulConnector_SubmitPODDesign(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/products/71", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, printfulOK(printfulShirtDetail))
	})
	mux.HandleFunc("/store/products", func(w http.ResponseWriter, r *http.Request) {
		var body PrintfulSyncProductRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Skull Tee", body.SyncProduct.Name)
		require.Len(t, body.SyncVariants, 3)
		assert.Equal(t, "24.99", body.SyncVariants[0].RetailPrice)
		fmt.Fprint(w, printfulOK(`{"id":880001,"name":"Skull Tee"}`))
	})
	conn := newTestPrintfulConnector(t, mux)

	design, err := conn.SubmitPODDesign(context.Background(), "71", "Skull Tee",
		"https://art/skull.png", decimal.RequireFromString("24.99"))
	require.NoError(t, err)
	assert.Equal(t, "880001", design.ExternalID)
	assert.Equal(t, "24.99", design.RetailPrice.String())
	assert.Equal(t, "USD", design.Currency)
}

func TestPrintfulConnector_Webhooks(t *testing.T) {
	conn := newTestPrintfulConnector(t, http.NewServeMux())

	payload := []byte(`{"type":"package_shipped","created":1754900000,"data":{
		"order":{"id":5501,"status":"fulfilled"},
		"shipment":{"carrier":"USPS","tracking_number":"9400110"}}}`)
	signature := SignWebhookPayload("test-webhook-secret", payload)

	assert.True(t, conn.VerifyWebhook(payload, signature))
	assert.False(t, conn.VerifyWebhook(payload, "nope"))

	event, err := conn.ProcessWebhook(context.Background(), "", payload)
	require.NoError(t, err)
	assert.Equal(t, supplier.WebhookEventOrderStatus, event.Type)
	assert.Equal(t, supplier.OrderStatusShipped, event.OrderStatus.Status)
	assert.Equal(t, "9400110", event.OrderStatus.TrackingNumber)

	stock := []byte(`{"type":"stock_updated","data":{"product_id":71,"variant_stock":{"4011":true,"4012":false}}}`)
	event, err = conn.ProcessWebhook(context.Background(), "", stock)
	require.NoError(t, err)
	require.NotNil(t, event.Inventory)
	assert.Equal(t, 1, event.Inventory.Quantity)

	_, err = conn.ProcessWebhook(context.Background(), "", []byte(`{"type":"product_synced","data":{}}`))
	assert.ErrorIs(t, err, supplier.ErrUnknownWebhookEvent)
}

func TestMapPrintfulOrderStatus(t *testing.T) {
	tests := []struct {
		provider string
		expected supplier.OrderStatus
	}{
		{"draft", supplier.OrderStatusPending},
		{"pending", supplier.OrderStatusSubmitted},
		{"inprocess", supplier.OrderStatusProcessing},
		{"onhold", supplier.OrderStatusProcessing},
		{"fulfilled", supplier.OrderStatusShipped},
		{"canceled", supplier.OrderStatusCancelled},
		{"failed", supplier.OrderStatusFailed},
		{"brand_new_status", supplier.OrderStatusPending},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, mapPrintfulOrderStatus(tt.provider), tt.provider)
	}
}
