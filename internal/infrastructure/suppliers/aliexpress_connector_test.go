package suppliers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dropship/backend/internal/domain/supplier"
)

func newTestAliExpressConnector(t *testing.T, handler http.HandlerFunc) (*AliExpressConnector, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := NewAliExpressConfig("test-app-key", "test-app-secret")
	config.APIBaseURL = server.URL
	config.WebhookSecret = "test-webhook-secret"

	conn, err := NewAliExpressConnector(config, zap.NewNop())
	require.NoError(t, err)
	return conn, server
}

// aliexpressMethodMux dispatches on the signed "method" form parameter the
// way the real gateway does.
func aliexpressMethodMux(t *testing.T, routes map[string]string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		method := r.FormValue("method")
		assert.NotEmpty(t, r.FormValue("sign"), "request must be signed")
		assert.NotEmpty(t, r.FormValue("timestamp"))
		body, ok := routes[method]
		if !ok {
			t.Errorf("unexpected gateway method %q", method)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}
}

func TestNewAliExpressConnector_InvalidConfig(t *testing.T) {
	_, err := NewAliExpressConnector(NewAliExpressConfig("", "secret"), zap.NewNop())
	assert.ErrorIs(t, err, ErrAliExpressConfigMissingAppKey)

	_, err = NewAliExpressConnector(NewAliExpressConfig("key", ""), zap.NewNop())
	assert.ErrorIs(t, err, ErrAliExpressConfigMissingAppSecret)
}

func TestAliExpressConnector_Authenticate(t *testing.T) {
	conn, _ := newTestAliExpressConnector(t, aliexpressMethodMux(t, map[string]string{
		"aliexpress.auth.session.create": `{"auth_session_create_response":{"session_key":"sess-123","expires_in":3600}}`,
	}))

	require.NoError(t, conn.Authenticate(context.Background()))
	assert.Equal(t, "sess-123", conn.sessionKey())
}

func TestAliExpressConnector_Authenticate_NoSessionKey(t *testing.T) {
	conn, _ := newTestAliExpressConnector(t, aliexpressMethodMux(t, map[string]string{
		"aliexpress.auth.session.create": `{"auth_session_create_response":{"session_key":""}}`,
	}))

	err := conn.Authenticate(context.Background())
	assert.ErrorIs(t, err, supplier.ErrAuthFailed)
}

func TestAliExpressConnector_SearchProducts(t *testing.T) {
	conn, _ := newTestAliExpressConnector(t, aliexpressMethodMux(t, map[string]string{
		"aliexpress.ds.text.search": `{"ds_text_search_response":{"total_count":5,"products":[
			{"item_id":1001,"subject":"Wireless Headphones A","sale_price":"19.99","currency_code":"USD","total_stock":50},
			{"item_id":1002,"subject":"Wireless Headphones B","sale_price":"29.99","currency_code":"USD","total_stock":10},
			{"item_id":1003,"subject":"Wireless Headphones C","sale_price":"9.99","currency_code":"USD","total_stock":3},
			{"item_id":1004,"subject":"Wireless Headphones D","sale_price":"15.00","currency_code":"USD","total_stock":0},
			{"item_id":1005,"subject":"Wireless Headphones E","sale_price":"45.50","currency_code":"USD","total_stock":7}
		]}}`,
	}))

	products, err := conn.SearchProducts(context.Background(), supplier.SearchQuery{
		Query: "wireless headphones",
		Limit: 2,
	})
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, supplier.ProviderCodeAliExpress, p.Provider)
		assert.False(t, p.Price.IsNegative())
	}
	assert.Equal(t, "1001", products[0].ExternalID)
	assert.Equal(t, "Wireless Headphones A", products[0].Title)
	assert.Equal(t, "19.99", products[0].Price.String())
}

func TestAliExpressConnector_SearchProducts_Empty(t *testing.T) {
	conn, _ := newTestAliExpressConnector(t, aliexpressMethodMux(t, map[string]string{
		"aliexpress.ds.text.search": `{"ds_text_search_response":{"total_count":0,"products":[]}}`,
	}))

	products, err := conn.SearchProducts(context.Background(), supplier.SearchQuery{Query: "nothing"})
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestAliExpressConnector_GetProduct(t *testing.T) {
	conn, _ := newTestAliExpressConnector(t, aliexpressMethodMux(t, map[string]string{
		"aliexpress.ds.product.get": `{"ds_product_get_response":{
			"item_id":1001,"subject":"USB Cable","sale_price":"4.99","original_price":"7.99",
			"currency_code":"USD","total_stock":120,"gross_weight":"35",
			"sku_list":[{"sku_id":9001,"sku_code":"CAB-RED","sku_price":"4.99","sku_stock":60,
				"sku_properties":[{"sku_property_name":"color","sku_property_value":"red"}]}]
		}}`,
	}))

	product, err := conn.GetProduct(context.Background(), "1001")
	require.NoError(t, err)
	assert.Equal(t, "1001", product.ExternalID)
	assert.Equal(t, "USB Cable", product.Title)
	require.NotNil(t, product.OriginalPrice)
	assert.Equal(t, "7.99", product.OriginalPrice.String())
	assert.Equal(t, "g", product.WeightUnit)
	require.Len(t, product.Variants, 1)
	assert.Equal(t, "9001", product.Variants[0].ExternalID)
	assert.Equal(t, "red", product.Variants[0].Options["color"])
}

func TestAliExpressConnector_GetProduct_NotFound(t *testing.T) {
	conn, _ := newTestAliExpressConnector(t, aliexpressMethodMux(t, map[string]string{
		"aliexpress.ds.product.get": `{"ds_product_get_response":null}`,
	}))

	_, err := conn.GetProduct(context.Background(), "missing")
	assert.ErrorIs(t, err, supplier.ErrProductNotFound)
}

func TestAliExpressConnector_GetInventory_OmitsFailures(t *testing.T) {
	var calls int
	conn, _ := newTestAliExpressConnector(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		calls++
		w.Header().Set("Content-Type", "application/json")
		if r.FormValue("item_id") == "bad" {
			fmt.Fprint(w, `{"error_response":{"code":"15","msg":"invalid item"}}`)
			return
		}
		fmt.Fprint(w, `{"ds_product_get_response":{"item_id":1001,"subject":"USB Cable","sale_price":"4.99","total_stock":3,"sku_code":"CAB"}}`)
	})

	updates, err := conn.GetInventory(context.Background(), []string{"1001", "bad", "1001"})
	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, 3, updates[0].Quantity)
	assert.True(t, updates[0].IsInStock)
	assert.Equal(t, "CAB", updates[0].SKU)
}

func TestAliExpressConnector_PlaceOrder(t *testing.T) {
	ref := uuid.New()
	conn, _ := newTestAliExpressConnector(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "aliexpress.ds.order.create", r.FormValue("method"))
		assert.Equal(t, ref.String(), r.FormValue("out_order_id"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ds_order_create_response":{"order_id":777001,"is_success":true}}`)
	})

	order, err := conn.PlaceOrder(context.Background(), &supplier.OrderRequest{
		ClientOrderRef: ref,
		Items: []supplier.OrderItem{
			{ExternalProductID: "1001", VariantID: "9001", Quantity: 2},
		},
		ShippingAddress: supplier.ShippingAddress{
			Name:        "Jane Doe",
			AddressLine: "1 Main St",
			City:        "Springfield",
			CountryCode: "US",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "777001", order.ExternalOrderID)
	assert.Equal(t, supplier.OrderStatusSubmitted, order.Status)
	assert.Equal(t, ref, order.ClientOrderRef)
}

func TestAliExpressConnector_PlaceOrder_InvalidRequest(t *testing.T) {
	conn, _ := newTestAliExpressConnector(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid order must not reach the provider")
	})

	_, err := conn.PlaceOrder(context.Background(), &supplier.OrderRequest{})
	assert.ErrorIs(t, err, supplier.ErrInvalidRequest)
}

func TestAliExpressConnector_PlaceOrder_TransportFailureIsNotRetried(t *testing.T) {
	var calls int
	conn, _ := newTestAliExpressConnector(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := conn.PlaceOrder(context.Background(), &supplier.OrderRequest{
		ClientOrderRef: uuid.New(),
		Items:          []supplier.OrderItem{{ExternalProductID: "1001", Quantity: 1}},
		ShippingAddress: supplier.ShippingAddress{
			Name: "Jane Doe", AddressLine: "1 Main St", City: "Springfield", CountryCode: "US",
		},
	})
	assert.ErrorIs(t, err, supplier.ErrOrderStateUnknown)
	assert.Equal(t, 1, calls, "order placement must never be retried")
}

func TestAliExpressConnector_GetOrder(t *testing.T) {
	ref := uuid.New()
	conn, _ := newTestAliExpressConnector(t, aliexpressMethodMux(t, map[string]string{
		"aliexpress.ds.order.get": fmt.Sprintf(`{"ds_order_get_response":{
			"order_id":777001,"out_order_id":%q,"order_status":"WAIT_BUYER_ACCEPT_GOODS",
			"total_amount":"42.50","freight_amount":"5.00","currency_code":"USD",
			"logistics_no":"LP00012345","logistics_company":"Cainiao",
			"gmt_create":"2026-08-01 10:00:00","gmt_modified":"2026-08-10 09:30:00",
			"child_order_list":[{"item_id":1001,"sku_id":9001,"quantity":2,"unit_price":"18.75"}]
		}}`, ref.String()),
	}))

	order, err := conn.GetOrder(context.Background(), "777001")
	require.NoError(t, err)
	assert.Equal(t, supplier.OrderStatusShipped, order.Status)
	assert.Equal(t, ref, order.ClientOrderRef)
	assert.Equal(t, "42.5", order.TotalCost.String())
	assert.Equal(t, "LP00012345", order.TrackingNumber)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestAliExpressConnector_GetOrder_NotFound(t *testing.T) {
	conn, _ := newTestAliExpressConnector(t, aliexpressMethodMux(t, map[string]string{
		"aliexpress.ds.order.get": `{"ds_order_get_response":null}`,
	}))

	_, err := conn.GetOrder(context.Background(), "missing")
	assert.ErrorIs(t, err, supplier.ErrOrderNotFound)
}

func TestAliExpressConnector_CancelOrder(t *testing.T) {
	conn, _ := newTestAliExpressConnector(t, aliexpressMethodMux(t, map[string]string{
		"aliexpress.ds.order.cancel": `{"ds_order_cancel_response":{"order_id":777001,"is_success":true}}`,
	}))
	assert.NoError(t, conn.CancelOrder(context.Background(), "777001"))
}

func TestAliExpressConnector_CancelOrder_Declined(t *testing.T) {
	conn, _ := newTestAliExpressConnector(t, aliexpressMethodMux(t, map[string]string{
		"aliexpress.ds.order.cancel": `{"ds_order_cancel_response":{"order_id":777001,"is_success":false}}`,
	}))
	err := conn.CancelOrder(context.Background(), "777001")
	assert.ErrorIs(t, err, supplier.ErrInvalidRequest)
}

func TestAliExpressConnector_GetTracking(t *testing.T) {
	conn, _ := newTestAliExpressConnector(t, aliexpressMethodMux(t, map[string]string{
		"aliexpress.ds.tracking.get": `{"ds_tracking_get_response":{"tracking_events":[
			{"event_date":"2026-08-05 08:00:00","event_status":"PICKED_UP","event_desc":"Parcel picked up","address":"Shenzhen"},
			{"event_date":"2026-08-07 14:20:00","event_status":"IN_TRANSIT","event_desc":"Departed facility","address":"Hong Kong"}
		]}}`,
	}))

	events, err := conn.GetTracking(context.Background(), "777001")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "PICKED_UP", events[0].Status)
	assert.Equal(t, "Shenzhen", events[0].Location)
	assert.True(t, events[0].Timestamp.Before(events[1].Timestamp))
}

func TestAliExpressConnector_GetTracking_NoEvents(t *testing.T) {
	conn, _ := newTestAliExpressConnector(t, aliexpressMethodMux(t, map[string]string{
		"aliexpress.ds.tracking.get": `{"ds_tracking_get_response":{"tracking_events":[]}}`,
	}))

	events, err := conn.GetTracking(context.Background(), "777001")
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestAliExpressConnector_GetShippingMethods(t *testing.T) {
	conn, _ := newTestAliExpressConnector(t, aliexpressMethodMux(t, map[string]string{
		"aliexpress.ds.freight.query": `{"ds_freight_query_response":{"freight_options":[
			{"service_name":"CAINIAO_ECONOMY","freight_amount":"2.50","currency_code":"USD","delivery_time_min":15,"delivery_time_max":30},
			{"service_name":"ALIEXPRESS_STANDARD","freight_amount":"5.00","currency_code":"USD","delivery_time_min":7,"delivery_time_max":15}
		]}}`,
	}))

	methods, err := conn.GetShippingMethods(context.Background(), "1001", "US")
	require.NoError(t, err)
	require.Len(t, methods, 2)
	assert.Equal(t, "CAINIAO_ECONOMY", methods[0].Code)
	assert.Equal(t, "2.5", methods[0].Cost.String())
}

func TestAliExpressConnector_CalculateShipping_CheapestByDefault(t *testing.T) {
	conn, _ := newTestAliExpressConnector(t, aliexpressMethodMux(t, map[string]string{
		"aliexpress.ds.freight.query": `{"ds_freight_query_response":{"freight_options":[
			{"service_name":"ALIEXPRESS_STANDARD","freight_amount":"5.00","currency_code":"USD","delivery_time_min":7,"delivery_time_max":15},
			{"service_name":"CAINIAO_ECONOMY","freight_amount":"2.50","currency_code":"USD","delivery_time_min":15,"delivery_time_max":30}
		]}}`,
	}))

	items := []supplier.OrderItem{{ExternalProductID: "1001", Quantity: 1}}
	address := supplier.ShippingAddress{Name: "Jane", AddressLine: "1 Main St", City: "Springfield", CountryCode: "US"}

	quote, err := conn.CalculateShipping(context.Background(), items, address, "")
	require.NoError(t, err)
	assert.Equal(t, "CAINIAO_ECONOMY", quote.Method)
	assert.Equal(t, "2.5", quote.Cost.String())

	quote, err = conn.CalculateShipping(context.Background(), items, address, "ALIEXPRESS_STANDARD")
	require.NoError(t, err)
	assert.Equal(t, "ALIEXPRESS_STANDARD", quote.Method)

	_, err = conn.CalculateShipping(context.Background(), items, address, "NO_SUCH_METHOD")
	assert.ErrorIs(t, err, supplier.ErrInvalidRequest)
}

func TestAliExpressConnector_GetCategories(t *testing.T) {
	conn, _ := newTestAliExpressConnector(t, aliexpressMethodMux(t, map[string]string{
		"aliexpress.ds.category.get": `{"ds_category_get_response":{"categories":[
			{"category_id":100,"category_name":"Electronics","parent_category_id":0},
			{"category_id":101,"category_name":"Headphones","parent_category_id":100}
		]}}`,
	}))

	categories, err := conn.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Electronics", categories[0].Name)
	assert.Empty(t, categories[0].ParentID)
	assert.Equal(t, "100", categories[1].ParentID)
}

func TestAliExpressConnector_APIErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected error
	}{
		{
			name:     "rate limited",
			body:     `{"error_response":{"code":"7","msg":"limited","sub_code":"isp.call-limit-exceeded"}}`,
			expected: supplier.ErrProviderRateLimited,
		},
		{
			name:     "session expired",
			body:     `{"error_response":{"code":"27","msg":"expired","sub_code":"isv.invalid-session"}}`,
			expected: supplier.ErrTokenExpired,
		},
		{
			name:     "permission denied",
			body:     `{"error_response":{"code":"11","msg":"denied","sub_code":"isv.permission-api"}}`,
			expected: supplier.ErrAuthFailed,
		},
		{
			name:     "plain validation error",
			body:     `{"error_response":{"code":"15","msg":"bad params"}}`,
			expected: supplier.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, _ := newTestAliExpressConnector(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, tt.body)
			})
			conn.retry.MaxAttempts = 1

			_, err := conn.GetProduct(context.Background(), "1001")
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestAliExpressConnector_TransientErrorIsRetried(t *testing.T) {
	var calls int
	conn, _ := newTestAliExpressConnector(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ds_product_get_response":{"item_id":1001,"subject":"USB Cable","sale_price":"4.99","total_stock":3}}`)
	})
	conn.retry.BackoffBase = 1 // keep the test fast

	product, err := conn.GetProduct(context.Background(), "1001")
	require.NoError(t, err)
	assert.Equal(t, "1001", product.ExternalID)
	assert.Equal(t, 2, calls)
}

func TestAliExpressConnector_Webhooks(t *testing.T) {
	conn, _ := newTestAliExpressConnector(t, func(w http.ResponseWriter, r *http.Request) {})

	payload := []byte(`{"order_id":777001,"order_status":"FINISH","logistics_no":"LP1","logistics_company":"Cainiao"}`)
	signature := SignWebhookPayload("test-webhook-secret", payload)

	assert.True(t, conn.VerifyWebhook(payload, signature))
	assert.False(t, conn.VerifyWebhook(payload, "deadbeef"))
	assert.False(t, conn.VerifyWebhook([]byte(`{"tampered":true}`), signature))

	event, err := conn.ProcessWebhook(context.Background(), "order_status", payload)
	require.NoError(t, err)
	assert.Equal(t, supplier.WebhookEventOrderStatus, event.Type)
	require.NotNil(t, event.OrderStatus)
	assert.Equal(t, "777001", event.OrderStatus.ExternalOrderID)
	assert.Equal(t, supplier.OrderStatusDelivered, event.OrderStatus.Status)
	assert.Equal(t, "LP1", event.OrderStatus.TrackingNumber)

	inventory := []byte(`{"item_id":1001,"sku_code":"CAB","stock":0}`)
	event, err = conn.ProcessWebhook(context.Background(), "inventory", inventory)
	require.NoError(t, err)
	assert.Equal(t, supplier.WebhookEventInventory, event.Type)
	require.NotNil(t, event.Inventory)
	assert.False(t, event.Inventory.IsInStock)

	_, err = conn.ProcessWebhook(context.Background(), "refund", payload)
	assert.ErrorIs(t, err, supplier.ErrUnknownWebhookEvent)
}

func TestMapAliExpressOrderStatus(t *testing.T) {
	tests := []struct {
		provider string
		expected supplier.OrderStatus
	}{
		{"PLACE_ORDER_SUCCESS", supplier.OrderStatusSubmitted},
		{"WAIT_SELLER_SEND_GOODS", supplier.OrderStatusProcessing},
		{"SELLER_PART_SEND_GOODS", supplier.OrderStatusProcessing},
		{"IN_CANCEL", supplier.OrderStatusProcessing},
		{"WAIT_BUYER_ACCEPT_GOODS", supplier.OrderStatusShipped},
		{"FINISH", supplier.OrderStatusDelivered},
		{"CANCEL", supplier.OrderStatusCancelled},
		{"RISK_CONTROL", supplier.OrderStatusPending},
		{"SOME_FUTURE_STATUS", supplier.OrderStatusPending},
		{"", supplier.OrderStatusPending},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, mapAliExpressOrderStatus(tt.provider), tt.provider)
	}
}

func TestAliExpressConfig_Sign(t *testing.T) {
	config := NewAliExpressConfig("key", "secret")

	params := map[string]string{"b": "2", "a": "1", "method": "x"}
	first := config.Sign(params)
	assert.Equal(t, first, config.Sign(params), "signature must be deterministic")
	assert.Equal(t, first, config.Sign(map[string]string{"method": "x", "a": "1", "b": "2"}),
		"signature must not depend on map iteration order")

	params["sign"] = first
	assert.Equal(t, first, config.Sign(params), "sign parameter is excluded from the signed set")

	params["a"] = "changed"
	assert.NotEqual(t, first, config.Sign(params))
}
