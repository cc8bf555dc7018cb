package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leatherworking_backend/internal/models"
	"leatherworking_backend/internal/store/memory"
)

func seedCustomer(t *testing.T, st *memory.Store, name string) *models.Customer {
	t.Helper()
	customer := &models.Customer{Name: name, Email: "seed@example.com"}
	require.NoError(t, st.Customers.Create(context.Background(), customer))
	return customer
}

func seedProduct(t *testing.T, st *memory.Store, name string) *models.Product {
	t.Helper()
	product := &models.Product{Name: name, Price: 49.90, Stock: 3}
	require.NoError(t, st.Products.Create(context.Background(), product))
	return product
}

func TestCreateOrderItemQuantityBounds(t *testing.T) {
	r, st := newTestServer(nil, nil)
	customer := seedCustomer(t, st, "Quincy")
	product := seedProduct(t, st, "Belt")

	body := fmt.Sprintf(`{"customerId":%q,"items":[{"productId":%q,"quantity":0}],"totalAmount":49.9}`,
		customer.ID.Hex(), product.ID.Hex())
	w := doJSON(t, r, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors []map[string]interface{} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, fieldsOf(resp.Errors), "items[0].quantity")

	body = fmt.Sprintf(`{"customerId":%q,"items":[{"productId":%q,"quantity":1}],"totalAmount":49.9}`,
		customer.ID.Hex(), product.ID.Hex())
	w = doJSON(t, r, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.False(t, order.ID.IsZero())
	assert.Equal(t, models.OrderStatusPending, order.Status, "status defaults to Pending")
	assert.Equal(t, 49.9, order.TotalAmount)
}

func TestCreateOrderRejectsBadReferencesAndAmounts(t *testing.T) {
	r, _ := newTestServer(nil, nil)

	w := doJSON(t, r, http.MethodPost, "/api/orders",
		`{"customerId":"nope","items":[{"productId":"also-nope","quantity":2}],"totalAmount":-1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors []map[string]interface{} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	fields := fieldsOf(resp.Errors)
	assert.Contains(t, fields, "customerId")
	assert.Contains(t, fields, "items[0].productId")
	assert.Contains(t, fields, "totalAmount")
}

func TestOrderPopulatesReferences(t *testing.T) {
	r, st := newTestServer(nil, nil)
	customer := seedCustomer(t, st, "Paula")
	product := seedProduct(t, st, "Card Holder")

	body := fmt.Sprintf(`{"customerId":%q,"items":[{"productId":%q,"quantity":2}],"totalAmount":99.8}`,
		customer.ID.Hex(), product.ID.Hex())
	w := doJSON(t, r, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodGet, "/api/orders/"+created.ID.Hex(), "")
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	require.NotNil(t, fetched.Customer)
	assert.Equal(t, "Paula", fetched.Customer.Name)
	require.Len(t, fetched.Items, 1)
	require.NotNil(t, fetched.Items[0].Product)
	assert.Equal(t, "Card Holder", fetched.Items[0].Product.Name)

	// A dangling reference populates as null instead of failing the read.
	require.NoError(t, st.Customers.Delete(context.Background(), customer.ID))
	w = doJSON(t, r, http.MethodGet, "/api/orders/"+created.ID.Hex(), "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Nil(t, fetched.Customer)
}

func TestOrderStatusPatch(t *testing.T) {
	r, st := newTestServer(nil, nil)
	customer := seedCustomer(t, st, "Stan")
	product := seedProduct(t, st, "Tote")

	body := fmt.Sprintf(`{"customerId":%q,"items":[{"productId":%q,"quantity":1}],"totalAmount":120}`,
		customer.ID.Hex(), product.ID.Hex())
	w := doJSON(t, r, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPatch, "/api/orders/"+created.ID.Hex()+"/status", `{"status":"Processing"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.OrderStatusProcessing, updated.Status)

	w = doJSON(t, r, http.MethodPatch, "/api/orders/"+created.ID.Hex()+"/status", `{"status":"Shipped"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/orders/507f1f77bcf86cd799439011/status", `{"status":"Pending"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListOrdersNewestFirst(t *testing.T) {
	r, st := newTestServer(nil, nil)
	customer := seedCustomer(t, st, "Nora")
	product := seedProduct(t, st, "Strap")

	for i := 0; i < 3; i++ {
		body := fmt.Sprintf(`{"customerId":%q,"items":[{"productId":%q,"quantity":1}],"totalAmount":%d}`,
			customer.ID.Hex(), product.ID.Hex(), i+1)
		w := doJSON(t, r, http.MethodPost, "/api/orders", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 3)
	assert.Equal(t, float64(3), orders[0].TotalAmount)
	assert.Equal(t, float64(1), orders[2].TotalAmount)
}

func TestGetOrderNotFound(t *testing.T) {
	r, _ := newTestServer(nil, nil)

	w := doJSON(t, r, http.MethodGet, "/api/orders/507f1f77bcf86cd799439011", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Order not found"}`, w.Body.String())
}
