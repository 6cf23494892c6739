package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail_edge_front/internal/models"
)

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.Product{})
	}))
	defer srv.Close()

	client := NewProductsClient(NewGateway(srv.URL))
	_, err := client.List(context.Background(), "jeton-123", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Bearer jeton-123", gotAuth)
}

func TestSearchAndCategoryQueryParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]models.Product{{ID: "p1"}})
	}))
	defer srv.Close()

	client := NewProductsClient(NewGateway(srv.URL))
	products, err := client.List(context.Background(), "", "clavier", "informatique")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Contains(t, gotQuery, "search=clavier")
	assert.Contains(t, gotQuery, "category=informatique")
}

func TestAPIErrorCarriesStatusAndMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Identifiants incorrects"})
	}))
	defer srv.Close()

	client := NewAuthClient(NewGateway(srv.URL))
	_, err := client.Login(context.Background(), models.LoginRequest{Email: "x@y.z", Password: "non"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Identifiants incorrects", apiErr.Message)
}

func TestPlaceOrderPostsCartLines(t *testing.T) {
	var gotReq models.OrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/orders/place", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(models.Order{ID: "o1", Status: models.OrderPending, Total: 1500})
	}))
	defer srv.Close()

	client := NewOrdersClient(NewGateway(srv.URL))
	order, err := client.Place(context.Background(), "jeton", models.OrderRequest{
		Items: []models.OrderItemRequest{{ProductID: "p1", Quantity: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, models.OrderPending, order.Status)
	require.Len(t, gotReq.Items, 1)
	assert.Equal(t, "p1", gotReq.Items[0].ProductID)
	assert.Equal(t, 3, gotReq.Items[0].Quantity)
}

func TestUpdateThresholdPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/inventory/p9/threshold", r.URL.Path)

		var req models.UpdateThresholdRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(models.InventoryItem{
			ProductID:         "p9",
			Stock:             3,
			LowStockThreshold: req.Threshold,
		})
	}))
	defer srv.Close()

	client := NewInventoryClient(NewGateway(srv.URL))
	item, err := client.UpdateThreshold(context.Background(), "jeton", "p9", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, item.LowStockThreshold)
	assert.True(t, item.IsLowStock())
}
