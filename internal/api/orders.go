package api

import (
	"context"
	"net/http"

	"retail_edge_front/internal/models"
)

// OrdersClient parle aux endpoints /api/orders de l'API RetailEdge.
type OrdersClient struct {
	gw *Gateway
}

func NewOrdersClient(gw *Gateway) *OrdersClient {
	return &OrdersClient{gw: gw}
}

// Place envoie la commande construite depuis le panier. Le serveur reste seul
// juge du stock réel.
func (c *OrdersClient) Place(ctx context.Context, token string, order models.OrderRequest) (*models.Order, error) {
	var out models.Order
	err := c.gw.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/orders/place",
		body:   order,
		token:  token,
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *OrdersClient) Mine(ctx context.Context, token string) ([]models.Order, error) {
	var out []models.Order
	err := c.gw.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/orders/my-orders",
		token:  token,
		out:    &out,
	})
	return out, err
}

func (c *OrdersClient) All(ctx context.Context, token string) ([]models.Order, error) {
	var out []models.Order
	err := c.gw.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/orders",
		token:  token,
		out:    &out,
	})
	return out, err
}

// UpdateStatus demande une transition de statut ; la transition effective est
// décidée côté serveur, on relit ensuite la liste.
func (c *OrdersClient) UpdateStatus(ctx context.Context, token, orderID string, status models.OrderStatus) (*models.Order, error) {
	var out models.Order
	err := c.gw.do(ctx, request{
		method: http.MethodPut,
		path:   "/api/orders/" + orderID + "/status",
		body:   models.UpdateOrderStatusRequest{Status: status},
		token:  token,
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
