package api

import (
	"context"
	"net/http"

	"retail_edge_front/internal/models"
)

// InventoryClient parle aux endpoints /api/inventory de l'API RetailEdge.
type InventoryClient struct {
	gw *Gateway
}

func NewInventoryClient(gw *Gateway) *InventoryClient {
	return &InventoryClient{gw: gw}
}

func (c *InventoryClient) List(ctx context.Context, token string) ([]models.InventoryItem, error) {
	var out []models.InventoryItem
	err := c.gw.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/inventory",
		token:  token,
		out:    &out,
	})
	return out, err
}

func (c *InventoryClient) UpdateThreshold(ctx context.Context, token, productID string, threshold int) (*models.InventoryItem, error) {
	var out models.InventoryItem
	err := c.gw.do(ctx, request{
		method: http.MethodPut,
		path:   "/api/inventory/" + productID + "/threshold",
		body:   models.UpdateThresholdRequest{Threshold: threshold},
		token:  token,
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
