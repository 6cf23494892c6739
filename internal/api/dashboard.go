package api

import (
	"context"
	"net/http"
	"net/url"

	"retail_edge_front/internal/models"
)

// Périodes acceptées par /api/dashboard/sales.
var SalesPeriods = map[string]bool{
	"daily":   true,
	"weekly":  true,
	"monthly": true,
	"yearly":  true,
}

// DashboardClient parle aux endpoints /api/dashboard de l'API RetailEdge.
type DashboardClient struct {
	gw *Gateway
}

func NewDashboardClient(gw *Gateway) *DashboardClient {
	return &DashboardClient{gw: gw}
}

func (c *DashboardClient) Metrics(ctx context.Context, token string) (*models.KeyMetrics, error) {
	var out models.KeyMetrics
	err := c.gw.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/dashboard/metrics",
		token:  token,
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *DashboardClient) Sales(ctx context.Context, token, period string) ([]models.SalesData, error) {
	query := url.Values{}
	query.Set("period", period)

	var out []models.SalesData
	err := c.gw.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/dashboard/sales",
		query:  query,
		token:  token,
		out:    &out,
	})
	return out, err
}

func (c *DashboardClient) TopProducts(ctx context.Context, token string) ([]models.TopProduct, error) {
	var out []models.TopProduct
	err := c.gw.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/dashboard/top-products",
		token:  token,
		out:    &out,
	})
	return out, err
}
