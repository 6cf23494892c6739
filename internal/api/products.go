package api

import (
	"context"
	"net/http"
	"net/url"

	"retail_edge_front/internal/models"
)

// ProductsClient parle aux endpoints /api/products de l'API RetailEdge.
type ProductsClient struct {
	gw *Gateway
}

func NewProductsClient(gw *Gateway) *ProductsClient {
	return &ProductsClient{gw: gw}
}

// List récupère le catalogue, avec filtres optionnels de recherche et de
// catégorie passés en query params.
func (c *ProductsClient) List(ctx context.Context, token, search, category string) ([]models.Product, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	if category != "" {
		query.Set("category", category)
	}

	var out []models.Product
	err := c.gw.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/products",
		query:  query,
		token:  token,
		out:    &out,
	})
	return out, err
}

func (c *ProductsClient) Get(ctx context.Context, token, id string) (*models.Product, error) {
	var out models.Product
	err := c.gw.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/products/" + id,
		token:  token,
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *ProductsClient) Create(ctx context.Context, token string, p models.ProductRequest) (*models.Product, error) {
	var out models.Product
	err := c.gw.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/products",
		body:   p,
		token:  token,
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *ProductsClient) Update(ctx context.Context, token, id string, p models.ProductRequest) (*models.Product, error) {
	var out models.Product
	err := c.gw.do(ctx, request{
		method: http.MethodPut,
		path:   "/api/products/" + id,
		body:   p,
		token:  token,
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *ProductsClient) Delete(ctx context.Context, token, id string) error {
	return c.gw.do(ctx, request{
		method: http.MethodDelete,
		path:   "/api/products/" + id,
		token:  token,
	})
}
