package api

import (
	"context"
	"net/http"

	"retail_edge_front/internal/models"
)

// AuthClient parle aux endpoints /api/auth de l'API RetailEdge.
type AuthClient struct {
	gw *Gateway
}

func NewAuthClient(gw *Gateway) *AuthClient {
	return &AuthClient{gw: gw}
}

func (c *AuthClient) Login(ctx context.Context, creds models.LoginRequest) (*models.JwtResponse, error) {
	var out models.JwtResponse
	err := c.gw.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/auth/login",
		body:   creds,
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *AuthClient) Register(ctx context.Context, profile models.RegisterRequest) (*models.JwtResponse, error) {
	var out models.JwtResponse
	err := c.gw.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/auth/register",
		body:   profile,
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
