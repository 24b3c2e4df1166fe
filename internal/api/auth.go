package api

import (
	"context"
	"net/http"

	"jewelry_storefront/internal/models"
)

func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, request{
		method:   http.MethodPost,
		endpoint: "auth_login",
		path:     "/auth/login",
		body:     models.LoginRequest{Email: email, Password: password},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, in models.RegisterRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, request{
		method:   http.MethodPost,
		endpoint: "auth_register",
		path:     "/auth/register",
		body:     in,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
