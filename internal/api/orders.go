package api

import (
	"context"
	"net/http"
	"net/url"

	"jewelry_storefront/internal/models"
)

func (c *Client) CreateOrder(ctx context.Context, token string, in models.OrderRequest) (*models.OrderCreated, error) {
	var out models.OrderCreated
	err := c.do(ctx, request{
		method:   http.MethodPost,
		endpoint: "orders_create",
		path:     "/orders",
		token:    token,
		body:     in,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Orders(ctx context.Context, token string) ([]models.Order, error) {
	var out []models.Order
	err := c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: "orders_list",
		path:     "/orders",
		token:    token,
	}, &out)
	return out, err
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token, orderID string, in models.StatusUpdate) error {
	return c.do(ctx, request{
		method:   http.MethodPut,
		endpoint: "admin_order_status",
		path:     "/admin/orders/" + url.PathEscape(orderID) + "/status",
		token:    token,
		body:     in,
	}, nil)
}
