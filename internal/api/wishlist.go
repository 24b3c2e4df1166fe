package api

import (
	"context"
	"net/http"
	"net/url"

	"jewelry_storefront/internal/models"
)

func (c *Client) Wishlist(ctx context.Context, token string) ([]models.Product, error) {
	var out []models.Product
	err := c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: "wishlist_list",
		path:     "/wishlist",
		token:    token,
	}, &out)
	return out, err
}

func (c *Client) AddToWishlist(ctx context.Context, token, productID string) error {
	return c.do(ctx, request{
		method:   http.MethodPost,
		endpoint: "wishlist_add",
		path:     "/wishlist/" + url.PathEscape(productID),
		token:    token,
	}, nil)
}

func (c *Client) RemoveFromWishlist(ctx context.Context, token, productID string) error {
	return c.do(ctx, request{
		method:   http.MethodDelete,
		endpoint: "wishlist_remove",
		path:     "/wishlist/" + url.PathEscape(productID),
		token:    token,
	}, nil)
}
