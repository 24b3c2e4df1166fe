package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"jewelry_storefront/internal/models"
)

func filterQuery(f models.ProductFilter) url.Values {
	q := url.Values{}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(f.PerPage))
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.SortBy != "" {
		q.Set("sort_by", f.SortBy)
	}
	if f.Order != "" {
		q.Set("order", f.Order)
	}
	return q
}

func (c *Client) Products(ctx context.Context, f models.ProductFilter) (*models.ProductList, error) {
	var out models.ProductList
	err := c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: "products_list",
		path:     "/products",
		query:    filterQuery(f),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Product(ctx context.Context, id string) (*models.Product, error) {
	var out models.Product
	err := c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: "products_get",
		path:     "/products/" + url.PathEscape(id),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	err := c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: "categories",
		path:     "/categories",
	}, &out)
	return out, err
}

func (c *Client) Search(ctx context.Context, query string) (*models.SearchResult, error) {
	var out models.SearchResult
	err := c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: "search",
		path:     "/search",
		query:    url.Values{"q": {query}},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Offers(ctx context.Context) ([]models.Offer, error) {
	var out []models.Offer
	err := c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: "offers",
		path:     "/offers",
	}, &out)
	return out, err
}
