package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"jewelry_storefront/internal/models"
)

// ImageFile est une image jointe à un formulaire produit
type ImageFile struct {
	Filename string
	Data     []byte
}

// productForm encode un ProductInput au format multipart attendu par le backend
func productForm(in models.ProductInput, images []ImageFile) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := [][2]string{
		{"name", in.Name},
		{"description", in.Description},
		{"price", strconv.FormatFloat(in.Price, 'f', -1, 64)},
		{"category", in.Category},
		{"inStock", strconv.FormatBool(in.InStock)},
		{"stockQuantity", strconv.Itoa(in.StockQuantity)},
		{"preOrder", strconv.FormatBool(in.PreOrder)},
		{"isFeatured", strconv.FormatBool(in.IsFeatured)},
	}
	if in.OriginalPrice != nil {
		fields = append(fields, [2]string{"originalPrice", strconv.FormatFloat(*in.OriginalPrice, 'f', -1, 64)})
	}
	if in.EstimatedDispatch != "" {
		fields = append(fields, [2]string{"estimatedDispatch", in.EstimatedDispatch})
	}
	for name, list := range map[string][]string{
		"materials": in.Materials,
		"sizes":     in.Sizes,
		"colors":    in.Colors,
		"tags":      in.Tags,
	} {
		if len(list) > 0 {
			fields = append(fields, [2]string{name, strings.Join(list, ",")})
		}
	}

	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", err
		}
	}
	for i, img := range images {
		part, err := w.CreateFormFile(fmt.Sprintf("image%d", i), img.Filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(img.Data); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

func (c *Client) CreateProduct(ctx context.Context, token string, in models.ProductInput, images []ImageFile) (*models.ProductCreated, error) {
	body, contentType, err := productForm(in, images)
	if err != nil {
		return nil, fmt.Errorf("encodage formulaire produit: %w", err)
	}
	var out models.ProductCreated
	err = c.do(ctx, request{
		method:      http.MethodPost,
		endpoint:    "admin_products_create",
		path:        "/admin/products",
		token:       token,
		rawBody:     body,
		contentType: contentType,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, token, id string, in models.ProductInput, images []ImageFile) error {
	body, contentType, err := productForm(in, images)
	if err != nil {
		return fmt.Errorf("encodage formulaire produit: %w", err)
	}
	return c.do(ctx, request{
		method:      http.MethodPut,
		endpoint:    "admin_products_update",
		path:        "/admin/products/" + url.PathEscape(id),
		token:       token,
		rawBody:     body,
		contentType: contentType,
	}, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, request{
		method:   http.MethodDelete,
		endpoint: "admin_products_delete",
		path:     "/admin/products/" + url.PathEscape(id),
		token:    token,
	}, nil)
}

func (c *Client) Dashboard(ctx context.Context, token string) (*models.Dashboard, error) {
	var out models.Dashboard
	err := c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: "admin_dashboard",
		path:     "/admin/dashboard",
		token:    token,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateOffer(ctx context.Context, token string, in models.OfferInput) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	err := c.do(ctx, request{
		method:   http.MethodPost,
		endpoint: "admin_offers_create",
		path:     "/admin/offers",
		token:    token,
		body:     in,
	}, &out)
	return out.ID, err
}
