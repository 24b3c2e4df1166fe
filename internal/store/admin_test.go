package store

import (
	"context"
	"testing"

	"jewelry_storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct() models.ProductInput {
	return models.ProductInput{
		Name:        "Bague Lune",
		Description: "Or 18 carats",
		Price:       320,
		Category:    "Rings",
		InStock:     true,
	}
}

func TestCreateProductForcesPreOrderOutOfStock(t *testing.T) {
	ctx := context.Background()
	s, backend, _ := loggedIn(t, "admin@example.com", "admin")

	in := validProduct()
	in.PreOrder = true
	created, err := s.CreateProduct(ctx, in, nil)
	require.NoError(t, err)

	stored := backend.products[created.ID]
	assert.False(t, stored.InStock)
	assert.True(t, stored.PreOrder)

	// la liste est rechargée après l'écriture
	products, _ := s.Products()
	assert.Len(t, products, 3)
}

func TestCreateProductValidation(t *testing.T) {
	s, backend, _ := loggedIn(t, "admin@example.com", "admin")

	in := validProduct()
	in.Price = -1
	_, err := s.CreateProduct(context.Background(), in, nil)
	assert.ErrorIs(t, err, ErrValidation)

	in = validProduct()
	in.Name = "   "
	_, err = s.CreateProduct(context.Background(), in, nil)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Len(t, backend.products, 2)
}

func TestAdminActionsRequireRole(t *testing.T) {
	ctx := context.Background()
	anon, _, _ := newTestStore(t)
	customer, _, _ := loggedIn(t, "ana@example.com", "secret")

	_, err := anon.CreateProduct(ctx, validProduct(), nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	assert.ErrorIs(t, customer.DeleteProduct(ctx, "A"), ErrForbidden)
	_, err = customer.Dashboard(ctx)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateAndDeleteProduct(t *testing.T) {
	ctx := context.Background()
	s, backend, _ := loggedIn(t, "admin@example.com", "admin")

	in := validProduct()
	in.Price = 99
	require.NoError(t, s.UpdateProduct(ctx, "A", in, nil))
	assert.Equal(t, 99.0, backend.products["A"].Price)

	require.NoError(t, s.DeleteProduct(ctx, "B"))
	_, ok := backend.products["B"]
	assert.False(t, ok)

	assert.ErrorIs(t, s.DeleteProduct(ctx, " "), ErrValidation)
}

func TestDashboard(t *testing.T) {
	s, _, _ := loggedIn(t, "admin@example.com", "admin")

	d, err := s.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, d.Stats.TotalOrders)
}

func TestCreateOfferChecksDates(t *testing.T) {
	ctx := context.Background()
	s, _, _ := loggedIn(t, "admin@example.com", "admin")

	_, err := s.CreateOffer(ctx, models.OfferInput{Title: "Soldes", StartDate: "2026-06-10", EndDate: "2026-06-01"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.CreateOffer(ctx, models.OfferInput{Title: "Soldes", StartDate: "demain", EndDate: "2026-06-01"})
	assert.ErrorIs(t, err, ErrValidation)

	id, err := s.CreateOffer(ctx, models.OfferInput{Title: "Soldes", StartDate: "2026-06-01T00:00", EndDate: "2026-06-30T23:59"})
	require.NoError(t, err)
	assert.Equal(t, "offer-1", id)
}
