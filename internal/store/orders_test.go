package store

import (
	"context"
	"testing"

	"jewelry_storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAddress = models.Address{
	Name: "Ana Lima", Street: "1 rue des Lilas", City: "Lyon", ZipCode: "69001", Country: "FR",
}

func TestQuoteStandardShipping(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)
	require.NoError(t, s.AddToCart(ctx, models.CartLine{ProductID: "A", Quantity: 2}))

	q, err := s.Quote(ctx, "", nil)
	require.NoError(t, err)
	assert.Equal(t, 200.0, q.Totals.Subtotal)
	assert.Equal(t, 25.0, q.Totals.Shipping)
	assert.Equal(t, 225.0, q.Totals.Total)
	assert.False(t, q.Shipping.IsFree)
}

func TestQuoteUnknownShippingOption(t *testing.T) {
	s, _, _ := newTestStore(t)

	_, err := s.Quote(context.Background(), "drone", nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCheckoutSubmitsTotalsAndClearsCart(t *testing.T) {
	ctx := context.Background()
	s, backend, _ := loggedIn(t, "ana@example.com", "secret")
	require.NoError(t, s.AddToCart(ctx, models.CartLine{ProductID: "A", Quantity: 3, SelectedSize: "52"}))
	require.NoError(t, s.AddToCart(ctx, models.CartLine{ProductID: "B", Quantity: 1}))

	created, quote, err := s.Checkout(ctx, CheckoutRequest{ShippingAddress: testAddress})
	require.NoError(t, err)
	assert.Equal(t, "ord-1", created.OrderID)

	// 3×100 + 250 = 550, livraison offerte
	assert.Equal(t, Totals{Subtotal: 550, Shipping: 0, Tax: 0, Discount: 0, Total: 550}, quote.Totals)

	require.NotNil(t, backend.lastOrder)
	assert.Equal(t, "card", backend.lastOrder.PaymentMethod)
	assert.Len(t, backend.lastOrder.Items, 2)
	assert.Equal(t, "52", backend.lastOrder.Items[0].SelectedSize)
	assert.Empty(t, s.Cart().Items)
}

func TestCheckoutKeepsLinesAddedDuringSubmit(t *testing.T) {
	ctx := context.Background()
	s, backend, _ := loggedIn(t, "ana@example.com", "secret")
	require.NoError(t, s.AddToCart(ctx, models.CartLine{ProductID: "A", Quantity: 1}))

	// l'utilisateur continue ses achats pendant l'envoi de la commande
	backend.orderHook = func() {
		assert.NoError(t, s.AddToCart(ctx, models.CartLine{ProductID: "B", Quantity: 1}))
		assert.NoError(t, s.AddToCart(ctx, models.CartLine{ProductID: "A", Quantity: 2}))
	}

	_, _, err := s.Checkout(ctx, CheckoutRequest{ShippingAddress: testAddress})
	require.NoError(t, err)
	require.Len(t, backend.lastOrder.Items, 1)

	items := s.Cart().Items
	require.Len(t, items, 2)
	assert.Equal(t, models.LineKey{ProductID: "A"}, items[0].Key())
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "B", items[1].ProductID)
}

func TestQuoteWithDeletedProductShowsNoError(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)
	require.NoError(t, s.AddToCart(ctx, models.CartLine{ProductID: "ghost", Quantity: 1}))

	q, err := s.Quote(ctx, "", nil)
	require.NoError(t, err)
	assert.Len(t, q.Missing, 1)
	assert.Empty(t, s.Error())
}

func TestCheckoutAppliesCoupon(t *testing.T) {
	ctx := context.Background()
	s, backend, _ := loggedIn(t, "ana@example.com", "secret")
	require.NoError(t, s.AddToCart(ctx, models.CartLine{ProductID: "A", Quantity: 3}))
	require.NoError(t, s.AddToCart(ctx, models.CartLine{ProductID: "B", Quantity: 1}))

	coupon := &models.Coupon{Code: "TEN", Type: "percentage", Value: 10, IsActive: true}
	_, quote, err := s.Checkout(ctx, CheckoutRequest{ShippingAddress: testAddress, Coupon: coupon})
	require.NoError(t, err)
	assert.Equal(t, 55.0, quote.Totals.Discount)
	assert.Equal(t, 495.0, quote.Totals.Total)
	assert.Equal(t, 495.0, backend.lastOrder.Total)
}

func TestCheckoutRejectsMissingProduct(t *testing.T) {
	ctx := context.Background()
	s, backend, _ := loggedIn(t, "ana@example.com", "secret")
	require.NoError(t, s.AddToCart(ctx, models.CartLine{ProductID: "ghost", Quantity: 1}))

	_, _, err := s.Checkout(ctx, CheckoutRequest{ShippingAddress: testAddress})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, backend.lastOrder)
	assert.Len(t, s.Cart().Items, 1)
}

func TestCheckoutRequiresSession(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)
	require.NoError(t, s.AddToCart(ctx, models.CartLine{ProductID: "A"}))

	_, _, err := s.Checkout(ctx, CheckoutRequest{ShippingAddress: testAddress})
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Len(t, s.Cart().Items, 1)
}

func TestCheckoutRejectsEmptyCartAndBadAddress(t *testing.T) {
	ctx := context.Background()
	s, _, _ := loggedIn(t, "ana@example.com", "secret")

	_, _, err := s.Checkout(ctx, CheckoutRequest{ShippingAddress: testAddress})
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, s.AddToCart(ctx, models.CartLine{ProductID: "A"}))
	_, _, err = s.Checkout(ctx, CheckoutRequest{ShippingAddress: models.Address{Name: "Ana"}})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	customer, _, _ := loggedIn(t, "ana@example.com", "secret")
	err := customer.UpdateOrderStatus(ctx, "ord-1", models.StatusUpdate{Status: models.OrderShipped})
	assert.ErrorIs(t, err, ErrForbidden)

	admin, backend, _ := loggedIn(t, "admin@example.com", "admin")
	backend.orders = []models.Order{{ID: "ord-1", Status: models.OrderPending}}

	err = admin.UpdateOrderStatus(ctx, "ord-1", models.StatusUpdate{Status: "lost"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, backend.lastStatus)

	// une transition « en arrière » est laissée au backend
	require.NoError(t, admin.UpdateOrderStatus(ctx, "ord-1", models.StatusUpdate{Status: models.OrderShipped, TrackingNumber: "TRK1"}))
	require.NoError(t, admin.UpdateOrderStatus(ctx, "ord-1", models.StatusUpdate{Status: models.OrderPending}))
	orders := admin.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, models.OrderPending, orders[0].Status)
}

func TestFetchOrdersUnauthenticatedIsNoop(t *testing.T) {
	s, _, _ := newTestStore(t)
	require.NoError(t, s.FetchOrders(context.Background()))
	assert.Empty(t, s.Orders())
}
