package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusNext(t *testing.T) {
	assert.Equal(t, []OrderStatus{OrderConfirmed, OrderCancelled}, OrderPending.Next())
	assert.Equal(t, []OrderStatus{OrderDelivered, OrderCancelled}, OrderShipped.Next())
	assert.Nil(t, OrderDelivered.Next())
	assert.Nil(t, OrderCancelled.Next())
	assert.Nil(t, OrderStatus("lost").Next())
}

func TestOrderStatusValid(t *testing.T) {
	for _, st := range OrderStatuses {
		assert.True(t, st.Valid(), st)
	}
	assert.False(t, OrderStatus("").Valid())
}

func TestCouponDiscount(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	ceiling := 30.0

	tests := []struct {
		name     string
		coupon   Coupon
		subtotal float64
		want     float64
	}{
		{"pourcentage", Coupon{Type: "percentage", Value: 10, IsActive: true}, 550, 55},
		{"plafonné", Coupon{Type: "percentage", Value: 10, MaxDiscount: &ceiling, IsActive: true}, 550, 30},
		{"fixe", Coupon{Type: "fixed", Value: 20, IsActive: true}, 100, 20},
		{"fixe supérieur au sous-total", Coupon{Type: "fixed", Value: 200, IsActive: true}, 100, 100},
		{"minimum non atteint", Coupon{Type: "fixed", Value: 20, MinOrderValue: 150, IsActive: true}, 100, 0},
		{"inactif", Coupon{Type: "fixed", Value: 20}, 100, 0},
		{"expiré", Coupon{Type: "fixed", Value: 20, IsActive: true, ExpiresAt: now.Add(-time.Hour)}, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.coupon.Discount(tt.subtotal, now), 0.001)
		})
	}
}

func TestProductDiscountPercentage(t *testing.T) {
	original := 200.0
	p := Product{Price: 150, OriginalPrice: &original}
	assert.Equal(t, 25, p.DiscountPercentage())
	assert.Zero(t, Product{Price: 150}.DiscountPercentage())
}
