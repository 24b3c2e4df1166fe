package models

import "time"

type Coupon struct {
	Code          string    `json:"code" validate:"required"`
	Description   string    `json:"description,omitempty"`
	Type          string    `json:"type" validate:"oneof=percentage fixed"` // "percentage" ou "fixed"
	Value         float64   `json:"value" validate:"gt=0"`
	MinOrderValue float64   `json:"minOrderValue,omitempty"`
	MaxDiscount   *float64  `json:"maxDiscount,omitempty"` // Montant max de réduction
	ExpiresAt     time.Time `json:"expiresAt"`
	IsActive      bool      `json:"isActive"`
}

// Discount calcule la réduction applicable sur un sous-total.
// Retourne 0 si le coupon est inactif, expiré ou si le minimum n'est pas atteint.
func (c Coupon) Discount(subtotal float64, now time.Time) float64 {
	if !c.IsActive || (!c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)) {
		return 0
	}
	if subtotal < c.MinOrderValue {
		return 0
	}

	var discount float64
	switch c.Type {
	case "percentage":
		discount = subtotal * c.Value / 100
	case "fixed":
		discount = c.Value
	}

	if c.MaxDiscount != nil && discount > *c.MaxDiscount {
		discount = *c.MaxDiscount
	}
	if discount > subtotal {
		discount = subtotal
	}
	return discount
}
