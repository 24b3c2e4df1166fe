package store

import (
	"math"

	"jewelry_storefront/internal/models"
)

// Pricing regroupe les règles de frais de port et de taxe appliquées au checkout
type Pricing struct {
	FreeShippingThreshold float64
	StandardShipping      float64
	ExpressShipping       float64
	TaxRate               float64
}

// DefaultPricing : livraison offerte dès 500
var DefaultPricing = Pricing{
	FreeShippingThreshold: 500,
	StandardShipping:      25,
	ExpressShipping:       45,
	TaxRate:               0,
}

const (
	ShippingStandard = "standard"
	ShippingExpress  = "express"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ShippingOptions calcule les options proposées pour un sous-total
func (p Pricing) ShippingOptions(subtotal float64) models.ShippingCalculation {
	free := subtotal >= p.FreeShippingThreshold
	standard := p.StandardShipping
	if free {
		standard = 0
	}
	return models.ShippingCalculation{
		Options: []models.ShippingOption{
			{ID: ShippingStandard, Name: "Standard", Description: "3-5 business days", Price: standard, EstimatedDays: 5},
			{ID: ShippingExpress, Name: "Express", Description: "1-2 business days", Price: p.ExpressShipping, EstimatedDays: 2},
		},
		FreeThreshold: p.FreeShippingThreshold,
		CartTotal:     subtotal,
		IsFree:        free,
	}
}

func (p Pricing) shippingFor(option string, subtotal float64) (float64, bool) {
	for _, o := range p.ShippingOptions(subtotal).Options {
		if o.ID == option {
			return o.Price, true
		}
	}
	return 0, false
}

// Totals est le détail d'une commande : total = sous-total + port + taxe − remise
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

func (p Pricing) totals(subtotal, shipping, discount float64) Totals {
	tax := round2(subtotal * p.TaxRate)
	discount = math.Min(discount, subtotal)
	return Totals{
		Subtotal: round2(subtotal),
		Shipping: round2(shipping),
		Tax:      tax,
		Discount: round2(discount),
		Total:    round2(subtotal + shipping + tax - discount),
	}
}
