package store

import (
	"context"
	"strings"

	"jewelry_storefront/internal/models"
)

// CheckoutRequest est ce que l'interface envoie pour finaliser le panier
type CheckoutRequest struct {
	ShippingAddress models.Address  `json:"shippingAddress"`
	BillingAddress  *models.Address `json:"billingAddress,omitempty"`
	PaymentMethod   string          `json:"paymentMethod,omitempty"`
	ShippingOption  string          `json:"shippingOption,omitempty"`
	Coupon          *models.Coupon  `json:"coupon,omitempty"`
}

// Quote est le récapitulatif d'une commande avant envoi
type Quote struct {
	Lines    []models.CartLine          `json:"lines"`
	Totals   Totals                     `json:"totals"`
	Shipping models.ShippingCalculation `json:"shippingOptions"`
	Missing  []models.LineKey           `json:"missing,omitempty"`
}

func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Order(nil), s.orders...)
}

// FetchOrders est une projection en lecture seule ; no-op sans session
func (s *Store) FetchOrders(ctx context.Context) error {
	token, err := s.token(ctx)
	if err != nil {
		return nil
	}

	orders, err := s.backend.Orders(ctx, token)
	if err != nil {
		s.authFailed(ctx, err)
		return s.fail("orders", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = orders
	return nil
}

// ensurePrices charge les détails des produits du panier absents du cache
func (s *Store) ensurePrices(ctx context.Context) {
	s.mu.Lock()
	_, missing := s.cart.Subtotal(s.catalog)
	s.mu.Unlock()

	seen := map[string]bool{}
	for _, key := range missing {
		if seen[key.ProductID] {
			continue
		}
		seen[key.ProductID] = true
		if _, err := s.FetchProduct(ctx, key.ProductID); err != nil {
			s.logger("checkout").WithField("product_id", key.ProductID).Warn("⚠️ Produit du panier introuvable")
		}
	}
}

// Quote calcule sous-total, port, taxe et remise sur le panier courant
func (s *Store) Quote(ctx context.Context, shippingOption string, coupon *models.Coupon) (*Quote, error) {
	s.ensurePrices(ctx)

	s.mu.Lock()
	lines := s.cart.Lines()
	subtotal, missing := s.cart.Subtotal(s.catalog)
	s.mu.Unlock()

	if shippingOption == "" {
		shippingOption = ShippingStandard
	}
	shipping, ok := s.pricing.shippingFor(shippingOption, subtotal)
	if !ok {
		return nil, invalid("option de livraison inconnue: %s", shippingOption)
	}

	discount := 0.0
	if coupon != nil {
		if err := validate.Struct(coupon); err != nil {
			return nil, invalid("coupon: %v", err)
		}
		discount = coupon.Discount(subtotal, s.now())
	}

	return &Quote{
		Lines:    lines,
		Totals:   s.pricing.totals(subtotal, shipping, discount),
		Shipping: s.pricing.ShippingOptions(subtotal),
		Missing:  missing,
	}, nil
}

// Checkout soumet la commande puis retire du panier les lignes commandées
func (s *Store) Checkout(ctx context.Context, req CheckoutRequest) (*models.OrderCreated, *Quote, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, nil, s.fail("checkout", err)
	}
	if err := validate.Struct(req.ShippingAddress); err != nil {
		return nil, nil, s.fail("checkout", invalid("adresse de livraison: %v", err))
	}
	if req.BillingAddress != nil {
		if err := validate.Struct(req.BillingAddress); err != nil {
			return nil, nil, s.fail("checkout", invalid("adresse de facturation: %v", err))
		}
	}

	quote, err := s.Quote(ctx, req.ShippingOption, req.Coupon)
	if err != nil {
		return nil, nil, s.fail("checkout", err)
	}
	if len(quote.Lines) == 0 {
		return nil, nil, s.fail("checkout", invalid("panier vide"))
	}
	if len(quote.Missing) > 0 {
		return nil, nil, s.fail("checkout", invalid("produit introuvable: %s", quote.Missing[0].ProductID))
	}

	order := models.OrderRequest{
		Subtotal:        quote.Totals.Subtotal,
		Shipping:        quote.Totals.Shipping,
		Tax:             quote.Totals.Tax,
		Discount:        quote.Totals.Discount,
		Total:           quote.Totals.Total,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		PaymentMethod:   req.PaymentMethod,
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = "card"
	}
	for _, line := range quote.Lines {
		order.Items = append(order.Items, models.OrderLineInput{
			ProductID:     line.ProductID,
			Quantity:      line.Quantity,
			SelectedSize:  line.SelectedSize,
			SelectedColor: line.SelectedColor,
			Customization: line.Customization,
		})
	}
	if err := validate.Struct(order); err != nil {
		return nil, nil, s.fail("checkout", invalid("%v", err))
	}

	created, err := s.backend.CreateOrder(ctx, token, order)
	if err != nil {
		s.authFailed(ctx, err)
		return nil, nil, s.fail("checkout", err)
	}

	s.mu.Lock()
	s.cart.Subtract(quote.Lines)
	s.lastErr = ""
	s.cartChangedLocked(ctx)
	s.mu.Unlock()

	s.logger("checkout").WithField("order_id", created.OrderID).Info("🧾 Commande créée")
	return created, quote, nil
}

// UpdateOrderStatus : seule la valeur du statut est contrôlée, la validité
// de la transition reste du ressort du backend.
func (s *Store) UpdateOrderStatus(ctx context.Context, orderID string, upd models.StatusUpdate) error {
	token, err := s.adminToken(ctx)
	if err != nil {
		return s.fail("order_status", err)
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return s.fail("order_status", invalid("id commande requis"))
	}
	if !upd.Status.Valid() {
		return s.fail("order_status", invalid("statut inconnu: %q", upd.Status))
	}
	if err := validate.Struct(upd); err != nil {
		return s.fail("order_status", invalid("%v", err))
	}

	if err := s.backend.UpdateOrderStatus(ctx, token, orderID, upd); err != nil {
		s.authFailed(ctx, err)
		return s.fail("order_status", err)
	}

	s.logger("order_status").WithField("order_id", orderID).WithField("status", upd.Status).Info("✅ Statut de commande mis à jour")
	return s.FetchOrders(ctx)
}
