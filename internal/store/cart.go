package store

import (
	"context"
	"strings"

	"jewelry_storefront/internal/models"
)

func (s *Store) cartViewLocked() models.CartView {
	subtotal, missing := s.cart.Subtotal(s.catalog)
	return models.CartView{
		Items:    s.cart.Lines(),
		Subtotal: round2(subtotal),
		Count:    s.cart.Count(),
		Missing:  missing,
	}
}

// Cart retourne le panier avec son sous-total calculé sur le catalogue courant
func (s *Store) Cart() models.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartViewLocked()
}

func (s *Store) AddToCart(ctx context.Context, line models.CartLine) error {
	line.ProductID = strings.TrimSpace(line.ProductID)
	if line.ProductID == "" {
		return s.fail("cart_add", invalid("productId requis"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.AddLine(line)
	s.cartChangedLocked(ctx)
	return nil
}

// UpdateCartQuantity : quantité ramenée à 1 minimum, clé inconnue sans effet
func (s *Store) UpdateCartQuantity(ctx context.Context, key models.LineKey, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.cart.SetQuantity(key, quantity) {
		return false
	}
	s.cartChangedLocked(ctx)
	return true
}

func (s *Store) UpdateProductQuantity(ctx context.Context, productID string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.cart.SetProductQuantity(productID, quantity) {
		return false
	}
	s.cartChangedLocked(ctx)
	return true
}

func (s *Store) RemoveFromCart(ctx context.Context, key models.LineKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.cart.RemoveLine(key) {
		return false
	}
	s.cartChangedLocked(ctx)
	return true
}

func (s *Store) RemoveProductFromCart(ctx context.Context, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.cart.RemoveProduct(productID) {
		return false
	}
	s.cartChangedLocked(ctx)
	return true
}

func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	s.cartChangedLocked(ctx)
}
