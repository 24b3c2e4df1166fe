package store

import (
	"context"

	"jewelry_storefront/internal/metrics"
	"jewelry_storefront/internal/models"
)

func (s *Store) WishlistIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.IDs()
}

func (s *Store) WishlistProducts() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Products()
}

func (s *Store) InWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Contains(productID)
}

// FetchWishlist remplace ids et produits par la réponse du serveur.
// Sans session authentifiée c'est un no-op.
func (s *Store) FetchWishlist(ctx context.Context) error {
	token, err := s.token(ctx)
	if err != nil {
		return nil
	}

	products, err := s.backend.Wishlist(ctx, token)
	if err != nil {
		s.authFailed(ctx, err)
		return s.fail("wishlist", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.wishlist.replace(products)
	s.persistLocked(ctx)
	return nil
}

// AddToWishlist insère de façon optimiste puis se réconcilie avec le serveur.
// Un échec rejoue l'action inverse ; sans session c'est un no-op silencieux.
func (s *Store) AddToWishlist(ctx context.Context, productID string) error {
	token, err := s.token(ctx)
	if err != nil || productID == "" {
		return nil
	}

	s.mu.Lock()
	correlationID := s.wishlist.optimisticAdd(productID)
	s.persistLocked(ctx)
	s.mu.Unlock()

	if err := s.backend.AddToWishlist(ctx, token, productID); err != nil {
		s.mu.Lock()
		if s.wishlist.compensateAdd(productID, correlationID) {
			metrics.RecordCompensation("add")
			s.logger("wishlist_add").WithField("product_id", productID).Info("↩️ Ajout optimiste annulé")
			s.persistLocked(ctx)
		}
		s.mu.Unlock()
		s.authFailed(ctx, err)
		return s.fail("wishlist_add", err)
	}

	s.mu.Lock()
	s.wishlist.settle(productID, correlationID)
	s.mu.Unlock()
	return s.FetchWishlist(ctx)
}

// RemoveFromWishlist retire immédiatement l'id et la projection, puis
// restaure les deux si la suppression échoue.
func (s *Store) RemoveFromWishlist(ctx context.Context, productID string) error {
	token, err := s.token(ctx)
	if err != nil || productID == "" {
		return nil
	}

	s.mu.Lock()
	correlationID := s.wishlist.optimisticRemove(productID)
	s.persistLocked(ctx)
	s.mu.Unlock()

	if err := s.backend.RemoveFromWishlist(ctx, token, productID); err != nil {
		s.mu.Lock()
		if s.wishlist.compensateRemove(productID, correlationID) {
			metrics.RecordCompensation("remove")
			s.logger("wishlist_remove").WithField("product_id", productID).Info("↩️ Suppression optimiste annulée")
			s.persistLocked(ctx)
		}
		s.mu.Unlock()
		s.authFailed(ctx, err)
		return s.fail("wishlist_remove", err)
	}

	s.mu.Lock()
	s.wishlist.settle(productID, correlationID)
	s.mu.Unlock()
	return nil
}
