package store

import (
	"context"
	"strings"

	"jewelry_storefront/internal/api"
	"jewelry_storefront/internal/models"
)

// FetchProducts remplace la liste en cache par la réponse du backend
func (s *Store) FetchProducts(ctx context.Context, f models.ProductFilter) error {
	list, err := s.backend.Products(ctx, f)
	if err != nil {
		return s.fail("products", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog.ReplaceProducts(list.Products, list.Pagination)
	return nil
}

// FetchProduct charge un détail produit ; api.IsNotFound(err) pour le cas introuvable
func (s *Store) FetchProduct(ctx context.Context, id string) (*models.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, s.fail("product", invalid("id produit requis"))
	}

	p, err := s.backend.Product(ctx, id)
	if api.IsNotFound(err) {
		// vue de repli côté interface, pas de bandeau d'erreur
		s.logger("product").WithField("product_id", id).Info("🔍 Produit introuvable")
		return nil, err
	}
	if err != nil {
		return nil, s.fail("product", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.catalog.PutProduct(*p) {
		return nil, invalid("produit %s invalide", id)
	}
	np, _ := s.catalog.Product(id)
	return &np, nil
}

func (s *Store) FetchCategories(ctx context.Context) error {
	categories, err := s.backend.Categories(ctx)
	if err != nil {
		return s.fail("categories", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog.SetCategories(categories)
	return nil
}

func (s *Store) Products() ([]models.Product, models.Pagination) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Products(), s.catalog.Pagination()
}

func (s *Store) FeaturedProducts() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Featured()
}

func (s *Store) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Categories()
}

func (s *Store) CachedProduct(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Product(id)
}

func (s *Store) Offers(ctx context.Context) ([]models.Offer, error) {
	offers, err := s.backend.Offers(ctx)
	if err != nil {
		return nil, s.fail("offers", err)
	}
	return offers, nil
}
