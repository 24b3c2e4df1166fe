package store

import (
	"context"
	"strings"
	"time"

	"jewelry_storefront/internal/api"
	"jewelry_storefront/internal/models"
)

func (s *Store) validateProduct(in *models.ProductInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	if in.PreOrder {
		// un produit en précommande n'est jamais en stock
		in.InStock = false
	}
	if err := validate.Struct(in); err != nil {
		return invalid("%v", err)
	}
	return nil
}

// refreshProducts recharge la liste après une écriture admin
func (s *Store) refreshProducts(ctx context.Context) {
	if err := s.FetchProducts(ctx, models.ProductFilter{}); err != nil {
		s.logger("admin").WithError(err).Warn("⚠️ Rafraîchissement du catalogue impossible")
	}
}

func (s *Store) CreateProduct(ctx context.Context, in models.ProductInput, images []api.ImageFile) (*models.ProductCreated, error) {
	token, err := s.adminToken(ctx)
	if err != nil {
		return nil, s.fail("product_create", err)
	}
	if err := s.validateProduct(&in); err != nil {
		return nil, s.fail("product_create", err)
	}

	created, err := s.backend.CreateProduct(ctx, token, in, images)
	if err != nil {
		s.authFailed(ctx, err)
		return nil, s.fail("product_create", err)
	}
	s.logger("product_create").WithField("product_id", created.ID).Info("✅ Produit créé")
	s.refreshProducts(ctx)
	return created, nil
}

func (s *Store) UpdateProduct(ctx context.Context, id string, in models.ProductInput, images []api.ImageFile) error {
	token, err := s.adminToken(ctx)
	if err != nil {
		return s.fail("product_update", err)
	}
	if strings.TrimSpace(id) == "" {
		return s.fail("product_update", invalid("id produit requis"))
	}
	if err := s.validateProduct(&in); err != nil {
		return s.fail("product_update", err)
	}

	if err := s.backend.UpdateProduct(ctx, token, id, in, images); err != nil {
		s.authFailed(ctx, err)
		return s.fail("product_update", err)
	}
	s.logger("product_update").WithField("product_id", id).Info("✅ Produit mis à jour")
	s.refreshProducts(ctx)
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	token, err := s.adminToken(ctx)
	if err != nil {
		return s.fail("product_delete", err)
	}
	if strings.TrimSpace(id) == "" {
		return s.fail("product_delete", invalid("id produit requis"))
	}

	if err := s.backend.DeleteProduct(ctx, token, id); err != nil {
		s.authFailed(ctx, err)
		return s.fail("product_delete", err)
	}
	s.logger("product_delete").WithField("product_id", id).Info("🗑️ Produit supprimé")
	s.refreshProducts(ctx)
	return nil
}

func (s *Store) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	token, err := s.adminToken(ctx)
	if err != nil {
		return nil, s.fail("dashboard", err)
	}
	d, err := s.backend.Dashboard(ctx, token)
	if err != nil {
		s.authFailed(ctx, err)
		return nil, s.fail("dashboard", err)
	}
	return d, nil
}

var offerDateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}

func parseOfferDate(v string) (time.Time, bool) {
	for _, layout := range offerDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (s *Store) CreateOffer(ctx context.Context, in models.OfferInput) (string, error) {
	token, err := s.adminToken(ctx)
	if err != nil {
		return "", s.fail("offer_create", err)
	}
	if err := validate.Struct(in); err != nil {
		return "", s.fail("offer_create", invalid("%v", err))
	}
	start, okStart := parseOfferDate(in.StartDate)
	end, okEnd := parseOfferDate(in.EndDate)
	if !okStart || !okEnd {
		return "", s.fail("offer_create", invalid("dates d'offre illisibles"))
	}
	if end.Before(start) {
		return "", s.fail("offer_create", invalid("la fin de l'offre précède son début"))
	}

	id, err := s.backend.CreateOffer(ctx, token, in)
	if err != nil {
		s.authFailed(ctx, err)
		return "", s.fail("offer_create", err)
	}
	s.logger("offer_create").WithField("offer_id", id).Info("✅ Offre créée")
	return id, nil
}
