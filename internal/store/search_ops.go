package store

import (
	"context"
	"strings"

	"jewelry_storefront/internal/metrics"
	"jewelry_storefront/internal/models"
)

// Search numérote chaque appel ; une réponse plus ancienne que celle déjà
// appliquée est ignorée et le résultat courant est renvoyé avec applied=false.
func (s *Store) Search(ctx context.Context, query string) (result models.SearchResult, applied bool, err error) {
	query = strings.TrimSpace(query)
	seq := s.search.Begin()

	if query == "" {
		empty := models.SearchResult{Products: []models.Product{}, Categories: []models.CategoryRef{}}
		if s.search.Apply(seq, "", empty) {
			return empty, true, nil
		}
		_, current := s.search.Current()
		return current, false, nil
	}

	res, err := s.backend.Search(ctx, query)
	if err != nil {
		return models.SearchResult{}, false, s.fail("search", err)
	}

	if !s.search.Apply(seq, query, *res) {
		metrics.RecordStaleSearch()
		s.logger("search").WithField("query", query).Debug("Réponse de recherche périmée ignorée")
		_, current := s.search.Current()
		return current, false, nil
	}
	return *res, true, nil
}

// SearchResult retourne le dernier résultat appliqué
func (s *Store) SearchResult() (string, models.SearchResult) {
	return s.search.Current()
}
