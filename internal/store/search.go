package store

import (
	"sync"

	"jewelry_storefront/internal/models"
)

// Sequencer garantit que seul le résultat de la recherche la plus récente
// est affiché, quel que soit l'ordre d'arrivée des réponses.
type Sequencer struct {
	mu      sync.Mutex
	next    uint64
	applied uint64
	query   string
	result  models.SearchResult
}

// Begin réserve le numéro de séquence d'une nouvelle recherche
func (s *Sequencer) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return s.next
}

// Apply ne retient la réponse que si seq dépasse le plus haut déjà appliqué
func (s *Sequencer) Apply(seq uint64, query string, result models.SearchResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.applied {
		return false
	}
	s.applied = seq
	s.query = query
	s.result = result
	return true
}

// Current retourne la requête et le résultat actuellement affichés
func (s *Sequencer) Current() (string, models.SearchResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query, s.result
}

func (s *Sequencer) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applied = s.next
	s.query = ""
	s.result = models.SearchResult{}
}
