package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Manager tient un Store par session navigateur
type Manager struct {
	backend Backend
	opts    Options

	mu     sync.Mutex
	stores map[string]*Store
}

func NewManager(backend Backend, opts Options) *Manager {
	return &Manager{
		backend: backend,
		opts:    opts,
		stores:  map[string]*Store{},
	}
}

// Create ouvre une nouvelle session vide
func (m *Manager) Create() *Store {
	s := New(uuid.NewString(), m.backend, m.opts)
	m.mu.Lock()
	m.stores[s.ID()] = s
	m.mu.Unlock()
	return s
}

// Get retourne le Store de la session, en le restaurant depuis le snapshot
// persisté s'il n'est plus en mémoire. Un id inconnu donne une session vide.
// La lecture du snapshot se fait hors du verrou.
func (m *Manager) Get(ctx context.Context, sessionID string) *Store {
	if _, err := uuid.Parse(sessionID); err != nil {
		return m.Create()
	}

	if s, ok := m.lookup(sessionID); ok {
		s.touch()
		return s
	}

	s := New(sessionID, m.backend, m.opts)
	if m.opts.Persister != nil {
		snap, err := m.opts.Persister.Load(ctx, sessionID)
		switch {
		case err == nil:
			s.Restore(*snap)
		case errors.Is(err, ErrNoSnapshot):
		default:
			// la persistance ne bloque jamais la session
			log.WithField("session", sessionID).WithError(err).Warn("⚠️ Lecture du snapshot impossible")
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// une requête concurrente a pu restaurer la même session entre-temps
	if existing, ok := m.stores[sessionID]; ok {
		existing.touch()
		return existing
	}
	m.stores[sessionID] = s
	return s
}

func (m *Manager) lookup(sessionID string) (*Store, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stores[sessionID]
	return s, ok
}

// Rotate remplace la session par une nouvelle sous un autre id, avec le même
// panier et la même identité. L'ancien id et son snapshot sont abandonnés.
func (m *Manager) Rotate(ctx context.Context, old *Store) *Store {
	s := New(uuid.NewString(), m.backend, m.opts)
	s.Restore(old.Snapshot())
	s.mu.Lock()
	s.persistLocked(ctx)
	s.mu.Unlock()

	if m.opts.Persister != nil {
		if err := m.opts.Persister.Delete(ctx, old.ID()); err != nil {
			log.WithField("session", old.ID()).WithError(err).Warn("⚠️ Suppression de l'ancien snapshot impossible")
		}
	}

	m.mu.Lock()
	delete(m.stores, old.ID())
	m.stores[s.ID()] = s
	m.mu.Unlock()

	log.WithFields(log.Fields{"from": old.ID(), "to": s.ID()}).Debug("🔄 Identifiant de session renouvelé")
	return s
}

// Sweep libère les Store inactifs ; leur état reste dans le snapshot
func (m *Manager) Sweep(maxIdle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if m.opts.Now != nil {
		now = m.opts.Now()
	}
	n := 0
	for id, s := range m.stores {
		if now.Sub(s.idleSince()) > maxIdle {
			delete(m.stores, id)
			n++
		}
	}
	if n > 0 {
		log.WithField("evicted", n).Debug("🧹 Sessions inactives libérées")
	}
	return n
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.stores)
}
