package store

import (
	"context"
	"errors"

	"jewelry_storefront/internal/models"
)

// ErrNoSnapshot est renvoyée par un Persister quand la session est inconnue
var ErrNoSnapshot = errors.New("snapshot introuvable")

// Snapshot est l'état persisté d'une session : rien d'autre n'est sauvegardé
type Snapshot struct {
	Identity        Identity          `json:"identity"`
	IsAuthenticated bool              `json:"isAuthenticated"`
	CartItems       []models.CartLine `json:"cartItems"`
	Wishlist        []string          `json:"wishlist"`
}

type Persister interface {
	Load(ctx context.Context, sessionID string) (*Snapshot, error)
	Save(ctx context.Context, sessionID string, snap Snapshot) error
	Delete(ctx context.Context, sessionID string) error
}

// CartNotifier est prévenu à chaque changement du panier
type CartNotifier interface {
	CartChanged(ctx context.Context, sessionID string, cart models.CartView)
}

type nopNotifier struct{}

func (nopNotifier) CartChanged(context.Context, string, models.CartView) {}
