package cache

import (
	"context"
	"encoding/json"

	"jewelry_storefront/internal/models"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// CartEvent est le message publié à chaque changement de panier
type CartEvent struct {
	Type string          `json:"type"`
	Cart models.CartView `json:"cart"`
}

// CartEvents diffuse les changements de panier aux onglets ouverts
type CartEvents struct {
	rdb  redis.UniversalClient
	keys Keys
}

func NewCartEvents(rdb redis.UniversalClient, namespace string) *CartEvents {
	return &CartEvents{rdb: rdb, keys: Keys{Namespace: namespace}}
}

// CartChanged publie le panier ; un échec n'interrompt pas l'action
func (e *CartEvents) CartChanged(ctx context.Context, sessionID string, cart models.CartView) {
	payload, err := json.Marshal(CartEvent{Type: "cart_updated", Cart: cart})
	if err != nil {
		return
	}
	if err := e.rdb.Publish(ctx, e.keys.CartChannel(sessionID), payload).Err(); err != nil {
		log.WithField("session", sessionID).WithError(err).Warn("⚠️ Publication du panier impossible")
	}
}

// Subscribe ouvre l'abonnement aux changements de panier d'une session
func (e *CartEvents) Subscribe(ctx context.Context, sessionID string) *redis.PubSub {
	return e.rdb.Subscribe(ctx, e.keys.CartChannel(sessionID))
}

// DecodeCartEvent relit un message reçu sur le canal panier
func DecodeCartEvent(payload string) (CartEvent, error) {
	var ev CartEvent
	err := json.Unmarshal([]byte(payload), &ev)
	return ev, err
}
