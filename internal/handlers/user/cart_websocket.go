package user

import (
	"context"
	"net/http"
	"time"

	"jewelry_storefront/internal/cache"
	"jewelry_storefront/internal/handlers"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const pingInterval = 30 * time.Second

// CartSubscriber ouvre l'abonnement aux changements de panier d'une session
type CartSubscriber interface {
	Subscribe(ctx context.Context, sessionID string) *redis.PubSub
}

// CartWebSocket gère la synchronisation temps réel du panier entre onglets
func CartWebSocket(events CartSubscriber, allowedOrigins []string) gin.HandlerFunc {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			for _, o := range allowedOrigins {
				if o == origin {
					return true
				}
			}
			return false
		},
	}

	return func(c *gin.Context) {
		st, ok := handlers.Store(c)
		if !ok {
			return
		}

		// Upgrade vers WebSocket
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.WithError(err).Warn("❌ Erreur upgrade WebSocket")
			return
		}
		defer conn.Close()

		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		// S'abonner au canal Redis de la session
		pubsub := events.Subscribe(ctx, st.ID())
		defer pubsub.Close()
		ch := pubsub.Channel()

		// Le client ne parle pas ; la lecture sert à détecter la fermeture
		go func() {
			defer cancel()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		if err := conn.WriteJSON(cache.CartEvent{Type: "connected", Cart: st.Cart()}); err != nil {
			return
		}

		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				ev, err := cache.DecodeCartEvent(msg.Payload)
				if err != nil {
					log.WithError(err).Warn("⚠️ Message panier illisible")
					continue
				}
				if err := conn.WriteJSON(ev); err != nil {
					log.WithError(err).Debug("Envoi WebSocket interrompu")
					return
				}
			case <-ticker.C:
				// Ping pour garder la connexion active
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}
}
