package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Connect initialise la connexion Redis partagée par les snapshots,
// le pub/sub panier et le rate limit
func Connect(ctx context.Context, addr, password string) (*redis.Client, error) {
	if addr == "" {
		return nil, fmt.Errorf("REDIS_HOST non configuré")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0, // Base de données par défaut
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	// Test de connexion
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("impossible de se connecter à Redis: %w", err)
	}

	log.WithField("addr", addr).Info("✅ Redis connecté avec succès")
	return rdb, nil
}

// Keys construit les clés Redis sous l'espace de noms du storefront
type Keys struct {
	Namespace string
}

func (k Keys) Snapshot(sessionID string) string {
	return fmt.Sprintf("%s:%s", k.Namespace, sessionID)
}

func (k Keys) CartChannel(sessionID string) string {
	return fmt.Sprintf("%s:cart:%s", k.Namespace, sessionID)
}

func (k Keys) LoginAttempts(email string) string {
	return fmt.Sprintf("%s:login_attempts:%s", k.Namespace, email)
}

func (k Keys) LoginCooldown(email string) string {
	return fmt.Sprintf("%s:login_cooldown:%s", k.Namespace, email)
}
