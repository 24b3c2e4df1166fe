package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginAttempts compte les échecs de connexion par email
type LoginAttempts struct {
	rdb  redis.UniversalClient
	keys Keys
}

func NewLoginAttempts(rdb redis.UniversalClient, namespace string) *LoginAttempts {
	return &LoginAttempts{rdb: rdb, keys: Keys{Namespace: namespace}}
}

// Cooldown retourne le temps de blocage restant, 0 si aucun
func (a *LoginAttempts) Cooldown(ctx context.Context, email string) time.Duration {
	ttl, err := a.rdb.TTL(ctx, a.keys.LoginCooldown(email)).Result()
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}

func (a *LoginAttempts) Count(ctx context.Context, email string) int {
	n, err := a.rdb.Get(ctx, a.keys.LoginAttempts(email)).Int()
	if err != nil {
		return 0
	}
	return n
}

// Fail incrémente le compteur et repousse sa fenêtre
func (a *LoginAttempts) Fail(ctx context.Context, email string, window time.Duration) (int, error) {
	key := a.keys.LoginAttempts(email)
	pipe := a.rdb.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return int(incr.Val()), nil
}

// Block active le cooldown et remet le compteur à zéro
func (a *LoginAttempts) Block(ctx context.Context, email string, d time.Duration) error {
	pipe := a.rdb.TxPipeline()
	pipe.Set(ctx, a.keys.LoginCooldown(email), "1", d)
	pipe.Del(ctx, a.keys.LoginAttempts(email))
	_, err := pipe.Exec(ctx)
	return err
}

func (a *LoginAttempts) Reset(ctx context.Context, email string) error {
	return a.rdb.Del(ctx, a.keys.LoginAttempts(email), a.keys.LoginCooldown(email)).Err()
}

// RequestCounter compte les requêtes sur une fenêtre fixe
type RequestCounter struct {
	rdb  redis.UniversalClient
	keys Keys
}

func NewRequestCounter(rdb redis.UniversalClient, namespace string) *RequestCounter {
	return &RequestCounter{rdb: rdb, keys: Keys{Namespace: namespace}}
}

// Hit incrémente le compteur ; la fenêtre démarre au premier appel
func (r *RequestCounter) Hit(ctx context.Context, key string, window time.Duration) (int, error) {
	key = r.keys.Namespace + ":" + key
	pipe := r.rdb.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return int(incr.Val()), nil
}
