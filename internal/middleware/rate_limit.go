package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	// Limites par endpoint
	LoginMaxAttempts = 5
	SearchMaxPerMin  = 30

	// Durées de cooldown
	LoginCooldown = 15 * time.Minute
)

// LoginLimiter compte les échecs de connexion ; cache.LoginAttempts l'implémente
type LoginLimiter interface {
	Cooldown(ctx context.Context, email string) time.Duration
	Count(ctx context.Context, email string) int
	Fail(ctx context.Context, email string, window time.Duration) (int, error)
	Block(ctx context.Context, email string, d time.Duration) error
	Reset(ctx context.Context, email string) error
}

// RequestCounter est un compteur à fenêtre fixe ; cache.RequestCounter l'implémente
type RequestCounter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int, error)
}

// LoginRateLimit limite les tentatives de connexion par email
func LoginRateLimit(limiter LoginLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Lire le body sans le consommer
		bodyBytes, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var input struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal(bodyBytes, &input); err != nil || strings.TrimSpace(input.Email) == "" {
			c.Next()
			return
		}
		email := strings.ToLower(strings.TrimSpace(input.Email))
		ctx := c.Request.Context()

		// Vérifier si l'utilisateur est en cooldown
		if ttl := limiter.Cooldown(ctx, email); ttl > 0 {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de tentatives échouées. Réessayez dans %d minutes", int(ttl.Minutes())),
				"retry_after": int(ttl.Seconds()),
			})
			return
		}

		attempts := limiter.Count(ctx, email)
		if attempts >= LoginMaxAttempts {
			if err := limiter.Block(ctx, email, LoginCooldown); err != nil {
				log.WithError(err).Warn("⚠️ Activation du cooldown impossible")
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de tentatives échouées. Compte bloqué pendant %d minutes", int(LoginCooldown.Minutes())),
				"retry_after": int(LoginCooldown.Seconds()),
			})
			return
		}

		c.Next()

		switch c.Writer.Status() {
		case http.StatusUnauthorized:
			// Login échoué, incrémenter les tentatives
			n, err := limiter.Fail(ctx, email, LoginCooldown)
			if err != nil {
				log.WithError(err).Warn("⚠️ Compteur de tentatives indisponible")
				return
			}
			log.WithField("attempts", n).Info("🔒 Tentative de connexion échouée")
		case http.StatusOK:
			// Login réussi, réinitialiser les tentatives
			if err := limiter.Reset(ctx, email); err != nil {
				log.WithError(err).Warn("⚠️ Réinitialisation des tentatives impossible")
			}
		}
	}
}

// SearchRateLimit limite les recherches (anti-spam)
func SearchRateLimit(counter RequestCounter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "search_requests:" + c.ClientIP()

		requests, err := counter.Hit(c.Request.Context(), key, time.Minute)
		if err != nil {
			// sans compteur on laisse passer
			c.Next()
			return
		}
		if requests > SearchMaxPerMin {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Trop de recherches. Réessayez dans 1 minute",
				"retry_after": 60,
			})
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", SearchMaxPerMin))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", SearchMaxPerMin-requests))
		c.Next()
	}
}
