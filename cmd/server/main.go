package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jewelry_storefront/internal/api"
	"jewelry_storefront/internal/cache"
	"jewelry_storefront/internal/config"
	"jewelry_storefront/internal/middleware"
	"jewelry_storefront/internal/routes"
	"jewelry_storefront/internal/store"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	sweepInterval = 5 * time.Minute
	sessionIdle   = 30 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	cfg.ConfigureLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := cache.Connect(ctx, cfg.RedisHost, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer rdb.Close()

	backend := api.New(cfg.APIBaseURL, cfg.HTTPTimeout)
	log.WithField("base_url", backend.BaseURL()).Info("✅ Client backend initialisé")

	events := cache.NewCartEvents(rdb, cfg.Namespace)
	manager := store.NewManager(backend, store.Options{
		Persister: cache.NewSnapshotStore(rdb, cfg.Namespace, cfg.SnapshotTTL),
		Notifier:  events,
	})
	go sweepSessions(ctx, manager)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	routes.RegisterRoutes(r, routes.Deps{
		Manager:  manager,
		Cookies:  middleware.NewCookieStore(cfg.SessionSecret, cfg.SecureCookies),
		Origins:  cfg.Origins(),
		Limiter:  cache.NewLoginAttempts(rdb, cfg.Namespace),
		Counter:  cache.NewRequestCounter(rdb, cfg.Namespace),
		CartSync: events,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("🚀 Storefront lancé")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Serveur arrêté: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("🛑 Arrêt en cours")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("⚠️ Arrêt forcé du serveur")
	}
}

// sweepSessions libère la mémoire des sessions inactives ; leur snapshot reste dans Redis
func sweepSessions(ctx context.Context, manager *store.Manager) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			manager.Sweep(sessionIdle)
		}
	}
}
