package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config regroupe les variables d'environnement du service storefront
type Config struct {
	Port          string        `env:"PORT,default=8080"`
	APIBaseURL    string        `env:"API_BASE_URL,default=http://localhost:5000/api"`
	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT,default=15s"`
	RedisHost     string        `env:"REDIS_HOST,default=localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	SessionSecret string        `env:"SESSION_SECRET,required"`
	SecureCookies bool          `env:"SECURE_COOKIES,default=false"`
	CORSOrigins   string        `env:"CORS_ORIGINS,default=http://localhost:5173"`
	SnapshotTTL   time.Duration `env:"SNAPSHOT_TTL,default=720h"`
	Namespace     string        `env:"STORAGE_NAMESPACE,default=jewelry-store"`
	LogLevel      string        `env:"LOG_LEVEL,default=info"`
}

// Load charge .env puis décode l'environnement dans Config
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé, on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}

	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, fmt.Errorf("configuration invalide: %w", err)
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	return &cfg, nil
}

// Origins retourne la liste des origines CORS autorisées
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// ConfigureLogger applique le niveau de log demandé
func (c *Config) ConfigureLogger() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.Warnf("⚠️ LOG_LEVEL inconnu %q, niveau info utilisé", c.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
