package middleware

import (
	"net/http"

	"jewelry_storefront/internal/store"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func guard(c *gin.Context, view store.View) {
	st := CurrentStore(c)
	if st == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Session indisponible"})
		return
	}

	switch decision := st.Authorize(c.Request.Context(), view); decision {
	case store.Allow:
		c.Next()
	case store.RedirectLogin:
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié", "redirect": decision.String()})
	default:
		log.WithField("session", st.ID()).WithField("path", c.FullPath()).Warn("❌ Accès admin refusé")
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Accès réservé aux administrateurs", "redirect": decision.String()})
	}
}

// AuthRequired protège les vues réservées aux sessions authentifiées
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		guard(c, store.ViewProtected)
	}
}

// RequireAdmin vérifie que l'utilisateur a le rôle "admin"
func RequireAdmin(c *gin.Context) {
	guard(c, store.ViewPrivileged)
}
