package middleware

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// AuditAdminAction journalise le résultat d'une écriture admin
func AuditAdminAction(action, resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		entry := log.WithFields(log.Fields{
			"action":      action,
			"resource":    resource,
			"resource_id": c.Param("id"),
			"status":      c.Writer.Status(),
		})
		if st := CurrentStore(c); st != nil {
			entry = entry.WithField("session", st.ID())
			if u := st.Identity().User; u != nil {
				entry = entry.WithField("user_id", u.ID)
			}
		}

		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			entry.Info("📝 Action admin")
		} else {
			entry.Warn("📝 Action admin échouée")
		}
	}
}
