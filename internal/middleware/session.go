package middleware

import (
	"net/http"

	"jewelry_storefront/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	log "github.com/sirupsen/logrus"
)

const (
	SessionCookieName = "storefront_session"
	sessionIDKey      = "sid"
	storeContextKey   = "store"
	handleContextKey  = "session_handle"
)

// sessionHandle garde de quoi réémettre le cookie quand l'id change
type sessionHandle struct {
	sess    *sessions.Session
	manager *store.Manager
}

func (h *sessionHandle) save(c *gin.Context, sid string) {
	h.sess.Values[sessionIDKey] = sid
	if err := h.sess.Save(c.Request, c.Writer); err != nil {
		log.WithError(err).Warn("⚠️ Écriture du cookie de session impossible")
	}
}

// NewCookieStore configure le cookie de session (30 jours, comme les snapshots)
func NewCookieStore(secret string, secure bool) *sessions.CookieStore {
	cookies := sessions.NewCookieStore([]byte(secret))
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   secure, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
	return cookies
}

// Sessions résout le Store de la session courante et le place dans le contexte gin.
// Un cookie absent ou illisible ouvre une nouvelle session.
func Sessions(cookies sessions.Store, manager *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := cookies.Get(c.Request, SessionCookieName)
		if err != nil {
			log.WithError(err).Debug("Cookie de session illisible, nouvelle session")
		}
		if sess == nil {
			sess = sessions.NewSession(cookies, SessionCookieName)
		}

		h := &sessionHandle{sess: sess, manager: manager}
		sid, _ := sess.Values[sessionIDKey].(string)
		st := manager.Get(c.Request.Context(), sid)
		if st.ID() != sid {
			h.save(c, st.ID())
		}

		c.Set(storeContextKey, st)
		c.Set(handleContextKey, h)
		c.Next()
	}
}

// CurrentStore retourne le Store posé par Sessions
func CurrentStore(c *gin.Context) *store.Store {
	v, ok := c.Get(storeContextKey)
	if !ok {
		return nil
	}
	st, _ := v.(*store.Store)
	return st
}

// RotateSession change l'id de session (connexion, déconnexion) et réémet le
// cookie. Sans Sessions en amont, le Store courant est renvoyé tel quel.
func RotateSession(c *gin.Context) *store.Store {
	st := CurrentStore(c)
	v, ok := c.Get(handleContextKey)
	if !ok || st == nil {
		return st
	}
	h := v.(*sessionHandle)

	next := h.manager.Rotate(c.Request.Context(), st)
	h.save(c, next.ID())
	c.Set(storeContextKey, next)
	return next
}

// WithStore place directement un Store dans le contexte (tests, outils)
func WithStore(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(storeContextKey, st)
		c.Next()
	}
}
