package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jewelry_storefront/internal/models"
	"jewelry_storefront/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func storeAs(role models.Role) *store.Store {
	st := store.New("11111111-1111-1111-1111-111111111111", nil, store.Options{})
	if role != "" {
		st.Restore(store.Snapshot{
			Identity:        store.Identity{User: &models.User{ID: "u1", Role: role}, Token: "opaque"},
			IsAuthenticated: true,
		})
	}
	return st
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGuards(t *testing.T) {
	tests := []struct {
		name        string
		role        models.Role
		wantAuth    int
		wantAdmin   int
		adminTarget string
	}{
		{"anonyme", "", http.StatusUnauthorized, http.StatusUnauthorized, "/login"},
		{"client", models.RoleCustomer, http.StatusOK, http.StatusForbidden, "/"},
		{"admin", models.RoleAdmin, http.StatusOK, http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(WithStore(storeAs(tt.role)))
			ok := func(c *gin.Context) { c.Status(http.StatusOK) }
			r.GET("/orders", AuthRequired(), ok)
			r.GET("/admin", RequireAdmin, ok)

			assert.Equal(t, tt.wantAuth, serve(r, http.MethodGet, "/orders", "").Code)
			w := serve(r, http.MethodGet, "/admin", "")
			assert.Equal(t, tt.wantAdmin, w.Code)
			if tt.adminTarget != "" {
				assert.Contains(t, w.Body.String(), `"redirect":"`+tt.adminTarget+`"`)
			}
		})
	}
}

func TestSessionsIssuesCookieAndReusesStore(t *testing.T) {
	manager := store.NewManager(nil, store.Options{})
	r := gin.New()
	r.Use(Sessions(NewCookieStore("test-secret", false), manager))
	r.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, "%s", CurrentStore(c).ID())
	})

	first := serve(r, http.MethodGet, "/id", "")
	require.Equal(t, http.StatusOK, first.Code)
	cookies := first.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.AddCookie(cookies[0])
	second := httptest.NewRecorder()
	r.ServeHTTP(second, req)

	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Empty(t, second.Result().Cookies())
	assert.Equal(t, 1, manager.Len())
}

func TestRotateSessionIssuesFreshID(t *testing.T) {
	manager := store.NewManager(nil, store.Options{Persister: store.NewMemoryPersister()})
	r := gin.New()
	r.Use(Sessions(NewCookieStore("test-secret", false), manager))
	r.GET("/id", func(c *gin.Context) {
		st := CurrentStore(c)
		c.String(http.StatusOK, "%s %d", st.ID(), st.Cart().Count)
	})
	r.POST("/rotate", func(c *gin.Context) {
		require.NoError(t, CurrentStore(c).AddToCart(c.Request.Context(), models.CartLine{ProductID: "A"}))
		c.String(http.StatusOK, "%s", RotateSession(c).ID())
	})

	call := func(method, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	first := call(http.MethodGet, "/id", nil)
	before := first.Result().Cookies()[0]
	oldID := strings.Fields(first.Body.String())[0]

	rotated := call(http.MethodPost, "/rotate", before)
	require.Equal(t, http.StatusOK, rotated.Code)
	newID := rotated.Body.String()
	assert.NotEqual(t, oldID, newID)
	cookies := rotated.Result().Cookies()
	require.Len(t, cookies, 1)

	// l'ancien cookie ne donne plus accès à l'état de la session
	stale := strings.Fields(call(http.MethodGet, "/id", before).Body.String())
	assert.Equal(t, "0", stale[1])

	assert.Equal(t, newID+" 1", call(http.MethodGet, "/id", cookies[0]).Body.String())
}

func TestRotateSessionWithoutSessionsKeepsStore(t *testing.T) {
	st := storeAs("")
	r := gin.New()
	r.Use(WithStore(st))
	r.GET("/rotate", func(c *gin.Context) { c.String(http.StatusOK, "%s", RotateSession(c).ID()) })

	w := serve(r, http.MethodGet, "/rotate", "")
	assert.Equal(t, st.ID(), w.Body.String())
}

func TestSessionsIgnoresForgedCookie(t *testing.T) {
	manager := store.NewManager(nil, store.Options{})
	r := gin.New()
	r.Use(Sessions(NewCookieStore("test-secret", false), manager))
	r.GET("/id", func(c *gin.Context) { c.String(http.StatusOK, "%s", CurrentStore(c).ID()) })

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "forged"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
	assert.Len(t, w.Result().Cookies(), 1)
}

type fakeLimiter struct {
	cooldown time.Duration
	count    int
	failed   int
	blocked  bool
	reset    bool
}

func (f *fakeLimiter) Cooldown(context.Context, string) time.Duration { return f.cooldown }
func (f *fakeLimiter) Count(context.Context, string) int              { return f.count }
func (f *fakeLimiter) Fail(context.Context, string, time.Duration) (int, error) {
	f.failed++
	return f.count + f.failed, nil
}
func (f *fakeLimiter) Block(context.Context, string, time.Duration) error {
	f.blocked = true
	return nil
}
func (f *fakeLimiter) Reset(context.Context, string) error {
	f.reset = true
	return nil
}

func loginRouter(limiter LoginLimiter, status int) *gin.Engine {
	r := gin.New()
	r.POST("/login", LoginRateLimit(limiter), func(c *gin.Context) {
		var in models.LoginRequest
		_ = c.ShouldBindJSON(&in)
		c.JSON(status, gin.H{"email": in.Email})
	})
	return r
}

func TestLoginRateLimitCountsFailures(t *testing.T) {
	limiter := &fakeLimiter{}
	w := serve(loginRouter(limiter, http.StatusUnauthorized), http.MethodPost, "/login", `{"email":"Ana@example.com","password":"x"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	// le body reste lisible par le handler
	assert.Contains(t, w.Body.String(), "Ana@example.com")
	assert.Equal(t, 1, limiter.failed)
}

func TestLoginRateLimitResetsOnSuccess(t *testing.T) {
	limiter := &fakeLimiter{count: 2}
	w := serve(loginRouter(limiter, http.StatusOK), http.MethodPost, "/login", `{"email":"ana@example.com"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, limiter.reset)
}

func TestLoginRateLimitBlocks(t *testing.T) {
	limiter := &fakeLimiter{count: LoginMaxAttempts}
	w := serve(loginRouter(limiter, http.StatusOK), http.MethodPost, "/login", `{"email":"ana@example.com"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.True(t, limiter.blocked)

	limiter = &fakeLimiter{cooldown: 10 * time.Minute}
	w = serve(loginRouter(limiter, http.StatusOK), http.MethodPost, "/login", `{"email":"ana@example.com"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `"retry_after":600`)
}

type fakeCounter struct{ hits map[string]int }

func (f *fakeCounter) Hit(_ context.Context, key string, _ time.Duration) (int, error) {
	f.hits[key]++
	return f.hits[key], nil
}

func TestSearchRateLimit(t *testing.T) {
	counter := &fakeCounter{hits: map[string]int{}}
	r := gin.New()
	r.GET("/search", SearchRateLimit(counter), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < SearchMaxPerMin; i++ {
		require.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/search?q=or", "").Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodGet, "/search?q=or", "").Code)
}
