package routes

import (
	"net/http"

	"jewelry_storefront/internal/handlers"
	"jewelry_storefront/internal/handlers/admin"
	"jewelry_storefront/internal/handlers/product"
	"jewelry_storefront/internal/handlers/user"
	"jewelry_storefront/internal/metrics"
	"jewelry_storefront/internal/middleware"
	"jewelry_storefront/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// Deps regroupe ce dont les routes ont besoin
type Deps struct {
	Manager  *store.Manager
	Cookies  sessions.Store
	Origins  []string
	Limiter  middleware.LoginLimiter
	Counter  middleware.RequestCounter
	CartSync user.CartSubscriber
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(metrics.Middleware())
	r.Use(middleware.CORS(d.Origins))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api", middleware.Sessions(d.Cookies, d.Manager))
	registerAPI(api, d)
}

func registerAPI(api *gin.RouterGroup, d Deps) {
	// Session
	auth := api.Group("/auth")
	{
		if d.Limiter != nil {
			auth.POST("/login", middleware.LoginRateLimit(d.Limiter), handlers.Login)
		} else {
			auth.POST("/login", handlers.Login)
		}
		auth.POST("/register", handlers.Register)
		auth.POST("/logout", handlers.Logout)
	}
	api.GET("/session", handlers.Session)
	api.DELETE("/session/error", handlers.ClearError)

	// Catalogue
	api.GET("/products", product.ListProducts)
	api.GET("/products/featured", product.FeaturedProducts)
	api.GET("/products/:id", product.GetProduct)
	api.GET("/categories", product.ListCategories)
	api.GET("/offers", product.ListOffers)
	if d.Counter != nil {
		api.GET("/search", middleware.SearchRateLimit(d.Counter), product.Search)
	} else {
		api.GET("/search", product.Search)
	}

	// Panier : ouvert aux visiteurs
	cart := api.Group("/cart")
	{
		cart.GET("", user.GetCart)
		cart.POST("/items", user.AddToCart)
		cart.PUT("/items/:productId", user.UpdateCartItem)
		cart.DELETE("/items/:productId", user.RemoveCartItem)
		cart.PUT("/products/:productId", user.UpdateProductQuantity)
		cart.DELETE("/products/:productId", user.RemoveProduct)
		cart.DELETE("", user.ClearCart)
		if d.CartSync != nil {
			cart.GET("/ws", user.CartWebSocket(d.CartSync, d.Origins))
		}
	}
	api.GET("/checkout/quote", user.GetQuote)
	api.POST("/checkout/quote", user.GetQuote)

	// Vues protégées
	protected := api.Group("", middleware.AuthRequired())
	{
		protected.GET("/wishlist", user.GetWishlist)
		protected.POST("/wishlist/:productId", user.AddToWishlist)
		protected.DELETE("/wishlist/:productId", user.RemoveFromWishlist)
		protected.GET("/orders", user.GetOrders)
		protected.POST("/checkout", user.Checkout)
	}

	// Vues privilégiées
	adm := api.Group("/admin", middleware.RequireAdmin)
	{
		adm.GET("/dashboard", admin.Dashboard)
		adm.POST("/products", middleware.AuditAdminAction("create", "product"), admin.CreateProduct)
		adm.PUT("/products/:id", middleware.AuditAdminAction("update", "product"), admin.UpdateProduct)
		adm.DELETE("/products/:id", middleware.AuditAdminAction("delete", "product"), admin.DeleteProduct)
		adm.GET("/orders/statuses", admin.OrderStatusOptions)
		adm.PUT("/orders/:id/status", middleware.AuditAdminAction("update_status", "order"), admin.UpdateOrderStatus)
		adm.POST("/offers", middleware.AuditAdminAction("create", "offer"), admin.CreateOffer)
	}
}
