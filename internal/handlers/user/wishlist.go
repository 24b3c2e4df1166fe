package user

import (
	"net/http"

	"jewelry_storefront/internal/handlers"

	"github.com/gin-gonic/gin"
)

func wishlistBody(ids []string, products any) gin.H {
	return gin.H{"ids": ids, "items": products}
}

// GetWishlist recharge la wishlist depuis le backend
func GetWishlist(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}
	if err := st.FetchWishlist(c.Request.Context()); err != nil {
		handlers.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, wishlistBody(st.WishlistIDs(), st.WishlistProducts()))
}

// AddToWishlist : en cas d'échec l'ajout optimiste est déjà annulé
func AddToWishlist(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}
	if err := st.AddToWishlist(c.Request.Context(), c.Param("productId")); err != nil {
		handlers.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, wishlistBody(st.WishlistIDs(), st.WishlistProducts()))
}

func RemoveFromWishlist(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}
	if err := st.RemoveFromWishlist(c.Request.Context(), c.Param("productId")); err != nil {
		handlers.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, wishlistBody(st.WishlistIDs(), st.WishlistProducts()))
}
