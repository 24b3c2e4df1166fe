package user

import (
	"net/http"

	"jewelry_storefront/internal/handlers"

	"github.com/gin-gonic/gin"
)

// GetOrders retourne l'historique de commandes (lecture seule)
func GetOrders(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}
	if err := st.FetchOrders(c.Request.Context()); err != nil {
		handlers.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": st.Orders()})
}
