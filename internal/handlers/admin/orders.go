package admin

import (
	"net/http"

	"jewelry_storefront/internal/handlers"
	"jewelry_storefront/internal/models"

	"github.com/gin-gonic/gin"
)

// UpdateOrderStatus transmet le nouveau statut ; la transition est validée par le backend
func UpdateOrderStatus(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}

	var input models.StatusUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		handlers.BadRequest(c, err)
		return
	}

	if err := st.UpdateOrderStatus(c.Request.Context(), c.Param("id"), input); err != nil {
		handlers.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Statut mis à jour", "orders": st.Orders()})
}

// OrderStatusOptions liste les statuts proposés dans le formulaire admin
func OrderStatusOptions(c *gin.Context) {
	current := models.OrderStatus(c.Query("current"))
	if current == "" {
		c.JSON(http.StatusOK, gin.H{"statuses": models.OrderStatuses})
		return
	}
	if !current.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut inconnu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"statuses": models.OrderStatuses,
		"next":     current.Next(),
		"terminal": current.IsTerminal(),
	})
}
