package admin

import (
	"net/http"

	"jewelry_storefront/internal/handlers"
	"jewelry_storefront/internal/models"

	"github.com/gin-gonic/gin"
)

func Dashboard(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}
	d, err := st.Dashboard(c.Request.Context())
	if err != nil {
		handlers.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func CreateOffer(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}

	var input models.OfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		handlers.BadRequest(c, err)
		return
	}

	id, err := st.CreateOffer(c.Request.Context(), input)
	if err != nil {
		handlers.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Offre créée"})
}
