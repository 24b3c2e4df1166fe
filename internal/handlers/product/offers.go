package product

import (
	"net/http"

	"jewelry_storefront/internal/handlers"

	"github.com/gin-gonic/gin"
)

func ListOffers(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}
	offers, err := st.Offers(c.Request.Context())
	if err != nil {
		handlers.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}
