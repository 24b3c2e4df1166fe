package product

import (
	"net/http"

	"jewelry_storefront/internal/handlers"

	"github.com/gin-gonic/gin"
)

func ListCategories(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}
	if err := st.FetchCategories(c.Request.Context()); err != nil {
		handlers.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st.Categories())
}
