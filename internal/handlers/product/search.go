package product

import (
	"net/http"

	"jewelry_storefront/internal/handlers"

	"github.com/gin-gonic/gin"
)

// Search renvoie toujours le résultat de la recherche la plus récente ;
// "stale" signale qu'une requête plus récente a déjà répondu.
func Search(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}

	q := c.Query("q")
	result, applied, err := st.Search(c.Request.Context(), q)
	if err != nil {
		handlers.Fail(c, err)
		return
	}

	query, _ := st.SearchResult()
	c.JSON(http.StatusOK, gin.H{
		"query":      query,
		"products":   result.Products,
		"categories": result.Categories,
		"stale":      !applied,
	})
}
