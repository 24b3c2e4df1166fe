package product

import (
	"net/http"

	"jewelry_storefront/internal/api"
	"jewelry_storefront/internal/handlers"
	"jewelry_storefront/internal/models"

	"github.com/gin-gonic/gin"
)

// ListProducts recharge la page demandée et la renvoie avec sa pagination
func ListProducts(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}

	var filter models.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		handlers.BadRequest(c, err)
		return
	}

	if err := st.FetchProducts(c.Request.Context(), filter); err != nil {
		handlers.Fail(c, err)
		return
	}
	products, pagination := st.Products()
	c.JSON(http.StatusOK, models.ProductList{Products: products, Pagination: pagination})
}

// FeaturedProducts filtre la dernière liste chargée
func FeaturedProducts(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}
	if products, _ := st.Products(); len(products) == 0 {
		if err := st.FetchProducts(c.Request.Context(), models.ProductFilter{}); err != nil {
			handlers.Fail(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"products": st.FeaturedProducts()})
}

// GetProduct : un produit introuvable rend un 404 affichable, pas une erreur
func GetProduct(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}

	p, err := st.FetchProduct(c.Request.Context(), c.Param("id"))
	if api.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	if err != nil {
		handlers.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":            p,
		"discountPercentage": p.DiscountPercentage(),
		"inWishlist":         st.InWishlist(p.ID),
	})
}
