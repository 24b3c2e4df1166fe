package user

import (
	"net/http"

	"jewelry_storefront/internal/handlers"
	"jewelry_storefront/internal/models"

	"github.com/gin-gonic/gin"
)

type addToCartInput struct {
	ProductID     string `json:"productId" binding:"required"`
	Quantity      int    `json:"quantity"`
	SelectedSize  string `json:"selectedSize"`
	SelectedColor string `json:"selectedColor"`
	Customization string `json:"customization"`
}

type quantityInput struct {
	Quantity      int    `json:"quantity"`
	SelectedSize  string `json:"selectedSize"`
	SelectedColor string `json:"selectedColor"`
}

// lineKey lit la variante depuis la query (?size=&color=)
func lineKey(c *gin.Context) models.LineKey {
	return models.LineKey{
		ProductID:     c.Param("productId"),
		SelectedSize:  c.Query("size"),
		SelectedColor: c.Query("color"),
	}
}

// GetCart retourne le panier avec le sous-total calculé sur le catalogue en cache
func GetCart(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, st.Cart())
}

func AddToCart(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}

	var input addToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		handlers.BadRequest(c, err)
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	err := st.AddToCart(c.Request.Context(), models.CartLine{
		ProductID:     input.ProductID,
		Quantity:      input.Quantity,
		SelectedSize:  input.SelectedSize,
		SelectedColor: input.SelectedColor,
		Customization: input.Customization,
	})
	if err != nil {
		handlers.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st.Cart())
}

// UpdateCartItem modifie la quantité d'une ligne ; une ligne inconnue est ignorée
func UpdateCartItem(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}

	var input quantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		handlers.BadRequest(c, err)
		return
	}

	key := models.LineKey{
		ProductID:     c.Param("productId"),
		SelectedSize:  input.SelectedSize,
		SelectedColor: input.SelectedColor,
	}
	st.UpdateCartQuantity(c.Request.Context(), key, input.Quantity)
	c.JSON(http.StatusOK, st.Cart())
}

// UpdateProductQuantity applique la quantité à toutes les variantes du produit
func UpdateProductQuantity(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}

	var input quantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		handlers.BadRequest(c, err)
		return
	}
	st.UpdateProductQuantity(c.Request.Context(), c.Param("productId"), input.Quantity)
	c.JSON(http.StatusOK, st.Cart())
}

func RemoveCartItem(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}
	st.RemoveFromCart(c.Request.Context(), lineKey(c))
	c.JSON(http.StatusOK, st.Cart())
}

func RemoveProduct(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}
	st.RemoveProductFromCart(c.Request.Context(), c.Param("productId"))
	c.JSON(http.StatusOK, st.Cart())
}

func ClearCart(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}
	st.ClearCart(c.Request.Context())
	c.JSON(http.StatusOK, st.Cart())
}
