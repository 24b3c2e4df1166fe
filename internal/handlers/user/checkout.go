package user

import (
	"net/http"

	"jewelry_storefront/internal/handlers"
	"jewelry_storefront/internal/models"
	"jewelry_storefront/internal/store"

	"github.com/gin-gonic/gin"
)

type quoteInput struct {
	ShippingOption string         `json:"shippingOption"`
	Coupon         *models.Coupon `json:"coupon"`
}

// GetQuote calcule le récapitulatif (sous-total, port, taxe, remise, total)
func GetQuote(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}

	var input quoteInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			handlers.BadRequest(c, err)
			return
		}
	}
	if input.ShippingOption == "" {
		input.ShippingOption = c.Query("shipping")
	}

	quote, err := st.Quote(c.Request.Context(), input.ShippingOption, input.Coupon)
	if err != nil {
		handlers.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Checkout soumet la commande ; le panier n'est vidé qu'en cas de succès
func Checkout(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}

	var input store.CheckoutRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		handlers.BadRequest(c, err)
		return
	}

	created, quote, err := st.Checkout(c.Request.Context(), input)
	if err != nil {
		handlers.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"orderId":     created.OrderID,
		"orderNumber": created.OrderNumber,
		"totals":      quote.Totals,
	})
}
