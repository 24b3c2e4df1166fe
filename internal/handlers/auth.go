package handlers

import (
	"net/http"

	"jewelry_storefront/internal/middleware"
	"jewelry_storefront/internal/models"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Login ouvre la session auprès du backend puis charge la wishlist
func Login(c *gin.Context) {
	st, ok := Store(c)
	if !ok {
		return
	}

	var input models.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, err)
		return
	}

	// 401 seulement pour des identifiants refusés : une panne backend ne
	// doit pas compter comme une tentative ratée
	if err := st.Authenticate(c.Request.Context(), input.Email, input.Password); err != nil {
		c.JSON(StatusFor(err), gin.H{"error": st.Error()})
		return
	}
	st = middleware.RotateSession(c)
	if err := st.FetchWishlist(c.Request.Context()); err != nil {
		log.WithError(err).Warn("⚠️ Wishlist non chargée après connexion")
	}
	c.JSON(http.StatusOK, st.State())
}

func Register(c *gin.Context) {
	st, ok := Store(c)
	if !ok {
		return
	}

	var input models.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, err)
		return
	}

	if err := st.SignUp(c.Request.Context(), input); err != nil {
		c.JSON(StatusFor(err), gin.H{"error": st.Error()})
		return
	}
	st = middleware.RotateSession(c)
	c.JSON(http.StatusCreated, st.State())
}

// Logout remet la session à zéro
func Logout(c *gin.Context) {
	st, ok := Store(c)
	if !ok {
		return
	}
	st.Logout(c.Request.Context())
	middleware.RotateSession(c)
	c.JSON(http.StatusOK, gin.H{"message": "Déconnecté"})
}

// Session retourne l'état courant : identité, panier, wishlist, erreur
func Session(c *gin.Context) {
	st, ok := Store(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, st.State())
}

// ClearError efface le message d'erreur affiché
func ClearError(c *gin.Context) {
	st, ok := Store(c)
	if !ok {
		return
	}
	st.ClearError()
	c.Status(http.StatusNoContent)
}
