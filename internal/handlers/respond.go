// Package handlers expose les actions du Store de session en routes JSON.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"jewelry_storefront/internal/api"
	"jewelry_storefront/internal/middleware"
	"jewelry_storefront/internal/store"

	"github.com/gin-gonic/gin"
)

// StatusFor traduit une erreur du store ou du backend en code HTTP
func StatusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, store.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if apiErr.Status >= 400 && apiErr.Status < 500 {
			return apiErr.Status
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func message(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// Fail répond {"error": ...} avec le code adapté
func Fail(c *gin.Context, err error) {
	c.JSON(StatusFor(err), gin.H{"error": message(err)})
}

// Store retourne le Store de la requête ; la route répond 500 s'il manque
func Store(c *gin.Context) (*store.Store, bool) {
	st := middleware.CurrentStore(c)
	if st == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session indisponible"})
		return nil, false
	}
	return st, true
}

// BadRequest répond à un corps de requête invalide
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide", "details": err.Error()})
}
