package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired lit le claim exp sans vérifier la signature (le secret reste
// côté backend). Un jeton opaque ou sans exp n'est pas considéré comme expiré :
// le backend tranchera avec un 401.
func TokenExpired(token string, now time.Time) bool {
	if token == "" {
		return true
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !now.Before(exp.Time)
}

// TokenExpiry retourne l'expiration du jeton si elle est lisible
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
