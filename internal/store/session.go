package store

import "jewelry_storefront/internal/models"

// Identity est l'identité authentifiée, persistée dans le snapshot
type Identity struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Authenticated : la présence du jeton équivaut à une session authentifiée
func (i Identity) Authenticated() bool {
	return i.Token != "" && i.User != nil
}

func (i Identity) IsAdmin() bool {
	return i.Authenticated() && i.User.IsAdmin()
}

// View classe les vues de l'interface pour le contrôle d'accès
type View int

const (
	ViewPublic View = iota
	ViewProtected
	ViewPrivileged
)

type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "/login"
	case RedirectHome:
		return "/"
	}
	return "unknown"
}

// Authorize : une vue privilégiée exige authentifié ∧ admin
func (i Identity) Authorize(v View) Decision {
	switch v {
	case ViewPublic:
		return Allow
	case ViewProtected:
		if !i.Authenticated() {
			return RedirectLogin
		}
		return Allow
	default:
		if !i.Authenticated() {
			return RedirectLogin
		}
		if !i.User.IsAdmin() {
			return RedirectHome
		}
		return Allow
	}
}
