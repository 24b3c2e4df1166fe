package store

import (
	"context"
	"fmt"
	"strings"

	"jewelry_storefront/internal/api"
	"jewelry_storefront/internal/models"
	"jewelry_storefront/internal/utils"
)

func (s *Store) Identity() Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity.Authenticated()
}

// Authorize applique le contrôle d'accès d'une vue
func (s *Store) Authorize(ctx context.Context, v View) Decision {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireLocked(ctx)
	return s.identity.Authorize(v)
}

// Login délègue la vérification au backend. En cas d'échec l'état précédent
// est conservé tel quel, seul le message d'erreur change.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	return s.Authenticate(ctx, email, password) == nil
}

// Authenticate est Login avec l'erreur : un rejet des identifiants reste un
// *api.Error 401, une panne backend garde son propre statut.
func (s *Store) Authenticate(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return s.fail("login", invalid("email et mot de passe requis"))
	}

	resp, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return s.fail("login", err)
	}
	return s.signIn(ctx, "login", resp)
}

func (s *Store) Register(ctx context.Context, in models.RegisterRequest) bool {
	return s.SignUp(ctx, in) == nil
}

func (s *Store) SignUp(ctx context.Context, in models.RegisterRequest) error {
	in.Email = strings.TrimSpace(in.Email)
	switch {
	case in.Email == "" || in.Password == "":
		return s.fail("register", invalid("email et mot de passe requis"))
	case strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "":
		return s.fail("register", invalid("prénom et nom requis"))
	}

	resp, err := s.backend.Register(ctx, in)
	if err != nil {
		return s.fail("register", err)
	}
	return s.signIn(ctx, "register", resp)
}

func (s *Store) signIn(ctx context.Context, op string, resp *models.AuthResponse) error {
	if resp == nil || resp.AccessToken == "" {
		return s.fail(op, fmt.Errorf("%s: réponse d'authentification sans jeton", op))
	}
	user := resp.User
	if user.Role == "" {
		user.Role = models.RoleCustomer
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = Identity{User: &user, Token: resp.AccessToken}
	s.lastErr = ""
	s.persistLocked(ctx)
	s.logger(op).WithField("user_id", user.ID).Info("✅ Session authentifiée")
	return nil
}

// Logout est une remise à zéro complète : identité, jeton, panier, wishlist, commandes
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked(ctx)
	s.logger("logout").Info("👋 Session fermée")
}

func (s *Store) resetLocked(ctx context.Context) {
	s.identity = Identity{}
	s.cart.Clear()
	s.wishlist.reset()
	s.orders = nil
	s.search.reset()
	s.lastErr = ""

	if s.persister != nil {
		if err := s.persister.Delete(ctx, s.id); err != nil {
			s.logger("logout").WithError(err).Warn("⚠️ Suppression du snapshot impossible")
		}
	}
	s.notifier.CartChanged(ctx, s.id, s.cartViewLocked())
}

// expireLocked détruit la session si le jeton est expiré
func (s *Store) expireLocked(ctx context.Context) {
	if s.identity.Token == "" || !utils.TokenExpired(s.identity.Token, s.now()) {
		return
	}
	s.logger("token").Warn("⚠️ Jeton expiré, session réinitialisée")
	s.resetLocked(ctx)
}

// token retourne le jeton courant ou ErrUnauthenticated
func (s *Store) token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireLocked(ctx)
	if !s.identity.Authenticated() {
		return "", ErrUnauthenticated
	}
	return s.identity.Token, nil
}

// adminToken applique la garde de rôle avant tout appel privilégié
func (s *Store) adminToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireLocked(ctx)
	switch s.identity.Authorize(ViewPrivileged) {
	case RedirectLogin:
		return "", ErrUnauthenticated
	case RedirectHome:
		return "", ErrForbidden
	}
	return s.identity.Token, nil
}

// authFailed invalide la session si le backend rejette le jeton
func (s *Store) authFailed(ctx context.Context, err error) {
	if !api.IsUnauthorized(err) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger("token").Warn("⚠️ Jeton refusé par le backend, session réinitialisée")
	s.resetLocked(ctx)
}
