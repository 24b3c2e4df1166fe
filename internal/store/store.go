// Package store contient l'état d'une session storefront : identité, cache
// catalogue, panier, wishlist et historique de commandes.
//
// Un Store est créé par session et injecté dans les handlers ; il n'y a pas
// d'état global.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"jewelry_storefront/internal/api"
	"jewelry_storefront/internal/models"
	"jewelry_storefront/internal/utils"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

var (
	ErrValidation      = errors.New("données invalides")
	ErrUnauthenticated = errors.New("non authentifié")
	ErrForbidden       = errors.New("accès réservé aux administrateurs")
)

var validate = validator.New()

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Backend est le collaborateur REST ; *api.Client l'implémente
type Backend interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, in models.RegisterRequest) (*models.AuthResponse, error)

	Products(ctx context.Context, f models.ProductFilter) (*models.ProductList, error)
	Product(ctx context.Context, id string) (*models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Search(ctx context.Context, query string) (*models.SearchResult, error)
	Offers(ctx context.Context) ([]models.Offer, error)

	CreateOrder(ctx context.Context, token string, in models.OrderRequest) (*models.OrderCreated, error)
	Orders(ctx context.Context, token string) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, token, orderID string, in models.StatusUpdate) error

	Wishlist(ctx context.Context, token string) ([]models.Product, error)
	AddToWishlist(ctx context.Context, token, productID string) error
	RemoveFromWishlist(ctx context.Context, token, productID string) error

	CreateProduct(ctx context.Context, token string, in models.ProductInput, images []api.ImageFile) (*models.ProductCreated, error)
	UpdateProduct(ctx context.Context, token, id string, in models.ProductInput, images []api.ImageFile) error
	DeleteProduct(ctx context.Context, token, id string) error
	Dashboard(ctx context.Context, token string) (*models.Dashboard, error)
	CreateOffer(ctx context.Context, token string, in models.OfferInput) (string, error)
}

type Options struct {
	Persister Persister
	Notifier  CartNotifier
	Pricing   *Pricing
	Now       func() time.Time
}

type Store struct {
	id        string
	backend   Backend
	persister Persister
	notifier  CartNotifier
	pricing   Pricing
	now       func() time.Time

	mu       sync.Mutex
	identity Identity
	catalog  *Catalog
	cart     Ledger
	wishlist *Wishlist
	orders   []models.Order
	lastErr  string
	lastSeen time.Time

	search Sequencer
}

func New(id string, backend Backend, opts Options) *Store {
	s := &Store{
		id:        id,
		backend:   backend,
		persister: opts.Persister,
		notifier:  opts.Notifier,
		pricing:   DefaultPricing,
		now:       opts.Now,
		catalog:   NewCatalog(),
		wishlist:  NewWishlist(),
	}
	if opts.Pricing != nil {
		s.pricing = *opts.Pricing
	}
	if s.notifier == nil {
		s.notifier = nopNotifier{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.lastSeen = s.now()
	return s
}

func (s *Store) ID() string {
	return s.id
}

func (s *Store) logger(op string) *log.Entry {
	return log.WithFields(log.Fields{"session": s.id, "op": op})
}

// =============================================
// ÉTAT D'ERREUR
// =============================================

func errorMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// fail enregistre l'erreur une seule fois (pas de retry) et la renvoie
func (s *Store) fail(op string, err error) error {
	s.mu.Lock()
	s.lastErr = errorMessage(err)
	s.mu.Unlock()
	s.logger(op).WithError(err).Warn("❌ Opération échouée")
	return err
}

// Error retourne le dernier message d'erreur affichable
func (s *Store) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Store) ClearError() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}

// =============================================
// PERSISTANCE
// =============================================

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Identity:        s.identity,
		IsAuthenticated: s.identity.Authenticated(),
		CartItems:       s.cart.Lines(),
		Wishlist:        s.wishlist.IDs(),
	}
}

// persistLocked sauvegarde le snapshot ; un échec est journalisé, jamais remonté
func (s *Store) persistLocked(ctx context.Context) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(ctx, s.id, s.snapshotLocked()); err != nil {
		s.logger("persist").WithError(err).Warn("⚠️ Sauvegarde du snapshot impossible")
	}
}

func (s *Store) cartChangedLocked(ctx context.Context) {
	s.persistLocked(ctx)
	s.notifier.CartChanged(ctx, s.id, s.cartViewLocked())
}

// Restore recharge un snapshot persisté
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = Identity{}
	if snap.IsAuthenticated && snap.Identity.Authenticated() && !utils.TokenExpired(snap.Identity.Token, s.now()) {
		s.identity = snap.Identity
		s.wishlist.restoreIDs(snap.Wishlist)
	}
	s.cart.Restore(snap.CartItems)
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) touch() {
	s.mu.Lock()
	s.lastSeen = s.now()
	s.mu.Unlock()
}

func (s *Store) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// StateView est l'état résumé renvoyé à l'interface
type StateView struct {
	User            *models.User    `json:"user"`
	IsAuthenticated bool            `json:"isAuthenticated"`
	Cart            models.CartView `json:"cart"`
	Wishlist        []string        `json:"wishlist"`
	TokenExpiresAt  *time.Time      `json:"tokenExpiresAt,omitempty"`
	Error           string          `json:"error,omitempty"`
}

func (s *Store) State() StateView {
	s.mu.Lock()
	defer s.mu.Unlock()
	view := StateView{
		User:            s.identity.User,
		IsAuthenticated: s.identity.Authenticated(),
		Cart:            s.cartViewLocked(),
		Wishlist:        s.wishlist.IDs(),
		Error:           s.lastErr,
	}
	// l'interface peut anticiper la déconnexion
	if exp, ok := utils.TokenExpiry(s.identity.Token); ok && view.IsAuthenticated {
		view.TokenExpiresAt = &exp
	}
	return view
}
