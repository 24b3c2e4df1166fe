package store

import (
	"context"
	"net/http"
	"sync"

	"jewelry_storefront/internal/api"
	"jewelry_storefront/internal/models"
)

// fakeBackend simule le backend REST en mémoire
type fakeBackend struct {
	mu sync.Mutex

	users    map[string]string // email -> mot de passe
	roles    map[string]models.Role
	products map[string]models.Product
	wishlist []string
	orders   []models.Order

	failWishlistAdd    error
	failWishlistRemove error
	failWishlist       error
	failProduct        error
	failLogin          error
	searchHook         func(query string) (*models.SearchResult, error)
	orderHook          func()

	lastOrder    *models.OrderRequest
	lastStatus   *models.StatusUpdate
	loginCalls   int
	productCalls int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		users:    map[string]string{"ana@example.com": "secret", "admin@example.com": "admin"},
		roles:    map[string]models.Role{"admin@example.com": models.RoleAdmin},
		products: map[string]models.Product{},
	}
}

func (f *fakeBackend) addProduct(p models.Product) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products[p.ID] = p
}

func (f *fakeBackend) auth(email, password string) (*models.AuthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginCalls++
	if pw, ok := f.users[email]; !ok || pw != password {
		return nil, &api.Error{Status: http.StatusUnauthorized, Message: "Invalid credentials"}
	}
	role := f.roles[email]
	if role == "" {
		role = models.RoleCustomer
	}
	return &models.AuthResponse{
		AccessToken: "token-" + email,
		User:        models.User{ID: "u-" + email, Email: email, Role: role},
	}, nil
}

func (f *fakeBackend) Login(_ context.Context, email, password string) (*models.AuthResponse, error) {
	f.mu.Lock()
	failure := f.failLogin
	f.mu.Unlock()
	if failure != nil {
		return nil, failure
	}
	return f.auth(email, password)
}

func (f *fakeBackend) Register(_ context.Context, in models.RegisterRequest) (*models.AuthResponse, error) {
	f.mu.Lock()
	if _, exists := f.users[in.Email]; exists {
		f.mu.Unlock()
		return nil, &api.Error{Status: http.StatusBadRequest, Message: "Email already registered"}
	}
	f.users[in.Email] = in.Password
	f.mu.Unlock()
	return f.auth(in.Email, in.Password)
}

func (f *fakeBackend) Products(_ context.Context, _ models.ProductFilter) (*models.ProductList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := &models.ProductList{}
	for _, p := range f.products {
		list.Products = append(list.Products, p)
	}
	list.Pagination.Total = len(list.Products)
	return list, nil
}

func (f *fakeBackend) Product(_ context.Context, id string) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.productCalls++
	if f.failProduct != nil {
		return nil, f.failProduct
	}
	p, ok := f.products[id]
	if !ok {
		return nil, &api.Error{Status: http.StatusNotFound, Message: "Not Found"}
	}
	return &p, nil
}

func (f *fakeBackend) Categories(context.Context) ([]models.Category, error) {
	return []models.Category{{ID: "c1", Name: "Rings"}, {ID: "c2", Name: "Necklaces"}}, nil
}

func (f *fakeBackend) Search(_ context.Context, q string) (*models.SearchResult, error) {
	if f.searchHook != nil {
		return f.searchHook(q)
	}
	return &models.SearchResult{Products: []models.Product{{ID: q}}}, nil
}

func (f *fakeBackend) Offers(context.Context) ([]models.Offer, error) {
	return []models.Offer{{ID: "o1", Title: "Spring"}}, nil
}

func (f *fakeBackend) CreateOrder(_ context.Context, token string, in models.OrderRequest) (*models.OrderCreated, error) {
	if f.orderHook != nil {
		f.orderHook()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if token == "" {
		return nil, &api.Error{Status: http.StatusUnauthorized, Message: "Missing token"}
	}
	f.lastOrder = &in
	f.orders = append(f.orders, models.Order{ID: "ord-1", Status: models.OrderPending, Total: in.Total})
	return &models.OrderCreated{OrderID: "ord-1", OrderNumber: "ORD20260101ABCDEF12"}, nil
}

func (f *fakeBackend) Orders(context.Context, string) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Order(nil), f.orders...), nil
}

func (f *fakeBackend) UpdateOrderStatus(_ context.Context, _, orderID string, in models.StatusUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastStatus = &in
	for i := range f.orders {
		if f.orders[i].ID == orderID {
			f.orders[i].Status = in.Status
			return nil
		}
	}
	return &api.Error{Status: http.StatusNotFound, Message: "Not Found"}
}

func (f *fakeBackend) Wishlist(context.Context, string) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWishlist != nil {
		return nil, f.failWishlist
	}
	var out []models.Product
	for _, id := range f.wishlist {
		out = append(out, models.Product{ID: id, Price: f.products[id].Price})
	}
	return out, nil
}

func (f *fakeBackend) AddToWishlist(_ context.Context, _, productID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWishlistAdd != nil {
		return f.failWishlistAdd
	}
	for _, id := range f.wishlist {
		if id == productID {
			return nil
		}
	}
	f.wishlist = append(f.wishlist, productID)
	return nil
}

func (f *fakeBackend) RemoveFromWishlist(_ context.Context, _, productID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWishlistRemove != nil {
		return f.failWishlistRemove
	}
	kept := f.wishlist[:0]
	for _, id := range f.wishlist {
		if id != productID {
			kept = append(kept, id)
		}
	}
	f.wishlist = kept
	return nil
}

func (f *fakeBackend) CreateProduct(_ context.Context, _ string, in models.ProductInput, _ []api.ImageFile) (*models.ProductCreated, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := "p-" + in.Name
	f.products[id] = models.Product{ID: id, Name: in.Name, Price: in.Price, InStock: in.InStock, PreOrder: in.PreOrder}
	return &models.ProductCreated{ID: id}, nil
}

func (f *fakeBackend) UpdateProduct(_ context.Context, _, id string, in models.ProductInput, _ []api.ImageFile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[id]; !ok {
		return &api.Error{Status: http.StatusNotFound, Message: "Not Found"}
	}
	f.products[id] = models.Product{ID: id, Name: in.Name, Price: in.Price}
	return nil
}

func (f *fakeBackend) DeleteProduct(_ context.Context, _, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.products, id)
	return nil
}

func (f *fakeBackend) Dashboard(context.Context, string) (*models.Dashboard, error) {
	return &models.Dashboard{Stats: models.DashboardStats{TotalOrders: 3}}, nil
}

func (f *fakeBackend) CreateOffer(context.Context, string, models.OfferInput) (string, error) {
	return "offer-1", nil
}
