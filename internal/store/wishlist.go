package store

import (
	"slices"

	"jewelry_storefront/internal/models"

	"github.com/google/uuid"
)

// mutation est la dernière modification optimiste connue pour un produit
type mutation struct {
	id      string
	add     bool
	changed bool            // l'ensemble d'ids a réellement été modifié
	product *models.Product // projection retirée, pour la restauration
	index   int
}

// Wishlist reflète l'ensemble côté serveur, avec mises à jour optimistes
// compensées en cas d'échec.
type Wishlist struct {
	ids      []string
	products []models.Product
	pending  map[string]mutation
}

func NewWishlist() *Wishlist {
	return &Wishlist{pending: map[string]mutation{}}
}

func (w *Wishlist) Contains(productID string) bool {
	return slices.Contains(w.ids, productID)
}

func (w *Wishlist) IDs() []string {
	return slices.Clone(w.ids)
}

func (w *Wishlist) Products() []models.Product {
	return slices.Clone(w.products)
}

// optimisticAdd insère l'id et retourne l'identifiant de corrélation
func (w *Wishlist) optimisticAdd(productID string) string {
	m := mutation{id: uuid.NewString(), add: true}
	if !w.Contains(productID) {
		w.ids = append(w.ids, productID)
		m.changed = true
	} else if prev, ok := w.pending[productID]; ok && prev.add && prev.changed {
		// l'insertion encore en vol est reprise par cette mutation
		m.changed = true
	}
	w.pending[productID] = m
	return m.id
}

// compensateAdd annule l'insertion si elle est toujours la dernière mutation du produit
func (w *Wishlist) compensateAdd(productID, correlationID string) bool {
	m, ok := w.pending[productID]
	if !ok || m.id != correlationID {
		return false
	}
	delete(w.pending, productID)
	if !m.changed {
		return false
	}
	w.ids = slices.DeleteFunc(w.ids, func(id string) bool { return id == productID })
	return true
}

// optimisticRemove retire l'id et la projection de façon synchrone
func (w *Wishlist) optimisticRemove(productID string) string {
	m := mutation{id: uuid.NewString(), index: -1}
	if i := slices.Index(w.ids, productID); i >= 0 {
		w.ids = slices.Delete(w.ids, i, i+1)
		m.changed = true
	}
	if i := slices.IndexFunc(w.products, func(p models.Product) bool { return p.ID == productID }); i >= 0 {
		p := w.products[i]
		m.product = &p
		m.index = i
		w.products = slices.Delete(w.products, i, i+1)
	}
	w.pending[productID] = m
	return m.id
}

// compensateRemove restaure ce qui a été retiré par optimisticRemove
func (w *Wishlist) compensateRemove(productID, correlationID string) bool {
	m, ok := w.pending[productID]
	if !ok || m.id != correlationID {
		return false
	}
	delete(w.pending, productID)
	restored := false
	if m.changed && !w.Contains(productID) {
		w.ids = append(w.ids, productID)
		restored = true
	}
	if m.product != nil {
		i := min(max(m.index, 0), len(w.products))
		w.products = slices.Insert(w.products, i, *m.product)
		restored = true
	}
	return restored
}

// settle oublie la mutation confirmée par le serveur
func (w *Wishlist) settle(productID, correlationID string) {
	if m, ok := w.pending[productID]; ok && m.id == correlationID {
		delete(w.pending, productID)
	}
}

// replace est le seul point où le miroir est aligné sur le serveur
func (w *Wishlist) replace(products []models.Product) {
	w.products = slices.Clone(products)
	w.ids = make([]string, 0, len(products))
	for _, p := range products {
		if !slices.Contains(w.ids, p.ID) {
			w.ids = append(w.ids, p.ID)
		}
	}
	clear(w.pending)
}

// restoreIDs recharge l'ensemble depuis un snapshot
func (w *Wishlist) restoreIDs(ids []string) {
	w.ids = nil
	for _, id := range ids {
		if id != "" && !slices.Contains(w.ids, id) {
			w.ids = append(w.ids, id)
		}
	}
}

func (w *Wishlist) reset() {
	w.ids = nil
	w.products = nil
	clear(w.pending)
}
