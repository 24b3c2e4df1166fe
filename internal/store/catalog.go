package store

import (
	"jewelry_storefront/internal/models"

	log "github.com/sirupsen/logrus"
)

// Catalog est le cache du catalogue : liste, détails et catégories
type Catalog struct {
	products   []models.Product
	details    map[string]models.Product
	categories []models.Category
	pagination models.Pagination
}

func NewCatalog() *Catalog {
	return &Catalog{details: map[string]models.Product{}}
}

// normalize applique les invariants produit ; false si le produit est rejeté
func normalize(p models.Product) (models.Product, bool) {
	if p.ID == "" || p.Price < 0 {
		log.WithFields(log.Fields{"product_id": p.ID, "price": p.Price}).Warn("⚠️ Produit invalide ignoré")
		return p, false
	}
	if p.PreOrder {
		p.InStock = false
	}
	return p, true
}

// ReplaceProducts remplace la liste en bloc (refetch)
func (c *Catalog) ReplaceProducts(products []models.Product, pagination models.Pagination) {
	list := make([]models.Product, 0, len(products))
	for _, p := range products {
		if np, ok := normalize(p); ok {
			list = append(list, np)
		}
	}
	c.products = list
	c.pagination = pagination
}

func (c *Catalog) PutProduct(p models.Product) bool {
	np, ok := normalize(p)
	if !ok {
		return false
	}
	c.details[np.ID] = np
	return true
}

// Product cherche d'abord le détail, puis la liste
func (c *Catalog) Product(id string) (models.Product, bool) {
	if p, ok := c.details[id]; ok {
		return p, true
	}
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (c *Catalog) Price(id string) (float64, bool) {
	p, ok := c.Product(id)
	return p.Price, ok
}

func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Featured() []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) Pagination() models.Pagination {
	return c.pagination
}

func (c *Catalog) SetCategories(categories []models.Category) {
	c.categories = append([]models.Category(nil), categories...)
}

func (c *Catalog) Categories() []models.Category {
	return append([]models.Category(nil), c.categories...)
}
