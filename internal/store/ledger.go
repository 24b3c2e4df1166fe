package store

import "jewelry_storefront/internal/models"

// PriceLookup donne le prix catalogue courant d'un produit
type PriceLookup interface {
	Price(productID string) (float64, bool)
}

// Ledger est le panier local : une ligne par (produit, taille, couleur).
// Il n'est pas synchronisé, Store le protège.
type Ledger struct {
	lines []models.CartLine
}

// MaxQuantity borne la quantité d'une ligne
const MaxQuantity = 999

func clampQuantity(q int) int {
	switch {
	case q < 1:
		return 1
	case q > MaxQuantity:
		return MaxQuantity
	}
	return q
}

func (l *Ledger) index(key models.LineKey) int {
	for i := range l.lines {
		if l.lines[i].Key() == key {
			return i
		}
	}
	return -1
}

// AddLine fusionne avec la ligne de même clé ou en ajoute une nouvelle
func (l *Ledger) AddLine(line models.CartLine) {
	added := clampQuantity(line.Quantity)
	if i := l.index(line.Key()); i >= 0 {
		l.lines[i].Quantity = clampQuantity(l.lines[i].Quantity + added)
		if line.Customization != "" {
			l.lines[i].Customization = line.Customization
		}
		return
	}
	line.Quantity = added
	l.lines = append(l.lines, line)
}

// SetQuantity est sans effet si la ligne n'existe pas
func (l *Ledger) SetQuantity(key models.LineKey, quantity int) bool {
	i := l.index(key)
	if i < 0 {
		return false
	}
	l.lines[i].Quantity = clampQuantity(quantity)
	return true
}

// SetProductQuantity applique la quantité à toutes les lignes du produit
func (l *Ledger) SetProductQuantity(productID string, quantity int) bool {
	changed := false
	for i := range l.lines {
		if l.lines[i].ProductID == productID {
			l.lines[i].Quantity = clampQuantity(quantity)
			changed = true
		}
	}
	return changed
}

func (l *Ledger) RemoveLine(key models.LineKey) bool {
	i := l.index(key)
	if i < 0 {
		return false
	}
	l.lines = append(l.lines[:i], l.lines[i+1:]...)
	return true
}

// RemoveProduct retire toutes les variantes d'un produit
func (l *Ledger) RemoveProduct(productID string) bool {
	kept := l.lines[:0]
	for _, line := range l.lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	removed := len(kept) != len(l.lines)
	l.lines = kept
	return removed
}

// Subtract retire les quantités déjà commandées. Une ligne ajoutée ou
// augmentée entre-temps garde le surplus.
func (l *Ledger) Subtract(ordered []models.CartLine) {
	for _, o := range ordered {
		i := l.index(o.Key())
		if i < 0 {
			continue
		}
		if left := l.lines[i].Quantity - o.Quantity; left > 0 {
			l.lines[i].Quantity = left
			continue
		}
		l.lines = append(l.lines[:i], l.lines[i+1:]...)
	}
}

func (l *Ledger) Clear() {
	l.lines = nil
}

// Lines retourne une copie des lignes
func (l *Ledger) Lines() []models.CartLine {
	out := make([]models.CartLine, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *Ledger) Len() int {
	return len(l.lines)
}

// Count est le nombre d'articles (somme des quantités)
func (l *Ledger) Count() int {
	n := 0
	for _, line := range l.lines {
		n += line.Quantity
	}
	return n
}

// Subtotal somme prix catalogue × quantité. Les lignes dont le produit est
// absent du catalogue comptent pour 0 et sont renvoyées dans missing.
func (l *Ledger) Subtotal(prices PriceLookup) (subtotal float64, missing []models.LineKey) {
	for _, line := range l.lines {
		price, ok := prices.Price(line.ProductID)
		if !ok {
			missing = append(missing, line.Key())
			continue
		}
		subtotal += price * float64(line.Quantity)
	}
	return subtotal, missing
}

// Restore remplace le contenu à partir d'un snapshot, en refusionnant les doublons
func (l *Ledger) Restore(lines []models.CartLine) {
	l.lines = nil
	for _, line := range lines {
		if line.ProductID == "" {
			continue
		}
		l.AddLine(line)
	}
}
