package models

// LineKey identifie une ligne du panier : produit + variante choisie
type LineKey struct {
	ProductID     string `json:"productId"`
	SelectedSize  string `json:"selectedSize,omitempty"`
	SelectedColor string `json:"selectedColor,omitempty"`
}

type CartLine struct {
	ProductID     string `json:"productId"`
	Quantity      int    `json:"quantity"`
	SelectedSize  string `json:"selectedSize,omitempty"`
	SelectedColor string `json:"selectedColor,omitempty"`
	Customization string `json:"customization,omitempty"`
}

func (l CartLine) Key() LineKey {
	return LineKey{ProductID: l.ProductID, SelectedSize: l.SelectedSize, SelectedColor: l.SelectedColor}
}

// CartView est la représentation du panier renvoyée à l'interface
type CartView struct {
	Items    []CartLine `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Count    int        `json:"count"`
	Missing  []LineKey  `json:"missing,omitempty"`
}
