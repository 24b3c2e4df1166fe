package models

// Product tel que renvoyé par le catalogue du backend
type Product struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description,omitempty"`
	Price             float64  `json:"price"`
	OriginalPrice     *float64 `json:"originalPrice,omitempty"`
	Category          string   `json:"category,omitempty"`
	Images            []string `json:"images"`
	InStock           bool     `json:"inStock"`
	StockQuantity     int      `json:"stockQuantity,omitempty"`
	PreOrder          bool     `json:"preOrder"`
	EstimatedDispatch *string  `json:"estimatedDispatch,omitempty"`
	Materials         []string `json:"materials"`
	Sizes             []string `json:"sizes,omitempty"`
	Colors            []string `json:"colors,omitempty"`
	Rating            float64  `json:"rating"`
	ReviewCount       int      `json:"reviewCount"`
	Tags              []string `json:"tags,omitempty"`
	IsFeatured        bool     `json:"isFeatured,omitempty"`
	AddedAt           string   `json:"addedAt,omitempty"`
	CreatedAt         string   `json:"createdAt,omitempty"`
	UpdatedAt         string   `json:"updatedAt,omitempty"`
}

// DiscountPercentage retourne la remise affichée (0 si pas de prix barré)
func (p Product) DiscountPercentage() int {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price || *p.OriginalPrice == 0 {
		return 0
	}
	return int((*p.OriginalPrice - p.Price) / *p.OriginalPrice * 100)
}

type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
	ProductCount int    `json:"productCount"`
}

type Pagination struct {
	Page    int  `json:"page"`
	Pages   int  `json:"pages"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

type ProductList struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// ProductFilter reprend les paramètres acceptés par GET /products
type ProductFilter struct {
	Page     int    `form:"page" json:"page,omitempty"`
	PerPage  int    `form:"per_page" json:"per_page,omitempty"`
	Category string `form:"category" json:"category,omitempty"`
	Search   string `form:"search" json:"search,omitempty"`
	SortBy   string `form:"sort_by" json:"sort_by,omitempty"`
	Order    string `form:"order" json:"order,omitempty" binding:"omitempty,oneof=asc desc"`
}

type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SearchResult struct {
	Products   []Product     `json:"products"`
	Categories []CategoryRef `json:"categories"`
}

// ProductInput est le payload typé des formulaires admin produit
type ProductInput struct {
	Name              string   `json:"name" validate:"required,max=100"`
	Description       string   `json:"description" validate:"required"`
	Price             float64  `json:"price" validate:"gte=0"`
	OriginalPrice     *float64 `json:"originalPrice,omitempty" validate:"omitempty,gte=0"`
	Category          string   `json:"category" validate:"required"`
	InStock           bool     `json:"inStock"`
	StockQuantity     int      `json:"stockQuantity" validate:"gte=0"`
	PreOrder          bool     `json:"preOrder"`
	EstimatedDispatch string   `json:"estimatedDispatch,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Materials         []string `json:"materials,omitempty"`
	Sizes             []string `json:"sizes,omitempty"`
	Colors            []string `json:"colors,omitempty"`
	Tags              []string `json:"tags,omitempty"`
	IsFeatured        bool     `json:"isFeatured"`
}

type ProductCreated struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
