package models

type Offer struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description,omitempty"`
	ImageURL           string   `json:"imageUrl,omitempty"`
	DiscountPercentage *float64 `json:"discountPercentage,omitempty"`
	StartDate          string   `json:"startDate"`
	EndDate            string   `json:"endDate"`
}

type OfferInput struct {
	Title              string   `json:"title" validate:"required,max=100"`
	Description        string   `json:"description,omitempty"`
	ImageURL           string   `json:"imageUrl,omitempty" validate:"omitempty,url"`
	DiscountPercentage *float64 `json:"discountPercentage,omitempty" validate:"omitempty,gt=0,lte=100"`
	StartDate          string   `json:"startDate" validate:"required"`
	EndDate            string   `json:"endDate" validate:"required"`
}
