package models

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderStatuses dans l'ordre d'affichage du formulaire admin
var OrderStatuses = []OrderStatus{
	OrderPending, OrderConfirmed, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, st := range OrderStatuses {
		if st == s {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// Next retourne les statuts proposés à l'admin depuis s.
// Le backend reste le seul à valider la transition.
func (s OrderStatus) Next() []OrderStatus {
	if !s.Valid() || s.IsTerminal() {
		return nil
	}
	next := []OrderStatus{}
	for i, st := range OrderStatuses {
		if st == s && i+1 < len(OrderStatuses) && OrderStatuses[i+1] != OrderCancelled {
			next = append(next, OrderStatuses[i+1])
		}
	}
	return append(next, OrderCancelled)
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

type OrderItem struct {
	ProductID     string  `json:"productId,omitempty"`
	ProductName   string  `json:"productName"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	SelectedSize  string  `json:"selectedSize,omitempty"`
	SelectedColor string  `json:"selectedColor,omitempty"`
}

type Order struct {
	ID            string        `json:"id"`
	OrderNumber   string        `json:"orderNumber"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Total         float64       `json:"total"`
	ItemCount     int           `json:"itemCount"`
	CustomerName  string        `json:"customerName,omitempty"`
	CustomerEmail string        `json:"customerEmail,omitempty"`
	CreatedAt     string        `json:"createdAt"`
	Items         []OrderItem   `json:"items"`
}

type OrderLineInput struct {
	ProductID     string `json:"productId" validate:"required"`
	Quantity      int    `json:"quantity" validate:"gte=1"`
	SelectedSize  string `json:"selectedSize,omitempty"`
	SelectedColor string `json:"selectedColor,omitempty"`
	Customization string `json:"customization,omitempty"`
}

// OrderRequest est le corps de POST /orders
type OrderRequest struct {
	Items           []OrderLineInput `json:"items" validate:"required,min=1,dive"`
	Subtotal        float64          `json:"subtotal" validate:"gte=0"`
	Shipping        float64          `json:"shipping" validate:"gte=0"`
	Tax             float64          `json:"tax" validate:"gte=0"`
	Discount        float64          `json:"discount" validate:"gte=0"`
	Total           float64          `json:"total" validate:"gte=0"`
	ShippingAddress Address          `json:"shippingAddress" validate:"required"`
	BillingAddress  *Address         `json:"billingAddress,omitempty"`
	PaymentMethod   string           `json:"paymentMethod,omitempty"`
}

type OrderCreated struct {
	Message     string `json:"message,omitempty"`
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
}

// StatusUpdate est le corps de PUT /admin/orders/:id/status
type StatusUpdate struct {
	Status         OrderStatus   `json:"status" validate:"required"`
	PaymentStatus  PaymentStatus `json:"paymentStatus,omitempty" validate:"omitempty,oneof=pending paid failed refunded"`
	TrackingNumber string        `json:"trackingNumber,omitempty"`
	Notes          string        `json:"notes,omitempty"`
}
