package models

type DashboardStats struct {
	TotalProducts  int     `json:"totalProducts"`
	TotalOrders    int     `json:"totalOrders"`
	TotalCustomers int     `json:"totalCustomers"`
	TotalRevenue   float64 `json:"totalRevenue"`
}

type RecentOrder struct {
	ID           string      `json:"id"`
	OrderNumber  string      `json:"orderNumber"`
	CustomerName string      `json:"customerName"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	CreatedAt    string      `json:"createdAt"`
}

type TopProduct struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	ReviewCount int      `json:"reviewCount"`
	Images      []string `json:"images"`
}

type Dashboard struct {
	Stats        DashboardStats `json:"stats"`
	RecentOrders []RecentOrder  `json:"recentOrders"`
	TopProducts  []TopProduct   `json:"topProducts"`
}
