package models

type KeyMetrics struct {
	TotalRevenue float64 `json:"totalRevenue"`
	TotalOrders  int     `json:"totalOrders"`
	NewCustomers int     `json:"newCustomers"`
}

type SalesData struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
}

type TopProduct struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	UnitsSold   int    `json:"unitsSold"`
}
