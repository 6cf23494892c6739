package models

type InventoryItem struct {
	ProductID         string `json:"productId"`
	ProductName       string `json:"productName"`
	Stock             int    `json:"stock"`
	LowStockThreshold int    `json:"lowStockThreshold"`
}

// IsLowStock : stock courant inférieur ou égal au seuil configuré.
func (i InventoryItem) IsLowStock() bool {
	return i.Stock <= i.LowStockThreshold
}

type UpdateThresholdRequest struct {
	Threshold int `json:"threshold"`
}
