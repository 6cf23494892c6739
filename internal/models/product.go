package models

type Product struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Price             float64 `json:"price"`
	Stock             int     `json:"stock"`
	ImageURL          string  `json:"imageUrl,omitempty"`
	LowStockThreshold int     `json:"lowStockThreshold"`
}

// ProductRequest est le corps attendu par l'API pour créer/modifier un produit.
type ProductRequest struct {
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Price             float64 `json:"price"`
	Stock             int     `json:"stock"`
	ImageURL          string  `json:"imageUrl,omitempty"`
	LowStockThreshold int     `json:"lowStockThreshold"`
}
