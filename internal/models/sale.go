package models

import "time"

// Sale is the header row of one checkout transaction. Its line items are
// created atomically with it and are immutable afterwards.
type Sale struct {
	ID        int       `json:"id"`
	UserID    int       `json:"usuario_id"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"fecha"`
}

// SaleItem is one product line within a sale. Subtotal is always
// Quantity * UnitPrice as submitted by the caller.
type SaleItem struct {
	ProductID int     `json:"producto_id"`
	Quantity  float64 `json:"cantidad"`
	UnitPrice float64 `json:"precio"`
	Subtotal  float64 `json:"subtotal"`
}
