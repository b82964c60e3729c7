package models

// Valid values for Product.Unit.
const (
	UnitKg    = "kg"
	UnitPiece = "pieza"
)

// Product represents a catalog entry joined with its on-hand stock.
// Quantity comes from the inventario table and defaults to 0 when the
// product has no inventory row yet.
type Product struct {
	ID        int     `json:"id"`
	Name      string  `json:"nombre"`
	Unit      string  `json:"unidad"`
	Price     float64 `json:"precio"`
	Active    bool    `json:"activo"`
	Quantity  float64 `json:"existencia"`
	UpdatedAt string  `json:"actualizado_en,omitempty"`
}
