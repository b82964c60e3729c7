package repo

import "github.com/tiendafacil/pos-backend/internal/models"

// SaleRepository records checkout transactions and serves the daily sales
// rollup.
//
// Create persists one sale header plus all line items atomically. Each item
// is validated in input order; the first invalid item aborts and rolls back
// everything inserted so far (ErrInvalidSaleItem). The caller-supplied total
// is stored verbatim, it is not recomputed from the subtotals.
type SaleRepository interface {
	Create(userID int, total float64, items []models.SaleItem) (models.Sale, error)
	Daily() ([]models.DailySalesRow, error)
}
