package repo

import (
	"time"

	"github.com/tiendafacil/pos-backend/internal/models"
)

// ReportRepository serves the read-only aggregation queries. Date ranges are
// validated by the handlers before reaching any implementation.
type ReportRepository interface {
	SalesByDateRange(start, end time.Time) ([]models.SaleReportRow, error)
	TopSellingProducts(start, end time.Time) ([]models.TopProductRow, error)
	InventorySnapshot() ([]models.InventoryRow, error)
}
