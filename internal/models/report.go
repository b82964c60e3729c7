package models

// DailySalesRow aggregates all sales of one calendar day.
type DailySalesRow struct {
	Day   string  `json:"dia"`
	Count int     `json:"num_ventas"`
	Total float64 `json:"total_dia"`
}

// SaleReportRow is a sale header with its timestamp truncated to the day.
type SaleReportRow struct {
	ID     int     `json:"id"`
	UserID int     `json:"usuario_id"`
	Total  float64 `json:"total"`
	Date   string  `json:"fecha"`
}

// TopProductRow aggregates sold quantity and revenue per product name.
type TopProductRow struct {
	Name         string  `json:"nombre"`
	QuantitySold float64 `json:"cantidad_vendida"`
	Revenue      float64 `json:"total_generado"`
}

// InventoryRow is one line of the inventory snapshot report.
type InventoryRow struct {
	ID       int     `json:"id"`
	Name     string  `json:"nombre"`
	Price    float64 `json:"precio"`
	Quantity float64 `json:"existencia"`
}
