package repo

import (
	"sort"
	"time"

	"github.com/tiendafacil/pos-backend/internal/models"
)

const dayLayout = "2006-01-02"

// InMemoryReportRepository aggregates over the product and sale doubles.
type InMemoryReportRepository struct {
	products *InMemoryProductRepository
	sales    *InMemorySaleRepository
}

func NewInMemoryReportRepository() *InMemoryReportRepository {
	return &InMemoryReportRepository{}
}

func (r *InMemoryReportRepository) SetRepositories(products *InMemoryProductRepository, sales *InMemorySaleRepository) {
	r.products = products
	r.sales = sales
}

func (r *InMemoryReportRepository) SalesByDateRange(start, end time.Time) ([]models.SaleReportRow, error) {
	from, to := start.Format(dayLayout), end.Format(dayLayout)

	rows := []models.SaleReportRow{}
	for _, s := range r.sales.Sales() {
		day := s.CreatedAt.Format(dayLayout)
		if day < from || day > to {
			continue
		}
		rows = append(rows, models.SaleReportRow{
			ID:     s.ID,
			UserID: s.UserID,
			Total:  s.Total,
			Date:   day,
		})
	}
	return rows, nil
}

func (r *InMemoryReportRepository) TopSellingProducts(start, end time.Time) ([]models.TopProductRow, error) {
	from, to := start.Format(dayLayout), end.Format(dayLayout)

	totals := map[string]*models.TopProductRow{}
	for _, s := range r.sales.Sales() {
		day := s.CreatedAt.Format(dayLayout)
		if day < from || day > to {
			continue
		}
		for _, it := range r.sales.Items(s.ID) {
			p, err := r.products.GetByID(it.ProductID)
			if err != nil {
				continue
			}
			row, ok := totals[p.Name]
			if !ok {
				row = &models.TopProductRow{Name: p.Name}
				totals[p.Name] = row
			}
			row.QuantitySold += it.Quantity
			row.Revenue += it.Subtotal
		}
	}

	products := []models.TopProductRow{}
	for _, row := range totals {
		products = append(products, *row)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].QuantitySold > products[j].QuantitySold
	})
	return products, nil
}

func (r *InMemoryReportRepository) InventorySnapshot() ([]models.InventoryRow, error) {
	all, err := r.products.GetAll()
	if err != nil {
		return nil, err
	}

	inventory := []models.InventoryRow{}
	for _, p := range all {
		inventory = append(inventory, models.InventoryRow{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Quantity: p.Quantity,
		})
	}
	return inventory, nil
}
