package repo

import (
	"fmt"
	"sort"
	"time"

	"github.com/tiendafacil/pos-backend/internal/models"
)

// InMemorySaleRepository mirrors the transactional behavior of the Postgres
// implementation: an invalid item leaves no trace of the request.
type InMemorySaleRepository struct {
	sales          []models.Sale
	items          map[int][]models.SaleItem
	nextID         int
	products       *InMemoryProductRepository
	decrementStock bool
}

func NewInMemorySaleRepository(products *InMemoryProductRepository, decrementStock bool) *InMemorySaleRepository {
	return &InMemorySaleRepository{
		items:          map[int][]models.SaleItem{},
		nextID:         1,
		products:       products,
		decrementStock: decrementStock,
	}
}

func (r *InMemorySaleRepository) Create(userID int, total float64, items []models.SaleItem) (models.Sale, error) {
	pending := make([]models.SaleItem, 0, len(items))
	for _, it := range items {
		if it.ProductID == 0 || it.Quantity <= 0 || it.UnitPrice <= 0 {
			return models.Sale{}, ErrInvalidSaleItem
		}
		if r.products != nil {
			if _, err := r.products.GetByID(it.ProductID); err != nil {
				// foreign key violation in the real store
				return models.Sale{}, fmt.Errorf("sale references unknown product %d", it.ProductID)
			}
		}
		it.Subtotal = it.Quantity * it.UnitPrice
		pending = append(pending, it)
	}

	sale := models.Sale{
		ID:        r.nextID,
		UserID:    userID,
		Total:     total,
		CreatedAt: time.Now(),
	}
	r.nextID++
	r.sales = append(r.sales, sale)
	r.items[sale.ID] = pending

	if r.decrementStock && r.products != nil {
		for _, it := range pending {
			if err := r.products.AdjustQuantity(it.ProductID, -it.Quantity); err != nil {
				return models.Sale{}, err
			}
		}
	}
	return sale, nil
}

func (r *InMemorySaleRepository) Daily() ([]models.DailySalesRow, error) {
	byDay := map[string]*models.DailySalesRow{}
	for _, s := range r.sales {
		day := s.CreatedAt.Format("2006-01-02")
		row, ok := byDay[day]
		if !ok {
			row = &models.DailySalesRow{Day: day}
			byDay[day] = row
		}
		row.Count++
		row.Total += s.Total
	}

	summary := []models.DailySalesRow{}
	for _, row := range byDay {
		summary = append(summary, *row)
	}
	sort.Slice(summary, func(i, j int) bool { return summary[i].Day > summary[j].Day })
	return summary, nil
}

// Sales returns all recorded sale headers in insertion order.
func (r *InMemorySaleRepository) Sales() []models.Sale {
	return r.sales
}

// Items returns the line items of one sale.
func (r *InMemorySaleRepository) Items(saleID int) []models.SaleItem {
	return r.items[saleID]
}

func (r *InMemorySaleRepository) Clear() {
	r.sales = nil
	r.items = map[int][]models.SaleItem{}
	r.nextID = 1
}
