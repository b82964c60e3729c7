package repo

import (
	"sort"
	"time"

	"github.com/tiendafacil/pos-backend/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository used by the handler test suites.
type InMemoryProductRepository struct {
	products []models.Product
	nextID   int
}

func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Create(p models.Product) (models.Product, error) {
	for _, existing := range r.products {
		if existing.Name == p.Name {
			return models.Product{}, ErrDuplicateName
		}
	}

	p.ID = r.nextID
	p.Active = true
	p.UpdatedAt = time.Now().Format("2006-01-02 15:04:05")
	r.nextID++
	r.products = append(r.products, p)
	return p, nil
}

func (r *InMemoryProductRepository) Patch(id int, price *float64, active *bool) (models.Product, error) {
	for i, p := range r.products {
		if p.ID != id {
			continue
		}
		if price != nil {
			p.Price = *price
		}
		if active != nil {
			p.Active = *active
		}
		p.UpdatedAt = time.Now().Format("2006-01-02 15:04:05")
		r.products[i] = p
		return p, nil
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Replace(p models.Product) (models.Product, error) {
	for _, existing := range r.products {
		if existing.Name == p.Name && existing.ID != p.ID {
			return models.Product{}, ErrDuplicateName
		}
	}
	for i, existing := range r.products {
		if existing.ID == p.ID {
			p.UpdatedAt = time.Now().Format("2006-01-02 15:04:05")
			r.products[i] = p
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Delete(id int) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// AdjustQuantity shifts the on-hand stock of a product; used by the sale
// repository when stock decrement is enabled.
func (r *InMemoryProductRepository) AdjustQuantity(id int, delta float64) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products[i].Quantity += delta
			return nil
		}
	}
	return ErrProductNotFound
}

func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
	r.nextID = 1
}
