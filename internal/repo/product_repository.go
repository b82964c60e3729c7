package repo

import "github.com/tiendafacil/pos-backend/internal/models"

// ProductRepository defines catalog operations over products joined with
// their inventory quantity.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Create(p models.Product) (models.Product, error)
	Patch(id int, price *float64, active *bool) (models.Product, error)
	Replace(p models.Product) (models.Product, error)
	Delete(id int) error
}
