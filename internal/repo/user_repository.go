package repo

import "github.com/tiendafacil/pos-backend/internal/models"

// UserRepository defines credential store lookups.
type UserRepository interface {
	GetByEmail(email string) (models.User, error)
	GetByID(id int) (models.User, error)
}
