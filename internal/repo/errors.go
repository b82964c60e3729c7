package repo

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrProductNotFound is returned when a product row does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateName is returned when the unique product name constraint
	// is violated.
	ErrDuplicateName = errors.New("product name already exists")
	// ErrInvalidSaleItem is returned when a sale line item fails validation;
	// the whole sale transaction is rolled back.
	ErrInvalidSaleItem = errors.New("invalid sale item")
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
