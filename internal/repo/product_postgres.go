package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/tiendafacil/pos-backend/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	query := `
		SELECT p.id, p.nombre, p.unidad, p.precio, p.activo,
		       COALESCE(i.existencia, 0) AS existencia,
		       to_char(p.actualizado_en, 'YYYY-MM-DD HH24:MI:SS') AS actualizado_en
		FROM productos p
		LEFT JOIN inventario i ON i.producto_id = p.id
		ORDER BY p.nombre`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Unit, &p.Price, &p.Active, &p.Quantity, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetByID(id int) (models.Product, error) {
	query := `
		SELECT p.id, p.nombre, p.unidad, p.precio, p.activo,
		       COALESCE(i.existencia, 0) AS existencia,
		       to_char(p.actualizado_en, 'YYYY-MM-DD HH24:MI:SS') AS actualizado_en
		FROM productos p
		LEFT JOIN inventario i ON i.producto_id = p.id
		WHERE p.id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.Unit, &p.Price, &p.Active, &p.Quantity, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

// Create inserts the product and upserts its inventory row in one
// transaction.
func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Product{}, err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO productos (nombre, unidad, precio, activo)
		 VALUES ($1, $2, $3, TRUE)
		 RETURNING id, nombre, unidad, precio, activo`,
		p.Name, p.Unit, p.Price).
		Scan(&p.ID, &p.Name, &p.Unit, &p.Price, &p.Active)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Product{}, ErrDuplicateName
		}
		return models.Product{}, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO inventario (producto_id, existencia)
		 VALUES ($1, $2)
		 ON CONFLICT (producto_id) DO UPDATE SET existencia = EXCLUDED.existencia`,
		p.ID, p.Quantity)
	if err != nil {
		return models.Product{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Patch updates only the submitted fields; absent fields keep their prior
// values via COALESCE.
func (r *PostgresProductRepository) Patch(id int, price *float64, active *bool) (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE productos
		 SET precio = COALESCE($1, precio),
		     activo = COALESCE($2, activo),
		     actualizado_en = NOW()
		 WHERE id = $3`,
		price, active, id)
	if err != nil {
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return r.GetByID(id)
}

// Replace overwrites the product and its inventory quantity in one
// transaction. All fields are required by the callers.
func (r *PostgresProductRepository) Replace(p models.Product) (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Product{}, err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`UPDATE productos
		 SET nombre = $1, unidad = $2, precio = $3, activo = $4, actualizado_en = NOW()
		 WHERE id = $5
		 RETURNING id, nombre, unidad, precio, activo`,
		p.Name, p.Unit, p.Price, p.Active, p.ID).
		Scan(&p.ID, &p.Name, &p.Unit, &p.Price, &p.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return models.Product{}, ErrDuplicateName
		}
		return models.Product{}, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO inventario (producto_id, existencia)
		 VALUES ($1, $2)
		 ON CONFLICT (producto_id) DO UPDATE SET existencia = EXCLUDED.existencia`,
		p.ID, p.Quantity)
	if err != nil {
		return models.Product{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Delete removes the inventory row first, then the product row. Historical
// sale line items are not checked.
func (r *PostgresProductRepository) Delete(id int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM inventario WHERE producto_id = $1`, id); err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
