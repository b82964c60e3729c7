package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/tiendafacil/pos-backend/internal/models"
)

type PostgresSaleRepository struct {
	db *sql.DB
	// decrementStock toggles reducing inventario.existencia inside the sale
	// transaction. Off by default: sales do not touch stock until the
	// product owner decides they should.
	decrementStock bool
}

func NewPostgresSaleRepository(db *sql.DB, decrementStock bool) *PostgresSaleRepository {
	return &PostgresSaleRepository{db: db, decrementStock: decrementStock}
}

func (r *PostgresSaleRepository) Create(userID int, total float64, items []models.SaleItem) (models.Sale, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Sale{}, err
	}
	defer tx.Rollback()

	sale := models.Sale{UserID: userID, Total: total}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO ventas (usuario_id, total, creado_en)
		 VALUES ($1, $2, NOW())
		 RETURNING id, creado_en`,
		userID, total).
		Scan(&sale.ID, &sale.CreatedAt)
	if err != nil {
		return models.Sale{}, err
	}

	for _, it := range items {
		if it.ProductID == 0 || it.Quantity <= 0 || it.UnitPrice <= 0 {
			return models.Sale{}, ErrInvalidSaleItem
		}

		subtotal := it.Quantity * it.UnitPrice
		_, err := tx.ExecContext(ctx,
			`INSERT INTO detalle_venta (venta_id, producto_id, cantidad, precio, subtotal)
			 VALUES ($1, $2, $3, $4, $5)`,
			sale.ID, it.ProductID, it.Quantity, it.UnitPrice, subtotal)
		if err != nil {
			return models.Sale{}, err
		}

		if r.decrementStock {
			_, err := tx.ExecContext(ctx,
				`UPDATE inventario SET existencia = existencia - $1 WHERE producto_id = $2`,
				it.Quantity, it.ProductID)
			if err != nil {
				return models.Sale{}, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Sale{}, err
	}
	return sale, nil
}

func (r *PostgresSaleRepository) Daily() ([]models.DailySalesRow, error) {
	query := `
		SELECT creado_en::date::text AS dia,
		       COUNT(*) AS num_ventas,
		       SUM(total)::float8 AS total_dia
		FROM ventas
		GROUP BY 1
		ORDER BY 1 DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := []models.DailySalesRow{}
	for rows.Next() {
		var d models.DailySalesRow
		if err := rows.Scan(&d.Day, &d.Count, &d.Total); err != nil {
			return nil, err
		}
		summary = append(summary, d)
	}
	return summary, rows.Err()
}
