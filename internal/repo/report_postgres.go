package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/tiendafacil/pos-backend/internal/models"
)

type PostgresReportRepository struct {
	db *sql.DB
}

func NewPostgresReportRepository(db *sql.DB) *PostgresReportRepository {
	return &PostgresReportRepository{db: db}
}

func (r *PostgresReportRepository) SalesByDateRange(start, end time.Time) ([]models.SaleReportRow, error) {
	query := `
		SELECT id, usuario_id, total, creado_en::date::text AS fecha
		FROM ventas
		WHERE creado_en::date BETWEEN $1 AND $2
		ORDER BY creado_en ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := []models.SaleReportRow{}
	for rows.Next() {
		var s models.SaleReportRow
		if err := rows.Scan(&s.ID, &s.UserID, &s.Total, &s.Date); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (r *PostgresReportRepository) TopSellingProducts(start, end time.Time) ([]models.TopProductRow, error) {
	query := `
		SELECT p.nombre,
		       SUM(d.cantidad)::float8 AS cantidad_vendida,
		       SUM(d.subtotal)::float8 AS total_generado
		FROM detalle_venta d
		INNER JOIN productos p ON p.id = d.producto_id
		INNER JOIN ventas v ON v.id = d.venta_id
		WHERE v.creado_en::date BETWEEN $1 AND $2
		GROUP BY p.nombre
		ORDER BY cantidad_vendida DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.TopProductRow{}
	for rows.Next() {
		var p models.TopProductRow
		if err := rows.Scan(&p.Name, &p.QuantitySold, &p.Revenue); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresReportRepository) InventorySnapshot() ([]models.InventoryRow, error) {
	query := `
		SELECT p.id, p.nombre, p.precio, i.existencia
		FROM productos p
		INNER JOIN inventario i ON i.producto_id = p.id
		ORDER BY p.nombre ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inventory := []models.InventoryRow{}
	for rows.Next() {
		var item models.InventoryRow
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, err
		}
		inventory = append(inventory, item)
	}
	return inventory, rows.Err()
}
