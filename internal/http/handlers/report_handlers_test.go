package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/tiendafacil/pos-backend/internal/http/handlers"
	"github.com/tiendafacil/pos-backend/internal/models"
)

func TestSalesReportHandler_DateValidation(t *testing.T) {
	env := newTestEnv(false)

	tests := []struct {
		name    string
		query   string
		wantMsg string
	}{
		{"missing both", "", "Debes enviar fechas inicio y fin"},
		{"missing fin", "?inicio=2026-01-01", "Debes enviar fechas inicio y fin"},
		{"bad format", "?inicio=notadate&fin=2026-01-31", "Formato de fecha inválido"},
		{"inicio after fin", "?inicio=2026-02-01&fin=2026-01-01", "La fecha inicio no puede ser mayor que fin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.doJSON(http.MethodGet, "/api/reportes/ventas"+tt.query, nil, true)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
			if got := decodeError(w); got != tt.wantMsg {
				t.Errorf("expected error %q, got %q", tt.wantMsg, got)
			}
		})
	}
}

func TestTopProductsHandler_EmptyRangeReturnsEmptyList(t *testing.T) {
	env := newTestEnv(false)

	w := env.doJSON(http.MethodGet, "/api/reportes/mas-vendidos?inicio=2001-01-01&fin=2001-01-31", nil, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp map[string][]models.TopProductRow
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	productos, ok := resp["productos"]
	if !ok {
		t.Fatal("expected a 'productos' key")
	}
	if len(productos) != 0 {
		t.Errorf("expected an empty list, got %d rows", len(productos))
	}
}

func TestSalesReportHandler_ReturnsSalesInRange(t *testing.T) {
	env := newTestEnv(false)
	p := seedProduct(t, env, "Cerveza", 35, 60)

	for i := 0; i < 2; i++ {
		w := env.createSale(handlers.CreateSaleRequest{
			Items: []handlers.SaleItemRequest{{ProductoID: p.ID, Cantidad: 1, Precio: 35}},
			Total: 35,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201 Created, got %d", w.Code)
		}
	}

	today := time.Now().Format("2006-01-02")
	w := env.doJSON(http.MethodGet, fmt.Sprintf("/api/reportes/ventas?inicio=%s&fin=%s", today, today), nil, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp map[string][]models.SaleReportRow
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	ventas := resp["ventas"]
	if len(ventas) != 2 {
		t.Fatalf("expected 2 sales in range, got %d", len(ventas))
	}
	for _, v := range ventas {
		if v.Date != today {
			t.Errorf("expected fecha %q truncated to day, got %q", today, v.Date)
		}
		if v.UserID != 1 {
			t.Errorf("expected usuario_id 1, got %d", v.UserID)
		}
	}
}

func TestTopProductsHandler_OrderedByQuantitySold(t *testing.T) {
	env := newTestEnv(false)
	p1 := seedProduct(t, env, "Chicles", 5, 100)
	p2 := seedProduct(t, env, "Cigarros", 70, 100)

	// 5 chicles, 2 cigarros
	sales := []handlers.CreateSaleRequest{
		{Items: []handlers.SaleItemRequest{{ProductoID: p1.ID, Cantidad: 5, Precio: 5}}, Total: 25},
		{Items: []handlers.SaleItemRequest{{ProductoID: p2.ID, Cantidad: 2, Precio: 70}}, Total: 140},
	}
	for _, s := range sales {
		if w := env.createSale(s); w.Code != http.StatusCreated {
			t.Fatalf("seeding sale failed with status %d", w.Code)
		}
	}

	today := time.Now().Format("2006-01-02")
	w := env.doJSON(http.MethodGet, fmt.Sprintf("/api/reportes/mas-vendidos?inicio=%s&fin=%s", today, today), nil, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp map[string][]models.TopProductRow
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	productos := resp["productos"]
	if len(productos) != 2 {
		t.Fatalf("expected 2 products, got %d", len(productos))
	}
	if productos[0].Name != "Chicles" {
		t.Errorf("expected 'Chicles' first (higher quantity), got %q", productos[0].Name)
	}
	if productos[0].QuantitySold != 5 {
		t.Errorf("expected cantidad_vendida 5, got %v", productos[0].QuantitySold)
	}
	if productos[1].Revenue != 140 {
		t.Errorf("expected total_generado 140, got %v", productos[1].Revenue)
	}
}

func TestInventoryReportHandler(t *testing.T) {
	env := newTestEnv(false)
	seedProduct(t, env, "Sal", 9, 40)
	seedProduct(t, env, "Aceite", 55, 15)

	w := env.doJSON(http.MethodGet, "/api/reportes/inventario", nil, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp map[string][]models.InventoryRow
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	inventario := resp["inventario"]
	if len(inventario) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(inventario))
	}
	if inventario[0].Name != "Aceite" || inventario[1].Name != "Sal" {
		t.Errorf("expected rows ordered by nombre, got %q then %q", inventario[0].Name, inventario[1].Name)
	}
	if inventario[1].Quantity != 40 {
		t.Errorf("expected existencia 40 for Sal, got %v", inventario[1].Quantity)
	}
}

func TestReportHandlers_RequireAuth(t *testing.T) {
	env := newTestEnv(false)

	paths := []string{
		"/api/reportes/ventas?inicio=2026-01-01&fin=2026-01-31",
		"/api/reportes/mas-vendidos?inicio=2026-01-01&fin=2026-01-31",
		"/api/reportes/inventario",
		"/api/ventas/diarias",
	}
	for _, path := range paths {
		if w := env.doJSON(http.MethodGet, path, nil, false); w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 for %s without token, got %d", path, w.Code)
		}
	}
}
