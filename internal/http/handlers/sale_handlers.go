package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/tiendafacil/pos-backend/internal/auth"
	"github.com/tiendafacil/pos-backend/internal/models"
	"github.com/tiendafacil/pos-backend/internal/repo"
)

// CreateSaleHandler godoc
// @Summary Record a sale with its line items in one transaction
// @Tags ventas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sale body CreateSaleRequest true "Line items and total"
// @Success 201 {object} CreateSaleResult
// @Failure 400 {object} map[string]string
// @Router /api/ventas [post]
func (h *Handler) CreateSaleHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Entrada inválida")
		return
	}

	if len(req.Items) == 0 {
		WriteError(w, http.StatusBadRequest, "No hay productos en la venta")
		return
	}

	claims, ok := auth.FromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusInternalServerError, "Error del servidor")
		return
	}

	items := make([]models.SaleItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = models.SaleItem{
			ProductID: it.ProductoID,
			Quantity:  it.Cantidad,
			UnitPrice: it.Precio,
		}
	}

	sale, err := h.sales.Create(claims.UserID, req.Total, items)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidSaleItem) {
			WriteError(w, http.StatusBadRequest, "Datos de producto inválidos")
			return
		}
		log.Printf("ventas: failed to record sale: %v", err)
		WriteError(w, http.StatusInternalServerError, "Error del servidor")
		return
	}

	writeJSON(w, http.StatusCreated, CreateSaleResult{
		ID:    sale.ID,
		Total: sale.Total,
		Fecha: sale.CreatedAt,
	})
}

// DailySalesHandler godoc
// @Summary Sales grouped by calendar day
// @Tags ventas
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.DailySalesRow
// @Router /api/ventas/diarias [get]
func (h *Handler) DailySalesHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := h.sales.Daily()
	if err != nil {
		log.Printf("ventas: daily summary failed: %v", err)
		WriteError(w, http.StatusInternalServerError, "Error del servidor")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
