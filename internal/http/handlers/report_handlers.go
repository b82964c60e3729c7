package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/tiendafacil/pos-backend/internal/models"
)

const dateLayout = "2006-01-02"

// parseDateRange reads and validates the inicio/fin query parameters.
// The returned message is empty when the range is valid.
func parseDateRange(r *http.Request) (start, end time.Time, msg string) {
	inicio := r.URL.Query().Get("inicio")
	fin := r.URL.Query().Get("fin")

	if inicio == "" || fin == "" {
		return start, end, "Debes enviar fechas inicio y fin"
	}

	var err error
	if start, err = time.Parse(dateLayout, inicio); err != nil {
		return start, end, "Formato de fecha inválido"
	}
	if end, err = time.Parse(dateLayout, fin); err != nil {
		return start, end, "Formato de fecha inválido"
	}
	if start.After(end) {
		return start, end, "La fecha inicio no puede ser mayor que fin"
	}
	return start, end, ""
}

// SalesReportHandler godoc
// @Summary Sales within a date range, day-truncated, oldest first
// @Tags reportes
// @Produce json
// @Security BearerAuth
// @Param inicio query string true "Start date (YYYY-MM-DD)"
// @Param fin query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} map[string][]models.SaleReportRow
// @Failure 400 {object} map[string]string
// @Router /api/reportes/ventas [get]
func (h *Handler) SalesReportHandler(w http.ResponseWriter, r *http.Request) {
	start, end, msg := parseDateRange(r)
	if msg != "" {
		WriteError(w, http.StatusBadRequest, msg)
		return
	}

	ventas, err := h.reports.SalesByDateRange(start, end)
	if err != nil {
		log.Printf("reportes: sales report failed: %v", err)
		WriteError(w, http.StatusInternalServerError, "Error al generar el reporte")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]models.SaleReportRow{"ventas": ventas})
}

// TopProductsHandler godoc
// @Summary Best selling products within a date range
// @Tags reportes
// @Produce json
// @Security BearerAuth
// @Param inicio query string true "Start date (YYYY-MM-DD)"
// @Param fin query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} map[string][]models.TopProductRow
// @Failure 400 {object} map[string]string
// @Router /api/reportes/mas-vendidos [get]
func (h *Handler) TopProductsHandler(w http.ResponseWriter, r *http.Request) {
	start, end, msg := parseDateRange(r)
	if msg != "" {
		WriteError(w, http.StatusBadRequest, msg)
		return
	}

	productos, err := h.reports.TopSellingProducts(start, end)
	if err != nil {
		log.Printf("reportes: top products failed: %v", err)
		WriteError(w, http.StatusInternalServerError, "Error al generar el reporte")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]models.TopProductRow{"productos": productos})
}

// InventoryReportHandler godoc
// @Summary Current inventory snapshot ordered by product name
// @Tags reportes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]models.InventoryRow
// @Router /api/reportes/inventario [get]
func (h *Handler) InventoryReportHandler(w http.ResponseWriter, r *http.Request) {
	inventario, err := h.reports.InventorySnapshot()
	if err != nil {
		log.Printf("reportes: inventory snapshot failed: %v", err)
		WriteError(w, http.StatusInternalServerError, "Error al generar el reporte")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]models.InventoryRow{"inventario": inventario})
}
