package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tiendafacil/pos-backend/internal/models"
	"github.com/tiendafacil/pos-backend/internal/repo"
)

// GetProductsHandler godoc
// @Summary List all products with their inventory
// @Tags productos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Product
// @Router /api/productos [get]
func (h *Handler) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.GetAll()
	if err != nil {
		log.Printf("productos: list failed: %v", err)
		WriteError(w, http.StatusInternalServerError, "Error del servidor")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// GetProductByIDHandler godoc
// @Summary Get one product with its inventory
// @Tags productos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} map[string]string
// @Router /api/productos/{id} [get]
func (h *Handler) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "ID inválido")
		return
	}

	product, err := h.products.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			WriteError(w, http.StatusNotFound, "No encontrado")
			return
		}
		log.Printf("productos: get %d failed: %v", id, err)
		WriteError(w, http.StatusInternalServerError, "Error del servidor")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// CreateProductHandler godoc
// @Summary Create a product together with its inventory row
// @Tags productos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body CreateProductRequest true "Product to create"
// @Success 201 {object} models.Product
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/productos [post]
func (h *Handler) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Entrada inválida")
		return
	}

	if msg := validateProductFields(req.Nombre, req.Unidad, req.Precio); msg != "" {
		WriteError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := h.products.Create(models.Product{
		Name:     strings.TrimSpace(req.Nombre),
		Unit:     req.Unidad,
		Price:    *req.Precio,
		Quantity: req.Existencia,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateName) {
			WriteError(w, http.StatusConflict, "El nombre ya existe")
			return
		}
		log.Printf("productos: create failed: %v", err)
		WriteError(w, http.StatusInternalServerError, "Error del servidor")
		return
	}

	created.Quantity = req.Existencia
	writeJSON(w, http.StatusCreated, created)
}

// PatchProductHandler godoc
// @Summary Partially update price and/or active flag
// @Tags productos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param product body PatchProductRequest true "Fields to update"
// @Success 200 {object} models.Product
// @Failure 404 {object} map[string]string
// @Router /api/productos/{id} [patch]
func (h *Handler) PatchProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var req PatchProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Entrada inválida")
		return
	}

	updated, err := h.products.Patch(id, req.Precio, req.Activo)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			WriteError(w, http.StatusNotFound, "No encontrado")
			return
		}
		log.Printf("productos: patch %d failed: %v", id, err)
		WriteError(w, http.StatusInternalServerError, "Error del servidor")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// ReplaceProductHandler godoc
// @Summary Fully update a product and its inventory
// @Tags productos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param product body ReplaceProductRequest true "Full product"
// @Success 200 {object} models.Product
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/productos/{id} [put]
func (h *Handler) ReplaceProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var req ReplaceProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Entrada inválida")
		return
	}

	if req.Existencia == nil || req.Activo == nil {
		WriteError(w, http.StatusBadRequest, "nombre, unidad, precio, existencia son requeridos")
		return
	}
	if msg := validateProductFields(req.Nombre, req.Unidad, req.Precio); msg != "" {
		WriteError(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := h.products.Replace(models.Product{
		ID:       id,
		Name:     strings.TrimSpace(req.Nombre),
		Unit:     req.Unidad,
		Price:    *req.Precio,
		Active:   *req.Activo,
		Quantity: *req.Existencia,
	})
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrProductNotFound):
			WriteError(w, http.StatusNotFound, "Producto no encontrado")
		case errors.Is(err, repo.ErrDuplicateName):
			WriteError(w, http.StatusConflict, "El nombre ya existe")
		default:
			log.Printf("productos: replace %d failed: %v", id, err)
			WriteError(w, http.StatusInternalServerError, "Error del servidor")
		}
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteProductHandler godoc
// @Summary Delete a product and its inventory row
// @Tags productos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} MessageResult
// @Failure 404 {object} map[string]string
// @Router /api/productos/{id} [delete]
func (h *Handler) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.products.Delete(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			WriteError(w, http.StatusNotFound, "Producto no encontrado")
			return
		}
		log.Printf("productos: delete %d failed: %v", id, err)
		WriteError(w, http.StatusInternalServerError, "Error del servidor")
		return
	}
	writeJSON(w, http.StatusOK, MessageResult{Message: "Producto eliminado correctamente"})
}
