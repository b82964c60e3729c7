package handlers

import (
	"strings"

	"github.com/tiendafacil/pos-backend/internal/models"
)

func isValidUnit(unit string) bool {
	return unit == models.UnitKg || unit == models.UnitPiece
}

// validateProductFields checks the fields shared by create and replace.
// Returns an empty string when everything is present and valid.
func validateProductFields(nombre, unidad string, precio *float64) string {
	if strings.TrimSpace(nombre) == "" || unidad == "" || precio == nil {
		return "nombre, unidad, precio son requeridos"
	}
	if !isValidUnit(unidad) {
		return "unidad inválida (kg|pieza)"
	}
	return ""
}
