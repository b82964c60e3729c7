package handlers

import "time"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserSummary struct {
	ID     int    `json:"id"`
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
}

type LoginResult struct {
	Token   string      `json:"token"`
	Usuario UserSummary `json:"usuario"`
}

type CreateProductRequest struct {
	Nombre     string   `json:"nombre"`
	Unidad     string   `json:"unidad"`
	Precio     *float64 `json:"precio"`
	Existencia float64  `json:"existencia"`
}

type PatchProductRequest struct {
	Precio *float64 `json:"precio"`
	Activo *bool    `json:"activo"`
}

type ReplaceProductRequest struct {
	Nombre     string   `json:"nombre"`
	Unidad     string   `json:"unidad"`
	Precio     *float64 `json:"precio"`
	Existencia *float64 `json:"existencia"`
	Activo     *bool    `json:"activo"`
}

type SaleItemRequest struct {
	ProductoID int     `json:"producto_id"`
	Cantidad   float64 `json:"cantidad"`
	Precio     float64 `json:"precio"`
}

type CreateSaleRequest struct {
	Items []SaleItemRequest `json:"items"`
	Total float64           `json:"total"`
}

type CreateSaleResult struct {
	ID    int       `json:"id"`
	Total float64   `json:"total"`
	Fecha time.Time `json:"fecha"`
}

type MessageResult struct {
	Message string `json:"message"`
}
