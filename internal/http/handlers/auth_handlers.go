package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tiendafacil/pos-backend/internal/auth"
	"github.com/tiendafacil/pos-backend/internal/repo"
)

// LoginHandler godoc
// @Summary Authenticate by email/password and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "email and password"
// @Success 200 {object} LoginResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/auth/login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Email y password requeridos")
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || strings.TrimSpace(req.Password) == "" {
		WriteError(w, http.StatusBadRequest, "Email y password requeridos")
		return
	}

	ip := ClientIP(r)
	if h.bans.IsBanned(ip) {
		WriteError(w, http.StatusTooManyRequests, "Demasiados intentos fallidos, intenta más tarde")
		return
	}

	user, err := h.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			// same response as a wrong password: no user enumeration
			h.bans.RecordFailure(ip)
			WriteError(w, http.StatusUnauthorized, "Credenciales inválidas")
			return
		}
		log.Printf("login: user lookup failed: %v", err)
		WriteError(w, http.StatusInternalServerError, "Error del servidor")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		h.bans.RecordFailure(ip)
		WriteError(w, http.StatusUnauthorized, "Credenciales inválidas")
		return
	}
	h.bans.ClearStrikes(ip)

	token, err := h.tokens.Generate(user)
	if err != nil {
		log.Printf("login: failed to generate token: %v", err)
		WriteError(w, http.StatusInternalServerError, "Error del servidor")
		return
	}

	writeJSON(w, http.StatusOK, LoginResult{
		Token:   token,
		Usuario: UserSummary{ID: user.ID, Email: user.Email, Nombre: user.Name},
	})
}

// MeHandler godoc
// @Summary Return the logged-in user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserSummary
// @Failure 404 {object} map[string]string
// @Router /api/auth/me [get]
func (h *Handler) MeHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusInternalServerError, "Error del servidor")
		return
	}

	user, err := h.users.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			WriteError(w, http.StatusNotFound, "Usuario no encontrado")
			return
		}
		log.Printf("me: user lookup failed: %v", err)
		WriteError(w, http.StatusInternalServerError, "Error del servidor")
		return
	}

	writeJSON(w, http.StatusOK, UserSummary{ID: user.ID, Email: user.Email, Nombre: user.Name})
}
