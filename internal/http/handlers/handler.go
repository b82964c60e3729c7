package handlers

import (
	"github.com/tiendafacil/pos-backend/internal/auth"
	"github.com/tiendafacil/pos-backend/internal/http/ban"
	"github.com/tiendafacil/pos-backend/internal/repo"
)

// Handler carries every dependency the route handlers need. All stores are
// constructed once at process start and passed in; handlers hold no global
// state.
type Handler struct {
	users    repo.UserRepository
	products repo.ProductRepository
	sales    repo.SaleRepository
	reports  repo.ReportRepository
	tokens   *auth.TokenService
	bans     *ban.Service
	port     string
}

func New(
	users repo.UserRepository,
	products repo.ProductRepository,
	sales repo.SaleRepository,
	reports repo.ReportRepository,
	tokens *auth.TokenService,
	bans *ban.Service,
	port string,
) *Handler {
	return &Handler{
		users:    users,
		products: products,
		sales:    sales,
		reports:  reports,
		tokens:   tokens,
		bans:     bans,
		port:     port,
	}
}
