package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tiendafacil/pos-backend/internal/auth"
	api "github.com/tiendafacil/pos-backend/internal/http"
	"github.com/tiendafacil/pos-backend/internal/http/handlers"
	"github.com/tiendafacil/pos-backend/internal/models"
	"github.com/tiendafacil/pos-backend/internal/repo"
)

const (
	testEmail    = "admin@pos.local"
	testPassword = "secret"
	testSecret   = "test-secret"
)

type testEnv struct {
	router   http.Handler
	token    string
	users    *repo.InMemoryUserRepository
	products *repo.InMemoryProductRepository
	sales    *repo.InMemorySaleRepository
	tokens   *auth.TokenService
}

// newTestEnv wires the real router over in-memory repositories and logs in
// the fixture user. decrementStock propagates to the sale repository.
func newTestEnv(decrementStock bool) *testEnv {
	users := repo.NewInMemoryUserRepository()
	products := repo.NewInMemoryProductRepository()
	sales := repo.NewInMemorySaleRepository(products, decrementStock)
	reports := repo.NewInMemoryReportRepository()
	reports.SetRepositories(products, sales)

	hash, _ := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
	users.CreateUser(models.User{
		Name:         "Admin",
		Email:        testEmail,
		PasswordHash: string(hash),
	})

	tokens := auth.NewTokenService(testSecret, 8*time.Hour)
	h := handlers.New(users, products, sales, reports, tokens, nil, "4000")
	router := api.NewRouter(h, tokens, nil, nil)

	env := &testEnv{
		router:   router,
		users:    users,
		products: products,
		sales:    sales,
		tokens:   tokens,
	}

	token, err := env.login(testEmail, testPassword)
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
	env.token = token
	return env
}

func (e *testEnv) login(email, password string) (string, error) {
	w := e.doJSON(http.MethodPost, "/api/auth/login", handlers.LoginRequest{Email: email, Password: password}, false)
	if w.Code != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d: %s", w.Code, w.Body.String())
	}

	var resp handlers.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func (e *testEnv) doJSON(method, path string, payload any, authenticated bool) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) createProduct(p handlers.CreateProductRequest) *httptest.ResponseRecorder {
	return e.doJSON(http.MethodPost, "/api/productos", p, true)
}

func (e *testEnv) createSale(s handlers.CreateSaleRequest) *httptest.ResponseRecorder {
	return e.doJSON(http.MethodPost, "/api/ventas", s, true)
}

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func decodeError(w *httptest.ResponseRecorder) string {
	var resp map[string]string
	_ = json.NewDecoder(w.Body).Decode(&resp)
	return resp["error"]
}
