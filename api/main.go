package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/tiendafacil/pos-backend/internal/auth"
	"github.com/tiendafacil/pos-backend/internal/config"
	"github.com/tiendafacil/pos-backend/internal/db"
	api "github.com/tiendafacil/pos-backend/internal/http"
	"github.com/tiendafacil/pos-backend/internal/http/ban"
	"github.com/tiendafacil/pos-backend/internal/http/handlers"
	rl "github.com/tiendafacil/pos-backend/internal/http/rate_limiter"
	"github.com/tiendafacil/pos-backend/internal/repo"
)

var ctx = context.Background()

// @title POS Backend API
// @version 1.0
// @description REST API for authentication, catalog, sales recording and reporting.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("❌ Environment variable JWT_SECRET not found")
	}

	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	// Login abuse tracking is optional; without redis every ban check is a
	// no-op.
	var banSvc *ban.Service
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		banSvc = ban.NewService(rdb, ctx)
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)

	h := handlers.New(
		repo.NewPostgresUserRepository(database),
		repo.NewPostgresProductRepository(database),
		repo.NewPostgresSaleRepository(database, cfg.SaleDecrementStock),
		repo.NewPostgresReportRepository(database),
		tokens,
		banSvc,
		cfg.Port,
	)

	limiter := rl.New(cfg.LoginRateLimit, cfg.LoginRateBurst)
	go limiter.StartCleanupLoop()

	r := api.NewRouter(h, tokens, cfg.AllowedOrigins, limiter)
	log.Printf("✅ Server running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
