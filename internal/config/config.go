package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every externally tunable setting. All values come from the
// environment; only DATABASE_URL and JWT_SECRET have no usable default.
type Config struct {
	Port               string
	DatabaseURL        string
	JWTSecret          string
	JWTTTL             time.Duration
	AllowedOrigins     []string
	RedisAddr          string
	LoginRateLimit     float64
	LoginRateBurst     int
	DBMaxOpenConns     int
	DBConnMaxIdleTime  time.Duration
	SaleDecrementStock bool
}

func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "4000")
	v.SetDefault("JWT_TTL_HOURS", 8)
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOGIN_RATE_LIMIT", 1.0)
	v.SetDefault("LOGIN_RATE_BURST", 3)
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_CONN_MAX_IDLE_MINUTES", 5)
	v.SetDefault("SALE_DECREMENT_STOCK", false)

	return Config{
		Port:               v.GetString("PORT"),
		DatabaseURL:        v.GetString("DATABASE_URL"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTTTL:             time.Duration(v.GetInt("JWT_TTL_HOURS")) * time.Hour,
		AllowedOrigins:     splitOrigins(v.GetString("ALLOWED_ORIGINS")),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		LoginRateLimit:     v.GetFloat64("LOGIN_RATE_LIMIT"),
		LoginRateBurst:     v.GetInt("LOGIN_RATE_BURST"),
		DBMaxOpenConns:     v.GetInt("DB_MAX_OPEN_CONNS"),
		DBConnMaxIdleTime:  time.Duration(v.GetInt("DB_CONN_MAX_IDLE_MINUTES")) * time.Minute,
		SaleDecrementStock: v.GetBool("SALE_DECREMENT_STOCK"),
	}
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
