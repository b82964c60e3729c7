package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tiendafacil/pos-backend/internal/models"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity embedded in an access token. Once the signature
// checks out the claims are trusted as-is; no database round-trip happens
// on authenticated requests.
type Claims struct {
	UserID int
	Email  string
	Name   string
}

// TokenService mints and verifies HS256 access tokens with a server-held
// secret and a fixed lifetime.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Generate(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":     user.ID,
		"email":  user.Email,
		"nombre": user.Name,
		"exp":    time.Now().Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies signature and expiry and returns the embedded claims.
// Any failure collapses into ErrInvalidToken; callers never learn why a
// token was rejected.
func (s *TokenService) Parse(tokenStr string) (Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	id, ok := mc["id"].(float64)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	claims := Claims{UserID: int(id)}
	if email, ok := mc["email"].(string); ok {
		claims.Email = email
	}
	if name, ok := mc["nombre"].(string); ok {
		claims.Name = name
	}
	return claims, nil
}
