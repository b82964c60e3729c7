package auth

import (
	"testing"
	"time"

	"github.com/tiendafacil/pos-backend/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	user := models.User{ID: 7, Email: "caja@pos.local", Name: "Caja 1"}

	token, err := svc.Generate(user)
	if err != nil {
		t.Fatalf("error generating token: %v", err)
	}

	claims, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("error parsing token: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("expected user id 7, got %d", claims.UserID)
	}
	if claims.Email != "caja@pos.local" {
		t.Errorf("expected email 'caja@pos.local', got %q", claims.Email)
	}
	if claims.Name != "Caja 1" {
		t.Errorf("expected nombre 'Caja 1', got %q", claims.Name)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Hour).Generate(models.User{ID: 1})
	if err != nil {
		t.Fatalf("error generating token: %v", err)
	}

	if _, err := NewTokenService("secret-b", time.Hour).Parse(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParse_Expired(t *testing.T) {
	svc := NewTokenService("secret", -time.Minute)
	token, err := svc.Generate(models.User{ID: 1})
	if err != nil {
		t.Fatalf("error generating token: %v", err)
	}

	if _, err := svc.Parse(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParse_Garbage(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	if _, err := svc.Parse("not.a.token"); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
