package auth

import "context"

type contextKey string

const claimsKey = contextKey("claims")

// NewContext returns a copy of ctx carrying verified token claims.
func NewContext(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

// FromContext extracts the claims attached by the auth middleware.
func FromContext(ctx context.Context) (Claims, bool) {
	c, ok := ctx.Value(claimsKey).(Claims)
	return c, ok
}
