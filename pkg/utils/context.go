package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	PrincipalKey contextKey = "principal"
	TokenKey     contextKey = "token"
)

type PrincipalKind string

const (
	PrincipalIdentity PrincipalKind = "identity"
	PrincipalStaff    PrincipalKind = "staff"
)

// Principal is the authenticated caller resolved from a bearer token.
type Principal struct {
	ID   uuid.UUID
	Kind PrincipalKind
}

func (p Principal) IsStaff() bool {
	return p.Kind == PrincipalStaff
}

func (p Principal) IsIdentity() bool {
	return p.Kind == PrincipalIdentity
}

func SetPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}

func GetPrincipal(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(Principal)
	return p, ok
}

// IsStaffRequest true kalau caller adalah staff yang sudah terverifikasi
func IsStaffRequest(ctx context.Context) bool {
	p, ok := GetPrincipal(ctx)
	return ok && p.IsStaff()
}

// GetTokenFromContext mendapatkan token dari context
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}

// SetTokenContext menambahkan token ke context
func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}
