package utils

import (
	"context"
)

type contextKey string

const (
	AdminKey contextKey = "admin"
	TokenKey contextKey = "token"
)

// GetAdminFromContext returns the username set by the session middleware.
func GetAdminFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(AdminKey)
	if v == nil {
		return "", false
	}

	username, ok := v.(string)
	return username, ok && username != ""
}

func SetAdminContext(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, AdminKey, username)
}

// GetTokenFromContext mendapatkan token dari context
func GetTokenFromContext(ctx context.Context) (string, bool) {
	tokenVal := ctx.Value(TokenKey)
	if tokenVal == nil {
		return "", false
	}

	token, ok := tokenVal.(string)
	return token, ok
}

// SetTokenContext menambahkan token ke context
func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}
