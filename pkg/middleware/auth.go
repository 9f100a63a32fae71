package middleware

import (
	"context"
	"net/http"
	"strings"

	"realty-backend/pkg/apperror"
	"realty-backend/pkg/token"
	"realty-backend/pkg/utils"

	"go.uber.org/zap"
)

// PrincipalResolver reloads the account behind a token and reports whether it
// may still act.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, p utils.Principal) error
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", false
	}
	scheme, value, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, token.BearerType) {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

// Authenticate validates the access token and stores the principal in the
// request context. Requests without a valid bearer are rejected.
func Authenticate(tokens *token.Manager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				utils.ResponseError(w, apperror.Unauthorized(apperror.CodeUnauthorized, "Missing or malformed authorization header"))
				return
			}

			principal, err := tokens.Parse(raw, token.TypeAccess)
			if err != nil {
				logger.Warn("Rejected access token", zap.Error(err), zap.String("path", r.URL.Path))
				utils.ResponseError(w, apperror.Unauthorized(apperror.CodeInvalidToken, "Invalid or expired token"))
				return
			}

			ctx := utils.SetPrincipal(r.Context(), principal)
			ctx = utils.SetTokenContext(ctx, raw)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth is Authenticate for public endpoints: a valid token attaches a
// principal, anything else continues anonymously.
func OptionalAuth(tokens *token.Manager, resolver PrincipalResolver, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			principal, err := tokens.Parse(raw, token.TypeAccess)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			// staff nonaktif diperlakukan sebagai anonim
			if err := resolver.ResolvePrincipal(r.Context(), principal); err != nil {
				logger.Debug("Optional principal not resolved", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(utils.SetPrincipal(r.Context(), principal)))
		})
	}
}

// RequireIdentity lets through active identities only. Must run after
// Authenticate.
func RequireIdentity(resolver PrincipalResolver, logger *zap.Logger) func(http.Handler) http.Handler {
	return authorize(resolver, logger, utils.Principal.IsIdentity, "Customer access required")
}

// RequireStaff lets through active staff only. Must run after Authenticate.
func RequireStaff(resolver PrincipalResolver, logger *zap.Logger) func(http.Handler) http.Handler {
	return authorize(resolver, logger, utils.Principal.IsStaff, "Admin access required")
}

func authorize(resolver PrincipalResolver, logger *zap.Logger, allowed func(utils.Principal) bool, denied string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := utils.GetPrincipal(r.Context())
			if !ok {
				utils.ResponseError(w, apperror.Unauthorized(apperror.CodeUnauthorized, "Authentication required"))
				return
			}
			if !allowed(principal) {
				logger.Warn("Principal kind not allowed",
					zap.String("principal_id", principal.ID.String()),
					zap.String("kind", string(principal.Kind)),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseError(w, apperror.Forbidden(apperror.CodeForbidden, denied))
				return
			}

			if err := resolver.ResolvePrincipal(r.Context(), principal); err != nil {
				appErr, ok := apperror.As(err)
				if !ok {
					appErr = apperror.Internal("Failed to resolve principal", err)
				}
				if appErr.Kind == apperror.KindInternal {
					logger.Error("Failed to resolve principal", zap.Error(err))
				}
				utils.ResponseError(w, appErr)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
