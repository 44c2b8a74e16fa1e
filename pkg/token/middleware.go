package token

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

// AuthUserKey is the context key under which AuthUserMiddleware stores
// the authenticated caller.
const AuthUserKey contextKey = "auth_user"

// AuthUser is the authenticated caller extracted from a verified token.
type AuthUser struct {
	Subject string
	Name    string
	Email   string
	Roles   []string
}

// HasRole reports whether the caller carries the given role.
func (u *AuthUser) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// AuthUserMiddleware maps verified JWT claims into an AuthUser on the
// request context. Must run after jwtauth.Verifier and Authenticator.
func AuthUserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			slog.Error("Failed getting claims from context", "err", err)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		authUser := &AuthUser{}
		if sub, ok := claims["sub"].(string); ok {
			authUser.Subject = sub
		}
		if name, ok := claims["name"].(string); ok {
			authUser.Name = name
		}
		if email, ok := claims["email"].(string); ok {
			authUser.Email = email
		}
		if roles, ok := claims["roles"].([]interface{}); ok {
			for _, role := range roles {
				if s, ok := role.(string); ok {
					authUser.Roles = append(authUser.Roles, s)
				}
			}
		}

		ctx := context.WithValue(r.Context(), AuthUserKey, authUser)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole guards a route subtree for callers carrying one of the
// given roles. Must run after AuthUserMiddleware.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authUser, ok := r.Context().Value(AuthUserKey).(*AuthUser)
			if !ok {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			for _, role := range roles {
				if authUser.HasRole(role) {
					next.ServeHTTP(w, r)
					return
				}
			}
			slog.Warn("Caller lacks required role", "subject", authUser.Subject, "required", roles)
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		})
	}
}
