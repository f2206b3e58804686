package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/auth"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/user"
	"github.com/stafftrack/timeclock-backend-go/internal/handler/http/response"
)

type contextKey string

const principalKey contextKey = "principal"

// LoadPrincipal resolves the token subject to a full user record,
// privileges included, and stores it on the request context. Every
// permission check downstream reads the stored principal, never the
// raw claims, so a role change takes effect on the next request.
func LoadPrincipal(userRepo user.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			u, err := userRepo.GetByID(r.Context(), userID)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, &u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the principal stored by LoadPrincipal, or nil
// outside an authenticated request.
func CurrentUser(ctx context.Context) *user.User {
	u, _ := ctx.Value(principalKey).(*user.User)
	return u
}
