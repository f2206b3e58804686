package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/auth"
	"github.com/stafftrack/timeclock-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests whose bearer token is missing, is not
// an access token, or carries no subject. Signature verification
// itself happens in jwtauth.Verifier upstream; this only inspects the
// verified claims.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}
		if token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		if tokenType, _ := claims["type"].(string); tokenType != "access" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		if userID, _ := claims["user_id"].(string); userID == "" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		next.ServeHTTP(w, r)
	})
}
