package middleware

import (
	"net/http"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireHR requires the HR role
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrHRRoleRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrHRRoleRequired)
			return
		}

		if role != string(user.RoleHR) {
			response.HandleError(w, user.ErrHRRoleRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
