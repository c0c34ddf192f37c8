package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// identity is the caller as described by the verified access token.
type identity struct {
	UserID string
	Name   string
	Role   string
}

func identityFromRequest(r *http.Request) (identity, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return identity{}, false
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return identity{}, false
	}

	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	return identity{UserID: userID, Name: name, Role: role}, true
}
