package auth

import "context"

type AuthService interface {
	// Signup registers a new account with the role-based starting leave
	// balance and an empty salary structure.
	Signup(ctx context.Context, req SignupRequest) (TokenResponse, error)

	// Login authenticates with email and password and issues a token pair.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the presented tokens.
	Logout(ctx context.Context, accessToken, refreshToken string) error
}
