package auth

import "context"

type AuthService interface {
	// Register creates a console account; admin only.
	Register(ctx context.Context, req RegisterRequest) error

	Login(ctx context.Context, loginReq LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// LoginWithGoogle completes the OAuth2 code exchange and signs the
	// user in; the account must already exist.
	LoginWithGoogle(ctx context.Context, code string, sessionReq SessionTrackingRequest) (TokenResponse, error)

	RefreshToken(ctx context.Context, refreshToken string, sessionReq SessionTrackingRequest) (TokenResponse, error)

	Logout(ctx context.Context, refreshToken string) error
}
