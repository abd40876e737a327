package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/auth"
	"github.com/gymdesk/gymdesk-backend-go/internal/domain/user"
	"github.com/gymdesk/gymdesk-backend-go/internal/pkg/database"
	"github.com/gymdesk/gymdesk-backend-go/internal/pkg/jwt"
	"github.com/gymdesk/gymdesk-backend-go/internal/pkg/oauth"
	"github.com/gymdesk/gymdesk-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	jwt.Service
	postgresql.JWTRepository
	google oauth.GoogleService
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, jwtService jwt.Service, jwtRepository postgresql.JWTRepository, googleService oauth.GoogleService) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepository,
		Service:        jwtService,
		JWTRepository:  jwtRepository,
		google:         googleService,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// issueTokens generates an access/refresh pair and persists the refresh
// token inside a transaction.
func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse
	tokenResponse.Role = string(userData.Role)

	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, postgresql.TxKey, tx)

		var err error
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.CreateRefreshToken(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionReq); err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	existing, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to get user data by email: %w", err)
	}
	if existing.ID != "" {
		return user.ErrUserEmailExists
	}

	hashedPassword, err := a.hashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		Email:        req.Email,
		PasswordHash: &hashedPassword,
		Role:         user.Role(req.Role),
	}
	if req.StaffID != "" {
		newUser.StaffID = &req.StaffID
	}

	if _, err := a.UserRepository.Create(ctx, newUser); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, userData, sessionReq)
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if a.google == nil {
		return auth.TokenResponse{}, auth.ErrOAuthNotConfigured
	}

	oauthToken, err := a.google.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to exchange oauth code: %w", err)
	}
	info, err := a.google.VerifyUser(ctx, oauthToken)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to verify google user: %w", err)
	}

	// Google sign-in never provisions accounts; the console owner
	// creates them via register.
	userData, err := a.UserRepository.GetByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, auth.ErrUserNotFound
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.OAuthProvider == nil || userData.OAuthProviderID == nil {
		userData, err = a.UserRepository.LinkGoogleAccount(ctx, info.GoogleID, userData.Email)
		if err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to link google account: %w", err)
		}
	}

	return a.issueTokens(ctx, userData, sessionReq)
}

// RefreshToken implements auth.AuthService. The presented token is
// rotated: revoked and replaced with a fresh pair.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	token, err := jwtauth.VerifyToken(a.JWTAuth(), refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	isRevoked, err := a.JWTRepository.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if isRevoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrUserNotFound
	}

	if err := a.JWTRepository.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return a.issueTokens(ctx, userData, sessionReq)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, postgresql.TxKey, tx)

		isRevoked, err := a.JWTRepository.IsRefreshTokenRevoked(txCtx, refreshToken)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("failed to check if refresh token is revoked: %w", err)
		}
		if !isRevoked {
			if err := a.JWTRepository.RevokeRefreshToken(txCtx, refreshToken); err != nil {
				return fmt.Errorf("failed to revoke refresh token: %w", err)
			}
		}
		return nil
	})
}
