package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"user-accounts/internal/domain"
	repo "user-accounts/internal/domain/repository"
	"user-accounts/pkg/helpers"
)

// RefreshTokenStore keeps issued refresh tokens server-side so they can be
// revoked on logout.
type RefreshTokenStore interface {
	Store(ctx context.Context, token, username string, ttl time.Duration) error
	Exists(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
}

// Authentication is the token pair returned on successful login.
type Authentication struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthService verifies credentials and manages the refresh token lifecycle.
type AuthService struct {
	Repo   repo.UserRepository
	Hasher PasswordHash
	JWT    *helpers.JWTManager
	Tokens RefreshTokenStore
	Logger *logrus.Logger
}

func NewAuthService(repo repo.UserRepository, hasher PasswordHash, jwt *helpers.JWTManager, tokens RefreshTokenStore, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, Hasher: hasher, JWT: jwt, Tokens: tokens, Logger: logger}
}

// Login verifies username/password and issues an access/refresh token pair.
// The refresh token is recorded server-side until logout or expiry.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Authentication, error) {
	if username == "" || password == "" {
		return nil, domain.NewValidationError(domain.ErrAuthenticationPayloadNotComplete)
	}

	digest, err := s.Repo.GetPasswordByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !s.Hasher.Compare(digest, password) {
		return nil, domain.NewAuthenticationError("kredensial yang Anda masukkan salah")
	}

	id, err := s.Repo.GetIdByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	role, err := s.Repo.GetRoleByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	access, _, err := s.JWT.GenerateAccessToken(id, username, role)
	if err != nil {
		return nil, err
	}
	refresh, refreshExp, err := s.JWT.GenerateRefreshToken(id, username, role)
	if err != nil {
		return nil, err
	}

	if err := s.Tokens.Store(ctx, refresh, username, time.Until(refreshExp)); err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"id": id, "username": username}).Info("user logged in")
	}
	return &Authentication{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh validates a refresh token against its signature and the server-side
// store, then issues a fresh access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", domain.NewInvariantError("refresh token tidak valid")
	}

	ok, err := s.Tokens.Exists(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.NewInvariantError("refresh token tidak ditemukan di database")
	}

	access, _, err := s.JWT.GenerateAccessToken(claims.UserID, claims.Username, claims.Role)
	if err != nil {
		return "", err
	}
	return access, nil
}

// Logout revokes a refresh token.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	ok, err := s.Tokens.Exists(ctx, refreshToken)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NewInvariantError("refresh token tidak ditemukan di database")
	}
	return s.Tokens.Delete(ctx, refreshToken)
}
