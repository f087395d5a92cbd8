package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/ScriptedSpythoN/demoos/internal/domain/auth"
	"github.com/ScriptedSpythoN/demoos/internal/domain/user"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/jwt"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/oauth"
)

// Service handles registration, credential and Google login, token
// refresh and revocation.
type Service struct {
	users  user.UserRepository
	jwt    jwt.Service
	google oauth.GoogleService // nil when Google login is not configured
	logger *slog.Logger
}

func NewService(users user.UserRepository, jwtSvc jwt.Service, google oauth.GoogleService, logger *slog.Logger) *Service {
	return &Service{users: users, jwt: jwtSvc, google: google, logger: logger}
}

func (s *Service) Register(ctx context.Context, req auth.RegisterRequest) (user.User, error) {
	role := user.Role(req.Role)
	if !role.Valid() {
		return user.User{}, user.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.users.Create(ctx, user.User{
		Username:     req.Username,
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	})
	if err != nil {
		return user.User{}, err
	}

	s.logger.Info("user registered",
		slog.String("user_id", created.ID),
		slog.String("role", string(created.Role)))
	return created, nil
}

func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	u, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if !u.IsActive {
		return auth.LoginResponse{}, auth.ErrAccountInactive
	}

	return s.issueTokens(u)
}

func (s *Service) issueTokens(u user.User) (auth.LoginResponse, error) {
	access, expiresAt, err := s.jwt.GenerateAccessToken(u.ID, u.Username, u.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("generate access token: %w", err)
	}
	refresh, _, err := s.jwt.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("generate refresh token: %w", err)
	}

	return auth.LoginResponse{
		UserID:   u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Role:     string(u.Role),
		Token: auth.TokenResponse{
			AccessToken:  access,
			RefreshToken: refresh,
			TokenType:    "Bearer",
			ExpiresAt:    expiresAt,
		},
	}, nil
}

// Refresh exchanges a valid, unrevoked refresh token for a fresh token
// pair. The old refresh token is revoked so it cannot be replayed.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	if s.jwt.IsTokenRevoked(refreshToken) {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	token, err := s.jwt.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	if typ, _ := claims["type"].(string); typ != "refresh" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	if !u.IsActive {
		return auth.LoginResponse{}, auth.ErrAccountInactive
	}

	s.jwt.RevokeToken(refreshToken)
	return s.issueTokens(u)
}

// Logout revokes the refresh token.
func (s *Service) Logout(_ context.Context, refreshToken string) {
	if refreshToken != "" {
		s.jwt.RevokeToken(refreshToken)
	}
}

// GoogleRedirectURL starts the OAuth2 flow.
func (s *Service) GoogleRedirectURL(userAgent string) (url, state string, err error) {
	if s.google == nil {
		return "", "", auth.ErrOAuthNotConfigured
	}
	state = s.google.GenerateState(userAgent)
	return s.google.RedirectURL(state), state, nil
}

// GoogleCallback completes the OAuth2 flow. The Google account's email
// must belong to an existing active user; this is a login path only,
// never a registration path.
func (s *Service) GoogleCallback(ctx context.Context, code string) (auth.LoginResponse, error) {
	if s.google == nil {
		return auth.LoginResponse{}, auth.ErrOAuthNotConfigured
	}

	token, err := s.google.VerifyToken(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("exchange oauth code: %w", err)
	}
	info, err := s.google.VerifyUser(ctx, token)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("fetch google user: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}
	if !u.IsActive {
		return auth.LoginResponse{}, auth.ErrAccountInactive
	}

	return s.issueTokens(u)
}

// DepartmentStats aggregates user headcounts by role for dashboards.
func (s *Service) DepartmentStats(ctx context.Context) (auth.DepartmentStats, error) {
	counts, err := s.users.CountByRole(ctx)
	if err != nil {
		return auth.DepartmentStats{}, fmt.Errorf("count users by role: %w", err)
	}
	stats := auth.DepartmentStats{
		TotalStudents: counts[user.RoleStudent],
		TotalTeachers: counts[user.RoleTeacher],
		TotalHODs:     counts[user.RoleHOD],
	}
	stats.TotalUsers = stats.TotalStudents + stats.TotalTeachers + stats.TotalHODs
	return stats, nil
}
