package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/repositories"
	"github.com/ArowuTest/raffle-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

var _ AuthService = (*authService)(nil)

type authService struct {
	adminRepo repositories.AdminUserRepository
	tokens    *jwt.TokenService
}

// NewAuthService creates a new AuthService implementation
func NewAuthService(adminRepo repositories.AdminUserRepository, tokens *jwt.TokenService) AuthService {
	return &authService{
		adminRepo: adminRepo,
		tokens:    tokens,
	}
}

// Login checks the admin credentials and issues a token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.adminRepo.FindByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		slog.Warn("Login failed: unknown admin", "email", email)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		slog.Warn("Login failed: wrong password", "email", email)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	slog.Info("Admin logged in", "email", email, "role", user.Role)
	return &models.LoginResponse{Token: token, ExpiresAt: expiresAt, Role: user.Role}, nil
}

// EnsureAdmin creates the bootstrap admin when it does not exist yet.
// An empty email disables bootstrapping.
func (s *authService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil
	}

	_, err := s.adminRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to look up admin: %w", err)
	}
	if password == "" {
		return errors.New("admin password is required to create the bootstrap admin")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.adminRepo.Create(ctx, &models.AdminUser{
		Email:    email,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	slog.Info("Bootstrap admin created", "email", email)
	return nil
}
