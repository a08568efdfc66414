package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nyaay-saathi/internal/models"
	"nyaay-saathi/internal/repository"
	"nyaay-saathi/pkg/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	DemoEmail    = "demo@nyaaysaathi.com"
	demoName     = "Demo User"
	demoPassword = "demo123"

	minPasswordLen = 6
)

// AuthResult is a logged-in user and the session token issued for them.
type AuthResult struct {
	User  *models.User
	Token string
}

type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *auth.JWTManager
	logger     *zap.Logger
	now        func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, jwtManager *auth.JWTManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		logger:     logger,
		now:        time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account and logs it in.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if name == "" || email == "" || password == "" {
		return nil, validationError("All fields are required")
	}
	if len(password) < minPasswordLen {
		return nil, validationError("Password must be at least 6 characters")
	}

	user, err := s.createUser(ctx, name, email, password)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return nil, conflictError("Email already registered", err)
		}
		return nil, err
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID.String()))

	return s.issue(user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, unauthorizedError("Invalid email or password", ErrInvalidCredentials)
		}
		return nil, err
	}

	if !auth.CheckPasswordHash(password, user.Password) {
		return nil, unauthorizedError("Invalid email or password", ErrInvalidCredentials)
	}

	user.LastLogin = s.now()
	if err := s.userRepo.UpdateLastLogin(ctx, email, user.LastLogin); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	return s.issue(user)
}

// EnsureDemoAccount creates the demo account if it is missing.
func (s *AuthService) EnsureDemoAccount(ctx context.Context) (bool, error) {
	_, err := s.userRepo.GetByEmail(ctx, DemoEmail)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return false, err
	}

	if _, err := s.createUser(ctx, demoName, DemoEmail, demoPassword); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return false, nil
		}
		return false, err
	}

	s.logger.Info("Demo account created", zap.String("email", DemoEmail))
	return true, nil
}

func (s *AuthService) createUser(ctx context.Context, name, email, password string) (*models.User, error) {
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user := &models.User{
		ID:          uuid.New(),
		Name:        name,
		Email:       email,
		Password:    hashedPassword,
		CreatedAt:   now,
		LastLogin:   now,
		ChatHistory: []*models.SavedChat{},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, err := s.jwtManager.GenerateToken(user.ID.String(), user.Email, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) TokenDuration() time.Duration {
	return s.jwtManager.GetTokenDuration()
}
