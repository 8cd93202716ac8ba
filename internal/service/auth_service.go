package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eznproject/undangan/internal/domain"
	"github.com/eznproject/undangan/internal/dto"
	"github.com/eznproject/undangan/internal/repository"
	"github.com/eznproject/undangan/pkg/logger"
)

var (
	// ErrInvalidCredentials is returned for a bad username or password
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrSessionNotFound is returned for unknown or revoked sessions
	ErrSessionNotFound = errors.New("session not found")
)

// AuthServiceConfig contains configuration for the auth service
type AuthServiceConfig struct {
	JWTSecret      string
	AccessTokenTTL time.Duration
	SessionTTL     time.Duration
	Issuer         string
}

// AuthService authenticates admin operators. Guests never log in; their
// invitation token is their only credential.
type AuthService interface {
	// Login verifies credentials, opens a server-side session, and issues an
	// access token
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Me returns the authenticated user
	Me(ctx context.Context, userID string) (*dto.UserResponse, error)
	// Logout revokes the session behind an access token
	Logout(ctx context.Context, sessionID string) error
	// ValidateSession checks that a session is still live
	ValidateSession(ctx context.Context, sessionID string) error
	// SeedAdmin ensures the bootstrap admin account exists
	SeedAdmin(ctx context.Context, username, password string) error
}

// authService implements AuthService
type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	config      *AuthServiceConfig
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	config *AuthServiceConfig,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		config:      config,
	}
}

// Login verifies credentials and issues an access token
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.CheckPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}

	sessionID := uuid.New().String()
	if err := s.sessionRepo.Create(ctx, sessionID, user.ID, s.config.SessionTTL); err != nil {
		return nil, err
	}

	accessToken, err := s.generateToken(user, sessionID)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "admin logged in", zap.String("username", user.Username))
	return &dto.LoginResponse{
		AccessToken: accessToken,
		ExpiresIn:   int64(s.config.AccessTokenTTL.Seconds()),
		User:        *toUserResponse(user),
	}, nil
}

// Me returns the authenticated user
func (s *authService) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Logout revokes the session behind an access token
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}

// ValidateSession checks that a session is still live
func (s *authService) ValidateSession(ctx context.Context, sessionID string) error {
	if _, err := s.sessionRepo.Get(ctx, sessionID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	return nil
}

// SeedAdmin ensures the bootstrap admin account exists
func (s *authService) SeedAdmin(ctx context.Context, username, password string) error {
	_, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	user, err := domain.NewUser(username, password, "Administrator")
	if err != nil {
		return err
	}
	err = s.userRepo.Create(ctx, user)
	if errors.Is(err, domain.ErrUsernameExists) {
		// Another instance seeded first.
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("bootstrap admin created", zap.String("username", username))
	return nil
}

func (s *authService) generateToken(user *domain.User, sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":    user.ID,
		"username":   user.Username,
		"session_id": sessionID,
		"iss":        s.config.Issuer,
		"iat":        now.Unix(),
		"exp":        now.Add(s.config.AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

func toUserResponse(user *domain.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
	}
}
