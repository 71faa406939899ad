package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rupp/ams-api/internal/app/models"
	"github.com/rupp/ams-api/internal/app/models/dto"
	"github.com/rupp/ams-api/internal/pkg/apperrors"
	pkgauth "github.com/rupp/ams-api/internal/pkg/auth"
	"github.com/rupp/ams-api/internal/pkg/dberrors"
	"github.com/rupp/ams-api/internal/pkg/logger"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userStore userStore
	tokens    tokenIssuer
}

// NewAuthService creates a new auth service instance
func NewAuthService(users userStore, tokens tokenIssuer) AuthService {
	return &authServiceImpl{
		userStore: users,
		tokens:    tokens,
	}
}

// Login authenticates a user by email and password and issues a token
func (s *authServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userStore.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			// Same error as a wrong password, the response must not reveal
			// whether the email is registered
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error during login: %w", err)
	}

	if !pkgauth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildAuthResponse(user)
}

// Register creates a new user account with the requested roles and issues a
// token. The endpoint is unauthenticated, so the ADMIN role can never be
// self-assigned; administrator accounts are provisioned through the user
// management API.
func (s *authServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	roles := make([]models.RoleType, 0, len(req.Roles))
	for _, name := range req.Roles {
		role, ok := models.ParseRole(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownRole, name)
		}
		if role == models.RoleAdmin {
			return nil, apperrors.NewForbiddenError("administrator accounts cannot be self-registered")
		}
		roles = append(roles, role)
	}

	count, err := s.userStore.CountByEmail(ctx, req.Email, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if count > 0 {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: hashed,
		Roles:    roles,
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		if errors.Is(err, apperrors.ErrUnknownRole) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	logger.Info().Int64("userId", user.ID).Str("email", user.Email).Msg("User registered")

	return s.buildAuthResponse(user)
}

func (s *authServiceImpl) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, string(r))
	}

	return &dto.AuthResponse{
		UserID:      user.ID,
		FullName:    user.FullName,
		Email:       user.Email,
		Roles:       roles,
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
