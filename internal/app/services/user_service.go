package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rupp/ams-api/internal/app/auth"
	"github.com/rupp/ams-api/internal/app/models"
	"github.com/rupp/ams-api/internal/pkg/apperrors"
	pkgauth "github.com/rupp/ams-api/internal/pkg/auth"
	"github.com/rupp/ams-api/internal/pkg/dberrors"
)

// UserService defines the interface for user account operations.
// Every method takes the caller identity; role sufficiency is checked
// before any record is loaded and record-level rules after.
type UserService interface {
	ListUsers(ctx context.Context, identity auth.Identity) ([]*models.User, error)
	GetUser(ctx context.Context, identity auth.Identity, id int64) (*models.User, error)
	GetMyUser(ctx context.Context, identity auth.Identity) (*models.User, error)
	CreateUser(ctx context.Context, identity auth.Identity, fullName, email, password string, roleNames []string) (*models.User, error)
	UpdateUser(ctx context.Context, identity auth.Identity, id int64, fullName, email, password string) (*models.User, error)
	DeleteUser(ctx context.Context, identity auth.Identity, id int64) error
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userStore userStore
}

// NewUserService creates a new user service instance
func NewUserService(users userStore) UserService {
	return &userServiceImpl{
		userStore: users,
	}
}

// ListUsers retrieves all users. Admin only.
func (s *userServiceImpl) ListUsers(ctx context.Context, identity auth.Identity) ([]*models.User, error) {
	if err := auth.Require(auth.ResourceUser, auth.ActionList, identity); err != nil {
		return nil, err
	}

	users, err := s.userStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}

// GetUser retrieves a user by ID. Admin may read any account, everyone
// else only their own.
func (s *userServiceImpl) GetUser(ctx context.Context, identity auth.Identity, id int64) (*models.User, error) {
	if err := auth.Require(auth.ResourceUser, auth.ActionGet, identity); err != nil {
		return nil, err
	}

	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := auth.RequireOwner(identity, user.ID); err != nil {
		return nil, err
	}

	return user, nil
}

// GetMyUser retrieves the caller's own account
func (s *userServiceImpl) GetMyUser(ctx context.Context, identity auth.Identity) (*models.User, error) {
	if err := auth.Require(auth.ResourceUser, auth.ActionGet, identity); err != nil {
		return nil, err
	}

	if !identity.Resolved() {
		return nil, apperrors.ErrUserNotFound
	}

	return s.userStore.GetByID(ctx, identity.UserID)
}

// CreateUser creates a new user account with the given roles. Admin only.
func (s *userServiceImpl) CreateUser(ctx context.Context, identity auth.Identity, fullName, email, password string, roleNames []string) (*models.User, error) {
	if err := auth.Require(auth.ResourceUser, auth.ActionCreate, identity); err != nil {
		return nil, err
	}

	roles := make([]models.RoleType, 0, len(roleNames))
	for _, name := range roleNames {
		role, ok := models.ParseRole(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownRole, name)
		}
		roles = append(roles, role)
	}

	count, err := s.userStore.CountByEmail(ctx, email, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if count > 0 {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := pkgauth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FullName: fullName,
		Email:    email,
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

	return user, nil
}

// UpdateUser updates a user's mutable fields. Admin may update any
// account, everyone else only their own. Empty fields are left unchanged.
func (s *userServiceImpl) UpdateUser(ctx context.Context, identity auth.Identity, id int64, fullName, email, password string) (*models.User, error) {
	if err := auth.Require(auth.ResourceUser, auth.ActionUpdate, identity); err != nil {
		return nil, err
	}

	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := auth.RequireOwner(identity, user.ID); err != nil {
		return nil, err
	}

	if email != "" && email != user.Email {
		count, err := s.userStore.CountByEmail(ctx, email, id)
		if err != nil {
			return nil, fmt.Errorf("error checking email: %w", err)
		}
		if count > 0 {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		user.Email = email
	}

	if fullName != "" {
		user.FullName = fullName
	}

	if password != "" {
		hashed, err := pkgauth.HashPassword(password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		user.Password = hashed
	}

	if err := s.userStore.Update(ctx, user); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, err
	}

	return s.userStore.GetByID(ctx, id)
}

// DeleteUser deletes a user account. Admin only.
func (s *userServiceImpl) DeleteUser(ctx context.Context, identity auth.Identity, id int64) error {
	if err := auth.Require(auth.ResourceUser, auth.ActionDelete, identity); err != nil {
		return err
	}

	if _, err := s.userStore.GetByID(ctx, id); err != nil {
		return err
	}

	return s.userStore.Delete(ctx, id)
}
