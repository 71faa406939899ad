package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rupp/ams-api/internal/app/models"
	"github.com/rupp/ams-api/internal/app/models/dto"
	"github.com/rupp/ams-api/internal/pkg/apperrors"
	pkgauth "github.com/rupp/ams-api/internal/pkg/auth"
)

func TestLogin(t *testing.T) {
	hashed, err := pkgauth.HashPassword("correct-password")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	users := newFakeUserStore(&models.User{
		ID:       1,
		FullName: "Sok Dara",
		Email:    "dara@example.com",
		Password: hashed,
		Roles:    []models.RoleType{models.RoleStudent},
	})
	svc := NewAuthService(users, fakeTokenIssuer{})
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Login(ctx, dto.LoginRequest{Email: "dara@example.com", Password: "correct-password"})
		if err != nil {
			t.Fatalf("Login returned error: %v", err)
		}
		if resp.UserID != 1 {
			t.Errorf("resp.UserID = %d, want 1", resp.UserID)
		}
		if resp.AccessToken == "" {
			t.Error("expected an access token")
		}
		if len(resp.Roles) != 1 || resp.Roles[0] != "STUDENT" {
			t.Errorf("resp.Roles = %v, want [STUDENT]", resp.Roles)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, dto.LoginRequest{Email: "dara@example.com", Password: "wrong"})
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("error = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		users := newFakeUserStore()
		svc := NewAuthService(users, fakeTokenIssuer{})

		resp, err := svc.Register(ctx, dto.RegisterRequest{
			FullName: "Sok Dara",
			Email:    "dara@example.com",
			Password: "secret123",
			Roles:    []string{"STUDENT"},
		})
		if err != nil {
			t.Fatalf("Register returned error: %v", err)
		}
		if resp.UserID == 0 {
			t.Error("expected a non-zero user ID")
		}

		stored, err := users.GetByEmail(ctx, "dara@example.com")
		if err != nil {
			t.Fatalf("user was not stored: %v", err)
		}
		if stored.Password == "secret123" {
			t.Error("stored password must be hashed")
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		svc := NewAuthService(newFakeUserStore(), fakeTokenIssuer{})

		_, err := svc.Register(ctx, dto.RegisterRequest{
			FullName: "Sok Dara",
			Email:    "dara@example.com",
			Password: "secret123",
			Roles:    []string{"WIZARD"},
		})
		if !errors.Is(err, apperrors.ErrUnknownRole) {
			t.Errorf("error = %v, want ErrUnknownRole", err)
		}
	})

	t.Run("admin role cannot be self-assigned", func(t *testing.T) {
		users := newFakeUserStore()
		svc := NewAuthService(users, fakeTokenIssuer{})

		_, err := svc.Register(ctx, dto.RegisterRequest{
			FullName: "Sok Dara",
			Email:    "dara@example.com",
			Password: "secret123",
			Roles:    []string{"ADMIN"},
		})
		if !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Errorf("error = %v, want ErrPermissionDenied", err)
		}

		// Mixing ADMIN in alongside allowed roles must fail the same way
		_, err = svc.Register(ctx, dto.RegisterRequest{
			FullName: "Sok Dara",
			Email:    "dara@example.com",
			Password: "secret123",
			Roles:    []string{"STUDENT", "ADMIN"},
		})
		if !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Errorf("mixed roles: error = %v, want ErrPermissionDenied", err)
		}

		if _, err := users.GetByEmail(ctx, "dara@example.com"); !errors.Is(err, apperrors.ErrUserNotFound) {
			t.Error("no account should have been created")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		users := newFakeUserStore(&models.User{ID: 1, Email: "dara@example.com"})
		svc := NewAuthService(users, fakeTokenIssuer{})

		_, err := svc.Register(ctx, dto.RegisterRequest{
			FullName: "Sok Dara",
			Email:    "dara@example.com",
			Password: "secret123",
			Roles:    []string{"STUDENT"},
		})
		if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			t.Errorf("error = %v, want ErrEmailAlreadyExists", err)
		}
	})
}
