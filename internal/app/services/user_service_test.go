package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rupp/ams-api/internal/app/models"
	"github.com/rupp/ams-api/internal/pkg/apperrors"
)

func seedUsers() *fakeUserStore {
	return newFakeUserStore(
		&models.User{ID: 1, FullName: "Admin", Email: "admin@example.com", Roles: []models.RoleType{models.RoleAdmin}},
		&models.User{ID: 2, FullName: "Teacher", Email: "t2@example.com", Roles: []models.RoleType{models.RoleTeacher}},
		&models.User{ID: 3, FullName: "Student", Email: "s3@example.com", Roles: []models.RoleType{models.RoleStudent}},
	)
}

func TestListUsersAdminOnly(t *testing.T) {
	svc := NewUserService(seedUsers())
	ctx := context.Background()

	users, err := svc.ListUsers(ctx, adminID())
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if len(users) != 3 {
		t.Errorf("got %d users, want 3", len(users))
	}

	if _, err := svc.ListUsers(ctx, studentID(3)); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("student list error = %v, want ErrPermissionDenied", err)
	}
	if _, err := svc.ListUsers(ctx, teacherID(2)); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("teacher list error = %v, want ErrPermissionDenied", err)
	}
}

func TestGetUserAdminOrSelf(t *testing.T) {
	svc := NewUserService(seedUsers())
	ctx := context.Background()

	if _, err := svc.GetUser(ctx, adminID(), 3); err != nil {
		t.Errorf("admin should read any account, got %v", err)
	}

	if _, err := svc.GetUser(ctx, studentID(3), 3); err != nil {
		t.Errorf("student should read their own account, got %v", err)
	}

	// Ownership is checked after the fetch, so a foreign account yields 403
	if _, err := svc.GetUser(ctx, studentID(3), 2); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("error = %v, want ErrPermissionDenied", err)
	}

	// A missing account still surfaces not-found for a permitted role
	if _, err := svc.GetUser(ctx, adminID(), 99); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
}

func TestGetMyUser(t *testing.T) {
	svc := NewUserService(seedUsers())
	ctx := context.Background()

	user, err := svc.GetMyUser(ctx, studentID(3))
	if err != nil {
		t.Fatalf("GetMyUser returned error: %v", err)
	}
	if user.ID != 3 {
		t.Errorf("got account %d, want the caller's own account", user.ID)
	}

	// A token whose account has since been deleted resolves to not-found
	if _, err := svc.GetMyUser(ctx, teacherID(42)); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("admin creates user", func(t *testing.T) {
		users := seedUsers()
		svc := NewUserService(users)

		user, err := svc.CreateUser(ctx, adminID(), "New User", "new@example.com", "secret123", []string{"TEACHER"})
		if err != nil {
			t.Fatalf("CreateUser returned error: %v", err)
		}
		if !user.HasRole(models.RoleTeacher) {
			t.Error("created user should carry TEACHER role")
		}
	})

	t.Run("non-admin denied", func(t *testing.T) {
		svc := NewUserService(seedUsers())
		_, err := svc.CreateUser(ctx, teacherID(2), "X", "x@example.com", "secret123", []string{"STUDENT"})
		if !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Errorf("error = %v, want ErrPermissionDenied", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := NewUserService(seedUsers())
		_, err := svc.CreateUser(ctx, adminID(), "X", "admin@example.com", "secret123", []string{"STUDENT"})
		if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			t.Errorf("error = %v, want ErrEmailAlreadyExists", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		svc := NewUserService(seedUsers())
		_, err := svc.CreateUser(ctx, adminID(), "X", "x@example.com", "secret123", []string{"ROOT"})
		if !errors.Is(err, apperrors.ErrUnknownRole) {
			t.Errorf("error = %v, want ErrUnknownRole", err)
		}
	})

	t.Run("database reports duplicate email", func(t *testing.T) {
		// The email passes the advisory pre-check but the insert hits the
		// unique constraint; the constraint is authoritative
		users := seedUsers()
		users.createErr = &pgconn.PgError{Code: "23505"}
		svc := NewUserService(users)

		_, err := svc.CreateUser(ctx, adminID(), "X", "fresh@example.com", "secret123", []string{"STUDENT"})
		if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			t.Errorf("error = %v, want ErrEmailAlreadyExists", err)
		}
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("self update merges non-empty fields", func(t *testing.T) {
		users := seedUsers()
		svc := NewUserService(users)

		updated, err := svc.UpdateUser(ctx, studentID(3), 3, "Renamed", "", "")
		if err != nil {
			t.Fatalf("UpdateUser returned error: %v", err)
		}
		if updated.FullName != "Renamed" {
			t.Errorf("FullName = %q, want Renamed", updated.FullName)
		}
		if updated.Email != "s3@example.com" {
			t.Errorf("empty email should leave the field unchanged, got %q", updated.Email)
		}
	})

	t.Run("foreign account denied", func(t *testing.T) {
		svc := NewUserService(seedUsers())
		_, err := svc.UpdateUser(ctx, studentID(3), 2, "Hacked", "", "")
		if !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Errorf("error = %v, want ErrPermissionDenied", err)
		}
	})

	t.Run("email conflict", func(t *testing.T) {
		svc := NewUserService(seedUsers())
		_, err := svc.UpdateUser(ctx, adminID(), 3, "", "t2@example.com", "")
		if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			t.Errorf("error = %v, want ErrEmailAlreadyExists", err)
		}
	})

	t.Run("database reports duplicate email on update", func(t *testing.T) {
		users := seedUsers()
		users.updateErr = &pgconn.PgError{Code: "23505"}
		svc := NewUserService(users)

		_, err := svc.UpdateUser(ctx, adminID(), 3, "", "fresh@example.com", "")
		if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			t.Errorf("error = %v, want ErrEmailAlreadyExists", err)
		}
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("admin deletes", func(t *testing.T) {
		users := seedUsers()
		svc := NewUserService(users)
		if err := svc.DeleteUser(ctx, adminID(), 3); err != nil {
			t.Fatalf("DeleteUser returned error: %v", err)
		}
		if _, err := users.GetByID(ctx, 3); !errors.Is(err, apperrors.ErrUserNotFound) {
			t.Error("user should have been deleted")
		}
	})

	t.Run("non-admin denied before fetch", func(t *testing.T) {
		svc := NewUserService(seedUsers())
		// id 99 does not exist; the role check still wins
		if err := svc.DeleteUser(ctx, studentID(3), 99); !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Errorf("error = %v, want ErrPermissionDenied", err)
		}
	})

	t.Run("missing account", func(t *testing.T) {
		svc := NewUserService(seedUsers())
		if err := svc.DeleteUser(ctx, adminID(), 99); !errors.Is(err, apperrors.ErrUserNotFound) {
			t.Errorf("error = %v, want ErrUserNotFound", err)
		}
	})
}
