package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rupp/ams-api/internal/app/models"
	"github.com/rupp/ams-api/internal/pkg/apperrors"
)

// UserRepository handles database operations for users and their roles
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create inserts a user and its role assignments in one transaction
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO app_users (full_name, email, password)
		VALUES ($1, $2, $3)
		RETURNING user_id, created_at, updated_at
	`

	err = tx.QueryRow(ctx, query, user.FullName, user.Email, user.Password).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return err
	}

	for _, role := range user.Roles {
		cmdTag, err := tx.Exec(ctx, `
			INSERT INTO user_roles (user_id, role_id)
			SELECT $1, role_id FROM app_roles WHERE name = $2`,
			user.ID, string(role))
		if err != nil {
			return err
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrUnknownRole
		}
	}

	return tx.Commit(ctx)
}

// GetByID retrieves a user by ID, including its role set
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT user_id, full_name, email, password, created_at, updated_at
		FROM app_users
		WHERE user_id = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	if err := r.loadRoles(ctx, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByEmail retrieves a user by email, including its role set
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT user_id, full_name, email, password, created_at, updated_at
		FROM app_users
		WHERE email = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	if err := r.loadRoles(ctx, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetAll retrieves all users with their role sets
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT u.user_id, u.full_name, u.email, u.password, u.created_at, u.updated_at, COALESCE(ro.name, '')
		FROM app_users u
		LEFT JOIN user_roles ur ON ur.user_id = u.user_id
		LEFT JOIN app_roles ro ON ro.role_id = ur.role_id
		ORDER BY u.user_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	byID := make(map[int64]*models.User)
	for rows.Next() {
		var user models.User
		var roleName string
		if err := rows.Scan(
			&user.ID,
			&user.FullName,
			&user.Email,
			&user.Password,
			&user.CreatedAt,
			&user.UpdatedAt,
			&roleName,
		); err != nil {
			return nil, err
		}

		existing, ok := byID[user.ID]
		if !ok {
			existing = &user
			byID[user.ID] = existing
			users = append(users, existing)
		}
		if role, valid := models.ParseRole(roleName); valid {
			existing.Roles = append(existing.Roles, role)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// Update updates a user's mutable fields
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE app_users
		SET full_name = $1, email = $2, password = $3, updated_at = NOW()
		WHERE user_id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query, user.FullName, user.Email, user.Password, user.ID)
	if err != nil {
		return err
	}

	// The caller has already confirmed the row exists, so zero rows here
	// is a write failure, not a missing record
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUpdateFailed
	}

	return nil
}

// Delete deletes a user by ID. Role assignments cascade.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM app_users WHERE user_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// CountByEmail counts users holding the given email, excluding excludeID
// when it is non-zero. Used as an advisory duplicate pre-check.
func (r *UserRepository) CountByEmail(ctx context.Context, email string, excludeID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM app_users WHERE email = $1 AND user_id <> $2`,
		email, excludeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting users by email: %w", err)
	}
	return count, nil
}

// loadRoles populates the role set of a user
func (r *UserRepository) loadRoles(ctx context.Context, user *models.User) error {
	rows, err := r.db.Query(ctx, `
		SELECT ro.name
		FROM app_roles ro
		JOIN user_roles ur ON ur.role_id = ro.role_id
		WHERE ur.user_id = $1
		ORDER BY ro.name`,
		user.ID)
	if err != nil {
		return fmt.Errorf("error loading user roles: %w", err)
	}
	defer rows.Close()

	user.Roles = nil
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		if role, valid := models.ParseRole(name); valid {
			user.Roles = append(user.Roles, role)
		}
	}

	return rows.Err()
}
