package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/rupp/ams-api/internal/config"
	pkgauth "github.com/rupp/ams-api/internal/pkg/auth"
)

// CreateDefaultData provisions the default admin account when none exists.
// The role catalog itself is seeded by the schema migration; this only
// covers data that depends on runtime configuration.
func CreateDefaultData(ctx context.Context, db *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		lgr.Warn().Msg("Admin credentials not configured, skipping default admin creation")
		return nil
	}

	var exists bool
	err := db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM app_users WHERE email = $1)`, cfg.Admin.Email).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check for default admin: %w", err)
	}
	if exists {
		return nil
	}

	hashed, err := pkgauth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var userID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO app_users (full_name, email, password)
		VALUES ('Administrator', $1, $2)
		RETURNING user_id`,
		cfg.Admin.Email, hashed).Scan(&userID)
	if err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO user_roles (user_id, role_id)
		SELECT $1, role_id FROM app_roles WHERE name = 'ADMIN'`,
		userID); err != nil {
		return fmt.Errorf("failed to assign admin role: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	lgr.Info().Str("email", cfg.Admin.Email).Msg("Default admin account created")
	return nil
}
