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

const profileColumns = `profile_id, first_name, last_name, date_of_birth, place_of_birth,
	current_address, phone_number, gender, card_id, nationality, is_admin_owned, user_id,
	created_at, updated_at`

// ProfileRepository handles database operations for user profiles
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var profile models.Profile
	err := row.Scan(
		&profile.ID,
		&profile.FirstName,
		&profile.LastName,
		&profile.DateOfBirth,
		&profile.PlaceOfBirth,
		&profile.CurrentAddress,
		&profile.PhoneNumber,
		&profile.Gender,
		&profile.CardID,
		&profile.Nationality,
		&profile.IsAdminOwned,
		&profile.UserID,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Create inserts a new profile
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO user_profiles (first_name, last_name, date_of_birth, place_of_birth,
			current_address, phone_number, gender, card_id, nationality, is_admin_owned, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING profile_id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		profile.FirstName, profile.LastName, profile.DateOfBirth, profile.PlaceOfBirth,
		profile.CurrentAddress, profile.PhoneNumber, profile.Gender, profile.CardID,
		profile.Nationality, profile.IsAdminOwned, profile.UserID).
		Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(ctx context.Context, id int64) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE profile_id = $1`

	profile, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}

	return profile, nil
}

// GetByUserID retrieves the profile belonging to a user
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE user_id = $1`

	profile, err := scanProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}

	return profile, nil
}

// GetAll retrieves all profiles. When excludeAdminOwned is true,
// admin-owned profiles are filtered out except the caller's own
// (identified by ownUserID, 0 for none).
func (r *ProfileRepository) GetAll(ctx context.Context, excludeAdminOwned bool, ownUserID int64) ([]*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profiles`
	args := []interface{}{}
	if excludeAdminOwned {
		query += ` WHERE is_admin_owned = FALSE OR user_id = $1`
		args = append(args, ownUserID)
	}
	query += ` ORDER BY profile_id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*models.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

// Update updates a profile's mutable fields
func (r *ProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	query := `
		UPDATE user_profiles
		SET first_name = $1, last_name = $2, date_of_birth = $3, place_of_birth = $4,
			current_address = $5, phone_number = $6, gender = $7, card_id = $8,
			nationality = $9, updated_at = NOW()
		WHERE profile_id = $10
	`

	cmdTag, err := r.db.Exec(ctx, query,
		profile.FirstName, profile.LastName, profile.DateOfBirth, profile.PlaceOfBirth,
		profile.CurrentAddress, profile.PhoneNumber, profile.Gender, profile.CardID,
		profile.Nationality, profile.ID)
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

// Delete deletes a profile by ID
func (r *ProfileRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM user_profiles WHERE profile_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}

	return nil
}

// CountByCardID counts profiles holding the given card ID, excluding
// excludeID when it is non-zero. Used as an advisory duplicate pre-check.
func (r *ProfileRepository) CountByCardID(ctx context.Context, cardID string, excludeID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM user_profiles WHERE card_id = $1 AND profile_id <> $2`,
		cardID, excludeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting profiles by card ID: %w", err)
	}
	return count, nil
}

// CountByUserID counts profiles owned by the given user, excluding
// excludeID when it is non-zero. A user holds at most one profile.
func (r *ProfileRepository) CountByUserID(ctx context.Context, userID, excludeID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM user_profiles WHERE user_id = $1 AND profile_id <> $2`,
		userID, excludeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting profiles by user ID: %w", err)
	}
	return count, nil
}
