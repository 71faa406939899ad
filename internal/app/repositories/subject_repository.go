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

const subjectColumns = `subject_id, subject_name, subject_description, group_level, created_at, updated_at`

// SubjectRepository handles database operations for subjects
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
	}
}

func scanSubject(row pgx.Row) (*models.Subject, error) {
	var subject models.Subject
	err := row.Scan(
		&subject.ID,
		&subject.SubjectName,
		&subject.Description,
		&subject.GroupLevel,
		&subject.CreatedAt,
		&subject.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

// Create inserts a new subject
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (subject_name, subject_description, group_level)
		VALUES ($1, $2, $3)
		RETURNING subject_id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, subject.SubjectName, subject.Description, subject.GroupLevel).
		Scan(&subject.ID, &subject.CreatedAt, &subject.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a subject by ID
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	query := `SELECT ` + subjectColumns + ` FROM subjects WHERE subject_id = $1`

	subject, err := scanSubject(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	return subject, nil
}

// GetByName retrieves a subject by its name
func (r *SubjectRepository) GetByName(ctx context.Context, name string) (*models.Subject, error) {
	query := `SELECT ` + subjectColumns + ` FROM subjects WHERE subject_name = $1`

	subject, err := scanSubject(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	return subject, nil
}

// GetAll retrieves subjects, optionally filtered by group level.
// An empty filter value matches everything.
func (r *SubjectRepository) GetAll(ctx context.Context, groupLevel string) ([]*models.Subject, error) {
	query := `SELECT ` + subjectColumns + ` FROM subjects`
	args := []interface{}{}

	if groupLevel != "" {
		query += ` WHERE group_level = $1`
		args = append(args, groupLevel)
	}
	query += ` ORDER BY subject_id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		subject, err := scanSubject(rows)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

// Update updates a subject's mutable fields
func (r *SubjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	query := `
		UPDATE subjects
		SET subject_name = $1, subject_description = $2, group_level = $3, updated_at = NOW()
		WHERE subject_id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		subject.SubjectName, subject.Description, subject.GroupLevel, subject.ID)
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

// Delete deletes a subject by ID
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM subjects WHERE subject_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting subject: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}

	return nil
}

// CountByName counts subjects holding the given name, excluding excludeID
// when it is non-zero.
func (r *SubjectRepository) CountByName(ctx context.Context, name string, excludeID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM subjects WHERE subject_name = $1 AND subject_id <> $2`,
		name, excludeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting subjects by name: %w", err)
	}
	return count, nil
}
