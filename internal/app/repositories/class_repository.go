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

const classColumns = `class_id, class_name, grade_level, academic_year, created_at, updated_at`

// ClassRepository handles database operations for classes
type ClassRepository struct {
	db *pgxpool.Pool
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{
		db: db,
	}
}

func scanClass(row pgx.Row) (*models.Class, error) {
	var class models.Class
	err := row.Scan(
		&class.ID,
		&class.ClassName,
		&class.GradeLevel,
		&class.AcademicYear,
		&class.CreatedAt,
		&class.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &class, nil
}

// Create inserts a new class
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	query := `
		INSERT INTO classes (class_name, grade_level, academic_year)
		VALUES ($1, $2, $3)
		RETURNING class_id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, class.ClassName, class.GradeLevel, class.AcademicYear).
		Scan(&class.ID, &class.CreatedAt, &class.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a class by ID
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE class_id = $1`

	class, err := scanClass(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, fmt.Errorf("error retrieving class: %w", err)
	}

	return class, nil
}

// GetByName retrieves a class by its name
func (r *ClassRepository) GetByName(ctx context.Context, name string) (*models.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE class_name = $1`

	class, err := scanClass(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, fmt.Errorf("error retrieving class: %w", err)
	}

	return class, nil
}

// GetAll retrieves classes, optionally filtered by grade level and
// academic year. Empty filter values match everything.
func (r *ClassRepository) GetAll(ctx context.Context, gradeLevel, academicYear string) ([]*models.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE 1=1`
	args := []interface{}{}

	if gradeLevel != "" {
		args = append(args, gradeLevel)
		query += fmt.Sprintf(" AND grade_level = $%d", len(args))
	}
	if academicYear != "" {
		args = append(args, academicYear)
		query += fmt.Sprintf(" AND academic_year = $%d", len(args))
	}
	query += ` ORDER BY class_id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		class, err := scanClass(rows)
		if err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return classes, nil
}

// Update updates a class's mutable fields
func (r *ClassRepository) Update(ctx context.Context, class *models.Class) error {
	query := `
		UPDATE classes
		SET class_name = $1, grade_level = $2, academic_year = $3, updated_at = NOW()
		WHERE class_id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		class.ClassName, class.GradeLevel, class.AcademicYear, class.ID)
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

// Delete deletes a class by ID
func (r *ClassRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM classes WHERE class_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting class: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}

	return nil
}

// CountByName counts classes holding the given name, excluding excludeID
// when it is non-zero.
func (r *ClassRepository) CountByName(ctx context.Context, name string, excludeID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM classes WHERE class_name = $1 AND class_id <> $2`,
		name, excludeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting classes by name: %w", err)
	}
	return count, nil
}
