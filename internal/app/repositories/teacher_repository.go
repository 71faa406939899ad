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

const teacherColumns = `teacher_id, employee_code, hire_date, status, user_id, created_at, updated_at`

// TeacherRepository handles database operations for teachers
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
	}
}

func scanTeacher(row pgx.Row) (*models.Teacher, error) {
	var teacher models.Teacher
	err := row.Scan(
		&teacher.ID,
		&teacher.EmployeeCode,
		&teacher.HireDate,
		&teacher.Status,
		&teacher.UserID,
		&teacher.CreatedAt,
		&teacher.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

// Create inserts a new teacher record
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	query := `
		INSERT INTO teachers (employee_code, hire_date, status, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING teacher_id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		teacher.EmployeeCode, teacher.HireDate, teacher.Status, teacher.UserID).
		Scan(&teacher.ID, &teacher.CreatedAt, &teacher.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a teacher by ID
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE teacher_id = $1`

	teacher, err := scanTeacher(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return teacher, nil
}

// GetByEmployeeCode retrieves a teacher by its employee code
func (r *TeacherRepository) GetByEmployeeCode(ctx context.Context, employeeCode string) (*models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE employee_code = $1`

	teacher, err := scanTeacher(r.db.QueryRow(ctx, query, employeeCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return teacher, nil
}

// GetByUserID retrieves the teacher record belonging to a user
func (r *TeacherRepository) GetByUserID(ctx context.Context, userID int64) (*models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE user_id = $1`

	teacher, err := scanTeacher(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return teacher, nil
}

// GetAll retrieves all teacher records
func (r *TeacherRepository) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers ORDER BY teacher_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		teacher, err := scanTeacher(rows)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teachers, nil
}

// GetByStatus retrieves all teacher records holding the given status
func (r *TeacherRepository) GetByStatus(ctx context.Context, status models.TeacherStatus) ([]*models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE status = $1 ORDER BY teacher_id`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		teacher, err := scanTeacher(rows)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teachers, nil
}

// Update updates a teacher's mutable fields
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	query := `
		UPDATE teachers
		SET employee_code = $1, hire_date = $2, status = $3, updated_at = NOW()
		WHERE teacher_id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		teacher.EmployeeCode, teacher.HireDate, teacher.Status, teacher.ID)
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

// UpdateStatus updates only the status of a teacher record
func (r *TeacherRepository) UpdateStatus(ctx context.Context, id int64, status models.TeacherStatus) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE teachers SET status = $1, updated_at = NOW() WHERE teacher_id = $2`,
		status, id)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUpdateFailed
	}

	return nil
}

// Delete deletes a teacher record by ID
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM teachers WHERE teacher_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}

// CountByEmployeeCode counts teachers holding the given employee code,
// excluding excludeID when it is non-zero.
func (r *TeacherRepository) CountByEmployeeCode(ctx context.Context, employeeCode string, excludeID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM teachers WHERE employee_code = $1 AND teacher_id <> $2`,
		employeeCode, excludeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting teachers by employee code: %w", err)
	}
	return count, nil
}

// CountByUserID counts teacher records owned by the given user, excluding
// excludeID when it is non-zero. A user holds at most one teacher record.
func (r *TeacherRepository) CountByUserID(ctx context.Context, userID, excludeID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM teachers WHERE user_id = $1 AND teacher_id <> $2`,
		userID, excludeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting teachers by user ID: %w", err)
	}
	return count, nil
}
