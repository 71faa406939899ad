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

const studentColumns = `student_id, student_no, student_card_id, khmer_name, english_name,
	gender, phone_number, date_of_birth, user_id, created_at, updated_at`

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.StudentNo,
		&student.StudentCardID,
		&student.KhmerName,
		&student.EnglishName,
		&student.Gender,
		&student.PhoneNumber,
		&student.DateOfBirth,
		&student.UserID,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Create inserts a new student record
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (student_no, student_card_id, khmer_name, english_name,
			gender, phone_number, date_of_birth, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING student_id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.StudentNo, student.StudentCardID, student.KhmerName, student.EnglishName,
		student.Gender, student.PhoneNumber, student.DateOfBirth, student.UserID).
		Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByStudentNo retrieves a student by its student number
func (r *StudentRepository) GetByStudentNo(ctx context.Context, studentNo string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_no = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, studentNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByStudentCardID retrieves a student by its card ID
func (r *StudentRepository) GetByStudentCardID(ctx context.Context, cardID string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_card_id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, cardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByUserID retrieves the student record belonging to a user
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE user_id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetAll retrieves all student records
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY student_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update updates a student's mutable fields
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET student_no = $1, student_card_id = $2, khmer_name = $3, english_name = $4,
			gender = $5, phone_number = $6, date_of_birth = $7, updated_at = NOW()
		WHERE student_id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.StudentNo, student.StudentCardID, student.KhmerName, student.EnglishName,
		student.Gender, student.PhoneNumber, student.DateOfBirth, student.ID)
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

// Delete deletes a student record by ID
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE student_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// CountByStudentNo counts students holding the given student number,
// excluding excludeID when it is non-zero.
func (r *StudentRepository) CountByStudentNo(ctx context.Context, studentNo string, excludeID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM students WHERE student_no = $1 AND student_id <> $2`,
		studentNo, excludeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students by student number: %w", err)
	}
	return count, nil
}

// CountByStudentCardID counts students holding the given card ID,
// excluding excludeID when it is non-zero.
func (r *StudentRepository) CountByStudentCardID(ctx context.Context, cardID string, excludeID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM students WHERE student_card_id = $1 AND student_id <> $2`,
		cardID, excludeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students by card ID: %w", err)
	}
	return count, nil
}

// CountByUserID counts student records owned by the given user, excluding
// excludeID when it is non-zero. A user holds at most one student record.
func (r *StudentRepository) CountByUserID(ctx context.Context, userID, excludeID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM students WHERE user_id = $1 AND student_id <> $2`,
		userID, excludeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students by user ID: %w", err)
	}
	return count, nil
}
