package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rupp/ams-api/internal/app/auth"
	"github.com/rupp/ams-api/internal/app/models"
	"github.com/rupp/ams-api/internal/app/models/dto"
	"github.com/rupp/ams-api/internal/pkg/apperrors"
	"github.com/rupp/ams-api/internal/pkg/dberrors"
	"github.com/rupp/ams-api/internal/pkg/helpers"
)

// StudentService defines the interface for student record operations
type StudentService interface {
	ListStudents(ctx context.Context, identity auth.Identity) ([]*models.Student, error)
	GetStudent(ctx context.Context, identity auth.Identity, id int64) (*models.Student, error)
	GetStudentByStudentNo(ctx context.Context, identity auth.Identity, studentNo string) (*models.Student, error)
	GetStudentByCardID(ctx context.Context, identity auth.Identity, cardID string) (*models.Student, error)
	GetStudentByUserID(ctx context.Context, identity auth.Identity, userID int64) (*models.Student, error)
	CreateStudent(ctx context.Context, identity auth.Identity, req dto.CreateStudentRequest) (*models.Student, error)
	UpdateStudent(ctx context.Context, identity auth.Identity, id int64, req dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, identity auth.Identity, id int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentStore studentStore
	userStore    userStore
}

// NewStudentService creates a new student service instance
func NewStudentService(students studentStore, users userStore) StudentService {
	return &studentServiceImpl{
		studentStore: students,
		userStore:    users,
	}
}

// ListStudents retrieves the student records visible to the caller.
// Admins and teachers see every record, students only their own.
func (s *studentServiceImpl) ListStudents(ctx context.Context, identity auth.Identity) ([]*models.Student, error) {
	if err := auth.Require(auth.ResourceStudent, auth.ActionList, identity); err != nil {
		return nil, err
	}

	if identity.HasAnyRole(models.RoleAdmin, models.RoleTeacher) {
		return s.studentStore.GetAll(ctx)
	}

	if !identity.Resolved() {
		return []*models.Student{}, nil
	}

	student, err := s.studentStore.GetByUserID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return []*models.Student{}, nil
		}
		return nil, err
	}
	return []*models.Student{student}, nil
}

// GetStudent retrieves a student record by ID, subject to visibility rules
func (s *studentServiceImpl) GetStudent(ctx context.Context, identity auth.Identity, id int64) (*models.Student, error) {
	if err := auth.Require(auth.ResourceStudent, auth.ActionGet, identity); err != nil {
		return nil, err
	}

	student, err := s.studentStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !auth.CanViewStudent(identity, student) {
		return nil, apperrors.NewForbiddenError("you do not have access to this student record")
	}

	return student, nil
}

// GetStudentByStudentNo retrieves a student record by student number
func (s *studentServiceImpl) GetStudentByStudentNo(ctx context.Context, identity auth.Identity, studentNo string) (*models.Student, error) {
	if err := auth.Require(auth.ResourceStudent, auth.ActionGet, identity); err != nil {
		return nil, err
	}

	student, err := s.studentStore.GetByStudentNo(ctx, studentNo)
	if err != nil {
		return nil, err
	}

	if !auth.CanViewStudent(identity, student) {
		return nil, apperrors.NewForbiddenError("you do not have access to this student record")
	}

	return student, nil
}

// GetStudentByCardID retrieves a student record by student card ID
func (s *studentServiceImpl) GetStudentByCardID(ctx context.Context, identity auth.Identity, cardID string) (*models.Student, error) {
	if err := auth.Require(auth.ResourceStudent, auth.ActionGet, identity); err != nil {
		return nil, err
	}

	student, err := s.studentStore.GetByStudentCardID(ctx, cardID)
	if err != nil {
		return nil, err
	}

	if !auth.CanViewStudent(identity, student) {
		return nil, apperrors.NewForbiddenError("you do not have access to this student record")
	}

	return student, nil
}

// GetStudentByUserID retrieves the student record of a given user
func (s *studentServiceImpl) GetStudentByUserID(ctx context.Context, identity auth.Identity, userID int64) (*models.Student, error) {
	if err := auth.Require(auth.ResourceStudent, auth.ActionGet, identity); err != nil {
		return nil, err
	}

	student, err := s.studentStore.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !auth.CanViewStudent(identity, student) {
		return nil, apperrors.NewForbiddenError("you do not have access to this student record")
	}

	return student, nil
}

// CreateStudent creates a student record. Admins may create one for any
// user; everyone else only for themselves.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, identity auth.Identity, req dto.CreateStudentRequest) (*models.Student, error) {
	if err := auth.Require(auth.ResourceStudent, auth.ActionCreate, identity); err != nil {
		return nil, err
	}

	if !identity.IsAdmin() {
		if !identity.Resolved() || req.UserID != identity.UserID {
			return nil, apperrors.NewForbiddenError("you can only create a student record for yourself")
		}
	}

	if _, err := s.userStore.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	if count, err := s.studentStore.CountByStudentNo(ctx, req.StudentNo, 0); err != nil {
		return nil, fmt.Errorf("error checking student number uniqueness: %w", err)
	} else if count > 0 {
		return nil, apperrors.ErrStudentNoAlreadyExists
	}

	if count, err := s.studentStore.CountByStudentCardID(ctx, req.StudentCardID, 0); err != nil {
		return nil, fmt.Errorf("error checking student card uniqueness: %w", err)
	} else if count > 0 {
		return nil, apperrors.ErrStudentCardAlreadyExists
	}

	if count, err := s.studentStore.CountByUserID(ctx, req.UserID, 0); err != nil {
		return nil, fmt.Errorf("error checking student uniqueness: %w", err)
	} else if count > 0 {
		return nil, apperrors.NewConflictError("a student record already exists for this user")
	}

	dob, err := helpers.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date of birth", apperrors.ErrValidationFailed)
	}

	student := &models.Student{
		StudentNo:     req.StudentNo,
		StudentCardID: req.StudentCardID,
		KhmerName:     req.KhmerName,
		EnglishName:   req.EnglishName,
		Gender:        req.Gender,
		PhoneNumber:   req.PhoneNumber,
		DateOfBirth:   dob,
		UserID:        req.UserID,
	}

	if err := s.studentStore.Create(ctx, student); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("student record conflicts with an existing record")
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	return student, nil
}

// UpdateStudent updates a student's mutable fields. Admins may update any
// record, everyone else only their own. Empty fields are left unchanged.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, identity auth.Identity, id int64, req dto.UpdateStudentRequest) (*models.Student, error) {
	if err := auth.Require(auth.ResourceStudent, auth.ActionUpdate, identity); err != nil {
		return nil, err
	}

	student, err := s.studentStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := auth.RequireOwner(identity, student.UserID); err != nil {
		return nil, err
	}

	if req.StudentNo != "" && req.StudentNo != student.StudentNo {
		count, err := s.studentStore.CountByStudentNo(ctx, req.StudentNo, id)
		if err != nil {
			return nil, fmt.Errorf("error checking student number uniqueness: %w", err)
		}
		if count > 0 {
			return nil, apperrors.ErrStudentNoAlreadyExists
		}
		student.StudentNo = req.StudentNo
	}

	if req.StudentCardID != "" && req.StudentCardID != student.StudentCardID {
		count, err := s.studentStore.CountByStudentCardID(ctx, req.StudentCardID, id)
		if err != nil {
			return nil, fmt.Errorf("error checking student card uniqueness: %w", err)
		}
		if count > 0 {
			return nil, apperrors.ErrStudentCardAlreadyExists
		}
		student.StudentCardID = req.StudentCardID
	}

	if req.DateOfBirth != "" {
		dob, err := helpers.ParseDate(req.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date of birth", apperrors.ErrValidationFailed)
		}
		student.DateOfBirth = dob
	}

	if req.KhmerName != "" {
		student.KhmerName = req.KhmerName
	}
	if req.EnglishName != "" {
		student.EnglishName = req.EnglishName
	}
	if req.Gender != "" {
		student.Gender = req.Gender
	}
	if req.PhoneNumber != "" {
		student.PhoneNumber = req.PhoneNumber
	}

	if err := s.studentStore.Update(ctx, student); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("student record conflicts with an existing record")
		}
		return nil, err
	}

	return s.studentStore.GetByID(ctx, id)
}

// DeleteStudent deletes a student record. Admin only.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, identity auth.Identity, id int64) error {
	if err := auth.Require(auth.ResourceStudent, auth.ActionDelete, identity); err != nil {
		return err
	}

	if _, err := s.studentStore.GetByID(ctx, id); err != nil {
		return err
	}

	return s.studentStore.Delete(ctx, id)
}
