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

// TeacherService defines the interface for teacher record operations
type TeacherService interface {
	ListTeachers(ctx context.Context, identity auth.Identity) ([]*models.Teacher, error)
	ListTeachersByStatus(ctx context.Context, identity auth.Identity, status string) ([]*models.Teacher, error)
	GetTeacher(ctx context.Context, identity auth.Identity, id int64) (*models.Teacher, error)
	GetTeacherByEmployeeCode(ctx context.Context, identity auth.Identity, employeeCode string) (*models.Teacher, error)
	GetTeacherByUserID(ctx context.Context, identity auth.Identity, userID int64) (*models.Teacher, error)
	GetMyTeacherRecord(ctx context.Context, identity auth.Identity) (*models.Teacher, error)
	CreateTeacher(ctx context.Context, identity auth.Identity, req dto.CreateTeacherRequest) (*models.Teacher, error)
	UpdateTeacher(ctx context.Context, identity auth.Identity, id int64, req dto.UpdateTeacherRequest) (*models.Teacher, error)
	UpdateTeacherStatus(ctx context.Context, identity auth.Identity, id int64, status string) (*models.Teacher, error)
	DeleteTeacher(ctx context.Context, identity auth.Identity, id int64) error
}

// teacherServiceImpl implements the TeacherService interface
type teacherServiceImpl struct {
	teacherStore teacherStore
	userStore    userStore
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teachers teacherStore, users userStore) TeacherService {
	return &teacherServiceImpl{
		teacherStore: teachers,
		userStore:    users,
	}
}

// ListTeachers retrieves the teacher records visible to the caller.
// Admins see every record, teachers only their own; students are denied.
func (s *teacherServiceImpl) ListTeachers(ctx context.Context, identity auth.Identity) ([]*models.Teacher, error) {
	if err := auth.Require(auth.ResourceTeacher, auth.ActionList, identity); err != nil {
		return nil, err
	}

	if identity.IsAdmin() {
		return s.teacherStore.GetAll(ctx)
	}

	if !identity.Resolved() {
		return []*models.Teacher{}, nil
	}

	teacher, err := s.teacherStore.GetByUserID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeacherNotFound) {
			return []*models.Teacher{}, nil
		}
		return nil, err
	}
	return []*models.Teacher{teacher}, nil
}

// ListTeachersByStatus retrieves teacher records holding the given status.
// Admin only; the status filter spans the whole staff roster.
func (s *teacherServiceImpl) ListTeachersByStatus(ctx context.Context, identity auth.Identity, status string) ([]*models.Teacher, error) {
	if err := auth.Require(auth.ResourceTeacher, auth.ActionList, identity); err != nil {
		return nil, err
	}
	if !identity.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only administrators can filter teachers by status")
	}

	parsed := models.TeacherStatus(status)
	if !parsed.Valid() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidTeacherStatus, status)
	}

	return s.teacherStore.GetByStatus(ctx, parsed)
}

// GetTeacher retrieves a teacher record by ID, subject to visibility rules
func (s *teacherServiceImpl) GetTeacher(ctx context.Context, identity auth.Identity, id int64) (*models.Teacher, error) {
	if err := auth.Require(auth.ResourceTeacher, auth.ActionGet, identity); err != nil {
		return nil, err
	}

	teacher, err := s.teacherStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !auth.CanViewTeacher(identity, teacher) {
		return nil, apperrors.NewForbiddenError("you do not have access to this teacher record")
	}

	return teacher, nil
}

// GetTeacherByEmployeeCode retrieves a teacher record by employee code
func (s *teacherServiceImpl) GetTeacherByEmployeeCode(ctx context.Context, identity auth.Identity, employeeCode string) (*models.Teacher, error) {
	if err := auth.Require(auth.ResourceTeacher, auth.ActionGet, identity); err != nil {
		return nil, err
	}

	teacher, err := s.teacherStore.GetByEmployeeCode(ctx, employeeCode)
	if err != nil {
		return nil, err
	}

	if !auth.CanViewTeacher(identity, teacher) {
		return nil, apperrors.NewForbiddenError("you do not have access to this teacher record")
	}

	return teacher, nil
}

// GetTeacherByUserID retrieves the teacher record of a given user
func (s *teacherServiceImpl) GetTeacherByUserID(ctx context.Context, identity auth.Identity, userID int64) (*models.Teacher, error) {
	if err := auth.Require(auth.ResourceTeacher, auth.ActionGet, identity); err != nil {
		return nil, err
	}

	teacher, err := s.teacherStore.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !auth.CanViewTeacher(identity, teacher) {
		return nil, apperrors.NewForbiddenError("you do not have access to this teacher record")
	}

	return teacher, nil
}

// GetMyTeacherRecord retrieves the caller's own teacher record
func (s *teacherServiceImpl) GetMyTeacherRecord(ctx context.Context, identity auth.Identity) (*models.Teacher, error) {
	if err := auth.Require(auth.ResourceTeacher, auth.ActionGet, identity); err != nil {
		return nil, err
	}

	if !identity.Resolved() {
		return nil, apperrors.ErrTeacherNotFound
	}

	return s.teacherStore.GetByUserID(ctx, identity.UserID)
}

// CreateTeacher creates a teacher record. Admins may create one for any
// user; teachers only for themselves. The status defaults to active.
func (s *teacherServiceImpl) CreateTeacher(ctx context.Context, identity auth.Identity, req dto.CreateTeacherRequest) (*models.Teacher, error) {
	if err := auth.Require(auth.ResourceTeacher, auth.ActionCreate, identity); err != nil {
		return nil, err
	}

	if !identity.IsAdmin() {
		if !identity.Resolved() || req.UserID != identity.UserID {
			return nil, apperrors.NewForbiddenError("you can only create a teacher record for yourself")
		}
	}

	if _, err := s.userStore.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	if count, err := s.teacherStore.CountByEmployeeCode(ctx, req.EmployeeCode, 0); err != nil {
		return nil, fmt.Errorf("error checking employee code uniqueness: %w", err)
	} else if count > 0 {
		return nil, apperrors.ErrEmployeeCodeAlreadyExists
	}

	if count, err := s.teacherStore.CountByUserID(ctx, req.UserID, 0); err != nil {
		return nil, fmt.Errorf("error checking teacher uniqueness: %w", err)
	} else if count > 0 {
		return nil, apperrors.NewConflictError("a teacher record already exists for this user")
	}

	hireDate, err := helpers.ParseDate(req.HireDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hire date", apperrors.ErrValidationFailed)
	}

	status := models.TeacherStatusActive
	if req.Status != "" {
		status = models.TeacherStatus(req.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidTeacherStatus, req.Status)
		}
	}

	teacher := &models.Teacher{
		EmployeeCode: req.EmployeeCode,
		HireDate:     hireDate,
		Status:       status,
		UserID:       req.UserID,
	}

	if err := s.teacherStore.Create(ctx, teacher); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("teacher record conflicts with an existing record")
		}
		return nil, fmt.Errorf("error creating teacher: %w", err)
	}

	return teacher, nil
}

// UpdateTeacher updates a teacher's mutable fields. Admins may update any
// record, teachers only their own. Empty fields are left unchanged.
func (s *teacherServiceImpl) UpdateTeacher(ctx context.Context, identity auth.Identity, id int64, req dto.UpdateTeacherRequest) (*models.Teacher, error) {
	if err := auth.Require(auth.ResourceTeacher, auth.ActionUpdate, identity); err != nil {
		return nil, err
	}

	teacher, err := s.teacherStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := auth.RequireOwner(identity, teacher.UserID); err != nil {
		return nil, err
	}

	if req.EmployeeCode != "" && req.EmployeeCode != teacher.EmployeeCode {
		count, err := s.teacherStore.CountByEmployeeCode(ctx, req.EmployeeCode, id)
		if err != nil {
			return nil, fmt.Errorf("error checking employee code uniqueness: %w", err)
		}
		if count > 0 {
			return nil, apperrors.ErrEmployeeCodeAlreadyExists
		}
		teacher.EmployeeCode = req.EmployeeCode
	}

	if req.HireDate != "" {
		hireDate, err := helpers.ParseDate(req.HireDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid hire date", apperrors.ErrValidationFailed)
		}
		teacher.HireDate = hireDate
	}

	if req.Status != "" {
		status := models.TeacherStatus(req.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidTeacherStatus, req.Status)
		}
		teacher.Status = status
	}

	if err := s.teacherStore.Update(ctx, teacher); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmployeeCodeAlreadyExists
		}
		return nil, err
	}

	return s.teacherStore.GetByID(ctx, id)
}

// UpdateTeacherStatus transitions a teacher record to the given status.
// Admin only. The status must be one of the closed set; anything else is
// rejected before any record is touched.
func (s *teacherServiceImpl) UpdateTeacherStatus(ctx context.Context, identity auth.Identity, id int64, status string) (*models.Teacher, error) {
	if err := auth.Require(auth.ResourceTeacher, auth.ActionUpdate, identity); err != nil {
		return nil, err
	}
	if !identity.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only administrators can change a teacher's status")
	}

	parsed := models.TeacherStatus(status)
	if !parsed.Valid() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidTeacherStatus, status)
	}

	if _, err := s.teacherStore.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.teacherStore.UpdateStatus(ctx, id, parsed); err != nil {
		return nil, err
	}

	return s.teacherStore.GetByID(ctx, id)
}

// DeleteTeacher deletes a teacher record. Admin only.
func (s *teacherServiceImpl) DeleteTeacher(ctx context.Context, identity auth.Identity, id int64) error {
	if err := auth.Require(auth.ResourceTeacher, auth.ActionDelete, identity); err != nil {
		return err
	}

	if _, err := s.teacherStore.GetByID(ctx, id); err != nil {
		return err
	}

	return s.teacherStore.Delete(ctx, id)
}
