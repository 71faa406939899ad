package services

import (
	"context"
	"fmt"

	"github.com/rupp/ams-api/internal/app/auth"
	"github.com/rupp/ams-api/internal/app/models"
	"github.com/rupp/ams-api/internal/app/models/dto"
	"github.com/rupp/ams-api/internal/pkg/apperrors"
	"github.com/rupp/ams-api/internal/pkg/dberrors"
)

// ClassService defines the interface for class operations. Classes are
// readable by every authenticated role; writes are admin only.
type ClassService interface {
	ListClasses(ctx context.Context, identity auth.Identity, gradeLevel, academicYear string) ([]*models.Class, error)
	GetClass(ctx context.Context, identity auth.Identity, id int64) (*models.Class, error)
	GetClassByName(ctx context.Context, identity auth.Identity, name string) (*models.Class, error)
	CreateClass(ctx context.Context, identity auth.Identity, req dto.CreateClassRequest) (*models.Class, error)
	UpdateClass(ctx context.Context, identity auth.Identity, id int64, req dto.UpdateClassRequest) (*models.Class, error)
	DeleteClass(ctx context.Context, identity auth.Identity, id int64) error
}

// classServiceImpl implements the ClassService interface
type classServiceImpl struct {
	classStore classStore
}

// NewClassService creates a new class service instance
func NewClassService(classes classStore) ClassService {
	return &classServiceImpl{
		classStore: classes,
	}
}

// ListClasses retrieves classes, optionally filtered by grade level and
// academic year
func (s *classServiceImpl) ListClasses(ctx context.Context, identity auth.Identity, gradeLevel, academicYear string) ([]*models.Class, error) {
	if err := auth.Require(auth.ResourceClass, auth.ActionList, identity); err != nil {
		return nil, err
	}

	classes, err := s.classStore.GetAll(ctx, gradeLevel, academicYear)
	if err != nil {
		return nil, fmt.Errorf("error retrieving classes: %w", err)
	}
	return classes, nil
}

// GetClass retrieves a class by ID
func (s *classServiceImpl) GetClass(ctx context.Context, identity auth.Identity, id int64) (*models.Class, error) {
	if err := auth.Require(auth.ResourceClass, auth.ActionGet, identity); err != nil {
		return nil, err
	}

	return s.classStore.GetByID(ctx, id)
}

// GetClassByName retrieves a class by its name
func (s *classServiceImpl) GetClassByName(ctx context.Context, identity auth.Identity, name string) (*models.Class, error) {
	if err := auth.Require(auth.ResourceClass, auth.ActionGet, identity); err != nil {
		return nil, err
	}

	return s.classStore.GetByName(ctx, name)
}

// CreateClass creates a new class. Admin only.
func (s *classServiceImpl) CreateClass(ctx context.Context, identity auth.Identity, req dto.CreateClassRequest) (*models.Class, error) {
	if err := auth.Require(auth.ResourceClass, auth.ActionCreate, identity); err != nil {
		return nil, err
	}

	if count, err := s.classStore.CountByName(ctx, req.ClassName, 0); err != nil {
		return nil, fmt.Errorf("error checking class name uniqueness: %w", err)
	} else if count > 0 {
		return nil, apperrors.ErrClassNameAlreadyExists
	}

	class := &models.Class{
		ClassName:    req.ClassName,
		GradeLevel:   req.GradeLevel,
		AcademicYear: req.AcademicYear,
	}

	if err := s.classStore.Create(ctx, class); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrClassNameAlreadyExists
		}
		return nil, fmt.Errorf("error creating class: %w", err)
	}

	return class, nil
}

// UpdateClass updates a class's mutable fields. Admin only.
// Empty fields are left unchanged.
func (s *classServiceImpl) UpdateClass(ctx context.Context, identity auth.Identity, id int64, req dto.UpdateClassRequest) (*models.Class, error) {
	if err := auth.Require(auth.ResourceClass, auth.ActionUpdate, identity); err != nil {
		return nil, err
	}

	class, err := s.classStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ClassName != "" && req.ClassName != class.ClassName {
		count, err := s.classStore.CountByName(ctx, req.ClassName, id)
		if err != nil {
			return nil, fmt.Errorf("error checking class name uniqueness: %w", err)
		}
		if count > 0 {
			return nil, apperrors.ErrClassNameAlreadyExists
		}
		class.ClassName = req.ClassName
	}

	if req.GradeLevel != "" {
		class.GradeLevel = req.GradeLevel
	}
	if req.AcademicYear != "" {
		class.AcademicYear = req.AcademicYear
	}

	if err := s.classStore.Update(ctx, class); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrClassNameAlreadyExists
		}
		return nil, err
	}

	return s.classStore.GetByID(ctx, id)
}

// DeleteClass deletes a class. Admin only.
func (s *classServiceImpl) DeleteClass(ctx context.Context, identity auth.Identity, id int64) error {
	if err := auth.Require(auth.ResourceClass, auth.ActionDelete, identity); err != nil {
		return err
	}

	if _, err := s.classStore.GetByID(ctx, id); err != nil {
		return err
	}

	return s.classStore.Delete(ctx, id)
}
