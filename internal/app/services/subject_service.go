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

// SubjectService defines the interface for subject operations. Subjects
// are readable by every authenticated role; writes are admin only.
type SubjectService interface {
	ListSubjects(ctx context.Context, identity auth.Identity, groupLevel string) ([]*models.Subject, error)
	GetSubject(ctx context.Context, identity auth.Identity, id int64) (*models.Subject, error)
	GetSubjectByName(ctx context.Context, identity auth.Identity, name string) (*models.Subject, error)
	CreateSubject(ctx context.Context, identity auth.Identity, req dto.CreateSubjectRequest) (*models.Subject, error)
	UpdateSubject(ctx context.Context, identity auth.Identity, id int64, req dto.UpdateSubjectRequest) (*models.Subject, error)
	DeleteSubject(ctx context.Context, identity auth.Identity, id int64) error
}

// subjectServiceImpl implements the SubjectService interface
type subjectServiceImpl struct {
	subjectStore subjectStore
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjects subjectStore) SubjectService {
	return &subjectServiceImpl{
		subjectStore: subjects,
	}
}

// ListSubjects retrieves subjects, optionally filtered by group level
func (s *subjectServiceImpl) ListSubjects(ctx context.Context, identity auth.Identity, groupLevel string) ([]*models.Subject, error) {
	if err := auth.Require(auth.ResourceSubject, auth.ActionList, identity); err != nil {
		return nil, err
	}

	subjects, err := s.subjectStore.GetAll(ctx, groupLevel)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subjects: %w", err)
	}
	return subjects, nil
}

// GetSubject retrieves a subject by ID
func (s *subjectServiceImpl) GetSubject(ctx context.Context, identity auth.Identity, id int64) (*models.Subject, error) {
	if err := auth.Require(auth.ResourceSubject, auth.ActionGet, identity); err != nil {
		return nil, err
	}

	return s.subjectStore.GetByID(ctx, id)
}

// GetSubjectByName retrieves a subject by its name
func (s *subjectServiceImpl) GetSubjectByName(ctx context.Context, identity auth.Identity, name string) (*models.Subject, error) {
	if err := auth.Require(auth.ResourceSubject, auth.ActionGet, identity); err != nil {
		return nil, err
	}

	return s.subjectStore.GetByName(ctx, name)
}

// CreateSubject creates a new subject. Admin only.
func (s *subjectServiceImpl) CreateSubject(ctx context.Context, identity auth.Identity, req dto.CreateSubjectRequest) (*models.Subject, error) {
	if err := auth.Require(auth.ResourceSubject, auth.ActionCreate, identity); err != nil {
		return nil, err
	}

	if count, err := s.subjectStore.CountByName(ctx, req.SubjectName, 0); err != nil {
		return nil, fmt.Errorf("error checking subject name uniqueness: %w", err)
	} else if count > 0 {
		return nil, apperrors.ErrSubjectNameAlreadyExists
	}

	subject := &models.Subject{
		SubjectName: req.SubjectName,
		Description: req.Description,
		GroupLevel:  req.GroupLevel,
	}

	if err := s.subjectStore.Create(ctx, subject); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrSubjectNameAlreadyExists
		}
		return nil, fmt.Errorf("error creating subject: %w", err)
	}

	return subject, nil
}

// UpdateSubject updates a subject's mutable fields. Admin only.
// Empty fields are left unchanged.
func (s *subjectServiceImpl) UpdateSubject(ctx context.Context, identity auth.Identity, id int64, req dto.UpdateSubjectRequest) (*models.Subject, error) {
	if err := auth.Require(auth.ResourceSubject, auth.ActionUpdate, identity); err != nil {
		return nil, err
	}

	subject, err := s.subjectStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SubjectName != "" && req.SubjectName != subject.SubjectName {
		count, err := s.subjectStore.CountByName(ctx, req.SubjectName, id)
		if err != nil {
			return nil, fmt.Errorf("error checking subject name uniqueness: %w", err)
		}
		if count > 0 {
			return nil, apperrors.ErrSubjectNameAlreadyExists
		}
		subject.SubjectName = req.SubjectName
	}

	if req.Description != "" {
		subject.Description = req.Description
	}
	if req.GroupLevel != "" {
		subject.GroupLevel = req.GroupLevel
	}

	if err := s.subjectStore.Update(ctx, subject); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrSubjectNameAlreadyExists
		}
		return nil, err
	}

	return s.subjectStore.GetByID(ctx, id)
}

// DeleteSubject deletes a subject. Admin only.
func (s *subjectServiceImpl) DeleteSubject(ctx context.Context, identity auth.Identity, id int64) error {
	if err := auth.Require(auth.ResourceSubject, auth.ActionDelete, identity); err != nil {
		return err
	}

	if _, err := s.subjectStore.GetByID(ctx, id); err != nil {
		return err
	}

	return s.subjectStore.Delete(ctx, id)
}
