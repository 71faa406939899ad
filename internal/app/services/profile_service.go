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

// ProfileService defines the interface for user profile operations
type ProfileService interface {
	ListProfiles(ctx context.Context, identity auth.Identity) ([]*models.Profile, error)
	GetProfile(ctx context.Context, identity auth.Identity, id int64) (*models.Profile, error)
	GetProfileByUserID(ctx context.Context, identity auth.Identity, userID int64) (*models.Profile, error)
	GetMyProfile(ctx context.Context, identity auth.Identity) (*models.Profile, error)
	CreateProfile(ctx context.Context, identity auth.Identity, req dto.CreateProfileRequest) (*models.Profile, error)
	UpdateProfile(ctx context.Context, identity auth.Identity, id int64, req dto.UpdateProfileRequest) (*models.Profile, error)
	DeleteProfile(ctx context.Context, identity auth.Identity, id int64) error
}

// profileServiceImpl implements the ProfileService interface
type profileServiceImpl struct {
	profileStore profileStore
	userStore    userStore
}

// NewProfileService creates a new profile service instance
func NewProfileService(profiles profileStore, users userStore) ProfileService {
	return &profileServiceImpl{
		profileStore: profiles,
		userStore:    users,
	}
}

// ListProfiles retrieves the profiles visible to the caller. Admins see
// everything, teachers everything except admin-owned profiles, students
// only their own.
func (s *profileServiceImpl) ListProfiles(ctx context.Context, identity auth.Identity) ([]*models.Profile, error) {
	if err := auth.Require(auth.ResourceProfile, auth.ActionList, identity); err != nil {
		return nil, err
	}

	switch {
	case identity.IsAdmin():
		return s.profileStore.GetAll(ctx, false, 0)
	case identity.HasRole(models.RoleTeacher):
		return s.profileStore.GetAll(ctx, true, identity.UserID)
	default:
		if !identity.Resolved() {
			return []*models.Profile{}, nil
		}
		profile, err := s.profileStore.GetByUserID(ctx, identity.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrProfileNotFound) {
				return []*models.Profile{}, nil
			}
			return nil, err
		}
		return []*models.Profile{profile}, nil
	}
}

// GetProfile retrieves a profile by ID, subject to visibility rules
func (s *profileServiceImpl) GetProfile(ctx context.Context, identity auth.Identity, id int64) (*models.Profile, error) {
	if err := auth.Require(auth.ResourceProfile, auth.ActionGet, identity); err != nil {
		return nil, err
	}

	profile, err := s.profileStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !auth.CanViewProfile(identity, profile) {
		return nil, apperrors.NewForbiddenError("you do not have access to this profile")
	}

	return profile, nil
}

// GetProfileByUserID retrieves the profile of a given user, subject to
// visibility rules
func (s *profileServiceImpl) GetProfileByUserID(ctx context.Context, identity auth.Identity, userID int64) (*models.Profile, error) {
	if err := auth.Require(auth.ResourceProfile, auth.ActionGet, identity); err != nil {
		return nil, err
	}

	profile, err := s.profileStore.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !auth.CanViewProfile(identity, profile) {
		return nil, apperrors.NewForbiddenError("you do not have access to this profile")
	}

	return profile, nil
}

// GetMyProfile retrieves the caller's own profile
func (s *profileServiceImpl) GetMyProfile(ctx context.Context, identity auth.Identity) (*models.Profile, error) {
	if err := auth.Require(auth.ResourceProfile, auth.ActionGet, identity); err != nil {
		return nil, err
	}

	if !identity.Resolved() {
		return nil, apperrors.ErrProfileNotFound
	}

	return s.profileStore.GetByUserID(ctx, identity.UserID)
}

// CreateProfile creates a profile. Admins may create a profile for any
// user; everyone else only for themselves. The admin-owned flag is
// derived from the owning user's role set, never taken from the request.
func (s *profileServiceImpl) CreateProfile(ctx context.Context, identity auth.Identity, req dto.CreateProfileRequest) (*models.Profile, error) {
	if err := auth.Require(auth.ResourceProfile, auth.ActionCreate, identity); err != nil {
		return nil, err
	}

	if !identity.IsAdmin() {
		if !identity.Resolved() || req.UserID != identity.UserID {
			return nil, apperrors.NewForbiddenError("you can only create a profile for yourself")
		}
	}

	owner, err := s.userStore.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if count, err := s.profileStore.CountByUserID(ctx, req.UserID, 0); err != nil {
		return nil, fmt.Errorf("error checking profile uniqueness: %w", err)
	} else if count > 0 {
		return nil, apperrors.ErrProfileAlreadyExists
	}

	if count, err := s.profileStore.CountByCardID(ctx, req.CardID, 0); err != nil {
		return nil, fmt.Errorf("error checking card ID uniqueness: %w", err)
	} else if count > 0 {
		return nil, apperrors.ErrCardIDAlreadyExists
	}

	dob, err := helpers.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date of birth", apperrors.ErrValidationFailed)
	}

	profile := &models.Profile{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DateOfBirth:    dob,
		PlaceOfBirth:   req.PlaceOfBirth,
		CurrentAddress: req.CurrentAddress,
		PhoneNumber:    req.PhoneNumber,
		Gender:         req.Gender,
		CardID:         req.CardID,
		Nationality:    req.Nationality,
		IsAdminOwned:   owner.HasRole(models.RoleAdmin),
		UserID:         req.UserID,
	}

	if err := s.profileStore.Create(ctx, profile); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("profile conflicts with an existing record")
		}
		return nil, fmt.Errorf("error creating profile: %w", err)
	}

	return profile, nil
}

// UpdateProfile updates a profile's mutable fields. Admins may update any
// profile, everyone else only their own. Empty fields are left unchanged.
func (s *profileServiceImpl) UpdateProfile(ctx context.Context, identity auth.Identity, id int64, req dto.UpdateProfileRequest) (*models.Profile, error) {
	if err := auth.Require(auth.ResourceProfile, auth.ActionUpdate, identity); err != nil {
		return nil, err
	}

	profile, err := s.profileStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := auth.RequireOwner(identity, profile.UserID); err != nil {
		return nil, err
	}

	if req.CardID != "" && req.CardID != profile.CardID {
		count, err := s.profileStore.CountByCardID(ctx, req.CardID, id)
		if err != nil {
			return nil, fmt.Errorf("error checking card ID uniqueness: %w", err)
		}
		if count > 0 {
			return nil, apperrors.ErrCardIDAlreadyExists
		}
		profile.CardID = req.CardID
	}

	if req.DateOfBirth != "" {
		dob, err := helpers.ParseDate(req.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date of birth", apperrors.ErrValidationFailed)
		}
		profile.DateOfBirth = dob
	}

	if req.FirstName != "" {
		profile.FirstName = req.FirstName
	}
	if req.LastName != "" {
		profile.LastName = req.LastName
	}
	if req.PlaceOfBirth != "" {
		profile.PlaceOfBirth = req.PlaceOfBirth
	}
	if req.CurrentAddress != "" {
		profile.CurrentAddress = req.CurrentAddress
	}
	if req.PhoneNumber != "" {
		profile.PhoneNumber = req.PhoneNumber
	}
	if req.Gender != "" {
		profile.Gender = req.Gender
	}
	if req.Nationality != "" {
		profile.Nationality = req.Nationality
	}

	if err := s.profileStore.Update(ctx, profile); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrCardIDAlreadyExists
		}
		return nil, err
	}

	return s.profileStore.GetByID(ctx, id)
}

// DeleteProfile deletes a profile. Admin only.
func (s *profileServiceImpl) DeleteProfile(ctx context.Context, identity auth.Identity, id int64) error {
	if err := auth.Require(auth.ResourceProfile, auth.ActionDelete, identity); err != nil {
		return err
	}

	if _, err := s.profileStore.GetByID(ctx, id); err != nil {
		return err
	}

	return s.profileStore.Delete(ctx, id)
}
