package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rupp/ams-api/internal/app/models/dto"
	"github.com/rupp/ams-api/internal/app/services"
	"github.com/rupp/ams-api/internal/middleware"
)

// ProfileController handles user profile operations
type ProfileController struct {
	profileService services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// ListProfiles returns the profiles visible to the caller
func (c *ProfileController) ListProfiles(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	profiles, err := c.profileService.ListProfiles(ctx, identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("profiles retrieved", profiles))
}

// GetProfile returns a single profile by ID
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	profile, err := c.profileService.GetProfile(ctx, identity, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("profile retrieved", profile))
}

// GetProfileByUserID returns the profile belonging to a user
func (c *ProfileController) GetProfileByUserID(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	profile, err := c.profileService.GetProfileByUserID(ctx, identity, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("profile retrieved", profile))
}

// GetMyProfile returns the caller's own profile
func (c *ProfileController) GetMyProfile(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	profile, err := c.profileService.GetMyProfile(ctx, identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("profile retrieved", profile))
}

// CreateProfile creates a new profile
func (c *ProfileController) CreateProfile(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails("invalid profile data", err.Error()))
		return
	}

	profile, err := c.profileService.CreateProfile(ctx, identity, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("profile created", profile))
}

// UpdateProfile updates a profile
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails("invalid profile data", err.Error()))
		return
	}

	profile, err := c.profileService.UpdateProfile(ctx, identity, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("profile updated", profile))
}

// DeleteProfile deletes a profile
func (c *ProfileController) DeleteProfile(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.profileService.DeleteProfile(ctx, identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("profile deleted", nil))
}
