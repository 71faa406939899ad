package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rupp/ams-api/internal/app/models/dto"
	"github.com/rupp/ams-api/internal/app/services"
	"github.com/rupp/ams-api/internal/middleware"
)

// SubjectController handles subject operations
type SubjectController struct {
	subjectService services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService services.SubjectService) *SubjectController {
	return &SubjectController{
		subjectService: subjectService,
	}
}

// ListSubjects returns all subjects, with an optional group level query filter
func (c *SubjectController) ListSubjects(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	subjects, err := c.subjectService.ListSubjects(ctx, identity, ctx.Query("groupLevel"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("subjects retrieved", subjects))
}

// ListSubjectsByGroup returns subjects for a group level
func (c *SubjectController) ListSubjectsByGroup(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	subjects, err := c.subjectService.ListSubjects(ctx, identity, ctx.Param("groupLevel"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("subjects retrieved", subjects))
}

// GetSubject returns a single subject by ID
func (c *SubjectController) GetSubject(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	subject, err := c.subjectService.GetSubject(ctx, identity, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("subject retrieved", subject))
}

// GetSubjectByName returns a subject by its name
func (c *SubjectController) GetSubjectByName(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	subject, err := c.subjectService.GetSubjectByName(ctx, identity, ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("subject retrieved", subject))
}

// CreateSubject creates a new subject
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails("invalid subject data", err.Error()))
		return
	}

	subject, err := c.subjectService.CreateSubject(ctx, identity, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("subject created", subject))
}

// UpdateSubject updates a subject
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails("invalid subject data", err.Error()))
		return
	}

	subject, err := c.subjectService.UpdateSubject(ctx, identity, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("subject updated", subject))
}

// DeleteSubject deletes a subject
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.subjectService.DeleteSubject(ctx, identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("subject deleted", nil))
}
