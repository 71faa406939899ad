package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rupp/ams-api/internal/app/models/dto"
	"github.com/rupp/ams-api/internal/app/services"
	"github.com/rupp/ams-api/internal/middleware"
)

// TeacherController handles teacher record operations
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// ListTeachers returns the teacher records visible to the caller
func (c *TeacherController) ListTeachers(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	teachers, err := c.teacherService.ListTeachers(ctx, identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("teachers retrieved", teachers))
}

// ListTeachersByStatus returns teacher records holding the given status
func (c *TeacherController) ListTeachersByStatus(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	teachers, err := c.teacherService.ListTeachersByStatus(ctx, identity, ctx.Param("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("teachers retrieved", teachers))
}

// GetTeacher returns a single teacher record by ID
func (c *TeacherController) GetTeacher(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	teacher, err := c.teacherService.GetTeacher(ctx, identity, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("teacher retrieved", teacher))
}

// GetTeacherByEmployeeCode returns a teacher record by employee code
func (c *TeacherController) GetTeacherByEmployeeCode(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	teacher, err := c.teacherService.GetTeacherByEmployeeCode(ctx, identity, ctx.Param("employeeCode"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("teacher retrieved", teacher))
}

// GetTeacherByUserID returns the teacher record belonging to a user
func (c *TeacherController) GetTeacherByUserID(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	teacher, err := c.teacherService.GetTeacherByUserID(ctx, identity, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("teacher retrieved", teacher))
}

// GetMyTeacherRecord returns the caller's own teacher record
func (c *TeacherController) GetMyTeacherRecord(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	teacher, err := c.teacherService.GetMyTeacherRecord(ctx, identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("teacher retrieved", teacher))
}

// CreateTeacher creates a new teacher record
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails("invalid teacher data", err.Error()))
		return
	}

	teacher, err := c.teacherService.CreateTeacher(ctx, identity, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("teacher created", teacher))
}

// UpdateTeacher updates a teacher record
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails("invalid teacher data", err.Error()))
		return
	}

	teacher, err := c.teacherService.UpdateTeacher(ctx, identity, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("teacher updated", teacher))
}

// UpdateTeacherStatus transitions a teacher record to a new status
func (c *TeacherController) UpdateTeacherStatus(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTeacherStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails("invalid status data", err.Error()))
		return
	}

	teacher, err := c.teacherService.UpdateTeacherStatus(ctx, identity, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("teacher status updated", teacher))
}

// DeleteTeacher deletes a teacher record
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.teacherService.DeleteTeacher(ctx, identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("teacher deleted", nil))
}
