package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rupp/ams-api/internal/app/models/dto"
	"github.com/rupp/ams-api/internal/app/services"
	"github.com/rupp/ams-api/internal/middleware"
)

// ClassController handles class operations
type ClassController struct {
	classService services.ClassService
}

// NewClassController creates a new ClassController
func NewClassController(classService services.ClassService) *ClassController {
	return &ClassController{
		classService: classService,
	}
}

// ListClasses returns all classes, with optional grade and year query filters
func (c *ClassController) ListClasses(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	classes, err := c.classService.ListClasses(ctx, identity, ctx.Query("gradeLevel"), ctx.Query("academicYear"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("classes retrieved", classes))
}

// ListClassesByGrade returns classes for a grade level
func (c *ClassController) ListClassesByGrade(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	classes, err := c.classService.ListClasses(ctx, identity, ctx.Param("gradeLevel"), "")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("classes retrieved", classes))
}

// ListClassesByYear returns classes for an academic year
func (c *ClassController) ListClassesByYear(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	classes, err := c.classService.ListClasses(ctx, identity, "", ctx.Param("academicYear"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("classes retrieved", classes))
}

// ListClassesByGradeAndYear returns classes for a grade level within an academic year
func (c *ClassController) ListClassesByGradeAndYear(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	classes, err := c.classService.ListClasses(ctx, identity, ctx.Param("gradeLevel"), ctx.Param("academicYear"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("classes retrieved", classes))
}

// GetClass returns a single class by ID
func (c *ClassController) GetClass(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	class, err := c.classService.GetClass(ctx, identity, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("class retrieved", class))
}

// GetClassByName returns a class by its name
func (c *ClassController) GetClassByName(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	class, err := c.classService.GetClassByName(ctx, identity, ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("class retrieved", class))
}

// CreateClass creates a new class
func (c *ClassController) CreateClass(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails("invalid class data", err.Error()))
		return
	}

	class, err := c.classService.CreateClass(ctx, identity, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("class created", class))
}

// UpdateClass updates a class
func (c *ClassController) UpdateClass(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails("invalid class data", err.Error()))
		return
	}

	class, err := c.classService.UpdateClass(ctx, identity, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("class updated", class))
}

// DeleteClass deletes a class
func (c *ClassController) DeleteClass(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.classService.DeleteClass(ctx, identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("class deleted", nil))
}
