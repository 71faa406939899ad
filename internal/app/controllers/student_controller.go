package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rupp/ams-api/internal/app/models/dto"
	"github.com/rupp/ams-api/internal/app/services"
	"github.com/rupp/ams-api/internal/middleware"
)

// StudentController handles student record operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// ListStudents returns the student records visible to the caller
func (c *StudentController) ListStudents(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	students, err := c.studentService.ListStudents(ctx, identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("students retrieved", students))
}

// GetStudent returns a single student record by ID
func (c *StudentController) GetStudent(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudent(ctx, identity, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("student retrieved", student))
}

// GetStudentByStudentNo returns a student record by student number
func (c *StudentController) GetStudentByStudentNo(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByStudentNo(ctx, identity, ctx.Param("studentNo"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("student retrieved", student))
}

// GetStudentByCardID returns a student record by student card ID
func (c *StudentController) GetStudentByCardID(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByCardID(ctx, identity, ctx.Param("studentCardId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("student retrieved", student))
}

// GetStudentByUserID returns the student record belonging to a user
func (c *StudentController) GetStudentByUserID(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByUserID(ctx, identity, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("student retrieved", student))
}

// CreateStudent creates a new student record
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails("invalid student data", err.Error()))
		return
	}

	student, err := c.studentService.CreateStudent(ctx, identity, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("student created", student))
}

// UpdateStudent updates a student record
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails("invalid student data", err.Error()))
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, identity, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("student updated", student))
}

// DeleteStudent deletes a student record
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx, identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("student deleted", nil))
}
