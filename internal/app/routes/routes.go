package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rupp/ams-api/internal/app/controllers"
	"github.com/rupp/ams-api/internal/app/models/dto"
	"github.com/rupp/ams-api/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	profileController *controllers.ProfileController,
	studentController *controllers.StudentController,
	teacherController *controllers.TeacherController,
	classController *controllers.ClassController,
	subjectController *controllers.SubjectController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Health endpoint (public)
	v1.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse("ok", gin.H{"status": "up"}))
	})

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
	}

	// Everything below requires a valid token
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	users := authenticated.Group("/users")
	{
		users.GET("", userController.ListUsers)
		users.GET("/me", userController.GetMyUser)
		users.GET("/:id", userController.GetUser)
		users.POST("", userController.CreateUser)
		users.PUT("/:id", userController.UpdateUser)
		users.DELETE("/:id", userController.DeleteUser)
	}

	profiles := authenticated.Group("/user-profiles")
	{
		profiles.GET("", profileController.ListProfiles)
		profiles.GET("/me", profileController.GetMyProfile)
		profiles.GET("/:id", profileController.GetProfile)
		profiles.GET("/user/:userId", profileController.GetProfileByUserID)
		profiles.POST("", profileController.CreateProfile)
		profiles.PUT("/:id", profileController.UpdateProfile)
		profiles.DELETE("/:id", profileController.DeleteProfile)
	}

	students := authenticated.Group("/students")
	{
		students.GET("", studentController.ListStudents)
		students.GET("/:id", studentController.GetStudent)
		students.GET("/number/:studentNo", studentController.GetStudentByStudentNo)
		students.GET("/card/:studentCardId", studentController.GetStudentByCardID)
		students.GET("/user/:userId", studentController.GetStudentByUserID)
		students.POST("", studentController.CreateStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	teachers := authenticated.Group("/teachers")
	{
		teachers.GET("", teacherController.ListTeachers)
		teachers.GET("/me", teacherController.GetMyTeacherRecord)
		teachers.GET("/:id", teacherController.GetTeacher)
		teachers.GET("/employee-code/:employeeCode", teacherController.GetTeacherByEmployeeCode)
		teachers.GET("/user/:userId", teacherController.GetTeacherByUserID)
		teachers.GET("/status/:status", teacherController.ListTeachersByStatus)
		teachers.POST("", teacherController.CreateTeacher)
		teachers.PUT("/:id", teacherController.UpdateTeacher)
		teachers.PATCH("/:id/status", teacherController.UpdateTeacherStatus)
		teachers.DELETE("/:id", teacherController.DeleteTeacher)
	}

	classes := authenticated.Group("/classes")
	{
		classes.GET("", classController.ListClasses)
		classes.GET("/:id", classController.GetClass)
		classes.GET("/name/:name", classController.GetClassByName)
		classes.GET("/grade/:gradeLevel", classController.ListClassesByGrade)
		classes.GET("/grade/:gradeLevel/year/:academicYear", classController.ListClassesByGradeAndYear)
		classes.GET("/year/:academicYear", classController.ListClassesByYear)
		classes.POST("", classController.CreateClass)
		classes.PUT("/:id", classController.UpdateClass)
		classes.DELETE("/:id", classController.DeleteClass)
	}

	subjects := authenticated.Group("/subjects")
	{
		subjects.GET("", subjectController.ListSubjects)
		subjects.GET("/:id", subjectController.GetSubject)
		subjects.GET("/name/:name", subjectController.GetSubjectByName)
		subjects.GET("/group/:groupLevel", subjectController.ListSubjectsByGroup)
		subjects.POST("", subjectController.CreateSubject)
		subjects.PUT("/:id", subjectController.UpdateSubject)
		subjects.DELETE("/:id", subjectController.DeleteSubject)
	}
}
