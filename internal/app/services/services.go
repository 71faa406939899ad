package services

import (
	"github.com/rupp/ams-api/internal/app/repositories"
	pkgauth "github.com/rupp/ams-api/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService    AuthService
	UserService    UserService
	ProfileService ProfileService
	StudentService StudentService
	TeacherService TeacherService
	ClassService   ClassService
	SubjectService SubjectService
}

// NewServices initializes all services on top of the repository layer
func NewServices(repos *repositories.Repositories, jwtService *pkgauth.JWTService) *Services {
	return &Services{
		AuthService:    NewAuthService(repos.UserRepository, jwtService),
		UserService:    NewUserService(repos.UserRepository),
		ProfileService: NewProfileService(repos.ProfileRepository, repos.UserRepository),
		StudentService: NewStudentService(repos.StudentRepository, repos.UserRepository),
		TeacherService: NewTeacherService(repos.TeacherRepository, repos.UserRepository),
		ClassService:   NewClassService(repos.ClassRepository),
		SubjectService: NewSubjectService(repos.SubjectRepository),
	}
}
