package services

import (
	"context"

	"github.com/rupp/ams-api/internal/app/models"
)

// Store interfaces abstract the repository layer so services can be
// exercised against fakes. The concrete pgx-backed repositories satisfy
// them; NewServices wires those in.

type userStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
	CountByEmail(ctx context.Context, email string, excludeID int64) (int64, error)
}

type profileStore interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id int64) (*models.Profile, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
	GetAll(ctx context.Context, excludeAdminOwned bool, ownUserID int64) ([]*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
	Delete(ctx context.Context, id int64) error
	CountByCardID(ctx context.Context, cardID string, excludeID int64) (int64, error)
	CountByUserID(ctx context.Context, userID, excludeID int64) (int64, error)
}

type studentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByStudentNo(ctx context.Context, studentNo string) (*models.Student, error)
	GetByStudentCardID(ctx context.Context, cardID string) (*models.Student, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	CountByStudentNo(ctx context.Context, studentNo string, excludeID int64) (int64, error)
	CountByStudentCardID(ctx context.Context, cardID string, excludeID int64) (int64, error)
	CountByUserID(ctx context.Context, userID, excludeID int64) (int64, error)
}

type teacherStore interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetByEmployeeCode(ctx context.Context, employeeCode string) (*models.Teacher, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Teacher, error)
	GetAll(ctx context.Context) ([]*models.Teacher, error)
	GetByStatus(ctx context.Context, status models.TeacherStatus) ([]*models.Teacher, error)
	Update(ctx context.Context, teacher *models.Teacher) error
	UpdateStatus(ctx context.Context, id int64, status models.TeacherStatus) error
	Delete(ctx context.Context, id int64) error
	CountByEmployeeCode(ctx context.Context, employeeCode string, excludeID int64) (int64, error)
	CountByUserID(ctx context.Context, userID, excludeID int64) (int64, error)
}

type classStore interface {
	Create(ctx context.Context, class *models.Class) error
	GetByID(ctx context.Context, id int64) (*models.Class, error)
	GetByName(ctx context.Context, name string) (*models.Class, error)
	GetAll(ctx context.Context, gradeLevel, academicYear string) ([]*models.Class, error)
	Update(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, id int64) error
	CountByName(ctx context.Context, name string, excludeID int64) (int64, error)
}

type subjectStore interface {
	Create(ctx context.Context, subject *models.Subject) error
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
	GetByName(ctx context.Context, name string) (*models.Subject, error)
	GetAll(ctx context.Context, groupLevel string) ([]*models.Subject, error)
	Update(ctx context.Context, subject *models.Subject) error
	Delete(ctx context.Context, id int64) error
	CountByName(ctx context.Context, name string, excludeID int64) (int64, error)
}

// tokenIssuer abstracts token generation for the auth service
type tokenIssuer interface {
	GenerateToken(user *models.User) (accessToken string, expiresIn int, err error)
}
