package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    *UserRepository
	ProfileRepository *ProfileRepository
	StudentRepository *StudentRepository
	TeacherRepository *TeacherRepository
	ClassRepository   *ClassRepository
	SubjectRepository *SubjectRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db),
		ProfileRepository: NewProfileRepository(db),
		StudentRepository: NewStudentRepository(db),
		TeacherRepository: NewTeacherRepository(db),
		ClassRepository:   NewClassRepository(db),
		SubjectRepository: NewSubjectRepository(db),
	}
}
