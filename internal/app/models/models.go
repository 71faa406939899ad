package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleTeacher RoleType = "TEACHER"
	RoleStudent RoleType = "STUDENT"
)

// ParseRole maps a role name to its RoleType. The second return value is
// false for names outside the closed role set.
func ParseRole(name string) (RoleType, bool) {
	switch RoleType(name) {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return RoleType(name), true
	}
	return "", false
}

// TeacherStatus defines the teacher employment status
type TeacherStatus string

const (
	TeacherStatusActive    TeacherStatus = "active"
	TeacherStatusInactive  TeacherStatus = "inactive"
	TeacherStatusSuspended TeacherStatus = "suspended"
)

// Valid reports whether the status is one of the enumerated values.
func (s TeacherStatus) Valid() bool {
	switch s {
	case TeacherStatusActive, TeacherStatusInactive, TeacherStatusSuspended:
		return true
	}
	return false
}
