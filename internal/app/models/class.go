package models

import "time"

// Class defines the class model based on the 'classes' table
type Class struct {
	ID           int64     `json:"classId" db:"class_id" example:"1"`
	ClassName    string    `json:"className" db:"class_name" example:"12A"`
	GradeLevel   string    `json:"gradeLevel" db:"grade_level" example:"12"`
	AcademicYear string    `json:"academicYear" db:"academic_year" example:"2024-2025"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
