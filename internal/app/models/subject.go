package models

import "time"

// Subject defines the subject model based on the 'subjects' table
type Subject struct {
	ID          int64     `json:"subjectId" db:"subject_id" example:"1"`
	SubjectName string    `json:"subjectName" db:"subject_name" example:"Mathematics"`
	Description string    `json:"subjectDescription" db:"subject_description"`
	GroupLevel  string    `json:"groupLevel" db:"group_level" example:"G1"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
