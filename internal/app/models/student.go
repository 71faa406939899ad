package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID            int64      `json:"studentId" db:"student_id" example:"1"`
	StudentNo     string     `json:"studentNo" db:"student_no" example:"ST2024001"`
	StudentCardID string     `json:"studentCardId" db:"student_card_id" example:"CARD2024001"`
	KhmerName     string     `json:"khmerName" db:"khmer_name"`
	EnglishName   string     `json:"englishName" db:"english_name" example:"Sok Dara"`
	Gender        string     `json:"gender" db:"gender" example:"M"`
	PhoneNumber   string     `json:"phoneNumber" db:"phone_number"`
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	UserID        int64      `json:"userId" db:"user_id" example:"1"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}
