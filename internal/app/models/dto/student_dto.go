package dto

// CreateStudentRequest request model for creating a student record
type CreateStudentRequest struct {
	StudentNo     string `json:"studentNo" binding:"required,min=1,max=50" example:"ST2024001"`
	StudentCardID string `json:"studentCardId" binding:"required,min=1,max=50" example:"CARD2024001"`
	KhmerName     string `json:"khmerName" binding:"omitempty,max=200"`
	EnglishName   string `json:"englishName" binding:"required,min=1,max=200" example:"Sok Dara"`
	Gender        string `json:"gender" binding:"omitempty,oneof=M F" example:"M"`
	PhoneNumber   string `json:"phoneNumber" binding:"omitempty,max=30"`
	DateOfBirth   string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02" example:"2005-09-01"`
	UserID        int64  `json:"userId" binding:"required,gt=0" example:"1"`
}

// UpdateStudentRequest request model for updating a student record.
// Empty fields are left unchanged; userId cannot change.
type UpdateStudentRequest struct {
	StudentNo     string `json:"studentNo" binding:"omitempty,min=1,max=50"`
	StudentCardID string `json:"studentCardId" binding:"omitempty,min=1,max=50"`
	KhmerName     string `json:"khmerName" binding:"omitempty,max=200"`
	EnglishName   string `json:"englishName" binding:"omitempty,min=1,max=200"`
	Gender        string `json:"gender" binding:"omitempty,oneof=M F"`
	PhoneNumber   string `json:"phoneNumber" binding:"omitempty,max=30"`
	DateOfBirth   string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
}
