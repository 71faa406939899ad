package dto

// CreateSubjectRequest request model for creating a subject
type CreateSubjectRequest struct {
	SubjectName string `json:"subjectName" binding:"required,min=1,max=200" example:"Mathematics"`
	Description string `json:"subjectDescription" binding:"omitempty,max=1000"`
	GroupLevel  string `json:"groupLevel" binding:"omitempty,max=20" example:"G1"`
}

// UpdateSubjectRequest request model for updating a subject.
// Empty fields are left unchanged.
type UpdateSubjectRequest struct {
	SubjectName string `json:"subjectName" binding:"omitempty,min=1,max=200"`
	Description string `json:"subjectDescription" binding:"omitempty,max=1000"`
	GroupLevel  string `json:"groupLevel" binding:"omitempty,max=20"`
}
