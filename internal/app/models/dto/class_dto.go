package dto

// CreateClassRequest request model for creating a class
type CreateClassRequest struct {
	ClassName    string `json:"className" binding:"required,min=1,max=100" example:"12A"`
	GradeLevel   string `json:"gradeLevel" binding:"required,min=1,max=20" example:"12"`
	AcademicYear string `json:"academicYear" binding:"required,min=4,max=20" example:"2024-2025"`
}

// UpdateClassRequest request model for updating a class.
// Empty fields are left unchanged.
type UpdateClassRequest struct {
	ClassName    string `json:"className" binding:"omitempty,min=1,max=100"`
	GradeLevel   string `json:"gradeLevel" binding:"omitempty,min=1,max=20"`
	AcademicYear string `json:"academicYear" binding:"omitempty,min=4,max=20"`
}
