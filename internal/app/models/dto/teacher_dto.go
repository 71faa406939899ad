package dto

// CreateTeacherRequest request model for creating a teacher record
type CreateTeacherRequest struct {
	EmployeeCode string `json:"employeeCode" binding:"required,min=1,max=50" example:"EMP2024001"`
	HireDate     string `json:"hireDate" binding:"omitempty,datetime=2006-01-02" example:"2020-11-02"`
	Status       string `json:"status" binding:"omitempty,oneof=active inactive suspended" example:"active"`
	UserID       int64  `json:"userId" binding:"required,gt=0" example:"1"`
}

// UpdateTeacherRequest request model for updating a teacher record.
// Empty fields are left unchanged; userId cannot change.
type UpdateTeacherRequest struct {
	EmployeeCode string `json:"employeeCode" binding:"omitempty,min=1,max=50"`
	HireDate     string `json:"hireDate" binding:"omitempty,datetime=2006-01-02"`
	Status       string `json:"status" binding:"omitempty,oneof=active inactive suspended"`
}

// UpdateTeacherStatusRequest request model for the status transition endpoint
type UpdateTeacherStatusRequest struct {
	Status string `json:"status" binding:"required" example:"suspended"`
}
