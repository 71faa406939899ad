package dto

// CreateUserRequest request model for creating a user
type CreateUserRequest struct {
	FullName string   `json:"fullName" binding:"required,min=2,max=100" example:"Sok Dara"`
	Email    string   `json:"email" binding:"required,email" example:"dara@ams.edu.kh"`
	Password string   `json:"password" binding:"required,min=8" example:"secret123"`
	Roles    []string `json:"roles" binding:"required,min=1" example:"STUDENT"`
}

// UpdateUserRequest request model for updating a user.
// Empty fields are left unchanged.
type UpdateUserRequest struct {
	FullName string `json:"fullName" binding:"omitempty,min=2,max=100" example:"Sok Dara"`
	Email    string `json:"email" binding:"omitempty,email" example:"dara@ams.edu.kh"`
	Password string `json:"password" binding:"omitempty,min=8"`
}
