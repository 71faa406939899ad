package dto

// LoginRequest login request model
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@ams.local"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// AuthResponse authentication response model
type AuthResponse struct {
	UserID      int64    `json:"userId" example:"1"`
	FullName    string   `json:"fullName" example:"Sok Dara"`
	Email       string   `json:"email" example:"dara@ams.edu.kh"`
	Roles       []string `json:"roles" example:"STUDENT"`
	AccessToken string   `json:"accessToken"`
	ExpiresIn   int      `json:"expiresIn" example:"3600"`
}

// RegisterRequest registration request model
type RegisterRequest struct {
	FullName string   `json:"fullName" binding:"required,min=2,max=100" example:"Sok Dara"`
	Email    string   `json:"email" binding:"required,email" example:"dara@ams.edu.kh"`
	Password string   `json:"password" binding:"required,min=8" example:"secret123"`
	Roles    []string `json:"roles" binding:"required,min=1,dive,oneof=STUDENT TEACHER" example:"STUDENT"`
}
