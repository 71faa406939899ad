package models

import (
	"time"
)

// User defines the user model based on the 'app_users' table
type User struct {
	ID        int64      `json:"userId" db:"user_id" example:"1"`
	FullName  string     `json:"fullName" db:"full_name" example:"Sok Dara"`
	Email     string     `json:"email" db:"email" example:"dara@ams.edu.kh"`
	Password  string     `json:"-" db:"password"` // Hashed password (excluded from JSON)
	Roles     []RoleType `json:"roles" example:"STUDENT"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role RoleType) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
