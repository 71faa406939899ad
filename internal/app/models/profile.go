package models

import "time"

// Profile defines the user profile model based on the 'user_profiles' table.
// IsAdminOwned replaces the legacy "card id starts with ADMIN" convention:
// it is derived from the owning user's role set when the profile is written.
type Profile struct {
	ID             int64      `json:"profileId" db:"profile_id" example:"1"`
	FirstName      string     `json:"firstName" db:"first_name" example:"Dara"`
	LastName       string     `json:"lastName" db:"last_name" example:"Sok"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	PlaceOfBirth   string     `json:"placeOfBirth" db:"place_of_birth" example:"Phnom Penh"`
	CurrentAddress string     `json:"currentAddress" db:"current_address"`
	PhoneNumber    string     `json:"phoneNumber" db:"phone_number" example:"+855 12 345 678"`
	Gender         string     `json:"gender" db:"gender" example:"M"`
	CardID         string     `json:"cardId" db:"card_id" example:"ID0012345"`
	Nationality    string     `json:"nationality" db:"nationality" example:"Cambodian"`
	IsAdminOwned   bool       `json:"isAdminOwned" db:"is_admin_owned"`
	UserID         int64      `json:"userId" db:"user_id" example:"1"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
}
