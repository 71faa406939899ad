package dto

// CreateProfileRequest request model for creating a user profile
type CreateProfileRequest struct {
	FirstName      string `json:"firstName" binding:"required,min=1,max=100" example:"Dara"`
	LastName       string `json:"lastName" binding:"required,min=1,max=100" example:"Sok"`
	DateOfBirth    string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02" example:"2001-04-15"`
	PlaceOfBirth   string `json:"placeOfBirth" binding:"omitempty,max=200" example:"Phnom Penh"`
	CurrentAddress string `json:"currentAddress" binding:"omitempty,max=500"`
	PhoneNumber    string `json:"phoneNumber" binding:"omitempty,max=30" example:"+855 12 345 678"`
	Gender         string `json:"gender" binding:"omitempty,oneof=M F" example:"M"`
	CardID         string `json:"cardId" binding:"required,min=1,max=50" example:"ID0012345"`
	Nationality    string `json:"nationality" binding:"omitempty,max=100" example:"Cambodian"`
	UserID         int64  `json:"userId" binding:"required,gt=0" example:"1"`
}

// UpdateProfileRequest request model for updating a user profile.
// Empty fields are left unchanged; userId and ownership flags cannot change.
type UpdateProfileRequest struct {
	FirstName      string `json:"firstName" binding:"omitempty,min=1,max=100"`
	LastName       string `json:"lastName" binding:"omitempty,min=1,max=100"`
	DateOfBirth    string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	PlaceOfBirth   string `json:"placeOfBirth" binding:"omitempty,max=200"`
	CurrentAddress string `json:"currentAddress" binding:"omitempty,max=500"`
	PhoneNumber    string `json:"phoneNumber" binding:"omitempty,max=30"`
	Gender         string `json:"gender" binding:"omitempty,oneof=M F"`
	CardID         string `json:"cardId" binding:"omitempty,min=1,max=50"`
	Nationality    string `json:"nationality" binding:"omitempty,max=100"`
}
