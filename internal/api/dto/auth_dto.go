package dto

import "bookhive/internal/api/models"

// SignupRequest for creating a new account
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest for authenticating an existing account
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupData is the payload returned on successful signup
type SignupData struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// UserProjection is the public view of a user returned on login.
// FullName is present only when the account carries one.
type UserProjection struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	FullName string `json:"fullName,omitempty"`
}

// LoginData is the payload returned on successful login
type LoginData struct {
	Token string         `json:"token"`
	User  UserProjection `json:"user"`
}

// FromModelToUserProjection converts a User model to its public projection,
// resolving the derived full name at this single boundary.
func FromModelToUserProjection(user *models.User) UserProjection {
	return UserProjection{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		FullName: user.DerivedFullName(),
	}
}
