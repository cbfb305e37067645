package dto

import "time"

// Auth Request DTOs

// LoginRequest contains operator login credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateUserRequest registers a new operator account. Admin only.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullName" validate:"required,min=1,max=100"`
	Role     string `json:"role" validate:"required,oneof=admin operator"`
}

// Auth Response DTOs

// TokenResponse contains the issued access token
type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// UserProfileResponse represents the authenticated operator's profile
type UserProfileResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName"`
	Role        string     `json:"role"`
	BranchID    string     `json:"branchId,omitempty"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// LoginResponse bundles the token with the operator profile
type LoginResponse struct {
	Token TokenResponse       `json:"token"`
	User  UserProfileResponse `json:"user"`
}
