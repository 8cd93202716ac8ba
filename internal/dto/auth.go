package dto

import "strings"

// LoginRequest represents an admin login attempt
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Validate checks required fields
func (r *LoginRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.Username) == "" {
		return false, "Username is required"
	}
	if r.Password == "" {
		return false, "Password is required"
	}
	return true, ""
}

// UserResponse represents admin user data in response
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// LoginResponse carries the issued access token and the authenticated user
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserResponse `json:"user"`
}
