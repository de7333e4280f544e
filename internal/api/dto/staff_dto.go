package dto

import "time"

// StaffLoginRequest payload.
type StaffLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// StaffLoginResponse payload.
type StaffLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Staff     StaffInfo `json:"staff"`
}

// StaffInfo summarizes the logged-in staff member.
type StaffInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ChangePasswordRequest payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
