package dto

import "time"

// LoginRequest carries the shared admin passcode.
type LoginRequest struct {
	Passcode string `json:"passcode" validate:"required"`
}

// LoginResponse returns the signed admin token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
