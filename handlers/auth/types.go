package auth

import "api/repository"

// Constants for error messages
const (
	ErrInvalidPin     = "Invalid PIN"
	ErrInvalidRequest = "PIN is required"
)

// Handler holds the injected store for the auth endpoints
type Handler struct {
	store repository.Store
}

// LoginRequest model for the PIN login endpoint
type LoginRequest struct {
	Pin string `json:"pin" binding:"required"`
}
