package models

// SessionRequest represents a request to open a demo session for a user
type SessionRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// AuthResponse represents the response after a session is opened
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	ExpiresAt int64  `json:"expires_at"`
}
