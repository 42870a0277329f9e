package dto

import "time"

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Message   string    `json:"message"`
}

type VerifyResponse struct {
	Success bool         `json:"success"`
	Valid   bool         `json:"valid"`
	Session *SessionInfo `json:"session,omitempty"`
}

type SessionInfo struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	CreatedAt      time.Time `json:"created_at"`
	ExpiresAt      time.Time `json:"expires_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
}
