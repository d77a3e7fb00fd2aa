// Package models defines the records exchanged with the JobTech Radar API
// and small presentation helpers over them.
package models

import "time"

// User is the authenticated account as returned by /auth/me.
type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is the body of a successful /auth/login exchange.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
