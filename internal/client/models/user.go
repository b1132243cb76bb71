// Package models defines the data types exchanged with the myapp
// authentication backend and cached locally by the client.
package models

// User is the account record returned by the signup and current-user
// endpoints and cached in the local session store. CreatedAt is kept as the
// server's string representation; the client never interprets it.
type User struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	IsActive   bool   `json:"is_active"`
	IsVerified bool   `json:"is_verified,omitempty"`
	CreatedAt  string `json:"created_at"`
}
