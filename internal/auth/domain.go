package auth

import "time"

// User is the authentication view of a user account.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	IsAdmin      bool
	IsActive     bool
	RoleName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
