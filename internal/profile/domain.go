package profile

import "time"

// Profile is a user row joined with its role and branch.
type Profile struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	Role      *Role     `json:"role"`
	Branch    *Branch   `json:"branch"`
	CreatedAt time.Time `json:"createdAt"`
}

// Role is the role joined onto a profile.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Branch is the branch joined onto a profile.
type Branch struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Credentials carries the stored password hash for verification. The hash is
// never exposed through the HTTP layer.
type Credentials struct {
	UserID       int64
	PasswordHash string
}
