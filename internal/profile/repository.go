package profile

import "context"

// Repository defines persistence operations for the profile service.
type Repository interface {
	// GetProfile returns the user joined with role and branch, or nil when no
	// user matches.
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	// GetCredentials returns the stored password hash, or nil when no user
	// matches.
	GetCredentials(ctx context.Context, userID int64) (*Credentials, error)
	// UpdatePassword persists a new password hash for the user.
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}
