package rbac

import "context"

// UserGrants is the raw resolution input for one user.
type UserGrants struct {
	IsAdmin     bool
	HasRole     bool
	Permissions []string
}

// Repository defines the persistence operations the resolver needs.
type Repository interface {
	// GetUserGrants loads the admin flag and role-linked permission names for
	// a user. Returns found=false when the user does not exist.
	GetUserGrants(ctx context.Context, userID int64) (grants UserGrants, found bool, err error)
}
