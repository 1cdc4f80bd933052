package rbac

import (
	"context"
	"strings"
)

// Service resolves effective permissions. The repository is an explicit
// dependency so the resolver carries no package-level database state.
type Service struct {
	repo Repository
}

// NewService constructs a Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Resolve determines the effective permission set for a user.
//
// Admins resolve to the unrestricted set. A missing user or a user without a
// role resolves to an empty restricted set, which grants nothing. Role-linked
// permission names are trimmed and deduplicated.
func (s *Service) Resolve(ctx context.Context, userID int64) (PermissionSet, error) {
	grants, found, err := s.repo.GetUserGrants(ctx, userID)
	if err != nil {
		return PermissionSet{}, err
	}
	if !found {
		return RestrictedSet(), nil
	}
	if grants.IsAdmin {
		return UnrestrictedSet(), nil
	}
	if !grants.HasRole {
		return RestrictedSet(), nil
	}
	names := make([]string, 0, len(grants.Permissions))
	for _, name := range grants.Permissions {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return RestrictedSet(names...), nil
}
