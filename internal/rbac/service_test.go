package rbac

import (
	"context"
	"errors"
	"testing"
)

type stubRepo struct {
	grants UserGrants
	found  bool
	err    error
}

func (s stubRepo) GetUserGrants(context.Context, int64) (UserGrants, bool, error) {
	return s.grants, s.found, s.err
}

func TestResolveAdminIsUnrestricted(t *testing.T) {
	// The admin flag wins even when a role with permissions is assigned.
	svc := NewService(stubRepo{
		grants: UserGrants{IsAdmin: true, HasRole: true, Permissions: []string{"dashboard.view"}},
		found:  true,
	})
	set, err := svc.Resolve(context.Background(), 1)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !set.IsUnrestricted() {
		t.Fatal("expected unrestricted set for admin")
	}
	if !set.Has("anything.at.all") {
		t.Fatal("unrestricted set must grant every permission")
	}
	if len(set.Names()) != 0 {
		t.Fatalf("unrestricted set carries no explicit names, got %v", set.Names())
	}
}

func TestResolveMissingUserGrantsNothing(t *testing.T) {
	svc := NewService(stubRepo{found: false})
	set, err := svc.Resolve(context.Background(), 42)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if set.IsUnrestricted() {
		t.Fatal("missing user must not be unrestricted")
	}
	if set.Has("dashboard.view") {
		t.Fatal("missing user must hold no permissions")
	}
}

func TestResolveUserWithoutRoleGrantsNothing(t *testing.T) {
	svc := NewService(stubRepo{grants: UserGrants{HasRole: false}, found: true})
	set, err := svc.Resolve(context.Background(), 7)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if set.IsUnrestricted() {
		t.Fatal("role-less user must not be unrestricted")
	}
	if len(set.Names()) != 0 {
		t.Fatalf("expected empty set, got %v", set.Names())
	}
}

func TestResolveRoleLinkedPermissions(t *testing.T) {
	svc := NewService(stubRepo{
		grants: UserGrants{HasRole: true, Permissions: []string{"dashboard.view", " payouts.view ", "dashboard.view", ""}},
		found:  true,
	})
	set, err := svc.Resolve(context.Background(), 7)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if set.IsUnrestricted() {
		t.Fatal("role-bound user must be restricted")
	}
	names := set.Names()
	if len(names) != 2 {
		t.Fatalf("expected 2 deduplicated names, got %v", names)
	}
	if !set.Has("dashboard.view") || !set.Has("payouts.view") {
		t.Fatalf("expected trimmed role permissions, got %v", names)
	}
	if set.Has("users.edit") {
		t.Fatal("ungranted permission must be denied")
	}
}

func TestResolvePropagatesRepositoryError(t *testing.T) {
	boom := errors.New("pg down")
	svc := NewService(stubRepo{err: boom})
	if _, err := svc.Resolve(context.Background(), 1); !errors.Is(err, boom) {
		t.Fatalf("expected repository error, got %v", err)
	}
}
