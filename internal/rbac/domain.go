package rbac

import "sort"

// Role represents a named grouping of permissions assigned to a user.
type Role struct {
	ID   int64
	Name string
}

// Permission represents an atomic capability.
type Permission struct {
	ID   int64
	Name string
}

// PermissionSet is the resolved authorization state for a user. It is a
// tagged variant: either unrestricted (admin) or restricted to an explicit
// set of permission names. The two states are kept distinct so that an empty
// restricted set can never be mistaken for full access.
type PermissionSet struct {
	admin bool
	names map[string]struct{}
}

// UnrestrictedSet returns the admin set. Has reports true for every name.
func UnrestrictedSet() PermissionSet {
	return PermissionSet{admin: true}
}

// RestrictedSet returns a set limited to the given permission names.
func RestrictedSet(names ...string) PermissionSet {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		set[n] = struct{}{}
	}
	return PermissionSet{names: set}
}

// IsUnrestricted reports whether the set grants every permission.
func (s PermissionSet) IsUnrestricted() bool {
	return s.admin
}

// Has reports whether the set grants the named permission.
func (s PermissionSet) Has(name string) bool {
	if s.admin {
		return true
	}
	_, ok := s.names[name]
	return ok
}

// Names returns the granted permission names in sorted order. Empty for an
// unrestricted set; callers must check IsUnrestricted first.
func (s PermissionSet) Names() []string {
	names := make([]string, 0, len(s.names))
	for n := range s.names {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
